// Package tui is the interactive regime explorer: edit the main salary and
// deduction figures and watch both regimes recompute live.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// Field indices into Model.inputs.
const (
	fieldBasic = iota
	fieldHRA
	fieldRent
	fieldMetro
	field80C
	field80D
	fieldAge
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Basic + DA (annual)",
	"HRA received (annual)",
	"Rent paid (annual)",
	"Metro city (y/n)",
	"Section 80C",
	"Section 80D premium",
	"Age",
}

// Model holds the explorer state: one text input per editable figure plus
// the latest comparison.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focused int

	engine *compare.Engine
	result *compare.RegimeComparison
	err    error

	width  int
	height int
}

// NewModel creates the explorer with sensible starting figures.
func NewModel(engine *compare.Engine) Model {
	if engine == nil {
		engine = compare.NewEngine(nil)
	}

	defaults := [fieldCount]string{
		fieldBasic: "1200000",
		fieldHRA:   "240000",
		fieldRent:  "300000",
		fieldMetro: "n",
		field80C:   "150000",
		field80D:   "25000",
		fieldAge:   "35",
	}

	m := Model{engine: engine, width: 80, height: 24}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 12
		ti.Width = 14
		ti.SetValue(defaults[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldBasic].Focus()
	m.recalculate()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// input builds the engine input from the current field values. Unparseable
// numbers read as zero; the explorer is a sandbox, not a validator.
func (m *Model) input() calculation.Input {
	city := domain.CityNonMetro
	if v := m.inputs[fieldMetro].Value(); v == "y" || v == "Y" {
		city = domain.CityMetro
	}
	age := parseInt(m.inputs[fieldAge].Value(), 35)

	in := calculation.Input{
		Profile: domain.TaxpayerProfile{
			EmployeeID: "interactive",
			TaxYear:    domain.CurrentTaxYear(time.Now()),
			Age:        age,
			Regime:     domain.RegimeOld,
		},
		Salary: domain.SalaryIncome{
			Basic:       parseMoney(m.inputs[fieldBasic].Value()),
			HRAReceived: parseMoney(m.inputs[fieldHRA].Value()),
			RentPaid:    parseMoney(m.inputs[fieldRent].Value()),
			City:        city,
		},
		Deductions: domain.TaxDeductions{
			Section80C: parseMoney(m.inputs[field80C].Value()),
		},
	}
	if premium := parseMoney(m.inputs[field80D].Value()); premium.IsPositive() {
		in.Deductions.Section80D = &domain.Section80D{SelfFamilyPremium: premium}
	}
	return in
}

func (m *Model) recalculate() {
	rc, err := m.engine.Compare(context.Background(), m.input())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.result = rc
}

func parseMoney(s string) money.Money {
	v, err := money.FromString(s)
	if err != nil {
		return money.Zero()
	}
	if v.IsNegative() {
		return money.Zero()
	}
	return v
}

func parseInt(s string, fallback int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return fallback
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return fallback
	}
	return n
}
