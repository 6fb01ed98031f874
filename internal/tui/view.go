package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theonehub/taxcalc/internal/money"
)

// View renders the input column next to the live regime panel.
func (m Model) View() string {
	var form strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := labelStyle
		if i == m.focused {
			label = focusedLabelStyle
		}
		form.WriteString(label.Render(fieldLabels[i]))
		form.WriteString(m.inputs[i].View())
		form.WriteString("\n")
	}

	left := panelStyle.Render(form.String())
	right := panelStyle.Render(m.resultPanel())

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("TAX REGIME EXPLORER"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	sb.WriteString(helpStyle.Render("tab/shift+tab move between fields, q quits"))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) resultPanel() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("calculation failed: %v", m.err))
	}
	if m.result == nil {
		return "enter figures to compare regimes"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s%14s%14s\n", "", "OLD", "NEW"))
	rows := []struct {
		label    string
		old, new money.Money
	}{
		{"Taxable income", m.result.Old.TaxableIncome, m.result.New.TaxableIncome},
		{"Slab tax", m.result.Old.SlabTax, m.result.New.SlabTax},
		{"Rebate (87A)", m.result.Old.Rebate87A, m.result.New.Rebate87A},
		{"Cess", m.result.Old.Cess, m.result.New.Cess},
		{"Total liability", m.result.Old.TotalLiability, m.result.New.TotalLiability},
		{"Monthly TDS", m.result.Old.MonthlyTDS(), m.result.New.MonthlyTDS()},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-20s%14s%14s\n",
			r.label, r.old.Round(0).String(), r.new.Round(0).String()))
	}
	sb.WriteString("\n")
	sb.WriteString(recommendStyle.Render(fmt.Sprintf("Recommended: %s regime", m.result.Recommended)))
	if m.result.Savings.IsPositive() {
		sb.WriteString(fmt.Sprintf("\nSaves %s per year", m.result.Savings.Display()))
	}
	return sb.String()
}
