package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// ConsoleFormatter renders a human-readable report with lipgloss styling.
type ConsoleFormatter struct {
	header    lipgloss.Style
	section   lipgloss.Style
	label     lipgloss.Style
	total     lipgloss.Style
	highlight lipgloss.Style
}

// NewConsoleFormatter creates the console formatter with its default styles.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		label:     lipgloss.NewStyle().Width(28),
		total:     lipgloss.NewStyle().Bold(true),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

func (cf *ConsoleFormatter) Name() string { return "console" }

// FormatResult renders one regime's full breakdown.
func (cf *ConsoleFormatter) FormatResult(res *domain.TaxCalculationResult) (string, error) {
	var sb strings.Builder

	sb.WriteString(cf.header.Render(fmt.Sprintf("INCOME TAX COMPUTATION  %s  (%s regime)", res.TaxYear, res.Regime)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	sb.WriteString(cf.section.Render("INCOME") + "\n")
	cf.line(&sb, "Total income", res.TotalIncome)
	cf.line(&sb, "Exemptions", res.TotalExemptions)
	cf.line(&sb, "Standard deduction", res.StandardDeduction)
	cf.line(&sb, "Chapter VI-A deductions", res.TotalDeductions)
	cf.line(&sb, "Taxable income", res.TaxableIncome)
	sb.WriteString("\n")

	sb.WriteString(cf.section.Render("TAX") + "\n")
	cf.line(&sb, "Slab tax", res.SlabTax)
	if res.SpecialRateTax.IsPositive() {
		cf.line(&sb, "Special rate tax", res.SpecialRateTax)
	}
	if res.Rebate87A.IsPositive() {
		cf.line(&sb, "Rebate (87A)", res.Rebate87A)
	}
	if res.Surcharge.IsPositive() {
		cf.line(&sb, "Surcharge", res.Surcharge)
	}
	if res.MarginalRelief.IsPositive() {
		cf.line(&sb, "Marginal relief", res.MarginalRelief)
	}
	cf.line(&sb, "Cess", res.Cess)
	sb.WriteString("\n")

	sb.WriteString(cf.total.Render(fmt.Sprintf("%-28s%s", "TOTAL LIABILITY", res.TotalLiability.Display())))
	sb.WriteString("\n")
	cf.line(&sb, "Monthly TDS", res.MonthlyTDS())

	if len(res.Breakdown) > 0 {
		sb.WriteString("\n" + cf.section.Render("BREAKDOWN") + "\n")
		keys := make([]string, 0, len(res.Breakdown))
		for k := range res.Breakdown {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if res.Breakdown[k].IsPositive() {
				cf.line(&sb, k, res.Breakdown[k])
			}
		}
	}
	return sb.String(), nil
}

// FormatComparison renders both regimes side by side with the
// recommendation.
func (cf *ConsoleFormatter) FormatComparison(rc *compare.RegimeComparison) (string, error) {
	var sb strings.Builder

	sb.WriteString(cf.header.Render(fmt.Sprintf("REGIME COMPARISON  %s", rc.Old.TaxYear)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	rows := []struct {
		label    string
		old, new money.Money
	}{
		{"Taxable income", rc.Old.TaxableIncome, rc.New.TaxableIncome},
		{"Deductions applied", rc.Old.TotalDeductions, rc.New.TotalDeductions},
		{"Tax before rebate", rc.Old.TaxBeforeRebate, rc.New.TaxBeforeRebate},
		{"Total liability", rc.Old.TotalLiability, rc.New.TotalLiability},
	}
	sb.WriteString(fmt.Sprintf("%-24s%18s%18s\n", "", "OLD", "NEW"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-24s%18s%18s\n", r.label, r.old.Display(), r.new.Display()))
	}
	sb.WriteString("\n")

	sb.WriteString(cf.highlight.Render(fmt.Sprintf("Recommended: %s regime", rc.Recommended)))
	sb.WriteString("\n")
	if rc.Savings.IsPositive() {
		sb.WriteString(fmt.Sprintf("Savings: %s per year\n", rc.Savings.Display()))
	}
	return sb.String(), nil
}

func (cf *ConsoleFormatter) line(sb *strings.Builder, label string, v money.Money) {
	sb.WriteString(cf.label.Render(label))
	sb.WriteString(v.Display())
	sb.WriteString("\n")
}
