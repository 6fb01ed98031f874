package output

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/domain"
)

// CSVFormatter emits a flat field,value table suitable for spreadsheets.
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

func (cf *CSVFormatter) FormatResult(res *domain.TaxCalculationResult) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	records := [][]string{
		{"field", "value"},
		{"tax_year", string(res.TaxYear)},
		{"regime", string(res.Regime)},
		{"total_income", res.TotalIncome.StringFixed()},
		{"total_exemptions", res.TotalExemptions.StringFixed()},
		{"standard_deduction", res.StandardDeduction.StringFixed()},
		{"total_deductions", res.TotalDeductions.StringFixed()},
		{"taxable_income", res.TaxableIncome.StringFixed()},
		{"slab_tax", res.SlabTax.StringFixed()},
		{"special_rate_tax", res.SpecialRateTax.StringFixed()},
		{"rebate_87a", res.Rebate87A.StringFixed()},
		{"surcharge", res.Surcharge.StringFixed()},
		{"marginal_relief", res.MarginalRelief.StringFixed()},
		{"cess", res.Cess.StringFixed()},
		{"total_liability", res.TotalLiability.StringFixed()},
		{"monthly_tds", res.MonthlyTDS().StringFixed()},
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) FormatComparison(rc *compare.RegimeComparison) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	records := [][]string{
		{"field", "old", "new"},
		{"taxable_income", rc.Old.TaxableIncome.StringFixed(), rc.New.TaxableIncome.StringFixed()},
		{"total_deductions", rc.Old.TotalDeductions.StringFixed(), rc.New.TotalDeductions.StringFixed()},
		{"tax_before_rebate", rc.Old.TaxBeforeRebate.StringFixed(), rc.New.TaxBeforeRebate.StringFixed()},
		{"total_liability", rc.Old.TotalLiability.StringFixed(), rc.New.TotalLiability.StringFixed()},
		{"recommended", string(rc.Recommended), ""},
		{"savings", rc.Savings.StringFixed(), ""},
	}
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return sb.String(), nil
}
