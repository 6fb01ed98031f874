package domain

import "github.com/theonehub/taxcalc/internal/money"

// TaxCalculationResult is the pure output of one regime calculation. Every
// monetary field is a money.Money; the struct is never mutated after the
// engine returns it. The type system enforces the Money-only invariant the
// source platform had to assert at runtime.
type TaxCalculationResult struct {
	TaxYear TaxYear    `json:"tax_year"`
	Regime  RegimeType `json:"regime"`

	TotalIncome       money.Money `json:"total_income"`
	TotalExemptions   money.Money `json:"total_exemptions"`
	StandardDeduction money.Money `json:"standard_deduction"`
	TotalDeductions   money.Money `json:"total_deductions"`
	TaxableIncome     money.Money `json:"taxable_income"`

	SlabTax         money.Money `json:"slab_tax"`
	SpecialRateTax  money.Money `json:"special_rate_tax"`
	TaxBeforeRebate money.Money `json:"tax_before_rebate"`
	Rebate87A       money.Money `json:"rebate_87a"`
	TaxAfterRebate  money.Money `json:"tax_after_rebate"`
	Surcharge       money.Money `json:"surcharge"`
	MarginalRelief  money.Money `json:"marginal_relief"`
	Cess            money.Money `json:"cess"`
	TotalLiability  money.Money `json:"total_liability"`

	// Breakdown carries the per-component amounts (income heads, exemption
	// lines, deduction sections) for display and persistence.
	Breakdown map[string]money.Money `json:"breakdown"`
}

// MonthlyTDS is the flat monthly withholding implied by the annual liability.
func (r *TaxCalculationResult) MonthlyTDS() money.Money {
	return r.TotalLiability.DivInt(12)
}

// EffectiveRatePercent returns liability as a percentage of total income,
// zero when there is no income.
func (r *TaxCalculationResult) EffectiveRatePercent() money.Money {
	if !r.TotalIncome.IsPositive() {
		return money.Zero()
	}
	return r.TotalLiability.MulInt(100).Div(r.TotalIncome.Decimal())
}
