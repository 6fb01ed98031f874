package calculation

import "github.com/theonehub/taxcalc/internal/money"

// SlabTax walks the progressive slabs in ascending order. Income exactly on
// a boundary belongs to the lower slab: incomeInSlab = min(income, max) − min
// over half-open [min, max) intervals.
func SlabTax(taxableIncome money.Money, slabs []TaxSlab) money.Money {
	tax := money.Zero()
	for _, s := range slabs {
		if taxableIncome.LessThanOrEqual(s.Min) {
			break
		}
		upper := taxableIncome
		if s.Max != nil {
			upper = money.Min(taxableIncome, *s.Max)
		}
		incomeInSlab := upper.Sub(s.Min)
		if incomeInSlab.IsPositive() {
			tax = tax.Add(incomeInSlab.Percent(s.Rate))
		}
	}
	return tax
}

// Rebate87A returns the Section 87A rebate: min(tax, cap) when taxable
// income is at or below the regime limit (inclusive boundary), else zero.
func Rebate87A(taxableIncome, taxBeforeRebate money.Money, regime *TaxRegime) money.Money {
	if taxableIncome.GreaterThan(regime.Rebate87ALimit()) {
		return money.Zero()
	}
	return money.Min(taxBeforeRebate, regime.MaxRebate87A())
}

// Surcharge computes the surcharge on tax for high taxable incomes, with
// marginal relief: tax plus surcharge above a threshold never exceeds the
// tax at the threshold plus the income above it. specialRateTax is the
// flat-rate capital-gains portion of taxAfterRebate; it is owed at the
// threshold too, so it sits on both sides of the relief comparison. Returns
// the surcharge after relief and the relief amount.
func Surcharge(taxAfterRebate, specialRateTax, taxableIncome money.Money, regime *TaxRegime, age int) (money.Money, money.Money) {
	table := regime.SurchargeSlabs()
	idx := -1
	for i, s := range table {
		if taxableIncome.GreaterThan(s.Threshold) {
			idx = i
		}
	}
	if idx < 0 {
		return money.Zero(), money.Zero()
	}

	applicable := table[idx]
	surcharge := taxAfterRebate.Percent(applicable.Rate)

	// Marginal relief against the threshold just crossed.
	slabs := regime.TaxSlabs(age)
	taxAtThreshold := SlabTax(applicable.Threshold, slabs).Add(specialRateTax)
	surchargeAtThreshold := money.Zero()
	if idx > 0 {
		surchargeAtThreshold = taxAtThreshold.Percent(table[idx-1].Rate)
	}
	cap := taxAtThreshold.Add(surchargeAtThreshold).Add(taxableIncome.Sub(applicable.Threshold))

	burden := taxAfterRebate.Add(surcharge)
	if burden.GreaterThan(cap) {
		relief := money.Min(burden.Sub(cap), surcharge)
		return surcharge.Sub(relief), relief
	}
	return surcharge, money.Zero()
}

// Cess is the flat health and education levy on tax plus surcharge.
func Cess(taxAfterRebate, surcharge money.Money, regime *TaxRegime) money.Money {
	return taxAfterRebate.Add(surcharge).Percent(regime.CessRate())
}
