package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// TaxSlab is one progressive bracket. Slabs are half-open intervals
// [Min, Max); a nil Max marks the unbounded top slab.
type TaxSlab struct {
	Min  money.Money
	Max  *money.Money
	Rate decimal.Decimal // percent, e.g. 20
}

// SurchargeSlab maps a taxable-income band to a surcharge rate on tax.
type SurchargeSlab struct {
	Threshold money.Money     // surcharge applies to income above this
	Rate      decimal.Decimal // percent
}

// TaxRegime bundles the regime-specific parameters for one financial year.
// Values are the FY 2024-25 statutory figures.
type TaxRegime struct {
	Type domain.RegimeType

	standardDeduction money.Money
	rebate87ALimit    money.Money
	maxRebate87A      money.Money
	surchargeSlabs    []SurchargeSlab
	cessRate          decimal.Decimal
}

func slab(min int64, max int64, rate int64) TaxSlab {
	m := money.FromInt(max)
	return TaxSlab{Min: money.FromInt(min), Max: &m, Rate: decimal.NewFromInt(rate)}
}

func topSlab(min int64, rate int64) TaxSlab {
	return TaxSlab{Min: money.FromInt(min), Max: nil, Rate: decimal.NewFromInt(rate)}
}

// NewTaxRegime builds the parameter set for a regime type.
func NewTaxRegime(t domain.RegimeType) *TaxRegime {
	r := &TaxRegime{
		Type: t,
		surchargeSlabs: []SurchargeSlab{
			{Threshold: money.FromInt(5000000), Rate: decimal.NewFromInt(10)},
			{Threshold: money.FromInt(10000000), Rate: decimal.NewFromInt(15)},
			{Threshold: money.FromInt(20000000), Rate: decimal.NewFromInt(25)},
			{Threshold: money.FromInt(50000000), Rate: decimal.NewFromInt(37)},
		},
		cessRate: decimal.NewFromInt(4),
	}
	switch t {
	case domain.RegimeNew:
		r.standardDeduction = money.FromInt(75000)
		r.rebate87ALimit = money.FromInt(700000)
		r.maxRebate87A = money.FromInt(25000)
	default:
		r.standardDeduction = money.FromInt(50000)
		r.rebate87ALimit = money.FromInt(500000)
		r.maxRebate87A = money.FromInt(12500)
	}
	return r
}

// TaxSlabs returns the slab table for the taxpayer's age. The old regime has
// three age tiers; the new regime is age-independent.
func (r *TaxRegime) TaxSlabs(age int) []TaxSlab {
	if r.Type == domain.RegimeNew {
		return []TaxSlab{
			slab(0, 300000, 0),
			slab(300000, 700000, 5),
			slab(700000, 1000000, 10),
			slab(1000000, 1200000, 15),
			slab(1200000, 1500000, 20),
			topSlab(1500000, 30),
		}
	}
	switch {
	case age >= 80:
		return []TaxSlab{
			slab(0, 500000, 0),
			slab(500000, 1000000, 20),
			topSlab(1000000, 30),
		}
	case age >= 60:
		return []TaxSlab{
			slab(0, 300000, 0),
			slab(300000, 500000, 5),
			slab(500000, 1000000, 20),
			topSlab(1000000, 30),
		}
	default:
		return []TaxSlab{
			slab(0, 250000, 0),
			slab(250000, 500000, 5),
			slab(500000, 1000000, 20),
			topSlab(1000000, 30),
		}
	}
}

// StandardDeduction returns the flat salary deduction.
func (r *TaxRegime) StandardDeduction() money.Money {
	return r.standardDeduction
}

// Rebate87ALimit returns the taxable-income ceiling for the Section 87A
// rebate. The boundary is inclusive.
func (r *TaxRegime) Rebate87ALimit() money.Money {
	return r.rebate87ALimit
}

// MaxRebate87A returns the rebate cap.
func (r *TaxRegime) MaxRebate87A() money.Money {
	return r.maxRebate87A
}

// AllowsDeductions reports whether Chapter VI-A deductions apply. False for
// the new regime; every section calculator short-circuits on it.
func (r *TaxRegime) AllowsDeductions() bool {
	return r.Type != domain.RegimeNew
}

// SurchargeSlabs returns the income-threshold surcharge table in ascending
// order.
func (r *TaxRegime) SurchargeSlabs() []SurchargeSlab {
	return r.surchargeSlabs
}

// CessRate returns the health and education cess percentage.
func (r *TaxRegime) CessRate() decimal.Decimal {
	return r.cessRate
}
