package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// HRAExemption computes the Section 10(13A) exemption: the least of HRA
// received, rent paid less 10% of basic+DA, and 50% (metro) or 40%
// (non-metro) of basic+DA. Never negative.
func HRAExemption(salary domain.SalaryIncome) money.Money {
	if salary.HRAReceived.IsZero() || salary.RentPaid.IsZero() {
		return money.Zero()
	}
	base := salary.BasicPlusDA()
	rentOverTenPercent := salary.RentPaid.Sub(base.Percent(decimal.NewFromInt(10)))

	pct := decimal.NewFromInt(40)
	if salary.City == domain.CityMetro {
		pct = decimal.NewFromInt(50)
	}
	return money.Min(salary.HRAReceived, rentOverTenPercent, base.Percent(pct))
}
