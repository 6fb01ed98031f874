package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

var ltcg112AExemptBand = money.FromInt(100000)

// SpecialRateTax computes the flat-rate tax on the capital-gains kinds that
// never fold into slab income: Section 111A short-term equity at 15%,
// Section 112A long-term equity at 10% beyond the ₹1 lakh exempt band, and
// other long-term gains (including debt mutual funds) at 20%. Added to the
// slab tax before the rebate, surcharge and cess steps.
func SpecialRateTax(cg *domain.CapitalGainsIncome) money.Money {
	if cg == nil {
		return money.Zero()
	}
	tax := cg.STCGEquitySTT.Percent(decimal.NewFromInt(15))

	ltcgEquity := cg.LTCGEquity112A.Sub(ltcg112AExemptBand)
	tax = tax.Add(ltcgEquity.Percent(decimal.NewFromInt(10)))

	tax = tax.Add(cg.LTCGOther.Percent(decimal.NewFromInt(20)))
	tax = tax.Add(cg.LTCGDebtMF.Percent(decimal.NewFromInt(20)))
	return tax
}
