package domain

import "github.com/theonehub/taxcalc/internal/money"

// CapitalGainsIncome declares the year's gains split by taxation rule. Only
// the slab-rate short-term kinds fold into ordinary taxable income; the
// special-rate kinds are taxed flat and added after the slab walk.
type CapitalGainsIncome struct {
	// STCGEquitySTT: equity/equity-MF with STT paid, Section 111A flat rate.
	STCGEquitySTT money.Money `yaml:"stcg_equity_stt" json:"stcg_equity_stt"`
	// STCGOther is taxed at slab rates as ordinary income.
	STCGOther money.Money `yaml:"stcg_other" json:"stcg_other"`
	// STCGDebtMF is taxed at slab rates as ordinary income.
	STCGDebtMF money.Money `yaml:"stcg_debt_mf" json:"stcg_debt_mf"`
	// LTCGEquity112A: listed equity beyond the exempt band, Section 112A.
	LTCGEquity112A money.Money `yaml:"ltcg_equity_112a" json:"ltcg_equity_112a"`
	// LTCGOther: long-term gains taxed at the general flat rate.
	LTCGOther money.Money `yaml:"ltcg_other" json:"ltcg_other"`
	// LTCGDebtMF: long-term debt mutual fund gains, flat rate.
	LTCGDebtMF money.Money `yaml:"ltcg_debt_mf" json:"ltcg_debt_mf"`
}

// SlabRateGains returns the portion taxed as ordinary income.
func (c CapitalGainsIncome) SlabRateGains() money.Money {
	return c.STCGOther.Add(c.STCGDebtMF)
}

// SpecialRateGains returns the portion taxed at flat rates outside the slabs.
func (c CapitalGainsIncome) SpecialRateGains() money.Money {
	return c.STCGEquitySTT.Add(c.LTCGEquity112A).Add(c.LTCGOther).Add(c.LTCGDebtMF)
}
