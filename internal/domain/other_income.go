package domain

import "github.com/theonehub/taxcalc/internal/money"

// OtherIncome declares income under the residual head.
type OtherIncome struct {
	SavingsInterest          money.Money `yaml:"savings_interest" json:"savings_interest"`
	FixedDepositInterest     money.Money `yaml:"fixed_deposit_interest" json:"fixed_deposit_interest"`
	RecurringDepositInterest money.Money `yaml:"recurring_deposit_interest" json:"recurring_deposit_interest"`
	OtherInterest            money.Money `yaml:"other_interest" json:"other_interest"`
	Dividends                money.Money `yaml:"dividends" json:"dividends"`
	// GiftsReceived is exempt up to ₹50,000 in aggregate; a rupee over makes
	// the whole amount taxable.
	GiftsReceived        money.Money `yaml:"gifts_received" json:"gifts_received"`
	BusinessProfessional money.Money `yaml:"business_professional" json:"business_professional"`
	Miscellaneous        money.Money `yaml:"miscellaneous" json:"miscellaneous"`
}

// TotalInterest sums the interest sub-types.
func (o OtherIncome) TotalInterest() money.Money {
	return o.SavingsInterest.
		Add(o.FixedDepositInterest).
		Add(o.RecurringDepositInterest).
		Add(o.OtherInterest)
}
