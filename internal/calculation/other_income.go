package calculation

import (
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

var giftExemptionThreshold = money.FromInt(50000)

// ComputeOtherIncome aggregates the residual head. Gifts are exempt only
// while the aggregate stays within ₹50,000; one rupee over and the whole
// amount is taxable.
func ComputeOtherIncome(o *domain.OtherIncome) money.Money {
	if o == nil {
		return money.Zero()
	}
	total := o.TotalInterest().
		Add(o.Dividends).
		Add(o.BusinessProfessional).
		Add(o.Miscellaneous)

	if o.GiftsReceived.GreaterThan(giftExemptionThreshold) {
		total = total.Add(o.GiftsReceived)
	}
	return total
}
