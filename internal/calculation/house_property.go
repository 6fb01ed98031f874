package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

var (
	selfOccupiedInterestCap        = money.FromInt(200000)
	selfOccupiedInterestCapPre1999 = money.FromInt(30000)
)

// HousePropertyComputation is the house property head. Income can be
// negative (a loss) for self-occupied property, which is why it is the one
// signed figure in the pipeline; the engine folds it in with signed
// arithmetic and the final taxable income is still clamped at zero.
type HousePropertyComputation struct {
	NetAnnualValue    money.Money
	StandardDeduction money.Money
	InterestAllowed   money.Money
	Income            money.Money
	IsLoss            bool
}

// ComputeHouseProperty applies the Section 24 computation: gross annual
// value less municipal taxes gives the net annual value; 30% standard
// deduction and capped home-loan interest come off that.
func ComputeHouseProperty(hp *domain.HousePropertyIncome) HousePropertyComputation {
	if hp == nil {
		return HousePropertyComputation{}
	}

	if hp.PropertyType == domain.PropertySelfOccupied {
		// Annual value is nil; only the interest deduction survives, capped.
		cap := selfOccupiedInterestCap
		if hp.PreApril1999Loan {
			cap = selfOccupiedInterestCapPre1999
		}
		interest := money.Min(hp.HomeLoanInterest, cap)
		return HousePropertyComputation{
			InterestAllowed: interest,
			Income:          interest,
			IsLoss:          interest.IsPositive(),
		}
	}

	nav := hp.AnnualRentReceived.Sub(hp.MunicipalTaxesPaid)
	standard := nav.Percent(decimal.NewFromInt(30))
	remaining := nav.Sub(standard)

	if hp.HomeLoanInterest.GreaterThan(remaining) {
		// Interest exceeds the net value: the head turns into a loss.
		loss := hp.HomeLoanInterest.Sub(remaining)
		return HousePropertyComputation{
			NetAnnualValue:    nav,
			StandardDeduction: standard,
			InterestAllowed:   hp.HomeLoanInterest,
			Income:            loss,
			IsLoss:            true,
		}
	}
	return HousePropertyComputation{
		NetAnnualValue:    nav,
		StandardDeduction: standard,
		InterestAllowed:   hp.HomeLoanInterest,
		Income:            remaining.Sub(hp.HomeLoanInterest),
	}
}
