package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

var (
	loanPerqExemptPrincipal = money.FromInt(20000)
	giftVoucherExemption    = money.FromInt(5000)
	medicalReimbExemption   = money.FromInt(15000)
	mealExemptPerMeal       = money.FromInt(50)
	educationExemptMonthly  = money.FromInt(1000)
)

// PerquisiteComputation is the perquisite head with its per-item breakdown.
type PerquisiteComputation struct {
	Items map[string]money.Money
	Total money.Money
}

// ComputePerquisites values every declared perquisite. salaryBase is the
// annual basic plus DA, the base for the accommodation percentage.
func ComputePerquisites(p *domain.Perquisites, salaryBase money.Money, governmentEmployee bool) PerquisiteComputation {
	comp := PerquisiteComputation{Items: map[string]money.Money{}, Total: money.Zero()}
	if p == nil {
		return comp
	}
	add := func(name string, v money.Money) {
		if v.IsPositive() {
			comp.Items[name] = v
			comp.Total = comp.Total.Add(v)
		}
	}

	if p.Accommodation != nil {
		add("accommodation", accommodationValue(*p.Accommodation, salaryBase, governmentEmployee))
	}
	if p.Car != nil {
		add("car", carValue(*p.Car))
	}
	if p.Loan != nil {
		add("loan", loanValue(*p.Loan))
	}
	if p.ESOP != nil {
		add("esop", esopValue(*p.ESOP))
	}
	if p.MovableAssetUse != nil {
		add("movable_asset_use", assetUseValue(*p.MovableAssetUse))
	}
	if p.MovableAssetTransfer != nil {
		add("movable_asset_transfer", assetTransferValue(*p.MovableAssetTransfer))
	}
	if p.Education != nil {
		add("education", educationValue(*p.Education))
	}
	if p.Meals != nil {
		add("meals", mealsValue(*p.Meals))
	}

	add("medical_reimbursement", p.MedicalReimbursement.Sub(medicalReimbExemption))
	add("leave_travel", p.LeaveTravelConcession.Sub(money.Min(p.LeaveTravelConcession, p.LTAExemptEligible)))
	add("gift_vouchers", p.GiftVouchers.Sub(giftVoucherExemption))
	add("utilities", p.Utilities)
	add("club", p.ClubExpenses)
	add("domestic_help", p.DomesticHelp)
	add("monetary_benefits", p.MonetaryBenefits)

	comp.Total = comp.Total.Sub(p.EmployeeRecovery)
	return comp
}

// accommodationValue: government employees are taxed on the license fee;
// employer-owned housing at a population-tiered percentage of salary; leased
// housing at the lower of actual rent and 15% of salary. Rent recovered from
// the employee reduces the value.
func accommodationValue(a domain.AccommodationPerq, salaryBase money.Money, governmentEmployee bool) money.Money {
	if governmentEmployee {
		return a.GovernmentLicenseFee.Sub(a.RentRecovered)
	}
	var value money.Money
	if a.OwnedByEmployer {
		pct := decimal.NewFromFloat(7.5)
		switch a.City {
		case domain.AccommodationCityAbove25L:
			pct = decimal.NewFromInt(15)
		case domain.AccommodationCity10LTo25L:
			pct = decimal.NewFromInt(10)
		}
		value = salaryBase.Percent(pct)
	} else {
		value = money.Min(a.LeaseRentPaid, salaryBase.Percent(decimal.NewFromInt(15)))
	}
	return value.Sub(a.RentRecovered)
}

// carValue: mixed private/official use is valued at the fixed monthly rates
// (₹1,800 up to 1600cc, ₹2,400 above, plus ₹900 for a driver); exclusive
// private use at the employer's actual cost.
func carValue(c domain.CarPerq) money.Money {
	months := c.Months
	if months <= 0 || months > 12 {
		months = 12
	}
	if c.ExclusivelyPrivate {
		return c.EmployerCost.Sub(c.AmountRecovered)
	}
	monthly := int64(1800)
	if c.EngineAbove1600CC {
		monthly = 2400
	}
	if c.DriverProvided {
		monthly += 900
	}
	return money.FromInt(monthly).MulInt(int64(months)).Sub(c.AmountRecovered)
}

// loanValue: interest saved against the benchmark rate. Loans up to ₹20,000
// and medical-treatment loans are exempt.
func loanValue(l domain.LoanPerq) money.Money {
	if l.ForMedicalTreatment || l.Principal.LessThanOrEqual(loanPerqExemptPrincipal) {
		return money.Zero()
	}
	diff := l.BenchmarkRate.Sub(l.EmployerRate)
	if diff.LessThanOrEqual(decimal.Zero) {
		return money.Zero()
	}
	return l.Principal.Percent(diff)
}

// esopValue: fair market value over exercise price at allotment, per share.
func esopValue(e domain.ESOPPerq) money.Money {
	perShare := e.FairMarketValue.Sub(e.ExercisePrice)
	return perShare.MulInt(e.Shares)
}

// assetUseValue: 10% per annum of the asset cost, prorated by months.
func assetUseValue(u domain.MovableAssetUsePerq) money.Money {
	months := u.Months
	if months <= 0 || months > 12 {
		months = 12
	}
	annual := u.AssetCost.Percent(decimal.NewFromInt(10))
	return annual.MulInt(int64(months)).DivInt(12).Sub(u.AmountRecovered)
}

// assetTransferValue: depreciated cost less consideration paid. Computers
// depreciate 50% per completed year on written-down value, cars 20% on
// written-down value, other assets 10% straight-line.
func assetTransferValue(t domain.MovableAssetTransferPerq) money.Money {
	value := t.OriginalCost
	switch t.AssetType {
	case domain.AssetComputer:
		for i := 0; i < t.YearsUsed; i++ {
			value = value.Percent(decimal.NewFromInt(50))
		}
	case domain.AssetCar:
		for i := 0; i < t.YearsUsed; i++ {
			value = value.Percent(decimal.NewFromInt(80))
		}
	default:
		depreciation := t.OriginalCost.Percent(decimal.NewFromInt(10)).MulInt(int64(t.YearsUsed))
		value = t.OriginalCost.Sub(depreciation)
	}
	return value.Sub(t.ConsiderationPaid)
}

// educationValue: employer schooling is exempt when the cost is within
// ₹1,000 per child per month; beyond that the full cost is taxable.
func educationValue(e domain.EducationPerq) money.Money {
	if e.MonthlyCostPerChild.LessThanOrEqual(educationExemptMonthly) {
		return money.Zero()
	}
	months := e.Months
	if months <= 0 || months > 12 {
		months = 12
	}
	return e.MonthlyCostPerChild.MulInt(int64(e.Children)).MulInt(int64(months))
}

// mealsValue: cost over ₹50 per meal.
func mealsValue(m domain.MealsPerq) money.Money {
	excess := m.CostPerMeal.Sub(mealExemptPerMeal)
	return excess.MulInt(m.MealCount)
}
