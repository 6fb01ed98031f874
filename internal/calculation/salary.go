package calculation

import (
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// perMonthLimits holds the fixed monthly exemption limits for allowances
// under Section 10(14)(ii), in rupees.
var perMonthLimits = map[domain.AllowanceKind]int64{
	domain.AllowanceTransportDisabled: 3200,
	domain.AllowanceHillArea:          300,
	domain.AllowanceBorderArea:        1300,
	domain.AllowanceTribalArea:        200,
	domain.AllowanceCompensatoryField: 2600,
	domain.AllowanceCounterInsurgency: 3900,
	domain.AllowanceUndergroundMines:  800,
	domain.AllowanceIslandDuty:        3250,
	domain.AllowanceHighAltitude:      1060,
}

// expenseBacked are the Section 10(14)(i) kinds exempt to the extent
// actually spent for duty.
var expenseBacked = map[domain.AllowanceKind]bool{
	domain.AllowanceConveyance:       true,
	domain.AllowanceUniform:          true,
	domain.AllowanceHelper:           true,
	domain.AllowanceAcademicResearch: true,
	domain.AllowanceDaily:            true,
	domain.AllowanceTravelOnTour:     true,
}

// perChildMonthly holds the per-child monthly limits, capped at two children.
var perChildMonthly = map[domain.AllowanceKind]int64{
	domain.AllowanceChildrenEducation: 100,
	domain.AllowanceHostel:            300,
}

// AllowanceExemption applies the statutory limit rule for one allowance
// line. Anything with no rule (overtime, city compensatory, other) is fully
// taxable.
func AllowanceExemption(a domain.Allowance) money.Money {
	months := a.Months
	if months <= 0 || months > 12 {
		months = 12
	}

	if limit, ok := perChildMonthly[a.Kind]; ok {
		children := a.ChildCount
		if children > 2 {
			children = 2
		}
		cap := money.FromInt(limit).MulInt(int64(months)).MulInt(int64(children))
		return money.Min(a.Received, cap)
	}
	if limit, ok := perMonthLimits[a.Kind]; ok {
		cap := money.FromInt(limit).MulInt(int64(months))
		return money.Min(a.Received, cap)
	}
	if expenseBacked[a.Kind] {
		return money.Min(a.Received, a.AmountSpent)
	}
	return money.Zero()
}

// SalaryComputation is the salary head after component exemptions.
type SalaryComputation struct {
	Gross               money.Money
	HRAExemption        money.Money
	AllowanceExemptions money.Money
	TotalExemptions     money.Money
	Taxable             money.Money
}

// ComputeSalary aggregates the salary head: gross of all components, less
// the HRA exemption and the per-allowance exemptions.
func ComputeSalary(s domain.SalaryIncome) SalaryComputation {
	gross := s.GrossSalary()
	hra := HRAExemption(s)

	allowanceExempt := money.Zero()
	for _, a := range s.Allowances {
		allowanceExempt = allowanceExempt.Add(AllowanceExemption(a))
	}

	total := hra.Add(allowanceExempt)
	return SalaryComputation{
		Gross:               gross,
		HRAExemption:        hra,
		AllowanceExemptions: allowanceExempt,
		TotalExemptions:     total,
		Taxable:             gross.Sub(total),
	}
}
