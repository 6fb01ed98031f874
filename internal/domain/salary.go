package domain

import "github.com/theonehub/taxcalc/internal/money"

// AllowanceKind names a statutory salary allowance. Each kind carries its own
// exemption-limit rule, applied by the salary aggregator.
type AllowanceKind string

const (
	AllowanceChildrenEducation AllowanceKind = "children_education"
	AllowanceHostel            AllowanceKind = "hostel"
	AllowanceTransportDisabled AllowanceKind = "transport_disabled"
	AllowanceConveyance        AllowanceKind = "conveyance"
	AllowanceUniform           AllowanceKind = "uniform"
	AllowanceHelper            AllowanceKind = "helper"
	AllowanceAcademicResearch  AllowanceKind = "academic_research"
	AllowanceDaily             AllowanceKind = "daily"
	AllowanceTravelOnTour      AllowanceKind = "travel_on_tour"
	AllowanceHillArea          AllowanceKind = "hill_area"
	AllowanceBorderArea        AllowanceKind = "border_area"
	AllowanceTribalArea        AllowanceKind = "tribal_area"
	AllowanceCompensatoryField AllowanceKind = "compensatory_field"
	AllowanceCounterInsurgency AllowanceKind = "counter_insurgency"
	AllowanceUndergroundMines  AllowanceKind = "underground_mines"
	AllowanceIslandDuty        AllowanceKind = "island_duty"
	AllowanceHighAltitude      AllowanceKind = "high_altitude"
	AllowanceOvertime          AllowanceKind = "overtime"
	AllowanceCityCompensatory  AllowanceKind = "city_compensatory"
	AllowanceOther             AllowanceKind = "other"
)

// Allowance is one declared allowance line for the year.
type Allowance struct {
	Kind AllowanceKind `yaml:"kind" json:"kind"`
	// Received is the annual amount paid under this head.
	Received money.Money `yaml:"received" json:"received"`
	// AmountSpent backs the expense-linked kinds (conveyance, uniform,
	// helper, academic research, daily, travel on tour).
	AmountSpent money.Money `yaml:"amount_spent,omitempty" json:"amount_spent,omitempty"`
	// Months the allowance was drawn, for the per-month limited kinds.
	Months int `yaml:"months,omitempty" json:"months,omitempty"`
	// ChildCount for the education and hostel kinds (statute caps at two).
	ChildCount int `yaml:"child_count,omitempty" json:"child_count,omitempty"`
}

// SalaryIncome bundles the annual salary components of one employment
// period. Amounts are annual figures.
type SalaryIncome struct {
	Basic             money.Money `yaml:"basic" json:"basic"`
	DearnessAllowance money.Money `yaml:"dearness_allowance" json:"dearness_allowance"`
	HRAReceived       money.Money `yaml:"hra_received" json:"hra_received"`
	City              CityType    `yaml:"city" json:"city"`
	RentPaid          money.Money `yaml:"rent_paid" json:"rent_paid"`
	Bonus             money.Money `yaml:"bonus" json:"bonus"`
	Commission        money.Money `yaml:"commission" json:"commission"`
	SpecialAllowance  money.Money `yaml:"special_allowance" json:"special_allowance"`
	Allowances        []Allowance `yaml:"allowances,omitempty" json:"allowances,omitempty"`
}

// BasicPlusDA is the base most statutory formulas work from.
func (s SalaryIncome) BasicPlusDA() money.Money {
	return s.Basic.Add(s.DearnessAllowance)
}

// GrossSalary sums every salary component before any exemption.
func (s SalaryIncome) GrossSalary() money.Money {
	total := s.Basic.
		Add(s.DearnessAllowance).
		Add(s.HRAReceived).
		Add(s.Bonus).
		Add(s.Commission).
		Add(s.SpecialAllowance)
	for _, a := range s.Allowances {
		total = total.Add(a.Received)
	}
	return total
}
