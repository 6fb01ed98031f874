package domain

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/money"
)

// AccommodationCity buckets the city population for employer-provided
// accommodation valuation.
type AccommodationCity string

const (
	AccommodationCityAbove25L AccommodationCity = "above_25_lakh"
	AccommodationCity10LTo25L AccommodationCity = "10_to_25_lakh"
	AccommodationCityBelow10L AccommodationCity = "below_10_lakh"
)

// AccommodationPerq values employer-provided housing.
type AccommodationPerq struct {
	// GovernmentLicenseFee applies to government employees: the perquisite is
	// the license fee, not a percentage of salary.
	GovernmentLicenseFee money.Money       `yaml:"government_license_fee" json:"government_license_fee"`
	City                 AccommodationCity `yaml:"city" json:"city"`
	// OwnedByEmployer selects the percentage-of-salary valuation; otherwise
	// the lower of actual lease rent and 15% of salary applies.
	OwnedByEmployer bool        `yaml:"owned_by_employer" json:"owned_by_employer"`
	LeaseRentPaid   money.Money `yaml:"lease_rent_paid" json:"lease_rent_paid"`
	RentRecovered   money.Money `yaml:"rent_recovered" json:"rent_recovered"`
}

// CarPerq values an employer-provided car used partly for private purposes.
type CarPerq struct {
	EngineAbove1600CC bool        `yaml:"engine_above_1600cc" json:"engine_above_1600cc"`
	DriverProvided    bool        `yaml:"driver_provided" json:"driver_provided"`
	Months            int         `yaml:"months" json:"months"`
	AmountRecovered   money.Money `yaml:"amount_recovered" json:"amount_recovered"`
	// EmployerCost replaces the fixed per-month valuation when the car is
	// used exclusively for private purposes.
	ExclusivelyPrivate bool        `yaml:"exclusively_private" json:"exclusively_private"`
	EmployerCost       money.Money `yaml:"employer_cost" json:"employer_cost"`
}

// LoanPerq values an interest-free or concessional employer loan.
type LoanPerq struct {
	Principal money.Money `yaml:"principal" json:"principal"`
	// Rates are annual percentages, e.g. 8.5.
	EmployerRate        decimal.Decimal `yaml:"employer_rate" json:"employer_rate"`
	BenchmarkRate       decimal.Decimal `yaml:"benchmark_rate" json:"benchmark_rate"`
	ForMedicalTreatment bool            `yaml:"for_medical_treatment" json:"for_medical_treatment"`
}

// ESOPPerq values shares allotted under an employee stock option plan.
type ESOPPerq struct {
	Shares          int64       `yaml:"shares" json:"shares"`
	FairMarketValue money.Money `yaml:"fair_market_value" json:"fair_market_value"`
	ExercisePrice   money.Money `yaml:"exercise_price" json:"exercise_price"`
}

// MovableAssetUseType classifies an asset for transfer-valuation
// depreciation (50% computers, 20% cars, 10% others, straight-line on cost).
type MovableAssetType string

const (
	AssetComputer MovableAssetType = "computer"
	AssetCar      MovableAssetType = "car"
	AssetOther    MovableAssetType = "other"
)

// MovableAssetUsePerq values personal use of an employer asset.
type MovableAssetUsePerq struct {
	AssetCost       money.Money `yaml:"asset_cost" json:"asset_cost"`
	Months          int         `yaml:"months" json:"months"`
	AmountRecovered money.Money `yaml:"amount_recovered" json:"amount_recovered"`
}

// MovableAssetTransferPerq values an employer asset sold to the employee.
type MovableAssetTransferPerq struct {
	AssetType         MovableAssetType `yaml:"asset_type" json:"asset_type"`
	OriginalCost      money.Money      `yaml:"original_cost" json:"original_cost"`
	YearsUsed         int              `yaml:"years_used" json:"years_used"`
	ConsiderationPaid money.Money      `yaml:"consideration_paid" json:"consideration_paid"`
}

// EducationPerq values employer-run or employer-paid schooling.
type EducationPerq struct {
	MonthlyCostPerChild money.Money `yaml:"monthly_cost_per_child" json:"monthly_cost_per_child"`
	Children            int         `yaml:"children" json:"children"`
	Months              int         `yaml:"months" json:"months"`
}

// MealsPerq values employer-provided meals; the first ₹50 per meal is exempt.
type MealsPerq struct {
	MealCount   int64       `yaml:"meal_count" json:"meal_count"`
	CostPerMeal money.Money `yaml:"cost_per_meal" json:"cost_per_meal"`
}

// Perquisites collects the non-cash benefit declarations. Absent sub-types
// contribute nothing; the valuation formulas live in the calculation package.
type Perquisites struct {
	Accommodation        *AccommodationPerq        `yaml:"accommodation,omitempty" json:"accommodation,omitempty"`
	Car                  *CarPerq                  `yaml:"car,omitempty" json:"car,omitempty"`
	Loan                 *LoanPerq                 `yaml:"loan,omitempty" json:"loan,omitempty"`
	ESOP                 *ESOPPerq                 `yaml:"esop,omitempty" json:"esop,omitempty"`
	MovableAssetUse      *MovableAssetUsePerq      `yaml:"movable_asset_use,omitempty" json:"movable_asset_use,omitempty"`
	MovableAssetTransfer *MovableAssetTransferPerq `yaml:"movable_asset_transfer,omitempty" json:"movable_asset_transfer,omitempty"`
	Education            *EducationPerq            `yaml:"education,omitempty" json:"education,omitempty"`
	Meals                *MealsPerq                `yaml:"meals,omitempty" json:"meals,omitempty"`

	MedicalReimbursement  money.Money `yaml:"medical_reimbursement" json:"medical_reimbursement"`
	LeaveTravelConcession money.Money `yaml:"leave_travel_concession" json:"leave_travel_concession"`
	LTAExemptEligible     money.Money `yaml:"lta_exempt_eligible" json:"lta_exempt_eligible"`
	GiftVouchers          money.Money `yaml:"gift_vouchers" json:"gift_vouchers"`
	Utilities             money.Money `yaml:"utilities" json:"utilities"`
	ClubExpenses          money.Money `yaml:"club_expenses" json:"club_expenses"`
	DomesticHelp          money.Money `yaml:"domestic_help" json:"domestic_help"`
	MonetaryBenefits      money.Money `yaml:"monetary_benefits" json:"monetary_benefits"`
	EmployeeRecovery      money.Money `yaml:"employee_recovery" json:"employee_recovery"`
}
