package calculation

import (
	"fmt"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// Input is the fully-assembled fact set for one calculation. The caller
// (use case, CLI, test) resolves records, profiles and defaults before the
// engine runs; the engine itself does no I/O.
type Input struct {
	Profile       domain.TaxpayerProfile
	Salary        domain.SalaryIncome
	Perquisites   *domain.Perquisites
	HouseProperty *domain.HousePropertyIncome
	CapitalGains  *domain.CapitalGainsIncome
	Retirement    *domain.RetirementBenefits
	Other         *domain.OtherIncome
	Deductions    domain.TaxDeductions
}

// InputFromRecord assembles engine input from a persisted record.
func InputFromRecord(r *domain.SalaryPackageRecord) Input {
	return Input{
		Profile:       r.Profile,
		Salary:        r.Salary,
		Perquisites:   r.Perquisites,
		HouseProperty: r.HouseProperty,
		CapitalGains:  r.CapitalGains,
		Retirement:    r.Retirement,
		Other:         r.OtherIncome,
		Deductions:    r.Deductions,
	}
}

// TaxCalculationService orchestrates the full pipeline: income aggregation,
// exemptions, deductions, slab tax, special-rate capital-gains tax, rebate,
// surcharge and cess. It is pure and synchronous; it knows nothing about
// regime comparison, storage or transport.
type TaxCalculationService struct {
	Logger Logger
}

// NewTaxCalculationService creates a service with a no-op logger.
func NewTaxCalculationService() *TaxCalculationService {
	return &TaxCalculationService{Logger: NopLogger{}}
}

// SetLogger replaces the logger; nil restores the no-op logger.
func (s *TaxCalculationService) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	s.Logger = l
}

// Calculate runs the pipeline for one taxpayer and regime. A zero result is
// never fabricated on failure: any error carries the employee and tax-year
// context and must be surfaced.
func (s *TaxCalculationService) Calculate(in Input) (*domain.TaxCalculationResult, error) {
	if err := s.validate(in); err != nil {
		return nil, fmt.Errorf("tax calculation for %s/%s: %w", in.Profile.EmployeeID, in.Profile.TaxYear, err)
	}

	regime := NewTaxRegime(in.Profile.Regime)
	breakdown := map[string]money.Money{}

	// Income heads, exemptions applied per component.
	salary := ComputeSalary(in.Salary)
	perqs := ComputePerquisites(in.Perquisites, in.Salary.BasicPlusDA(), in.Profile.GovernmentEmployee)
	house := ComputeHouseProperty(in.HouseProperty)
	retirement := ComputeRetirement(in.Retirement, in.Profile.GovernmentEmployee, in.Profile.Age)
	otherIncome := ComputeOtherIncome(in.Other)

	slabGains := money.Zero()
	if in.CapitalGains != nil {
		slabGains = in.CapitalGains.SlabRateGains()
	}

	breakdown["income_salary"] = salary.Gross
	breakdown["income_perquisites"] = perqs.Total
	breakdown["income_retirement"] = retirement.Gross
	breakdown["income_capital_gains_slab"] = slabGains
	breakdown["income_other"] = otherIncome

	grossIncome := salary.Gross.
		Add(perqs.Total).
		Add(retirement.Gross).
		Add(slabGains).
		Add(otherIncome)
	if house.IsLoss {
		breakdown["loss_house_property"] = house.Income
		grossIncome = grossIncome.Sub(house.Income)
	} else if house.Income.IsPositive() {
		breakdown["income_house_property"] = house.Income
		grossIncome = grossIncome.Add(house.Income)
	}

	exemptions := salary.TotalExemptions.Add(retirement.Exempt)
	breakdown["exemption_hra"] = salary.HRAExemption
	breakdown["exemption_allowances"] = salary.AllowanceExemptions
	breakdown["exemption_retirement"] = retirement.Exempt

	afterExemptions := grossIncome.Sub(exemptions)
	afterStandard := afterExemptions.Sub(regime.StandardDeduction())

	deductionCalc := NewDeductionCalculator(regime, s.Logger)
	deductions, deductionItems := deductionCalc.Total(in.Deductions, in.Profile, in.Salary.BasicPlusDA(), afterStandard)
	for name, v := range deductionItems {
		breakdown["deduction_"+name] = v
	}

	taxable := afterStandard.Sub(deductions)

	// Tax on ordinary income, then the flat-rate capital-gains additions.
	slabs := regime.TaxSlabs(in.Profile.Age)
	slabTax := SlabTax(taxable, slabs)
	specialTax := SpecialRateTax(in.CapitalGains)
	taxBeforeRebate := slabTax.Add(specialTax)

	rebate := Rebate87A(taxable, taxBeforeRebate, regime)
	taxAfterRebate := taxBeforeRebate.Sub(rebate)

	surcharge, relief := Surcharge(taxAfterRebate, specialTax, taxable, regime, in.Profile.Age)
	cess := Cess(taxAfterRebate, surcharge, regime)
	total := taxAfterRebate.Add(surcharge).Add(cess)

	s.Logger.Debugf("calculated %s/%s regime=%s taxable=%s liability=%s",
		in.Profile.EmployeeID, in.Profile.TaxYear, regime.Type, taxable, total)

	return &domain.TaxCalculationResult{
		TaxYear:           in.Profile.TaxYear,
		Regime:            regime.Type,
		TotalIncome:       grossIncome,
		TotalExemptions:   exemptions,
		StandardDeduction: regime.StandardDeduction(),
		TotalDeductions:   deductions,
		TaxableIncome:     taxable,
		SlabTax:           slabTax,
		SpecialRateTax:    specialTax,
		TaxBeforeRebate:   taxBeforeRebate,
		Rebate87A:         rebate,
		TaxAfterRebate:    taxAfterRebate,
		Surcharge:         surcharge,
		MarginalRelief:    relief,
		Cess:              cess,
		TotalLiability:    total,
		Breakdown:         breakdown,
	}, nil
}

// validate fails fast on inputs the engine must never silently coerce.
func (s *TaxCalculationService) validate(in Input) error {
	if err := in.Profile.Validate(); err != nil {
		return err
	}
	nonNegative := map[string]money.Money{
		"basic":              in.Salary.Basic,
		"dearness_allowance": in.Salary.DearnessAllowance,
		"hra_received":       in.Salary.HRAReceived,
		"rent_paid":          in.Salary.RentPaid,
		"section_80c":        in.Deductions.Section80C,
		"section_80ccc":      in.Deductions.Section80CCC,
		"section_80ccd1":     in.Deductions.Section80CCD1,
		"section_80ccd1b":    in.Deductions.Section80CCD1B,
		"section_80ccd2":     in.Deductions.Section80CCD2,
	}
	for name, v := range nonNegative {
		if v.IsNegative() {
			return fmt.Errorf("%s must not be negative, got %s", name, v)
		}
	}
	return nil
}
