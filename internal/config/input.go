// Package config loads and validates employee tax declaration files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/pkg/dateutil"
)

// EmployeeInfo identifies the taxpayer in a declaration file. Age may be
// given directly or derived from the birth date; an explicit age wins.
type EmployeeInfo struct {
	ID                 string            `yaml:"id" json:"id"`
	TaxYear            domain.TaxYear    `yaml:"tax_year" json:"tax_year"`
	BirthDate          time.Time         `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	Age                int               `yaml:"age,omitempty" json:"age,omitempty"`
	GovernmentEmployee bool              `yaml:"government_employee" json:"government_employee"`
	Regime             domain.RegimeType `yaml:"regime" json:"regime"`
}

// Declaration is one employee's full tax declaration for a year: identity,
// income heads and Chapter VI-A claims.
type Declaration struct {
	Employee      EmployeeInfo                `yaml:"employee" json:"employee"`
	Salary        domain.SalaryIncome         `yaml:"salary" json:"salary"`
	Perquisites   *domain.Perquisites         `yaml:"perquisites,omitempty" json:"perquisites,omitempty"`
	HouseProperty *domain.HousePropertyIncome `yaml:"house_property,omitempty" json:"house_property,omitempty"`
	CapitalGains  *domain.CapitalGainsIncome  `yaml:"capital_gains,omitempty" json:"capital_gains,omitempty"`
	Retirement    *domain.RetirementBenefits  `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	OtherIncome   *domain.OtherIncome         `yaml:"other_income,omitempty" json:"other_income,omitempty"`
	Deductions    domain.TaxDeductions        `yaml:"deductions" json:"deductions"`
}

// Profile resolves the declaration's identity block into a taxpayer profile,
// deriving age from the birth date when no explicit age is given.
func (d *Declaration) Profile(now time.Time) domain.TaxpayerProfile {
	age := d.Employee.Age
	if age == 0 {
		age = dateutil.AgeOrDefault(d.Employee.BirthDate, now)
	}
	return domain.TaxpayerProfile{
		EmployeeID:         d.Employee.ID,
		TaxYear:            d.Employee.TaxYear,
		Age:                age,
		GovernmentEmployee: d.Employee.GovernmentEmployee,
		Regime:             d.Employee.Regime,
	}
}

// ToInput assembles the engine input from the declaration.
func (d *Declaration) ToInput(now time.Time) calculation.Input {
	return calculation.Input{
		Profile:       d.Profile(now),
		Salary:        d.Salary,
		Perquisites:   d.Perquisites,
		HouseProperty: d.HouseProperty,
		CapitalGains:  d.CapitalGains,
		Retirement:    d.Retirement,
		Other:         d.OtherIncome,
		Deductions:    d.Deductions,
	}
}

// InputParser handles parsing of declaration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a declaration from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Declaration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates declaration YAML.
func (ip *InputParser) Parse(data []byte) (*Declaration, error) {
	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateDeclaration(&decl); err != nil {
		return nil, fmt.Errorf("declaration validation failed: %w", err)
	}
	return &decl, nil
}

// ValidateDeclaration checks the declaration before it reaches the engine:
// identity fields present, enums closed, amounts non-negative.
func (ip *InputParser) ValidateDeclaration(d *Declaration) error {
	if err := ip.validateEmployee(&d.Employee); err != nil {
		return fmt.Errorf("employee validation failed: %w", err)
	}
	if err := ip.validateSalary(&d.Salary); err != nil {
		return fmt.Errorf("salary validation failed: %w", err)
	}
	if err := ip.validateDeductions(&d.Deductions); err != nil {
		return fmt.Errorf("deductions validation failed: %w", err)
	}
	if d.HouseProperty != nil && !d.HouseProperty.PropertyType.Valid() {
		return fmt.Errorf("house property type %q is not recognised", d.HouseProperty.PropertyType)
	}
	return nil
}

func (ip *InputParser) validateEmployee(e *EmployeeInfo) error {
	if e.ID == "" {
		return fmt.Errorf("employee id is required")
	}
	if _, err := domain.ParseTaxYear(string(e.TaxYear)); err != nil {
		return err
	}
	if !e.Regime.Valid() {
		return fmt.Errorf("regime %q is not recognised, use old or new", e.Regime)
	}
	if e.Age == 0 && e.BirthDate.IsZero() {
		return fmt.Errorf("either age or birth date is required")
	}
	return nil
}

func (ip *InputParser) validateSalary(s *domain.SalaryIncome) error {
	if s.Basic.IsNegative() {
		return fmt.Errorf("basic salary must not be negative")
	}
	if s.HRAReceived.IsPositive() && s.RentPaid.IsPositive() && !s.City.Valid() {
		return fmt.Errorf("city type %q is not recognised, use metro or non_metro", s.City)
	}
	for i, a := range s.Allowances {
		if a.Received.IsNegative() {
			return fmt.Errorf("allowance %d (%s): received amount must not be negative", i, a.Kind)
		}
		if a.Months < 0 || a.Months > 12 {
			return fmt.Errorf("allowance %d (%s): months must be within 0..12, got %d", i, a.Kind, a.Months)
		}
	}
	return nil
}

func (ip *InputParser) validateDeductions(d *domain.TaxDeductions) error {
	if d.Section80DD != nil {
		if _, err := domain.ParseDisabilityBucket(string(d.Section80DD.Bucket)); err != nil {
			return fmt.Errorf("80dd: %w", err)
		}
		if !d.Section80DD.Relation.Valid() {
			return fmt.Errorf("80dd: relation %q is not recognised", d.Section80DD.Relation)
		}
	}
	if d.Section80U != nil {
		if _, err := domain.ParseDisabilityBucket(string(d.Section80U.Bucket)); err != nil {
			return fmt.Errorf("80u: %w", err)
		}
	}
	if d.Section80DDB != nil && !d.Section80DDB.Relation.Valid() {
		return fmt.Errorf("80ddb: relation %q is not recognised", d.Section80DDB.Relation)
	}
	for i, don := range d.Donations80G {
		if !don.Category.Valid() {
			return fmt.Errorf("80g donation %d (%s): category %q is not recognised", i, don.DoneeName, don.Category)
		}
		if don.Amount.IsNegative() {
			return fmt.Errorf("80g donation %d (%s): amount must not be negative", i, don.DoneeName)
		}
	}
	return nil
}
