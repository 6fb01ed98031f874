package domain

import "fmt"

// TaxpayerProfile carries the personal context the statutory formulas depend
// on: age drives slab selection and the 80D/80DDB tiers, the government flag
// unlocks the full-exemption paths for retirement benefits.
type TaxpayerProfile struct {
	EmployeeID         string     `yaml:"employee_id" json:"employee_id"`
	TaxYear            TaxYear    `yaml:"tax_year" json:"tax_year"`
	Age                int        `yaml:"age" json:"age"`
	GovernmentEmployee bool       `yaml:"government_employee" json:"government_employee"`
	Regime             RegimeType `yaml:"regime" json:"regime"`
}

// Validate rejects profiles the engine must not be invoked with.
func (p TaxpayerProfile) Validate() error {
	if p.EmployeeID == "" {
		return fmt.Errorf("employee id is required")
	}
	if !p.TaxYear.Valid() {
		return fmt.Errorf("invalid tax year %q", p.TaxYear)
	}
	if p.Age < 18 || p.Age > 100 {
		return fmt.Errorf("age %d out of plausible range [18, 100]", p.Age)
	}
	if !p.Regime.Valid() {
		return fmt.Errorf("invalid regime %q", p.Regime)
	}
	return nil
}

// IsSeniorCitizen reports age 60 or above (80D/80DDB caps, slab tier).
func (p TaxpayerProfile) IsSeniorCitizen() bool {
	return p.Age >= 60
}

// IsSuperSeniorCitizen reports age 80 or above (old-regime slab tier).
func (p TaxpayerProfile) IsSuperSeniorCitizen() bool {
	return p.Age >= 80
}
