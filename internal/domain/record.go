package domain

import (
	"time"

	"github.com/google/uuid"
)

// SalaryPackageRecord is the persisted aggregate: one employee's declarations
// for one tax year plus the derived calculation cache. The cached result is
// never the source of truth; it is valid only while CalculatedVersion still
// equals Version.
type SalaryPackageRecord struct {
	ID         uuid.UUID       `json:"id"`
	EmployeeID string          `json:"employee_id"`
	TaxYear    TaxYear         `json:"tax_year"`
	Profile    TaxpayerProfile `json:"profile"`

	Salary        SalaryIncome         `json:"salary"`
	Perquisites   *Perquisites         `json:"perquisites,omitempty"`
	HouseProperty *HousePropertyIncome `json:"house_property,omitempty"`
	CapitalGains  *CapitalGainsIncome  `json:"capital_gains,omitempty"`
	Retirement    *RetirementBenefits  `json:"retirement,omitempty"`
	OtherIncome   *OtherIncome         `json:"other_income,omitempty"`
	Deductions    TaxDeductions        `json:"deductions"`

	Result            *TaxCalculationResult `json:"result,omitempty"`
	LastCalculatedAt  time.Time             `json:"last_calculated_at"`
	CalculatedVersion int64                 `json:"calculated_version"`

	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Version is the optimistic concurrency counter; every mutation bumps it.
	Version int64 `json:"version"`
}

// NewSalaryPackageRecord creates a record for a first-time declaration.
func NewSalaryPackageRecord(profile TaxpayerProfile, now time.Time) *SalaryPackageRecord {
	return &SalaryPackageRecord{
		ID:         uuid.New(),
		EmployeeID: profile.EmployeeID,
		TaxYear:    profile.TaxYear,
		Profile:    profile,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}
}

// Touch records a mutation: bumps the version and the updated timestamp. Any
// cached result becomes stale by construction.
func (r *SalaryPackageRecord) Touch(now time.Time) {
	r.Version++
	r.UpdatedAt = now
}

// MarkCalculated caches a freshly computed result against the current
// version.
func (r *SalaryPackageRecord) MarkCalculated(result *TaxCalculationResult, now time.Time) {
	r.Result = result
	r.LastCalculatedAt = now
	r.CalculatedVersion = r.Version
}

// ResultCurrent reports whether the cached result still matches the inputs.
func (r *SalaryPackageRecord) ResultCurrent() bool {
	return r.Result != nil && r.CalculatedVersion == r.Version
}
