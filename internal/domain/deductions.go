package domain

import (
	"time"

	"github.com/theonehub/taxcalc/internal/money"
)

// Section80D declares health insurance premiums. Caps split at age 60 for
// self/family and again at the parents' age.
type Section80D struct {
	SelfFamilyPremium money.Money `yaml:"self_family_premium" json:"self_family_premium"`
	ParentPremium     money.Money `yaml:"parent_premium" json:"parent_premium"`
	ParentAge         int         `yaml:"parent_age" json:"parent_age"`
	PreventiveCheckup money.Money `yaml:"preventive_checkup" json:"preventive_checkup"`
}

// Section80DD declares maintenance of a disabled dependant. The deduction is
// a fixed amount per disability bucket; the amount actually spent is recorded
// for audit but never changes the deduction.
type Section80DD struct {
	Relation    RelationType     `yaml:"relation" json:"relation"`
	Bucket      DisabilityBucket `yaml:"bucket" json:"bucket"`
	AmountSpent money.Money      `yaml:"amount_spent" json:"amount_spent"`
}

// Section80DDB declares treatment of specified diseases.
type Section80DDB struct {
	Relation       RelationType `yaml:"relation" json:"relation"`
	PatientAge     int          `yaml:"patient_age" json:"patient_age"`
	MedicalExpense money.Money  `yaml:"medical_expense" json:"medical_expense"`
}

// Section80E declares education-loan interest; no cap, relation-gated.
type Section80E struct {
	Relation     RelationType `yaml:"relation" json:"relation"`
	InterestPaid money.Money  `yaml:"interest_paid" json:"interest_paid"`
}

// Section80EEB declares electric-vehicle loan interest; the loan must have
// been sanctioned inside the statutory window.
type Section80EEB struct {
	InterestPaid     money.Money `yaml:"interest_paid" json:"interest_paid"`
	LoanSanctionDate time.Time   `yaml:"loan_sanction_date" json:"loan_sanction_date"`
}

// Donation is one 80G donation line.
type Donation struct {
	DoneeName string        `yaml:"donee_name" json:"donee_name"`
	Category  DoneeCategory `yaml:"category" json:"category"`
	Amount    money.Money   `yaml:"amount" json:"amount"`
}

// Section80U declares the taxpayer's own disability; fixed amount per bucket.
type Section80U struct {
	Bucket DisabilityBucket `yaml:"bucket" json:"bucket"`
}

// TaxDeductions aggregates the Chapter VI-A declarations. All of it is
// ignored under the new regime.
type TaxDeductions struct {
	// Section80C investments share a combined ₹1,50,000 cap with 80CCC and
	// 80CCD(1).
	Section80C    money.Money `yaml:"section_80c" json:"section_80c"`
	Section80CCC  money.Money `yaml:"section_80ccc" json:"section_80ccc"`
	Section80CCD1 money.Money `yaml:"section_80ccd1" json:"section_80ccd1"`
	// Section80CCD1B has its own ₹50,000 cap outside the combined basket.
	Section80CCD1B money.Money `yaml:"section_80ccd1b" json:"section_80ccd1b"`
	// Section80CCD2 is the employer NPS contribution, capped at a percentage
	// of basic plus DA.
	Section80CCD2 money.Money `yaml:"section_80ccd2" json:"section_80ccd2"`

	Section80D   *Section80D   `yaml:"section_80d,omitempty" json:"section_80d,omitempty"`
	Section80DD  *Section80DD  `yaml:"section_80dd,omitempty" json:"section_80dd,omitempty"`
	Section80DDB *Section80DDB `yaml:"section_80ddb,omitempty" json:"section_80ddb,omitempty"`
	Section80E   *Section80E   `yaml:"section_80e,omitempty" json:"section_80e,omitempty"`
	Section80EEB *Section80EEB `yaml:"section_80eeb,omitempty" json:"section_80eeb,omitempty"`
	Donations80G []Donation    `yaml:"donations_80g,omitempty" json:"donations_80g,omitempty"`
	Section80GGC money.Money   `yaml:"section_80ggc" json:"section_80ggc"`
	Section80U   *Section80U   `yaml:"section_80u,omitempty" json:"section_80u,omitempty"`
}
