package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// Chapter VI-A caps and fixed amounts.
var (
	basketCap80C        = money.FromInt(150000) // 80C + 80CCC + 80CCD(1) combined
	cap80CCD1B          = money.FromInt(50000)
	cap80DBelow60       = money.FromInt(25000)
	cap80DSenior        = money.FromInt(50000)
	capPreventive       = money.FromInt(5000)
	fixed80DDModerate   = money.FromInt(75000)  // disability 40%-80%
	fixed80DDSevere     = money.FromInt(125000) // disability above 80%
	cap80DDBBelow60     = money.FromInt(40000)
	cap80DDBSenior      = money.FromInt(100000)
	cap80EEB            = money.FromInt(150000)
	eebWindowStart      = time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC)
	eebWindowEnd        = time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)
	nps80CCD2PctPrivate = decimal.NewFromInt(10)
	nps80CCD2PctGovt    = decimal.NewFromInt(14)
)

// DeductionCalculator evaluates the Chapter VI-A sections for one taxpayer.
// Every section returns zero under the new regime. Ineligible claims also
// return zero, with the reason logged; a claim the taxpayer does not qualify
// for is an expected outcome, not an error.
type DeductionCalculator struct {
	regime *TaxRegime
	log    Logger
}

// NewDeductionCalculator creates a calculator for the given regime.
func NewDeductionCalculator(regime *TaxRegime, log Logger) *DeductionCalculator {
	if log == nil {
		log = NopLogger{}
	}
	return &DeductionCalculator{regime: regime, log: log}
}

// Basket80C applies the combined ₹1,50,000 cap across 80C, 80CCC and
// 80CCD(1).
func (dc *DeductionCalculator) Basket80C(d domain.TaxDeductions) money.Money {
	if !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	combined := d.Section80C.Add(d.Section80CCC).Add(d.Section80CCD1)
	return money.Min(combined, basketCap80C)
}

// Deduction80CCD1B applies the separate ₹50,000 NPS cap.
func (dc *DeductionCalculator) Deduction80CCD1B(d domain.TaxDeductions) money.Money {
	if !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	return money.Min(d.Section80CCD1B, cap80CCD1B)
}

// Deduction80CCD2 caps the employer NPS contribution at 10% of basic plus DA
// (14% for government employees).
func (dc *DeductionCalculator) Deduction80CCD2(d domain.TaxDeductions, salaryBase money.Money, governmentEmployee bool) money.Money {
	if !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	pct := nps80CCD2PctPrivate
	if governmentEmployee {
		pct = nps80CCD2PctGovt
	}
	return money.Min(d.Section80CCD2, salaryBase.Percent(pct))
}

// Deduction80D applies the age-tiered health insurance caps: self/family
// split at the taxpayer's age 60, parents at the parents' age. Preventive
// checkup counts inside the self/family cap, itself limited to ₹5,000.
func (dc *DeductionCalculator) Deduction80D(s *domain.Section80D, age int) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	selfCap := cap80DBelow60
	if age >= 60 {
		selfCap = cap80DSenior
	}
	selfClaim := s.SelfFamilyPremium.Add(money.Min(s.PreventiveCheckup, capPreventive))
	total := money.Min(selfClaim, selfCap)

	if s.ParentPremium.IsPositive() {
		parentCap := cap80DBelow60
		if s.ParentAge >= 60 {
			parentCap = cap80DSenior
		}
		total = total.Add(money.Min(s.ParentPremium, parentCap))
	}
	return total
}

// Deduction80DD grants the fixed amount for maintenance of a disabled
// dependant. The amount is fixed per bucket regardless of what was spent --
// that is the statute, not a missing min(). Self is not a dependant; 80U
// covers the taxpayer's own disability.
func (dc *DeductionCalculator) Deduction80DD(s *domain.Section80DD) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	if s.Relation == domain.RelationSelf || !s.Relation.Valid() {
		dc.log.Infof("80DD: relation %q not an eligible dependant, deduction denied", s.Relation)
		return money.Zero()
	}
	switch s.Bucket {
	case domain.Disability40To80:
		return fixed80DDModerate
	case domain.DisabilityAbove80:
		return fixed80DDSevere
	}
	dc.log.Warnf("80DD: unknown disability bucket %q, deduction denied", s.Bucket)
	return money.Zero()
}

// Deduction80DDB caps specified-disease treatment costs by the patient's
// age: ₹40,000 under 60, ₹1,00,000 at 60 and above.
func (dc *DeductionCalculator) Deduction80DDB(s *domain.Section80DDB) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	if !s.Relation.Valid() {
		dc.log.Infof("80DDB: relation %q not eligible, deduction denied", s.Relation)
		return money.Zero()
	}
	cap := cap80DDBBelow60
	if s.PatientAge >= 60 {
		cap = cap80DDBSenior
	}
	return money.Min(s.MedicalExpense, cap)
}

// Deduction80E allows education-loan interest without a cap, for loans taken
// for self, spouse or children.
func (dc *DeductionCalculator) Deduction80E(s *domain.Section80E) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	switch s.Relation {
	case domain.RelationSelf, domain.RelationSpouse, domain.RelationChild:
		return s.InterestPaid
	}
	dc.log.Infof("80E: relation %q not eligible, deduction denied", s.Relation)
	return money.Zero()
}

// Deduction80EEB allows electric-vehicle loan interest up to ₹1,50,000 for
// loans sanctioned between 1 Apr 2019 and 31 Mar 2025.
func (dc *DeductionCalculator) Deduction80EEB(s *domain.Section80EEB) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	if s.LoanSanctionDate.Before(eebWindowStart) || s.LoanSanctionDate.After(eebWindowEnd) {
		dc.log.Infof("80EEB: loan sanctioned %s outside eligibility window, deduction denied",
			s.LoanSanctionDate.Format("2006-01-02"))
		return money.Zero()
	}
	return money.Min(s.InterestPaid, cap80EEB)
}

// Deduction80G evaluates donations across the four categories. The
// qualifying limit for the limited categories is 10% of adjusted gross total
// income; donations in those categories share the one limit.
func (dc *DeductionCalculator) Deduction80G(donations []domain.Donation, adjustedGross money.Money) money.Money {
	if len(donations) == 0 || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	qualifyingLimit := adjustedGross.Percent(decimal.NewFromInt(10))
	limitRemaining := qualifyingLimit

	total := money.Zero()
	half := decimal.NewFromInt(50)
	for _, d := range donations {
		switch d.Category {
		case domain.DoneeFullNoLimit:
			total = total.Add(d.Amount)
		case domain.DoneeHalfNoLimit:
			total = total.Add(d.Amount.Percent(half))
		case domain.DoneeFullWithLimit:
			qualified := money.Min(d.Amount, limitRemaining)
			limitRemaining = limitRemaining.Sub(qualified)
			total = total.Add(qualified)
		case domain.DoneeHalfWithLimit:
			qualified := money.Min(d.Amount, limitRemaining)
			limitRemaining = limitRemaining.Sub(qualified)
			total = total.Add(qualified.Percent(half))
		default:
			dc.log.Warnf("80G: unknown donee category %q for %q, donation skipped", d.Category, d.DoneeName)
		}
	}
	return total
}

// Deduction80GGC allows political-party donations in full.
func (dc *DeductionCalculator) Deduction80GGC(d domain.TaxDeductions) money.Money {
	if !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	return d.Section80GGC
}

// Deduction80U grants the fixed amount for the taxpayer's own disability.
func (dc *DeductionCalculator) Deduction80U(s *domain.Section80U) money.Money {
	if s == nil || !dc.regime.AllowsDeductions() {
		return money.Zero()
	}
	switch s.Bucket {
	case domain.Disability40To80:
		return fixed80DDModerate
	case domain.DisabilityAbove80:
		return fixed80DDSevere
	}
	dc.log.Warnf("80U: unknown disability bucket %q, deduction denied", s.Bucket)
	return money.Zero()
}

// Total evaluates every section and returns the grand total plus the
// per-section breakdown. adjustedGross is the 80G base: gross total income
// net of every other Chapter VI-A deduction and the special-rate capital
// gains.
func (dc *DeductionCalculator) Total(d domain.TaxDeductions, profile domain.TaxpayerProfile, salaryBase, grossTotalIncome money.Money) (money.Money, map[string]money.Money) {
	breakdown := map[string]money.Money{}
	if !dc.regime.AllowsDeductions() {
		return money.Zero(), breakdown
	}

	add := func(name string, v money.Money) {
		if v.IsPositive() {
			breakdown[name] = v
		}
	}

	add("80c_basket", dc.Basket80C(d))
	add("80ccd1b", dc.Deduction80CCD1B(d))
	add("80ccd2", dc.Deduction80CCD2(d, salaryBase, profile.GovernmentEmployee))
	add("80d", dc.Deduction80D(d.Section80D, profile.Age))
	add("80dd", dc.Deduction80DD(d.Section80DD))
	add("80ddb", dc.Deduction80DDB(d.Section80DDB))
	add("80e", dc.Deduction80E(d.Section80E))
	add("80eeb", dc.Deduction80EEB(d.Section80EEB))
	add("80ggc", dc.Deduction80GGC(d))
	add("80u", dc.Deduction80U(d.Section80U))

	subtotal := money.Zero()
	for _, v := range breakdown {
		subtotal = subtotal.Add(v)
	}

	// 80G last: its qualifying limit nets out the other deductions first.
	adjustedGross := grossTotalIncome.Sub(subtotal)
	g := dc.Deduction80G(d.Donations80G, adjustedGross)
	add("80g", g)

	return subtotal.Add(g), breakdown
}
