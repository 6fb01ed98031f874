package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

func oldRegimeCalc() *DeductionCalculator {
	return NewDeductionCalculator(NewTaxRegime(domain.RegimeOld), nil)
}

func TestNewRegimeGatesEverySection(t *testing.T) {
	dc := NewDeductionCalculator(NewTaxRegime(domain.RegimeNew), nil)
	d := domain.TaxDeductions{
		Section80C:     money.FromInt(150000),
		Section80CCD1B: money.FromInt(50000),
		Section80CCD2:  money.FromInt(100000),
		Section80GGC:   money.FromInt(25000),
		Section80D:     &domain.Section80D{SelfFamilyPremium: money.FromInt(20000)},
		Section80DD:    &domain.Section80DD{Relation: domain.RelationChild, Bucket: domain.DisabilityAbove80},
		Section80E:     &domain.Section80E{Relation: domain.RelationSelf, InterestPaid: money.FromInt(80000)},
		Section80U:     &domain.Section80U{Bucket: domain.Disability40To80},
		Donations80G: []domain.Donation{
			{DoneeName: "PM relief fund", Category: domain.DoneeFullNoLimit, Amount: money.FromInt(10000)},
		},
	}
	profile := domain.TaxpayerProfile{EmployeeID: "E1", TaxYear: "2024-25", Age: 45, Regime: domain.RegimeNew}

	total, breakdown := dc.Total(d, profile, money.FromInt(600000), money.FromInt(2000000))
	assert.True(t, total.IsZero(), "new regime must zero every deduction, got %s", total)
	assert.Empty(t, breakdown, "new regime breakdown should be empty")
}

func TestBasket80CSharedCap(t *testing.T) {
	dc := oldRegimeCalc()
	d := domain.TaxDeductions{
		Section80C:    money.FromInt(100000),
		Section80CCC:  money.FromInt(40000),
		Section80CCD1: money.FromInt(60000),
	}
	got := dc.Basket80C(d)
	assert.True(t, got.Equal(money.FromInt(150000)),
		"80C basket caps the combined 200000 at 150000, got %s", got)
}

func TestDeduction80DAgeTiers(t *testing.T) {
	dc := oldRegimeCalc()

	s := &domain.Section80D{SelfFamilyPremium: money.FromInt(60000)}
	assert.True(t, dc.Deduction80D(s, 45).Equal(money.FromInt(25000)),
		"self cap below 60 is 25000")
	assert.True(t, dc.Deduction80D(s, 60).Equal(money.FromInt(50000)),
		"self cap at 60 is 50000")

	withParents := &domain.Section80D{
		SelfFamilyPremium: money.FromInt(20000),
		ParentPremium:     money.FromInt(60000),
		ParentAge:         62,
	}
	got := dc.Deduction80D(withParents, 45)
	assert.True(t, got.Equal(money.FromInt(70000)),
		"20000 self plus senior parent cap 50000, got %s", got)
}

func TestDeduction80DPreventiveCheckupInsideCap(t *testing.T) {
	dc := oldRegimeCalc()
	s := &domain.Section80D{
		SelfFamilyPremium: money.FromInt(10000),
		PreventiveCheckup: money.FromInt(9000),
	}
	got := dc.Deduction80D(s, 40)
	assert.True(t, got.Equal(money.FromInt(15000)),
		"preventive checkup is limited to 5000 within the self cap, got %s", got)
}

func TestDeduction80DDFixedAmounts(t *testing.T) {
	dc := oldRegimeCalc()

	// The deduction is a statutory fixed amount, never proportional to spend.
	for _, spent := range []int64{0, 10000, 500000} {
		moderate := dc.Deduction80DD(&domain.Section80DD{
			Relation:    domain.RelationChild,
			Bucket:      domain.Disability40To80,
			AmountSpent: money.FromInt(spent),
		})
		assert.True(t, moderate.Equal(money.FromInt(75000)),
			"40-80%% bucket pays exactly 75000 regardless of spend %d, got %s", spent, moderate)

		severe := dc.Deduction80DD(&domain.Section80DD{
			Relation:    domain.RelationParent,
			Bucket:      domain.DisabilityAbove80,
			AmountSpent: money.FromInt(spent),
		})
		assert.True(t, severe.Equal(money.FromInt(125000)),
			"above-80%% bucket pays exactly 125000 regardless of spend %d, got %s", spent, severe)
	}
}

func TestDeduction80DDSelfNotADependant(t *testing.T) {
	dc := oldRegimeCalc()
	got := dc.Deduction80DD(&domain.Section80DD{
		Relation: domain.RelationSelf,
		Bucket:   domain.DisabilityAbove80,
	})
	assert.True(t, got.IsZero(), "80DD covers dependants only, self claims go to 80U")
}

func TestDeduction80DDBPatientAge(t *testing.T) {
	dc := oldRegimeCalc()
	s := &domain.Section80DDB{
		Relation:       domain.RelationParent,
		MedicalExpense: money.FromInt(150000),
	}

	s.PatientAge = 55
	assert.True(t, dc.Deduction80DDB(s).Equal(money.FromInt(40000)),
		"below-60 patient caps at 40000")
	s.PatientAge = 61
	assert.True(t, dc.Deduction80DDB(s).Equal(money.FromInt(100000)),
		"senior patient caps at 100000")
}

func TestDeduction80ERelationGate(t *testing.T) {
	dc := oldRegimeCalc()
	interest := money.FromInt(90000)

	for _, rel := range []domain.RelationType{domain.RelationSelf, domain.RelationSpouse, domain.RelationChild} {
		got := dc.Deduction80E(&domain.Section80E{Relation: rel, InterestPaid: interest})
		assert.True(t, got.Equal(interest), "education loan for %s is uncapped", rel)
	}
	got := dc.Deduction80E(&domain.Section80E{Relation: domain.RelationSibling, InterestPaid: interest})
	assert.True(t, got.IsZero(), "sibling loans are not eligible under 80E")
}

func TestDeduction80EEBSanctionWindow(t *testing.T) {
	dc := oldRegimeCalc()
	s := &domain.Section80EEB{
		InterestPaid:     money.FromInt(200000),
		LoanSanctionDate: time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, dc.Deduction80EEB(s).Equal(money.FromInt(150000)),
		"in-window EV loan interest caps at 150000")

	s.LoanSanctionDate = time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, dc.Deduction80EEB(s).IsZero(), "pre-window sanction is ineligible")
	s.LoanSanctionDate = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, dc.Deduction80EEB(s).IsZero(), "post-window sanction is ineligible")
}

func TestDeduction80GCategories(t *testing.T) {
	dc := oldRegimeCalc()
	adjustedGross := money.FromInt(1000000) // qualifying limit 100000

	donations := []domain.Donation{
		{DoneeName: "national fund", Category: domain.DoneeFullNoLimit, Amount: money.FromInt(40000)},
		{DoneeName: "notified trust", Category: domain.DoneeHalfNoLimit, Amount: money.FromInt(40000)},
		{DoneeName: "local body", Category: domain.DoneeFullWithLimit, Amount: money.FromInt(60000)},
		{DoneeName: "charitable org", Category: domain.DoneeHalfWithLimit, Amount: money.FromInt(80000)},
	}
	// 40000 + 20000 + 60000 + 50%*min(80000, 100000-60000) = 40000+20000+60000+20000.
	got := dc.Deduction80G(donations, adjustedGross)
	assert.True(t, got.Equal(money.FromInt(140000)),
		"limited categories share one 10%% qualifying limit, got %s", got)
}

func TestDeduction80UFixedAmounts(t *testing.T) {
	dc := oldRegimeCalc()
	assert.True(t, dc.Deduction80U(&domain.Section80U{Bucket: domain.Disability40To80}).Equal(money.FromInt(75000)),
		"own disability 40-80%% is a fixed 75000")
	assert.True(t, dc.Deduction80U(&domain.Section80U{Bucket: domain.DisabilityAbove80}).Equal(money.FromInt(125000)),
		"own disability above 80%% is a fixed 125000")
}

func TestDeduction80CCD2EmployerPercent(t *testing.T) {
	dc := oldRegimeCalc()
	d := domain.TaxDeductions{Section80CCD2: money.FromInt(100000)}
	salaryBase := money.FromInt(600000)

	assert.True(t, dc.Deduction80CCD2(d, salaryBase, false).Equal(money.FromInt(60000)),
		"private employer NPS caps at 10%% of basic plus DA")
	assert.True(t, dc.Deduction80CCD2(d, salaryBase, true).Equal(money.FromInt(84000)),
		"government employer NPS caps at 14%% of basic plus DA")
}

func TestTotalComputes80GAgainstAdjustedGross(t *testing.T) {
	dc := oldRegimeCalc()
	profile := domain.TaxpayerProfile{EmployeeID: "E2", TaxYear: "2024-25", Age: 40, Regime: domain.RegimeOld}
	d := domain.TaxDeductions{
		Section80C: money.FromInt(150000),
		Donations80G: []domain.Donation{
			{DoneeName: "local body", Category: domain.DoneeFullWithLimit, Amount: money.FromInt(200000)},
		},
	}

	// Gross 1000000, other deductions 150000, so the 80G limit is 10% of 850000.
	total, breakdown := dc.Total(d, profile, money.Zero(), money.FromInt(1000000))
	assert.True(t, breakdown["80g"].Equal(money.FromInt(85000)),
		"80G qualifying limit nets out the other sections first, got %s", breakdown["80g"])
	assert.True(t, total.Equal(money.FromInt(235000)),
		"expected 150000 + 85000, got %s", total)
}
