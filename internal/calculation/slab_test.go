package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

func TestSlabTaxOldRegime(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeOld)
	slabs := regime.TaxSlabs(35)

	tests := []struct {
		name    string
		taxable int64
		want    int64
	}{
		{"below basic exemption", 200000, 0},
		{"exactly at basic exemption", 250000, 0},
		{"middle of 5% slab", 400000, 7500},
		{"top of 5% slab", 500000, 12500},
		{"middle of 20% slab", 750000, 62500},
		{"top of 20% slab", 1000000, 112500},
		{"into 30% slab", 1500000, 262500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlabTax(money.FromInt(tt.taxable), slabs)
			assert.True(t, got.Equal(money.FromInt(tt.want)),
				"taxable %d: expected %d, got %s", tt.taxable, tt.want, got)
		})
	}
}

func TestSlabTaxOldRegimeSeniorTiers(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeOld)

	// Senior citizens start at 3 lakh, super seniors at 5 lakh.
	taxable := money.FromInt(500000)
	assert.True(t, SlabTax(taxable, regime.TaxSlabs(65)).Equal(money.FromInt(10000)),
		"senior citizen should pay 5%% on 2L above the 3L exemption")
	assert.True(t, SlabTax(taxable, regime.TaxSlabs(82)).IsZero(),
		"super senior citizen owes nothing at 5L")
}

func TestSlabTaxNewRegime(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeNew)

	tests := []struct {
		name    string
		taxable int64
		want    int64
	}{
		{"below exemption", 300000, 0},
		{"5% slab", 500000, 10000},
		{"through 10% slab", 1000000, 50000},
		{"through all slabs", 1600000, 170000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// New regime slabs ignore age.
			for _, age := range []int{30, 65, 85} {
				got := SlabTax(money.FromInt(tt.taxable), regime.TaxSlabs(age))
				assert.True(t, got.Equal(money.FromInt(tt.want)),
					"taxable %d at age %d: expected %d, got %s", tt.taxable, age, tt.want, got)
			}
		})
	}
}

func TestSlabTaxMonotonic(t *testing.T) {
	for _, rt := range []domain.RegimeType{domain.RegimeOld, domain.RegimeNew} {
		slabs := NewTaxRegime(rt).TaxSlabs(45)
		prev := money.Zero()
		for income := int64(0); income <= 6000000; income += 137000 {
			tax := SlabTax(money.FromInt(income), slabs)
			assert.True(t, tax.GreaterThanOrEqual(prev),
				"%s regime: tax at %d dropped below tax at lower income", rt, income)
			prev = tax
		}
	}
}

func TestRebate87ABoundary(t *testing.T) {
	oldRegime := NewTaxRegime(domain.RegimeOld)
	newRegime := NewTaxRegime(domain.RegimeNew)

	// Inclusive at the limit, gone one rupee above.
	atLimit := money.FromInt(500000)
	tax := SlabTax(atLimit, oldRegime.TaxSlabs(35))
	assert.True(t, Rebate87A(atLimit, tax, oldRegime).Equal(tax),
		"old regime rebate at exactly 5L should wipe out the tax")
	aboveLimit := money.FromInt(500001)
	assert.True(t, Rebate87A(aboveLimit, tax, oldRegime).IsZero(),
		"old regime rebate must vanish one rupee above the limit")

	atNewLimit := money.FromInt(700000)
	newTax := SlabTax(atNewLimit, newRegime.TaxSlabs(35))
	assert.True(t, Rebate87A(atNewLimit, newTax, newRegime).Equal(newTax),
		"new regime rebate at exactly 7L should wipe out the tax")
	assert.True(t, Rebate87A(money.FromInt(700001), newTax, newRegime).IsZero(),
		"new regime rebate must vanish one rupee above the limit")
}

func TestRebate87ACapped(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeOld)
	// The rebate never exceeds the tax owed.
	smallTax := money.FromInt(2000)
	assert.True(t, Rebate87A(money.FromInt(290000), smallTax, regime).Equal(smallTax),
		"rebate should equal the tax when tax is below the cap")
}

func TestSurchargeBoundaries(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeOld)
	age := 35

	atThreshold := money.FromInt(5000000)
	tax := SlabTax(atThreshold, regime.TaxSlabs(age))
	s, relief := Surcharge(tax, money.Zero(), atThreshold, regime, age)
	assert.True(t, s.IsZero(), "no surcharge at exactly 50L, got %s", s)
	assert.True(t, relief.IsZero(), "no relief without surcharge")

	justAbove := money.FromInt(5000001)
	taxAbove := SlabTax(justAbove, regime.TaxSlabs(age))
	s, relief = Surcharge(taxAbove, money.Zero(), justAbove, regime, age)
	assert.True(t, s.IsPositive(), "surcharge must apply one rupee above 50L")
	assert.True(t, relief.IsPositive(),
		"one rupee above the threshold the full 10%% surcharge exceeds the extra income, so relief applies")

	// Marginal relief caps the burden at tax-at-threshold plus the excess income.
	burden := taxAbove.Add(s)
	capAmount := tax.Add(justAbove.Sub(atThreshold))
	assert.True(t, burden.LessThanOrEqual(capAmount),
		"burden %s must not exceed threshold tax plus excess income %s", burden, capAmount)
}

func TestSurchargeRates(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeNew)
	age := 40

	tests := []struct {
		name    string
		taxable int64
		rate    int64
	}{
		{"10 percent band", 7500000, 10},
		{"15 percent band", 15000000, 15},
		{"25 percent band", 30000000, 25},
		{"37 percent band", 80000000, 37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable := money.FromInt(tt.taxable)
			tax := SlabTax(taxable, regime.TaxSlabs(age))
			s, relief := Surcharge(tax, money.Zero(), taxable, regime, age)
			if relief.IsZero() {
				want := tax.MulInt(tt.rate).DivInt(100)
				assert.True(t, s.Equal(want),
					"expected %d%% surcharge %s, got %s", tt.rate, want, s)
			} else {
				assert.True(t, s.LessThan(tax.MulInt(tt.rate).DivInt(100)),
					"relieved surcharge must be below the headline rate")
			}
		})
	}
}

func TestSurchargeWithSpecialRateTax(t *testing.T) {
	regime := NewTaxRegime(domain.RegimeOld)
	age := 40

	taxable := money.FromInt(6000000)
	slabTax := SlabTax(taxable, regime.TaxSlabs(age))
	base, baseRelief := Surcharge(slabTax, money.Zero(), taxable, regime, age)
	assert.True(t, base.Equal(money.FromInt(161250)), "surcharge on slab tax alone, got %s", base)
	assert.True(t, baseRelief.IsZero(), "60L is well clear of the 50L threshold, no relief expected")

	// Flat-rate capital-gains tax is owed at the threshold too, so adding it
	// must never shrink the surcharge.
	specialTax := money.FromInt(1000000)
	withCG, cgRelief := Surcharge(slabTax.Add(specialTax), specialTax, taxable, regime, age)
	assert.True(t, withCG.GreaterThanOrEqual(base),
		"adding flat-rate capital-gains tax must not shrink the surcharge: got %s vs %s", withCG, base)
	assert.True(t, withCG.Equal(money.FromInt(261250)), "10%% of the full tax, got %s", withCG)
	assert.True(t, cgRelief.IsZero(), "no relief at 60L regardless of the gains")

	// Just above the threshold relief still caps the burden, with the
	// special-rate tax sitting on both sides of the comparison.
	justAbove := money.FromInt(5000001)
	slabAbove := SlabTax(justAbove, regime.TaxSlabs(age))
	total := slabAbove.Add(specialTax)
	s, relief := Surcharge(total, specialTax, justAbove, regime, age)
	assert.True(t, relief.IsPositive(), "relief must apply one rupee above 50L")
	capAmount := SlabTax(money.FromInt(5000000), regime.TaxSlabs(age)).
		Add(specialTax).
		Add(money.FromInt(1))
	assert.True(t, total.Add(s).LessThanOrEqual(capAmount),
		"relieved burden %s must not exceed threshold tax plus excess income %s", total.Add(s), capAmount)
}

func TestCessFourPercent(t *testing.T) {
	for _, rt := range []domain.RegimeType{domain.RegimeOld, domain.RegimeNew} {
		regime := NewTaxRegime(rt)
		got := Cess(money.FromInt(100000), money.FromInt(10000), regime)
		assert.True(t, got.Equal(money.FromInt(4400)),
			"%s regime: cess on 110000 should be 4400, got %s", rt, got)
	}
}
