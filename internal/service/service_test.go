package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theonehub/taxcalc/internal/config"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
	"github.com/theonehub/taxcalc/internal/store"
)

// memoryCache records hits and writes for cache behavior assertions.
type memoryCache struct {
	entries map[string]*domain.TaxCalculationResult
	hits    int
	writes  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*domain.TaxCalculationResult{}}
}

func (c *memoryCache) key(employeeID string, year domain.TaxYear, version int64) string {
	return fmt.Sprintf("%s/%s/%d", year, employeeID, version)
}

func (c *memoryCache) Get(_ context.Context, employeeID string, year domain.TaxYear, version int64) (*domain.TaxCalculationResult, bool) {
	res, ok := c.entries[c.key(employeeID, year, version)]
	if ok {
		c.hits++
	}
	return res, ok
}

func (c *memoryCache) Set(_ context.Context, employeeID string, year domain.TaxYear, version int64, res *domain.TaxCalculationResult) error {
	c.entries[c.key(employeeID, year, version)] = res
	c.writes++
	return nil
}

func sampleDeclaration(regime domain.RegimeType, basic int64) *config.Declaration {
	return &config.Declaration{
		Employee: config.EmployeeInfo{
			ID:      "EMP001",
			TaxYear: "2024-25",
			Age:     35,
			Regime:  regime,
		},
		Salary:     domain.SalaryIncome{Basic: money.FromInt(basic)},
		Deductions: domain.TaxDeductions{Section80C: money.FromInt(150000)},
	}
}

func TestCalculateForEmployeeWithoutRecord(t *testing.T) {
	svc := NewTaxationService(nil, nil)

	// No declaration yet is a valid state, not an error.
	res, err := svc.CalculateForEmployee(context.Background(), "EMP404", "2024-25", "")
	require.NoError(t, err)
	assert.True(t, res.TotalLiability.IsZero(), "zero income defaults owe nothing")
}

func TestSaveDeclarationAndCalculate(t *testing.T) {
	svc := NewTaxationService(nil, nil)
	ctx := context.Background()

	rec, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1200000))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version, "first save keeps the initial version")

	res, err := svc.CalculateForEmployee(ctx, "EMP001", "2024-25", "")
	require.NoError(t, err)
	assert.True(t, res.TotalLiability.Equal(money.FromInt(117000)),
		"liability for 12L basic with 80C at cap, got %s", res.TotalLiability)
}

func TestCalculateReadsThroughCache(t *testing.T) {
	cache := newMemoryCache()
	svc := NewTaxationService(store.NewMemoryStore(), cache)
	ctx := context.Background()

	_, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1200000))
	require.NoError(t, err)

	_, err = svc.CalculateForEmployee(ctx, "EMP001", "2024-25", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.writes, "first calculation populates the cache")

	_, err = svc.CalculateForEmployee(ctx, "EMP001", "2024-25", "")
	require.NoError(t, err)
}

func TestDeclarationUpdateInvalidatesCachedResult(t *testing.T) {
	cache := newMemoryCache()
	svc := NewTaxationService(store.NewMemoryStore(), cache)
	ctx := context.Background()

	_, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1200000))
	require.NoError(t, err)
	before, err := svc.CalculateForEmployee(ctx, "EMP001", "2024-25", "")
	require.NoError(t, err)

	// A new declaration bumps the version; the old cached entry is never
	// addressed again.
	_, err = svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1800000))
	require.NoError(t, err)
	after, err := svc.CalculateForEmployee(ctx, "EMP001", "2024-25", "")
	require.NoError(t, err)

	assert.True(t, after.TotalLiability.GreaterThan(before.TotalLiability),
		"higher salary must produce higher liability, not a stale cached result")
}

func TestCalculateWithRegimeOverride(t *testing.T) {
	svc := NewTaxationService(nil, nil)
	ctx := context.Background()

	_, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1200000))
	require.NoError(t, err)

	oldRes, err := svc.CalculateForEmployee(ctx, "EMP001", "2024-25", domain.RegimeOld)
	require.NoError(t, err)
	newRes, err := svc.CalculateForEmployee(ctx, "EMP001", "2024-25", domain.RegimeNew)
	require.NoError(t, err)

	assert.Equal(t, domain.RegimeNew, newRes.Regime)
	assert.False(t, oldRes.TotalLiability.Equal(newRes.TotalLiability),
		"the override recomputes under the other regime")
}

func TestCompareForEmployee(t *testing.T) {
	svc := NewTaxationService(nil, nil)
	ctx := context.Background()

	_, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1500000))
	require.NoError(t, err)

	rc, err := svc.CompareForEmployee(ctx, "EMP001", "2024-25")
	require.NoError(t, err)
	assert.NotNil(t, rc.Old)
	assert.NotNil(t, rc.New)
	assert.True(t, rc.Recommended.Valid())
}

func TestFinalizeBlocksFurtherUpdates(t *testing.T) {
	svc := NewTaxationService(nil, nil)
	ctx := context.Background()

	_, err := svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1200000))
	require.NoError(t, err)
	require.NoError(t, svc.Finalize(ctx, "EMP001", "2024-25"))

	_, err = svc.SaveDeclaration(ctx, sampleDeclaration(domain.RegimeOld, 1300000))
	assert.Error(t, err, "a finalized record rejects new declarations")
}
