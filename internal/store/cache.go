package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/theonehub/taxcalc/internal/domain"
)

// ResultCache is a read-through cache for calculation results. Keys carry
// the record version, so a stale entry is simply never addressed again after
// the record changes.
type ResultCache interface {
	Get(ctx context.Context, employeeID string, year domain.TaxYear, version int64) (*domain.TaxCalculationResult, bool)
	Set(ctx context.Context, employeeID string, year domain.TaxYear, version int64, res *domain.TaxCalculationResult) error
}

func cacheKey(employeeID string, year domain.TaxYear, version int64) string {
	return fmt.Sprintf("taxcalc:result:%s:%s:v%d", employeeID, year, version)
}

// RedisResultCache caches serialized results in Redis with a TTL.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisResultCache connects to the given Redis address. A zero ttl
// defaults to 24 hours.
func NewRedisResultCache(addr string, ttl time.Duration) *RedisResultCache {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisResultCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Get fetches and decodes a cached result. Any cache failure reads as a
// miss; the caller recomputes from source fields.
func (c *RedisResultCache) Get(ctx context.Context, employeeID string, year domain.TaxYear, version int64) (*domain.TaxCalculationResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(employeeID, year, version)).Bytes()
	if err != nil {
		return nil, false
	}
	var res domain.TaxCalculationResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Set stores a result against the record version.
func (c *RedisResultCache) Set(ctx context.Context, employeeID string, year domain.TaxYear, version int64, res *domain.TaxCalculationResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return c.client.Set(ctx, cacheKey(employeeID, year, version), data, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisResultCache) Close() error {
	return c.client.Close()
}

// NopResultCache satisfies ResultCache without caching anything; used when
// no Redis address is configured.
type NopResultCache struct{}

func (NopResultCache) Get(context.Context, string, domain.TaxYear, int64) (*domain.TaxCalculationResult, bool) {
	return nil, false
}

func (NopResultCache) Set(context.Context, string, domain.TaxYear, int64, *domain.TaxCalculationResult) error {
	return nil
}
