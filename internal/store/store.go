// Package store persists salary package records and caches calculation
// results.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/theonehub/taxcalc/internal/domain"
)

var (
	// ErrRecordNotFound marks the valid no-declaration-yet state; callers
	// construct zero-income defaults rather than failing.
	ErrRecordNotFound = errors.New("salary package record not found")
	// ErrVersionConflict signals a lost-update race; the caller reloads and
	// retries.
	ErrVersionConflict = errors.New("record version conflict")
)

// RecordStore persists salary package records keyed by employee and tax
// year. Saves are guarded by the record's optimistic version counter.
type RecordStore interface {
	Get(ctx context.Context, employeeID string, year domain.TaxYear) (*domain.SalaryPackageRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SalaryPackageRecord, error)
	Save(ctx context.Context, rec *domain.SalaryPackageRecord) error
	List(ctx context.Context, employeeID string) ([]*domain.SalaryPackageRecord, error)
}

type recordKey struct {
	employeeID string
	year       domain.TaxYear
}

// MemoryStore is an in-process RecordStore. Version-check-and-swap under a
// mutex serializes racing writers per record.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[recordKey]*domain.SalaryPackageRecord
	byID    map[uuid.UUID]recordKey
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: map[recordKey]*domain.SalaryPackageRecord{},
		byID:    map[uuid.UUID]recordKey{},
	}
}

func (s *MemoryStore) Get(ctx context.Context, employeeID string, year domain.TaxYear) (*domain.SalaryPackageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[recordKey{employeeID, year}]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.SalaryPackageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRecord(s.records[key]), nil
}

// Save stores the record if its version is exactly one ahead of the stored
// copy (or the record is new). On success the caller's copy is the
// authoritative one.
func (s *MemoryStore) Save(ctx context.Context, rec *domain.SalaryPackageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey{rec.Profile.EmployeeID, rec.Profile.TaxYear}
	if existing, ok := s.records[key]; ok && rec.Version != existing.Version+1 {
		return ErrVersionConflict
	}
	s.records[key] = cloneRecord(rec)
	s.byID[rec.ID] = key
	return nil
}

func (s *MemoryStore) List(ctx context.Context, employeeID string) ([]*domain.SalaryPackageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.SalaryPackageRecord
	for key, rec := range s.records {
		if key.employeeID == employeeID {
			out = append(out, cloneRecord(rec))
		}
	}
	return out, nil
}

// cloneRecord copies the top-level record so callers never share the stored
// instance. Nested income blocks are treated as immutable once attached.
func cloneRecord(rec *domain.SalaryPackageRecord) *domain.SalaryPackageRecord {
	c := *rec
	return &c
}
