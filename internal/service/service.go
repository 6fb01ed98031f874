// Package service coordinates record storage, the result cache and the pure
// calculation engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/config"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/store"
	"github.com/theonehub/taxcalc/pkg/dateutil"
)

const saveRetries = 3

// TaxationService is the application-facing facade: it resolves records,
// runs calculations read-through the cache and persists results. The engine
// underneath stays pure.
type TaxationService struct {
	Store store.RecordStore
	Cache store.ResultCache
	Calc  *calculation.TaxCalculationService
	Cmp   *compare.Engine

	now func() time.Time
}

// NewTaxationService wires the service. A nil cache disables caching; a nil
// store is replaced with an in-memory one.
func NewTaxationService(st store.RecordStore, cache store.ResultCache) *TaxationService {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if cache == nil {
		cache = store.NopResultCache{}
	}
	calc := calculation.NewTaxCalculationService()
	return &TaxationService{
		Store: st,
		Cache: cache,
		Calc:  calc,
		Cmp:   compare.NewEngine(calc),
		now:   time.Now,
	}
}

// SaveDeclaration creates or updates the employee's record for the year from
// a validated declaration. Version conflicts are retried against a fresh
// copy.
func (s *TaxationService) SaveDeclaration(ctx context.Context, decl *config.Declaration) (*domain.SalaryPackageRecord, error) {
	now := s.now()
	profile := decl.Profile(now)

	for attempt := 0; attempt < saveRetries; attempt++ {
		rec, err := s.Store.Get(ctx, profile.EmployeeID, profile.TaxYear)
		if errors.Is(err, store.ErrRecordNotFound) {
			rec = domain.NewSalaryPackageRecord(profile, now)
		} else if err != nil {
			return nil, err
		} else {
			if rec.Finalized {
				return nil, fmt.Errorf("record for %s/%s is finalized", profile.EmployeeID, profile.TaxYear)
			}
			rec.Profile = profile
			rec.Touch(now)
		}

		rec.Salary = decl.Salary
		rec.Perquisites = decl.Perquisites
		rec.HouseProperty = decl.HouseProperty
		rec.CapitalGains = decl.CapitalGains
		rec.Retirement = decl.Retirement
		rec.OtherIncome = decl.OtherIncome
		rec.Deductions = decl.Deductions

		err = s.Store.Save(ctx, rec)
		if errors.Is(err, store.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, fmt.Errorf("saving declaration for %s/%s: %w", profile.EmployeeID, profile.TaxYear, store.ErrVersionConflict)
}

// CalculateForEmployee computes the liability for an employee and year,
// reading through the result cache. A missing record is the valid
// not-yet-declared state and computes against zero income defaults.
func (s *TaxationService) CalculateForEmployee(ctx context.Context, employeeID string, year domain.TaxYear, regime domain.RegimeType) (*domain.TaxCalculationResult, error) {
	rec, err := s.Store.Get(ctx, employeeID, year)
	if errors.Is(err, store.ErrRecordNotFound) {
		in := defaultInput(employeeID, year, regime)
		return s.Calc.Calculate(in)
	}
	if err != nil {
		return nil, err
	}

	if regime != "" && regime != rec.Profile.Regime {
		// A regime override bypasses the cache; the cached result belongs
		// to the record's own regime.
		in := calculation.InputFromRecord(rec)
		in.Profile.Regime = regime
		return s.Calc.Calculate(in)
	}

	if cached, ok := s.Cache.Get(ctx, employeeID, year, rec.Version); ok {
		return cached, nil
	}
	if rec.ResultCurrent() {
		return rec.Result, nil
	}

	res, err := s.Calc.Calculate(calculation.InputFromRecord(rec))
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Set(ctx, employeeID, year, rec.Version, res); err != nil {
		// Cache failures never fail the calculation.
		s.Calc.Logger.Warnf("result cache write for %s/%s failed: %v", employeeID, year, err)
	}
	s.persistResult(ctx, rec, res)
	return res, nil
}

// CompareForEmployee runs both regimes for the employee's stored facts.
func (s *TaxationService) CompareForEmployee(ctx context.Context, employeeID string, year domain.TaxYear) (*compare.RegimeComparison, error) {
	rec, err := s.Store.Get(ctx, employeeID, year)
	if errors.Is(err, store.ErrRecordNotFound) {
		return s.Cmp.Compare(ctx, defaultInput(employeeID, year, domain.RegimeOld))
	}
	if err != nil {
		return nil, err
	}
	return s.Cmp.Compare(ctx, calculation.InputFromRecord(rec))
}

// Finalize locks the record against further declaration updates.
func (s *TaxationService) Finalize(ctx context.Context, employeeID string, year domain.TaxYear) error {
	rec, err := s.Store.Get(ctx, employeeID, year)
	if err != nil {
		return err
	}
	rec.Finalized = true
	rec.Touch(s.now())
	return s.Store.Save(ctx, rec)
}

// persistResult stores the computed result on the record, best-effort. A
// racing declaration update wins; its new version recomputes anyway.
func (s *TaxationService) persistResult(ctx context.Context, rec *domain.SalaryPackageRecord, res *domain.TaxCalculationResult) {
	now := s.now()
	rec.Touch(now)
	rec.MarkCalculated(res, now)
	if err := s.Store.Save(ctx, rec); err != nil {
		s.Calc.Logger.Debugf("result persist for %s/%s skipped: %v", rec.EmployeeID, rec.TaxYear, err)
	}
}

func defaultInput(employeeID string, year domain.TaxYear, regime domain.RegimeType) calculation.Input {
	if regime == "" {
		regime = domain.RegimeNew
	}
	return calculation.Input{
		Profile: domain.TaxpayerProfile{
			EmployeeID: employeeID,
			TaxYear:    year,
			Age:        dateutil.DefaultAge,
			Regime:     regime,
		},
	}
}
