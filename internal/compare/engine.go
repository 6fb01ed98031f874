package compare

import (
	"context"
	"fmt"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// Engine runs both regimes against identical facts and recommends the
// cheaper one. The underlying calculation service stays pure; the engine
// only varies the regime on the profile.
type Engine struct {
	Calc *calculation.TaxCalculationService
}

// NewEngine creates a comparison engine over a calculation service.
func NewEngine(calc *calculation.TaxCalculationService) *Engine {
	if calc == nil {
		calc = calculation.NewTaxCalculationService()
	}
	return &Engine{Calc: calc}
}

// Compare calculates the input under both regimes. The input's own regime
// setting is ignored; both runs share every other fact.
func (e *Engine) Compare(ctx context.Context, in calculation.Input) (*RegimeComparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	oldIn := in
	oldIn.Profile.Regime = domain.RegimeOld
	oldRes, err := e.Calc.Calculate(oldIn)
	if err != nil {
		return nil, fmt.Errorf("old regime: %w", err)
	}

	newIn := in
	newIn.Profile.Regime = domain.RegimeNew
	newRes, err := e.Calc.Calculate(newIn)
	if err != nil {
		return nil, fmt.Errorf("new regime: %w", err)
	}

	rc := &RegimeComparison{Old: oldRes, New: newRes}
	if oldRes.TotalLiability.LessThan(newRes.TotalLiability) {
		rc.Recommended = domain.RegimeOld
		rc.Savings = newRes.TotalLiability.Sub(oldRes.TotalLiability)
	} else {
		// Ties recommend the new regime: same liability, no declarations
		// to substantiate.
		rc.Recommended = domain.RegimeNew
		rc.Savings = oldRes.TotalLiability.Sub(newRes.TotalLiability)
	}
	return rc, nil
}

// BreakEven searches for the additional deduction that makes the old regime
// liability match the new regime's. The trial amount goes through an
// uncapped section (80GGC) so every extra rupee reaches taxable income;
// probing a capped section would flatline at its cap and stall the search.
// Binary search over the extra amount; liability decreases monotonically as
// deductions grow, so the bisection is well behaved.
func (e *Engine) BreakEven(ctx context.Context, in calculation.Input, opts SolverOptions) (*BreakEvenResult, error) {
	if opts.MaxIterations == 0 {
		opts = DefaultSolverOptions()
	}

	comparison, err := e.Compare(ctx, in)
	if err != nil {
		return nil, err
	}
	newLiability := comparison.New.TotalLiability

	res := &BreakEvenResult{NewLiability: newLiability}

	// Already at or below the new regime with current declarations.
	if comparison.Old.TotalLiability.LessThanOrEqual(newLiability) {
		res.OldLiabilityAt = comparison.Old.TotalLiability
		res.Converged = true
		return res, nil
	}

	oldAt := func(extra money.Money) (money.Money, error) {
		trial := in
		trial.Profile.Regime = domain.RegimeOld
		trial.Deductions.Section80GGC = trial.Deductions.Section80GGC.Add(extra)
		r, err := e.Calc.Calculate(trial)
		if err != nil {
			return money.Zero(), err
		}
		return r.TotalLiability, nil
	}

	// Even the full range may not be enough; report the floor reached.
	atMax, err := oldAt(opts.MaxExtraDeduction)
	if err != nil {
		return nil, err
	}
	if atMax.GreaterThan(newLiability.Add(opts.Tolerance)) {
		res.ExtraDeduction = opts.MaxExtraDeduction
		res.OldLiabilityAt = atMax
		return res, nil
	}

	lo := money.Zero()
	hi := opts.MaxExtraDeduction
	for res.Iterations < opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Iterations++

		mid := lo.Add(hi).DivInt(2).Round(0)
		liability, err := oldAt(mid)
		if err != nil {
			return nil, err
		}

		gap := liability.SubSigned(newLiability)
		if gap.Abs().LessThanOrEqual(opts.Tolerance) || hi.Sub(lo).LessThanOrEqual(money.FromInt(1)) {
			res.ExtraDeduction = mid
			res.OldLiabilityAt = liability
			res.Converged = true
			return res, nil
		}
		if gap.IsPositive() {
			lo = mid
		} else {
			hi = mid
		}
	}

	liability, err := oldAt(hi)
	if err != nil {
		return nil, err
	}
	res.ExtraDeduction = hi
	res.OldLiabilityAt = liability
	return res, nil
}
