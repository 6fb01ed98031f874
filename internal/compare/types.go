package compare

import (
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// RegimeComparison holds both regime results for one taxpayer and the
// recommendation derived from them.
type RegimeComparison struct {
	Old *domain.TaxCalculationResult `json:"old"`
	New *domain.TaxCalculationResult `json:"new"`

	Recommended domain.RegimeType `json:"recommended"`
	// Savings is the liability difference in favour of the recommended
	// regime; zero when the regimes tie.
	Savings money.Money `json:"savings"`
}

// Result returns the calculation for the given regime type.
func (rc *RegimeComparison) Result(t domain.RegimeType) *domain.TaxCalculationResult {
	if t == domain.RegimeNew {
		return rc.New
	}
	return rc.Old
}

// BreakEvenResult reports how much additional Chapter VI-A deduction the old
// regime would need before its liability matches the new regime's.
type BreakEvenResult struct {
	// ExtraDeduction is the additional deduction amount at break-even.
	ExtraDeduction money.Money `json:"extra_deduction"`
	// OldLiabilityAt is the old regime liability with the extra deduction
	// applied.
	OldLiabilityAt money.Money `json:"old_liability_at"`
	NewLiability   money.Money `json:"new_liability"`
	Converged      bool        `json:"converged"`
	Iterations     int         `json:"iterations"`
}

// SolverOptions bounds the break-even binary search.
type SolverOptions struct {
	MaxIterations int
	// Tolerance is the acceptable liability gap at convergence.
	Tolerance money.Money
	// MaxExtraDeduction caps the search range.
	MaxExtraDeduction money.Money
}

// DefaultSolverOptions returns the standard search bounds: one rupee
// tolerance within a ₹10 lakh deduction range.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations:     60,
		Tolerance:         money.FromInt(1),
		MaxExtraDeduction: money.FromInt(1000000),
	}
}
