package calculation

import (
	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// RetirementComputation is the retirement-benefits head: the full amounts
// received, the exempt portions, and the taxable remainder.
type RetirementComputation struct {
	Gross   money.Money
	Exempt  money.Money
	Taxable money.Money
	Items   map[string]ExemptionResult
}

// ComputeRetirement runs each declared benefit through its exemption
// formula.
func ComputeRetirement(rb *domain.RetirementBenefits, governmentEmployee bool, age int) RetirementComputation {
	comp := RetirementComputation{
		Gross:   money.Zero(),
		Exempt:  money.Zero(),
		Taxable: money.Zero(),
		Items:   map[string]ExemptionResult{},
	}
	if rb == nil {
		return comp
	}
	add := func(name string, received money.Money, r ExemptionResult) {
		comp.Gross = comp.Gross.Add(received)
		comp.Exempt = comp.Exempt.Add(r.Exempt)
		comp.Taxable = comp.Taxable.Add(r.Taxable)
		comp.Items[name] = r
	}

	if rb.Gratuity != nil {
		add("gratuity", rb.Gratuity.Amount, GratuityExemption(*rb.Gratuity, governmentEmployee))
	}
	if rb.LeaveEncashment != nil {
		add("leave_encashment", rb.LeaveEncashment.Amount, LeaveEncashmentExemption(*rb.LeaveEncashment, governmentEmployee))
	}
	if rb.VRS != nil {
		add("vrs", rb.VRS.Amount, VRSExemption(*rb.VRS, age))
	}
	if rb.Pension != nil {
		p := *rb.Pension
		commuted := PensionExemption(p, governmentEmployee)
		// The uncommuted stream is always fully taxable.
		received := p.UncommutedAnnual.Add(p.CommutedAmount)
		add("pension", received, ExemptionResult{
			Exempt:  commuted.Exempt,
			Taxable: commuted.Taxable.Add(p.UncommutedAnnual),
		})
	}
	if rb.Retrenchment != nil {
		add("retrenchment", rb.Retrenchment.Amount, RetrenchmentExemption(*rb.Retrenchment))
	}
	return comp
}
