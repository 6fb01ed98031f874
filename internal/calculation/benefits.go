package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

// Statutory caps on retirement benefit exemptions.
var (
	gratuityCap        = money.FromInt(2000000)
	leaveEncashmentCap = money.FromInt(2500000) // post-2023 limit
	vrsCap             = money.FromInt(500000)
	retrenchmentCap    = money.FromInt(500000)
)

// ExemptionResult splits a received amount into its exempt portion and the
// taxable remainder.
type ExemptionResult struct {
	Exempt  money.Money
	Taxable money.Money
}

func exemptUpTo(amount, exempt money.Money) ExemptionResult {
	e := money.Min(amount, exempt)
	return ExemptionResult{Exempt: e, Taxable: amount.Sub(e)}
}

func fullyExempt(amount money.Money) ExemptionResult {
	return ExemptionResult{Exempt: amount, Taxable: money.Zero()}
}

func fullyTaxable(amount money.Money) ExemptionResult {
	return ExemptionResult{Exempt: money.Zero(), Taxable: amount}
}

// GratuityExemption: government employees are fully exempt; otherwise the
// least of the amount received, 15 days' salary (at 15/26 of monthly
// basic+DA) per completed service year, and the ₹20 lakh statutory cap.
func GratuityExemption(g domain.Gratuity, governmentEmployee bool) ExemptionResult {
	if governmentEmployee {
		return fullyExempt(g.Amount)
	}
	fifteenDays := g.MonthlySalary.
		MulInt(15).
		DivInt(26).
		MulInt(int64(g.ServiceYears))
	return exemptUpTo(g.Amount, money.Min(fifteenDays, gratuityCap))
}

// LeaveEncashmentExemption: fully exempt for government employees and on
// death; zero during employment; otherwise the least of the amount, ten
// months' average salary, the unexpired-leave cash value, and the ₹25 lakh
// cap.
func LeaveEncashmentExemption(le domain.LeaveEncashment, governmentEmployee bool) ExemptionResult {
	if governmentEmployee || le.EmployeeDeceased {
		return fullyExempt(le.Amount)
	}
	if le.DuringEmployment {
		return fullyTaxable(le.Amount)
	}
	tenMonths := le.AverageMonthlySalary.MulInt(10)
	return exemptUpTo(le.Amount, money.Min(tenMonths, le.UnexpiredLeaveValue, leaveEncashmentCap))
}

// PensionExemption covers the commuted lump sum only; the uncommuted stream
// is always fully taxable and handled by the aggregator. Government
// commutation is fully exempt; private commutation is exempt to one third of
// the full-value equivalent with gratuity, one half without.
func PensionExemption(p domain.PensionIncome, governmentEmployee bool) ExemptionResult {
	if p.CommutedAmount.IsZero() {
		return ExemptionResult{Exempt: money.Zero(), Taxable: money.Zero()}
	}
	if governmentEmployee {
		return fullyExempt(p.CommutedAmount)
	}
	if p.CommutedFraction.LessThanOrEqual(decimal.Zero) {
		// Cannot reconstruct the full value; nothing is exempt.
		return fullyTaxable(p.CommutedAmount)
	}
	fullValue := p.CommutedAmount.Div(p.CommutedFraction)
	fraction := decimal.NewFromInt(1).Div(decimal.NewFromInt(2))
	if p.GratuityReceived {
		fraction = decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
	}
	return exemptUpTo(p.CommutedAmount, fullValue.Mul(fraction))
}

// VRSExemption: eligible only at age 40+ with ten years of service; exempt
// to the least of the amount and ₹5 lakh.
func VRSExemption(v domain.VRSCompensation, age int) ExemptionResult {
	if age < 40 || v.ServiceYears < 10 {
		return fullyTaxable(v.Amount)
	}
	return exemptUpTo(v.Amount, vrsCap)
}

// RetrenchmentExemption: the least of the amount received, 15 days' average
// pay per completed service year, and ₹5 lakh.
func RetrenchmentExemption(rc domain.RetrenchmentCompensation) ExemptionResult {
	fifteenDays := rc.AverageMonthlySalary.
		MulInt(15).
		DivInt(30).
		MulInt(int64(rc.ServiceYears))
	return exemptUpTo(rc.Amount, money.Min(fifteenDays, retrenchmentCap))
}
