// Package payroll prorates annual salary-derived figures into monthly
// amounts adjusted for leave without pay.
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/calculation"
	"github.com/theonehub/taxcalc/internal/money"
)

const monthsPerYear = 12

// MonthlyInput carries the attendance facts for one payroll month.
type MonthlyInput struct {
	LWPDays     int
	WorkingDays int
}

// MonthlyProjection is the prorated view of one salary month. Gross,
// exemptions and taxable salary are each scaled by the LWP factor
// independently rather than derived from a single adjusted annual figure.
type MonthlyProjection struct {
	LWPFactor     decimal.Decimal `json:"lwp_factor"`
	Gross         money.Money     `json:"gross"`
	Exemptions    money.Money     `json:"exemptions"`
	TaxableSalary money.Money     `json:"taxable_salary"`
}

// LWPFactor returns 1 - lwpDays/workingDays clamped to [0,1]. A month with
// no working days pays nothing.
func LWPFactor(lwpDays, workingDays int) (decimal.Decimal, error) {
	if lwpDays < 0 {
		return decimal.Zero, fmt.Errorf("lwp days must not be negative, got %d", lwpDays)
	}
	if workingDays <= 0 {
		return decimal.Zero, fmt.Errorf("working days must be positive, got %d", workingDays)
	}
	factor := decimal.NewFromInt(1).Sub(
		decimal.NewFromInt(int64(lwpDays)).Div(decimal.NewFromInt(int64(workingDays))))
	if factor.IsNegative() {
		return decimal.Zero, nil
	}
	if factor.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1), nil
	}
	return factor, nil
}

// ProjectMonth scales the annual salary computation down to one month at the
// given attendance. Each figure is prorated from its own annual value; the
// uniform factor applied to exemptions is an approximation that does not
// recompute month-specific HRA against month-specific rent.
func ProjectMonth(annual calculation.SalaryComputation, in MonthlyInput) (*MonthlyProjection, error) {
	factor, err := LWPFactor(in.LWPDays, in.WorkingDays)
	if err != nil {
		return nil, err
	}
	return &MonthlyProjection{
		LWPFactor:     factor,
		Gross:         annual.Gross.DivInt(monthsPerYear).Mul(factor),
		Exemptions:    annual.TotalExemptions.DivInt(monthsPerYear).Mul(factor),
		TaxableSalary: annual.Taxable.DivInt(monthsPerYear).Mul(factor),
	}, nil
}

// ProjectYear produces a projection per payroll month. The months slice must
// cover exactly twelve entries.
func ProjectYear(annual calculation.SalaryComputation, months []MonthlyInput) ([]MonthlyProjection, error) {
	if len(months) != monthsPerYear {
		return nil, fmt.Errorf("expected %d months of attendance, got %d", monthsPerYear, len(months))
	}
	out := make([]MonthlyProjection, 0, monthsPerYear)
	for i, m := range months {
		p, err := ProjectMonth(annual, m)
		if err != nil {
			return nil, fmt.Errorf("month %d: %w", i+1, err)
		}
		out = append(out, *p)
	}
	return out, nil
}
