// Package money provides an exact-decimal monetary value type for INR
// amounts. All arithmetic stays in decimal form; conversion to float exists
// only for display and serialization boundaries.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable INR amount backed by an exact decimal.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// FromInt creates a Money from whole rupees.
func FromInt(rupees int64) Money {
	return Money{amount: decimal.NewFromInt(rupees)}
}

// FromFloat creates a Money from a float64. Intended for I/O boundaries
// (parsed user input, deserialized records), not for intermediate arithmetic.
func FromFloat(v float64) Money {
	return Money{amount: decimal.NewFromFloat(v)}
}

// FromString parses a decimal string such as "150000" or "1234.56".
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// FromDecimal wraps an existing decimal value.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other clamped to zero. Statutory arithmetic never lets a
// negative intermediate propagate; use SubSigned where a loss is meaningful.
func (m Money) Sub(other Money) Money {
	r := m.amount.Sub(other.amount)
	if r.IsNegative() {
		return Zero()
	}
	return Money{amount: r}
}

// SubSigned returns m - other without clamping.
func (m Money) SubSigned(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Abs returns the absolute value of m.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// Mul returns m multiplied by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns m multiplied by an integer count.
func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

// Div returns m divided by a decimal divisor.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{amount: m.amount.Div(divisor)}
}

// DivInt returns m divided by an integer count.
func (m Money) DivInt(n int64) Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(n))}
}

// Percent returns rate% of m, e.g. amount.Percent(decimal.NewFromInt(30)).
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Div(decimal.NewFromInt(100))}
}

// Min returns the smaller of m and other.
func Min(m Money, others ...Money) Money {
	result := m
	for _, o := range others {
		if o.amount.LessThan(result.amount) {
			result = o
		}
	}
	return result
}

// Max returns the larger of m and other.
func Max(m Money, others ...Money) Money {
	result := m
	for _, o := range others {
		if o.amount.GreaterThan(result.amount) {
			result = o
		}
	}
	return result
}

// Cmp compares m with other: -1 if less, 0 if equal, 1 if greater.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether the amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// LessThanOrEqual reports m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero. Only reachable
// through SubSigned; clamped arithmetic never produces one.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Round returns the amount rounded to the given number of decimal places.
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places)}
}

// Float64 converts to a binary float for display or serialization. One-way:
// never feed the result back into calculation.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the plain decimal form, e.g. "150000".
func (m Money) String() string {
	return m.amount.String()
}

// StringFixed returns the amount with two decimal places.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// Display returns the amount formatted with the rupee sign and Indian digit
// grouping, e.g. "₹1,50,000.00".
func (m Money) Display() string {
	neg := m.amount.IsNegative()
	fixed := m.amount.Abs().StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupIndian(parts[0])
	out := "₹" + grouped + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian inserts the Indian lakh/crore digit grouping: the last three
// digits form one group, every two digits before that form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
