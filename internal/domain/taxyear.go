package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theonehub/taxcalc/pkg/dateutil"
)

// TaxYear is a financial year in "YYYY-YY" form, e.g. "2024-25", starting
// April 1 of the leading year.
type TaxYear string

// ParseTaxYear validates the "YYYY-YY" shape and the consecutive-year suffix.
func ParseTaxYear(s string) (TaxYear, error) {
	if len(s) != 7 || s[4] != '-' {
		return "", fmt.Errorf("malformed tax year %q: want YYYY-YY", s)
	}
	start, err := strconv.Atoi(s[:4])
	if err != nil {
		return "", fmt.Errorf("malformed tax year %q: %w", s, err)
	}
	suffix, err := strconv.Atoi(s[5:])
	if err != nil {
		return "", fmt.Errorf("malformed tax year %q: %w", s, err)
	}
	if (start+1)%100 != suffix {
		return "", fmt.Errorf("tax year %q: suffix must be the following year", s)
	}
	return TaxYear(s), nil
}

// CurrentTaxYear derives the financial year containing now.
func CurrentTaxYear(now time.Time) TaxYear {
	start := dateutil.FinancialYearStart(now)
	return TaxYear(fmt.Sprintf("%04d-%02d", start, (start+1)%100))
}

// StartYear returns the calendar year the financial year begins in, or zero
// for a malformed value.
func (t TaxYear) StartYear() int {
	if len(t) < 4 {
		return 0
	}
	y, err := strconv.Atoi(string(t)[:4])
	if err != nil {
		return 0
	}
	return y
}

// Valid reports whether the tax year parses.
func (t TaxYear) Valid() bool {
	_, err := ParseTaxYear(string(t))
	return err == nil
}

func (t TaxYear) String() string {
	return string(t)
}
