// Package dateutil provides date helpers shared by the tax engine and its
// callers: age derivation from date of birth and financial-year arithmetic.
package dateutil

import "time"

const (
	// DefaultAge is assumed when no date of birth is available. It silently
	// masks missing profile data, so callers that can distinguish "unknown"
	// should surface it rather than rely on this.
	DefaultAge = 30

	minAge = 18
	maxAge = 100
)

// AgeAt computes completed age at the given date, clamped to [18, 100].
func AgeAt(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return clampAge(age)
}

// AgeOrDefault returns the clamped age when a birth date is known and
// DefaultAge when it is the zero time.
func AgeOrDefault(birthDate, atDate time.Time) int {
	if birthDate.IsZero() {
		return DefaultAge
	}
	return AgeAt(birthDate, atDate)
}

func clampAge(age int) int {
	if age < minAge {
		return minAge
	}
	if age > maxAge {
		return maxAge
	}
	return age
}

// FinancialYearStart returns the calendar year in which the financial year
// containing t begins. The Indian financial year starts April 1.
func FinancialYearStart(t time.Time) int {
	if t.Month() >= time.April {
		return t.Year()
	}
	return t.Year() - 1
}
