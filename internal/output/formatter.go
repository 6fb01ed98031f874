// Package output renders calculation results for the CLI in console, JSON
// and CSV forms.
package output

import (
	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/domain"
)

// Formatter renders a single-regime result or a regime comparison.
type Formatter interface {
	Name() string
	FormatResult(res *domain.TaxCalculationResult) (string, error)
	FormatComparison(rc *compare.RegimeComparison) (string, error)
}

// GetFormatterByName returns the formatter registered under name, nil when
// the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return NewConsoleFormatter()
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	}
	return nil
}

// FormatterNames lists the registered formatter names for CLI help text.
func FormatterNames() []string {
	return []string{"console", "json", "csv"}
}
