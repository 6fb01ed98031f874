package output

import (
	"encoding/json"
	"fmt"

	"github.com/theonehub/taxcalc/internal/compare"
	"github.com/theonehub/taxcalc/internal/domain"
)

// JSONFormatter emits results as indented JSON for machine consumers.
type JSONFormatter struct{}

func (jf *JSONFormatter) Name() string { return "json" }

func (jf *JSONFormatter) FormatResult(res *domain.TaxCalculationResult) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data) + "\n", nil
}

func (jf *JSONFormatter) FormatComparison(rc *compare.RegimeComparison) (string, error) {
	data, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return string(data) + "\n", nil
}
