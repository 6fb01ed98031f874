package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the amount as a decimal string so a stored result
// deserializes to a numerically identical value.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.String())
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid money amount %q: %w", s, err)
		}
		m.amount = d
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}
	m.amount = d
	return nil
}

// MarshalYAML encodes the amount as a decimal string.
func (m Money) MarshalYAML() (interface{}, error) {
	return m.amount.String(), nil
}

// UnmarshalYAML accepts scalar decimal values from declaration files.
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid money node: %w", err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	m.amount = d
	return nil
}
