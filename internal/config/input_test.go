package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

const sampleDeclaration = `
employee:
  id: EMP001
  tax_year: "2024-25"
  age: 35
  regime: old
salary:
  basic: "600000"
  hra_received: "240000"
  rent_paid: "300000"
  city: non_metro
deductions:
  section_80c: "150000"
  section_80d:
    self_family_premium: "20000"
`

func TestParseDeclaration(t *testing.T) {
	parser := NewInputParser()

	decl, err := parser.Parse([]byte(sampleDeclaration))
	require.NoError(t, err)

	assert.Equal(t, "EMP001", decl.Employee.ID)
	assert.Equal(t, domain.RegimeOld, decl.Employee.Regime)
	assert.True(t, decl.Salary.Basic.Equal(money.FromInt(600000)),
		"basic parsed, got %s", decl.Salary.Basic)
	assert.True(t, decl.Deductions.Section80C.Equal(money.FromInt(150000)),
		"80c parsed, got %s", decl.Deductions.Section80C)
	require.NotNil(t, decl.Deductions.Section80D)
	assert.True(t, decl.Deductions.Section80D.SelfFamilyPremium.Equal(money.FromInt(20000)),
		"80d premium parsed")
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "declaration.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeclaration), 0o600))

	decl, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", decl.Employee.ID)

	_, err = parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a missing file is reported, not defaulted")
}

func TestDeclarationToInput(t *testing.T) {
	parser := NewInputParser()
	decl, err := parser.Parse([]byte(sampleDeclaration))
	require.NoError(t, err)

	in := decl.ToInput(time.Now())
	assert.Equal(t, "EMP001", in.Profile.EmployeeID)
	assert.Equal(t, 35, in.Profile.Age)
	assert.Nil(t, in.Retirement, "absent blocks stay nil")
}

func TestProfileDerivesAgeFromBirthDate(t *testing.T) {
	decl := Declaration{
		Employee: EmployeeInfo{
			ID:        "EMP002",
			TaxYear:   "2024-25",
			BirthDate: time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
			Regime:    domain.RegimeNew,
		},
	}
	now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 34, decl.Profile(now).Age, "age derived from birth date")
}

func TestValidateDeclarationRejections(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name   string
		mutate func(*Declaration)
	}{
		{"missing employee id", func(d *Declaration) { d.Employee.ID = "" }},
		{"bad tax year", func(d *Declaration) { d.Employee.TaxYear = "2024-26" }},
		{"bad regime", func(d *Declaration) { d.Employee.Regime = "simplified" }},
		{"no age or birth date", func(d *Declaration) { d.Employee.Age = 0 }},
		{"negative basic", func(d *Declaration) { d.Salary.Basic = money.FromInt(-5) }},
		{"legacy disability string", func(d *Declaration) {
			d.Deductions.Section80U = &domain.Section80U{Bucket: "Between 40%-80%"}
		}},
		{"unknown donee category", func(d *Declaration) {
			d.Deductions.Donations80G = []domain.Donation{
				{DoneeName: "fund", Category: "generous", Amount: money.FromInt(1000)},
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := parser.Parse([]byte(sampleDeclaration))
			require.NoError(t, err)
			tt.mutate(decl)
			assert.Error(t, parser.ValidateDeclaration(decl))
		})
	}
}
