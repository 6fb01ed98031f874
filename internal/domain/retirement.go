package domain

import (
	"github.com/shopspring/decimal"

	"github.com/theonehub/taxcalc/internal/money"
)

// LeaveEncashment declares leave salary received on retirement or otherwise.
type LeaveEncashment struct {
	Amount               money.Money `yaml:"amount" json:"amount"`
	AverageMonthlySalary money.Money `yaml:"average_monthly_salary" json:"average_monthly_salary"`
	// UnexpiredLeaveValue is the cash equivalent of earned leave standing to
	// credit, one of the statutory caps.
	UnexpiredLeaveValue money.Money `yaml:"unexpired_leave_value" json:"unexpired_leave_value"`
	// DuringEmployment encashment is fully taxable.
	DuringEmployment bool `yaml:"during_employment" json:"during_employment"`
	// EmployeeDeceased pays the exemption in full to legal heirs.
	EmployeeDeceased bool `yaml:"employee_deceased" json:"employee_deceased"`
}

// Gratuity declares gratuity received on retirement.
type Gratuity struct {
	Amount money.Money `yaml:"amount" json:"amount"`
	// MonthlySalary is the last drawn basic plus DA.
	MonthlySalary money.Money `yaml:"monthly_salary" json:"monthly_salary"`
	// ServiceYears counts completed years; part years beyond six months count
	// as a full year under the Payment of Gratuity Act.
	ServiceYears int `yaml:"service_years" json:"service_years"`
}

// VRSCompensation declares voluntary retirement scheme compensation.
type VRSCompensation struct {
	Amount       money.Money `yaml:"amount" json:"amount"`
	ServiceYears int         `yaml:"service_years" json:"service_years"`
}

// PensionIncome declares pension receipts. The uncommuted stream is always
// fully taxable; only the commuted lump sum carries an exemption.
type PensionIncome struct {
	UncommutedAnnual money.Money `yaml:"uncommuted_annual" json:"uncommuted_annual"`
	CommutedAmount   money.Money `yaml:"commuted_amount" json:"commuted_amount"`
	// CommutedFraction is the portion of the full pension commuted, e.g.
	// 0.4 for 40%. Needed to reconstruct the full-value equivalent.
	CommutedFraction decimal.Decimal `yaml:"commuted_fraction" json:"commuted_fraction"`
	GratuityReceived bool            `yaml:"gratuity_received" json:"gratuity_received"`
}

// RetrenchmentCompensation declares compensation on retrenchment.
type RetrenchmentCompensation struct {
	Amount               money.Money `yaml:"amount" json:"amount"`
	AverageMonthlySalary money.Money `yaml:"average_monthly_salary" json:"average_monthly_salary"`
	ServiceYears         int         `yaml:"service_years" json:"service_years"`
}

// RetirementBenefits collects the benefit declarations; absent entries
// contribute nothing.
type RetirementBenefits struct {
	LeaveEncashment *LeaveEncashment          `yaml:"leave_encashment,omitempty" json:"leave_encashment,omitempty"`
	Gratuity        *Gratuity                 `yaml:"gratuity,omitempty" json:"gratuity,omitempty"`
	VRS             *VRSCompensation          `yaml:"vrs,omitempty" json:"vrs,omitempty"`
	Pension         *PensionIncome            `yaml:"pension,omitempty" json:"pension,omitempty"`
	Retrenchment    *RetrenchmentCompensation `yaml:"retrenchment,omitempty" json:"retrenchment,omitempty"`
}
