package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/theonehub/taxcalc/internal/domain"
	"github.com/theonehub/taxcalc/internal/money"
)

func TestAllowanceExemption(t *testing.T) {
	tests := []struct {
		name      string
		allowance domain.Allowance
		want      int64
	}{
		{
			name: "children education capped per child per month",
			allowance: domain.Allowance{
				Kind:       domain.AllowanceChildrenEducation,
				Received:   money.FromInt(6000),
				Months:     12,
				ChildCount: 2,
			},
			want: 2400, // 100 * 12 * 2
		},
		{
			name: "third child earns nothing extra",
			allowance: domain.Allowance{
				Kind:       domain.AllowanceChildrenEducation,
				Received:   money.FromInt(6000),
				Months:     12,
				ChildCount: 3,
			},
			want: 2400,
		},
		{
			name: "hill area per month limit",
			allowance: domain.Allowance{
				Kind:     domain.AllowanceHillArea,
				Received: money.FromInt(5000),
				Months:   10,
			},
			want: 3000, // 300 * 10
		},
		{
			name: "received below the limit is fully exempt",
			allowance: domain.Allowance{
				Kind:     domain.AllowanceTransportDisabled,
				Received: money.FromInt(30000),
				Months:   12,
			},
			want: 30000, // limit is 38400
		},
		{
			name: "expense-backed exempt to amount spent",
			allowance: domain.Allowance{
				Kind:        domain.AllowanceUniform,
				Received:    money.FromInt(12000),
				AmountSpent: money.FromInt(9000),
			},
			want: 9000,
		},
		{
			name: "overtime has no exemption",
			allowance: domain.Allowance{
				Kind:     domain.AllowanceOvertime,
				Received: money.FromInt(50000),
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowanceExemption(tt.allowance)
			assert.True(t, got.Equal(money.FromInt(tt.want)),
				"expected %d, got %s", tt.want, got)
		})
	}
}

func TestComputeSalary(t *testing.T) {
	s := domain.SalaryIncome{
		Basic:       money.FromInt(600000),
		HRAReceived: money.FromInt(240000),
		RentPaid:    money.FromInt(300000),
		City:        domain.CityNonMetro,
		Bonus:       money.FromInt(50000),
		Allowances: []domain.Allowance{
			{Kind: domain.AllowanceHillArea, Received: money.FromInt(5000), Months: 10},
		},
	}

	comp := ComputeSalary(s)
	assert.True(t, comp.Gross.Equal(money.FromInt(895000)), "gross, got %s", comp.Gross)
	assert.True(t, comp.HRAExemption.Equal(money.FromInt(240000)), "hra, got %s", comp.HRAExemption)
	assert.True(t, comp.AllowanceExemptions.Equal(money.FromInt(3000)), "allowances, got %s", comp.AllowanceExemptions)
	assert.True(t, comp.Taxable.Equal(money.FromInt(652000)), "taxable, got %s", comp.Taxable)
}

func TestComputePerquisites(t *testing.T) {
	salaryBase := money.FromInt(600000)

	p := &domain.Perquisites{
		Car: &domain.CarPerq{
			EngineAbove1600CC: true,
			DriverProvided:    true,
			Months:            12,
		},
		Loan: &domain.LoanPerq{
			Principal:     money.FromInt(1000000),
			BenchmarkRate: decimal.NewFromFloat(9.5),
			EmployerRate:  decimal.NewFromFloat(6.5),
		},
		GiftVouchers: money.FromInt(12000),
	}

	comp := ComputePerquisites(p, salaryBase, false)
	assert.True(t, comp.Items["car"].Equal(money.FromInt(39600)),
		"2400+900 per month, got %s", comp.Items["car"])
	assert.True(t, comp.Items["loan"].Equal(money.FromInt(30000)),
		"3%% of 10L saved interest, got %s", comp.Items["loan"])
	assert.True(t, comp.Items["gift_vouchers"].Equal(money.FromInt(7000)),
		"vouchers beyond the 5000 exemption, got %s", comp.Items["gift_vouchers"])
	assert.True(t, comp.Total.Equal(money.FromInt(76600)), "total, got %s", comp.Total)
}

func TestComputePerquisitesSmallLoanExempt(t *testing.T) {
	p := &domain.Perquisites{
		Loan: &domain.LoanPerq{
			Principal:     money.FromInt(20000),
			BenchmarkRate: decimal.NewFromFloat(9.5),
		},
	}
	comp := ComputePerquisites(p, money.FromInt(600000), false)
	assert.True(t, comp.Total.IsZero(), "loans up to 20000 are exempt")
}

func TestAccommodationValue(t *testing.T) {
	salaryBase := money.FromInt(1000000)

	gov := accommodationValue(domain.AccommodationPerq{
		GovernmentLicenseFee: money.FromInt(24000),
	}, salaryBase, true)
	assert.True(t, gov.Equal(money.FromInt(24000)), "government housing taxes the license fee")

	owned := accommodationValue(domain.AccommodationPerq{
		OwnedByEmployer: true,
		City:            domain.AccommodationCityAbove25L,
	}, salaryBase, false)
	assert.True(t, owned.Equal(money.FromInt(150000)), "15%% of salary in a large city, got %s", owned)

	leased := accommodationValue(domain.AccommodationPerq{
		LeaseRentPaid: money.FromInt(120000),
	}, salaryBase, false)
	assert.True(t, leased.Equal(money.FromInt(120000)),
		"actual rent below 15%% of salary binds, got %s", leased)
}

func TestComputeOtherIncomeGiftThreshold(t *testing.T) {
	within := ComputeOtherIncome(&domain.OtherIncome{GiftsReceived: money.FromInt(50000)})
	assert.True(t, within.IsZero(), "gifts at exactly 50000 stay exempt")

	over := ComputeOtherIncome(&domain.OtherIncome{GiftsReceived: money.FromInt(50001)})
	assert.True(t, over.Equal(money.FromInt(50001)),
		"one rupee over taxes the whole amount, got %s", over)
}

func TestComputeHouseProperty(t *testing.T) {
	selfOccupied := ComputeHouseProperty(&domain.HousePropertyIncome{
		PropertyType:     domain.PropertySelfOccupied,
		HomeLoanInterest: money.FromInt(250000),
	})
	assert.True(t, selfOccupied.IsLoss)
	assert.True(t, selfOccupied.Income.Equal(money.FromInt(200000)),
		"self-occupied interest loss caps at 2L, got %s", selfOccupied.Income)

	letOut := ComputeHouseProperty(&domain.HousePropertyIncome{
		PropertyType:       domain.PropertyLetOut,
		AnnualRentReceived: money.FromInt(360000),
		MunicipalTaxesPaid: money.FromInt(10000),
		HomeLoanInterest:   money.FromInt(100000),
	})
	assert.False(t, letOut.IsLoss)
	// NAV 350000, less 30% standard 105000, less interest.
	assert.True(t, letOut.Income.Equal(money.FromInt(145000)),
		"let-out income, got %s", letOut.Income)
}
