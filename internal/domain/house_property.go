package domain

import "github.com/theonehub/taxcalc/internal/money"

// HousePropertyIncome declares one house property for the year.
type HousePropertyIncome struct {
	PropertyType       PropertyType `yaml:"property_type" json:"property_type"`
	AnnualRentReceived money.Money  `yaml:"annual_rent_received" json:"annual_rent_received"`
	MunicipalTaxesPaid money.Money  `yaml:"municipal_taxes_paid" json:"municipal_taxes_paid"`
	HomeLoanInterest   money.Money  `yaml:"home_loan_interest" json:"home_loan_interest"`
	// PreApril1999Loan drops the self-occupied interest cap from ₹2,00,000
	// to ₹30,000.
	PreApril1999Loan bool `yaml:"pre_april_1999_loan" json:"pre_april_1999_loan"`
}
