// Package domain defines the entities the tax engine computes over: income
// components, deduction declarations, taxpayer context and calculation
// results. Everything is a plain value type; the engine owns all behavior.
package domain

import "fmt"

// RegimeType selects between the two statutory computation schemes.
type RegimeType string

const (
	RegimeOld RegimeType = "old"
	RegimeNew RegimeType = "new"
)

// ParseRegimeType converts a string to a RegimeType, rejecting unknown values.
func ParseRegimeType(s string) (RegimeType, error) {
	switch RegimeType(s) {
	case RegimeOld, RegimeNew:
		return RegimeType(s), nil
	}
	return "", fmt.Errorf("unknown tax regime %q (want %q or %q)", s, RegimeOld, RegimeNew)
}

// Valid reports whether the regime is one of the two known schemes.
func (r RegimeType) Valid() bool {
	return r == RegimeOld || r == RegimeNew
}

// CityType drives the HRA exemption percentage (50% metro, 40% otherwise).
type CityType string

const (
	CityMetro    CityType = "metro"
	CityNonMetro CityType = "non_metro"
)

// Valid reports whether the city type is known.
func (c CityType) Valid() bool {
	return c == CityMetro || c == CityNonMetro
}

// PropertyType classifies a house property for income computation.
type PropertyType string

const (
	PropertySelfOccupied PropertyType = "self_occupied"
	PropertyLetOut       PropertyType = "let_out"
	PropertyDeemedLetOut PropertyType = "deemed_let_out"
)

// Valid reports whether the property type is known.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertySelfOccupied, PropertyLetOut, PropertyDeemedLetOut:
		return true
	}
	return false
}

// RelationType gates eligibility for dependent-linked deductions
// (80DD, 80DDB, 80E).
type RelationType string

const (
	RelationSelf    RelationType = "self"
	RelationSpouse  RelationType = "spouse"
	RelationChild   RelationType = "child"
	RelationParent  RelationType = "parent"
	RelationSibling RelationType = "sibling"
)

// Valid reports whether the relation is known.
func (r RelationType) Valid() bool {
	switch r {
	case RelationSelf, RelationSpouse, RelationChild, RelationParent, RelationSibling:
		return true
	}
	return false
}

// DisabilityBucket is a closed two-member enum. The statute grants a fixed
// deduction per bucket, not a reimbursement of amounts spent; the free-form
// strings the platform previously compared against are deliberately gone.
type DisabilityBucket string

const (
	Disability40To80  DisabilityBucket = "40_to_80"
	DisabilityAbove80 DisabilityBucket = "above_80"
)

// ParseDisabilityBucket converts a string to a bucket, rejecting anything
// that is not one of the two statutory tiers.
func ParseDisabilityBucket(s string) (DisabilityBucket, error) {
	switch DisabilityBucket(s) {
	case Disability40To80, DisabilityAbove80:
		return DisabilityBucket(s), nil
	}
	return "", fmt.Errorf("unknown disability bucket %q (want %q or %q)", s, Disability40To80, DisabilityAbove80)
}

// Valid reports whether the bucket is one of the two statutory tiers.
func (d DisabilityBucket) Valid() bool {
	return d == Disability40To80 || d == DisabilityAbove80
}

// DoneeCategory classifies an 80G donation: full or half deduction, with or
// without the 10%-of-adjusted-gross-income qualifying limit.
type DoneeCategory string

const (
	DoneeFullNoLimit   DoneeCategory = "full_no_limit"
	DoneeHalfNoLimit   DoneeCategory = "half_no_limit"
	DoneeFullWithLimit DoneeCategory = "full_with_limit"
	DoneeHalfWithLimit DoneeCategory = "half_with_limit"
)

// Valid reports whether the donee category is known.
func (d DoneeCategory) Valid() bool {
	switch d {
	case DoneeFullNoLimit, DoneeHalfNoLimit, DoneeFullWithLimit, DoneeHalfWithLimit:
		return true
	}
	return false
}
