// Package model defines the value objects that flow through the adjustment
// engine: the subject property, comparable sales, market parameters, and the
// per-stage results the engine produces. Everything here is created once per
// analysis run and never mutated afterwards.
package model

// PropertyType classifies the improved use of a property.
type PropertyType string

const (
	PropertyTypeIndustrial PropertyType = "industrial"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeRetail     PropertyType = "retail"
)

// Valid reports whether t is one of the supported property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeIndustrial, PropertyTypeOffice, PropertyTypeRetail:
		return true
	}
	return false
}

// PropertyRights is the ownership interest conveyed by a sale.
type PropertyRights string

const (
	RightsFeeSimple PropertyRights = "fee_simple"
	RightsLeasehold PropertyRights = "leasehold"
)

// Valid reports whether r is a supported rights basis.
func (r PropertyRights) Valid() bool {
	return r == RightsFeeSimple || r == RightsLeasehold
}

// FinancingType classifies how a comparable sale was financed.
type FinancingType string

const (
	FinancingCash         FinancingType = "cash"
	FinancingSellerVTB    FinancingType = "seller_vtb"
	FinancingConventional FinancingType = "conventional"
)

// Valid reports whether f is a supported financing type.
func (f FinancingType) Valid() bool {
	switch f {
	case FinancingCash, FinancingSellerVTB, FinancingConventional:
		return true
	}
	return false
}

// Financing describes the financing terms of a comparable sale. The rate and
// term fields are only required for seller take-back financing.
type Financing struct {
	Type         FinancingType `json:"type"`
	ContractRate *float64      `json:"rate,omitempty"`        // % annual
	MarketRate   *float64      `json:"market_rate,omitempty"` // % annual
	TermYears    *float64      `json:"term_years,omitempty"`
	LoanAmount   *float64      `json:"loan_amount,omitempty"`
}

// ConditionsOfSale describes the motivation context of a comparable sale.
type ConditionsOfSale struct {
	ArmsLength            bool     `json:"arms_length"`
	MotivationDiscountPct *float64 `json:"motivation_discount_pct,omitempty"` // %
}

// LocationFeatures are boolean site-exposure attributes priced as flat
// percentage premiums in the location stage, separate from the tiered score.
type LocationFeatures struct {
	HighwayFrontage *bool `json:"highway_frontage,omitempty"`
	Visibility      *bool `json:"visibility,omitempty"`
	Access          *bool `json:"access,omitempty"`
}

// SubjectProperty is the property being appraised.
type SubjectProperty struct {
	Address          string           `json:"address"`
	PropertyType     PropertyType     `json:"property_type"`
	PropertyRights   PropertyRights   `json:"property_rights"`
	LocationScore    float64          `json:"location_score"` // 0-100
	LocationFeatures LocationFeatures `json:"location_features"`
	Characteristics  Characteristics  `json:"characteristics"`
}

// ComparableSale is one observed sale transaction compared against the subject.
type ComparableSale struct {
	ID               string           `json:"id,omitempty"`
	Address          string           `json:"address"`
	PropertyType     PropertyType     `json:"property_type"`
	PropertyRights   PropertyRights   `json:"property_rights"`
	LocationScore    float64          `json:"location_score"`
	LocationFeatures LocationFeatures `json:"location_features"`
	Characteristics  Characteristics  `json:"characteristics"`

	SalePrice        float64          `json:"sale_price"`
	SaleDate         Date             `json:"sale_date"`
	Financing        Financing        `json:"financing"`
	Conditions       ConditionsOfSale `json:"conditions_of_sale"`
	GroundRentAnnual *float64         `json:"ground_rent_annual,omitempty"`
}

// Label returns a stable identifier for logs and output: the comparable's ID
// if set, otherwise its address.
func (c *ComparableSale) Label() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Address
}
