package model

// LocationTier is one band of the non-linear location score curve. A point of
// score difference inside [Lower, Upper) is worth RatePctPerPoint percent of
// the running price. The top tier is closed at its upper bound.
type LocationTier struct {
	Name            string  `json:"name"`
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	RatePctPerPoint float64 `json:"rate_pct_per_point"`
}

// DefaultLocationTiers returns the standard five-tier location curve.
func DefaultLocationTiers() []LocationTier {
	return []LocationTier{
		{Name: "poor", Lower: 0, Upper: 30, RatePctPerPoint: 1.0},
		{Name: "below_average", Lower: 30, Upper: 50, RatePctPerPoint: 0.75},
		{Name: "average", Lower: 50, Upper: 70, RatePctPerPoint: 0.5},
		{Name: "good", Lower: 70, Upper: 85, RatePctPerPoint: 1.0},
		{Name: "premium", Lower: 85, Upper: 100, RatePctPerPoint: 1.5},
	}
}

// MarketParameters are the shared, read-only market assumptions for one
// analysis run. AdjustmentRates is keyed by the characteristic rate keys of the
// physical catalog; the unit of each rate ($/unit, %/level, lump sum, % of
// price) is fixed by the catalog entry, not by this table. A missing key means
// no rate is configured and the characteristic is skipped as incomplete.
type MarketParameters struct {
	ValuationDate          Date               `json:"valuation_date"`
	AppreciationRateAnnual float64            `json:"appreciation_rate_annual"` // %
	CapRate                float64            `json:"cap_rate"`                 // %
	AdjustmentRates        map[string]float64 `json:"adjustment_rates"`
	LocationTiers          []LocationTier     `json:"location_tiers,omitempty"`
	FeaturePremiums        map[string]float64 `json:"feature_premiums,omitempty"` // % of price
}

// Tiers returns the configured location tiers, falling back to the default
// five-tier curve when none are supplied.
func (p *MarketParameters) Tiers() []LocationTier {
	if len(p.LocationTiers) == 0 {
		return DefaultLocationTiers()
	}
	return p.LocationTiers
}

// Rate looks up a configured adjustment rate by catalog key.
func (p *MarketParameters) Rate(key string) (float64, bool) {
	r, ok := p.AdjustmentRates[key]
	return r, ok
}

// Validate checks the invariants that are fatal for the whole run, since
// market parameters are shared by every comparable.
func (p *MarketParameters) Validate() error {
	if p.ValuationDate.IsZero() {
		return &ConfigurationError{Parameter: "valuation_date", Reason: "required"}
	}
	if p.CapRate <= 0 {
		return &ConfigurationError{Parameter: "cap_rate", Reason: "must be positive"}
	}
	tiers := p.Tiers()
	if len(tiers) != 5 {
		return &ConfigurationError{Parameter: "location_tiers", Reason: "exactly 5 tiers required"}
	}
	prev := 0.0
	for _, t := range tiers {
		if t.Lower != prev {
			return &ConfigurationError{Parameter: "location_tiers", Reason: "tiers must be contiguous from 0"}
		}
		if t.Upper <= t.Lower {
			return &ConfigurationError{Parameter: "location_tiers", Reason: "tier upper bound must exceed lower bound"}
		}
		if t.RatePctPerPoint < 0 {
			return &ConfigurationError{Parameter: "location_tiers", Reason: "tier rates must be non-negative"}
		}
		prev = t.Upper
	}
	if prev != 100 {
		return &ConfigurationError{Parameter: "location_tiers", Reason: "tiers must cover [0,100]"}
	}
	return nil
}
