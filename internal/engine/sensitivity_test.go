package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/comps-engine/internal/model"
)

func TestMaterialRates(t *testing.T) {
	results := []model.ComparableResult{
		{
			Comparable: model.ComparableSale{SalePrice: 1_000_000},
			Stages: []model.StageResult{
				{Records: []model.AdjustmentRecord{
					// 8% of sale price: material.
					{Characteristic: "location_score", RateKey: "location_tiers", Amount: -80_000},
					// 2%: immaterial.
					{Characteristic: "market_conditions", RateKey: "appreciation_rate_annual", Amount: 20_000},
					// Large but priced from transaction data: not perturbable.
					{Characteristic: "financing", Amount: -120_000},
					// Duplicate rate key must not repeat.
					{Characteristic: "location_score", RateKey: "location_tiers", Amount: 90_000},
				}},
			},
		},
	}

	rates := materialRates(results, 5.0)
	require.Len(t, rates, 1)
	assert.Equal(t, "location_tiers", rates[0].rateKey)
	assert.Equal(t, "location_score", rates[0].characteristic)
}

func TestScaleRateCopiesParameters(t *testing.T) {
	params := testMarketParams()
	params.AdjustmentRates = map[string]float64{"clear_height_ft": 1.0}
	params.FeaturePremiums = map[string]float64{"highway_frontage": 2.0}

	tests := []struct {
		name    string
		rateKey string
		check   func(t *testing.T, scaled *model.MarketParameters)
	}{
		{"cap rate", "cap_rate", func(t *testing.T, s *model.MarketParameters) {
			assert.InDelta(t, 7.15, s.CapRate, 1e-9)
		}},
		{"appreciation", "appreciation_rate_annual", func(t *testing.T, s *model.MarketParameters) {
			assert.InDelta(t, 3.85, s.AppreciationRateAnnual, 1e-9)
		}},
		{"location tiers scale together", "location_tiers", func(t *testing.T, s *model.MarketParameters) {
			assert.InDelta(t, 1.65, s.LocationTiers[4].RatePctPerPoint, 1e-9)
			assert.InDelta(t, 0.55, s.LocationTiers[2].RatePctPerPoint, 1e-9)
		}},
		{"feature premium", "premium:highway_frontage", func(t *testing.T, s *model.MarketParameters) {
			assert.InDelta(t, 2.2, s.FeaturePremiums["highway_frontage"], 1e-9)
		}},
		{"physical rate", "clear_height_ft", func(t *testing.T, s *model.MarketParameters) {
			assert.InDelta(t, 1.1, s.AdjustmentRates["clear_height_ft"], 1e-9)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := scaleRate(params, tt.rateKey, 1.1)
			tt.check(t, scaled)

			// The shared parameters are never mutated.
			assert.Equal(t, 6.5, params.CapRate)
			assert.Equal(t, 3.5, params.AppreciationRateAnnual)
			assert.Equal(t, 1.0, params.AdjustmentRates["clear_height_ft"])
			assert.Equal(t, 2.0, params.FeaturePremiums["highway_frontage"])
			assert.Empty(t, params.LocationTiers)
		})
	}
}

func TestSensitivityPerturbsMaterialRates(t *testing.T) {
	subject, comp, params := industrialScenario()

	baseline, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)

	recon, err := Reconcile([]model.ComparableResult{*baseline})
	require.NoError(t, err)

	results, err := Sensitivity(subject, []model.ComparableResult{*baseline}, params, recon.ReconciledValue, 5.0)
	require.NoError(t, err)

	// Only the location adjustment exceeds 5% of the sale price.
	require.Len(t, results, 1)
	s := results[0]
	assert.Equal(t, "location_tiers", s.RateKey)
	assert.Equal(t, recon.ReconciledValue, s.BaselineValue)

	// The location adjustment is negative, so softening the tier rates
	// raises the reconciled value and hardening them lowers it.
	assert.Greater(t, s.LowValue, s.BaselineValue)
	assert.Less(t, s.HighValue, s.BaselineValue)
	assert.Positive(t, s.MaxAbsPctChange)
	assert.GreaterOrEqual(t, s.MaxAbsPctChange, math.Abs(s.LowPctChange))
	assert.GreaterOrEqual(t, s.MaxAbsPctChange, math.Abs(s.HighPctChange))
}

func TestSensitivityNoMaterialRates(t *testing.T) {
	subject, comp, params := industrialScenario()
	comp.LocationScore = subject.LocationScore // drop the only material adjustment

	baseline, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)

	results, err := Sensitivity(subject, []model.ComparableResult{*baseline}, params, 4_000_000, 5.0)
	require.NoError(t, err)
	assert.Empty(t, results)
}
