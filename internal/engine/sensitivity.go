package engine

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/model"
)

// perturbation factors applied to a material rate, per the ±10% design.
const (
	perturbLow  = 0.9
	perturbHigh = 1.1
)

// materialRate is one perturbable rate discovered in the baseline results.
type materialRate struct {
	rateKey        string
	characteristic string
}

// Sensitivity recomputes the reconciled value with each material adjustment
// rate scaled by 0.9 and 1.1, holding all other rates fixed. An adjustment is
// material when its absolute amount exceeds materialityPct of the
// comparable's sale price. Records without a rate key were priced purely
// from transaction data and cannot be perturbed.
func Sensitivity(subject *model.SubjectProperty, baseline []model.ComparableResult, params *model.MarketParameters, baselineValue, materialityPct float64) ([]model.SensitivityResult, error) {
	rates := materialRates(baseline, materialityPct)
	if len(rates) == 0 {
		return nil, nil
	}

	comps := make([]model.ComparableSale, 0, len(baseline))
	for _, r := range baseline {
		comps = append(comps, r.Comparable)
	}

	results := make([]model.SensitivityResult, 0, len(rates))
	for _, mr := range rates {
		low, err := reconcileWithRate(subject, comps, params, mr.rateKey, perturbLow)
		if err != nil {
			return nil, err
		}
		high, err := reconcileWithRate(subject, comps, params, mr.rateKey, perturbHigh)
		if err != nil {
			return nil, err
		}

		lowPct := pctChange(baselineValue, low)
		highPct := pctChange(baselineValue, high)

		results = append(results, model.SensitivityResult{
			RateKey:         mr.rateKey,
			Characteristic:  mr.characteristic,
			BaselineValue:   baselineValue,
			LowValue:        low,
			HighValue:       high,
			LowPctChange:    round2(lowPct),
			HighPctChange:   round2(highPct),
			MaxAbsPctChange: round2(math.Max(math.Abs(lowPct), math.Abs(highPct))),
		})
	}

	zap.L().Info("engine: sensitivity analysis complete",
		zap.Int("material_rates", len(results)),
		zap.Float64("materiality_pct", materialityPct),
	)

	return results, nil
}

// materialRates collects the distinct perturbable rate keys behind material
// adjustments, in the deterministic order they appear in the results.
func materialRates(results []model.ComparableResult, materialityPct float64) []materialRate {
	var rates []materialRate
	seen := make(map[string]bool)

	for _, cr := range results {
		threshold := cr.Comparable.SalePrice * materialityPct / 100
		for _, sr := range cr.Stages {
			for _, rec := range sr.Records {
				if rec.RateKey == "" || seen[rec.RateKey] {
					continue
				}
				if math.Abs(rec.Amount) > threshold {
					seen[rec.RateKey] = true
					rates = append(rates, materialRate{rateKey: rec.RateKey, characteristic: rec.Characteristic})
				}
			}
		}
	}
	return rates
}

// reconcileWithRate reruns the full pipeline for every comparable with one
// rate scaled, then reconciles.
func reconcileWithRate(subject *model.SubjectProperty, comps []model.ComparableSale, params *model.MarketParameters, rateKey string, factor float64) (float64, error) {
	scaled := scaleRate(params, rateKey, factor)

	results := make([]model.ComparableResult, 0, len(comps))
	for i := range comps {
		cr, err := EvaluateComparable(subject, &comps[i], scaled)
		if err != nil {
			return 0, err
		}
		results = append(results, *cr)
	}

	rec, err := Reconcile(results)
	if err != nil {
		return 0, err
	}
	return rec.ReconciledValue, nil
}

// scaleRate returns a copy of the market parameters with one named rate
// scaled by factor. Rate tables are copied, never mutated in place.
func scaleRate(params *model.MarketParameters, rateKey string, factor float64) *model.MarketParameters {
	scaled := *params

	scaled.AdjustmentRates = make(map[string]float64, len(params.AdjustmentRates))
	for k, v := range params.AdjustmentRates {
		scaled.AdjustmentRates[k] = v
	}
	scaled.FeaturePremiums = make(map[string]float64, len(params.FeaturePremiums))
	for k, v := range params.FeaturePremiums {
		scaled.FeaturePremiums[k] = v
	}
	scaled.LocationTiers = append([]model.LocationTier(nil), params.Tiers()...)

	switch {
	case rateKey == "cap_rate":
		scaled.CapRate *= factor
	case rateKey == "appreciation_rate_annual":
		scaled.AppreciationRateAnnual *= factor
	case rateKey == "location_tiers":
		for i := range scaled.LocationTiers {
			scaled.LocationTiers[i].RatePctPerPoint *= factor
		}
	case strings.HasPrefix(rateKey, "premium:"):
		name := strings.TrimPrefix(rateKey, "premium:")
		if v, ok := scaled.FeaturePremiums[name]; ok {
			scaled.FeaturePremiums[name] = v * factor
		}
	default:
		if v, ok := scaled.AdjustmentRates[rateKey]; ok {
			scaled.AdjustmentRates[rateKey] = v * factor
		}
	}
	return &scaled
}

func pctChange(base, v float64) float64 {
	if base == 0 {
		return 0
	}
	return (v - base) / base * 100
}
