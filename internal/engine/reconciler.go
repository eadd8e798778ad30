package engine

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/model"
)

// Reconcile aggregates the weighted comparables into one indicated value.
// Only comparables with weight > 0 participate; rejected comparables stay in
// the output for transparency but never distort the reported spread.
func Reconcile(results []model.ComparableResult) (*model.ReconciliationResult, error) {
	var included []model.ComparableResult
	for _, r := range results {
		if r.Weight > 0 {
			included = append(included, r)
		}
	}
	if len(included) == 0 {
		return nil, &model.InsufficientDataError{Reason: "no comparable survived validation and weighting"}
	}

	var weightSum, weightedSum float64
	prices := make([]float64, 0, len(included))
	for _, r := range included {
		weightSum += r.Weight
		weightedSum += r.Weight * r.FinalAdjustedPrice
		prices = append(prices, r.FinalAdjustedPrice)
	}

	sort.Float64s(prices)

	rec := &model.ReconciliationResult{
		IncludedCount:   len(included),
		ReconciledValue: round2(weightedSum / weightSum),
		ValueRange: model.ValueRange{
			Low:  prices[0],
			High: prices[len(prices)-1],
		},
		Statistics: describe(prices),
	}

	zap.L().Info("engine: reconciliation complete",
		zap.Int("included", rec.IncludedCount),
		zap.Int("excluded_by_weight", len(results)-rec.IncludedCount),
		zap.Float64("reconciled_value", rec.ReconciledValue),
		zap.Float64("range_low", rec.ValueRange.Low),
		zap.Float64("range_high", rec.ValueRange.High),
	)

	return rec, nil
}

// describe computes descriptive statistics over a sorted price slice.
// Standard deviation is the population form; quartiles use linear
// interpolation between closest ranks.
func describe(sorted []float64) model.DescriptiveStats {
	n := len(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, p := range sorted {
		d := p - mean
		sqDiff += d * d
	}

	return model.DescriptiveStats{
		Mean:   round2(mean),
		Median: round2(percentile(sorted, 0.5)),
		StdDev: round2(math.Sqrt(sqDiff / float64(n))),
		Q1:     round2(percentile(sorted, 0.25)),
		Q3:     round2(percentile(sorted, 0.75)),
	}
}

// percentile interpolates the p-th quantile (0..1) of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
