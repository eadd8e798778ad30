package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/comps-engine/internal/model"
)

func weightedResult(price, weight float64) model.ComparableResult {
	return model.ComparableResult{
		FinalAdjustedPrice: price,
		Weight:             weight,
	}
}

func TestReconcileWeightedMean(t *testing.T) {
	results := []model.ComparableResult{
		weightedResult(100, 2),
		weightedResult(200, 2),
		weightedResult(300, 1),
		weightedResult(400, 1),
	}

	rec, err := Reconcile(results)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.IncludedCount)
	// (200 + 400 + 300 + 400) / 6
	assert.InDelta(t, 216.67, rec.ReconciledValue, 0.01)
	assert.Equal(t, 100.0, rec.ValueRange.Low)
	assert.Equal(t, 400.0, rec.ValueRange.High)
}

func TestReconcileStatistics(t *testing.T) {
	results := []model.ComparableResult{
		weightedResult(100, 2),
		weightedResult(200, 2),
		weightedResult(300, 2),
		weightedResult(400, 2),
	}

	rec, err := Reconcile(results)
	require.NoError(t, err)

	s := rec.Statistics
	assert.InDelta(t, 250, s.Mean, 0.01)
	assert.InDelta(t, 250, s.Median, 0.01)
	assert.InDelta(t, 111.80, s.StdDev, 0.01) // population form
	assert.InDelta(t, 175, s.Q1, 0.01)        // interpolated at 0.25 x (n-1)
	assert.InDelta(t, 325, s.Q3, 0.01)
}

func TestReconcileExcludesRejected(t *testing.T) {
	results := []model.ComparableResult{
		weightedResult(100, 2),
		weightedResult(300, 2),
		weightedResult(9_000_000, 0), // rejected: never distorts the spread
	}

	rec, err := Reconcile(results)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.IncludedCount)
	assert.InDelta(t, 200, rec.ReconciledValue, 0.01)
	assert.Equal(t, 300.0, rec.ValueRange.High)
}

func TestReconcileEqualWeightsIsSimpleMean(t *testing.T) {
	results := []model.ComparableResult{
		weightedResult(100, 1.5),
		weightedResult(200, 1.5),
		weightedResult(300, 1.5),
	}

	rec, err := Reconcile(results)
	require.NoError(t, err)
	assert.InDelta(t, 200, rec.ReconciledValue, 0.01)
}

func TestReconcileSingleComparable(t *testing.T) {
	rec, err := Reconcile([]model.ComparableResult{weightedResult(500, 2)})
	require.NoError(t, err)

	assert.Equal(t, 500.0, rec.ReconciledValue)
	assert.Equal(t, 500.0, rec.Statistics.Median)
	assert.Equal(t, 500.0, rec.Statistics.Q1)
	assert.Equal(t, 500.0, rec.Statistics.Q3)
	assert.Zero(t, rec.Statistics.StdDev)
}

func TestReconcileIsDeterministic(t *testing.T) {
	results := []model.ComparableResult{
		weightedResult(4_188_212.54, 1.5),
		weightedResult(4_200_000, 2),
		weightedResult(3_950_000, 1),
	}

	first, err := Reconcile(results)
	require.NoError(t, err)
	second, err := Reconcile(results)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcileInsufficientData(t *testing.T) {
	for _, results := range [][]model.ComparableResult{
		nil,
		{weightedResult(100, 0), weightedResult(200, 0)},
	} {
		_, err := Reconcile(results)
		require.Error(t, err)

		var ierr *model.InsufficientDataError
		assert.ErrorAs(t, err, &ierr)
	}
}
