package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/comps-engine/internal/config"
	"github.com/sells-group/comps-engine/internal/model"
)

func testEngine() *Engine {
	return New(config.EngineConfig{MaxConcurrent: 2, MaterialityPct: 5.0})
}

// twinComparable is a comparable indistinguishable from the subject that sold
// on the valuation date, so it carries no adjustments at all.
func twinComparable(subject *model.SubjectProperty, params *model.MarketParameters, id string, price float64) *model.ComparableSale {
	return &model.ComparableSale{
		ID:              id,
		Address:         "300 Twin St",
		PropertyType:    subject.PropertyType,
		PropertyRights:  subject.PropertyRights,
		LocationScore:   subject.LocationScore,
		SalePrice:       price,
		SaleDate:        params.ValuationDate,
		Financing:       model.Financing{Type: model.FinancingCash},
		Conditions:      model.ConditionsOfSale{ArmsLength: true},
		Characteristics: subject.Characteristics,
	}
}

func TestAnalyzeFullRun(t *testing.T) {
	subject, comp, params := industrialScenario()
	twin := twinComparable(subject, params, "comp-2", 4_200_000)
	broken := twinComparable(subject, params, "comp-3", 4_100_000)
	broken.Conditions = model.ConditionsOfSale{ArmsLength: false} // discount missing

	result, err := testEngine().Analyze(context.Background(),
		subject, []*model.ComparableSale{comp, twin, broken}, params, Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AnalysisID)
	assert.Equal(t, params.ValuationDate, result.ValuationDate)

	// Evaluation order is preserved regardless of concurrency.
	require.Len(t, result.Comparables, 2)
	assert.Equal(t, "comp-1", result.Comparables[0].Comparable.ID)
	assert.Equal(t, "comp-2", result.Comparables[1].Comparable.ID)

	require.Len(t, result.Excluded, 1)
	assert.Equal(t, "comp-3", result.Excluded[0].Comparable)
	assert.Contains(t, result.Excluded[0].Reason, "motivation_discount_pct")

	// comp-1 weighs 1.5 at 4,188,212.54; the unadjusted twin weighs 2.0.
	require.NotNil(t, result.Reconciliation)
	assert.Equal(t, 2, result.Reconciliation.IncludedCount)
	assert.InDelta(t, 4_194_948.23, result.Reconciliation.ReconciledValue, 0.05)
	assert.Nil(t, result.Sensitivity)
}

func TestAnalyzeRejectedComparableStaysVisible(t *testing.T) {
	subject, comp, params := industrialScenario()
	twin := twinComparable(subject, params, "comp-2", 4_200_000)
	outlier := twinComparable(subject, params, "comp-3", 4_000_000)
	outlier.LocationScore = 0 // 85 points of tiered difference, gross 70%

	result, err := testEngine().Analyze(context.Background(),
		subject, []*model.ComparableSale{comp, twin, outlier}, params, Options{})
	require.NoError(t, err)

	// The rejected comparable appears in the output with its status, but
	// carries no weight and never stretches the reported spread.
	require.Len(t, result.Comparables, 3)
	rejected := result.Comparables[2]
	assert.Equal(t, model.StatusReject, rejected.Status)
	assert.Zero(t, rejected.Weight)
	assert.Greater(t, rejected.FinalAdjustedPrice, 6_000_000.0)

	assert.Equal(t, 2, result.Reconciliation.IncludedCount)
	assert.Less(t, result.Reconciliation.ValueRange.High, 5_000_000.0)
}

func TestAnalyzeWithSensitivity(t *testing.T) {
	subject, comp, params := industrialScenario()
	twin := twinComparable(subject, params, "comp-2", 4_200_000)

	result, err := testEngine().Analyze(context.Background(),
		subject, []*model.ComparableSale{comp, twin}, params, Options{Sensitivity: true})
	require.NoError(t, err)

	require.NotEmpty(t, result.Sensitivity)
	assert.Equal(t, "location_tiers", result.Sensitivity[0].RateKey)
	assert.Equal(t, result.Reconciliation.ReconciledValue, result.Sensitivity[0].BaselineValue)
}

func TestAnalyzeInvalidParametersFailsRun(t *testing.T) {
	subject, comp, params := industrialScenario()
	params.CapRate = 0

	_, err := testEngine().Analyze(context.Background(),
		subject, []*model.ComparableSale{comp}, params, Options{})
	require.Error(t, err)

	var cerr *model.ConfigurationError
	assert.ErrorAs(t, err, &cerr)
}

func TestAnalyzeAllComparablesExcluded(t *testing.T) {
	subject, _, params := industrialScenario()
	broken := twinComparable(subject, params, "comp-1", 4_000_000)
	broken.SalePrice = -1

	_, err := testEngine().Analyze(context.Background(),
		subject, []*model.ComparableSale{broken}, params, Options{})
	require.Error(t, err)

	var ierr *model.InsufficientDataError
	assert.ErrorAs(t, err, &ierr)
}

func TestAnalyzeNoComparables(t *testing.T) {
	subject, _, params := industrialScenario()

	_, err := testEngine().Analyze(context.Background(), subject, nil, params, Options{})
	require.Error(t, err)

	var ierr *model.InsufficientDataError
	assert.ErrorAs(t, err, &ierr)
}

func TestAnalyzeCanceledContext(t *testing.T) {
	subject, comp, params := industrialScenario()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testEngine().Analyze(ctx, subject, []*model.ComparableSale{comp}, params, Options{})
	require.Error(t, err)
}
