package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/comps-engine/internal/model"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrBool(v bool) *bool          { return &v }

func testMarketParams() *model.MarketParameters {
	return &model.MarketParameters{
		ValuationDate:          model.NewDate(2025, time.January, 15),
		AppreciationRateAnnual: 3.5,
		CapRate:                6.5,
		AdjustmentRates:        map[string]float64{},
	}
}

func feeSimpleSubject() *model.SubjectProperty {
	return &model.SubjectProperty{
		Address:        "100 Subject Way",
		PropertyType:   model.PropertyTypeIndustrial,
		PropertyRights: model.RightsFeeSimple,
	}
}

func TestPropertyRightsSameBasisNoAdjustment(t *testing.T) {
	comp := &model.ComparableSale{PropertyRights: model.RightsFeeSimple}

	records, err := stagePropertyRights(feeSimpleSubject(), comp, testMarketParams(), 1_000_000)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPropertyRightsLeaseholdComparable(t *testing.T) {
	comp := &model.ComparableSale{
		ID:               "comp-1",
		PropertyRights:   model.RightsLeasehold,
		GroundRentAnnual: ptrFloat64(60_000),
	}

	records, err := stagePropertyRights(feeSimpleSubject(), comp, testMarketParams(), 1_000_000)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// $60,000 / 6.5% capitalized.
	assert.InDelta(t, 923_076.92, records[0].Amount, 0.01)
	assert.Equal(t, "cap_rate", records[0].RateKey)
}

func TestPropertyRightsFeeSimpleComparableLeaseholdSubject(t *testing.T) {
	subject := feeSimpleSubject()
	subject.PropertyRights = model.RightsLeasehold
	comp := &model.ComparableSale{
		PropertyRights:   model.RightsFeeSimple,
		GroundRentAnnual: ptrFloat64(60_000),
	}

	records, err := stagePropertyRights(subject, comp, testMarketParams(), 1_000_000)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, -923_076.92, records[0].Amount, 0.01)
}

func TestPropertyRightsMissingGroundRent(t *testing.T) {
	comp := &model.ComparableSale{
		ID:             "comp-1",
		PropertyRights: model.RightsLeasehold,
	}

	_, err := stagePropertyRights(feeSimpleSubject(), comp, testMarketParams(), 1_000_000)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ground_rent_annual", verr.Field)
	assert.Equal(t, "comp-1", verr.Comparable)
}
