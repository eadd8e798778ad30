package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/comps-engine/internal/model"
)

// industrialScenario is a fully worked comparable: a 306-day time adjustment,
// a premium-tier location difference, and a clear-height deficit, with the
// building size rate deliberately unconfigured.
func industrialScenario() (*model.SubjectProperty, *model.ComparableSale, *model.MarketParameters) {
	subject := &model.SubjectProperty{
		Address:        "100 Subject Way",
		PropertyType:   model.PropertyTypeIndustrial,
		PropertyRights: model.RightsFeeSimple,
		LocationScore:  85,
		Characteristics: model.Characteristics{
			Building:   model.BuildingAttributes{SizeSF: ptrFloat64(50_000)},
			Industrial: &model.IndustrialAttributes{ClearHeightFt: ptrFloat64(26)},
		},
	}

	comp := &model.ComparableSale{
		ID:             "comp-1",
		Address:        "200 Comparable Rd",
		PropertyType:   model.PropertyTypeIndustrial,
		PropertyRights: model.RightsFeeSimple,
		LocationScore:  90,
		SalePrice:      4_500_000,
		SaleDate:       model.NewDate(2024, time.March, 15),
		Financing:      model.Financing{Type: model.FinancingCash},
		Conditions:     model.ConditionsOfSale{ArmsLength: true},
		Characteristics: model.Characteristics{
			Building:   model.BuildingAttributes{SizeSF: ptrFloat64(48_000)},
			Industrial: &model.IndustrialAttributes{ClearHeightFt: ptrFloat64(28)},
		},
	}

	params := &model.MarketParameters{
		ValuationDate:          model.NewDate(2025, time.January, 15),
		AppreciationRateAnnual: 3.5,
		CapRate:                6.5,
		AdjustmentRates:        map[string]float64{"clear_height_ft": 1.0},
	}

	return subject, comp, params
}

func TestEvaluateComparableFullPipeline(t *testing.T) {
	subject, comp, params := industrialScenario()

	result, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)
	require.Len(t, result.Stages, 6)

	// Stages 1-3: same rights, cash sale, arm's length.
	for i := 0; i < 3; i++ {
		assert.Empty(t, result.Stages[i].Records)
		assert.Equal(t, 4_500_000.0, result.Stages[i].PriceAfter)
	}

	// Stage 4: 306 days forward at 3.5%/yr compound.
	market := result.Stages[3]
	require.Len(t, market.Records, 1)
	assert.InDelta(t, 131_581.12, market.Records[0].Amount, 0.02)
	assert.InDelta(t, 4_631_581.12, market.PriceAfter, 0.02)

	// Stage 5: 90 -> 85 inside the premium tier, -7.5% of the running price.
	location := result.Stages[4]
	require.Len(t, location.Records, 1)
	assert.InDelta(t, -347_368.58, location.Records[0].Amount, 0.02)
	assert.InDelta(t, 4_284_212.54, location.PriceAfter, 0.02)

	// Stage 6: clear height 2 ft short over 48,000 SF, and building size
	// skipped for want of a rate.
	physical := result.Stages[5]
	byName := make(map[string]model.AdjustmentRecord)
	for _, r := range physical.Records {
		byName[r.Characteristic] = r
	}
	clearHeight, ok := byName["clear_height_ft"]
	require.True(t, ok)
	assert.InDelta(t, -96_000, clearHeight.Amount, 0.01)

	size, ok := byName["building_size_sf"]
	require.True(t, ok)
	assert.True(t, size.Incomplete)
	assert.Zero(t, size.Amount)

	assert.InDelta(t, 4_188_212.54, result.FinalAdjustedPrice, 0.02)
	assert.Equal(t, 12.78, result.GrossAdjustmentPct)
	assert.Equal(t, -6.93, result.NetAdjustmentPct)
	assert.Equal(t, model.StatusAcceptable, result.Status)
	assert.Equal(t, 1.5, result.Weight)
}

func TestEvaluateComparableEachStagePricesPriorOutput(t *testing.T) {
	subject, comp, params := industrialScenario()

	result, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)

	price := comp.SalePrice
	for _, st := range result.Stages {
		assert.Equal(t, price, st.PriceBefore, "stage %d", st.Stage)
		price = st.PriceAfter
	}
}

func TestEvaluateComparableLaterStagesPriceRightsAdjustedBase(t *testing.T) {
	subject, comp, params := industrialScenario()
	comp.PropertyRights = model.RightsLeasehold
	comp.GroundRentAnnual = ptrFloat64(60_000)
	comp.Conditions = model.ConditionsOfSale{
		ArmsLength:            false,
		MotivationDiscountPct: ptrFloat64(10),
	}

	result, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)

	// Stage 1 lifts the base by the capitalized ground rent; stage 3's
	// percentage must apply to that lifted base, not the raw sale price.
	rights := result.Stages[0]
	require.Len(t, rights.Records, 1)
	assert.InDelta(t, 923_076.92, rights.Records[0].Amount, 0.01)

	conditions := result.Stages[2]
	require.Len(t, conditions.Records, 1)
	assert.InDelta(t, 0.10*(4_500_000+923_076.92), conditions.Records[0].Amount, 0.01)
}

func TestEvaluateComparableGrossBoundsNet(t *testing.T) {
	subject, comp, params := industrialScenario()

	result, err := EvaluateComparable(subject, comp, params)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.GrossAdjustmentPct, math.Abs(result.NetAdjustmentPct))
}

func TestEvaluateComparableNonPositivePrice(t *testing.T) {
	subject, comp, params := industrialScenario()
	comp.SalePrice = 0

	_, err := EvaluateComparable(subject, comp, params)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sale_price", verr.Field)
}

func TestEvaluateComparablePropertyTypeMismatch(t *testing.T) {
	subject, comp, params := industrialScenario()
	comp.PropertyType = model.PropertyTypeOffice

	_, err := EvaluateComparable(subject, comp, params)
	require.Error(t, err)

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "property_type", verr.Field)
}
