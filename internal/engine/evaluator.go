package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/model"
	"github.com/sells-group/comps-engine/internal/physical"
)

// stageDef binds a stage number and name to its processor. Order is the
// pipeline contract: each stage prices against the previous stage's output.
type stageDef struct {
	num  int
	name string
	run  func(*model.SubjectProperty, *model.ComparableSale, *model.MarketParameters, float64) ([]model.AdjustmentRecord, error)
}

func stages() []stageDef {
	return []stageDef{
		{1, model.StagePropertyRights, stagePropertyRights},
		{2, model.StageFinancing, stageFinancing},
		{3, model.StageConditionsOfSale, stageConditionsOfSale},
		{4, model.StageMarketConditions, stageMarketConditions},
		{5, model.StageLocation, stageLocation},
		{6, model.StagePhysical, stagePhysicalCharacteristics},
	}
}

// stagePhysicalCharacteristics adapts the physical sub-engine to the stage
// signature.
func stagePhysicalCharacteristics(subject *model.SubjectProperty, comp *model.ComparableSale, params *model.MarketParameters, price float64) ([]model.AdjustmentRecord, error) {
	return physical.Run(&subject.Characteristics, &comp.Characteristics, subject.PropertyType, price, params)
}

// EvaluateComparable runs the six-stage pipeline for one comparable, feeding
// each stage's output price into the next stage, and accumulates the gross
// and net adjustment totals. A ValidationError or UnrecognizedValueError
// means the comparable cannot be priced and should be excluded from the run.
func EvaluateComparable(subject *model.SubjectProperty, comp *model.ComparableSale, params *model.MarketParameters) (*model.ComparableResult, error) {
	if comp.SalePrice <= 0 {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "sale_price",
			Reason:     "must be positive",
		}
	}
	if comp.PropertyType != subject.PropertyType {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "property_type",
			Reason:     "must match the subject property type",
		}
	}

	result := &model.ComparableResult{
		Comparable: *comp,
		Stages:     make([]model.StageResult, 0, 6),
	}

	price := comp.SalePrice
	var gross, net float64

	for _, st := range stages() {
		records, err := st.run(subject, comp, params, price)
		if err != nil {
			return nil, err
		}

		sr := model.StageResult{
			Stage:       st.num,
			Name:        st.name,
			Records:     records,
			PriceBefore: price,
		}
		for _, rec := range records {
			gross += math.Abs(rec.Amount)
			net += rec.Amount
			price += rec.Amount
		}
		sr.PriceAfter = price
		result.Stages = append(result.Stages, sr)
	}

	result.FinalAdjustedPrice = round2(price)
	result.GrossAdjustment = round2(gross)
	result.NetAdjustment = round2(net)
	result.GrossAdjustmentPct = round2(gross / comp.SalePrice * 100)
	result.NetAdjustmentPct = round2(net / comp.SalePrice * 100)

	result.Status, result.Weight = Classify(result.GrossAdjustmentPct, result.NetAdjustmentPct)
	result.WeightedValue = round2(result.FinalAdjustedPrice * result.Weight)

	zap.L().Debug("engine: comparable evaluated",
		zap.String("comparable", comp.Label()),
		zap.Float64("sale_price", comp.SalePrice),
		zap.Float64("final_adjusted_price", result.FinalAdjustedPrice),
		zap.Float64("gross_pct", result.GrossAdjustmentPct),
		zap.Float64("net_pct", result.NetAdjustmentPct),
		zap.String("status", string(result.Status)),
	)

	return result, nil
}
