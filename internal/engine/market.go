package engine

import (
	"fmt"

	"github.com/sells-group/comps-engine/internal/model"
)

// stageMarketConditions brings the comparable's price forward from its sale
// date to the valuation date at the compound annual appreciation rate. The
// base is the running price after the rights, financing, and conditions
// stages, not the raw sale price.
func stageMarketConditions(_ *model.SubjectProperty, comp *model.ComparableSale, params *model.MarketParameters, price float64) ([]model.AdjustmentRecord, error) {
	if comp.SaleDate.After(params.ValuationDate.Time) {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "sale_date",
			Reason:     "must not be after the valuation date",
		}
	}

	years := yearsBetween(comp.SaleDate.Time, params.ValuationDate.Time)
	if years == 0 {
		return nil, nil
	}

	factor := compoundGrowth(params.AppreciationRateAnnual, years)
	amount := price*factor - price

	rec := model.AdjustmentRecord{
		Category:        model.StageMarketConditions,
		Characteristic:  "market_conditions",
		SubjectValue:    params.ValuationDate.Format("2006-01-02"),
		ComparableValue: comp.SaleDate.Format("2006-01-02"),
		Amount:          amount,
		RateKey:         "appreciation_rate_annual",
		Explanation: fmt.Sprintf("%.2f yrs at %.2f%%/yr compound: factor %.6f",
			years, params.AppreciationRateAnnual, factor),
	}
	return []model.AdjustmentRecord{rec}, nil
}
