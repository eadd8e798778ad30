package engine

import (
	"fmt"

	"github.com/sells-group/comps-engine/internal/model"
)

// stageConditionsOfSale normalizes a non-arm's-length price to an estimated
// arm's-length price. Motivation discounts depress the observed price below
// market, so the adjustment is always additive.
func stageConditionsOfSale(_ *model.SubjectProperty, comp *model.ComparableSale, _ *model.MarketParameters, price float64) ([]model.AdjustmentRecord, error) {
	cond := comp.Conditions
	if cond.ArmsLength {
		return nil, nil
	}

	if cond.MotivationDiscountPct == nil {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "conditions_of_sale.motivation_discount_pct",
			Reason:     "required for a non-arm's-length sale",
		}
	}
	pct := *cond.MotivationDiscountPct
	if pct < 0 {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "conditions_of_sale.motivation_discount_pct",
			Reason:     "must be non-negative",
		}
	}

	amount := price * pct / 100
	rec := model.AdjustmentRecord{
		Category:        model.StageConditionsOfSale,
		Characteristic:  "conditions_of_sale",
		SubjectValue:    "arms_length",
		ComparableValue: "non_arms_length",
		Amount:          amount,
		Explanation:     fmt.Sprintf("motivation discount %.2f%% added back to reach arm's-length price", pct),
	}
	return []model.AdjustmentRecord{rec}, nil
}
