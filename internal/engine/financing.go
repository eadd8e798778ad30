package engine

import (
	"fmt"

	"github.com/sells-group/comps-engine/internal/model"
)

// stageFinancing normalizes a comparable's price to cash-equivalent terms.
// Cash and at-market conventional financing need no adjustment. Seller
// take-back financing below the market rate delivered the buyer a benefit
// equal to the present value of the rate differential over the loan term,
// which is subtracted from the observed price.
func stageFinancing(_ *model.SubjectProperty, comp *model.ComparableSale, _ *model.MarketParameters, _ float64) ([]model.AdjustmentRecord, error) {
	fin := comp.Financing

	switch fin.Type {
	case model.FinancingCash, model.FinancingConventional:
		return nil, nil
	case model.FinancingSellerVTB:
		// fall through
	default:
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "financing.type",
			Reason:     fmt.Sprintf("unsupported financing type %q", fin.Type),
		}
	}

	required := []struct {
		field string
		value *float64
	}{
		{"financing.rate", fin.ContractRate},
		{"financing.market_rate", fin.MarketRate},
		{"financing.term_years", fin.TermYears},
		{"financing.loan_amount", fin.LoanAmount},
	}
	for _, r := range required {
		if r.value == nil {
			return nil, &model.ValidationError{
				Comparable: comp.Label(),
				Field:      r.field,
				Reason:     "required for seller take-back financing",
			}
		}
	}

	rateDiff := *fin.MarketRate - *fin.ContractRate
	if rateDiff <= 0 {
		// At or above market: no benefit conveyed.
		return nil, nil
	}

	factor := annuityFactor(*fin.MarketRate/100, *fin.TermYears)
	benefit := *fin.LoanAmount * rateDiff / 100 * factor

	rec := model.AdjustmentRecord{
		Category:        model.StageFinancing,
		Characteristic:  "financing",
		SubjectValue:    "cash_equivalent",
		ComparableValue: string(fin.Type),
		Amount:          -benefit,
		Explanation: fmt.Sprintf(
			"seller VTB %.2f%% vs market %.2f%% on $%.2f over %.1f yrs: benefit $%.2f removed",
			*fin.ContractRate, *fin.MarketRate, *fin.LoanAmount, *fin.TermYears, benefit),
	}
	return []model.AdjustmentRecord{rec}, nil
}
