package engine

import (
	"fmt"

	"github.com/sells-group/comps-engine/internal/model"
)

// stagePropertyRights converts a comparable to the subject's rights basis.
// A leasehold interest is converted to fee-simple equivalent by capitalizing
// the ground rent at the market cap rate; sale on the same basis needs no
// adjustment.
func stagePropertyRights(subject *model.SubjectProperty, comp *model.ComparableSale, params *model.MarketParameters, price float64) ([]model.AdjustmentRecord, error) {
	if subject.PropertyRights == comp.PropertyRights {
		return nil, nil
	}

	if comp.GroundRentAnnual == nil {
		return nil, &model.ValidationError{
			Comparable: comp.Label(),
			Field:      "ground_rent_annual",
			Reason:     "required for a property-rights conversion involving a leasehold interest",
		}
	}
	if params.CapRate <= 0 {
		return nil, &model.ConfigurationError{Parameter: "cap_rate", Reason: "must be positive"}
	}

	landValueEquivalent := *comp.GroundRentAnnual / (params.CapRate / 100)

	// Leasehold comparable vs fee-simple subject: add the capitalized ground
	// rent to put the comparable on a fee-simple basis. The reverse
	// conversion subtracts it.
	amount := landValueEquivalent
	if comp.PropertyRights == model.RightsFeeSimple {
		amount = -landValueEquivalent
	}

	rec := model.AdjustmentRecord{
		Category:        model.StagePropertyRights,
		Characteristic:  "property_rights",
		SubjectValue:    string(subject.PropertyRights),
		ComparableValue: string(comp.PropertyRights),
		Amount:          amount,
		RateKey:         "cap_rate",
		Explanation: fmt.Sprintf("ground rent $%.2f/yr capitalized at %.2f%% cap rate = $%.2f",
			*comp.GroundRentAnnual, params.CapRate, landValueEquivalent),
	}
	return []model.AdjustmentRecord{rec}, nil
}
