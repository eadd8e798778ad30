package physical

import (
	"github.com/sells-group/comps-engine/internal/model"
)

// Catalog returns the adjustment specs applicable to a property type. The
// five base categories always apply; the industrial and office categories are
// mutually exclusive and selected by property type (retail carries neither).
func Catalog(propertyType model.PropertyType) []Spec {
	specs := make([]Spec, 0, 49)
	specs = append(specs, landSpecs()...)
	specs = append(specs, siteSpecs()...)
	specs = append(specs, buildingSpecs()...)
	specs = append(specs, featureSpecs()...)
	specs = append(specs, zoningSpecs()...)

	switch propertyType {
	case model.PropertyTypeIndustrial:
		specs = append(specs, industrialSpecs()...)
	case model.PropertyTypeOffice:
		specs = append(specs, officeSpecs()...)
	}
	return specs
}

// RateKeys returns the distinct rate keys of every characteristic in the full
// catalog, across all property types. Used by the sensitivity analyzer to
// recognize perturbable physical rates.
func RateKeys() []string {
	all := make([]Spec, 0, 49)
	all = append(all, Catalog(model.PropertyTypeIndustrial)...)
	all = append(all, officeSpecs()...)

	keys := make([]string, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		if !seen[s.RateKey] {
			seen[s.RateKey] = true
			keys = append(keys, s.RateKey)
		}
	}
	return keys
}

// Run evaluates every applicable characteristic for one comparable against
// the running price. Each category module contributes its records
// independently; Run concatenates them in catalog order. Records with a zero
// amount and no skip reason are omitted to keep the stage output focused on
// applied adjustments.
func Run(subject, comp *model.Characteristics, propertyType model.PropertyType, price float64, params *model.MarketParameters) ([]model.AdjustmentRecord, error) {
	specs := Catalog(propertyType)
	records := make([]model.AdjustmentRecord, 0, len(specs))
	for _, s := range specs {
		rec, err := Evaluate(s, subject, comp, price, params)
		if err != nil {
			return nil, err
		}
		if rec.Amount == 0 && !rec.Incomplete {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
