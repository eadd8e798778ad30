package engine

import (
	"fmt"

	"github.com/sells-group/comps-engine/internal/model"
)

// locationFeatureOrder fixes the evaluation order of the named feature
// premiums so output is deterministic.
var locationFeatureOrder = []string{"highway_frontage", "visibility", "access"}

// stageLocation prices the location-score difference on the non-linear tier
// curve, then applies flat named feature premiums where the subject and
// comparable differ on a boolean exposure feature.
func stageLocation(subject *model.SubjectProperty, comp *model.ComparableSale, params *model.MarketParameters, price float64) ([]model.AdjustmentRecord, error) {
	var records []model.AdjustmentRecord

	pct := tieredScorePct(params.Tiers(), comp.LocationScore, subject.LocationScore)
	if pct != 0 {
		records = append(records, model.AdjustmentRecord{
			Category:        model.StageLocation,
			Characteristic:  "location_score",
			SubjectValue:    fmt.Sprintf("%.1f", subject.LocationScore),
			ComparableValue: fmt.Sprintf("%.1f", comp.LocationScore),
			Amount:          pct / 100 * price,
			RateKey:         "location_tiers",
			Explanation: fmt.Sprintf("tiered score difference %.1f -> %.1f: %.3f%% of price",
				comp.LocationScore, subject.LocationScore, pct),
		})
	}

	for _, name := range locationFeatureOrder {
		sv := featureFlag(subject.LocationFeatures, name)
		cv := featureFlag(comp.LocationFeatures, name)
		if sv == nil || cv == nil || *sv == *cv {
			continue
		}
		premium, ok := params.FeaturePremiums[name]
		if !ok {
			records = append(records, model.AdjustmentRecord{
				Category:        model.StageLocation,
				Characteristic:  name,
				SubjectValue:    yesNo(*sv),
				ComparableValue: yesNo(*cv),
				Incomplete:      true,
				Explanation:     fmt.Sprintf("%s skipped: no premium configured", name),
			})
			continue
		}
		diff := 1.0
		if !*sv {
			diff = -1.0
		}
		records = append(records, model.AdjustmentRecord{
			Category:        model.StageLocation,
			Characteristic:  name,
			SubjectValue:    yesNo(*sv),
			ComparableValue: yesNo(*cv),
			Amount:          diff * premium / 100 * price,
			RateKey:         "premium:" + name,
			Explanation:     fmt.Sprintf("%s premium %.2f%% of price", name, diff*premium),
		})
	}

	return records, nil
}

// tieredScorePct integrates the tier curve over the score interval from the
// comparable's score to the subject's. Each tier's rate applies only to the
// portion of the difference inside that tier, so the adjustment is continuous
// across tier boundaries. The result is signed: a subject scoring above the
// comparable yields a positive percentage.
func tieredScorePct(tiers []model.LocationTier, compScore, subjectScore float64) float64 {
	if compScore == subjectScore {
		return 0
	}
	lo, hi := compScore, subjectScore
	sign := 1.0
	if lo > hi {
		lo, hi = hi, lo
		sign = -1.0
	}

	var pct float64
	for _, t := range tiers {
		overlapLo := max(lo, t.Lower)
		overlapHi := min(hi, t.Upper)
		if overlapHi > overlapLo {
			pct += (overlapHi - overlapLo) * t.RatePctPerPoint
		}
	}
	return sign * pct
}

func featureFlag(f model.LocationFeatures, name string) *bool {
	switch name {
	case "highway_frontage":
		return f.HighwayFrontage
	case "visibility":
		return f.Visibility
	case "access":
		return f.Access
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
