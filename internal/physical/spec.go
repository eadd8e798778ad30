// Package physical implements the stage-6 sub-engine: 49 per-characteristic
// adjustment rules across 7 categories, expressed as a declarative catalog
// interpreted by one generic evaluator per formula kind.
package physical

import (
	"fmt"
	"strconv"

	"github.com/sells-group/comps-engine/internal/model"
)

// Kind selects the formula used to price a characteristic difference. The
// kind is fixed per characteristic by the catalog, never inferred at runtime.
type Kind int

const (
	// KindContinuous prices (subject - comparable) x rate per unit.
	KindContinuous Kind = iota
	// KindOrdinal prices rank difference on an explicit scale x rate per level.
	KindOrdinal
	// KindBoolean prices a presence difference as a lump sum or % of price.
	KindBoolean
)

// Spec is one declarative adjustment rule. Accessors return nil when the
// attribute was not provided, which makes the adjustment incomplete rather
// than an error.
type Spec struct {
	Name     string
	Category string
	Kind     Kind
	RateKey  string
	Unit     string

	// Scale is required for ordinal specs.
	Scale *model.OrdinalScale

	// PctOfPrice interprets the rate as a percentage of the running price
	// (per level for ordinals, flat for booleans) instead of dollars.
	PctOfPrice bool

	// Invert flips the sign for characteristics where a larger value or
	// presence makes a property inferior (effective age, easements).
	Invert bool

	// ScaleByBuildingSF multiplies a continuous rate by the comparable's
	// building size, for rates quoted per unit per square foot.
	ScaleByBuildingSF bool

	Num  func(*model.Characteristics) *float64
	Ord  func(*model.Characteristics) *string
	Flag func(*model.Characteristics) *bool
}

// Evaluate prices one characteristic difference against the running price.
// Missing data or a missing configured rate yields an incomplete record;
// only an out-of-scale ordinal value is an error.
func Evaluate(s Spec, subject, comp *model.Characteristics, price float64, params *model.MarketParameters) (model.AdjustmentRecord, error) {
	rec := model.AdjustmentRecord{
		Category:       s.Category,
		Characteristic: s.Name,
		RateKey:        s.RateKey,
	}

	rate, rateOK := params.Rate(s.RateKey)

	switch s.Kind {
	case KindContinuous:
		sv, cv := s.Num(subject), s.Num(comp)
		if sv == nil || cv == nil {
			return incomplete(rec, "value not provided"), nil
		}
		rec.SubjectValue = fmtNum(*sv)
		rec.ComparableValue = fmtNum(*cv)
		if !rateOK {
			return incomplete(rec, "no rate configured"), nil
		}
		diff := *sv - *cv
		if s.Invert {
			diff = -diff
		}
		amount := diff * rate
		if s.ScaleByBuildingSF {
			sf := comp.Building.SizeSF
			if sf == nil {
				return incomplete(rec, "comparable building size required"), nil
			}
			amount *= *sf
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s x %s x %s SF",
				s.Name, rec.SubjectValue, rec.ComparableValue, fmtNum(diff), fmtRate(rate, s.Unit), fmtNum(*sf))
		} else {
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s x %s",
				s.Name, rec.SubjectValue, rec.ComparableValue, fmtNum(diff), fmtRate(rate, s.Unit))
		}
		rec.Amount = amount
		return rec, nil

	case KindOrdinal:
		sv, cv := s.Ord(subject), s.Ord(comp)
		if sv == nil || cv == nil {
			return incomplete(rec, "value not provided"), nil
		}
		rec.SubjectValue = *sv
		rec.ComparableValue = *cv
		sRank, err := s.Scale.Rank(*sv)
		if err != nil {
			return rec, err
		}
		cRank, err := s.Scale.Rank(*cv)
		if err != nil {
			return rec, err
		}
		if !rateOK {
			return incomplete(rec, "no rate configured"), nil
		}
		diff := float64(sRank - cRank)
		if s.PctOfPrice {
			rec.Amount = diff * rate / 100 * price
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s levels x %s%%/level of price",
				s.Name, *sv, *cv, fmtNum(diff), fmtNum(rate))
		} else {
			rec.Amount = diff * rate
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s levels x %s/level",
				s.Name, *sv, *cv, fmtNum(diff), fmtMoney(rate))
		}
		return rec, nil

	case KindBoolean:
		sv, cv := s.Flag(subject), s.Flag(comp)
		if sv == nil || cv == nil {
			return incomplete(rec, "value not provided"), nil
		}
		rec.SubjectValue = fmtBool(*sv)
		rec.ComparableValue = fmtBool(*cv)
		if !rateOK {
			return incomplete(rec, "no rate configured"), nil
		}
		diff := float64(b2i(*sv) - b2i(*cv))
		if s.Invert {
			diff = -diff
		}
		if s.PctOfPrice {
			rec.Amount = diff * rate / 100 * price
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s%% of price",
				s.Name, rec.SubjectValue, rec.ComparableValue, fmtNum(diff*rate))
		} else {
			rec.Amount = diff * rate
			rec.Explanation = fmt.Sprintf("%s %s vs %s: %s lump sum",
				s.Name, rec.SubjectValue, rec.ComparableValue, fmtMoney(diff*rate))
		}
		return rec, nil
	}

	return incomplete(rec, "unknown formula kind"), nil
}

func incomplete(rec model.AdjustmentRecord, reason string) model.AdjustmentRecord {
	rec.Incomplete = true
	rec.Amount = 0
	rec.Explanation = fmt.Sprintf("%s skipped: %s", rec.Characteristic, reason)
	return rec
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fmtBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func fmtMoney(f float64) string {
	return fmt.Sprintf("$%.2f", f)
}

func fmtRate(rate float64, unit string) string {
	return fmt.Sprintf("$%s %s", fmtNum(rate), unit)
}
