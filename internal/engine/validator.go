package engine

import (
	"math"

	"github.com/sells-group/comps-engine/internal/model"
)

// Gross and net adjustment thresholds, in percent of sale price.
const (
	grossRejectPct  = 40.0
	grossCautionPct = 30.0
	netTightPct     = 5.0
	netModeratePct  = 10.0
)

// Classify maps a comparable's gross/net adjustment percentages to a
// validation status and reconciliation weight. A gross of exactly 40% is a
// rejection; a gross of exactly 30% is still acceptable. Within the
// acceptable band the weight falls as the absolute net adjustment grows,
// so the most similar comparables dominate the reconciled value.
func Classify(grossPct, netPct float64) (model.ValidationStatus, float64) {
	switch {
	case grossPct >= grossRejectPct:
		return model.StatusReject, 0.0
	case grossPct > grossCautionPct:
		return model.StatusCaution, 0.5
	}

	absNet := math.Abs(netPct)
	switch {
	case absNet < netTightPct:
		return model.StatusAcceptable, 2.0
	case absNet <= netModeratePct:
		return model.StatusAcceptable, 1.5
	default:
		return model.StatusAcceptable, 1.0
	}
}
