// Package input parses and validates analysis request documents. Documents are
// validated against an embedded JSON Schema before decoding, so structural
// problems surface as schema violations with paths instead of decode errors.
package input

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/model"
)

//go:embed schema.json
var schemaJSON []byte

// minComparables is the floor below which a sales comparison is not credible.
const minComparables = 3

// defaultMaxComparables is the advisory ceiling used when the caller does not
// configure one; runs above it proceed with a warning.
const defaultMaxComparables = 6

// Document is the full analysis request: one subject, the comparable set, and
// the shared market parameters.
type Document struct {
	Subject          model.SubjectProperty   `json:"subject_property"`
	Comparables      []*model.ComparableSale `json:"comparable_sales"`
	MarketParameters model.MarketParameters  `json:"market_parameters"`
}

// Parse validates raw JSON against the input schema and decodes it. advisoryMax
// is the comparable count above which a warning is logged; values of zero or
// below fall back to defaultMaxComparables.
func Parse(raw []byte, advisoryMax int) (*Document, error) {
	schema := gojsonschema.NewBytesLoader(schemaJSON)
	doc := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return nil, eris.Wrap(err, "input: schema validation")
	}
	if !result.Valid() {
		var b strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(desc.String())
		}
		return nil, eris.Errorf("input: document failed schema validation: %s", b.String())
	}

	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, eris.Wrap(err, "input: decode document")
	}

	if advisoryMax <= 0 {
		advisoryMax = defaultMaxComparables
	}
	if n := len(d.Comparables); n < minComparables {
		return nil, &model.InsufficientDataError{
			Reason: "at least 3 comparables are required for a credible analysis",
		}
	} else if n > advisoryMax {
		zap.L().Warn("comparable set exceeds the advisory maximum",
			zap.Int("count", n),
			zap.Int("max", advisoryMax))
	}

	return &d, nil
}

// Load reads and parses an analysis request from a file.
func Load(path string, advisoryMax int) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "input: read %s", path)
	}
	return Parse(raw, advisoryMax)
}
