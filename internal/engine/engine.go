package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/comps-engine/internal/config"
	"github.com/sells-group/comps-engine/internal/model"
)

// Engine runs full comparable sales analyses.
type Engine struct {
	cfg config.EngineConfig
}

// New creates an Engine with the given configuration.
func New(cfg config.EngineConfig) *Engine {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	if cfg.MaterialityPct <= 0 {
		cfg.MaterialityPct = 5.0
	}
	return &Engine{cfg: cfg}
}

// Options controls per-run behavior.
type Options struct {
	// Sensitivity enables the perturbation analysis after reconciliation.
	Sensitivity bool
}

// Analyze evaluates every comparable against the subject, reconciles the
// surviving set, and optionally runs sensitivity analysis. Comparables that
// fail validation are excluded with a reason rather than failing the run;
// a configuration problem with the market parameters fails the whole run.
func (e *Engine) Analyze(ctx context.Context, subject *model.SubjectProperty, comps []*model.ComparableSale, params *model.MarketParameters, opts Options) (*model.AnalysisResult, error) {
	if err := params.Validate(); err != nil {
		return nil, eris.Wrap(err, "engine: invalid market parameters")
	}
	if len(comps) == 0 {
		return nil, &model.InsufficientDataError{Reason: "no comparables provided"}
	}

	type outcome struct {
		result *model.ComparableResult
		err    error
	}
	outcomes := make([]outcome, len(comps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrent)
	for i, comp := range comps {
		i, comp := i, comp
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := EvaluateComparable(subject, comp, params)
			outcomes[i] = outcome{result: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "engine: evaluation canceled")
	}

	var (
		results  []model.ComparableResult
		excluded []model.ExcludedComparable
	)
	for i, out := range outcomes {
		if out.err != nil {
			if !recoverable(out.err) {
				return nil, eris.Wrapf(out.err, "engine: comparable %s", comps[i].Label())
			}
			zap.L().Warn("comparable excluded",
				zap.String("comparable", comps[i].Label()),
				zap.String("reason", out.err.Error()))
			excluded = append(excluded, model.ExcludedComparable{
				Comparable: comps[i].Label(),
				Reason:     out.err.Error(),
			})
			continue
		}
		results = append(results, *out.result)
	}

	if len(results) == 0 {
		return nil, &model.InsufficientDataError{Reason: "all comparables were excluded"}
	}

	recon, err := Reconcile(results)
	if err != nil {
		return nil, err
	}

	analysis := &model.AnalysisResult{
		AnalysisID:     uuid.NewString(),
		ValuationDate:  params.ValuationDate,
		Comparables:    results,
		Excluded:       excluded,
		Reconciliation: recon,
	}

	if opts.Sensitivity {
		sens, err := Sensitivity(subject, results, params, recon.ReconciledValue, e.cfg.MaterialityPct)
		if err != nil {
			return nil, eris.Wrap(err, "engine: sensitivity analysis")
		}
		analysis.Sensitivity = sens
	}

	zap.L().Info("analysis complete",
		zap.String("analysis_id", analysis.AnalysisID),
		zap.Int("comparables", len(results)),
		zap.Int("excluded", len(excluded)),
		zap.Float64("reconciled_value", recon.ReconciledValue))

	return analysis, nil
}

// recoverable reports whether an evaluation error should exclude the single
// comparable instead of failing the analysis.
func recoverable(err error) bool {
	var verr *model.ValidationError
	if eris.As(err, &verr) {
		return true
	}
	var uerr *model.UnrecognizedValueError
	return eris.As(err, &uerr)
}
