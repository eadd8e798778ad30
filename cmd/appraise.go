package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/engine"
	"github.com/sells-group/comps-engine/internal/input"
	"github.com/sells-group/comps-engine/internal/model"
)

var appraiseCmd = &cobra.Command{
	Use:   "appraise",
	Short: "Run a comparable sales analysis from a JSON request file",
	Long: `Run the full six-stage adjustment sequence over a comparable set.

The input file carries the subject property, the comparables, and the market
parameters (valuation date, cap rate, appreciation rate, adjustment rate
table). Each comparable is adjusted stage by stage, validated against the
gross/net thresholds, and the surviving set is reconciled into a single
indicated value.

Examples:
  # Analyze and print the result as a table
  appraise --input request.json

  # Full machine-readable output with sensitivity analysis
  appraise --input request.json --format json --sensitivity

  # Export the adjustment grid to CSV
  appraise --input request.json --format csv --output grid.csv`,
	RunE: runAppraise,
}

func init() {
	f := appraiseCmd.Flags()
	f.String("input", "", "path to the analysis request JSON file (required)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table, json, or csv")
	f.Bool("sensitivity", false, "run sensitivity analysis on material adjustment rates")
	_ = appraiseCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(appraiseCmd)
}

func runAppraise(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	sensitivity, _ := cmd.Flags().GetBool("sensitivity")

	if format != "table" && format != "json" && format != "csv" {
		return eris.Errorf("appraise: --format must be table, json, or csv (got %q)", format)
	}

	doc, err := input.Load(inputPath, cfg.Engine.MaxComparables)
	if err != nil {
		return err
	}

	log := zap.L().With(zap.String("command", "appraise"))
	log.Info("starting analysis",
		zap.String("subject", doc.Subject.Address),
		zap.Int("comparables", len(doc.Comparables)),
		zap.Bool("sensitivity", sensitivity),
	)

	eng := engine.New(cfg.Engine)
	result, err := eng.Analyze(ctx, &doc.Subject, doc.Comparables, &doc.MarketParameters, engine.Options{
		Sensitivity: sensitivity,
	})
	if err != nil {
		return eris.Wrap(err, "appraise: analysis")
	}

	return outputAnalysis(result, format, outputPath)
}

func outputAnalysis(result *model.AnalysisResult, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "appraise: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "appraise: encode result")
		}
		return nil
	case "csv":
		return writeAnalysisCSV(w, result)
	default:
		return writeAnalysisTable(w, result)
	}
}

func writeAnalysisCSV(w *os.File, result *model.AnalysisResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"comparable", "sale_price", "final_adjusted_price",
		"gross_adjustment_pct", "net_adjustment_pct", "status", "weight",
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "appraise: write CSV header")
	}

	for _, c := range result.Comparables {
		row := []string{
			c.Comparable.Label(),
			fmt.Sprintf("%.2f", c.Comparable.SalePrice),
			fmt.Sprintf("%.2f", c.FinalAdjustedPrice),
			fmt.Sprintf("%.2f", c.GrossAdjustmentPct),
			fmt.Sprintf("%.2f", c.NetAdjustmentPct),
			string(c.Status),
			fmt.Sprintf("%.1f", c.Weight),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "appraise: write CSV row")
		}
	}
	return nil
}

func writeAnalysisTable(w *os.File, result *model.AnalysisResult) error {
	// Exclusions come first so the reader sees what the conclusion rests on.
	if len(result.Excluded) > 0 {
		fmt.Fprintln(w, "Excluded comparables:")
		for _, ex := range result.Excluded {
			fmt.Fprintf(w, "  %-30s %s\n", ex.Comparable, ex.Reason)
		}
		fmt.Fprintln(w)
	}

	header := fmt.Sprintf("%-30s %15s %15s %8s %8s %-10s %6s\n",
		"Comparable", "Sale Price", "Adjusted", "Gross%", "Net%", "Status", "Weight")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "appraise: write table header")
	}
	fmt.Fprintln(w, strings.Repeat("-", 98))

	for _, c := range result.Comparables {
		label := c.Comparable.Label()
		if len(label) > 30 {
			label = label[:27] + "..."
		}
		fmt.Fprintf(w, "%-30s %15s %15s %8.1f %8.1f %-10s %6.1f\n",
			label,
			formatMoney(c.Comparable.SalePrice),
			formatMoney(c.FinalAdjustedPrice),
			c.GrossAdjustmentPct,
			c.NetAdjustmentPct,
			c.Status,
			c.Weight,
		)
	}

	r := result.Reconciliation
	fmt.Fprintf(w, "\n--- Reconciliation ---\n")
	fmt.Fprintf(w, "Comparables used:  %d\n", r.IncludedCount)
	fmt.Fprintf(w, "Reconciled value:  $%s\n", formatMoney(r.ReconciledValue))
	fmt.Fprintf(w, "Value range:       $%s - $%s\n", formatMoney(r.ValueRange.Low), formatMoney(r.ValueRange.High))
	fmt.Fprintf(w, "Mean / median:     $%s / $%s\n", formatMoney(r.Statistics.Mean), formatMoney(r.Statistics.Median))
	fmt.Fprintf(w, "Std dev:           $%s\n", formatMoney(r.Statistics.StdDev))
	fmt.Fprintf(w, "Q1 / Q3:           $%s / $%s\n", formatMoney(r.Statistics.Q1), formatMoney(r.Statistics.Q3))

	if len(result.Sensitivity) > 0 {
		fmt.Fprintf(w, "\n--- Sensitivity (rates perturbed +/-10%%) ---\n")
		fmt.Fprintf(w, "%-28s %15s %15s %9s\n", "Rate", "Low Value", "High Value", "Max |d|%")
		for _, s := range result.Sensitivity {
			fmt.Fprintf(w, "%-28s %15s %15s %9.2f\n",
				s.RateKey,
				formatMoney(s.LowValue),
				formatMoney(s.HighValue),
				s.MaxAbsPctChange,
			)
		}
	}

	return nil
}

// formatMoney renders a dollar amount with thousands separators and two
// decimal places.
func formatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]
	var b []byte
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b = append(b, ',')
		}
		b = append(b, intPart[i])
	}
	out := string(b) + fracPart
	if neg {
		return "-" + out
	}
	return out
}
