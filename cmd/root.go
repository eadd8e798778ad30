package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "comps-engine",
	Short: "Sequential comparable sales adjustment engine",
	Long:  "Adjusts commercial comparable sale prices through the six-stage sequence (property rights, financing, conditions of sale, market conditions, location, physical characteristics), validates each comparable, and reconciles the set into an indicated value.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
