package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"rentbuy-engine/internal/engine"
	"rentbuy-engine/internal/model"
)

var (
	scenarioFile string
	monteCarlo   bool
	pathCount    int
	seed         int64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a scenario file through the projection engine",
	Long: `Reads scenario parameters from a TOML file, runs the deterministic
projection (and the Monte Carlo batch when enabled) and prints the
result record as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req model.AnalysisRequest
		if _, err := toml.DecodeFile(scenarioFile, &req); err != nil {
			return fmt.Errorf("read scenario: %w", err)
		}

		if cmd.Flags().Changed("monte-carlo") {
			req.MonteCarlo = monteCarlo
		}
		if pathCount > 0 {
			req.Paths = pathCount
		}
		if seed != 0 {
			req.Seed = seed
		}

		if err := req.Validate(); err != nil {
			return err
		}

		resp := engine.Process(&req)
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "scenario.toml", "TOML scenario file")
	analyzeCmd.Flags().BoolVar(&monteCarlo, "monte-carlo", false, "run the Monte Carlo batch (overrides the scenario file)")
	analyzeCmd.Flags().IntVar(&pathCount, "paths", 0, "Monte Carlo path count (overrides the scenario file)")
	analyzeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible Monte Carlo runs")
	rootCmd.AddCommand(analyzeCmd)
}
