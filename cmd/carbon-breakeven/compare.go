package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
	"github.com/rshade/carbon-breakeven/internal/config"
	"github.com/rshade/carbon-breakeven/internal/report"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type compareOptions struct {
	configPath   string
	hardwarePath string
	output       string

	current     string
	newPart     string
	workload    string
	scaling     string
	country     string
	currentUtil float64
	newUtil     float64
	single      bool
	horizon     int
}

func newCompareCmd() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a current GPU against a replacement",
		Example: `  carbon-breakeven compare --current A100 --new H100 --workload FP32 --country Germany
  carbon-breakeven compare --current V100 --single --output json
  carbon-breakeven compare --config scenario.yaml --scaling utilization --new-util 30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML scenario file")
	f.StringVar(&opts.hardwarePath, "hardware-file", "", "CSV hardware table replacing the built-in one")
	f.StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	f.StringVar(&opts.current, "current", "", "current GPU")
	f.StringVar(&opts.newPart, "new", "", "replacement GPU (omit for single comparison)")
	f.StringVar(&opts.workload, "workload", "", "workload: FP16, FP32, FP64 or BENCH_S_MATRIX")
	f.StringVar(&opts.scaling, "scaling", "", "scaling: none, utilization or emissions")
	f.StringVar(&opts.country, "country", "", "country for grid carbon intensity")
	f.Float64Var(&opts.currentUtil, "current-util", carbon.DefaultUtilization, "current GPU utilization (0-100)")
	f.Float64Var(&opts.newUtil, "new-util", carbon.DefaultUtilization, "new GPU utilization (0-100)")
	f.BoolVar(&opts.single, "single", false, "compare the current GPU against its own embodied carbon")
	f.IntVar(&opts.horizon, "horizon", breakeven.DefaultTimeHorizon, "projection horizon in years")

	return cmd
}

func runCompare(cmd *cobra.Command, opts compareOptions) error {
	if opts.output != outputText && opts.output != outputJSON {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	sc, err := config.Load(opts.configPath, logger)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, &sc)

	sel, err := sc.Selection()
	if err != nil {
		return err
	}

	table, err := loadHardware(opts.hardwarePath)
	if err != nil {
		return err
	}

	sel, err = propagateUtilization(cmd, sel, table)
	if err != nil {
		return err
	}

	normalized, err := sel.Normalize(table)
	if err != nil {
		return err
	}
	if normalized.Workload != sel.Workload {
		logger.Warn().
			Str("requested", string(sel.Workload)).
			Str("using", string(normalized.Workload)).
			Msg("workload not supported by the selected hardware")
	}

	traceID := uuid.New().String()
	log := logger.With().Str("trace_id", traceID).Logger()
	log.Debug().
		Str("current", normalized.Part(breakeven.RoleCurrent)).
		Str("new", normalized.Part(breakeven.RoleNew)).
		Str("country", normalized.Country).
		Msg("evaluating scenario")

	eval, err := breakeven.Evaluate(normalized, table)
	if err != nil {
		log.Error().Err(err).Msg("evaluation failed")
		return err
	}

	summary := report.Summarize(eval)
	summary.TraceID = traceID
	log.Info().
		Bool("found", summary.BreakEvenFound).
		Float64("years", summary.BreakEvenYears).
		Msg("evaluation complete")

	if opts.output == outputJSON {
		return report.WriteJSON(cmd.OutOrStdout(), summary)
	}
	return report.WriteText(cmd.OutOrStdout(), summary)
}

// applyFlags overlays explicitly set flags on the loaded scenario.
func applyFlags(cmd *cobra.Command, opts compareOptions, sc *config.Scenario) {
	f := cmd.Flags()
	if f.Changed("current") {
		sc.Current = opts.current
	}
	if f.Changed("new") {
		sc.New = opts.newPart
	}
	if f.Changed("workload") {
		sc.Workload = opts.workload
	}
	if f.Changed("scaling") {
		sc.Scaling = opts.scaling
	}
	if f.Changed("country") {
		sc.Country = opts.country
	}
	if f.Changed("current-util") {
		sc.CurrentUtilization = opts.currentUtil
	}
	if f.Changed("new-util") {
		sc.NewUtilization = opts.newUtil
	}
	if f.Changed("single") {
		sc.SingleComparison = opts.single
	}
	if f.Changed("horizon") {
		sc.TimeHorizon = opts.horizon
	}
}

// propagateUtilization applies the scaling policy when exactly one
// utilization flag was given.
func propagateUtilization(
	cmd *cobra.Command,
	sel breakeven.ScenarioSelection,
	table carbon.HardwareTable,
) (breakeven.ScenarioSelection, error) {
	currentSet := cmd.Flags().Changed("current-util")
	newSet := cmd.Flags().Changed("new-util")

	switch {
	case currentSet && !newSet:
		return sel.SetUtilization(breakeven.RoleCurrent, sel.CurrentUtilization, table)
	case newSet && !currentSet:
		return sel.SetUtilization(breakeven.RoleNew, sel.NewUtilization, table)
	default:
		return sel, nil
	}
}

func loadHardware(path string) (carbon.HardwareTable, error) {
	if path == "" {
		return carbon.DefaultHardware(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hardware file: %w", err)
	}
	defer f.Close()

	table, err := carbon.ParseHardwareSpecs(f)
	if err != nil {
		return nil, fmt.Errorf("loading hardware file %s: %w", path, err)
	}
	logger.Debug().Str("path", path).Int("parts", len(table)).Msg("loaded hardware table")
	return table, nil
}
