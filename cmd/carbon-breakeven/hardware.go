package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
	"github.com/rshade/carbon-breakeven/internal/report"
)

const tabPadding = 2

func newHardwareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hardware",
		Short: "Inspect the hardware spec table",
	}
	cmd.AddCommand(newHardwareListCmd())
	return cmd
}

func newHardwareListCmd() *cobra.Command {
	var (
		workload     string
		hardwarePath string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known GPUs by release year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := loadHardware(hardwarePath)
			if err != nil {
				return err
			}

			var filter carbon.Workload
			if workload != "" {
				w, ok := carbon.ParseWorkload(strings.ToUpper(workload))
				if !ok {
					return fmt.Errorf("%w: %q", breakeven.ErrUnknownWorkload, workload)
				}
				filter = w
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "NAME\tYEAR\tNODE\tDIE (mm²)\tVRAM\tMAX (W)\tWORKLOADS\tEMBODIED (kgCO₂e)")
			for _, spec := range table.List() {
				if filter != "" && !spec.Supports(filter) {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%dnm\t%s\t%s GB %s\t%s\t%s\t%s\n",
					spec.Name,
					spec.Year,
					spec.ProcessNodeNM,
					report.TrimZeroFraction(report.FormatFloat(spec.DieAreaMM2, 1)),
					report.TrimZeroFraction(report.FormatFloat(spec.VRAMCapacityGB, 1)),
					spec.Memory,
					report.TrimZeroFraction(report.FormatFloat(spec.MaxPowerW, 1)),
					joinWorkloads(carbon.SupportedWorkloads(spec)),
					embodied(spec),
				)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&workload, "workload", "", "only list GPUs supporting this workload")
	cmd.Flags().StringVar(&hardwarePath, "hardware-file", "", "CSV hardware table replacing the built-in one")
	return cmd
}

func joinWorkloads(ws []carbon.Workload) string {
	if len(ws) == 0 {
		return "-"
	}
	names := make([]string, len(ws))
	for i, w := range ws {
		names[i] = string(w)
	}
	return strings.Join(names, ",")
}

// embodied returns the capex total of a spec, independent of workload.
func embodied(spec carbon.HardwareSpec) string {
	sys, err := carbon.SystemFromSpec(spec, carbon.WorkloadFP32)
	if err != nil {
		logger.Debug().Err(err).Str("name", spec.Name).Msg("skipping embodied carbon")
		return "-"
	}
	return report.FormatFloat(carbon.CalculateCapex(sys).Total, 1)
}

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries and their grid carbon intensity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
			fmt.Fprintln(w, "COUNTRY\tgCO₂e/kWh")
			for _, c := range carbon.Countries() {
				fmt.Fprintf(w, "%s\t%s\n", c, report.FormatFloat(carbon.GetGridIntensity(c), 0))
			}
			return w.Flush()
		},
	}
}
