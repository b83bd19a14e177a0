package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbon-breakeven/internal/breakeven"
	"github.com/rshade/carbon-breakeven/internal/carbon"
)

// logger is the CLI logger, configured in PersistentPreRun.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Set once per invocation.

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "carbon-breakeven",
		Short: "Carbon break-even analysis for GPU replacement",
		Long: "carbon-breakeven estimates embodied and operational emissions of a current\n" +
			"and a new GPU and reports when the new unit's accumulated carbon drops\n" +
			"below the current one's.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = newLogger(cmd.ErrOrStderr(), debug)
			carbon.SetLogger(logger)
			breakeven.SetLogger(logger)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newCompareCmd(), newHardwareCmd(), newCountriesCmd())
	return cmd
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
