package breakeven

import "github.com/rs/zerolog"

//nolint:gochecknoglobals // Injected once at startup via SetLogger.
var logger = zerolog.Nop()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "breakeven").Logger()
}
