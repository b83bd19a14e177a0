package carbon

import "github.com/rs/zerolog"

// logger is used for table parsing diagnostics and degraded lookups.
//
//nolint:gochecknoglobals // Injected once at startup via SetLogger.
var logger = zerolog.Nop()

// SetLogger replaces the package logger. Call it before the first lookup so
// embedded table parsing diagnostics are captured.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "carbon").Logger()
}
