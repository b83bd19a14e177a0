package breakeven

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrZeroPerformance indicates a performance ratio with a zero or
	// undefined denominator. Callers must not scale across a pairing where
	// either part lacks a score for the active workload.
	ErrZeroPerformance = constError("zero performance indicator")

	// ErrUnsupportedWorkload indicates a workload one of the selected parts
	// has no score for.
	ErrUnsupportedWorkload = constError("unsupported workload")

	// ErrUnknownWorkload indicates a workload name that is not recognized.
	ErrUnknownWorkload = constError("unknown workload")

	// ErrUnknownScaling indicates a scaling mode name that is not recognized.
	ErrUnknownScaling = constError("unknown scaling mode")

	// ErrInvalidUtilization indicates a utilization outside [0, 100].
	ErrInvalidUtilization = constError("utilization out of range")
)
