package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrInvalidSystem indicates a System constructed from physically
	// impossible values (negative area, capacity, or power).
	ErrInvalidSystem = constError("invalid system")

	// ErrUnknownHardware indicates a part name absent from the spec table.
	ErrUnknownHardware = constError("unknown hardware")

	// ErrMalformedSpecTable indicates a hardware spec table that could not be
	// read at all. Individual malformed rows are skipped, not reported.
	ErrMalformedSpecTable = constError("malformed hardware spec table")
)
