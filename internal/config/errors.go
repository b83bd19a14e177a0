package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingPart is returned when no current part is configured.
var ErrMissingPart = constError("current part is required")
