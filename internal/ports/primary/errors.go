package primary

import "errors"

// Error kinds surfaced at the primary port boundary.
// Services wrap these with fmt.Errorf("%w: ...") so callers can use errors.Is.
var (
	// ErrNotFound means an unknown chord or scale name.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means a missing or malformed request field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict means a duplicate registration name.
	ErrConflict = errors.New("conflict")
)
