package reorder

import "errors"

var (
	// ErrNotFound is returned when a reorder id does not exist.
	ErrNotFound = errors.New("reorder not found")

	// ErrAlreadyReceived is returned when receipt is attempted on a reorder
	// that is not in status Ordered. A second receipt must fail, never
	// silently succeed.
	ErrAlreadyReceived = errors.New("reorder already received")
)
