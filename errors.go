package mountain

import "errors"

var (
	// ErrRetriesExhausted is returned when a map could not be generated
	// within the configured number of attempts.
	ErrRetriesExhausted = errors.New("generation retries exhausted")

	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrNoPortal         = errors.New("no portal")
	ErrUnknownMap       = errors.New("unknown map")

	// Retriable generation failures.
	ErrDisconnected = errors.New("required cell not connected")
	ErrNoStairs     = errors.New("no stair site")
)
