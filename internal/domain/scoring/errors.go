package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrValueOutOfRange = errors.New("normalized value out of range")
)
