package registry

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrInvalidBoard = errors.New("invalid board configuration")
	ErrUnknownBoard = errors.New("unknown board")
)
