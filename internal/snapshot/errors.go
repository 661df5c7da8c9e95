package snapshot

import "errors"

// Sentinel kinds for snapshot errors.
var (
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrNotFound        = errors.New("snapshot not found")
)
