package integrity

import "errors"

// Sentinel kinds for integrity errors.
var (
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")
)
