package ledger

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrDateOutOfOrder = errors.New("date out of order")
	ErrNoSuchDate     = errors.New("no such date")
)
