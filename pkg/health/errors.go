package health

import "errors"

var (
	// ErrCheckTimeout is reported for a check that did not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
