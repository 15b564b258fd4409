package simgen

import "errors"

// Sentinel kinds for generation errors.
var (
	ErrInvalidConfig = errors.New("invalid generator config")
)
