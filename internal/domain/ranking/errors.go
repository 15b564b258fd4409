package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrForeignHandle    = errors.New("handle was issued by another builder")
	ErrHandleOutOfRange = errors.New("handle out of range")
	ErrDegenerateDuel   = errors.New("duel points sum to zero")
	ErrAlreadyEvaluated = errors.New("builder already evaluated")
)
