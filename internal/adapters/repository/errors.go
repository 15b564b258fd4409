package repository

import "errors"

// ErrNotFound is returned by Get and Rank for names never registered.
// ErrInvalidLimit is returned by TopN for limits below one.
var (
	ErrNotFound     = errors.New("bacchiatore not found")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
)
