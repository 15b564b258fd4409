package ingest

import "errors"

// Sentinel kinds for simulation file parsing.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
	ErrEmptyName     = errors.New("empty bacchiatore name")
)
