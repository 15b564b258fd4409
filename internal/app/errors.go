package service

import "errors"

// Sentinel kinds for simulation runs.
var (
	ErrUnknownBacchiatore = errors.New("bacchiatore not found in file, data may be corrupted")
	ErrNoFiles            = errors.New("no files to simulate")
)
