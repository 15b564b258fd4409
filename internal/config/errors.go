package config

import "errors"

// ErrInvalidConfig marks values rejected by Validate; ErrLoadConfig marks a
// config file or environment that could not be read.
var (
	ErrInvalidConfig = errors.New("invalid bacrama config")
	ErrLoadConfig    = errors.New("cannot load bacrama config")
)
