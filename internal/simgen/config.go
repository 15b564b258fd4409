package simgen

import (
	"fmt"
	"time"
)

// Config holds the parameters of a generated simulation.
type Config struct {
	OutDir      string // directory receiving 1.csv..N.csv
	FileNames   string // file name pattern, one %d
	Days        int    // number of files
	Players     int    // size of the population
	DuelsPerDay int    // duels written to each file
	Touches     int    // points needed to win a duel
	Seed        int64  // seed of the deterministic source
	Workers     int    // concurrent file writers
}

// DefaultConfig returns a small season.
func DefaultConfig() Config {
	return Config{
		OutDir:      "simulation",
		FileNames:   "%d.csv",
		Days:        30,
		Players:     64,
		DuelsPerDay: 120,
		Touches:     5,
		Seed:        1,
		Workers:     4,
	}
}

// Validate rejects configurations that cannot produce a simulation.
func (c Config) Validate() error {
	switch {
	case c.OutDir == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	case c.Days < 1:
		return fmt.Errorf("%w: days must be at least 1", ErrInvalidConfig)
	case c.Players < 2:
		return fmt.Errorf("%w: at least 2 players are needed", ErrInvalidConfig)
	case c.DuelsPerDay < 1:
		return fmt.Errorf("%w: duels per day must be at least 1", ErrInvalidConfig)
	case c.Touches < 1:
		return fmt.Errorf("%w: touches must be at least 1", ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Stats holds generation statistics.
type Stats struct {
	Files     int
	Duels     int
	Players   int
	StartTime time.Time
	Duration  time.Duration
}
