// Package config defines the bacrama configuration and its loading hooks.
//
// Values are layered: defaults from New, then an optional YAML file named by
// BACRAMA_CONFIG, then BACRAMA_* environment variables. Command line flags are
// applied by the caller on top of the loaded Config.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Unset marks an open file range bound.
const Unset = -1

// Output formats accepted by the simulate command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// FileNames is the simulation file pattern; it must hold one %d.
	FileNames string `koanf:"file_names"`

	// MinFile and MaxFile bound the simulated file numbers. Unset means the
	// lowest or highest file found.
	MinFile int `koanf:"min_file"`
	MaxFile int `koanf:"max_file"`

	// LoadWorkers bounds concurrent file parsing.
	LoadWorkers int `koanf:"load_workers"`

	// LeaderboardLimit caps the printed leaderboard; 0 prints everyone.
	LeaderboardLimit int `koanf:"leaderboard_limit"`

	// ShowPlacing marks bacchiatori still in their placement period.
	ShowPlacing bool `koanf:"show_placing"`

	// Output selects the leaderboard renderer: table or json.
	Output string `koanf:"output"`

	// MetricsTextfile, when set, receives a Prometheus textfile export after a run.
	MetricsTextfile string `koanf:"metrics_textfile"`

	// Addr configures the HTTP listen address of the serve command, e.g. ":9080".
	Addr string `koanf:"addr"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		FileNames:        "%d.csv",
		MinFile:          Unset,
		MaxFile:          Unset,
		LoadWorkers:      runtime.NumCPU(),
		LeaderboardLimit: 0,
		ShowPlacing:      true,
		Output:           OutputTable,

		Addr:                ":9080",
		MaxLeaderboardLimit: 100,
	}
}

// MinBound returns MinFile as an optional bound.
func (c *Config) MinBound() *int { return bound(c.MinFile) }

// MaxBound returns MaxFile as an optional bound.
func (c *Config) MaxBound() *int { return bound(c.MaxFile) }

func bound(v int) *int {
	if v == Unset {
		return nil
	}
	return &v
}

// Validate checks cross-field consistency.
func (c *Config) Validate() error {
	if n := strings.Count(c.FileNames, "%d"); n != 1 {
		return fmt.Errorf("%w: file_names %q must contain exactly one %%d, found %d", ErrInvalidConfig, c.FileNames, n)
	}
	if c.MinFile < Unset || c.MaxFile < Unset {
		return fmt.Errorf("%w: file bounds must be non-negative", ErrInvalidConfig)
	}
	if c.MinFile != Unset && c.MaxFile != Unset && c.MinFile > c.MaxFile {
		return fmt.Errorf("%w: min_file %d is greater than max_file %d", ErrInvalidConfig, c.MinFile, c.MaxFile)
	}
	if c.LoadWorkers < 1 {
		return fmt.Errorf("%w: load_workers must be at least 1", ErrInvalidConfig)
	}
	if c.LeaderboardLimit < 0 {
		return fmt.Errorf("%w: leaderboard_limit must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.MaxLeaderboardLimit < 1 {
		return fmt.Errorf("%w: max_leaderboard_limit must be at least 1", ErrInvalidConfig)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, c.Output)
	}
	return nil
}
