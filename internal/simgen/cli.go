package simgen

import (
	"io"
)

// ShowHelp prints usage information for the generator.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `bacrama simulation generator
============================

Writes a deterministic season of numbered duel files that
"bacrama simulate" can replay.

Usage:
  simgen [options]

Options:
  -out string
        Output directory (default "simulation")
  -names string
        File name pattern containing one %d (default "%d.csv")
  -days int
        Number of files to write (default 30)
  -players int
        Size of the population (default 64)
  -duels int
        Duels per file (default 120)
  -touches int
        Points needed to win a duel (default 5)
  -seed int
        Seed of the random source (default 1)
  -workers int
        Concurrent file writers (default 4)
  -help
        Show this help message

Examples:
  simgen -out season -days 60 -players 200
  bacrama simulate season
`)
}
