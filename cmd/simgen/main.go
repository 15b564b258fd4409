// Command simgen writes a deterministic synthetic season of duel files.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/bacrama/internal/simgen"
	"github.com/okian/bacrama/pkg/logger"
)

func main() {
	def := simgen.DefaultConfig()
	var (
		outDir    = flag.String("out", def.OutDir, "Output directory")
		fileNames = flag.String("names", def.FileNames, "File name pattern containing one %d")
		days      = flag.Int("days", def.Days, "Number of files to write")
		players   = flag.Int("players", def.Players, "Size of the population")
		duels     = flag.Int("duels", def.DuelsPerDay, "Duels per file")
		touches   = flag.Int("touches", def.Touches, "Points needed to win a duel")
		seed      = flag.Int64("seed", def.Seed, "Seed of the random source")
		workers   = flag.Int("workers", def.Workers, "Concurrent file writers")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		simgen.ShowHelp(os.Stdout)
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := simgen.Config{
		OutDir:      *outDir,
		FileNames:   *fileNames,
		Days:        *days,
		Players:     *players,
		DuelsPerDay: *duels,
		Touches:     *touches,
		Seed:        *seed,
		Workers:     *workers,
	}
	if _, err := simgen.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
