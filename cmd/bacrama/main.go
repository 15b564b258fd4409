// Command bacrama replays numbered duel files and prints the resulting
// Elo leaderboard.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Logs go to stderr; stdout carries the leaderboard.
	if err := initLogging(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
