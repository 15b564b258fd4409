package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/bacrama/pkg/logger"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var initLogging = logger.Init

// simulateFlags holds the command line overrides of the loaded config.
type simulateFlags struct {
	fileNames       string
	min             int
	max             int
	top             int
	output          string
	noPlacing       bool
	workers         int
	logLevel        string
	metricsTextfile string
	addr            string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bacrama",
		Short: "Simulate the bacrama Elo ranking over numbered duel files",
		Long: `bacrama replays a directory of numbered duel files, one batch per file,
and prints the leaderboard that results from the Elo ranking with its
placement period.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(), newServeCmd(), newVersionCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	var f simulateFlags
	cmd := &cobra.Command{
		Use:   "simulate <directory>",
		Short: "Run the ranking over the simulation files of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args[0], &f)
		},
	}

	addSimulationFlags(cmd, &f)
	flags := cmd.Flags()
	flags.IntVar(&f.top, "top", 0, "print only the best N bacchiatori (0 prints all)")
	flags.StringVarP(&f.output, "output", "o", "table", "leaderboard format: table or json")
	flags.BoolVar(&f.noPlacing, "no-placing", false, "do not mark bacchiatori still in their placement period")
	flags.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")
	return cmd
}

func newServeCmd() *cobra.Command {
	var f simulateFlags
	cmd := &cobra.Command{
		Use:   "serve <directory>",
		Short: "Run the ranking, then serve the leaderboard over HTTP",
		Long: `serve replays the simulation files of a directory like simulate does and
then keeps the resulting leaderboard available over HTTP until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0], &f)
		},
	}

	addSimulationFlags(cmd, &f)
	cmd.Flags().StringVar(&f.addr, "addr", "", "HTTP listen address (empty keeps the configured value)")
	return cmd
}

// addSimulationFlags registers the flags shared by every command that runs a simulation.
func addSimulationFlags(cmd *cobra.Command, f *simulateFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.fileNames, "file-names", "f", "%d.csv", `file name pattern; "%d" is replaced with the file number`)
	flags.IntVarP(&f.min, "min", "m", -1, "number of the first file of the simulation")
	flags.IntVarP(&f.max, "max", "M", -1, "number of the last file of the simulation")
	flags.IntVar(&f.workers, "workers", 0, "concurrent file parsers (0 keeps the configured value)")
	flags.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bacrama version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bacrama %s\n", version)
			return err
		},
	}
}
