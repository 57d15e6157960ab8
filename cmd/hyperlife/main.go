package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"hyperlife/internal/config"
	"hyperlife/internal/logging"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperlife",
		Short: "Conway's Game of Life on a 4D lattice",
		Long: `hyperlife evolves a 2D seed pattern embedded in a 4D hypercube under the
B3/S23 rule with the 80-cell Moore neighbourhood.

Patterns are rows of '#' (alive) and '.' (dead), read from stdin or --input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newViewCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig resolves defaults, the config file, the environment and the
// persistent flags, and builds the stderr logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyperlife version %s\n", version)
		},
	}
}
