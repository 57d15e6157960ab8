package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"hyperlife/internal/sims/hyperlife"

	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate random seed patterns in parallel and rank them by final population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			applyRunFlags(cmd, cfg)
			if flags.Changed("seeds") {
				cfg.Sweep.Seeds, _ = flags.GetInt("seeds")
			}
			if flags.Changed("workers") {
				cfg.Sweep.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("width") {
				cfg.Sweep.Width, _ = flags.GetInt("width")
			}
			if flags.Changed("height") {
				cfg.Sweep.Height, _ = flags.GetInt("height")
			}
			if flags.Changed("density") {
				cfg.Sweep.Density, _ = flags.GetFloat64("density")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			start, _ := flags.GetInt64("start-seed")

			base := hyperlife.DefaultConfig()
			base.Ticks = cfg.Ticks
			base.MarginTicks = cfg.MarginTicks
			base.Width = cfg.Sweep.Width
			base.Height = cfg.Sweep.Height
			base.Density = cfg.Sweep.Density

			seeds := make([]int64, cfg.Sweep.Seeds)
			for i := range seeds {
				seeds[i] = start + int64(i)
			}

			log.Info("sweep", "seeds", len(seeds), "workers", cfg.Sweep.Workers,
				"pattern", fmt.Sprintf("%dx%d", base.Width, base.Height), "ticks", base.Ticks)
			began := time.Now()
			results := hyperlife.Sweep(cmd.Context(), base, seeds, cfg.Sweep.Workers)
			log.Info("sweep complete", "results", len(results), "elapsed", time.Since(began).Round(time.Millisecond))

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEED\tINITIAL\tFINAL\tEDGE\tCLIPPED")
			for _, res := range results {
				if res.Err != nil {
					log.Warn("seed failed", "seed", res.Seed, "err", res.Err)
					continue
				}
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%t\n", res.Seed, res.Initial, res.Final, res.Edge, res.Clipped)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return cmd.Context().Err()
		},
	}

	cmd.Flags().IntP("ticks", "n", 0, "generations per seed (default from config)")
	cmd.Flags().Int("margin", 0, "ticks of growth the lattice is sized for (default from config)")
	cmd.Flags().Int("seeds", 0, "number of seeds to evaluate (default from config)")
	cmd.Flags().Int("workers", 0, "worker goroutines (default from config)")
	cmd.Flags().Int("width", 0, "random pattern width (default from config)")
	cmd.Flags().Int("height", 0, "random pattern height (default from config)")
	cmd.Flags().Float64("density", 0, "probability a seed cell is alive (default from config)")
	cmd.Flags().Int64("start-seed", 1, "first seed")
	return cmd
}
