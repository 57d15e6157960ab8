package main

import (
	"fmt"
	"strconv"

	"hyperlife/internal/core"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the centre cross-section evolve in a window (requires -tags ebiten)",
		Long: `Opens an interactive viewer on the displayed z/w plane.

Keys: Space pause, N single step, R reset, S random reseed,
Up/Down move along z, Left/Right move along w, Q or Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("margin") {
				cfg.MarginTicks, _ = flags.GetInt("margin")
			}
			if flags.Changed("scale") {
				cfg.Viewer.Scale, _ = flags.GetInt("scale")
			}
			if flags.Changed("gps") {
				cfg.Viewer.GenerationsPerSecond, _ = flags.GetInt("gps")
			}
			if flags.Changed("seed") {
				cfg.Viewer.Seed, _ = flags.GetInt64("seed")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			simName, _ := flags.GetString("sim")
			factory, ok := core.Sims()[simName]
			if !ok {
				return fmt.Errorf("unknown sim %q", simName)
			}

			simCfg := map[string]string{
				"margin": strconv.Itoa(cfg.MarginTicks),
				"seed":   strconv.FormatInt(cfg.Viewer.Seed, 10),
			}
			if input, _ := flags.GetString("input"); input != "" {
				p, err := readPattern(cmd.InOrStdin(), input)
				if err != nil {
					return err
				}
				simCfg["pattern"] = p.String()
			}
			sim := factory(simCfg)
			log.Info("viewer", "sim", sim.Name(), "size", sim.Size(), "seed", cfg.Viewer.Seed)
			return runViewer(sim, cfg.Viewer)
		},
	}

	cmd.Flags().StringP("input", "i", "", "pattern file (default random seed pattern)")
	cmd.Flags().String("sim", "hyperlife", "simulation to run")
	cmd.Flags().Int("margin", 0, "ticks of growth the lattice is sized for (default from config)")
	cmd.Flags().Int("scale", 0, "pixel scale multiplier (default from config)")
	cmd.Flags().Int("gps", 0, "generations per second (default from config)")
	cmd.Flags().Int64("seed", 0, "seed for random patterns and reset (default from config)")
	return cmd
}
