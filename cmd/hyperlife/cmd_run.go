package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"hyperlife/internal/config"
	"hyperlife/internal/lattice"
	"hyperlife/internal/pattern"
	"hyperlife/internal/sims/hyperlife"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a pattern and print the centre cross-section after every tick",
		Long: `Reads a pattern, embeds it at the centre of a lattice sized for --margin
ticks of growth, and simulates --ticks generations. After each generation the
z = w = edge/2 plane is printed followed by "===". The final line is the total
number of live cells.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			input, _ := cmd.Flags().GetString("input")
			p, err := readPattern(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			edge := lattice.EdgeFor(p.Height(), p.Width(), cfg.MarginTicks)
			log.Info("lattice", "pattern", fmt.Sprintf("%dx%d", p.Width(), p.Height()),
				"edge", edge, "ticks", cfg.Ticks, "margin_ticks", cfg.MarginTicks)
			if cfg.MayClip() {
				log.Warn("ticks exceed the sized margin; growth may reach the boundary",
					"ticks", cfg.Ticks, "margin_ticks", cfg.MarginTicks)
			}

			simCfg := hyperlife.DefaultConfig()
			simCfg.Ticks = cfg.Ticks
			simCfg.MarginTicks = cfg.MarginTicks
			simCfg.Pattern = p
			sim, err := hyperlife.New(simCfg)
			if err != nil {
				return err
			}
			sim.SetLogger(log)
			if cfg.Slice.Z != nil || cfg.Slice.W != nil {
				mid := sim.Lattice().Mid()
				z, w := mid, mid
				if cfg.Slice.Z != nil {
					z = *cfg.Slice.Z
				}
				if cfg.Slice.W != nil {
					w = *cfg.Slice.W
				}
				sim.SetSlice(z, w)
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			alive, runErr := sim.Run(cmd.Context(), out)
			if err := out.Flush(); err != nil && runErr == nil {
				runErr = err
			}
			if runErr != nil {
				return runErr
			}
			log.Debug("run complete", "alive", alive, "generation", sim.Lattice().Generation())
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "pattern file (default stdin)")
	cmd.Flags().IntP("ticks", "n", config.DefaultTicks, "generations to simulate")
	cmd.Flags().Int("margin", config.DefaultMarginTicks, "ticks of growth the lattice is sized for")
	cmd.Flags().Int("slice-z", 0, "z of the printed plane (default edge/2)")
	cmd.Flags().Int("slice-w", 0, "w of the printed plane (default edge/2)")
	return cmd
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("ticks") {
		cfg.Ticks, _ = flags.GetInt("ticks")
	}
	if flags.Changed("margin") {
		cfg.MarginTicks, _ = flags.GetInt("margin")
	}
	if flags.Changed("slice-z") {
		z, _ := flags.GetInt("slice-z")
		cfg.Slice.Z = &z
	}
	if flags.Changed("slice-w") {
		w, _ := flags.GetInt("slice-w")
		cfg.Slice.W = &w
	}
}

// readPattern parses path, or stdin when path is empty.
func readPattern(stdin io.Reader, path string) (pattern.Pattern, error) {
	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return pattern.Pattern{}, fmt.Errorf("opening pattern: %w", err)
		}
		defer f.Close()
		r = f
	}
	p, err := pattern.Parse(r)
	if err != nil {
		return pattern.Pattern{}, fmt.Errorf("parsing pattern: %w", err)
	}
	return p, nil
}
