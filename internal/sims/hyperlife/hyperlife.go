// Package hyperlife drives a 4D lattice: it embeds the initial pattern,
// advances generations and exposes a 2D cross-section for printing and
// for the viewer.
package hyperlife

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"hyperlife/internal/core"
	"hyperlife/internal/lattice"
	"hyperlife/internal/logging"
	"hyperlife/internal/pattern"
)

// Separator is printed after every cross-section.
const Separator = "==="

// Sim implements core.Sim for a 4D lattice viewed through one z/w plane.
type Sim struct {
	cfg     Config
	lat     *lattice.Lattice
	sliceZ  int
	sliceW  int
	display *core.Grid
	log     *slog.Logger
}

// New builds a simulation from cfg. The lattice is sized for
// cfg.MarginTicks generations and the displayed plane is z = w = edge/2.
func New(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg, log: logging.Discard()}
	if err := s.load(cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// SetLogger replaces the logger used for per-tick diagnostics.
func (s *Sim) SetLogger(l *slog.Logger) {
	if l != nil {
		s.log = l
	}
}

func (s *Sim) initial(seed int64) pattern.Pattern {
	if s.cfg.Pattern.Height() > 0 && seed == s.cfg.Seed {
		return s.cfg.Pattern
	}
	w, h := s.cfg.Width, s.cfg.Height
	if s.cfg.Pattern.Height() > 0 {
		w, h = s.cfg.Pattern.Width(), s.cfg.Pattern.Height()
	}
	return pattern.Random(w, h, s.cfg.Density, seed)
}

func (s *Sim) load(seed int64) error {
	p := s.initial(seed)
	lat, err := lattice.FromPattern(p.Rows, s.cfg.MarginTicks)
	if err != nil {
		return fmt.Errorf("building lattice for %dx%d pattern: %w", p.Width(), p.Height(), err)
	}
	s.lat = lat
	s.sliceZ, s.sliceW = lat.Mid(), lat.Mid()
	s.refresh()
	return nil
}

func (s *Sim) refresh() {
	s.display = s.lat.Slice(s.sliceZ, s.sliceW)
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "hyperlife" }

// Size returns the dimensions of the displayed plane.
func (s *Sim) Size() core.Size {
	e := s.lat.Edge()
	return core.Size{W: e, H: e}
}

// Cells exposes the displayed plane.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Lattice exposes the underlying lattice.
func (s *Sim) Lattice() *lattice.Lattice { return s.lat }

// Reset rebuilds the lattice. The configured pattern is restored when seed
// equals the configured seed; otherwise a random pattern of the same size is
// generated from seed.
func (s *Sim) Reset(seed int64) {
	if err := s.load(seed); err != nil {
		s.log.Error("reset failed", "seed", seed, "err", err)
	}
}

// Step advances the lattice by one generation.
func (s *Sim) Step() {
	s.lat.Tick()
	s.refresh()
	s.log.Debug("tick", "generation", s.lat.Generation(), "alive", s.lat.CountAlive())
}

// Stats reports the generation, live count and displayed plane.
func (s *Sim) Stats() core.Stats {
	return core.Stats{
		Generation: s.lat.Generation(),
		Alive:      s.lat.CountAlive(),
		Edge:       s.lat.Edge(),
		SliceZ:     s.sliceZ,
		SliceW:     s.sliceW,
	}
}

// SetSlice selects the displayed plane. Values are clamped to the lattice.
func (s *Sim) SetSlice(z, w int) {
	last := s.lat.Edge() - 1
	s.sliceZ = min(max(z, 0), last)
	s.sliceW = min(max(w, 0), last)
	s.refresh()
}

// MoveSlice shifts the displayed plane along z and w.
func (s *Sim) MoveSlice(dz, dw int) {
	s.SetSlice(s.sliceZ+dz, s.sliceW+dw)
}

// Run advances cfg.Ticks generations, writing the displayed plane and the
// separator after each one and the final live count at the end. Cancellation
// is observed between generations only.
func (s *Sim) Run(ctx context.Context, out io.Writer) (int, error) {
	for i := 0; i < s.cfg.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("stopped after %d of %d ticks: %w", i, s.cfg.Ticks, err)
		}
		s.Step()
		if err := pattern.WriteGrid(out, s.display); err != nil {
			return 0, fmt.Errorf("writing slice: %w", err)
		}
		if _, err := fmt.Fprintln(out, Separator); err != nil {
			return 0, fmt.Errorf("writing separator: %w", err)
		}
	}
	alive := s.lat.CountAlive()
	if _, err := fmt.Fprintln(out, alive); err != nil {
		return 0, fmt.Errorf("writing count: %w", err)
	}
	if n := s.lat.BoundaryAlive(); n > 0 {
		s.log.Warn("live cells reached the lattice boundary; result may be clipped",
			"cells", n, "margin_ticks", s.cfg.MarginTicks, "ticks", s.cfg.Ticks)
	}
	return alive, nil
}

func init() {
	core.Register("hyperlife", func(cfg map[string]string) core.Sim {
		s, err := New(FromMap(cfg))
		if err != nil {
			s, _ = New(DefaultConfig())
		}
		return s
	})
}
