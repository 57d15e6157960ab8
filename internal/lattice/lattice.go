// Package lattice implements a dense, bounded 4D grid of boolean cells that
// evolves under the B3/S23 rule over the full 80-cell Moore neighbourhood.
package lattice

import (
	"errors"
	"fmt"

	"hyperlife/internal/core"
)

// NeighborCount is the size of the 4D Moore neighbourhood (3^4 - 1).
const NeighborCount = 80

// MaxCells bounds the number of cells a single lattice may hold.
const MaxCells = 1 << 30

var (
	// ErrInvalidEdge is returned when a lattice is requested with a non-positive edge.
	ErrInvalidEdge = errors.New("lattice: edge must be positive")
	// ErrTooLarge is returned when edge^4 cells cannot be allocated.
	ErrTooLarge = errors.New("lattice: too many cells")
)

// Coord addresses a cell. Components may be negative or past the edge; such
// coordinates have no storage and read as absent.
type Coord struct {
	X, Y, Z, W int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z, W: c.W + o.W}
}

// Lattice is a hypercube of edge^4 cells stored in a flat slice.
type Lattice struct {
	edge int
	cur  []bool
	nxt  []bool
	gen  int
}

// New allocates a lattice with every cell dead.
func New(edge int) (*Lattice, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEdge, edge)
	}
	total, ok := cellCount(edge)
	if !ok {
		return nil, fmt.Errorf("%w: edge %d exceeds %d cells", ErrTooLarge, edge, MaxCells)
	}
	return &Lattice{edge: edge, cur: make([]bool, total), nxt: make([]bool, total)}, nil
}

func cellCount(edge int) (int, bool) {
	total := 1
	for i := 0; i < 4; i++ {
		if total > MaxCells/edge {
			return 0, false
		}
		total *= edge
	}
	return total, true
}

// Edge returns the extent along each axis.
func (l *Lattice) Edge() int { return l.edge }

// Mid returns the midpoint coordinate along any axis.
func (l *Lattice) Mid() int { return l.edge / 2 }

// Len returns the number of cells, edge^4.
func (l *Lattice) Len() int { return len(l.cur) }

// Generation returns the number of ticks applied so far.
func (l *Lattice) Generation() int { return l.gen }

// Index returns the linear index of c, w*e^3 + z*e^2 + y*e + x, and false
// when any component lies outside [0, edge).
func (l *Lattice) Index(c Coord) (int, bool) {
	e := l.edge
	if c.X < 0 || c.X >= e || c.Y < 0 || c.Y >= e || c.Z < 0 || c.Z >= e || c.W < 0 || c.W >= e {
		return 0, false
	}
	return ((c.W*e+c.Z)*e+c.Y)*e + c.X, true
}

// Get returns the cell state and whether c is inside the lattice.
func (l *Lattice) Get(c Coord) (alive, ok bool) {
	i, ok := l.Index(c)
	if !ok {
		return false, false
	}
	return l.cur[i], true
}

// MustGet returns the state of a cell the caller knows to be in bounds.
func (l *Lattice) MustGet(c Coord) bool {
	alive, ok := l.Get(c)
	if !ok {
		panic(fmt.Sprintf("lattice: read of %+v outside edge %d", c, l.edge))
	}
	return alive
}

// Set writes the state of c. Writing outside the lattice is a programming
// error and panics.
func (l *Lattice) Set(c Coord, alive bool) {
	i, ok := l.Index(c)
	if !ok {
		panic(fmt.Sprintf("lattice: write of %+v outside edge %d", c, l.edge))
	}
	l.cur[i] = alive
}

// CountAlive returns the number of live cells.
func (l *Lattice) CountAlive() int {
	n := 0
	for _, alive := range l.cur {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of l, generation counter included.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{edge: l.edge, cur: make([]bool, len(l.cur)), nxt: make([]bool, len(l.nxt)), gen: l.gen}
	copy(c.cur, l.cur)
	return c
}

// Equal reports whether both lattices have the same edge and cell states.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.edge != o.edge {
		return false
	}
	for i := range l.cur {
		if l.cur[i] != o.cur[i] {
			return false
		}
	}
	return true
}

// Slice copies the (z, w) plane into a Grid of edge x edge cells. A plane
// outside the lattice yields an all-dead grid.
func (l *Lattice) Slice(z, w int) *core.Grid {
	g := core.NewGrid(l.edge, l.edge)
	for y := 0; y < l.edge; y++ {
		for x := 0; x < l.edge; x++ {
			alive, _ := l.Get(Coord{X: x, Y: y, Z: z, W: w})
			g.Set(x, y, alive)
		}
	}
	return g
}

// BoundaryAlive counts live cells with at least one component on 0 or edge-1.
func (l *Lattice) BoundaryAlive() int {
	last := l.edge - 1
	onEdge := func(v int) bool { return v == 0 || v == last }
	n := 0
	l.each(func(i int, c Coord) {
		if l.cur[i] && (onEdge(c.X) || onEdge(c.Y) || onEdge(c.Z) || onEdge(c.W)) {
			n++
		}
	})
	return n
}

// each visits every in-range coordinate in linear index order.
func (l *Lattice) each(fn func(i int, c Coord)) {
	e := l.edge
	i := 0
	var c Coord
	for c.W = 0; c.W < e; c.W++ {
		for c.Z = 0; c.Z < e; c.Z++ {
			for c.Y = 0; c.Y < e; c.Y++ {
				for c.X = 0; c.X < e; c.X++ {
					fn(i, c)
					i++
				}
			}
		}
	}
}
