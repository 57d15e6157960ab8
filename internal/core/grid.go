package core

// Grid stores a 2D plane of byte-sized cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At reports whether the cell at (x, y) is non-zero. Coordinates outside the
// grid read as zero.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return false
	}
	return g.data[g.Index(x, y)] != 0
}

// Set stores 1 or 0 at (x, y). Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, on bool) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	var v uint8
	if on {
		v = 1
	}
	g.data[g.Index(x, y)] = v
}

// Count returns the number of non-zero cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
