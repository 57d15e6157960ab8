package lattice

import (
	"errors"
	"fmt"
)

// ErrPatternTooLarge is returned when a pattern does not fit the lattice plane.
var ErrPatternTooLarge = errors.New("lattice: pattern larger than lattice")

// EdgeFor returns the edge needed to run ticks generations of an h x w
// pattern without reaching the boundary: max(h, w) plus a margin of 2*ticks
// on each side.
func EdgeFor(h, w, ticks int) int {
	if ticks < 0 {
		ticks = 0
	}
	return max(h, w) + 4*ticks
}

// Embed writes rows into the z = w = Mid() plane, centred along x and y.
// rows[y][x] is the state of the pattern cell in column x of row y.
func Embed(l *Lattice, rows [][]bool) error {
	h := len(rows)
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if h > l.edge || width > l.edge {
		return fmt.Errorf("%w: %dx%d into edge %d", ErrPatternTooLarge, width, h, l.edge)
	}
	offX := (l.edge - width) / 2
	offY := (l.edge - h) / 2
	mid := l.Mid()
	for y, row := range rows {
		for x, alive := range row {
			l.Set(Coord{X: x + offX, Y: y + offY, Z: mid, W: mid}, alive)
		}
	}
	return nil
}

// FromPattern allocates a lattice sized for marginTicks generations of rows
// and embeds the pattern at its centre.
func FromPattern(rows [][]bool, marginTicks int) (*Lattice, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	l, err := New(EdgeFor(len(rows), width, marginTicks))
	if err != nil {
		return nil, err
	}
	if err := Embed(l, rows); err != nil {
		return nil, err
	}
	return l, nil
}
