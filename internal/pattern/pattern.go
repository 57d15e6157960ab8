// Package pattern reads and writes 2D cell patterns in the '#'/'.' text form.
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"hyperlife/internal/core"
)

const (
	// Alive marks a live cell.
	Alive = '#'
	// Dead marks a dead cell.
	Dead = '.'
)

var (
	// ErrInvalidCell is returned for any character other than Alive or Dead.
	ErrInvalidCell = errors.New("pattern: invalid cell character")
	// ErrRaggedRow is returned when rows differ in length.
	ErrRaggedRow = errors.New("pattern: rows have different lengths")
	// ErrEmptyPattern is returned when the input contains no rows.
	ErrEmptyPattern = errors.New("pattern: no rows")
)

// ParseError locates a malformed input line.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Char, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Pattern is a rectangular 2D block of cells; Rows[y][x] is true when alive.
type Pattern struct {
	Rows [][]bool
}

// Width returns the number of columns.
func (p Pattern) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p.Rows) }

// Alive returns the number of live cells.
func (p Pattern) Alive() int {
	n := 0
	for _, row := range p.Rows {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Parse reads rows until EOF. A trailing carriage return is ignored so that
// CRLF files parse the same as LF files.
func Parse(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		row := make([]bool, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch ch {
			case Alive:
				row = append(row, true)
			case Dead:
				row = append(row, false)
			default:
				return Pattern{}, &ParseError{Line: line, Column: col, Char: ch, Err: ErrInvalidCell}
			}
		}
		if len(p.Rows) > 0 && len(row) != len(p.Rows[0]) {
			return Pattern{}, &ParseError{
				Line: line,
				Err:  fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(row), len(p.Rows[0])),
			}
		}
		p.Rows = append(p.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading pattern: %w", err)
	}
	if len(p.Rows) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	return p, nil
}

// ParseString parses s, treating '/' as a row separator as well as newlines.
func ParseString(s string) (Pattern, error) {
	return Parse(strings.NewReader(strings.ReplaceAll(s, "/", "\n")))
}

// Random returns a w x h pattern where each cell is alive with probability density.
func Random(w, h int, density float64, seed int64) Pattern {
	rng := core.NewRNG(seed)
	p := Pattern{Rows: make([][]bool, h)}
	for y := range p.Rows {
		p.Rows[y] = make([]bool, w)
		for x := range p.Rows[y] {
			p.Rows[y][x] = rng.Chance(density)
		}
	}
	return p
}

// String renders the pattern in '#'/'.' form, one line per row.
func (p Pattern) String() string {
	var b strings.Builder
	for _, row := range p.Rows {
		for _, c := range row {
			b.WriteByte(cellByte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteGrid writes g in '#'/'.' form, one line per row.
func WriteGrid(w io.Writer, g *core.Grid) error {
	line := make([]byte, g.W+1)
	line[g.W] = '\n'
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			line[x] = cellByte(g.At(x, y))
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func cellByte(alive bool) byte {
	if alive {
		return Alive
	}
	return Dead
}
