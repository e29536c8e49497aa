package patrol

import (
	"fmt"
	"strings"
)

// Builder accumulates map rows one line at a time. It is the two-field
// accumulator behind Parse: the rows read so far and the origin, if seen.
// The zero value is ready to use.
type Builder struct {
	rows    [][]Tile
	origin  Coordinate
	origins int
}

// AddLine decodes one map row. '#' is a wall, '.' is open floor and '^' is
// open floor holding the guard. Any other character yields
// ErrInvalidCharacter and leaves the builder unchanged.
// Complexity: O(len(line)).
func (b *Builder) AddLine(line string) error {
	y := len(b.rows)
	row := make([]Tile, 0, len(line))
	origin, origins := b.origin, b.origins
	for x, c := range line {
		switch c {
		case '#':
			row = append(row, Wall)
		case '.':
			row = append(row, Open)
		case '^':
			origin = Coordinate{X: x, Y: y}
			origins++
			row = append(row, Open)
		default:
			return fmt.Errorf("%w: %q at (%d,%d)", ErrInvalidCharacter, c, x, y)
		}
	}
	b.rows = append(b.rows, row)
	b.origin, b.origins = origin, origins
	return nil
}

// Build validates the accumulated rows and returns the immutable Grid.
// Returns ErrEmptyGrid if there are no rows or any row is empty,
// ErrNonRectangular if row lengths differ, ErrMissingOrigin if no '^' was
// seen and ErrMultipleOrigins if more than one was.
// Complexity: O(W×H) time and memory.
func (b *Builder) Build() (*Grid, error) {
	if len(b.rows) == 0 || len(b.rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(b.rows), len(b.rows[0])
	for y, row := range b.rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrEmptyGrid, y)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	switch {
	case b.origins == 0:
		return nil, ErrMissingOrigin
	case b.origins > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleOrigins, b.origins)
	}

	tiles := make([]Tile, 0, w*h)
	for _, row := range b.rows {
		tiles = append(tiles, row...)
	}
	return &Grid{
		Width:  w,
		Height: h,
		tiles:  tiles,
		origin: b.origin,
	}, nil
}

// Parse builds a Grid from the full list of map rows.
func Parse(lines []string) (*Grid, error) {
	var b Builder
	for _, line := range lines {
		if err := b.AddLine(line); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Origin returns the guard's starting cell.
func (g *Grid) Origin() Coordinate {
	return g.origin
}

// Cells returns W×H, the number of cells on the map.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}

// InBounds reports whether c lies within the map.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the tile at c. ok is false when c is off the map.
// Complexity: O(1).
func (g *Grid) At(c Coordinate) (t Tile, ok bool) {
	if !g.InBounds(c) {
		return Open, false
	}
	return g.tiles[g.index(c)], true
}

// index maps c to a row-major index: y*Width + x.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.Width + c.X
}

// String renders the map back to its text form, origin included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coordinate{X: x, Y: y}
			if c == g.origin {
				sb.WriteByte('^')
				continue
			}
			sb.WriteString(g.tiles[g.index(c)].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
