// Package ceres solves day 4 ("Ceres Search"): a word search over a
// rectangular letter grid.
package ceres

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmptyGrid indicates no letters were supplied.
	ErrEmptyGrid = errors.New("ceres: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("ceres: all rows must have the same length")
)

// word is the part 1 target.
const word = "XMAS"

// allDirections are the eight straight-line search vectors.
var allDirections = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// crossCorners lists the diagonal neighbours clockwise from top-left, and
// crossLetters the corner pattern of one valid X-MAS. Its four rotations
// are the four valid crosses.
var (
	crossCorners = [4][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	crossLetters = [4]byte{'M', 'M', 'S', 'S'}
)

// Grid is a rectangular block of letters, addressed as rows[y][x].
type Grid struct {
	rows []string
}

// at returns the letter at (x,y), or 0 off the grid.
func (g *Grid) at(x, y int) byte {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return 0
	}
	return g.rows[y][x]
}

func (g *Grid) validate() error {
	if len(g.rows) == 0 || len(g.rows[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(g.rows[0])
	for y, row := range g.rows {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d letters, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	return nil
}

// CountXMAS counts every occurrence of "XMAS" along any of the eight
// directions, overlaps included.
// Complexity: O(W×H).
func (g *Grid) CountXMAS() int {
	n := 0
	for y, row := range g.rows {
		for x := range row {
			if row[x] != word[0] {
				continue
			}
			for _, d := range allDirections {
				if g.spells(x, y, d) {
					n++
				}
			}
		}
	}
	return n
}

// spells reports whether word starts at (x,y) heading along d.
func (g *Grid) spells(x, y int, d [2]int) bool {
	for i := 0; i < len(word); i++ {
		if g.at(x+i*d[0], y+i*d[1]) != word[i] {
			return false
		}
	}
	return true
}

// CountCrosses counts the "A" cells whose diagonals both read "MAS" in
// either direction.
// Complexity: O(W×H).
func (g *Grid) CountCrosses() int {
	n := 0
	for y, row := range g.rows {
		for x := range row {
			if row[x] == 'A' && g.isCross(x, y) {
				n++
			}
		}
	}
	return n
}

func (g *Grid) isCross(x, y int) bool {
	for shift := range crossLetters {
		ok := true
		for i, c := range crossCorners {
			if g.at(x+c[0], y+c[1]) != crossLetters[(i+shift)%len(crossLetters)] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// Solver collects the grid line by line and applies one of the counts.
type Solver struct {
	grid  Grid
	count func(*Grid) int
}

// NewXMASSolver returns the part 1 solver.
func NewXMASSolver() *Solver {
	return &Solver{count: (*Grid).CountXMAS}
}

// NewCrossSolver returns the part 2 solver.
func NewCrossSolver() *Solver {
	return &Solver{count: (*Grid).CountCrosses}
}

// ProcessLine appends one row of letters.
func (s *Solver) ProcessLine(line string) error {
	s.grid.rows = append(s.grid.rows, line)
	return nil
}

// Result validates the grid and returns the count.
func (s *Solver) Result() (string, error) {
	if err := s.grid.validate(); err != nil {
		return "", err
	}
	return strconv.Itoa(s.count(&s.grid)), nil
}
