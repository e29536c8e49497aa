// Package historian solves day 1 ("Historian Hysteria"): two columns of
// location IDs compared either by sorted pairwise distance or by a
// similarity score.
package historian

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedLine indicates a line that is not two integers separated by
// whitespace.
var ErrMalformedLine = errors.New("historian: expected two integers per line")

// ParsePair splits "a   b" into its two integers.
func ParsePair(line string) (left, right int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	if left, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if right, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return left, right, nil
}

// lists accumulates both columns.
type lists struct {
	left, right []int
}

func (l *lists) ProcessLine(line string) error {
	a, b, err := ParsePair(line)
	if err != nil {
		return err
	}
	l.left = append(l.left, a)
	l.right = append(l.right, b)
	return nil
}

// DistanceSolver answers part 1: pair the columns smallest-to-smallest and
// sum the absolute differences.
type DistanceSolver struct{ lists }

// NewDistanceSolver returns an empty part 1 solver.
func NewDistanceSolver() *DistanceSolver { return &DistanceSolver{} }

// Result sorts both columns and sums |left[i] - right[i]|.
// Complexity: O(n log n).
func (s *DistanceSolver) Result() (string, error) {
	left, right := slices.Clone(s.left), slices.Clone(s.right)
	slices.Sort(left)
	slices.Sort(right)
	sum := 0
	for i := range left {
		d := left[i] - right[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return strconv.Itoa(sum), nil
}

// SimilaritySolver answers part 2: each left value multiplied by how often
// it appears in the right column, summed.
type SimilaritySolver struct{ lists }

// NewSimilaritySolver returns an empty part 2 solver.
func NewSimilaritySolver() *SimilaritySolver { return &SimilaritySolver{} }

// Result computes Σ left × count(left in right).
// Complexity: O(n).
func (s *SimilaritySolver) Result() (string, error) {
	counts := make(map[int]int, len(s.right))
	for _, v := range s.right {
		counts[v]++
	}
	score := 0
	for _, v := range s.left {
		score += v * counts[v]
	}
	return strconv.Itoa(score), nil
}
