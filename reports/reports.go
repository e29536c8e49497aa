// Package reports solves day 2 ("Red-Nosed Reports"): counting reactor
// reports whose levels change gradually in one direction.
package reports

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Allowed gap between adjacent levels, inclusive.
const (
	MinDiff = 1
	MaxDiff = 3
)

// ErrMalformedReport indicates a report containing a non-integer level.
var ErrMalformedReport = errors.New("reports: level is not an integer")

// Report is one line of levels.
type Report []int

// ParseReport reads whitespace-separated levels.
func ParseReport(line string) (Report, error) {
	fields := strings.Fields(line)
	r := make(Report, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedReport, f)
		}
		r = append(r, v)
	}
	return r, nil
}

// Safe reports whether levels are strictly increasing or strictly
// decreasing with every adjacent gap within [MinDiff, MaxDiff].
// Reports with fewer than two levels are trivially safe.
func (r Report) Safe() bool {
	return r.monotonic(1) || r.monotonic(-1)
}

// monotonic checks every step against sign (+1 increasing, -1 decreasing).
func (r Report) monotonic(sign int) bool {
	for i := 1; i < len(r); i++ {
		d := (r[i] - r[i-1]) * sign
		if d < MinDiff || d > MaxDiff {
			return false
		}
	}
	return true
}

// SafeWithDampener reports whether r is safe as-is or after removing any
// single level.
// Complexity: O(n²).
func (r Report) SafeWithDampener() bool {
	if r.Safe() {
		return true
	}
	buf := make(Report, 0, len(r))
	for skip := range r {
		buf = append(buf[:0], r[:skip]...)
		buf = append(buf, r[skip+1:]...)
		if buf.Safe() {
			return true
		}
	}
	return false
}

// Solver counts reports accepted by a safety rule.
type Solver struct {
	accept func(Report) bool
	count  int
}

// NewSafeSolver returns the part 1 solver.
func NewSafeSolver() *Solver {
	return &Solver{accept: Report.Safe}
}

// NewDampenedSolver returns the part 2 solver, which tolerates one bad level.
func NewDampenedSolver() *Solver {
	return &Solver{accept: Report.SafeWithDampener}
}

// ProcessLine parses one report and counts it if accepted.
func (s *Solver) ProcessLine(line string) error {
	r, err := ParseReport(line)
	if err != nil {
		return err
	}
	if s.accept(r) {
		s.count++
	}
	return nil
}

// Result returns the number of accepted reports.
func (s *Solver) Result() (string, error) {
	return strconv.Itoa(s.count), nil
}
