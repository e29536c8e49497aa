package patrol

import "strconv"

// VisitedSolver answers part 1: the number of distinct cells on the guard's
// route. Feed it the map with ProcessLine, then call Result.
type VisitedSolver struct {
	b Builder
}

// NewVisitedSolver returns an empty part 1 solver.
func NewVisitedSolver() *VisitedSolver {
	return &VisitedSolver{}
}

// ProcessLine adds one map row.
func (s *VisitedSolver) ProcessLine(line string) error {
	return s.b.AddLine(line)
}

// Result builds the map and returns the visited-cell count in base 10.
func (s *VisitedSolver) Result() (string, error) {
	g, err := s.b.Build()
	if err != nil {
		return "", err
	}
	n, err := VisitedCount(g)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// LoopSolver answers part 2: the number of single obstructions that trap the
// guard in a cycle.
type LoopSolver struct {
	b    Builder
	opts []Option
}

// NewLoopSolver returns an empty part 2 solver; opts are passed through to
// CountLoopObstructions.
func NewLoopSolver(opts ...Option) *LoopSolver {
	return &LoopSolver{opts: opts}
}

// ProcessLine adds one map row.
func (s *LoopSolver) ProcessLine(line string) error {
	return s.b.AddLine(line)
}

// Result builds the map and returns the loop-obstruction count in base 10.
func (s *LoopSolver) Result() (string, error) {
	g, err := s.b.Build()
	if err != nil {
		return "", err
	}
	n, err := CountLoopObstructions(g, s.opts...)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
