package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups.
var (
	// ErrUnknownPuzzle is returned when no solver is registered for a key.
	ErrUnknownPuzzle = errors.New("puzzle: no solver registered")
	// ErrDuplicatePuzzle is returned when a key is registered twice.
	ErrDuplicatePuzzle = errors.New("puzzle: solver already registered")
	// ErrInvalidKey is returned for a day outside 1..25 or a part outside 1..2.
	ErrInvalidKey = errors.New("puzzle: invalid day or part")
)

// Solver consumes puzzle input one line at a time and reports one answer.
// Implementations are single-use and not safe for concurrent use.
type Solver interface {
	// ProcessLine feeds the next input line, without its line terminator.
	ProcessLine(line string) error
	// Result returns the answer once every line has been processed.
	Result() (string, error)
}

// Factory returns a fresh Solver.
type Factory func() Solver

// Key identifies a puzzle half.
type Key struct {
	Day, Part int
}

// Validate reports ErrInvalidKey for a day outside 1..25 or a part other
// than 1 or 2.
func (k Key) Validate() error {
	if k.Day < 1 || k.Day > 25 || k.Part < 1 || k.Part > 2 {
		return fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}
	return nil
}

func (k Key) String() string {
	return fmt.Sprintf("day %d part %d", k.Day, k.Part)
}

// Entry is a registered solver.
type Entry struct {
	Key     Key
	Title   string
	Factory Factory
}
