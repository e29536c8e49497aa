// Package printqueue solves day 5 ("Print Queue"): checking safety-manual
// updates against page ordering rules.
//
// Input is a block of "X|Y" rules (page X must come before page Y whenever
// both appear) followed by comma-separated updates. Blank lines are ignored.
package printqueue

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRule indicates a rule line that is not "X|Y".
	ErrMalformedRule = errors.New("printqueue: expected rule of the form X|Y")
	// ErrMalformedUpdate indicates an update with a non-integer page.
	ErrMalformedUpdate = errors.New("printqueue: update page is not an integer")
	// ErrCyclicRules indicates rules that cannot all hold for one update.
	ErrCyclicRules = errors.New("printqueue: rules form a cycle")
)

// rule is an ordered pair: before must precede after.
type rule struct {
	before, after int
}

// Rules is the set of ordering constraints.
type Rules map[rule]struct{}

// Add records that page before must precede page after.
func (r Rules) Add(before, after int) {
	r[rule{before, after}] = struct{}{}
}

// Ordered reports whether no pair of pages in update breaks a rule.
// Complexity: O(n²).
func (r Rules) Ordered(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if _, broken := r[rule{update[j], update[i]}]; broken {
				return false
			}
		}
	}
	return true
}

// Reorder returns update rearranged so that every rule between its pages
// holds. Pages are ordered by a depth-first topological sort of the rules
// restricted to update; ties keep their relative input order.
// Returns ErrCyclicRules if those rules contain a cycle.
// Complexity: O(n²).
func (r Rules) Reorder(update []int) ([]int, error) {
	t := &topoSorter{
		rules: r,
		pages: update,
		state: make(map[int]int, len(update)),
		order: make([]int, 0, len(update)),
	}
	// visit in reverse so that unconstrained pages keep their input order
	// once the post-order is reversed
	for i := len(update) - 1; i >= 0; i-- {
		if err := t.visit(update[i]); err != nil {
			return nil, err
		}
	}
	slices.Reverse(t.order)
	return t.order, nil
}

// visitation marks for topoSorter
const (
	white = iota
	gray
	black
)

// topoSorter holds the state of one Reorder traversal.
type topoSorter struct {
	rules Rules
	pages []int
	state map[int]int
	order []int // post-order
}

func (t *topoSorter) visit(p int) error {
	switch t.state[p] {
	case gray:
		return fmt.Errorf("%w: page %d", ErrCyclicRules, p)
	case black:
		return nil
	}
	t.state[p] = gray
	for i := len(t.pages) - 1; i >= 0; i-- {
		q := t.pages[i]
		if _, ok := t.rules[rule{p, q}]; !ok {
			continue
		}
		if err := t.visit(q); err != nil {
			return err
		}
	}
	t.state[p] = black
	t.order = append(t.order, p)
	return nil
}

// middle returns the centre page of an update.
func middle(update []int) int {
	return update[len(update)/2]
}

// Solver sums the middle pages of the updates it selects.
type Solver struct {
	rules   Rules
	updates [][]int
	fix     bool
}

// NewOrderedSolver returns the part 1 solver: sum the middle page of every
// correctly ordered update.
func NewOrderedSolver() *Solver {
	return &Solver{rules: make(Rules)}
}

// NewReorderSolver returns the part 2 solver: reorder every incorrectly
// ordered update and sum their middle pages.
func NewReorderSolver() *Solver {
	return &Solver{rules: make(Rules), fix: true}
}

// ProcessLine records a rule or an update.
func (s *Solver) ProcessLine(line string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return nil
	case strings.Contains(line, "|"):
		a, b, ok := strings.Cut(line, "|")
		before, err1 := strconv.Atoi(a)
		after, err2 := strconv.Atoi(b)
		if !ok || err1 != nil || err2 != nil {
			return fmt.Errorf("%w: %q", ErrMalformedRule, line)
		}
		s.rules.Add(before, after)
	default:
		fields := strings.Split(line, ",")
		update := make([]int, 0, len(fields))
		for _, f := range fields {
			p, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return fmt.Errorf("%w: %q", ErrMalformedUpdate, f)
			}
			update = append(update, p)
		}
		s.updates = append(s.updates, update)
	}
	return nil
}

// Result evaluates the updates once all rules are known.
func (s *Solver) Result() (string, error) {
	sum := 0
	for _, u := range s.updates {
		ordered := s.rules.Ordered(u)
		switch {
		case !s.fix && ordered:
			sum += middle(u)
		case s.fix && !ordered:
			fixed, err := s.rules.Reorder(u)
			if err != nil {
				return "", err
			}
			sum += middle(fixed)
		}
	}
	return strconv.Itoa(sum), nil
}
