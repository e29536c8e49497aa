package patrol

// walker runs one patrol over a shared Grid. The optional obstruction is a
// synthetic wall overlaid on the map for this run only.
type walker struct {
	grid        *Grid
	obstruction Coordinate
	obstructed  bool
}

// blocked reports whether c is a wall, counting the obstruction.
// ok is false when c is off the map.
func (w walker) blocked(c Coordinate) (wall, ok bool) {
	t, ok := w.grid.At(c)
	if !ok {
		return false, false
	}
	if w.obstructed && c == w.obstruction {
		return true, true
	}
	return t == Wall, true
}

// step applies the motion rule once. A turn never moves the guard and a
// move never changes its direction.
func (w walker) step(s State) (State, Outcome) {
	wall, ok := w.blocked(s.Ahead())
	switch {
	case !ok:
		return s, Exited
	case wall:
		return s.Turned(), Running
	default:
		return s.Forward(), Running
	}
}

// stepBound is the number of distinct states on the map. A run that takes
// this many steps without exiting has necessarily repeated a state.
func (w walker) stepBound() int {
	return 4 * w.grid.Cells()
}

// Step applies the motion rule once to s on the unobstructed map.
// Returns the next state and Running, or s unchanged and Exited when the
// cell ahead is off the map.
// Complexity: O(1).
func (g *Grid) Step(s State) (State, Outcome) {
	return walker{grid: g}.step(s)
}

// Patrol walks from start on the unobstructed map and collects every
// distinct position the guard occupies, start included.
//
// No per-state history is kept: the puzzle guarantees the plain route
// leaves the map. The run still halts on any map, reporting Looped once the
// 4·W·H step bound is reached.
//
// Complexity: O(W×H) time, O(W×H) memory.
func (g *Grid) Patrol(start State) Result {
	w := walker{grid: g}
	visited := make(map[Coordinate]struct{})
	bound := w.stepBound()

	s, res := start, Result{Visited: visited}
	for {
		visited[s.Position] = struct{}{}
		next, outcome := w.step(s)
		if outcome == Exited {
			res.Outcome = Exited
			return res
		}
		res.Steps++
		s = next
		if res.Steps >= bound {
			res.Outcome = Looped
			return res
		}
	}
}

// PatrolWithObstruction walks from start with an extra wall at obstruction
// and reports whether the guard cycles. Every state is recorded before its
// step; seeing one again ends the run as Looped. Visited is left nil.
//
// An obstruction off the map is inert.
//
// Complexity: O(W×H) time (at most 4·W·H steps), O(W×H) memory.
func (g *Grid) PatrolWithObstruction(start State, obstruction Coordinate) Result {
	w := walker{grid: g, obstruction: obstruction, obstructed: true}
	seen := make(map[State]struct{})

	s, res := start, Result{}
	for {
		if _, ok := seen[s]; ok {
			res.Outcome = Looped
			return res
		}
		seen[s] = struct{}{}

		next, outcome := w.step(s)
		if outcome == Exited {
			res.Outcome = Exited
			return res
		}
		res.Steps++
		s = next
	}
}
