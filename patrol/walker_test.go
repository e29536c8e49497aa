package patrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse builds a Grid or fails the test.
func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := Parse(lines)
	require.NoError(t, err)
	return g
}

// boxMap traps the unobstructed guard in a 2×2 circuit:
//
//	.#..
//	.^.#
//	#...
//	..#.
var boxMap = []string{".#..", ".^.#", "#...", "..#."}

// TestStep_MotionRule covers the three branches of the motion rule.
func TestStep_MotionRule(t *testing.T) {
	g := mustParse(t, ".#.", "...", ".^.")

	// open ahead: move, keep direction
	s, out := g.Step(Start(g.origin))
	assert.Equal(t, Running, out)
	assert.Equal(t, State{Position: Coordinate{1, 1}, Direction: Up}, s)

	// wall ahead: turn, keep position
	s, out = g.Step(s)
	assert.Equal(t, Running, out)
	assert.Equal(t, State{Position: Coordinate{1, 1}, Direction: Right}, s)

	// off-map ahead: exit without moving or turning
	edge := State{Position: Coordinate{2, 1}, Direction: Right}
	s, out = g.Step(edge)
	assert.Equal(t, Exited, out)
	assert.Equal(t, edge, s)
}

// TestStep_MotionInvariant walks the example route and checks that every
// turn keeps the position and every move keeps the direction.
func TestStep_MotionInvariant(t *testing.T) {
	g := mustParse(t, exampleRows...)
	s := Start(g.origin)
	for i := 0; i < 4*g.Cells(); i++ {
		next, out := g.Step(s)
		if out == Exited {
			return
		}
		if next.Direction != s.Direction {
			assert.Equal(t, s.Position, next.Position, "turn moved the guard at step %d", i)
			assert.Equal(t, s.Direction.Turn(), next.Direction)
		} else {
			assert.Equal(t, s.Position.Add(s.Direction.Offset()), next.Position, "move at step %d", i)
		}
		s = next
	}
	t.Fatal("example route did not exit")
}

// TestDirection_Turn checks the clockwise cycle and its offsets.
func TestDirection_Turn(t *testing.T) {
	d := Up
	want := []Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want[i%4], d.Offset(), "offset of %v", d)
		d = d.Turn()
	}
	assert.Equal(t, Up, d)
}

// TestPatrol_Example checks the baseline visited-cell count.
func TestPatrol_Example(t *testing.T) {
	g := mustParse(t, exampleRows...)
	res := g.Patrol(Start(g.origin))
	assert.Equal(t, Exited, res.Outcome)
	assert.Len(t, res.Visited, 41)
	assert.Contains(t, res.Visited, g.origin)
	assert.LessOrEqual(t, res.Steps, 4*g.Cells())
}

// TestPatrol_SingleCell exits on the very first step attempt.
func TestPatrol_SingleCell(t *testing.T) {
	g := mustParse(t, "^")
	res := g.Patrol(Start(g.origin))
	assert.Equal(t, Exited, res.Outcome)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, map[Coordinate]struct{}{{0, 0}: {}}, res.Visited)

	for d := Up; d <= Left; d++ {
		res = g.PatrolWithObstruction(State{Position: g.origin, Direction: d}, Coordinate{5, 5})
		assert.Equal(t, Exited, res.Outcome, "facing %v", d)
		assert.Equal(t, 0, res.Steps)
	}
}

// TestPatrol_StepBound ensures the baseline walk halts on a looping map
// within 4·W·H steps.
func TestPatrol_StepBound(t *testing.T) {
	g := mustParse(t, boxMap...)
	res := g.Patrol(Start(g.origin))
	assert.Equal(t, Looped, res.Outcome)
	assert.LessOrEqual(t, res.Steps, 4*g.Cells())
	assert.Len(t, res.Visited, 4)
}

// TestPatrolWithObstruction_DetectsCycle covers both terminal outcomes.
func TestPatrolWithObstruction_DetectsCycle(t *testing.T) {
	g := mustParse(t, exampleRows...)
	start := Start(g.origin)

	// next to the origin: the route closes back onto the start state
	res := g.PatrolWithObstruction(start, Coordinate{3, 6})
	assert.Equal(t, Looped, res.Outcome)
	assert.Nil(t, res.Visited)
	assert.LessOrEqual(t, res.Steps, 4*g.Cells())

	// off the map: behaves like the baseline
	res = g.PatrolWithObstruction(start, Coordinate{-1, -1})
	assert.Equal(t, Exited, res.Outcome)

	// already looping without help
	box := mustParse(t, boxMap...)
	res = box.PatrolWithObstruction(Start(box.origin), Coordinate{3, 3})
	assert.Equal(t, Looped, res.Outcome)
	assert.LessOrEqual(t, res.Steps, 4*box.Cells())
}

// TestPatrol_Deterministic runs identical walks twice.
func TestPatrol_Deterministic(t *testing.T) {
	g := mustParse(t, exampleRows...)
	start := Start(g.origin)

	assert.Equal(t, g.Patrol(start), g.Patrol(start))
	for _, c := range []Coordinate{{3, 6}, {0, 0}, {7, 9}} {
		assert.Equal(t, g.PatrolWithObstruction(start, c), g.PatrolWithObstruction(start, c))
	}
}

// exampleRows mirrors the puzzle statement map for internal tests.
var exampleRows = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}
