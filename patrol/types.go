// Package patrol defines the map, guard state and outcome types
// shared by the builder, the walker and the candidate search.
package patrol

import "fmt"

// Tile is the static content of a single map cell.
type Tile uint8

const (
	// Open cells can be walked through.
	Open Tile = iota
	// Wall cells make the guard turn right.
	Wall
)

// String renders the tile as its map character.
func (t Tile) String() string {
	if t == Wall {
		return "#"
	}
	return "."
}

// Coordinate is a cell position; X grows to the right, Y grows downwards.
type Coordinate struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction indexes the clockwise cycle up, right, down, left.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionOffsets holds the unit vector of each Direction, in cycle order.
var directionOffsets = [4]Coordinate{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the unit vector the guard moves along when facing d.
func (d Direction) Offset() Coordinate {
	return directionOffsets[d%4]
}

// Turn returns the direction 90° clockwise from d.
func (d Direction) Turn() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d % 4 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// State is the guard cursor. It is comparable and used unchanged as the
// cycle-detection key.
type State struct {
	Position  Coordinate
	Direction Direction
}

// Start returns the initial state at origin: the guard always faces up.
func Start(origin Coordinate) State {
	return State{Position: origin, Direction: Up}
}

// Ahead returns the cell directly in front of the guard.
func (s State) Ahead() Coordinate {
	return s.Position.Add(s.Direction.Offset())
}

// Turned returns s rotated clockwise in place.
func (s State) Turned() State {
	return State{Position: s.Position, Direction: s.Direction.Turn()}
}

// Forward returns s advanced by one cell.
func (s State) Forward() State {
	return State{Position: s.Ahead(), Direction: s.Direction}
}

// Outcome is the walker state machine status.
type Outcome uint8

const (
	// Running means the guard is still on the map and not known to cycle.
	Running Outcome = iota
	// Exited means the next step would leave the map.
	Exited
	// Looped means a (position, direction) pair repeated.
	Looped
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Grid is the immutable map. Tiles are stored row-major; Width and Height
// are fixed at construction. A Grid is safe for concurrent reads.
type Grid struct {
	Width, Height int
	tiles         []Tile
	origin        Coordinate
}

// Result reports a finished walk.
type Result struct {
	// Outcome is Exited or Looped.
	Outcome Outcome
	// Visited holds every distinct position reached. Only filled by Patrol.
	Visited map[Coordinate]struct{}
	// Steps counts transitions taken (turns and moves).
	Steps int
}
