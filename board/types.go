package board

import "fmt"

// Orientation classifies how a Vehicle's occupied cells extend from its anchor.
type Orientation int

const (
	// Horizontal vehicles occupy consecutive cells in the same row.
	Horizontal Orientation = iota
	// Vertical vehicles occupy consecutive cells in the same column.
	Vertical
	// Single vehicles occupy exactly one cell and may move on either axis.
	Single
)

// String renders the orientation for diagnostics.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Cell is a zero-indexed (row, column) grid coordinate.
type Cell struct {
	Row, Col int
}

// Vehicle describes one piece on the board: its fixed shape (Orientation,
// Length) and its initial placement (Anchor). Orientation and Length never
// change once parsed; only a vehicle's anchor moves across states.
type Vehicle struct {
	// Label identifies the vehicle for describe.Describe and diagnostics:
	// "carro objetivo" for the goal vehicle, otherwise "1", "2", ... in
	// discovery order among non-goal vehicles.
	Label string

	Orientation Orientation
	Length      int
	IsGoal      bool

	// Anchor is the vehicle's top-left occupied cell at parse time:
	// leftmost for horizontal, topmost for vertical, the only cell for single.
	Anchor Cell
}

// Occupied returns the set of cells vehicle v occupies when anchored at a.
func (v Vehicle) Occupied(a Cell) []Cell {
	cells := make([]Cell, v.Length)
	for i := 0; i < v.Length; i++ {
		switch v.Orientation {
		case Horizontal:
			cells[i] = Cell{Row: a.Row, Col: a.Col + i}
		case Vertical:
			cells[i] = Cell{Row: a.Row + i, Col: a.Col}
		default: // Single
			cells[i] = a
		}
	}
	return cells
}

// Board is the immutable, parsed puzzle: grid dimensions, exit cell, and
// an ordered vehicle list. The ordering of Vehicles is fixed at parse
// time and is load-bearing — every state is a vector positionally
// indexed by it.
type Board struct {
	Rows, Cols int
	Exit       Cell
	Vehicles   []Vehicle

	// GoalIndex is the index into Vehicles of the vehicle with IsGoal == true.
	GoalIndex int
}
