package kernel

import (
	"encoding/binary"

	"github.com/arvidsten/rushkernel/board"
)

// Initial returns the state vector implied by the board's parsed
// vehicle anchors.
func Initial(b *board.Board) State {
	s := make(State, len(b.Vehicles))
	for i, v := range b.Vehicles {
		s[i] = v.Anchor
	}
	return s
}

// Occupy projects state s onto an R×C occupancy matrix.
func Occupy(b *board.Board, s State) Occupancy {
	occ := make(Occupancy, b.Rows)
	for r := range occ {
		row := make([]int, b.Cols)
		for c := range row {
			row[c] = -1
		}
		occ[r] = row
	}
	for i, v := range b.Vehicles {
		for _, cell := range v.Occupied(s[i]) {
			occ[cell.Row][cell.Col] = i
		}
	}
	return occ
}

// legalDirections returns the directions a vehicle of the given
// orientation may slide along.
func legalDirections(o board.Orientation) []Direction {
	switch o {
	case board.Horizontal:
		return []Direction{Left, Right}
	case board.Vertical:
		return []Direction{Up, Down}
	default: // Single
		return []Direction{Left, Right, Up, Down}
	}
}

// leadingCell returns the single new cell a vehicle would occupy at the
// given step beyond its current footprint, without recomputing the
// full shape: the frontier cell in the direction of travel.
func leadingCell(v board.Vehicle, anchor board.Cell, d Direction, step int) board.Cell {
	switch d {
	case Left:
		return board.Cell{Row: anchor.Row, Col: anchor.Col - step}
	case Right:
		return board.Cell{Row: anchor.Row, Col: anchor.Col + step + v.Length - 1}
	case Up:
		return board.Cell{Row: anchor.Row - step, Col: anchor.Col}
	default: // Down
		return board.Cell{Row: anchor.Row + step + v.Length - 1, Col: anchor.Col}
	}
}

// Moves enumerates every legal (vehicle, direction, step) edge from s:
// for each vehicle and each direction its orientation allows, it walks
// outward one cell at a time, emitting a move for every step whose
// newly-covered cell is in bounds and unoccupied, stopping at the
// first blocker.
func Moves(b *board.Board, s State) []Move {
	occ := Occupy(b, s)
	var moves []Move
	for i, v := range b.Vehicles {
		anchor := s[i]
		for _, d := range legalDirections(v.Orientation) {
			for step := 1; ; step++ {
				lead := leadingCell(v, anchor, d, step)
				if lead.Row < 0 || lead.Row >= b.Rows || lead.Col < 0 || lead.Col >= b.Cols {
					break
				}
				if occ.At(lead.Row, lead.Col) != -1 {
					break
				}
				moves = append(moves, Move{VehicleIndex: i, Direction: d, Steps: step})
			}
		}
	}
	return moves
}

// Apply returns a new state with vehicle m.VehicleIndex's anchor
// translated by m.Direction × m.Steps; s is not mutated.
func Apply(s State, m Move) State {
	next := s.Clone()
	a := next[m.VehicleIndex]
	switch m.Direction {
	case Left:
		a.Col -= m.Steps
	case Right:
		a.Col += m.Steps
	case Up:
		a.Row -= m.Steps
	case Down:
		a.Row += m.Steps
	}
	next[m.VehicleIndex] = a
	return next
}

// Key packs s into a fixed-width byte string for visited-set and
// best-cost map membership: each anchor's (row, col) is written as two
// big-endian uint16 fields, four bytes per vehicle. The fixed stride
// makes the encoding self-delimiting, so no separator byte is needed.
// Two states produce identical keys iff they are equal.
func Key(s State) string {
	buf := make([]byte, 4*len(s))
	for i, a := range s {
		binary.BigEndian.PutUint16(buf[i*4:], uint16(int16(a.Row)))
		binary.BigEndian.PutUint16(buf[i*4+2:], uint16(int16(a.Col)))
	}
	return string(buf)
}

// IsGoal reports whether the goal vehicle's occupied cells, under
// state s, include the board's exit cell.
func IsGoal(b *board.Board, s State) bool {
	g := b.Vehicles[b.GoalIndex]
	a := s[b.GoalIndex]
	exit := b.Exit
	switch g.Orientation {
	case board.Horizontal:
		return a.Row == exit.Row && exit.Col >= a.Col && exit.Col <= a.Col+g.Length-1
	case board.Vertical:
		return a.Col == exit.Col && exit.Row >= a.Row && exit.Row <= a.Row+g.Length-1
	default: // Single
		return a == exit
	}
}

// Valid reports whether state s is a legal configuration: every
// occupied cell is inside the grid and no two vehicles overlap.
func Valid(b *board.Board, s State) bool {
	occ := make(map[board.Cell]bool, b.Rows*b.Cols)
	for i, v := range b.Vehicles {
		for _, cell := range v.Occupied(s[i]) {
			if cell.Row < 0 || cell.Row >= b.Rows || cell.Col < 0 || cell.Col >= b.Cols {
				return false
			}
			if occ[cell] {
				return false
			}
			occ[cell] = true
		}
	}
	return true
}
