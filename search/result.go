package search

import (
	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/describe"
	"github.com/arvidsten/rushkernel/kernel"
)

// ValidateBoard performs the defensive structural check every solver
// runs before searching: a board the parser already validated should
// never fail this, so failure here indicates a hand-built Board.
func ValidateBoard(b *board.Board) error {
	if b == nil || len(b.Vehicles) == 0 {
		return ErrInvalidBoardData
	}
	if b.GoalIndex < 0 || b.GoalIndex >= len(b.Vehicles) {
		return ErrInvalidBoardData
	}
	return nil
}

// VehicleLabels extracts the board's vehicle labels in board order.
func VehicleLabels(b *board.Board) []string {
	labels := make([]string, len(b.Vehicles))
	for i, v := range b.Vehicles {
		labels[i] = v.Label
	}
	return labels
}

// PreflightAborted reports an aborted Result if the harness's context
// was already cancelled before the first expansion (tested invariant:
// a token asserted before the first call yields aborted).
func PreflightAborted(b *board.Board, initial kernel.State, h *Harness) (*Result, bool) {
	if h.Cancelled() {
		return BuildAborted(b, initial, h, 0), true
	}
	return nil, false
}

// PreflightSolved reports a solved Result with an empty move list if
// the initial state already satisfies the goal test.
func PreflightSolved(b *board.Board, initial kernel.State, h *Harness) (*Result, bool) {
	if kernel.IsGoal(b, initial) {
		return BuildSolved(b, initial, nil, h, 0), true
	}
	return nil, false
}

// Replay applies moves in order starting from initial, returning the
// full state history (length len(moves)+1).
func Replay(initial kernel.State, moves []kernel.Move) []kernel.State {
	history := make([]kernel.State, len(moves)+1)
	history[0] = initial
	cur := initial
	for i, m := range moves {
		cur = kernel.Apply(cur, m)
		history[i+1] = cur
	}
	return history
}

// BuildSolved assembles the Result for a successful search. An empty
// moves slice is valid (see package doc: already-solved boards).
func BuildSolved(b *board.Board, initial kernel.State, moves []kernel.Move, h *Harness, frontier int) *Result {
	history := Replay(initial, moves)
	h.Final(frontier, len(moves))
	return &Result{
		Status:        Solved,
		Moves:         moves,
		StateHistory:  history,
		Actions:       describe.DescribeAll(b, moves),
		Metrics:       Metrics{Explored: h.Explored(), Frontier: frontier, Depth: len(moves), TimeMs: h.ElapsedMs()},
		VehicleLabels: VehicleLabels(b),
	}
}

// BuildUnsolved assembles the Result for a search whose frontier was
// exhausted without reaching the goal.
func BuildUnsolved(b *board.Board, initial kernel.State, h *Harness, frontier int) *Result {
	h.Final(frontier, 0)
	return &Result{
		Status:        Unsolved,
		Moves:         nil,
		StateHistory:  []kernel.State{initial},
		Actions:       nil,
		Metrics:       Metrics{Explored: h.Explored(), Frontier: frontier, Depth: 0, TimeMs: h.ElapsedMs()},
		VehicleLabels: VehicleLabels(b),
	}
}

// BuildAborted assembles the Result for a cancelled search: an empty
// move list, a one-element state history, and depth 0, regardless of
// any partial solution found.
func BuildAborted(b *board.Board, initial kernel.State, h *Harness, frontier int) *Result {
	h.Final(frontier, 0)
	return &Result{
		Status:        Aborted,
		Moves:         nil,
		StateHistory:  []kernel.State{initial},
		Actions:       nil,
		Metrics:       Metrics{Explored: h.Explored(), Frontier: frontier, Depth: 0, TimeMs: h.ElapsedMs()},
		VehicleLabels: VehicleLabels(b),
	}
}
