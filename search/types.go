package search

import (
	"errors"

	"github.com/arvidsten/rushkernel/kernel"
)

// ErrInvalidBoardData is returned by a solver, not the parser, when the
// board passed to it lacks vehicles or a valid goal index. A correctly
// validating parser should never produce such a board; this check
// guards against programming errors in callers that construct a Board
// by hand.
var ErrInvalidBoardData = errors.New("search: board lacks vehicles or a goal vehicle")

// Status is the terminal classification of a solver run.
type Status string

const (
	Solved   Status = "solved"
	Unsolved Status = "unsolved"
	Aborted  Status = "aborted"
)

// ProgressInterval is the fixed number of expansions between progress
// samples.
const ProgressInterval = 150

// Metrics is the telemetry snapshot reported at every ProgressInterval
// expansions and on termination.
type Metrics struct {
	Explored int
	Frontier int
	Depth    int
	TimeMs   int64
}

// ProgressFunc receives a Metrics snapshot. It is invoked synchronously
// from the solver's own goroutine; it must not assume concurrency with
// expansion.
type ProgressFunc func(Metrics)

// Result is the single value every solver entry point produces on
// termination.
type Result struct {
	Status Status

	// Moves is empty unless Status == Solved. For an already-solved
	// initial board, Moves is empty even though Status == Solved.
	Moves []kernel.Move

	// StateHistory has length len(Moves)+1 when solved (initial at
	// index 0, final at the last index), or length 1 containing only
	// the initial state otherwise.
	StateHistory []kernel.State

	// Actions has one human-readable entry per move.
	Actions []string

	Metrics Metrics

	// VehicleLabels is indexed exactly as the board's vehicle list.
	VehicleLabels []string
}
