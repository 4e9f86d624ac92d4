package board

import "errors"

// Sentinel errors for puzzle-text parsing.
//
// These correspond to the parser error kinds of the format description:
// a blank input, a missing or malformed exit line, an empty board
// portion, an irregular grid, an unrecognized token, or a grid that
// never declares a goal vehicle all fail parsing rather than producing
// a degraded Board.
var (
	// ErrEmptyPuzzle indicates the input is blank after normalization.
	ErrEmptyPuzzle = errors.New("board: puzzle text is empty")

	// ErrMissingExit indicates no line matches the Salida pattern.
	ErrMissingExit = errors.New("board: missing Salida line")

	// ErrMalformedExit indicates a Salida line whose coordinates are not two integers.
	ErrMalformedExit = errors.New("board: malformed Salida coordinates")

	// ErrEmptyBoard indicates a Salida line is present but no board rows precede it.
	ErrEmptyBoard = errors.New("board: no board rows before Salida line")

	// ErrRaggedBoard indicates board rows tokenize to differing column counts.
	ErrRaggedBoard = errors.New("board: board rows have inconsistent column counts")

	// ErrInvalidToken indicates a board cell uses a token outside the known alphabet.
	ErrInvalidToken = errors.New("board: unrecognized board token")

	// ErrNoGoalVehicle indicates the grid contains no 'B' cell.
	ErrNoGoalVehicle = errors.New("board: grid declares no goal vehicle")
)
