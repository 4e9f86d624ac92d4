package astar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsten/rushkernel/astar"
	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
	"github.com/arvidsten/rushkernel/search"
)

func mustParse(t *testing.T, text string) *board.Board {
	t.Helper()
	b, err := board.Parse(text)
	require.NoError(t, err)
	return b
}

func TestAStar_SolvesThreeMovePuzzle(t *testing.T) {
	b := mustParse(t, ""+
		"B B | . | . .\n"+
		". . | . v . .\n"+
		". . . . . . .\n"+
		"Salida: 0,6\n")

	res, err := astar.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Status)
	final := res.StateHistory[len(res.StateHistory)-1]
	assert.True(t, kernel.IsGoal(b, final))
}

func TestAStar_LeftExitOneMove(t *testing.T) {
	b := mustParse(t, ". B\nSalida: 0,0\n")
	res, err := astar.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Status)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, kernel.Left, res.Moves[0].Direction)
}

func TestAStar_PreCancelled(t *testing.T) {
	b := mustParse(t, "B . .\nSalida: 0,2\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := astar.Solve(b, search.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, search.Aborted, res.Status)
	assert.Empty(t, res.Moves)
}

func TestAStar_AlreadySolved(t *testing.T) {
	b := mustParse(t, "B\nSalida: 0,0\n")
	res, err := astar.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Status)
	assert.Empty(t, res.Moves)
}

func TestAStar_NoSolution(t *testing.T) {
	b := mustParse(t, ""+
		"- - -\n"+
		"| B |\n"+
		"- - -\n"+
		"Salida: 0,0\n")
	res, err := astar.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Unsolved, res.Status)
}

func TestAStar_InvalidBoardData(t *testing.T) {
	_, err := astar.Solve(&board.Board{})
	assert.True(t, errors.Is(err, search.ErrInvalidBoardData))
}

func TestHeuristic_ZeroWhenExitAlreadyCovered(t *testing.T) {
	b := mustParse(t, "B B\nSalida: 0,1\n")
	s := kernel.Initial(b)
	assert.Equal(t, 0, astar.Heuristic(b, s))
}

func TestHeuristic_CountsBlockersWithPenalty(t *testing.T) {
	b := mustParse(t, ""+
		"B B | . | . .\n"+
		". . | . v . .\n"+
		". . . . . . .\n"+
		"Salida: 0,6\n")
	s := kernel.Initial(b)
	// Two vertical vehicles occupy columns 2 and 4 between the goal
	// vehicle's tail (column 1) and the exit (column 6): raw distance
	// 5 plus 2 per blocker.
	got := astar.Heuristic(b, s)
	assert.Equal(t, 5+2*2, got)
}

func TestHeuristic_ManhattanWhenMisaligned(t *testing.T) {
	b := mustParse(t, ""+
		". . B\n"+
		". . B\n"+
		". . .\n"+
		"Salida: 2,0\n")
	s := kernel.Initial(b)
	got := astar.Heuristic(b, s)
	assert.Equal(t, 2+2, got)
}

func TestAStar_Deterministic(t *testing.T) {
	b := mustParse(t, ""+
		"B B | . | . .\n"+
		". . | . v . .\n"+
		". . . . . . .\n"+
		"Salida: 0,6\n")
	r1, err := astar.Solve(b)
	require.NoError(t, err)
	r2, err := astar.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, r1.Moves, r2.Moves)
}
