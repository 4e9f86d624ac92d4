package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsten/rushkernel/backtrack"
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

func TestBacktrack_FindsSolution(t *testing.T) {
	b := mustParse(t, ". B\nSalida: 0,0\n")
	res, err := backtrack.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Status)
	final := res.StateHistory[len(res.StateHistory)-1]
	assert.True(t, kernel.IsGoal(b, final))
}

func TestBacktrack_IgnoresMaxDepthBound(t *testing.T) {
	b := mustParse(t, ""+
		"B B | . | . .\n"+
		". . | . v . .\n"+
		". . . . . . .\n"+
		"Salida: 0,6\n")
	// The same bound makes dfs.Solve report unsolved; backtrack must
	// still find the solution since it forces the search unbounded.
	res, err := backtrack.Solve(b, search.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, search.Solved, res.Status)
}

func TestBacktrack_NoSolution(t *testing.T) {
	b := mustParse(t, ""+
		"- - -\n"+
		"| B |\n"+
		"- - -\n"+
		"Salida: 0,0\n")
	res, err := backtrack.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, search.Unsolved, res.Status)
}
