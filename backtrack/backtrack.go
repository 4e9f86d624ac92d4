package backtrack

import (
	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/dfs"
	"github.com/arvidsten/rushkernel/search"
)

// Solve runs the same engine as dfs.Solve with depth unbounded,
// regardless of any search.WithMaxDepth option supplied. Context
// cancellation and progress reporting behave exactly as documented on
// dfs.Solve.
func Solve(b *board.Board, opts ...search.Option) (*search.Result, error) {
	return dfs.SolveUnbounded(b, opts...)
}
