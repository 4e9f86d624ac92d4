package dfs

import (
	"sort"

	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
	"github.com/arvidsten/rushkernel/search"
)

// directionRank orders moves deterministically within a vehicle:
// down < left < right < up.
var directionRank = map[kernel.Direction]int{
	kernel.Down:  0,
	kernel.Left:  1,
	kernel.Right: 2,
	kernel.Up:    3,
}

// stackNode carries the path from the root alongside its state, since
// this engine's visited set is global rather than per-path: there are
// no parent pointers to walk back through on success.
type stackNode struct {
	state kernel.State
	path  []kernel.Move
	depth int
}

// Solve runs depth-first search on b. WithMaxDepth(d) with d > 0 prunes
// expansion beyond depth d; d == 0 (the default) is unbounded.
func Solve(b *board.Board, opts ...search.Option) (*search.Result, error) {
	o, err := search.Build(opts)
	if err != nil {
		return nil, err
	}
	return run(b, o)
}

// SolveUnbounded runs the same engine as Solve with MaxDepth forced to
// 0 (unbounded) regardless of any WithMaxDepth option supplied. It
// exists so package backtrack can expose a distinct entry point with
// search semantics identical to this engine run unbounded.
func SolveUnbounded(b *board.Board, opts ...search.Option) (*search.Result, error) {
	o, err := search.Build(opts)
	if err != nil {
		return nil, err
	}
	o.MaxDepth = 0
	return run(b, o)
}

func run(b *board.Board, o search.Options) (*search.Result, error) {
	if err := search.ValidateBoard(b); err != nil {
		return nil, err
	}
	h := search.NewHarness(o)
	initial := kernel.Initial(b)

	if r, ok := search.PreflightAborted(b, initial, h); ok {
		return r, nil
	}
	if r, ok := search.PreflightSolved(b, initial, h); ok {
		return r, nil
	}

	stack := []stackNode{{state: initial, depth: 0}}
	visited := map[string]bool{kernel.Key(initial): true}

	for len(stack) > 0 {
		if h.Cancelled() {
			return search.BuildAborted(b, initial, h, len(stack)), nil
		}

		top := len(stack) - 1
		n := stack[top]
		stack = stack[:top]
		h.Expand(len(stack), n.depth)

		if kernel.IsGoal(b, n.state) {
			return search.BuildSolved(b, initial, n.path, h, len(stack)), nil
		}
		if o.MaxDepth > 0 && n.depth >= o.MaxDepth {
			continue
		}

		moves := kernel.Moves(b, n.state)
		sortMoves(moves)

		// Push in reverse rank order so the lowest-ranked move is
		// popped (and therefore explored) first.
		for i := len(moves) - 1; i >= 0; i-- {
			m := moves[i]
			next := kernel.Apply(n.state, m)
			key := kernel.Key(next)
			if visited[key] {
				continue
			}
			visited[key] = true

			path := make([]kernel.Move, len(n.path)+1)
			copy(path, n.path)
			path[len(n.path)] = m

			stack = append(stack, stackNode{state: next, path: path, depth: n.depth + 1})
		}
	}

	return search.BuildUnsolved(b, initial, h, 0), nil
}

// sortMoves orders moves by vehicleIndex ascending, then by direction
// (down < left < right < up), preserving the ascending-step order
// kernel.Moves already produces within each (vehicle, direction) group.
func sortMoves(moves []kernel.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		if moves[i].VehicleIndex != moves[j].VehicleIndex {
			return moves[i].VehicleIndex < moves[j].VehicleIndex
		}
		return directionRank[moves[i].Direction] < directionRank[moves[j].Direction]
	})
}
