package bfs

import (
	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
	"github.com/arvidsten/rushkernel/search"
)

// bfsNode pairs a state with the BFS-tree pointer needed to
// reconstruct the winning path: its parent's index in nodes and the
// move that produced it from that parent.
type bfsNode struct {
	state  kernel.State
	parent int // index into walker.nodes, -1 for the root
	move   kernel.Move
	depth  int
}

// walker encapsulates the mutable BFS state for a single invocation.
type walker struct {
	board   *board.Board
	nodes   []bfsNode
	queue   []int // indices into nodes, FIFO
	visited map[string]bool
}

// Solve runs breadth-first search on b, returning a uniform
// search.Result. It guarantees a minimum-moves solution under the
// unit-cost edge model (see package doc).
func Solve(b *board.Board, opts ...search.Option) (*search.Result, error) {
	if err := search.ValidateBoard(b); err != nil {
		return nil, err
	}
	o, err := search.Build(opts)
	if err != nil {
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

	w := &walker{board: b, visited: make(map[string]bool)}
	w.enqueue(initial, -1, kernel.Move{}, 0)

	for len(w.queue) > 0 {
		if h.Cancelled() {
			return search.BuildAborted(b, initial, h, len(w.queue)), nil
		}

		idx := w.dequeue()
		n := w.nodes[idx]
		h.Expand(len(w.queue), n.depth)

		if kernel.IsGoal(b, n.state) {
			return search.BuildSolved(b, initial, w.reconstruct(idx), h, len(w.queue)), nil
		}

		for _, m := range kernel.Moves(b, n.state) {
			next := kernel.Apply(n.state, m)
			key := kernel.Key(next)
			if w.visited[key] {
				continue
			}
			w.visited[key] = true
			w.enqueue(next, idx, m, n.depth+1)
		}
	}

	return search.BuildUnsolved(b, initial, h, 0), nil
}

func (w *walker) enqueue(s kernel.State, parent int, m kernel.Move, depth int) {
	if parent == -1 {
		w.visited[kernel.Key(s)] = true
	}
	idx := len(w.nodes)
	w.nodes = append(w.nodes, bfsNode{state: s, parent: parent, move: m, depth: depth})
	w.queue = append(w.queue, idx)
}

func (w *walker) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	return idx
}

// reconstruct walks parent pointers from the node at idx back to the
// root and reverses them into start→goal order.
func (w *walker) reconstruct(idx int) []kernel.Move {
	var moves []kernel.Move
	for n := w.nodes[idx]; n.parent != -1; n = w.nodes[n.parent] {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
