package astar

import (
	"container/heap"

	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
	"github.com/arvidsten/rushkernel/search"
)

// Solve runs A* best-first search on b, expanding nodes in order of
// f = g + h (see Heuristic), ties broken toward the smaller h.
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

	pq := make(nodePQ, 0)
	bestCost := make(map[string]int)

	startKey := kernel.Key(initial)
	bestCost[startKey] = 0
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{state: initial, key: startKey, g: 0, h: Heuristic(b, initial)})

	for pq.Len() > 0 {
		if h.Cancelled() {
			return search.BuildAborted(b, initial, h, pq.Len()), nil
		}

		item := heap.Pop(&pq).(*nodeItem)
		if item.g > bestCost[item.key] {
			continue // stale lazy-decrease-key entry
		}
		h.Expand(pq.Len(), item.g)

		if kernel.IsGoal(b, item.state) {
			return search.BuildSolved(b, initial, item.path, h, pq.Len()), nil
		}

		for _, m := range kernel.Moves(b, item.state) {
			next := kernel.Apply(item.state, m)
			key := kernel.Key(next)
			tentativeG := item.g + 1

			if best, ok := bestCost[key]; ok && tentativeG >= best {
				continue
			}
			bestCost[key] = tentativeG

			path := make([]kernel.Move, len(item.path)+1)
			copy(path, item.path)
			path[len(item.path)] = m

			heap.Push(&pq, &nodeItem{
				state: next,
				key:   key,
				g:     tentativeG,
				h:     Heuristic(b, next),
				path:  path,
			})
		}
	}

	return search.BuildUnsolved(b, initial, h, 0), nil
}

// Heuristic estimates the remaining moves from s to the goal. It is a
// deliberately inadmissible estimate: aligned corridors add 2×blockers
// on top of the raw distance to discourage routing through them, which
// can overestimate true cost. See package doc.
func Heuristic(b *board.Board, s kernel.State) int {
	goal := b.Vehicles[b.GoalIndex]
	anchor := s[b.GoalIndex]
	exit := b.Exit
	occ := kernel.Occupy(b, s)

	switch goal.Orientation {
	case board.Horizontal:
		if anchor.Row == exit.Row {
			tail := anchor.Col + goal.Length - 1
			switch {
			case exit.Col >= anchor.Col && exit.Col <= tail:
				return 0
			case exit.Col > tail:
				return (exit.Col - tail) + 2*countBlockers(occ, anchor.Row, tail+1, exit.Col)
			default: // exit.Col < anchor.Col
				return (anchor.Col - exit.Col) + 2*countBlockers(occ, anchor.Row, exit.Col, anchor.Col-1)
			}
		}
		return manhattan(anchor, exit)

	case board.Vertical:
		if anchor.Col == exit.Col {
			tail := anchor.Row + goal.Length - 1
			switch {
			case exit.Row >= anchor.Row && exit.Row <= tail:
				return 0
			case exit.Row > tail:
				return (exit.Row - tail) + 2*countBlockersCol(occ, anchor.Col, tail+1, exit.Row)
			default: // exit.Row < anchor.Row
				return (anchor.Row - exit.Row) + 2*countBlockersCol(occ, anchor.Col, exit.Row, anchor.Row-1)
			}
		}
		return manhattan(anchor, exit)

	default: // board.Single
		return manhattan(anchor, exit)
	}
}

func manhattan(a, e board.Cell) int {
	return absInt(e.Row-a.Row) + absInt(e.Col-a.Col)
}

// countBlockers counts occupied cells in row r across columns [from, to]
// inclusive, belonging to any vehicle (blockers, including other
// vehicles sitting in the corridor between the goal vehicle and the
// exit).
func countBlockers(occ kernel.Occupancy, row, from, to int) int {
	n := 0
	for c := from; c <= to; c++ {
		if occ.At(row, c) != -1 {
			n++
		}
	}
	return n
}

func countBlockersCol(occ kernel.Occupancy, col, from, to int) int {
	n := 0
	for r := from; r <= to; r++ {
		if occ.At(r, col) != -1 {
			n++
		}
	}
	return n
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nodeItem is a single heap entry: a state reached with cost g and
// estimated remaining cost h, carrying the path taken to reach it.
type nodeItem struct {
	state kernel.State
	key   string
	g     int
	h     int
	path  []kernel.Move
}

func (n *nodeItem) f() int { return n.g + n.h }

// nodePQ is a min-heap on f, ties broken by smaller h, mirroring the
// lazy-decrease-key pattern used for Dijkstra's priority queue:
// cheaper paths to an already-queued state are pushed as new entries
// rather than splicing out the stale one.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f() != pq[j].f() {
		return pq[i].f() < pq[j].f()
	}
	return pq[i].h < pq[j].h
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
