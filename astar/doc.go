// Package astar implements a best-first search solver.
//
// A* orders frontier expansion by f = g + h, where g is the number of
// moves taken from the initial state and h is an admissible-looking
// but deliberately inadmissible heuristic (see Heuristic). Ties on f
// are broken toward the smaller h, favoring states believed closer to
// the goal.
//
// Implementation choices:
//
//   - A lazy-decrease-key min-heap (container/heap), the same pattern
//     package dijkstra uses: a cheaper path to an already-queued state
//     is pushed as a new heap entry rather than splicing the old one
//     out, and stale entries are discarded on pop by comparing against
//     a bestCost map.
//   - bestCost tracks the lowest known g for each visited state key;
//     a popped entry whose g is worse than bestCost[key] is stale and
//     skipped.
//
// Because Heuristic can overestimate, A* here does not guarantee an
// optimal (minimum-move) solution; see Heuristic for why that
// departure from classical A* is intentional.
package astar
