// Package dfs implements an explicit LIFO stack-based depth-first
// search with a globally shared visited set and an optional depth
// bound.
//
// What
//
//   - The stack holds (state, path-from-root, depth) entries. At each
//     pop, the popped state is goal-tested; if not terminal, its
//     successors are generated, sorted deterministically by
//     (vehicleIndex ascending, then direction: down < left < right <
//     up), and pushed so the lowest-ranked move is explored first.
//   - WithMaxDepth bounds expansion depth (0 = unbounded, matching
//     search.WithMaxDepth's convention).
//
// Why not strictly depth-first
//
//	The visited set is never cleared during the search, so this is a
//	tree search over a global DAG, not a path-recovering depth-first
//	search: once a state is visited via one path, a shorter path to it
//	discovered later is never explored. DFS can therefore miss shorter
//	solutions a different ancestor would have found — that is documented
//	behavior, not a bug; BFS and A* exist for shortest-path guarantees.
//
// Errors
//
//   - search.ErrInvalidBoardData, search.ErrOptionViolation.
package dfs
