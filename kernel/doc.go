// Package kernel implements the shared state representation and move
// generator underlying all four solvers: the occupancy projection, the
// legal-move enumerator, move application, the canonical state key, and
// the goal test.
//
// What
//
//   - State is the ordered vector of vehicle anchors, indexed exactly as
//     board.Board.Vehicles. Two states are equal iff every anchor pair
//     is equal.
//   - Occupancy projects a State onto an R×C matrix of vehicle indices
//     (or -1 for empty), in O(R·C + ΣLᵢ).
//   - Moves enumerates one edge per (vehicle, direction, step) tuple: for
//     each vehicle, walking outward one cell at a time in each direction
//     its orientation allows, stopping at the first blocked or
//     out-of-bounds cell.
//   - Apply returns a new State with exactly one anchor translated; the
//     input State is never mutated.
//   - Key packs every anchor into a fixed-width byte string (two
//     big-endian uint16 fields per vehicle) used by every solver's
//     visited-set / best-cost map; it never formats through fmt or
//     strconv.
//   - IsGoal reports whether the goal vehicle's occupied cells include
//     the board's exit cell.
//
// Move cost
//
//	Every generated Move is a single unit-cost edge regardless of its
//	Steps field. A slide of three cells costs the same as a slide of
//	one. BFS and A* accumulate moves, not cells, into g/depth — this is
//	a deliberate, preserved property of the search, not an oversight.
//
// Complexity (R = rows, C = cols, n = vehicle count)
//
//   - Occupancy: O(R·C + Σ Lᵢ)
//   - Moves: O(n · max(R, C)) amortized walk per vehicle per direction
//   - Apply, Key: O(n)
package kernel
