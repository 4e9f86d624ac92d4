// Package bfs implements a shortest-in-moves search over the state
// graph defined by kernel.Moves/kernel.Apply.
//
// What
//
//   - FIFO breadth-first search. The frontier is a queue of nodes
//     (state, parent index, move taken from parent, depth). The start
//     state is enqueued and marked visited; each pop is goal-tested,
//     then its unvisited successors are marked visited and enqueued.
//   - On success, the move list is reconstructed by walking parent
//     pointers from the goal node back to the root and reversing.
//
// Why
//
//   - Because every edge is unit cost, BFS minimizes the number of
//     moves — not the number of cells slid — to reach a goal state.
//     Of the four solvers, only BFS (and A*, conditionally) guarantees
//     this.
//
// Complexity
//
//	Time and memory are bounded by the number of distinct reachable
//	states, which is finite but can be exponential in vehicle count.
//
// Errors
//
//   - search.ErrInvalidBoardData if the board lacks vehicles or a
//     valid goal index.
//   - search.ErrOptionViolation for an invalid Option.
package bfs
