// Package search holds the types and harness shared by all four
// solvers (bfs, dfs, backtrack, astar): the uniform Result/Status/
// Metrics contract, functional Options, and the progress/cancellation
// harness.
//
// Progress sampling
//
//	Every solver maintains a monotonic "expanded" counter, incremented
//	the moment a node is popped from the frontier and goal-tested. At
//	every ProgressInterval expansions, and once more when a final
//	status is determined, the solver invokes the supplied ProgressFunc
//	with the current Metrics, then yields the scheduler once via
//	runtime.Gosched so a host event loop can service cancellation or
//	UI work before the next expansion.
//
// Cancellation
//
//	Cancellation is observed through a context.Context, polled at the
//	top of every expansion. A context already cancelled before the
//	first expansion yields an aborted Result with an empty move list
//	and a one-element state history.
//
// Already-solved boards
//
//	A board whose initial state already satisfies the goal test is
//	reported as solved with Moves == nil and StateHistory containing
//	only the initial state. This relaxes the usual "solved implies at
//	least one move" property for that one case, by design (spec open
//	question, resolved in favor of returning a trivial solution rather
//	than rejecting such boards at parse time).
package search
