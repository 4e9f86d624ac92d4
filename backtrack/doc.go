// Package backtrack implements the backtracking solver.
//
// Backtracking is identical in effect to an unbounded depth-first
// search: it exists as a separately named entry point for API
// symmetry among the four solvers, not as a distinct search strategy.
// This package is therefore a thin facade over dfs.SolveUnbounded,
// following the common pattern of re-exporting a lower-level engine
// under a domain-facing name rather than reimplementing it.
package backtrack
