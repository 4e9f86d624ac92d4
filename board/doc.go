// Package board parses the textual puzzle format into a structured
// Board: grid dimensions, exit cell, and an ordered, positionally
// load-bearing vehicle list.
//
// What
//
//   - Zero or more whitespace-tokenized board rows, followed by one
//     Salida line naming the exit cell: "Salida: <row>,<col>".
//   - Every non-'.' token belongs to exactly one vehicle; orientation is
//     disambiguated from the token alphabet and, for the ambiguous 'B'
//     token, from its neighbors.
//   - The first discovered vehicle containing a 'B' cell is the goal
//     vehicle; all others are numbered "1", "2", ... in discovery order.
//
// Why
//
//   - Every downstream component (kernel, describe, the four solvers)
//     operates on the same immutable Board; parsing happens once and the
//     result is shared read-only across every search.
//
// Determinism
//
//	Vehicles are discovered by a single row-major scan, so Parse is a
//	pure function of its input text: identical text always yields an
//	identical Board, including vehicle order and labels.
//
// Errors
//
//   - ErrEmptyPuzzle, ErrMissingExit, ErrMalformedExit, ErrEmptyBoard,
//     ErrRaggedBoard, ErrInvalidToken, ErrNoGoalVehicle.
package board
