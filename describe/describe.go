// Package describe renders a kernel.Move into a human-readable action
// string. It is purely decorative: nothing here affects search.
package describe

import (
	"fmt"

	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
)

// phrase maps each direction to its Spanish phrase.
var phrase = map[kernel.Direction]string{
	kernel.Left:  "hacia la izquierda",
	kernel.Right: "hacia la derecha",
	kernel.Up:    "hacia arriba",
	kernel.Down:  "hacia abajo",
}

// Describe renders m as "mover <label> <direction-phrase>" when
// m.Steps == 1, or "mover <label> <direction-phrase> <n> espacios"
// when m.Steps >= 2.
func Describe(b *board.Board, m kernel.Move) string {
	label := b.Vehicles[m.VehicleIndex].Label
	p := phrase[m.Direction]
	if m.Steps <= 1 {
		return fmt.Sprintf("mover %s %s", label, p)
	}
	return fmt.Sprintf("mover %s %s %d espacios", label, p, m.Steps)
}

// DescribeAll renders every move in moves, in order.
func DescribeAll(b *board.Board, moves []kernel.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = Describe(b, m)
	}
	return out
}
