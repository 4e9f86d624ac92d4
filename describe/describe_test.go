package describe_test

import (
	"testing"

	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/describe"
	"github.com/arvidsten/rushkernel/kernel"
)

func TestDescribe_SingleStep(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,2\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := describe.Describe(b, kernel.Move{VehicleIndex: b.GoalIndex, Direction: kernel.Right, Steps: 1})
	want := "mover carro objetivo hacia la derecha"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribe_MultiStep(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,2\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := describe.Describe(b, kernel.Move{VehicleIndex: b.GoalIndex, Direction: kernel.Right, Steps: 2})
	want := "mover carro objetivo hacia la derecha 2 espacios"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribe_NonGoalVehicleLabel(t *testing.T) {
	b, err := board.Parse("B . -\n. . -\nSalida: 0,2\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	nonGoal := 1 - b.GoalIndex
	got := describe.Describe(b, kernel.Move{VehicleIndex: nonGoal, Direction: kernel.Up, Steps: 1})
	want := "mover 1 hacia arriba"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribeAll_NeverEmpty(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,2\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	moves := []kernel.Move{{VehicleIndex: b.GoalIndex, Direction: kernel.Right, Steps: 1}}
	for _, a := range describe.DescribeAll(b, moves) {
		if a == "" {
			t.Fatal("action string must not be empty")
		}
	}
}
