package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvidsten/rushkernel/board"
	"github.com/arvidsten/rushkernel/kernel"
	"github.com/arvidsten/rushkernel/search"
)

func TestOptions_NegativeMaxDepthIsViolation(t *testing.T) {
	_, err := search.Build([]search.Option{search.WithMaxDepth(-1)})
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestOptions_DefaultsAreUsable(t *testing.T) {
	o, err := search.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, o.MaxDepth)
	assert.NotNil(t, o.Progress)
}

func TestHarness_CancelledBeforeFirstExpansion(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o, err := search.Build([]search.Option{search.WithContext(ctx)})
	require.NoError(t, err)
	h := search.NewHarness(o)
	assert.True(t, h.Cancelled())
}

func TestHarness_SamplesAtProgressInterval(t *testing.T) {
	var samples []search.Metrics
	o, err := search.Build([]search.Option{search.WithProgress(func(m search.Metrics) {
		samples = append(samples, m)
	})})
	require.NoError(t, err)
	h := search.NewHarness(o)
	for i := 0; i < search.ProgressInterval; i++ {
		h.Expand(1, 0)
	}
	require.Len(t, samples, 1)
	assert.Equal(t, search.ProgressInterval, samples[0].Explored)
}

func TestBuildAborted_MatchesContract(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,2\n")
	require.NoError(t, err)
	initial := kernel.Initial(b)
	h := search.NewHarness(search.DefaultOptions())
	r := search.BuildAborted(b, initial, h, 3)
	assert.Equal(t, search.Aborted, r.Status)
	assert.Empty(t, r.Moves)
	assert.Len(t, r.StateHistory, 1)
	assert.Equal(t, 0, r.Metrics.Depth)
}

func TestBuildSolved_AlreadySolvedBoardHasEmptyMoves(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,0\n")
	require.NoError(t, err)
	initial := kernel.Initial(b)
	require.True(t, kernel.IsGoal(b, initial))
	h := search.NewHarness(search.DefaultOptions())
	r := search.BuildSolved(b, initial, nil, h, 0)
	assert.Equal(t, search.Solved, r.Status)
	assert.Empty(t, r.Moves)
	assert.Equal(t, []kernel.State{initial}, r.StateHistory)
}

func TestBuildSolved_HistoryReplaysMoves(t *testing.T) {
	b, err := board.Parse("B . .\nSalida: 0,2\n")
	require.NoError(t, err)
	initial := kernel.Initial(b)
	moves := []kernel.Move{{VehicleIndex: b.GoalIndex, Direction: kernel.Right, Steps: 2}}
	h := search.NewHarness(search.DefaultOptions())
	r := search.BuildSolved(b, initial, moves, h, 0)
	require.Len(t, r.StateHistory, 2)
	assert.True(t, kernel.IsGoal(b, r.StateHistory[len(r.StateHistory)-1]))
	require.Len(t, r.Actions, 1)
	assert.NotEmpty(t, r.Actions[0])
}

func TestValidateBoard_RejectsEmptyVehicles(t *testing.T) {
	assert.ErrorIs(t, search.ValidateBoard(&board.Board{}), search.ErrInvalidBoardData)
}
