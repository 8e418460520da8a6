package searcher

import (
	"testing"
	"time"

	"blobwar/experiments/metrics"
	"blobwar/game"

	"github.com/stretchr/testify/require"
)

func TestMCTS(t *testing.T) {
	t.Run("playing the only movement", func(t *testing.T) {
		state := singleCapture(t)
		r := NewMCTS(4, WithEpisodes(50)).Search(state, metrics.NewDummyCollector())
		require.True(t, r.Found)
		require.Equal(t, game.Movement{Kind: game.Duplicate, From: game.At(0, 0), To: game.At(1, 1)}, r.Move)
		require.Equal(t, -state.Play(r.Move).Value(), r.Score)
	})

	t.Run("finding the winning relocation", func(t *testing.T) {
		// Only a1-c3 reaches the single blue blob.
		m, found := NewMCTS(4, WithEpisodes(2000)).ComputeNextMove(smallBoard(t))
		require.True(t, found)
		require.Equal(t, game.Movement{Kind: game.Relocate, From: game.At(0, 0), To: game.At(2, 2)}, m)
	})

	t.Run("passing", func(t *testing.T) {
		state := walledIn(t)
		r := NewMCTS(2, WithEpisodes(10)).Search(state, metrics.NewDummyCollector())
		require.False(t, r.Found)
		require.Equal(t, state.Value(), r.Score)
	})

	t.Run("counting episodes", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start("mcts")
		NewMCTS(3, WithEpisodes(300), WithCutoff(10)).Search(game.NewConfiguration(game.DefaultBoard()), collector)
		m := collector.Complete()
		require.Equal(t, 300, m.Nodes)
		require.Equal(t, 300, m.Leaves)
	})

	t.Run("searching for a duration", func(t *testing.T) {
		opening := game.NewConfiguration(game.DefaultBoard())
		collector := metrics.NewCollector()
		collector.Start("mcts")
		start := time.Now()
		r := NewMCTS(2, WithDuration(50*time.Millisecond)).Search(opening, collector)
		require.True(t, r.Found)
		require.True(t, opening.Legal(r.Move))
		require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
		require.Positive(t, collector.Complete().Nodes)
	})

	t.Run("a budget is required", func(t *testing.T) {
		require.Panics(t, func() { NewMCTS(1) })
		require.Equal(t, "MCTS (episodes: 10, goroutines: 1)", NewMCTS(0, WithEpisodes(10)).String())
	})
}

func TestNode(t *testing.T) {
	t.Run("expanding every movement before selecting", func(t *testing.T) {
		state := smallBoard(t)
		root := newNode(nil, state)
		n := len(state.MovementList())
		for i := 0; i < n; i++ {
			child, _, expanded := root.selectOrExpand(state)
			require.True(t, expanded)
			require.Equal(t, game.Red, child.mover)
			require.Equal(t, 1, child.Visits(), "A new child carries a virtual loss")
		}
		_, _, expanded := root.selectOrExpand(state)
		require.False(t, expanded)
	})

	t.Run("backup reverses the virtual loss", func(t *testing.T) {
		state := singleCapture(t)
		root := newNode(nil, state)
		child, _, _ := root.selectOrExpand(state)
		backup(child, game.Red, true)

		require.Equal(t, 1, child.Visits())
		require.Equal(t, Win, child.rewards)
		require.Equal(t, 1, root.Visits())
		require.Equal(t, Loss, root.rewards, "The root is scored for the player who did not move")
	})

	t.Run("a forced pass is a single edge", func(t *testing.T) {
		state := walledIn(t)
		root := newNode(nil, state)
		require.Equal(t, 1, root.edges())
		child, childState, _ := root.selectOrExpand(state)
		require.Equal(t, game.Red, child.mover)
		require.Equal(t, game.Blue, childState.Player())
	})

	t.Run("rewards", func(t *testing.T) {
		require.Equal(t, Win, reward(game.Red, game.Red, true))
		require.Equal(t, Loss, reward(game.Blue, game.Red, true))
		require.Zero(t, reward(game.Blue, game.Red, false))
		require.Panics(t, func() { ucb(0, 0, 1) })
	})
}
