package searcher

import (
	"context"
	"errors"
	"testing"

	"blobwar/experiments/metrics"
	"blobwar/game"

	"github.com/stretchr/testify/require"
)

type published struct {
	move  game.Movement
	found bool
}

type recorder struct {
	stores []published
	err    error
}

func (r *recorder) Store(ctx context.Context, move game.Movement, found bool) error {
	if r.err != nil {
		return r.err
	}
	r.stores = append(r.stores, published{move: move, found: found})
	return nil
}

func TestAnytime(t *testing.T) {
	t.Run("publishes after every completed depth", func(t *testing.T) {
		state := smallBoard(t)
		out := &recorder{}

		err := Anytime(context.Background(), state, out, WithMaxDepth(4))
		require.NoError(t, err)
		require.Len(t, out.stores, 4, "Should publish once per depth")
		for i, p := range out.stores {
			want := AlphaBeta{Depth: uint8(i + 1)}.Search(state, metrics.NewDummyCollector())
			require.Equal(t, published{move: want.Move, found: want.Found}, p, "depth %d", i+1)
		}
	})

	t.Run("minmax iterations", func(t *testing.T) {
		state := singleCapture(t)
		out := &recorder{}

		require.NoError(t, Anytime(context.Background(), state, out,
			WithMaxDepth(3), WithDeepener(func(depth uint8) Searcher { return MinMax{Depth: depth} })))
		require.Len(t, out.stores, 3)
		for _, p := range out.stores {
			require.Equal(t, state.MovementList()[0], p.move)
		}
	})

	t.Run("publishes no movement for a player that must pass", func(t *testing.T) {
		out := &recorder{}
		require.NoError(t, Anytime(context.Background(), walledIn(t), out, WithMaxDepth(2)))
		require.Equal(t, []published{{}, {}}, out.stores)
	})

	t.Run("counts the nodes of every iteration", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start("anytime")
		require.NoError(t, Anytime(context.Background(), smallBoard(t), &recorder{},
			WithMaxDepth(2), WithMetrics(collector)))
		require.Positive(t, collector.Complete().Nodes)
	})

	t.Run("stops between depths when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := &recorder{}

		err := Anytime(ctx, smallBoard(t), out)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, out.stores)
	})

	t.Run("fails when publishing fails", func(t *testing.T) {
		boom := errors.New("segment gone")
		err := Anytime(context.Background(), smallBoard(t), &recorder{err: boom}, WithMaxDepth(3))
		require.ErrorIs(t, err, boom)
	})
}
