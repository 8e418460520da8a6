package searcher

import (
	"context"
	"fmt"

	"blobwar/experiments/metrics"
	"blobwar/game"
	"blobwar/meta"

	"github.com/rs/zerolog/log"
)

// Deepener builds the fixed depth search run by one anytime iteration.
type Deepener func(depth uint8) Searcher

type Option func(a *anytime)

type anytime struct {
	deepener Deepener
	maxDepth uint8
	metrics  metrics.Collector
}

func WithDeepener(deepener Deepener) Option {
	return func(a *anytime) {
		if deepener != nil {
			a.deepener = deepener
		}
	}
}

func WithMaxDepth(depth uint8) Option {
	return func(a *anytime) {
		if depth > 0 {
			a.maxDepth = depth
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(a *anytime) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// Anytime deepens the search one ply at a time and publishes the best
// movement after every completed depth, so whatever out holds when the
// process is killed comes from the deepest finished search. It only returns
// once the maximum depth is done, ctx is cancelled between two depths, or
// publishing fails.
func Anytime(ctx context.Context, state game.Configuration, out Publisher, options ...Option) error {
	a := &anytime{ // Default values
		deepener: func(depth uint8) Searcher { return AlphaBeta{Depth: depth} },
		maxDepth: meta.MaxAnytimeDepth,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}

	for depth := uint8(1); depth <= a.maxDepth; depth++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r := a.deepener(depth).Search(state, a.metrics)
		if err := out.Store(ctx, r.Move, r.Found); err != nil {
			return fmt.Errorf("failed to publish depth %d: %w", depth, err)
		}
		log.Debug().Int("depth", int(depth)).Int("score", int(r.Score)).Bool("found", r.Found).
			Str("move", r.Move.String()).Msg("published")
		if depth == a.maxDepth { // Avoid wrapping around at 255
			break
		}
	}
	return nil
}

// AlphaBetaAnytime runs Anytime with alpha-beta iterations.
func AlphaBetaAnytime(ctx context.Context, state game.Configuration, out Publisher) error {
	return Anytime(ctx, state, out)
}

// MinMaxAnytime runs Anytime with plain negamax iterations.
func MinMaxAnytime(ctx context.Context, state game.Configuration, out Publisher) error {
	return Anytime(ctx, state, out, WithDeepener(func(depth uint8) Searcher { return MinMax{Depth: depth} }))
}
