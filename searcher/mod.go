package searcher

import (
	"context"

	"blobwar/experiments/metrics"
	"blobwar/game"
)

// Strategy chooses the next movement of the player to move. It returns false
// when that player has no legal movement, which the caller treats as a pass.
type Strategy interface {
	ComputeNextMove(state game.Configuration) (game.Movement, bool)
}

// Searcher is a Strategy that reports its score and search statistics.
type Searcher interface {
	Strategy
	Search(state game.Configuration, collector metrics.Collector) Result
}

// Result of a search, scored from the perspective of the player to move.
type Result struct {
	Score game.Score
	Move  game.Movement
	Found bool
}

// Publisher receives the best movement of each completed anytime iteration.
type Publisher interface {
	Store(ctx context.Context, move game.Movement, found bool) error
}

// Full search window. MinScore itself is reserved as the unreached marker.
const (
	initialAlpha = game.MinScore + 1
	initialBeta  = game.MaxScore
)

func search(s Searcher, state game.Configuration) (game.Movement, bool) {
	r := s.Search(state, metrics.NewDummyCollector())
	return r.Move, r.Found
}
