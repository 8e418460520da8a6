package experiments

import (
	"fmt"

	"blobwar/experiments/metrics"
	"blobwar/game"
	"blobwar/searcher"

	"github.com/rs/zerolog/log"
)

// Effort runs every searcher on every state and reports the cost of each
// search, in state order then searcher order.
func Effort(states []game.Configuration, searchers []searcher.Searcher) []metrics.SearchMetric {
	var results []metrics.SearchMetric
	collector := metrics.NewCollector()
	for i, state := range states {
		for _, s := range searchers {
			collector.Start(fmt.Sprint(s))
			r := s.Search(state, collector)
			m := collector.Complete()
			results = append(results, m)
			log.Debug().
				Int("position", i).
				Str("strategy", m.Strategy).
				Int("score", int(r.Score)).
				Int("nodes", m.Nodes).
				Dur("duration", m.Duration).
				Msg("searched")
		}
	}
	return results
}

// Positions plays greedy movements from the start of board and returns the
// first n configurations, for effort comparisons on more than the opening.
func Positions(board *game.Board, n int) []game.Configuration {
	state := game.NewConfiguration(board)
	var positions []game.Configuration
	for len(positions) < n && !state.GameOver() {
		positions = append(positions, state)
		move, found := searcher.Greedy{}.ComputeNextMove(state)
		if !found {
			state = state.Pass()
			continue
		}
		state = state.Play(move)
	}
	return positions
}
