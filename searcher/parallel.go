package searcher

import (
	"fmt"

	"blobwar/experiments/metrics"
	"blobwar/game"

	"golang.org/x/sync/errgroup"
)

// ParallelAlphaBeta searches the children of the root concurrently, each
// with its own full-window alpha-beta. Branches share no bounds, so it
// gives up the pruning between root movements in exchange for parallelism.
// Workers limits the goroutines searching at once; zero means no limit.
type ParallelAlphaBeta struct {
	Depth   uint8
	Workers int
}

func (s ParallelAlphaBeta) String() string {
	return fmt.Sprintf("Parallel Alpha - Beta (max level: %d, workers: %d)", s.Depth, s.Workers)
}

func (s ParallelAlphaBeta) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s ParallelAlphaBeta) Search(state game.Configuration, collector metrics.Collector) Result {
	if s.Depth == 0 || state.GameOver() || !state.CanMove() {
		return AlphaBeta{Depth: s.Depth}.Search(state, collector)
	}
	collector.AddNode()

	moves := state.MovementList()
	scores := make([]game.Score, len(moves))

	var g errgroup.Group
	if s.Workers > 0 {
		g.SetLimit(s.Workers)
	}
	for i, m := range moves {
		g.Go(func() error {
			ab := alphaBeta{collector: collector}
			score, _, _ := ab.search(s.Depth-1, state.Play(m), initialAlpha, initialBeta)
			scores[i] = -score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(fmt.Sprintf("parallel alpha-beta: %v", err))
	}

	best := Result{Score: game.MinScore}
	for i, score := range scores {
		if score > best.Score {
			best = Result{Score: score, Move: moves[i], Found: true}
		}
	}
	return best
}
