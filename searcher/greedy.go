package searcher

import (
	"blobwar/experiments/metrics"
	"blobwar/game"

	"golang.org/x/exp/rand"
)

// Greedy plays the movement with the best immediate value. Its baseline is
// MinScore rather than the value of the current configuration, so it plays
// a movement even when every movement loses ground.
type Greedy struct{}

func (Greedy) String() string {
	return "Greedy"
}

func (s Greedy) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (Greedy) Search(state game.Configuration, collector metrics.Collector) Result {
	collector.AddNode()
	best := Result{Score: game.MinScore}
	for m := range state.Movements() {
		collector.AddLeaf()
		// The child is valued for the opponent, who moves next.
		score := -state.Play(m).Value()
		if score > best.Score {
			best = Result{Score: score, Move: m, Found: true}
		}
	}
	if !best.Found {
		return Result{Score: state.Value()}
	}
	return best
}

// Random plays a uniformly chosen movement. It is the baseline opponent of
// the experiments.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random strategy with its own seeded generator. The
// zero Random uses the shared generator.
func NewRandom(seed uint64) Random {
	return Random{rng: rand.New(rand.NewSource(seed))}
}

func (Random) String() string {
	return "Random"
}

func (s Random) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s Random) Search(state game.Configuration, collector metrics.Collector) Result {
	collector.AddNode()
	moves := state.MovementList()
	if len(moves) == 0 {
		return Result{Score: state.Value()}
	}
	var i int
	if s.rng != nil {
		i = s.rng.Intn(len(moves))
	} else {
		i = rand.Intn(len(moves))
	}
	m := moves[i]
	return Result{Score: -state.Play(m).Value(), Move: m, Found: true}
}
