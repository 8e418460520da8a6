package searcher

import (
	"fmt"
	"sync"
	"time"

	"blobwar/experiments/metrics"
	"blobwar/game"

	"golang.org/x/exp/rand"
)

// DefaultCutoff is the length of a playout before the blob count decides it.
const DefaultCutoff = 64

type MCTSOption func(m *MCTS)

// MCTS picks the movement most explored by random playouts. Its goroutines
// share one tree, which is rebuilt for every movement.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
}

func WithDuration(duration time.Duration) MCTSOption {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) MCTSOption {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func NewMCTS(goroutines int, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     DefaultCutoff,
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) String() string {
	if m.episodes > 0 {
		return fmt.Sprintf("MCTS (episodes: %d, goroutines: %d)", m.episodes, m.goroutines)
	}
	return fmt.Sprintf("MCTS (duration: %v, goroutines: %d)", m.duration, m.goroutines)
}

func (m *MCTS) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(m, state)
}

// Search grows a tree from state. Playouts have no exact score, so the
// result carries the one ply value of the chosen movement.
func (m *MCTS) Search(state game.Configuration, collector metrics.Collector) Result {
	if state.GameOver() || !state.CanMove() {
		return Result{Score: state.Value()}
	}

	root := newNode(nil, state)
	if m.episodes > 0 {
		m.iterate(root, state, collector)
	} else {
		m.countdown(root, state, collector)
	}

	move := root.moves[root.best()]
	return Result{Score: -state.Play(move).Value(), Move: move, Found: true}
}

func (m *MCTS) iterate(root *node, state game.Configuration, collector metrics.Collector) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(root, state, collector)
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *node, state game.Configuration, collector metrics.Collector) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state, collector)
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(root *node, state game.Configuration, collector metrics.Collector) {
	collector.AddNode()
	leaf, leafState := selectThenExpand(root, state)
	winner, decided := rollout(leafState, m.cutoff)
	collector.AddLeaf()
	backup(leaf, winner, decided)
}

func selectThenExpand(root *node, state game.Configuration) (*node, game.Configuration) {
	parent := root
	child, state, expanded := parent.selectOrExpand(state)
	for !expanded && child != parent {
		parent = child
		child, state, expanded = parent.selectOrExpand(state)
	}
	return child, state
}

// rollout plays random movements, passing when stuck, until the game is over
// or cutoff movements were played, and returns who has more blobs.
func rollout(state game.Configuration, cutoff int) (game.Player, bool) {
	for depth := 0; depth < cutoff && !state.GameOver(); depth++ {
		moves := state.MovementList()
		if len(moves) == 0 {
			state = state.Pass()
			continue
		}
		state = state.Play(moves[rand.Intn(len(moves))]) // Random rollout policy
	}
	return state.Winner()
}

func backup(leaf *node, winner game.Player, decided bool) {
	n := leaf
	for n != nil {
		n = n.backup(winner, decided)
	}
}
