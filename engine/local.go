package engine

import (
	"fmt"
	"time"

	"blobwar/experiments/metrics"
	"blobwar/game"
	"blobwar/meta"
	"blobwar/searcher"

	"github.com/rs/zerolog/log"
)

// Engine alternates two strategies on one board in this process.
type Engine struct {
	State      game.Configuration
	Strategies [2]searcher.Strategy
	MaxTurns   int
}

func LocalEngine(state game.Configuration, red, blue searcher.Strategy) *Engine {
	if red == nil || blue == nil {
		panic("need a strategy for each player")
	}
	return &Engine{
		State:      state,
		Strategies: [2]searcher.Strategy{red, blue},
		MaxTurns:   meta.MaxTurns,
	}
}

// Run plays until the game is over, a strategy gives up or MaxTurns is
// reached. A player without a legal movement passes.
func (e *Engine) Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	outcome := Outcome{}

	log.Info().Msgf("%v is starting", e.State.Player())

	for turn := 1; turn <= e.MaxTurns && !e.State.GameOver(); turn++ {
		player := e.State.Player()
		strategy := e.Strategies[player]

		move, found, searchMetric := next(strategy, e.State)
		moveMetric := metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			SearchMetric: searchMetric,
		}
		outcome.Turns = turn

		if !found {
			if e.State.CanMove() {
				log.Warn().Msgf("%v gave up on turn %d", player, turn)
				moveMetrics = append(moveMetrics, moveMetric)
				outcome.Winner, outcome.Decided, outcome.Forfeit = player.Opponent(), true, true
				break
			}
			log.Debug().Msgf("%v passes", player)
			e.State = e.State.Pass()
			moveMetrics = append(moveMetrics, moveMetric)
			continue
		}

		log.Debug().
			Int("turn", turn).
			Str("player", player.String()).
			Str("move", move.String()).
			Dur("duration", searchMetric.Duration).
			Msg("played")
		moveMetric.Move = move.String()
		moveMetrics = append(moveMetrics, moveMetric)
		e.State = e.State.Play(move)
	}

	outcome.Final = e.State
	switch {
	case outcome.Forfeit:
	case e.State.GameOver():
		outcome.Winner, outcome.Decided = e.State.Winner()
	default:
		log.Warn().Msgf("stopped after %d turns without a winner", outcome.Turns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.RedBlobs, gameMetric.BlueBlobs = e.State.Counts()
	if outcome.Decided {
		gameMetric.Winner = outcome.Winner.String()
	}
	log.Info().Msgf("game ended after %d turns: %v (%d-%d)",
		outcome.Turns, outcome, gameMetric.RedBlobs, gameMetric.BlueBlobs)

	return outcome, gameMetric, moveMetrics
}

// next asks strategy for a movement, collecting search statistics when the
// strategy reports them.
func next(strategy searcher.Strategy, state game.Configuration) (game.Movement, bool, metrics.SearchMetric) {
	collector := metrics.NewCollector()
	collector.Start(fmt.Sprint(strategy))
	var (
		move  game.Movement
		found bool
	)
	if s, ok := strategy.(searcher.Searcher); ok {
		r := s.Search(state, collector)
		move, found = r.Move, r.Found
	} else {
		move, found = strategy.ComputeNextMove(state)
	}
	return move, found, collector.Complete()
}
