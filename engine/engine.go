package engine

import (
	"blobwar/experiments/metrics"
	"blobwar/game"
)

// Runner plays a game until it ends or the turn limit is reached.
type Runner interface {
	Run() (Outcome, metrics.GameMetric, []metrics.MoveMetric)
}

// Outcome of a game.
type Outcome struct {
	Final   game.Configuration
	Winner  game.Player
	Decided bool // false on a tie or when the turn limit was hit
	Forfeit bool // the loser gave up while it still had a movement
	Turns   int
}

func (o Outcome) String() string {
	switch {
	case o.Forfeit:
		return o.Winner.String() + " wins by forfeit"
	case o.Decided:
		return o.Winner.String() + " wins"
	case o.Final.GameOver():
		return "tie"
	default:
		return "unfinished"
	}
}
