package searcher

import (
	"fmt"

	"blobwar/experiments/metrics"
	"blobwar/game"
)

// MinMax searches every line of play up to Depth plies.
//
// Scores follow the negamax convention: each call scores its configuration
// for the player to move there, and the parent negates the scores of its
// children before taking the maximum.
type MinMax struct {
	Depth uint8
}

func (s MinMax) String() string {
	return fmt.Sprintf("Min - Max (max level: %d)", s.Depth)
}

func (s MinMax) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s MinMax) Search(state game.Configuration, collector metrics.Collector) Result {
	score, move, found := negamax(s.Depth, state, collector)
	return Result{Score: score, Move: move, Found: found}
}

func negamax(depth uint8, state game.Configuration, collector metrics.Collector) (game.Score, game.Movement, bool) {
	collector.AddNode()
	if depth == 0 || state.GameOver() {
		collector.AddLeaf()
		return state.Value(), game.Movement{}, false
	}
	if !state.CanMove() { // Forced pass
		score, _, _ := negamax(depth-1, state.Pass(), collector)
		return -score, game.Movement{}, false
	}

	best := game.MinScore
	var bestMove game.Movement
	for m := range state.Movements() {
		score, _, _ := negamax(depth-1, state.Play(m), collector)
		if -score > best {
			best = -score
			bestMove = m
		}
	}
	if best == game.MinScore {
		panic("negamax: no movement improved on the sentinel score")
	}
	return best, bestMove, true
}

// Expectimax returns the same score as MinMax but breaks ties between
// equally scored movements by the average outcome of the opponent's
// replies, so it prefers lines where the opponent has fewer good answers.
type Expectimax struct {
	Depth uint8
}

func (s Expectimax) String() string {
	return fmt.Sprintf("Expecti - Max (max level: %d)", s.Depth)
}

func (s Expectimax) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s Expectimax) Search(state game.Configuration, collector metrics.Collector) Result {
	n := expectimax(s.Depth, state, false, collector)
	return Result{Score: n.score, Move: n.move, Found: n.found}
}

type expectation struct {
	score game.Score
	mean  float64 // average child score, only meaningful on averaging levels
	move  game.Movement
	found bool
}

// expectimax alternates between levels that average their children's scores
// (the opponent's turns) and levels that use those averages to break exact
// score ties (our turns). The score itself is always the maximum.
func expectimax(depth uint8, state game.Configuration, averaging bool, collector metrics.Collector) expectation {
	collector.AddNode()
	if depth == 0 || state.GameOver() {
		collector.AddLeaf()
		v := state.Value()
		return expectation{score: v, mean: float64(v)}
	}
	if !state.CanMove() {
		child := expectimax(depth-1, state.Pass(), !averaging, collector)
		return expectation{score: -child.score, mean: -child.mean}
	}

	best := expectation{score: game.MinScore}
	bestMean := 0.0
	sum, count := 0.0, 0
	for m := range state.Movements() {
		child := expectimax(depth-1, state.Play(m), !averaging, collector)
		score, mean := -child.score, -child.mean
		if averaging {
			sum += float64(score)
			count++
		}
		switch {
		case score > best.score:
			best = expectation{score: score, move: m, found: true}
			bestMean = mean
		case score == best.score && !averaging && mean > bestMean:
			best.move = m
			bestMean = mean
		}
	}
	if best.score == game.MinScore {
		panic("expectimax: no movement improved on the sentinel score")
	}
	if averaging {
		best.mean = sum / float64(count)
	} else {
		best.mean = float64(best.score)
	}
	return best
}
