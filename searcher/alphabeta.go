package searcher

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"blobwar/experiments/metrics"
	"blobwar/game"
)

// AlphaBeta is MinMax with alpha-beta pruning: it returns the same score and,
// as it tries movements in generation order, the same movement.
type AlphaBeta struct {
	Depth uint8
}

func (s AlphaBeta) String() string {
	return fmt.Sprintf("Alpha - Beta (max level: %d)", s.Depth)
}

func (s AlphaBeta) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s AlphaBeta) Search(state game.Configuration, collector metrics.Collector) Result {
	ab := alphaBeta{collector: collector}
	return ab.root(s.Depth, state)
}

// SortedAlphaBeta tries the movements with the best immediate value first so
// that cut-offs happen earlier. Among equally scored movements it may pick a
// different one than AlphaBeta.
type SortedAlphaBeta struct {
	Depth uint8
}

func (s SortedAlphaBeta) String() string {
	return fmt.Sprintf("Sorted Alpha - Beta (max level: %d)", s.Depth)
}

func (s SortedAlphaBeta) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s SortedAlphaBeta) Search(state game.Configuration, collector metrics.Collector) Result {
	ab := alphaBeta{sorted: true, collector: collector}
	return ab.root(s.Depth, state)
}

// MemoAlphaBeta remembers the scores of the configurations it has searched.
// With a nil Memo every call starts from an empty one; a caller provided Memo
// is kept between calls and must only be used with a single board.
type MemoAlphaBeta struct {
	Depth uint8
	Memo  *Memo
}

func (s MemoAlphaBeta) String() string {
	return fmt.Sprintf("Memoized Alpha - Beta (max level: %d)", s.Depth)
}

func (s MemoAlphaBeta) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	return search(s, state)
}

func (s MemoAlphaBeta) Search(state game.Configuration, collector metrics.Collector) Result {
	memo := s.Memo
	if memo == nil {
		memo = NewMemo()
	}
	ab := alphaBeta{sorted: true, memo: memo, collector: collector}
	return ab.root(s.Depth, state)
}

type alphaBeta struct {
	sorted    bool
	memo      *Memo
	collector metrics.Collector
}

func (ab *alphaBeta) root(depth uint8, state game.Configuration) Result {
	score, move, found := ab.search(depth, state, initialAlpha, initialBeta)
	return Result{Score: score, Move: move, Found: found}
}

// search returns the score of state within the (alpha, beta) window: a score
// at or below alpha is an upper bound of the real score, one at or above
// beta a lower bound.
func (ab *alphaBeta) search(depth uint8, state game.Configuration, alpha, beta game.Score) (game.Score, game.Movement, bool) {
	ab.collector.AddNode()
	if depth == 0 || state.GameOver() {
		ab.collector.AddLeaf()
		return state.Value(), game.Movement{}, false
	}
	if !state.CanMove() { // Forced pass
		score, _, _ := ab.search(depth-1, state.Pass(), -beta, -alpha)
		return -score, game.Movement{}, false
	}

	var key game.Key
	if ab.memo != nil {
		key = state.Serialize()
		if e, ok := ab.memo.lookup(key, depth); ok && e.usable(alpha, beta) {
			ab.collector.AddMemoHit()
			return e.score, e.move, true
		}
	}

	originalAlpha := alpha
	best := game.MinScore
	var bestMove game.Movement
	for m := range ab.movements(state) {
		score, _, _ := ab.search(depth-1, state.Play(m), -beta, -alpha)
		if -score > best {
			best = -score
			bestMove = m
			alpha = max(alpha, best)
		}
		if alpha >= beta {
			ab.collector.AddCutoff()
			break
		}
	}
	if best == game.MinScore {
		panic("alpha-beta: no movement improved on the sentinel score")
	}

	if ab.memo != nil {
		ab.memo.store(key, depth, entry{
			score: best,
			move:  bestMove,
			bound: boundOf(best, originalAlpha, beta),
		})
	}
	return best, bestMove, true
}

func (ab *alphaBeta) movements(state game.Configuration) iter.Seq[game.Movement] {
	if !ab.sorted {
		return state.Movements()
	}
	return slices.Values(sortByValue(state))
}

// sortByValue orders the movements by the value they leave for the mover,
// best first, keeping generation order between equals.
func sortByValue(state game.Configuration) []game.Movement {
	type scored struct {
		move  game.Movement
		score game.Score
	}
	var candidates []scored
	for m := range state.Movements() {
		candidates = append(candidates, scored{move: m, score: -state.Play(m).Value()})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	moves := make([]game.Movement, len(candidates))
	for i, c := range candidates {
		moves[i] = c.move
	}
	return moves
}
