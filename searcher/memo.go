package searcher

import "blobwar/game"

type bound uint8

const (
	exact bound = iota
	lower       // the real score is at least the stored one
	upper       // the real score is at most the stored one
)

type entry struct {
	score game.Score
	move  game.Movement
	bound bound
}

// usable reports whether the entry settles a search within (alpha, beta).
func (e entry) usable(alpha, beta game.Score) bool {
	switch e.bound {
	case exact:
		return true
	case lower:
		return e.score >= beta
	default:
		return e.score <= alpha
	}
}

func boundOf(score, alpha, beta game.Score) bound {
	switch {
	case score <= alpha:
		return upper
	case score >= beta:
		return lower
	}
	return exact
}

type memoKey struct {
	state game.Key
	depth uint8
}

// Memo maps searched configurations to their scores. An entry records the
// remaining depth it was searched to and whether its score is exact or only
// a bound of the window it was searched with, so it is never reused where
// it would change the result. A Memo is not safe for concurrent use.
type Memo struct {
	entries map[memoKey]entry
}

func NewMemo() *Memo {
	return &Memo{entries: make(map[memoKey]entry)}
}

// Len returns the number of remembered configurations.
func (m *Memo) Len() int {
	return len(m.entries)
}

func (m *Memo) Clear() {
	clear(m.entries)
}

func (m *Memo) lookup(key game.Key, depth uint8) (entry, bool) {
	e, ok := m.entries[memoKey{state: key, depth: depth}]
	return e, ok
}

func (m *Memo) store(key game.Key, depth uint8, e entry) {
	m.entries[memoKey{state: key, depth: depth}] = e
}
