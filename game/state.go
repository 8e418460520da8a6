package game

import (
	"fmt"
	"iter"
	"slices"
)

// Configuration is the dynamic state of a game: who owns which cells and
// whose turn it is. It is a small value; Play returns a new Configuration
// and never modifies the receiver, so search explores positions by copy.
type Configuration struct {
	board   *Board
	blobs   [2]Bitset
	current Player
}

// NewConfiguration returns the starting position of a board, red to move.
func NewConfiguration(b *Board) Configuration {
	return Configuration{
		board:   b,
		blobs:   b.initial,
		current: Red,
	}
}

func (c Configuration) Board() *Board {
	return c.board
}

// Player returns the player to move.
func (c Configuration) Player() Player {
	return c.current
}

// Blobs returns the cells owned by p.
func (c Configuration) Blobs(p Player) Bitset {
	return c.blobs[p]
}

// Counts returns the number of blobs of each player.
func (c Configuration) Counts() (red, blue int) {
	return c.blobs[Red].Count(), c.blobs[Blue].Count()
}

// Free returns the empty in-play cells.
func (c Configuration) Free() Bitset {
	return c.board.playable &^ (c.blobs[Red] | c.blobs[Blue])
}

// Movements yields every legal movement of the player to move in board
// index order, duplications before relocations: first one duplication per
// reachable empty cell by ascending target cell, then every relocation by
// ascending source and then destination cell. Searchers keep the first of
// equally scored movements, so this order is their tie-break. The sequence
// is recomputed on each iteration.
func (c Configuration) Movements() iter.Seq[Movement] {
	return func(yield func(Movement) bool) {
		mine := c.blobs[c.current]
		free := c.Free()
		for to := range free.All() {
			sources := c.board.adjacent[to] & mine
			if sources.Empty() {
				continue
			}
			if !yield(Movement{Kind: Duplicate, From: sources.First(), To: to}) {
				return
			}
		}
		for from := range mine.All() {
			for to := range (c.board.reachable[from] & free).All() {
				if !yield(Movement{Kind: Relocate, From: from, To: to}) {
					return
				}
			}
		}
	}
}

// MovementList collects Movements.
func (c Configuration) MovementList() []Movement {
	return slices.Collect(c.Movements())
}

// CanMove reports whether the player to move has at least one movement.
func (c Configuration) CanMove() bool {
	return c.canMove(c.current)
}

func (c Configuration) canMove(p Player) bool {
	free := c.Free()
	for from := range c.blobs[p].All() {
		if (c.board.adjacent[from]|c.board.reachable[from])&free != 0 {
			return true
		}
	}
	return false
}

// GameOver reports whether the game has ended: a player lost all its blobs,
// the board is full, or neither player can move. A player that merely
// cannot move while its opponent can has to pass; the game goes on.
func (c Configuration) GameOver() bool {
	if c.blobs[Red].Empty() || c.blobs[Blue].Empty() || c.Free().Empty() {
		return true
	}
	return !c.canMove(Red) && !c.canMove(Blue)
}

// Legal reports whether m can be played in this configuration.
func (c Configuration) Legal(m Movement) bool {
	if !c.blobs[c.current].Has(m.From) || !c.Free().Has(m.To) {
		return false
	}
	switch m.Kind {
	case Duplicate:
		return c.board.adjacent[m.From].Has(m.To)
	case Relocate:
		return c.board.reachable[m.From].Has(m.To)
	}
	return false
}

// Play returns the configuration after m, with the turn passed to the
// opponent. Every opponent blob next to the destination changes sides.
// Play panics if m is not legal.
func (c Configuration) Play(m Movement) Configuration {
	if !c.Legal(m) {
		panic(fmt.Sprintf("%v: %v by %v", ErrIllegalMovement, m, c.current))
	}
	me, opp := c.current, c.current.Opponent()
	next := c
	if m.Kind == Relocate {
		next.blobs[me] = next.blobs[me].Clear(m.From)
	}
	captured := c.board.adjacent[m.To] & c.blobs[opp]
	next.blobs[me] = next.blobs[me].Set(m.To) | captured
	next.blobs[opp] &^= captured
	next.current = opp
	return next
}

// Pass hands the turn to the opponent without moving.
func (c Configuration) Pass() Configuration {
	next := c
	next.current = c.current.Opponent()
	return next
}

// Value is the blob difference from the point of view of the player to move.
func (c Configuration) Value() Score {
	return Score(c.blobs[c.current].Count() - c.blobs[c.current.Opponent()].Count())
}

// Winner returns the player with more blobs; false on a tie.
func (c Configuration) Winner() (Player, bool) {
	red, blue := c.Counts()
	switch {
	case red > blue:
		return Red, true
	case blue > red:
		return Blue, true
	}
	return Red, false
}

func (c Configuration) String() string {
	text, _ := c.MarshalText()
	return string(text)
}
