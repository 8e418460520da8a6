package game

import (
	"fmt"
	"strings"
)

// Board is the static part of a game: which cells are in play, the initial
// blobs, and the precomputed neighbourhoods of every cell. A Board never
// changes once built and is shared by every Configuration of a game.
type Board struct {
	playable  Bitset
	initial   [2]Bitset
	adjacent  [Cells]Bitset // in-play cells at distance 1, targets of duplications
	reachable [Cells]Bitset // in-play cells at distance 2, targets of relocations
}

// NewBoard builds a board from its in-play cells and the initial blobs of
// each player.
func NewBoard(playable, red, blue Bitset) (*Board, error) {
	if red&blue != 0 {
		return nil, fmt.Errorf("%w: players share cells", ErrInvalidBoard)
	}
	if (red|blue)&^playable != 0 {
		return nil, fmt.Errorf("%w: blobs outside of play", ErrInvalidBoard)
	}
	b := &Board{
		playable: playable,
		initial:  [2]Bitset{red, blue},
	}
	for c := range playable.All() {
		for other := range playable.All() {
			switch distance(c, other) {
			case 1:
				b.adjacent[c] = b.adjacent[c].Set(other)
			case 2:
				b.reachable[c] = b.reachable[c].Set(other)
			}
		}
	}
	return b, nil
}

// DefaultBoard is the full 8x8 grid with each player holding two opposite
// corners.
func DefaultBoard() *Board {
	var playable Bitset = 1<<Cells - 1
	red := Bitset(0).Set(At(0, 0)).Set(At(Width-1, Height-1))
	blue := Bitset(0).Set(At(Width-1, 0)).Set(At(0, Height-1))
	b, err := NewBoard(playable, red, blue)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Playable() Bitset {
	return b.playable
}

// Initial returns the blobs a player starts with.
func (b *Board) Initial(p Player) Bitset {
	return b.initial[p]
}

// Adjacent returns the in-play cells a duplication from c can target.
func (b *Board) Adjacent(c Cell) Bitset {
	return b.adjacent[c]
}

// Reachable returns the in-play cells a relocation from c can target.
func (b *Board) Reachable(c Cell) Bitset {
	return b.reachable[c]
}

// String renders the board with its initial blobs.
func (b *Board) String() string {
	return render(b, b.initial)
}

// distance is the Chebyshev (king move) distance between two cells.
func distance(a, b Cell) int {
	return max(abs(a.X()-b.X()), abs(a.Y()-b.Y()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func render(b *Board, blobs [2]Bitset) string {
	var sb strings.Builder
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := At(x, y)
			switch {
			case blobs[Red].Has(c):
				sb.WriteByte(Red.Symbol())
			case blobs[Blue].Has(c):
				sb.WriteByte(Blue.Symbol())
			case b.playable.Has(c):
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
