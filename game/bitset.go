package game

import (
	"fmt"
	"iter"
	"math/bits"
)

const (
	Width  = 8
	Height = 8
	// Cells is the number of cells on the grid, one bit each.
	Cells = Width * Height
)

// Cell is a grid index, y*Width+x.
type Cell uint8

// At returns the cell at column x and row y.
func At(x, y int) Cell {
	return Cell(y*Width + x)
}

func (c Cell) X() int { return int(c) % Width }
func (c Cell) Y() int { return int(c) / Width }

// String renders the cell in algebraic notation (a1 is the top left corner).
func (c Cell) String() string {
	return fmt.Sprintf("%c%d", 'a'+c.X(), c.Y()+1)
}

// ParseCell reads a cell in algebraic notation.
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] >= 'a'+Width || s[1] < '1' || s[1] >= '1'+Height {
		return 0, fmt.Errorf("invalid cell %q", s)
	}
	return At(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Bitset is a set of cells.
type Bitset uint64

func (b Bitset) Has(c Cell) bool {
	return b&(1<<c) != 0
}

func (b Bitset) Set(c Cell) Bitset {
	return b | 1<<c
}

func (b Bitset) Clear(c Cell) Bitset {
	return b &^ (1 << c)
}

func (b Bitset) Count() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitset) Empty() bool {
	return b == 0
}

// First returns the lowest cell of a non-empty set.
func (b Bitset) First() Cell {
	return Cell(bits.TrailingZeros64(uint64(b)))
}

// All yields the cells of the set in ascending order.
func (b Bitset) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for rest := b; rest != 0; rest &= rest - 1 {
			if !yield(rest.First()) {
				return
			}
		}
	}
}
