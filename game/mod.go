package game

import (
	"errors"
	"math"
)

// Player identifies one of the two sides. Red always starts unless the
// position says otherwise.
type Player uint8

const (
	Red Player = iota
	Blue
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == Red {
		return "red"
	}
	return "blue"
}

// Symbol is the character used for the player's blobs in board files.
func (p Player) Symbol() byte {
	if p == Red {
		return 'R'
	}
	return 'B'
}

// Score is a position evaluation from the perspective of the player to move.
type Score int8

const (
	// MinScore marks a score that was never reached. It must not be negated.
	MinScore Score = math.MinInt8
	MaxScore Score = math.MaxInt8
)

var (
	ErrInvalidBoard    = errors.New("invalid board")
	ErrInvalidKey      = errors.New("invalid configuration key")
	ErrIllegalMovement = errors.New("illegal movement")
)
