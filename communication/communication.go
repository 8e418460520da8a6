package communication

import (
	"context"
	"errors"

	"blobwar/game"
)

var ErrUnsupported = errors.New("shared memory is not supported on this platform")

var ErrClosed = errors.New("channel is closed")

// Channel is a single slot holding the latest movement published by an
// anytime search. Each Store overwrites the previous value and a Load always
// returns a complete record: either nothing published yet or the last store.
// One process writes, any number read.
type Channel interface {
	Store(ctx context.Context, move game.Movement, found bool) error
	Load(ctx context.Context) (Record, error)
	Close() error
}

// Record is the content of a channel.
type Record struct {
	Seq   uint32 // number of stores so far, zero if nothing was published
	Move  game.Movement
	Found bool // false when the search had no movement to play
}

func (r Record) Published() bool {
	return r.Seq > 0
}

// Next returns the published movement, if any.
func (r Record) Next() (game.Movement, bool) {
	return r.Move, r.Published() && r.Found
}

// A record fits in one 64-bit word so it can be written atomically:
// bits 0-31 sequence, bit 32 found, bit 33 kind, bits 40-47 source and
// bits 48-55 destination.
func encode(r Record) uint64 {
	w := uint64(r.Seq)
	if r.Found {
		w |= 1 << 32
	}
	w |= uint64(r.Move.Kind&1) << 33
	w |= uint64(r.Move.From) << 40
	w |= uint64(r.Move.To) << 48
	return w
}

func decode(w uint64) Record {
	return Record{
		Seq:   uint32(w),
		Found: w&(1<<32) != 0,
		Move: game.Movement{
			Kind: game.MoveKind(w >> 33 & 1),
			From: game.Cell(w >> 40),
			To:   game.Cell(w >> 48),
		},
	}
}
