package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a configuration for memoization: two configurations of the
// same board with equal keys are the same search state.
type Key struct {
	Blobs   [2]Bitset
	Current Player
}

// Serialize returns the key of the configuration.
func (c Configuration) Serialize() Key {
	return Key{Blobs: c.blobs, Current: c.current}
}

// String encodes the key as "<red hex>:<blue hex>:<R|B>".
func (k Key) String() string {
	return fmt.Sprintf("%016x:%016x:%c", uint64(k.Blobs[Red]), uint64(k.Blobs[Blue]), k.Current.Symbol())
}

// ParseKey reads the format produced by Key.String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	var k Key
	for i := range 2 {
		v, err := strconv.ParseUint(parts[i], 16, 64)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %q: %w", ErrInvalidKey, s, err)
		}
		k.Blobs[i] = Bitset(v)
	}
	switch parts[2] {
	case "R":
		k.Current = Red
	case "B":
		k.Current = Blue
	default:
		return Key{}, fmt.Errorf("%w: %q: unknown player", ErrInvalidKey, s)
	}
	return k, nil
}

// FromKey rebuilds the configuration of a key on board b.
func FromKey(b *Board, k Key) (Configuration, error) {
	if k.Blobs[Red]&k.Blobs[Blue] != 0 {
		return Configuration{}, fmt.Errorf("%w: players share cells", ErrInvalidKey)
	}
	if (k.Blobs[Red]|k.Blobs[Blue])&^b.playable != 0 {
		return Configuration{}, fmt.Errorf("%w: blobs outside of play", ErrInvalidKey)
	}
	return Configuration{board: b, blobs: k.Blobs, current: k.Current}, nil
}
