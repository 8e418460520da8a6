package game

import (
	"fmt"
	"strings"
)

type MoveKind uint8

const (
	// Duplicate keeps the source blob and adds one on an adjacent cell.
	Duplicate MoveKind = iota
	// Relocate moves the source blob to a cell two steps away.
	Relocate
)

// Movement is one action of the player to move.
type Movement struct {
	Kind MoveKind
	From Cell
	To   Cell
}

// String renders duplications as "a1+b2" and relocations as "a1-c3".
func (m Movement) String() string {
	sep := "+"
	if m.Kind == Relocate {
		sep = "-"
	}
	return m.From.String() + sep + m.To.String()
}

// ParseMovement reads the notation produced by Movement.String.
func ParseMovement(s string) (Movement, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 {
		return Movement{}, fmt.Errorf("invalid movement %q", s)
	}
	var kind MoveKind
	switch s[2] {
	case '+':
		kind = Duplicate
	case '-':
		kind = Relocate
	default:
		return Movement{}, fmt.Errorf("invalid movement %q: unknown separator %q", s, s[2])
	}
	from, err := ParseCell(s[:2])
	if err != nil {
		return Movement{}, fmt.Errorf("invalid movement %q: %w", s, err)
	}
	to, err := ParseCell(s[3:])
	if err != nil {
		return Movement{}, fmt.Errorf("invalid movement %q: %w", s, err)
	}
	return Movement{Kind: kind, From: from, To: to}, nil
}
