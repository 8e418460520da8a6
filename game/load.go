package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadBoard reads a puzzle file. See ParseConfiguration for the format.
func LoadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board %s: %w", path, err)
	}
	defer f.Close()

	b, err := ParseBoard(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load board %s: %w", path, err)
	}
	return b, nil
}

// ParseBoard reads a board, ignoring any side-to-move line.
func ParseBoard(r io.Reader) (*Board, error) {
	conf, err := ParseConfiguration(r)
	if err != nil {
		return nil, err
	}
	return conf.board, nil
}

// ParseConfiguration reads a position: Height rows of Width characters where
// '.' is an empty cell, '#' a cell out of play and 'R'/'B' a blob. Blank
// lines and lines starting with ';' are skipped, and an optional "turn: R"
// or "turn: B" line sets the player to move (red by default). The blobs of
// the position become the initial blobs of the returned board.
func ParseConfiguration(r io.Reader) (Configuration, error) {
	var playable, red, blue Bitset
	current := Red
	rows := 0

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		if turn, ok := strings.CutPrefix(text, "turn:"); ok {
			switch strings.TrimSpace(turn) {
			case "R":
				current = Red
			case "B":
				current = Blue
			default:
				return Configuration{}, fmt.Errorf("%w: line %d: unknown player %q", ErrInvalidBoard, line, turn)
			}
			continue
		}
		if rows == Height {
			return Configuration{}, fmt.Errorf("%w: line %d: more than %d rows", ErrInvalidBoard, line, Height)
		}
		if len(text) != Width {
			return Configuration{}, fmt.Errorf("%w: line %d: row has %d cells, want %d", ErrInvalidBoard, line, len(text), Width)
		}
		for x := 0; x < Width; x++ {
			c := At(x, rows)
			switch text[x] {
			case '#':
				continue
			case '.':
			case 'R':
				red = red.Set(c)
			case 'B':
				blue = blue.Set(c)
			default:
				return Configuration{}, fmt.Errorf("%w: line %d: unknown cell %q", ErrInvalidBoard, line, text[x])
			}
			playable = playable.Set(c)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return Configuration{}, fmt.Errorf("failed to read board: %w", err)
	}
	if rows != Height {
		return Configuration{}, fmt.Errorf("%w: %d rows, want %d", ErrInvalidBoard, rows, Height)
	}

	b, err := NewBoard(playable, red, blue)
	if err != nil {
		return Configuration{}, err
	}
	conf := NewConfiguration(b)
	conf.current = current
	return conf, nil
}

// MarshalText encodes the position in the puzzle file format.
func (c Configuration) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%sturn: %c\n", render(c.board, c.blobs), c.current.Symbol())), nil
}
