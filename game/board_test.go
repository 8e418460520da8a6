package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardNeighbourhoods(t *testing.T) {
	t.Run("corner of the full grid", func(t *testing.T) {
		b := DefaultBoard()
		require.Equal(t, 3, b.Adjacent(At(0, 0)).Count())
		require.Equal(t, 5, b.Reachable(At(0, 0)).Count())
	})

	t.Run("centre of the full grid", func(t *testing.T) {
		b := DefaultBoard()
		require.Equal(t, 8, b.Adjacent(At(3, 3)).Count())
		require.Equal(t, 16, b.Reachable(At(3, 3)).Count())
	})

	t.Run("holes are never neighbours", func(t *testing.T) {
		playable := Bitset(0).Set(At(0, 0)).Set(At(2, 2))
		b, err := NewBoard(playable, 0, 0)
		require.NoError(t, err)
		require.True(t, b.Adjacent(At(0, 0)).Empty())
		require.Equal(t, Bitset(0).Set(At(2, 2)), b.Reachable(At(0, 0)))
	})

	t.Run("rejects overlapping or out of play blobs", func(t *testing.T) {
		_, err := NewBoard(1, 1, 1)
		require.ErrorIs(t, err, ErrInvalidBoard)
		_, err = NewBoard(1, 2, 0)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestParseConfiguration(t *testing.T) {
	t.Run("round trip through the file format", func(t *testing.T) {
		conf := NewConfiguration(DefaultBoard())
		conf = conf.Play(conf.MovementList()[0])

		text, err := conf.MarshalText()
		require.NoError(t, err)
		parsed, err := ParseConfiguration(strings.NewReader(string(text)))
		require.NoError(t, err)

		require.Equal(t, conf.Serialize(), parsed.Serialize())
		require.Equal(t, conf.Board().Playable(), parsed.Board().Playable())
		require.Equal(t, conf.MovementList(), parsed.MovementList())
	})

	t.Run("skips comments and blank lines", func(t *testing.T) {
		text := "; opening\n\n" + DefaultBoard().String() + "turn: B\n"
		conf, err := ParseConfiguration(strings.NewReader(text))
		require.NoError(t, err)
		require.Equal(t, Blue, conf.Player())
	})

	t.Run("rejects malformed boards", func(t *testing.T) {
		cases := map[string]string{
			"short row":      "R......\n",
			"unknown cell":   strings.Repeat("........\n", 7) + "...X....\n",
			"missing rows":   "........\n",
			"extra rows":     strings.Repeat("........\n", 9),
			"unknown player": strings.Repeat("........\n", 8) + "turn: G\n",
		}
		for name, text := range cases {
			_, err := ParseConfiguration(strings.NewReader(text))
			require.ErrorIs(t, err, ErrInvalidBoard, name)
		}
	})
}

func TestLoadBoard(t *testing.T) {
	t.Run("loading a board file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "holes.txt")
		text := strings.Replace(DefaultBoard().String(), "....", ".##.", 1)
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

		b, err := LoadBoard(path)
		require.NoError(t, err)
		require.Equal(t, Cells-2, b.Playable().Count())
		require.Equal(t, 2, b.Initial(Red).Count())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBoard(filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
