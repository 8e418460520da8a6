//go:build unix

package communication

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"blobwar/game"

	"github.com/stretchr/testify/require"
)

var (
	m1 = game.Movement{Kind: game.Duplicate, From: game.At(0, 0), To: game.At(1, 1)}
	m2 = game.Movement{Kind: game.Relocate, From: game.At(7, 7), To: game.At(5, 6)}
)

func TestSegment(t *testing.T) {
	ctx := context.Background()

	t.Run("reader sees the last of several stores", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slot")
		writer, err := Create(path)
		require.NoError(t, err)
		defer writer.Close()

		require.NoError(t, writer.Store(ctx, m1, true))
		require.NoError(t, writer.Store(ctx, game.Movement{}, false))
		require.NoError(t, writer.Store(ctx, m2, true))

		reader, err := Connect(path)
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, Record{Seq: 3, Move: m2, Found: true}, got)
	})

	t.Run("reader between stores sees the first", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slot")
		writer, err := Create(path)
		require.NoError(t, err)
		defer writer.Close()
		require.NoError(t, writer.Store(ctx, m1, true))

		reader, err := Connect(path)
		require.NoError(t, err)
		defer reader.Close()
		got, err := reader.Load(ctx)
		require.NoError(t, err)
		move, ok := got.Next()
		require.True(t, ok)
		require.Equal(t, m1, move)

		require.NoError(t, writer.Store(ctx, game.Movement{}, false))
		got, err = reader.Load(ctx)
		require.NoError(t, err)
		require.True(t, got.Published())
		_, ok = got.Next()
		require.False(t, ok, "A published pass carries no movement")
	})

	t.Run("nothing published on a new segment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slot")
		reader, err := Connect(path)
		require.NoError(t, err)
		defer reader.Close()

		got, err := reader.Load(ctx)
		require.NoError(t, err)
		require.False(t, got.Published())
	})

	t.Run("create clears a previous search", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slot")
		old, err := Create(path)
		require.NoError(t, err)
		require.NoError(t, old.Store(ctx, m1, true))
		require.NoError(t, old.Close())

		fresh, err := Create(path)
		require.NoError(t, err)
		defer fresh.Close()
		got, err := fresh.Load(ctx)
		require.NoError(t, err)
		require.False(t, got.Published())
		require.NoError(t, fresh.Remove())
	})

	t.Run("concurrent reads never see a torn record", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slot")
		writer, err := Create(path)
		require.NoError(t, err)
		defer writer.Close()
		reader, err := Connect(path)
		require.NoError(t, err)
		defer reader.Close()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if i%2 == 0 {
					_ = writer.Store(ctx, m1, true)
				} else {
					_ = writer.Store(ctx, m2, true)
				}
			}
		}()
		for i := 0; i < 2000; i++ {
			got, err := reader.Load(ctx)
			require.NoError(t, err)
			if got.Published() {
				require.Contains(t, []game.Movement{m1, m2}, got.Move)
			}
		}
		wg.Wait()
	})

	t.Run("closed segment", func(t *testing.T) {
		segment, err := Create(filepath.Join(t.TempDir(), "slot"))
		require.NoError(t, err)
		require.NoError(t, segment.Close())
		require.NoError(t, segment.Close(), "Closing twice is harmless")

		require.ErrorIs(t, segment.Store(ctx, m1, true), ErrClosed)
		_, err = segment.Load(ctx)
		require.ErrorIs(t, err, ErrClosed)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Connect(filepath.Join(t.TempDir(), "missing", "slot"))
		require.Error(t, err)
	})
}

func TestRecordEncoding(t *testing.T) {
	records := []Record{
		{},
		{Seq: 1, Found: false},
		{Seq: 42, Move: m1, Found: true},
		{Seq: 1<<32 - 1, Move: m2, Found: true},
	}
	for _, r := range records {
		require.Equal(t, r, decode(encode(r)))
	}
}

func TestNewSegmentPath(t *testing.T) {
	dir := t.TempDir()
	first, second := NewSegmentPath(dir), NewSegmentPath(dir)
	require.NotEqual(t, first, second)
	require.Equal(t, dir, filepath.Dir(first))
	require.NotEmpty(t, NewSegmentPath(""))
}
