//go:build unix

package communication

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"blobwar/game"

	"golang.org/x/sys/unix"
)

const segmentSize = 8

// Segment is a Channel backed by a memory mapped file, typically under
// /dev/shm, shared by the supervisor and the anytime worker processes.
type Segment struct {
	path string
	data []byte
	word *atomic.Uint64
}

// Create makes a new empty segment, clearing any previous content. The
// supervisor calls it before starting a worker.
func Create(path string) (*Segment, error) {
	return open(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC)
}

// Connect attaches to the segment at path, creating it if needed.
func Connect(path string) (*Segment, error) {
	return open(path, os.O_RDWR|os.O_CREATE)
}

func open(path string, flag int) (*Segment, error) {
	f, err := os.OpenFile(path, flag, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open segment %s: %w", path, err)
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat segment %s: %w", path, err)
	}
	if info.Size() < segmentSize {
		if err := f.Truncate(segmentSize); err != nil {
			return nil, fmt.Errorf("failed to size segment %s: %w", path, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, segmentSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map segment %s: %w", path, err)
	}
	return &Segment{
		path: path,
		data: data,
		// Mappings are page aligned, which satisfies 64-bit atomics.
		word: (*atomic.Uint64)(unsafe.Pointer(&data[0])),
	}, nil
}

func (s *Segment) Path() string {
	return s.path
}

func (s *Segment) Store(ctx context.Context, move game.Movement, found bool) error {
	if s.word == nil {
		return ErrClosed
	}
	seq := decode(s.word.Load()).Seq + 1
	s.word.Store(encode(Record{Seq: seq, Move: move, Found: found}))
	return nil
}

func (s *Segment) Load(ctx context.Context) (Record, error) {
	if s.word == nil {
		return Record{}, ErrClosed
	}
	return decode(s.word.Load()), nil
}

// Close unmaps the segment. The file stays until Remove.
func (s *Segment) Close() error {
	if s.data == nil {
		return nil
	}
	err := unix.Munmap(s.data)
	s.data, s.word = nil, nil
	if err != nil {
		return fmt.Errorf("failed to unmap segment %s: %w", s.path, err)
	}
	return nil
}

// Remove deletes the file backing the segment.
func (s *Segment) Remove() error {
	return os.Remove(s.path)
}
