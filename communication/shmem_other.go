//go:build !unix

package communication

import (
	"context"

	"blobwar/game"
)

type Segment struct{}

func Create(path string) (*Segment, error)  { return nil, ErrUnsupported }
func Connect(path string) (*Segment, error) { return nil, ErrUnsupported }

func (s *Segment) Path() string { return "" }

func (s *Segment) Store(ctx context.Context, move game.Movement, found bool) error {
	return ErrUnsupported
}

func (s *Segment) Load(ctx context.Context) (Record, error) { return Record{}, ErrUnsupported }
func (s *Segment) Close() error                             { return nil }
func (s *Segment) Remove() error                            { return nil }
