package gamemaster

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"blobwar/communication"
	"blobwar/game"
	"blobwar/searcher"
	"blobwar/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Worker is the child process side of a Deepening movement. It reads a
// configuration, deepens its search until killed and publishes the best
// movement of every finished depth to a channel.
type Worker struct {
	Segment   string // segment file, or the key when RedisURL is set
	RedisURL  string
	Algorithm string
	MaxDepth  uint8 // zero for the default
}

// Args are the command line arguments starting the worker.
func (w Worker) Args() []string {
	args := []string{"anytime", "--segment", w.Segment, "--algorithm", w.Algorithm}
	if w.RedisURL != "" {
		args = append(args, "--redis", w.RedisURL)
	}
	if w.MaxDepth > 0 {
		args = append(args, "--max-depth", strconv.Itoa(int(w.MaxDepth)))
	}
	return args
}

func (w Worker) Run(ctx context.Context, in io.Reader) error {
	state, err := game.ParseConfiguration(in)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	algorithm := w.Algorithm
	if algorithm == "" {
		algorithm = "alphabeta"
	}
	deepener, err := agent.Deepener(algorithm)
	if err != nil {
		return err
	}

	channel, err := w.connect()
	if err != nil {
		return err
	}
	defer channel.Close()

	log.Debug().Str("segment", w.Segment).Str("algorithm", algorithm).Msg("anytime search started")
	return searcher.Anytime(ctx, state, channel,
		searcher.WithDeepener(deepener),
		searcher.WithMaxDepth(w.MaxDepth))
}

func (w Worker) connect() (communication.Channel, error) {
	if w.RedisURL != "" {
		return communication.DialRedis(w.RedisURL, w.Segment)
	}
	return communication.Connect(w.Segment)
}
