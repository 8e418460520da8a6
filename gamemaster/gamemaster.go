package gamemaster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"time"

	"blobwar/communication"
	"blobwar/game"
	"blobwar/meta"
	"blobwar/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNoBudget = errors.New("deepening needs a positive time budget")

// Deepening is a strategy with a time budget instead of a depth. For each
// movement it starts an anytime Worker in a child process, kills it when the
// budget is spent and plays the last movement the worker published.
type Deepening struct {
	Budget    time.Duration
	Algorithm string

	// Command is the worker executable followed by its leading arguments.
	// It defaults to the running executable.
	Command []string
	// Env is added to the environment of the worker.
	Env []string

	// Dir holds the shared memory segments; empty for the default.
	Dir string
	// RedisURL replaces shared memory with a Redis channel when set.
	RedisURL string
}

func (d Deepening) String() string {
	return fmt.Sprintf("Iterative deepening %s (%v)", d.Algorithm, d.Budget)
}

// ComputeNextMove panics when the worker cannot be run.
func (d Deepening) ComputeNextMove(state game.Configuration) (game.Movement, bool) {
	if !state.CanMove() {
		return game.Movement{}, false
	}
	move, found, err := d.Request(context.Background(), state)
	if err != nil {
		panic(err)
	}
	return move, found
}

// Request runs one worker on state for the budget. When the worker had not
// finished its first depth by then, a greedy movement is played instead.
func (d Deepening) Request(ctx context.Context, state game.Configuration) (game.Movement, bool, error) {
	channel, name, cleanup, err := d.open(ctx)
	if err != nil {
		return game.Movement{}, false, err
	}
	defer cleanup()

	command, err := d.command()
	if err != nil {
		return game.Movement{}, false, err
	}
	text, err := state.MarshalText()
	if err != nil {
		return game.Movement{}, false, err
	}
	worker := Worker{Segment: name, RedisURL: d.RedisURL, Algorithm: d.Algorithm}

	runCtx, cancel := context.WithTimeout(ctx, d.Budget)
	defer cancel()
	cmd := exec.CommandContext(runCtx, command[0], slices.Concat(command[1:], worker.Args())...)
	cmd.Stdin = bytes.NewReader(text)
	cmd.Stderr = os.Stderr
	if len(d.Env) > 0 {
		cmd.Env = append(os.Environ(), d.Env...)
	}

	start := time.Now()
	err = cmd.Run()
	switch {
	case ctx.Err() != nil:
		return game.Movement{}, false, ctx.Err()
	case err != nil && runCtx.Err() == nil:
		// Killed at the deadline is how a worker normally ends.
		return game.Movement{}, false, fmt.Errorf("anytime worker failed: %w", err)
	}

	record, err := channel.Load(ctx)
	if err != nil {
		return game.Movement{}, false, err
	}
	log.Debug().Uint32("depth", record.Seq).Dur("elapsed", time.Since(start)).Msg("anytime search stopped")
	if !record.Published() {
		log.Warn().Msgf("no movement published within %v, playing greedy", d.Budget)
		move, found := searcher.Greedy{}.ComputeNextMove(state)
		return move, found, nil
	}
	move, found := record.Next()
	return move, found, nil
}

// open creates an empty channel for one worker and returns its name.
func (d Deepening) open(ctx context.Context) (communication.Channel, string, func(), error) {
	if d.RedisURL != "" {
		channel, err := communication.DialRedis(d.RedisURL, meta.SegmentPrefix+uuid.NewString())
		if err != nil {
			return nil, "", nil, err
		}
		if err := channel.Reset(ctx); err != nil {
			channel.Close()
			return nil, "", nil, err
		}
		cleanup := func() {
			if err := channel.Reset(context.Background()); err != nil {
				log.Warn().Err(err).Msg("failed to delete channel")
			}
			channel.Close()
		}
		return channel, channel.Key(), cleanup, nil
	}

	segment, err := communication.Create(communication.NewSegmentPath(d.Dir))
	if err != nil {
		return nil, "", nil, err
	}
	cleanup := func() {
		segment.Close()
		if err := segment.Remove(); err != nil {
			log.Warn().Err(err).Msg("failed to remove segment")
		}
	}
	return segment, segment.Path(), cleanup, nil
}

func (d Deepening) command() ([]string, error) {
	if len(d.Command) > 0 {
		return d.Command, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to find worker executable: %w", err)
	}
	return []string{exe}, nil
}

// Validate reports configuration errors before a game starts.
func (d Deepening) Validate() error {
	if d.Budget <= 0 {
		return ErrNoBudget
	}
	return nil
}
