package agent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"blobwar/meta"
	"blobwar/searcher"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Parse builds a searcher from a name with an optional depth, such as
// "greedy", "minmax:3" or "parallel:4". "random" takes a seed instead of a
// depth and "parallel" a worker limit after the depth. "mcts" takes a number
// of episodes or a duration, then a number of goroutines.
func Parse(spec string) (searcher.Searcher, error) {
	name, args, _ := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	switch name {
	case "greedy":
		return searcher.Greedy{}, nil
	case "random":
		if args == "" {
			return searcher.Random{}, nil
		}
		seed, err := strconv.ParseUint(args, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed in %q: %w", spec, err)
		}
		return searcher.NewRandom(seed), nil
	case "parallel":
		depthArg, workersArg, _ := strings.Cut(args, ":")
		depth, err := parseDepth(spec, depthArg)
		if err != nil {
			return nil, err
		}
		workers := 0
		if workersArg != "" {
			if workers, err = strconv.Atoi(workersArg); err != nil || workers < 0 {
				return nil, fmt.Errorf("invalid worker count in %q", spec)
			}
		}
		return searcher.ParallelAlphaBeta{Depth: depth, Workers: workers}, nil
	case "memo":
		depth, err := parseDepth(spec, args)
		if err != nil {
			return nil, err
		}
		return searcher.MemoAlphaBeta{Depth: depth}, nil // A fresh table per movement
	case "mcts":
		return parseMCTS(spec, args)
	}

	deepener, err := Deepener(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec)
	}
	depth, err := parseDepth(spec, args)
	if err != nil {
		return nil, err
	}
	return deepener(depth), nil
}

// Deepener returns the fixed depth searches of a family of algorithms.
func Deepener(algorithm string) (searcher.Deepener, error) {
	switch algorithm {
	case "minmax":
		return func(depth uint8) searcher.Searcher { return searcher.MinMax{Depth: depth} }, nil
	case "expectimax":
		return func(depth uint8) searcher.Searcher { return searcher.Expectimax{Depth: depth} }, nil
	case "alphabeta":
		return func(depth uint8) searcher.Searcher { return searcher.AlphaBeta{Depth: depth} }, nil
	case "sorted":
		return func(depth uint8) searcher.Searcher { return searcher.SortedAlphaBeta{Depth: depth} }, nil
	case "memo":
		// One table for every iteration; shallower results seed the deeper ones.
		memo := searcher.NewMemo()
		return func(depth uint8) searcher.Searcher { return searcher.MemoAlphaBeta{Depth: depth, Memo: memo} }, nil
	case "parallel":
		return func(depth uint8) searcher.Searcher { return searcher.ParallelAlphaBeta{Depth: depth} }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, algorithm)
}

const (
	DefaultEpisodes   = 1000
	DefaultGoroutines = 4
)

func parseMCTS(spec, args string) (searcher.Searcher, error) {
	budget, goroutinesArg, _ := strings.Cut(args, ":")
	goroutines := DefaultGoroutines
	if goroutinesArg != "" {
		var err error
		if goroutines, err = strconv.Atoi(goroutinesArg); err != nil || goroutines < 1 {
			return nil, fmt.Errorf("invalid goroutine count in %q", spec)
		}
	}
	if budget == "" {
		return searcher.NewMCTS(goroutines, searcher.WithEpisodes(DefaultEpisodes)), nil
	}
	if episodes, err := strconv.Atoi(budget); err == nil && episodes > 0 {
		return searcher.NewMCTS(goroutines, searcher.WithEpisodes(episodes)), nil
	}
	duration, err := time.ParseDuration(budget)
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("invalid episodes or duration in %q", spec)
	}
	return searcher.NewMCTS(goroutines, searcher.WithDuration(duration)), nil
}

func parseDepth(spec, arg string) (uint8, error) {
	if arg == "" {
		return meta.DefaultDepth, nil
	}
	depth, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid depth in %q: %w", spec, err)
	}
	return uint8(depth), nil
}
