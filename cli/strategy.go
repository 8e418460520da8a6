package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"blobwar/gamemaster"
	"blobwar/player"
	"blobwar/searcher"
	"blobwar/searcher/agent"
)

const defaultBudget = time.Second

// newStrategy builds the strategies that need more than a depth before
// handing the rest to the agent registry.
func newStrategy(spec string, cfg *Config, in io.Reader, out io.Writer) (searcher.Strategy, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(spec), ":")
	switch strings.ToLower(name) {
	case "human":
		return player.NewHuman(in, out), nil
	case "deepening":
		algorithm, budget, _ := strings.Cut(args, ":")
		if algorithm == "" {
			algorithm = "alphabeta"
		}
		if _, err := agent.Deepener(algorithm); err != nil {
			return nil, err
		}
		d := gamemaster.Deepening{
			Budget:    defaultBudget,
			Algorithm: algorithm,
			Dir:       cfg.ShmDir,
			RedisURL:  cfg.RedisURL,
		}
		if budget != "" {
			var err error
			if d.Budget, err = time.ParseDuration(budget); err != nil {
				return nil, fmt.Errorf("invalid budget in %q: %w", spec, err)
			}
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		return d, nil
	}
	return agent.Parse(spec)
}
