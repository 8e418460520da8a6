package cli

import (
	"fmt"

	"blobwar/experiments"
	"blobwar/experiments/metrics"
	"blobwar/game"
	"blobwar/searcher"
	"blobwar/searcher/agent"

	"github.com/spf13/cobra"
)

func newBenchCmd(cfg *Config) *cobra.Command {
	var (
		depth      uint8
		games      int
		out        string
		strategies []string
		positions  int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every strategy against every other and store the results as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := cfg.LoadBoard()
			if err != nil {
				return err
			}
			if len(strategies) == 0 {
				strategies = defaultBench(depth)
			}

			configs, matchUps := experiments.RoundRobin(strategies)
			e := experiments.Experiment{
				Name:     "round_robin",
				Board:    board,
				Configs:  configs,
				MatchUps: matchUps,
				Games:    games,
				Build: func(spec string) (searcher.Strategy, error) {
					return newStrategy(spec, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
				},
			}
			results, err := e.Run()
			if err != nil {
				return err
			}
			dir, err := e.Write(out, results)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-4s %-24s %6s %6s %6s %12s %10s\n", "id", "strategy", "wins", "losses", "ties", "nodes/move", "ms/move")
			for _, s := range results.Summaries {
				fmt.Fprintf(w, "%-4d %-24s %6d %6d %6d %12.1f %10.3f\n",
					s.Agent.ID, s.Agent.Spec, s.Wins, s.Losses, s.Ties, s.MeanNodes, s.MeanMillis)
			}
			fmt.Fprintf(w, "results in %s\n", dir)

			if positions == 0 {
				return nil
			}
			return writeEffort(cmd, out, board, positions, depth)
		},
	}
	cmd.Flags().Uint8Var(&depth, "depth", 3, "Depth of the default strategies")
	cmd.Flags().IntVar(&games, "games", experiments.NumGames, "Games per match up")
	cmd.Flags().StringVar(&out, "out", "results", "Directory of the CSV files")
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Strategies to compare (default: every search at --depth)")
	cmd.Flags().IntVar(&positions, "effort", 0, "Also compare the search effort of each algorithm on this many positions")
	return cmd
}

var searches = []string{"minmax", "alphabeta", "sorted", "memo", "parallel"}

func defaultBench(depth uint8) []string {
	specs := []string{"random", "greedy"}
	for _, name := range searches {
		specs = append(specs, fmt.Sprintf("%s:%d", name, depth))
	}
	return specs
}

// writeEffort measures the fixed depth searches on the first positions of a
// greedy game.
func writeEffort(cmd *cobra.Command, out string, board *game.Board, positions int, depth uint8) error {
	var searchers []searcher.Searcher
	for _, name := range searches {
		s, err := agent.Parse(fmt.Sprintf("%s:%d", name, depth))
		if err != nil {
			return err
		}
		searchers = append(searchers, s)
	}
	results := experiments.Effort(experiments.Positions(board, positions), searchers)

	writer, err := metrics.NewWriter(out, "effort")
	if err != nil {
		return err
	}
	if err := writer.WriteSearchMetrics("effort.csv", results); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "search effort in %s\n", writer.Dir())
	return nil
}
