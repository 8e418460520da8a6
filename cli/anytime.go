package cli

import (
	"blobwar/gamemaster"

	"github.com/spf13/cobra"
)

func newAnytimeCmd(cfg *Config) *cobra.Command {
	var (
		w        gamemaster.Worker
		maxDepth uint8
	)
	cmd := &cobra.Command{
		Use:   "anytime",
		Short: "Deepen a search until killed, publishing each finished depth",
		Long: `anytime reads a position from standard input and searches it one depth
at a time, storing the best movement of every finished depth in a shared
memory segment (or a Redis key with --redis). It is started and killed by
deepening strategies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w.RedisURL = cfg.RedisURL
			w.MaxDepth = maxDepth
			return w.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().StringVar(&w.Segment, "segment", "", "Segment file, or key with --redis")
	cmd.Flags().StringVar(&w.Algorithm, "algorithm", "alphabeta", "Search of each depth: minmax, expectimax, alphabeta, sorted, memo, parallel")
	cmd.Flags().Uint8Var(&maxDepth, "max-depth", 0, "Last depth searched, 0 for the default")
	_ = cmd.MarkFlagRequired("segment")
	return cmd
}
