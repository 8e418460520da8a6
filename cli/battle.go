package cli

import (
	"fmt"

	"blobwar/engine"
	"blobwar/game"
	"blobwar/meta"

	"github.com/spf13/cobra"
)

func newBattleCmd(cfg *Config) *cobra.Command {
	var (
		red, blue string
		maxTurns  int
	)
	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Play one game between two strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := cfg.LoadBoard()
			if err != nil {
				return err
			}
			redStrategy, err := newStrategy(red, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			blueStrategy, err := newStrategy(blue, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			e := engine.LocalEngine(game.NewConfiguration(board), redStrategy, blueStrategy)
			e.MaxTurns = maxTurns
			outcome, gameMetric, _ := e.Run()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, outcome.Final)
			fmt.Fprintf(out, "%v after %d turns (red %d, blue %d) in %v\n",
				outcome, outcome.Turns, gameMetric.RedBlobs, gameMetric.BlueBlobs, gameMetric.Duration)
			return nil
		},
	}
	cmd.Flags().StringVar(&red, "red", "human", "Strategy of red")
	cmd.Flags().StringVar(&blue, "blue", fmt.Sprintf("alphabeta:%d", meta.DefaultDepth), "Strategy of blue")
	cmd.Flags().IntVar(&maxTurns, "max-turns", meta.MaxTurns, "Stop the game after this many turns")
	return cmd
}
