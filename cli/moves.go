package cli

import (
	"fmt"
	"os"

	"blobwar/game"

	"github.com/spf13/cobra"
)

func newMovesCmd(cfg *Config) *cobra.Command {
	var position string
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the legal movements of a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadPosition(cfg, position, cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, state)
			fmt.Fprintf(out, "key %v, value %d\n", state.Serialize(), state.Value())
			if state.GameOver() {
				fmt.Fprintln(out, "game over")
				return nil
			}
			moves := state.MovementList()
			if len(moves) == 0 {
				fmt.Fprintf(out, "%v has to pass\n", state.Player())
			}
			for _, m := range moves {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&position, "position", "", `Position file with a "turn:" line, "-" for standard input`)
	return cmd
}

// loadPosition reads a position file, or starts a game on the configured
// board when there is none.
func loadPosition(cfg *Config, position string, cmd *cobra.Command) (game.Configuration, error) {
	switch position {
	case "":
		board, err := cfg.LoadBoard()
		if err != nil {
			return game.Configuration{}, err
		}
		return game.NewConfiguration(board), nil
	case "-":
		return game.ParseConfiguration(cmd.InOrStdin())
	}
	f, err := os.Open(position)
	if err != nil {
		return game.Configuration{}, fmt.Errorf("failed to open position %s: %w", position, err)
	}
	defer f.Close()
	return game.ParseConfiguration(f)
}
