package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "blobwar",
		Short: "Blob war engine",
		Long: `blobwar plays Blob war between humans and search strategies.

Strategies are given as name[:depth]: greedy, random, minmax, expectimax,
alphabeta, sorted, memo, parallel[:depth[:workers]], human,
mcts[:episodes|duration[:goroutines]], and deepening[:algorithm[:budget]]
which searches in a child process until its time budget is spent.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cfg.LogLevel)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Board, "board", cfg.Board, "Board file (env: BLOBWAR_BOARD)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: BLOBWAR_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL of the anytime channel (env: BLOBWAR_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.ShmDir, "shm-dir", cfg.ShmDir, "Directory of shared memory segments (env: BLOBWAR_SHM_DIR)")

	// Add subcommands
	rootCmd.AddCommand(newBattleCmd(cfg))
	rootCmd.AddCommand(newAnytimeCmd(cfg))
	rootCmd.AddCommand(newBenchCmd(cfg))
	rootCmd.AddCommand(newMovesCmd(cfg))

	return rootCmd
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(l)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}
