package cli

import (
	"os"

	"blobwar/game"
	"blobwar/meta"
)

// Config holds CLI configuration
type Config struct {
	Board    string // board file, empty for the default board
	LogLevel string
	RedisURL string // anytime channel in Redis instead of shared memory
	ShmDir   string // directory of shared memory segments
}

// DefaultConfig returns a Config with default values, overridden by the
// BLOBWAR_* environment variables.
func DefaultConfig() *Config {
	return &Config{
		Board:    os.Getenv(meta.EnvBoard),
		LogLevel: getEnvOrDefault(meta.EnvLogLevel, "info"),
		RedisURL: os.Getenv(meta.EnvRedisURL),
		ShmDir:   os.Getenv(meta.EnvShmDir),
	}
}

// LoadBoard reads the configured board file, or returns the default board.
func (c *Config) LoadBoard() (*game.Board, error) {
	if c.Board == "" {
		return game.DefaultBoard(), nil
	}
	return game.LoadBoard(c.Board)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
