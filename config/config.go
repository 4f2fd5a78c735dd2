// Package config reads the game's settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DataDir holds the three persisted documents.
	DataDir string
	// StartingBalance is the bankroll for newly created players and bots.
	StartingBalance int
	// PacingDelay is the cosmetic pause before AI and dealer actions.
	PacingDelay time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment, falling back to defaults for anything unset or malformed.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DataDir:         "data",
		StartingBalance: 1000,
		PacingDelay:     600 * time.Millisecond,
	}
	if v := os.Getenv("BLACKJACK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BLACKJACK_STARTING_BALANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StartingBalance = n
		}
	}
	if v := os.Getenv("BLACKJACK_PACING_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.PacingDelay = time.Duration(n) * time.Millisecond
		}
	}
	return cfg
}

func (c Config) RegistryPath() string {
	return filepath.Join(c.DataDir, "players.json")
}

func (c Config) LeaderboardPath() string {
	return filepath.Join(c.DataDir, "leaderboard.json")
}

func (c Config) ActiveSeatPath() string {
	return filepath.Join(c.DataDir, "active_player.json")
}
