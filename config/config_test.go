package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BLACKJACK_DATA_DIR", "")
	t.Setenv("BLACKJACK_STARTING_BALANCE", "")
	t.Setenv("BLACKJACK_PACING_MS", "")

	cfg := Load()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 1000, cfg.StartingBalance)
	assert.Equal(t, 600*time.Millisecond, cfg.PacingDelay)
	assert.Equal(t, filepath.Join("data", "players.json"), cfg.RegistryPath())
	assert.Equal(t, filepath.Join("data", "leaderboard.json"), cfg.LeaderboardPath())
	assert.Equal(t, filepath.Join("data", "active_player.json"), cfg.ActiveSeatPath())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_DATA_DIR", "/tmp/bj")
	t.Setenv("BLACKJACK_STARTING_BALANCE", "250")
	t.Setenv("BLACKJACK_PACING_MS", "0")

	cfg := Load()

	assert.Equal(t, "/tmp/bj", cfg.DataDir)
	assert.Equal(t, 250, cfg.StartingBalance)
	assert.Equal(t, time.Duration(0), cfg.PacingDelay)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("BLACKJACK_STARTING_BALANCE", "lots")
	t.Setenv("BLACKJACK_PACING_MS", "-3")

	cfg := Load()

	assert.Equal(t, 1000, cfg.StartingBalance)
	assert.Equal(t, 600*time.Millisecond, cfg.PacingDelay)
}
