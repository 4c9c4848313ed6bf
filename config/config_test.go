package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boyter/dilemma/game"
	"github.com/boyter/dilemma/strategy"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsReferenceGame(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 200, cfg.Rounds)
	assert.Equal(t, game.DefaultPayoffMatrix(), cfg.Payoff)
	assert.Equal(t, []string{"always-cooperate", "always-defect"}, cfg.Players)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeTempYAML(t, `
rounds: 12
payoff:
  reward: 3
players: [tit-for-tat, grudger]
seed: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Rounds)
	assert.Equal(t, []string{"tit-for-tat", "grudger"}, cfg.Players)
	assert.Equal(t, uint64(5), cfg.Seed)
	// unset payoff fields keep their defaults
	assert.Equal(t, 3, cfg.Payoff.Reward)
	assert.Equal(t, game.DefaultTemptation, cfg.Payoff.Temptation)
	assert.Equal(t, 10, cfg.RandomDefectOdds)
}

func TestLoad_EmptyFileIsDefault(t *testing.T) {
	cfg, err := Load(writeTempYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load(writeTempYAML(t, "roundz: 5\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero rounds", func(c *Config) { c.Rounds = 0 }, false},
		{"negative rounds", func(c *Config) { c.Rounds = -1 }, true},
		{"one player", func(c *Config) { c.Players = []string{"grudger"} }, true},
		{"three players", func(c *Config) { c.Players = []string{"grudger", "grudger", "grudger"} }, true},
		{"unknown player", func(c *Config) { c.Players = []string{"grudger", "nice"} }, true},
		{"zero odds", func(c *Config) { c.RandomDefectOdds = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_UnknownPlayerWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Players = []string{"grudger", "nice"}
	assert.ErrorIs(t, cfg.Validate(), strategy.ErrUnknownStrategy)
}

func TestNewGame_BuildsConfiguredGame(t *testing.T) {
	cfg := Default()
	cfg.Rounds = 3
	cfg.Players = []string{"always-defect", "always-defect"}

	g, err := cfg.NewGame()
	require.NoError(t, err)

	p1, p2 := g.Players()
	assert.Equal(t, "Always Defect", p1.Name())
	assert.Equal(t, "Always Defect", p2.Name())
	assert.Equal(t, game.Score{P1: 6, P2: 6}, game.Play(g))
}

func TestStrategyOptions_SeatsGetDistinctSeeds(t *testing.T) {
	cfg := Default()
	assert.NotEqual(t, cfg.StrategyOptions(0).Seed, cfg.StrategyOptions(1).Seed)
}
