package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boyter/dilemma/game"
	"github.com/boyter/dilemma/strategy"
)

// DefaultRounds is how many rounds a game lasts unless configured otherwise.
const DefaultRounds = 200

// Config is the YAML layout for a game.
type Config struct {
	Rounds           int               `yaml:"rounds"`
	Payoff           game.PayoffMatrix `yaml:"payoff"`
	Players          []string          `yaml:"players"`
	Seed             uint64            `yaml:"seed"`
	RandomDefectOdds int               `yaml:"random_defect_odds"`
	Genome           string            `yaml:"genome"`
}

// Default is the reference game: always-cooperate against always-defect for
// 200 rounds.
func Default() Config {
	return Config{
		Rounds:           DefaultRounds,
		Payoff:           game.DefaultPayoffMatrix(),
		Players:          []string{"always-cooperate", "always-defect"},
		Seed:             42,
		RandomDefectOdds: 10,
	}
}

// Load reads path over the defaults. Unknown fields are an error so typos do
// not silently fall back to a default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Rounds < 0 {
		return fmt.Errorf("rounds must be >= 0, got %d", c.Rounds)
	}
	if len(c.Players) != 2 {
		return fmt.Errorf("exactly 2 players required, got %d", len(c.Players))
	}
	for _, p := range c.Players {
		if !strategy.IsValid(p) {
			return fmt.Errorf("%w %q (known: %v)", strategy.ErrUnknownStrategy, p, strategy.Keys())
		}
	}
	if c.RandomDefectOdds < 1 {
		return fmt.Errorf("random_defect_odds must be >= 1, got %d", c.RandomDefectOdds)
	}
	return nil
}

// StrategyOptions returns the build options for the player in seat (0 or 1).
// Seats get different seeds so two random players do not mirror each other.
func (c Config) StrategyOptions(seat int) strategy.Options {
	return strategy.Options{
		Seed:             c.Seed + uint64(seat),
		RandomDefectOdds: c.RandomDefectOdds,
		GenomePath:       c.Genome,
	}
}

// NewGame validates c and builds the game it describes.
func (c Config) NewGame() (*game.RepeatedGame, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var players [2]game.Strategy
	for seat, key := range c.Players {
		s, err := strategy.New(key, c.StrategyOptions(seat))
		if err != nil {
			return nil, err
		}
		players[seat] = s
	}
	return game.NewRepeatedGame(players[0], players[1], c.Rounds, c.Payoff), nil
}
