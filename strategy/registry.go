package strategy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/boyter/dilemma/game"
)

// ErrUnknownStrategy is returned by New for a key that is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Options carries the settings some strategies need when they are built.
type Options struct {
	Seed             uint64 // seeds Random, RandomDefect and the random Neural network
	RandomDefectOdds int    // RandomDefect defects on one round in this many
	GenomePath       string // Neural reads this genome, or builds a random one when empty
}

type factory func(Options) (game.Strategy, error)

var factories = map[string]factory{
	"always-cooperate": func(Options) (game.Strategy, error) { return AlwaysCooperate{}, nil },
	"always-defect":    func(Options) (game.Strategy, error) { return AlwaysDefect{}, nil },
	"tit-for-tat":      func(Options) (game.Strategy, error) { return TitForTat{}, nil },
	"suspicious-tit-for-tat": func(Options) (game.Strategy, error) {
		return SuspiciousTitForTat{}, nil
	},
	"reverse-tit-for-tat": func(Options) (game.Strategy, error) {
		return ReverseTitForTat{}, nil
	},
	"grudger": func(Options) (game.Strategy, error) { return Grudger{}, nil },
	"random":  func(o Options) (game.Strategy, error) { return NewRandom(o.Seed), nil },
	"random-defect": func(o Options) (game.Strategy, error) {
		return NewRandomDefect(o.RandomDefectOdds, o.Seed), nil
	},
	"neural": func(o Options) (game.Strategy, error) {
		if o.GenomePath == "" {
			return NewRandomNeural(o.Seed)
		}
		return NewNeuralFromFile(o.GenomePath)
	},
}

// IsValid reports whether key names a registered strategy.
func IsValid(key string) bool {
	_, ok := factories[key]
	return ok
}

// Keys returns every registered key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(factories))
	for k := range factories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New builds the strategy registered under key.
func New(key string, opts Options) (game.Strategy, error) {
	f, ok := factories[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, key)
	}
	s, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("building strategy %q: %w", key, err)
	}
	return s, nil
}
