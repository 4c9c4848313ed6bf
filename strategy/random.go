package strategy

import (
	"golang.org/x/exp/rand"

	"github.com/boyter/dilemma/game"
)

// Random flips a coin every round.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return "Random" }

func (r *Random) NextMove(_, _ game.MoveHistory) game.Move {
	return game.Move(r.rng.Intn(2))
}

// RandomDefect cooperates but defects on roughly one round in Odds.
type RandomDefect struct {
	Odds int
	rng  *rand.Rand
}

func NewRandomDefect(odds int, seed uint64) *RandomDefect {
	if odds < 1 {
		odds = 1
	}
	return &RandomDefect{Odds: odds, rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomDefect) Name() string { return "Random Defect" }

func (r *RandomDefect) NextMove(_, _ game.MoveHistory) game.Move {
	if r.rng.Intn(r.Odds) == 0 {
		return game.Defect
	}
	return game.Cooperate
}
