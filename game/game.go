// Package game is the iterated prisoners' dilemma engine: moves, the strategy
// interface, the payoff matrix and the repeated game that ties them together.
package game

import (
	"errors"
	"fmt"
)

// ErrGameComplete is returned by PlayRound once every round has been played.
var ErrGameComplete = errors.New("game complete")

// State is where a RepeatedGame is in its lifecycle.
type State int

const (
	Empty State = iota
	InProgress
	Complete
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case InProgress:
		return "in-progress"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Score is a pair of totals, player one first.
type Score struct {
	P1 int
	P2 int
}

func (s Score) String() string {
	return fmt.Sprintf("(%d, %d)", s.P1, s.P2)
}

// Round is the outcome of one call to PlayRound.
type Round struct {
	Number int // 1-based
	P1     Move
	P2     Move
	Payoff Score
}

func (r Round) String() string {
	return fmt.Sprintf("(%s, %s)", r.P1, r.P2)
}

// RepeatedGame is the same two strategies playing each other for a fixed
// number of rounds. Each round both strategies see the whole history so far.
type RepeatedGame struct {
	p1     Strategy
	p2     Strategy
	rounds int
	payoff PayoffMatrix

	p1Moves MoveHistory
	p2Moves MoveHistory
}

func NewRepeatedGame(p1, p2 Strategy, rounds int, payoff PayoffMatrix) *RepeatedGame {
	if rounds < 0 {
		rounds = 0
	}
	return &RepeatedGame{
		p1:      p1,
		p2:      p2,
		rounds:  rounds,
		payoff:  payoff,
		p1Moves: make(MoveHistory, 0, rounds),
		p2Moves: make(MoveHistory, 0, rounds),
	}
}

// PlayRound asks both strategies for a move and records the pair.
func (g *RepeatedGame) PlayRound() (Round, error) {
	if g.RoundsPlayed() >= g.rounds {
		return Round{}, ErrGameComplete
	}
	RequireEqualLength(g.p1Moves, g.p2Moves)

	// each player sees its own moves first and the opponent's second
	p1Move := g.p1.NextMove(clip(g.p1Moves), clip(g.p2Moves))
	p2Move := g.p2.NextMove(clip(g.p2Moves), clip(g.p1Moves))
	if !p1Move.Valid() || !p2Move.Valid() {
		panic(fmt.Sprintf("strategy returned invalid move: %s=%s %s=%s", g.p1.Name(), p1Move, g.p2.Name(), p2Move))
	}

	g.p1Moves = append(g.p1Moves, p1Move)
	g.p2Moves = append(g.p2Moves, p2Move)

	a, b := g.payoff.Score(p1Move, p2Move)
	return Round{
		Number: len(g.p1Moves),
		P1:     p1Move,
		P2:     p2Move,
		Payoff: Score{P1: a, P2: b},
	}, nil
}

// CalculateScore sums the payoffs of every round played so far.
func (g *RepeatedGame) CalculateScore() Score {
	var total Score
	for i := range g.p1Moves {
		a, b := g.payoff.Score(g.p1Moves[i], g.p2Moves[i])
		total.P1 += a
		total.P2 += b
	}
	return total
}

func (g *RepeatedGame) State() State {
	switch played := g.RoundsPlayed(); {
	case played >= g.rounds:
		return Complete
	case played == 0:
		return Empty
	default:
		return InProgress
	}
}

func (g *RepeatedGame) Done() bool {
	return g.State() == Complete
}

func (g *RepeatedGame) RoundsPlayed() int {
	return len(g.p1Moves)
}

func (g *RepeatedGame) Rounds() int {
	return g.rounds
}

func (g *RepeatedGame) Players() (Strategy, Strategy) {
	return g.p1, g.p2
}

func (g *RepeatedGame) Payoff() PayoffMatrix {
	return g.payoff
}

// History returns copies of both players' moves.
func (g *RepeatedGame) History() (MoveHistory, MoveHistory) {
	return append(MoveHistory(nil), g.p1Moves...), append(MoveHistory(nil), g.p2Moves...)
}

// Play runs the remaining rounds and returns the final score.
func Play(g *RepeatedGame) Score {
	for !g.Done() {
		if _, err := g.PlayRound(); err != nil {
			break
		}
	}
	return g.CalculateScore()
}

// clip stops a strategy from appending into the engine's backing array.
func clip(h MoveHistory) MoveHistory {
	return h[:len(h):len(h)]
}
