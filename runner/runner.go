// Package runner drives a single repeated game to completion and reports it.
//
// The report goes to the configured writer, one line per event:
//
//	Playing strategy Always Cooperate against Always Defect
//	(Cooperate, Defect)
//	...
//	Final score: (-1000, 4000)
//
// Diagnostics go through logrus so they never mix with the report.
package runner

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/boyter/dilemma/game"
)

// Result is the outcome of one Run. GameID matches the "game" field on every
// log entry the run wrote.
type Result struct {
	GameID string
	Score  game.Score
}

type Runner struct {
	Out   io.Writer
	Quiet bool // skip the per-round lines
	Log   logrus.FieldLogger
}

func New(out io.Writer) *Runner {
	return &Runner{Out: out, Log: logrus.StandardLogger()}
}

// Run plays every remaining round of g in order and returns the final score
// along with the ID tagged on its log entries.
func (r *Runner) Run(g *game.RepeatedGame) (Result, error) {
	id := uuid.NewString()
	p1, p2 := g.Players()
	log := r.logger().WithFields(logrus.Fields{
		"game":   id,
		"p1":     p1.Name(),
		"p2":     p2.Name(),
		"rounds": g.Rounds(),
	})
	log.Info("starting game")

	if _, err := fmt.Fprintf(r.Out, "Playing strategy %s against %s\n", p1.Name(), p2.Name()); err != nil {
		return Result{}, fmt.Errorf("writing header: %w", err)
	}

	for {
		round, err := g.PlayRound()
		if errors.Is(err, game.ErrGameComplete) {
			break
		}
		if err != nil {
			return Result{}, err
		}
		log.WithFields(logrus.Fields{
			"round":  round.Number,
			"move1":  round.P1,
			"move2":  round.P2,
			"payoff": round.Payoff,
		}).Debug("round played")

		if r.Quiet {
			continue
		}
		if _, err := fmt.Fprintln(r.Out, round); err != nil {
			return Result{}, fmt.Errorf("writing round %d: %w", round.Number, err)
		}
	}

	score := g.CalculateScore()
	if _, err := fmt.Fprintf(r.Out, "Final score: %s\n", score); err != nil {
		return Result{}, fmt.Errorf("writing score: %w", err)
	}
	log.WithField("score", score).Info("game complete")
	return Result{GameID: id, Score: score}, nil
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}
