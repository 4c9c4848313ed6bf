package strategy

import "github.com/boyter/dilemma/game"

// AlwaysCooperate ignores the history and cooperates.
type AlwaysCooperate struct{}

func (AlwaysCooperate) Name() string { return "Always Cooperate" }

func (AlwaysCooperate) NextMove(_, _ game.MoveHistory) game.Move {
	return game.Cooperate
}

// AlwaysDefect ignores the history and defects.
type AlwaysDefect struct{}

func (AlwaysDefect) Name() string { return "Always Defect" }

func (AlwaysDefect) NextMove(_, _ game.MoveHistory) game.Move {
	return game.Defect
}

// TitForTat cooperates first and then copies whatever the opponent did last.
type TitForTat struct{}

func (TitForTat) Name() string { return "Tit for Tat" }

func (TitForTat) NextMove(mine, theirs game.MoveHistory) game.Move {
	game.RequireEqualLength(mine, theirs)
	if last, ok := theirs.Last(); ok && last == game.Defect {
		return game.Defect
	}
	return game.Cooperate
}

// SuspiciousTitForTat is TitForTat that opens with a defection.
type SuspiciousTitForTat struct{}

func (SuspiciousTitForTat) Name() string { return "Suspicious Tit for Tat" }

func (SuspiciousTitForTat) NextMove(mine, theirs game.MoveHistory) game.Move {
	game.RequireEqualLength(mine, theirs)
	last, ok := theirs.Last()
	if !ok {
		return game.Defect
	}
	return last
}

// ReverseTitForTat does the opposite of TitForTat: it punishes cooperation
// and rewards defection, and cooperates on the first round.
type ReverseTitForTat struct{}

func (ReverseTitForTat) Name() string { return "Reverse Tit for Tat" }

func (ReverseTitForTat) NextMove(mine, theirs game.MoveHistory) game.Move {
	game.RequireEqualLength(mine, theirs)
	if last, ok := theirs.Last(); ok && last == game.Cooperate {
		return game.Defect
	}
	return game.Cooperate
}

// Grudger cooperates until the opponent defects once, then defects forever.
type Grudger struct{}

func (Grudger) Name() string { return "Grudger" }

func (Grudger) NextMove(mine, theirs game.MoveHistory) game.Move {
	game.RequireEqualLength(mine, theirs)
	if theirs.Contains(game.Defect) {
		return game.Defect
	}
	return game.Cooperate
}
