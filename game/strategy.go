package game

import "fmt"

// Strategy decides the next move from the full history of both players.
//
// mine is the caller's own history and theirs the opponent's. Both cover every
// round played so far and are always the same length. Implementations must not
// modify either slice.
type Strategy interface {
	Name() string
	NextMove(mine, theirs MoveHistory) Move
}

// RequireEqualLength panics when the two histories differ in length. A mismatch
// means the caller is broken, so there is nothing to recover.
func RequireEqualLength(mine, theirs MoveHistory) {
	if len(mine) != len(theirs) {
		panic(fmt.Sprintf("move histories differ in length: mine=%d theirs=%d", len(mine), len(theirs)))
	}
}
