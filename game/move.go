package game

import (
	"fmt"
	"strings"
)

// Move is a single prisoners' dilemma choice.
type Move int

const (
	Cooperate Move = iota
	Defect
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Valid reports whether m is Cooperate or Defect.
func (m Move) Valid() bool {
	return m == Cooperate || m == Defect
}

// ParseMove accepts cooperate, c, defect or d in any case.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cooperate", "c":
		return Cooperate, nil
	case "defect", "d":
		return Defect, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

// MoveHistory holds one player's moves in round order.
type MoveHistory []Move

// Last returns the most recent move, if any round has been played.
func (h MoveHistory) Last() (Move, bool) {
	if len(h) == 0 {
		return Cooperate, false
	}
	return h[len(h)-1], true
}

// Count returns how many times m was played.
func (h MoveHistory) Count(m Move) int {
	n := 0
	for _, v := range h {
		if v == m {
			n++
		}
	}
	return n
}

// Contains reports whether m was played at least once.
func (h MoveHistory) Contains(m Move) bool {
	for _, v := range h {
		if v == m {
			return true
		}
	}
	return false
}
