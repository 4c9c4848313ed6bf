package game

// Reference payoff values.
const (
	DefaultReward     = 10 // both cooperate
	DefaultPunishment = 2  // both defect
	DefaultTemptation = 20 // defect against a cooperator
	DefaultSucker     = -5 // cooperate against a defector
)

// PayoffMatrix scores a pair of moves. The same four values apply to both
// seats, so Score(a, b) is always the swap of Score(b, a).
type PayoffMatrix struct {
	Reward     int `yaml:"reward"`
	Punishment int `yaml:"punishment"`
	Temptation int `yaml:"temptation"`
	Sucker     int `yaml:"sucker"`
}

func DefaultPayoffMatrix() PayoffMatrix {
	return PayoffMatrix{
		Reward:     DefaultReward,
		Punishment: DefaultPunishment,
		Temptation: DefaultTemptation,
		Sucker:     DefaultSucker,
	}
}

// Score returns the payoff for mine and for theirs.
func (p PayoffMatrix) Score(mine, theirs Move) (int, int) {
	switch {
	case mine == Cooperate && theirs == Cooperate:
		return p.Reward, p.Reward
	case mine == Cooperate && theirs == Defect:
		return p.Sucker, p.Temptation
	case mine == Defect && theirs == Cooperate:
		return p.Temptation, p.Sucker
	case mine == Defect && theirs == Defect:
		return p.Punishment, p.Punishment
	}
	panic("invalid move pair " + mine.String() + ", " + theirs.String())
}

// IsDilemma reports whether the values keep the T > R > P > S ordering that
// makes the game a prisoners' dilemma.
func (p PayoffMatrix) IsDilemma() bool {
	return p.Temptation > p.Reward && p.Reward > p.Punishment && p.Punishment > p.Sucker
}
