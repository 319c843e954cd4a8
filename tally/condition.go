package tally

type Condition uint8

const (
	ConditionContinue Condition = 1 + iota
	ConditionWinner
	ConditionTie
	ConditionError
)

func (c Condition) String() string {
	switch c {
	case ConditionContinue:
		return "continue"
	case ConditionWinner:
		return "winner"
	case ConditionTie:
		return "tie"
	case ConditionError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round loop stops on c.
func (c Condition) Terminal() bool {
	return c != ConditionContinue
}
