package domain

type RoundState int

const (
	RoundPlaying RoundState = 0
	RoundOver    RoundState = 1
)

func (s RoundState) String() string {
	if s == RoundOver {
		return "OVER"
	}
	return "PLAYING"
}

// Outcome is the result of one Tick. Every outcome other than OutcomeContinued
// ends the round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeContinued
	OutcomeWallCollision
	OutcomeSelfCollision
	OutcomeBoardFull
)

func (o Outcome) IsTerminal() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision || o == OutcomeBoardFull
}

func (o Outcome) String() string {
	switch o {
	case OutcomeContinued:
		return "CONTINUED"
	case OutcomeWallCollision:
		return "WALL_COLLISION"
	case OutcomeSelfCollision:
		return "SELF_COLLISION"
	case OutcomeBoardFull:
		return "BOARD_FULL_WIN"
	}
	return "NONE"
}
