package domain

// Snapshot is a read-only copy of the round handed to the presentation layer.
type Snapshot struct {
	RoundID     string
	Field       Field
	Snake       []Coord
	HeadIndex   int
	Food        Coord
	HasFood     bool
	Score       int
	Best        int
	Ticks       int
	State       RoundState
	LastOutcome Outcome
}

func (s Snapshot) Head() Coord {
	if s.HeadIndex < 0 || s.HeadIndex >= len(s.Snake) {
		return Coord{}
	}
	return s.Snake[s.HeadIndex]
}

func (s Snapshot) IsOver() bool {
	return s.State == RoundOver
}
