package domain

type Direction int32

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return 0
}

// Delta is the unit grid step of d. Opposite directions sum to the zero vector.
func (d Direction) Delta() Coord {
	switch d {
	case DirectionUp:
		return Coord{0, -1}
	case DirectionDown:
		return Coord{0, 1}
	case DirectionLeft:
		return Coord{-1, 0}
	case DirectionRight:
		return Coord{1, 0}
	}
	return Coord{}
}

func (d Direction) IsValid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// IsOpposite reports whether turning from d to other would be a 180° reversal.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Delta().Add(other.Delta()).IsZero()
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	}
	return "NONE"
}
