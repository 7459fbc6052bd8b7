package domain

const InitialSnakeLength = 3

// Snake keeps its body tail first: Points[0] is the tail, the last element is
// the head. cells mirrors Points for constant time occupancy checks.
type Snake struct {
	Points        []Coord
	HeadDirection Direction

	cells map[Coord]struct{}
}

// NewSnake builds the reset snake: three cells ending at the field's centre,
// heading right.
func NewSnake(field *Field) *Snake {
	head := field.Center()
	points := make([]Coord, 0, InitialSnakeLength)
	for i := InitialSnakeLength - 1; i >= 0; i-- {
		points = append(points, Coord{X: head.X - i, Y: head.Y})
	}
	return newSnakeFromPoints(points, DirectionRight)
}

func newSnakeFromPoints(points []Coord, dir Direction) *Snake {
	s := &Snake{
		Points:        points,
		HeadDirection: dir,
		cells:         make(map[Coord]struct{}, len(points)),
	}
	for _, p := range points {
		s.cells[p] = struct{}{}
	}
	return s
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Length() int {
	return len(s.Points)
}

func (s *Snake) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// ProposeMove returns where the head would land moving in dir. It does not
// change the snake.
func (s *Snake) ProposeMove(dir Direction) Coord {
	return s.Head().Add(dir.Delta())
}

// WouldIntersect reports whether newHead hits the body as it will be after the
// move. Without growth the tail cell is vacated this tick and is therefore safe.
func (s *Snake) WouldIntersect(newHead Coord, grow bool) bool {
	if !s.Contains(newHead) {
		return false
	}
	if !grow && newHead.Equals(s.Tail()) {
		return false
	}
	return true
}

// Advance moves the head onto newHead. The tail is dropped unless grow is set.
func (s *Snake) Advance(newHead Coord, grow bool) {
	if !grow && len(s.Points) > 0 {
		tail := s.Points[0]
		s.Points = s.Points[1:]
		delete(s.cells, tail)
	}
	s.Points = append(s.Points, newHead)
	s.cells[newHead] = struct{}{}
}

// Occupied is the set of cells covered by the body.
func (s *Snake) Occupied() map[Coord]bool {
	occupied := make(map[Coord]bool, len(s.cells))
	for c := range s.cells {
		occupied[c] = true
	}
	return occupied
}

func (s *Snake) Body() []Coord {
	body := make([]Coord, len(s.Points))
	copy(body, s.Points)
	return body
}
