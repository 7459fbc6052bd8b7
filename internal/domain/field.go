package domain

// Field is the playing grid measured in cells. CellSize is the pixel size of one
// cell and is only used to map cells back onto a pixel surface.
type Field struct {
	Width    int
	Height   int
	CellSize int
}

func NewField(width, height, cellSize int) *Field {
	return &Field{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

func (f *Field) CellCount() int {
	return f.Width * f.Height
}

// AllCells lists every cell in row-major order, top row first.
func (f *Field) AllCells() []Coord {
	cells := make([]Coord, 0, f.CellCount())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Move returns the neighbour of c in direction d. The result may lie outside
// the field; there is no wrapping.
func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

// Center is the cell the reset snake's head starts on.
func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}

// Pixel returns the top-left pixel of c.
func (f *Field) Pixel(c Coord) (int, int) {
	return c.X * f.CellSize, c.Y * f.CellSize
}
