package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	OffsetX int
	OffsetY int
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

func (fr *FieldRenderer) cellRect(field domain.Field, c domain.Coord) (float32, float32, float32) {
	x, y := field.Pixel(c)
	return float32(fr.OffsetX + x), float32(fr.OffsetY + y), float32(field.CellSize)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field domain.Field) {
	w := float32(field.Width * field.CellSize)
	h := float32(field.Height * field.CellSize)

	for x := 0; x < field.Width; x++ {
		x1 := float32(fr.OffsetX + x*field.CellSize)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := 0; y < field.Height; y++ {
		y1 := float32(fr.OffsetY + y*field.CellSize)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, snapshot domain.Snapshot) {
	if !snapshot.HasFood {
		return
	}
	x, y, size := fr.cellRect(snapshot.Field, snapshot.Food)
	vector.DrawFilledRect(screen, x, y, size, size, types.ColorFood, false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snapshot domain.Snapshot) {
	for i, cell := range snapshot.Snake {
		x, y, size := fr.cellRect(snapshot.Field, cell)

		cellColor := types.ColorSnakeBody
		if i == snapshot.HeadIndex {
			cellColor = types.ColorSnakeHead
		}
		if snapshot.IsOver() {
			cellColor = types.Darken(cellColor, 0.6)
		}

		vector.DrawFilledRect(screen, x, y, size, size, cellColor, false)
	}
}
