package components

import (
	"image/color"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	hovered       bool
	pressed       bool
}

func NewButton(width, height int, buttonText string) *Button {
	return &Button{
		Width:  width,
		Height: height,
		Text:   buttonText,
	}
}

// Update reports a click: press and release while the cursor is over the button.
func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Reset() {
	b.hovered = false
	b.pressed = false
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case b.pressed:
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered:
		bgColor = types.ColorButtonHover
	default:
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorButtonBorder, false)

	face := types.Face()
	bounds := text.BoundString(face, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, face, textX, textY, types.ColorButtonText)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
