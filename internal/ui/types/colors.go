package types

import "image/color"

var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorGrid          = color.RGBA{40, 40, 40, 255}
	ColorSnakeBody     = color.RGBA{0, 200, 0, 255}
	ColorSnakeHead     = color.RGBA{240, 220, 50, 255}
	ColorFood          = color.RGBA{200, 30, 30, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorButtonBorder  = color.RGBA{100, 100, 110, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
