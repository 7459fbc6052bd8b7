package types

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var defaultFace font.Face

// Face is the one bitmap face used for every label.
func Face() font.Face {
	if defaultFace == nil {
		defaultFace = basicfont.Face7x13
	}
	return defaultFace
}
