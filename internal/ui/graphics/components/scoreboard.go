package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// Scoreboard is the score line in the top-left corner.
type Scoreboard struct {
	X, Y int
}

func NewScoreboard(x, y int) *Scoreboard {
	return &Scoreboard{X: x, Y: y}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, snapshot domain.Snapshot) {
	face := types.Face()
	line := types.ScoreLine(snapshot)
	bounds := text.BoundString(face, line)

	text.Draw(screen, line, face, sb.X, sb.Y+bounds.Dy(), types.ColorText)
}
