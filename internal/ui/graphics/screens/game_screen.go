package screens

import (
	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type ScreenContext interface {
	Size() (int, int)
}

type GameScreen struct {
	ctx ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	btnRestart *components.Button
	btnQuit    *components.Button
}

func NewGameScreen(ctx ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(10, 8),
		keyboard:      input.NewKeyboardHandler(),
		btnRestart:    components.NewButton(120, 32, "Restart"),
		btnQuit:       components.NewButton(120, 32, "Quit"),
	}
}

// Update collects this tick's input. The buttons only exist on the game-over
// overlay.
func (s *GameScreen) Update(over bool) []app.InputEvent {
	events := s.keyboard.Update()
	if !over {
		s.btnRestart.Reset()
		s.btnQuit.Reset()
		return events
	}

	w, h := s.ctx.Size()
	s.btnRestart.SetPosition(w/2-130, h/2+45)
	s.btnQuit.SetPosition(w/2+10, h/2+45)

	if s.btnRestart.Update() {
		events = append(events, app.InputEvent{Type: app.InputRestart})
	}
	if s.btnQuit.Update() {
		events = append(events, app.InputEvent{Type: app.InputExitGame})
	}
	return events
}

func (s *GameScreen) Draw(screen *ebiten.Image, snapshot domain.Snapshot) {
	screen.Fill(types.ColorBackground)

	s.fieldRenderer.DrawField(screen, snapshot.Field)
	s.fieldRenderer.DrawSnake(screen, snapshot)
	s.fieldRenderer.DrawFood(screen, snapshot)
	s.scoreboard.Draw(screen, snapshot)

	if snapshot.IsOver() {
		s.drawOverlay(screen, snapshot)
	}
}

func (s *GameScreen) drawOverlay(screen *ebiten.Image, snapshot domain.Snapshot) {
	w, h := s.ctx.Size()
	face := types.Face()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)

	title := types.OverlayTitle(snapshot.LastOutcome)
	titleColor := types.ColorText
	if snapshot.LastOutcome == domain.OutcomeBoardFull {
		titleColor = types.ColorSuccess
	}
	bounds := text.BoundString(face, title)
	x := (w - bounds.Dx()) / 2
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, face, x+dx, h/2-30+dy, types.Darken(titleColor, 0.5))
		}
	}
	text.Draw(screen, title, face, x, h/2-30, titleColor)

	reason := types.OutcomeMessage(snapshot.LastOutcome)
	bounds = text.BoundString(face, reason)
	text.Draw(screen, reason, face, (w-bounds.Dx())/2, h/2-5, types.ColorTextHighlight)

	hint := types.HintGameOver
	bounds = text.BoundString(face, hint)
	text.Draw(screen, hint, face, (w-bounds.Dx())/2, h/2+20, types.ColorText)

	s.btnRestart.Draw(screen)
	s.btnQuit.Draw(screen)
}
