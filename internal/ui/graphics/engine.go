package graphics

import (
	"context"
	"fmt"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics/screens"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
)

const WindowTitle = "Snake"

// Stepper runs one frame-loop iteration. *app.App implements it.
type Stepper interface {
	Step() (bool, error)
}

// Engine adapts the frame loop to ebiten. Ebiten calls Update at the configured
// tick rate, which paces the loop; Draw paints the last rendered snapshot. Both
// run on ebiten's game goroutine.
type Engine struct {
	ctx    context.Context
	config *domain.GameConfig

	screen *screens.GameScreen
	loop   Stepper

	snapshot    domain.Snapshot
	hasSnapshot bool
	pending     []app.InputEvent
}

func NewEngine(ctx context.Context, config *domain.GameConfig) *Engine {
	e := &Engine{
		ctx:    ctx,
		config: config.Copy(),
	}
	e.screen = screens.NewGameScreen(e)
	return e
}

func (e *Engine) SetLoop(loop Stepper) {
	e.loop = loop
}

func (e *Engine) Run() error {
	if e.loop == nil {
		return fmt.Errorf("graphics engine started without a loop")
	}

	ebiten.SetWindowSize(e.config.Width, e.config.Height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(e.config.TickRate)

	glog.Infof("Opening %dx%d window at %d ticks/s", e.config.Width, e.config.Height, e.config.TickRate)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

func (e *Engine) Update() error {
	if e.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		e.pending = append(e.pending, app.InputEvent{Type: app.InputQuit})
	}
	e.pending = append(e.pending, e.screen.Update(e.hasSnapshot && e.snapshot.IsOver())...)

	running, err := e.loop.Step()
	if err != nil {
		return err
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if !e.hasSnapshot {
		return
	}
	e.screen.Draw(screen, e.snapshot)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.config.Width, e.config.Height
}

func (e *Engine) Size() (int, int) {
	return e.config.Width, e.config.Height
}

// Poll hands the events gathered in Update to the loop.
func (e *Engine) Poll() []app.InputEvent {
	events := e.pending
	e.pending = nil
	return events
}

func (e *Engine) Render(snapshot domain.Snapshot) error {
	e.snapshot = snapshot
	e.hasSnapshot = true
	return nil
}
