// Package terminal is a text-mode front-end for the frame loop. It draws each
// grid cell as two character columns so the field keeps its proportions.
package terminal

import (
	"context"
	"fmt"
	"image/color"
	"sync/atomic"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

const (
	cellColumns = 2
	headerRows  = 1
	footerRows  = 1
	eventBuffer = 64
)

// Runner is the paced loop the terminal drives. *app.App implements it.
type Runner interface {
	Run(ctx context.Context) error
}

type Terminal struct {
	screen  tcell.Screen
	events  chan app.InputEvent
	resized atomic.Bool
}

func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises screen and takes ownership of it.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen: screen,
		events: make(chan app.InputEvent, eventBuffer),
	}, nil
}

// Run pumps terminal events alongside the loop and restores the terminal when
// the loop ends.
func (t *Terminal) Run(ctx context.Context, loop Runner) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t.pump()
		return nil
	})

	g.Go(func() error {
		defer t.screen.Fini()
		return loop.Run(ctx)
	})

	return g.Wait()
}

// pump blocks on the terminal until the screen is finalised.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			t.resized.Store(true)
			continue
		}

		event, ok := translate(ev)
		if !ok {
			continue
		}
		select {
		case t.events <- event:
		default:
			glog.Warning("Terminal event buffer full, dropping key")
		}
	}
}

func (t *Terminal) Poll() []app.InputEvent {
	var events []app.InputEvent
	for {
		select {
		case event := <-t.events:
			events = append(events, event)
		default:
			return events
		}
	}
}

func translate(ev tcell.Event) (app.InputEvent, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return app.InputEvent{}, false
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		return app.InputEvent{Type: app.InputQuit}, true
	case tcell.KeyEscape:
		return app.InputEvent{Type: app.InputExitGame}, true
	case tcell.KeyUp:
		return app.SteerEvent(domain.DirectionUp), true
	case tcell.KeyDown:
		return app.SteerEvent(domain.DirectionDown), true
	case tcell.KeyLeft:
		return app.SteerEvent(domain.DirectionLeft), true
	case tcell.KeyRight:
		return app.SteerEvent(domain.DirectionRight), true
	case tcell.KeyRune:
	default:
		return app.InputEvent{}, false
	}

	switch key.Rune() {
	case 'w', 'W':
		return app.SteerEvent(domain.DirectionUp), true
	case 's', 'S':
		return app.SteerEvent(domain.DirectionDown), true
	case 'a', 'A':
		return app.SteerEvent(domain.DirectionLeft), true
	case 'd', 'D':
		return app.SteerEvent(domain.DirectionRight), true
	case 'r', 'R':
		return app.InputEvent{Type: app.InputRestart}, true
	}
	return app.InputEvent{}, false
}

func (t *Terminal) Render(snapshot domain.Snapshot) error {
	if t.resized.Swap(false) {
		t.screen.Sync()
	}
	t.screen.Clear()

	field := snapshot.Field
	needW, needH := field.Width*cellColumns, field.Height+headerRows+footerRows
	if w, h := t.screen.Size(); w < needW || h < needH {
		t.drawText(0, 0, fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, w, h), textStyle(types.ColorText))
		t.screen.Show()
		return nil
	}

	t.drawText(0, 0, types.ScoreLine(snapshot), textStyle(types.ColorText))

	empty := fillStyle(types.ColorBackground).Foreground(rgb(types.ColorGrid))
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			t.drawCell(domain.Coord{X: x, Y: y}, '·', empty)
		}
	}

	if snapshot.HasFood {
		t.drawCell(snapshot.Food, ' ', fillStyle(types.ColorFood))
	}
	for i, c := range snapshot.Snake {
		fill := types.ColorSnakeBody
		if i == snapshot.HeadIndex {
			fill = types.ColorSnakeHead
		}
		if snapshot.IsOver() {
			fill = types.Darken(fill, 0.6)
		}
		t.drawCell(c, ' ', fillStyle(fill))
	}

	footer := types.HintPlaying
	if snapshot.IsOver() {
		t.drawOverlay(snapshot, needW)
		footer = types.HintGameOver
	}
	t.drawText(0, headerRows+field.Height, footer, textStyle(types.ColorTextDim))

	t.screen.Show()
	return nil
}

func (t *Terminal) drawOverlay(snapshot domain.Snapshot, width int) {
	mid := headerRows + snapshot.Field.Height/2
	title := types.OverlayTitle(snapshot.LastOutcome)
	titleColor := types.ColorText
	if snapshot.LastOutcome == domain.OutcomeBoardFull {
		titleColor = types.ColorSuccess
	}

	t.drawCentered(mid-1, width, title, textStyle(titleColor).Bold(true))
	t.drawCentered(mid, width, types.OutcomeMessage(snapshot.LastOutcome), textStyle(types.ColorTextHighlight))
	t.drawCentered(mid+1, width, types.HintGameOver, textStyle(types.ColorText))
}

func (t *Terminal) drawCell(c domain.Coord, r rune, style tcell.Style) {
	x := c.X * cellColumns
	y := c.Y + headerRows
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, ' ', nil, style)
}

func (t *Terminal) drawCentered(y, width int, s string, style tcell.Style) {
	x := (width - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	t.drawText(x, y, s, style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fillStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(rgb(c))
}

func textStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(rgb(types.ColorBackground)).Foreground(rgb(c))
}
