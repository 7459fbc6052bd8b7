package app

import (
	"context"
	"fmt"
	"time"

	"snake/internal/domain"

	"github.com/golang/glog"
)

// App is the frame loop: poll input, advance the round once, render.
type App struct {
	state    *domain.GameState
	input    InputSource
	sink     RenderSink
	interval time.Duration

	running bool
	frames  int
}

func NewApp(state *domain.GameState, input InputSource, sink RenderSink) *App {
	return &App{
		state:    state,
		input:    input,
		sink:     sink,
		interval: state.Config.TickInterval(),
		running:  true,
	}
}

// Step runs one iteration without waiting for the next tick boundary. It
// returns false once the loop has been told to quit.
func (a *App) Step() (bool, error) {
	if !a.running {
		return false, nil
	}

	for _, event := range a.input.Poll() {
		a.handleInput(event)
		if !a.running {
			glog.Infof("Loop stopped after %d frames", a.frames)
			return false, nil
		}
	}

	if !a.state.IsOver() {
		a.state.Tick()
	}

	a.frames++
	if err := a.sink.Render(a.state.Snapshot()); err != nil {
		a.running = false
		return false, fmt.Errorf("failed to render frame %d: %w", a.frames, err)
	}
	return true, nil
}

// Run steps the loop once per tick interval until a quit signal arrives.
// Cancelling ctx counts as a quit signal.
func (a *App) Run(ctx context.Context) error {
	glog.Infof("Loop started: %d ticks/s", a.state.Config.TickRate)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		running, err := a.Step()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}

		select {
		case <-ctx.Done():
			a.Quit()
		case <-ticker.C:
		}
	}
}

func (a *App) Quit() {
	a.running = false
}

func (a *App) Running() bool {
	return a.running
}

func (a *App) State() *domain.GameState {
	return a.state
}

func (a *App) Frames() int {
	return a.frames
}

func (a *App) handleInput(event InputEvent) {
	switch event.Type {
	case InputQuit:
		a.Quit()

	case InputSteer:
		if !a.state.IsOver() {
			a.state.SetDirection(event.Direction)
		}

	case InputRestart:
		if a.state.IsOver() {
			glog.V(1).Infof("Restart after %v", a.state.LastOutcome())
			a.state.Reset()
		}

	case InputExitGame:
		if a.state.IsOver() {
			a.Quit()
		}
	}
}
