package app

import "snake/internal/domain"

type InputEvent struct {
	Type      InputEventType
	Direction domain.Direction
}

type InputEventType int

const (
	// InputQuit is the quit signal (window closed, Ctrl-C). It always stops the loop.
	InputQuit InputEventType = iota
	// InputSteer carries a direction and only counts while a round is running.
	InputSteer
	// InputRestart starts a new round; ignored while one is running.
	InputRestart
	// InputExitGame is the quit key on the game-over screen; ignored while playing.
	InputExitGame
)

func SteerEvent(dir domain.Direction) InputEvent {
	return InputEvent{Type: InputSteer, Direction: dir}
}

// InputSource hands over the events that arrived since the last call. It must
// not block.
type InputSource interface {
	Poll() []InputEvent
}

// RenderSink displays a snapshot. It must not hold on to engine state.
type RenderSink interface {
	Render(snapshot domain.Snapshot) error
}
