package input

import (
	"snake/internal/app"
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var steerKeys = map[ebiten.Key]domain.Direction{
	ebiten.KeyW:          domain.DirectionUp,
	ebiten.KeyArrowUp:    domain.DirectionUp,
	ebiten.KeyS:          domain.DirectionDown,
	ebiten.KeyArrowDown:  domain.DirectionDown,
	ebiten.KeyA:          domain.DirectionLeft,
	ebiten.KeyArrowLeft:  domain.DirectionLeft,
	ebiten.KeyD:          domain.DirectionRight,
	ebiten.KeyArrowRight: domain.DirectionRight,
}

type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update turns the keys pressed during this tick into loop events, in the
// order ebiten reports them.
func (kh *KeyboardHandler) Update() []app.InputEvent {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])

	var events []app.InputEvent
	for _, key := range kh.keys {
		if dir, ok := steerKeys[key]; ok {
			events = append(events, app.SteerEvent(dir))
			continue
		}
		switch key {
		case ebiten.KeyR:
			events = append(events, app.InputEvent{Type: app.InputRestart})
		case ebiten.KeyEscape:
			events = append(events, app.InputEvent{Type: app.InputExitGame})
		}
	}
	return events
}
