package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

const (
	// MinFieldWidth keeps the reset snake, centred with its tail two cells
	// behind the head, inside the field.
	MinFieldWidth = InitialSnakeLength + 1

	MinTickRate = 1
	MaxTickRate = 120
)

// GameConfig is read once at startup. Width, Height and CellSize are pixels.
type GameConfig struct {
	Width    int
	Height   int
	CellSize int
	TickRate int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:    640,
		Height:   480,
		CellSize: 20,
		TickRate: 12,
	}
}

func (c *GameConfig) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size %d must be positive", c.CellSize))
	} else if c.Width > 0 && c.Height > 0 {
		if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
			errs = append(errs, fmt.Errorf("cell size %d does not divide grid %dx%d", c.CellSize, c.Width, c.Height))
		} else if c.Width/c.CellSize < MinFieldWidth {
			errs = append(errs, fmt.Errorf("grid must be at least %d cells wide, got %d", MinFieldWidth, c.Width/c.CellSize))
		}
	}
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick rate %d out of range [%d, %d]", c.TickRate, MinTickRate, MaxTickRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:    c.Width,
		Height:   c.Height,
		CellSize: c.CellSize,
		TickRate: c.TickRate,
	}
}

// Field derives the cell grid. Only meaningful on a validated config.
func (c *GameConfig) Field() *Field {
	return NewField(c.Width/c.CellSize, c.Height/c.CellSize, c.CellSize)
}

func (c *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
