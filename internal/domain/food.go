package domain

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness PlaceFood draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// PlaceFood picks a free cell uniformly at random. It returns false when every
// cell of the field is occupied.
func PlaceFood(occupied map[Coord]bool, field *Field, rng Rand) (Coord, bool) {
	capacity := field.CellCount() - len(occupied)
	if capacity < 0 {
		capacity = 0
	}

	free := make([]Coord, 0, capacity)
	for _, cell := range field.AllCells() {
		if !occupied[cell] {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return Coord{}, false
	}
	return free[rng.Intn(len(free))], true
}
