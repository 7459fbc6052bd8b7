package domain

import (
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// GameState owns every piece of mutable round state. It is driven from a single
// goroutine and does no locking.
type GameState struct {
	Field  *Field
	Config *GameConfig

	snake   *Snake
	heading Direction
	pending Direction

	// food is meaningful only while hasFood is set. An absent food means either
	// nothing was placed yet or the board is full; lastOutcome tells them apart.
	food    Coord
	hasFood bool

	score       int
	best        int
	ticks       int
	state       RoundState
	lastOutcome Outcome
	roundID     string

	rng Rand
}

func NewGameState(config *GameConfig, rng Rand) *GameState {
	gs := &GameState{
		Field:  config.Field(),
		Config: config.Copy(),
		rng:    rng,
	}
	gs.Reset()
	return gs
}

// Reset starts a new round: fresh snake heading right, new food, zero score.
func (gs *GameState) Reset() {
	gs.snake = NewSnake(gs.Field)
	gs.heading = DirectionRight
	gs.pending = DirectionRight
	gs.score = 0
	gs.ticks = 0
	gs.state = RoundPlaying
	gs.lastOutcome = OutcomeNone
	gs.roundID = uuid.NewString()

	gs.food, gs.hasFood = PlaceFood(gs.snake.Occupied(), gs.Field, gs.rng)
	if !gs.hasFood {
		gs.finish(OutcomeBoardFull)
	}

	glog.Infof("Round %s started: snake=%v food=%v", gs.roundID, gs.snake.Points, gs.food)
}

// SetDirection buffers dir for the next tick. A reversal of the current heading
// is dropped and the previously buffered direction survives.
func (gs *GameState) SetDirection(dir Direction) bool {
	if gs.state == RoundOver || !dir.IsValid() {
		return false
	}
	if gs.heading.IsOpposite(dir) {
		glog.V(1).Infof("Round %s: reversal %v -> %v ignored", gs.roundID, gs.heading, dir)
		return false
	}
	gs.pending = dir
	glog.V(1).Infof("Round %s: pending direction %v", gs.roundID, dir)
	return true
}

// Tick advances the round by one step. Once the round is over it changes
// nothing and reports the terminal outcome again.
func (gs *GameState) Tick() Outcome {
	if gs.state == RoundOver {
		return gs.lastOutcome
	}

	gs.ticks++
	gs.heading = gs.pending
	gs.snake.HeadDirection = gs.heading

	newHead := gs.snake.ProposeMove(gs.heading)
	if !gs.Field.InBounds(newHead) {
		return gs.finish(OutcomeWallCollision)
	}

	willEat := gs.hasFood && newHead.Equals(gs.food)
	if gs.snake.WouldIntersect(newHead, willEat) {
		return gs.finish(OutcomeSelfCollision)
	}

	gs.snake.Advance(newHead, willEat)

	if willEat {
		gs.score++
		if gs.score > gs.best {
			gs.best = gs.score
		}
		gs.food, gs.hasFood = PlaceFood(gs.snake.Occupied(), gs.Field, gs.rng)
		if !gs.hasFood {
			return gs.finish(OutcomeBoardFull)
		}
		glog.V(1).Infof("Round %s: ate, score=%d next food=%v", gs.roundID, gs.score, gs.food)
	}

	glog.V(2).Infof("Round %s tick %d: head=%v heading=%v len=%d",
		gs.roundID, gs.ticks, newHead, gs.heading, gs.snake.Length())

	gs.lastOutcome = OutcomeContinued
	return OutcomeContinued
}

func (gs *GameState) finish(outcome Outcome) Outcome {
	gs.state = RoundOver
	gs.lastOutcome = outcome
	glog.Infof("Round %s over after %d ticks: %v, score=%d", gs.roundID, gs.ticks, outcome, gs.score)
	return outcome
}

func (gs *GameState) State() RoundState {
	return gs.state
}

func (gs *GameState) IsOver() bool {
	return gs.state == RoundOver
}

func (gs *GameState) Score() int {
	return gs.score
}

func (gs *GameState) Best() int {
	return gs.best
}

func (gs *GameState) Heading() Direction {
	return gs.heading
}

func (gs *GameState) PendingDirection() Direction {
	return gs.pending
}

func (gs *GameState) Food() (Coord, bool) {
	return gs.food, gs.hasFood
}

func (gs *GameState) Snake() *Snake {
	return gs.snake
}

func (gs *GameState) LastOutcome() Outcome {
	return gs.lastOutcome
}

func (gs *GameState) RoundID() string {
	return gs.roundID
}

func (gs *GameState) Snapshot() Snapshot {
	body := gs.snake.Body()
	return Snapshot{
		RoundID:     gs.roundID,
		Field:       *gs.Field,
		Snake:       body,
		HeadIndex:   len(body) - 1,
		Food:        gs.food,
		HasFood:     gs.hasFood,
		Score:       gs.score,
		Best:        gs.best,
		Ticks:       gs.ticks,
		State:       gs.state,
		LastOutcome: gs.lastOutcome,
	}
}
