package domain

import (
	"testing"
)

// firstRand always picks the first candidate, so food lands on the first free
// cell in row-major order.
type firstRand struct{}

func (firstRand) Intn(n int) int { return 0 }

func newTestGame(t *testing.T) *GameState {
	t.Helper()
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return NewGameState(cfg, firstRand{})
}

// place swaps in a custom body (tail first) and food for scenario tests.
func place(gs *GameState, points []Coord, heading Direction, food *Coord) {
	gs.snake = newSnakeFromPoints(points, heading)
	gs.heading = heading
	gs.pending = heading
	if food != nil {
		gs.food, gs.hasFood = *food, true
	} else {
		gs.food, gs.hasFood = Coord{}, false
	}
}

func assertBody(t *testing.T, got, want []Coord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("body len=%d want=%d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestReset_InitialRound(t *testing.T) {
	gs := newTestGame(t)

	assertBody(t, gs.Snake().Body(), []Coord{{14, 12}, {15, 12}, {16, 12}})
	if gs.Heading() != DirectionRight || gs.PendingDirection() != DirectionRight {
		t.Fatalf("heading=%v pending=%v want RIGHT", gs.Heading(), gs.PendingDirection())
	}
	if gs.State() != RoundPlaying {
		t.Fatalf("state=%v want PLAYING", gs.State())
	}
	if gs.Score() != 0 {
		t.Fatalf("score=%d want 0", gs.Score())
	}
	food, ok := gs.Food()
	if !ok {
		t.Fatal("food not placed")
	}
	if gs.Snake().Contains(food) {
		t.Fatalf("food %v placed on snake", food)
	}
	if gs.RoundID() == "" {
		t.Fatal("round id empty")
	}
}

func TestTick_MovesRightWithoutInput(t *testing.T) {
	gs := newTestGame(t)

	if got := gs.Tick(); got != OutcomeContinued {
		t.Fatalf("outcome=%v want CONTINUED", got)
	}
	assertBody(t, gs.Snake().Body(), []Coord{{15, 12}, {16, 12}, {17, 12}})
	if gs.Score() != 0 {
		t.Fatalf("score=%d want 0", gs.Score())
	}
}

func TestTick_EatFoodAhead(t *testing.T) {
	gs := newTestGame(t)
	food := Coord{17, 12}
	place(gs, []Coord{{14, 12}, {15, 12}, {16, 12}}, DirectionRight, &food)
	before := gs.Snake().Length()

	if got := gs.Tick(); got != OutcomeContinued {
		t.Fatalf("outcome=%v want CONTINUED", got)
	}
	if gs.Snake().Length() != before+1 {
		t.Fatalf("len=%d want %d", gs.Snake().Length(), before+1)
	}
	if gs.Score() != 1 {
		t.Fatalf("score=%d want 1", gs.Score())
	}
	next, ok := gs.Food()
	if !ok {
		t.Fatal("no food after eating on a mostly empty board")
	}
	if gs.Snake().Contains(next) {
		t.Fatalf("new food %v overlaps snake %v", next, gs.Snake().Points)
	}
	assertBody(t, gs.Snake().Body(), []Coord{{14, 12}, {15, 12}, {16, 12}, {17, 12}})
}

func TestTick_LengthUnchangedWithoutFood(t *testing.T) {
	gs := newTestGame(t)
	place(gs, []Coord{{5, 5}, {6, 5}, {7, 5}, {8, 5}}, DirectionRight, nil)

	for i := 0; i < 5; i++ {
		if got := gs.Tick(); got != OutcomeContinued {
			t.Fatalf("tick %d outcome=%v", i, got)
		}
		if gs.Snake().Length() != 4 {
			t.Fatalf("tick %d len=%d want 4", i, gs.Snake().Length())
		}
	}
}

func TestTick_WallCollisionAtLastColumn(t *testing.T) {
	gs := newTestGame(t)
	place(gs, []Coord{{29, 7}, {30, 7}, {31, 7}}, DirectionRight, nil)

	if got := gs.Tick(); got != OutcomeWallCollision {
		t.Fatalf("outcome=%v want WALL_COLLISION", got)
	}
	if gs.State() != RoundOver {
		t.Fatalf("state=%v want OVER", gs.State())
	}
	assertBody(t, gs.Snake().Body(), []Coord{{29, 7}, {30, 7}, {31, 7}})
}

func TestTick_OneCellInwardIsSafe(t *testing.T) {
	gs := newTestGame(t)
	place(gs, []Coord{{28, 7}, {29, 7}, {30, 7}}, DirectionRight, nil)

	if got := gs.Tick(); got != OutcomeContinued {
		t.Fatalf("outcome=%v want CONTINUED", got)
	}
	if gs.Snake().Head() != (Coord{31, 7}) {
		t.Fatalf("head=%v want {31 7}", gs.Snake().Head())
	}
	if got := gs.Tick(); got != OutcomeWallCollision {
		t.Fatalf("outcome=%v want WALL_COLLISION", got)
	}
}

func TestTick_WallCollisionEveryEdge(t *testing.T) {
	tests := []struct {
		name    string
		body    []Coord
		heading Direction
	}{
		{"top", []Coord{{5, 2}, {5, 1}, {5, 0}}, DirectionUp},
		{"bottom", []Coord{{5, 21}, {5, 22}, {5, 23}}, DirectionDown},
		{"left", []Coord{{2, 4}, {1, 4}, {0, 4}}, DirectionLeft},
		{"right", []Coord{{29, 4}, {30, 4}, {31, 4}}, DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestGame(t)
			place(gs, tt.body, tt.heading, nil)
			if got := gs.Tick(); got != OutcomeWallCollision {
				t.Fatalf("outcome=%v want WALL_COLLISION", got)
			}
		})
	}
}

func TestTick_SelfCollision(t *testing.T) {
	gs := newTestGame(t)
	food := Coord{0, 0}
	place(gs, []Coord{{11, 10}, {12, 10}, {13, 10}, {14, 10}, {14, 11}}, DirectionDown, &food)

	gs.SetDirection(DirectionLeft)
	if got := gs.Tick(); got != OutcomeContinued {
		t.Fatalf("first turn outcome=%v want CONTINUED", got)
	}

	gs.SetDirection(DirectionUp)
	if got := gs.Tick(); got != OutcomeSelfCollision {
		t.Fatalf("outcome=%v want SELF_COLLISION", got)
	}
	if gs.State() != RoundOver {
		t.Fatalf("state=%v want OVER", gs.State())
	}
}

func TestTick_MoveOntoVacatingTail(t *testing.T) {
	gs := newTestGame(t)
	food := Coord{0, 0}
	place(gs, []Coord{{10, 10}, {11, 10}, {11, 11}, {10, 11}}, DirectionLeft, &food)

	gs.SetDirection(DirectionUp)
	if got := gs.Tick(); got != OutcomeContinued {
		t.Fatalf("outcome=%v want CONTINUED", got)
	}
	assertBody(t, gs.Snake().Body(), []Coord{{11, 10}, {11, 11}, {10, 11}, {10, 10}})
	if !gs.Snake().Contains(Coord{10, 10}) {
		t.Fatal("occupancy lost the new head that replaced the tail")
	}
}

func TestSetDirection_ReversalIgnored(t *testing.T) {
	for _, heading := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		t.Run(heading.String(), func(t *testing.T) {
			gs := newTestGame(t)
			place(gs, []Coord{{10, 10}}, heading, nil)

			if gs.SetDirection(heading.Opposite()) {
				t.Fatalf("reversal %v accepted", heading.Opposite())
			}
			gs.Tick()
			if gs.Heading() != heading {
				t.Fatalf("heading=%v want %v", gs.Heading(), heading)
			}
		})
	}
}

func TestSetDirection_LastAcceptedWins(t *testing.T) {
	gs := newTestGame(t)

	gs.SetDirection(DirectionUp)
	gs.SetDirection(DirectionLeft)
	if gs.PendingDirection() != DirectionUp {
		t.Fatalf("pending=%v want UP", gs.PendingDirection())
	}

	gs.SetDirection(DirectionDown)
	if gs.PendingDirection() != DirectionDown {
		t.Fatalf("pending=%v want DOWN", gs.PendingDirection())
	}

	gs.Tick()
	if gs.Snake().Head() != (Coord{16, 13}) {
		t.Fatalf("head=%v want {16 13}", gs.Snake().Head())
	}
}

func TestSetDirection_IgnoredWhenOver(t *testing.T) {
	gs := newTestGame(t)
	place(gs, []Coord{{29, 7}, {30, 7}, {31, 7}}, DirectionRight, nil)
	gs.Tick()

	if gs.SetDirection(DirectionUp) {
		t.Fatal("direction accepted after round ended")
	}
}

func TestTick_NoOpWhenOver(t *testing.T) {
	gs := newTestGame(t)
	place(gs, []Coord{{29, 7}, {30, 7}, {31, 7}}, DirectionRight, nil)
	gs.Tick()
	before := gs.Snapshot()

	if got := gs.Tick(); got != OutcomeWallCollision {
		t.Fatalf("outcome=%v want WALL_COLLISION", got)
	}
	after := gs.Snapshot()
	if after.Ticks != before.Ticks || after.Score != before.Score {
		t.Fatalf("tick changed an ended round: %+v -> %+v", before, after)
	}
	assertBody(t, after.Snake, before.Snake)
}

func TestTick_BoardFullWin(t *testing.T) {
	cfg := &GameConfig{Width: 80, Height: 20, CellSize: 20, TickRate: 12}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	gs := NewGameState(cfg, firstRand{})

	food, ok := gs.Food()
	if !ok || food != (Coord{3, 0}) {
		t.Fatalf("food=%v ok=%v want {3 0}", food, ok)
	}

	if got := gs.Tick(); got != OutcomeBoardFull {
		t.Fatalf("outcome=%v want BOARD_FULL_WIN", got)
	}
	if gs.State() != RoundOver {
		t.Fatalf("state=%v want OVER", gs.State())
	}
	if gs.Score() != 1 {
		t.Fatalf("score=%d want 1", gs.Score())
	}
	if _, ok := gs.Food(); ok {
		t.Fatal("food present on a full board")
	}
	if gs.Snake().Length() != 4 {
		t.Fatalf("len=%d want 4", gs.Snake().Length())
	}
}

func steerTowardFood(gs *GameState) {
	food, ok := gs.Food()
	if !ok {
		return
	}
	head := gs.Snake().Head()

	var wants []Direction
	if food.X > head.X {
		wants = append(wants, DirectionRight)
	} else if food.X < head.X {
		wants = append(wants, DirectionLeft)
	}
	if food.Y > head.Y {
		wants = append(wants, DirectionDown)
	} else if food.Y < head.Y {
		wants = append(wants, DirectionUp)
	}
	wants = append(wants, DirectionUp, DirectionDown)

	for _, d := range wants {
		if gs.SetDirection(d) {
			return
		}
	}
}

func TestScore_MonotonicAndResetOnlyByReset(t *testing.T) {
	gs := NewGameState(DefaultGameConfig(), NewRand(7))
	last := 0

	for i := 0; i < 200 && !gs.IsOver(); i++ {
		steerTowardFood(gs)
		gs.Tick()
		if gs.Score() < last {
			t.Fatalf("score dropped from %d to %d", last, gs.Score())
		}
		last = gs.Score()
	}
	if last == 0 {
		t.Fatal("greedy walk never ate; test is not exercising scoring")
	}

	gs.Reset()
	if gs.Score() != 0 {
		t.Fatalf("score after reset=%d want 0", gs.Score())
	}
	if gs.Best() != last {
		t.Fatalf("best=%d want %d", gs.Best(), last)
	}
	if gs.State() != RoundPlaying {
		t.Fatalf("state after reset=%v", gs.State())
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	gs := newTestGame(t)
	snap := gs.Snapshot()
	snap.Snake[0] = Coord{-1, -1}

	if gs.Snake().Tail() == (Coord{-1, -1}) {
		t.Fatal("snapshot shares the snake's backing array")
	}
	if snap.Head() != (Coord{16, 12}) {
		t.Fatalf("snapshot head=%v want {16 12}", snap.Head())
	}
}
