package types

import (
	"fmt"

	"snake/internal/domain"
)

const (
	TitleGameOver = "Game Over!"
	TitleBoardWin = "You Win!"
	HintGameOver  = "Press R to Restart or ESC to Quit"
	HintPlaying   = "W/A/S/D or Arrows to move"
)

func OverlayTitle(outcome domain.Outcome) string {
	if outcome == domain.OutcomeBoardFull {
		return TitleBoardWin
	}
	return TitleGameOver
}

// OutcomeMessage explains why the round ended.
func OutcomeMessage(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeWallCollision:
		return "You hit the wall"
	case domain.OutcomeSelfCollision:
		return "You ran into yourself"
	case domain.OutcomeBoardFull:
		return "The board is full"
	}
	return ""
}

func ScoreLine(snapshot domain.Snapshot) string {
	return fmt.Sprintf("Score: %d  Best: %d", snapshot.Score, snapshot.Best)
}
