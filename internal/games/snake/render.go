package snake

import (
	"fmt"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// Theme holds the colors the game is drawn with.
type Theme struct {
	BoardLight core.Color // Even (col+row) squares
	BoardDark  core.Color // Odd (col+row) squares
	Snake      core.Color
	Food       core.Color
	Text       core.Color
}

// DefaultTheme returns the pink checkerboard theme.
func DefaultTheme() Theme {
	return Theme{
		BoardLight: core.ColorPink,
		BoardDark:  core.ColorDarkPink,
		Snake:      core.ColorBlack,
		Food:       core.ColorLime,
		Text:       core.ColorBlack,
	}
}

// Overlay text positions in playfield pixels.
const (
	scoreX        = 10
	scoreY        = 10
	bannerOffsetY = -50 // GAME OVER banner, relative to the board's vertical center
	finalOffsetY  = 10  // Final score, relative to the board's vertical center
)

// Render draws a complete frame: board, snake, food and score.
// Once the game is over the game-over overlay is drawn on top.
func Render(dst core.Canvas, st *State, theme Theme) {
	DrawBoard(dst, theme)
	st.snake.Draw(dst, theme.Snake)
	st.food.Draw(dst, theme.Food)
	DrawScore(dst, st.snake.Score(), theme)

	if st.phase == PhaseGameOver {
		DrawGameOver(dst, st.snake.Score(), theme)
	}
}

// DrawBoard fills every cell, alternating colors by (col+row) parity.
func DrawBoard(dst core.Canvas, theme Theme) {
	for row := range core.GridHeight {
		for col := range core.GridWidth {
			c := theme.BoardDark
			if (col+row)%2 == 0 {
				c = theme.BoardLight
			}
			dst.FillRect(core.CellAt(col, row).Rect(), c)
		}
	}
}

// DrawScore draws the running score in the top-left corner.
func DrawScore(dst core.Canvas, score int, theme Theme) {
	dst.DrawText(scoreX, scoreY, scoreText(score), core.FontScore, theme.Text)
}

// DrawGameOver draws the centered banner and the final score.
func DrawGameOver(dst core.Canvas, score int, theme Theme) {
	mid := core.ScreenHeight / 2
	dst.DrawTextCentered(mid+bannerOffsetY, "GAME OVER", core.FontBanner, theme.Text)
	dst.DrawTextCentered(mid+finalOffsetY, scoreText(score), core.FontScore, theme.Text)
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
