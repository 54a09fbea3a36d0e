package hangman

import "github.com/vovakirdan/tui-hangman/internal/core"

// BodyParts is the number of figure parts drawn on the gallows.
const BodyParts = 6

// Gallows footprint on screen.
const (
	gallowsW = 14
	gallowsH = 9
)

// PartsShown maps wrong guesses to visible body parts.
// With six lives every wrong guess adds one part; other budgets scale
// proportionally, and the figure only completes once the round is lost.
func PartsShown(wrong, lives int) int {
	if lives <= 0 || wrong <= 0 {
		return 0
	}
	if wrong >= lives {
		return BodyParts
	}
	parts := (wrong*BodyParts + lives - 1) / lives
	return core.Min(parts, BodyParts-1)
}

// DrawGallows draws the frame and the first n body parts with its top-left
// corner at (x, y).
//
//	┌──────┐
//	│      │
//	│      O
//	│     /|\
//	│      |
//	│     / \
//	│
//	│
//	┴───────────
func DrawGallows(dst *core.Screen, x, y, parts int, figure core.Color) {
	frame := core.ColorWhite

	// Beam, pillar, base and rope are always visible
	dst.SetColor(x, y, '┌', frame)
	dst.DrawHLine(x+1, y, 6, '─', frame)
	dst.SetColor(x+7, y, '┐', frame)
	dst.DrawVLine(x, y+1, gallowsH-2, '│', frame)
	dst.SetColor(x, y+gallowsH-1, '┴', frame)
	dst.DrawHLine(x+1, y+gallowsH-1, gallowsW-3, '─', frame)
	dst.SetColor(x+7, y+1, '│', frame)

	cx := x + 7
	steps := []func(){
		func() { dst.SetColor(cx, y+2, 'O', figure) },     // head
		func() { dst.DrawVLine(cx, y+3, 2, '|', figure) }, // body
		func() { dst.SetColor(cx-1, y+3, '/', figure) },   // left arm
		func() { dst.SetColor(cx+1, y+3, '\\', figure) },  // right arm
		func() { dst.SetColor(cx-1, y+5, '/', figure) },   // left leg
		func() { dst.SetColor(cx+1, y+5, '\\', figure) },  // right leg
	}
	for i := 0; i < core.Clamp(parts, 0, BodyParts); i++ {
		steps[i]()
	}
}
