package hangman

import (
	"fmt"

	"github.com/vovakirdan/tui-hangman/internal/alphabet"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

// Minimum board size for the full layout.
const (
	minScreenW = 60
	minBoardH  = 19
)

const (
	keysPerRow = 10
	keyWidth   = 4 // "[A] "
)

// Render draws the round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Fenster zu klein", core.ColorYellow)
		w, h := g.MinTerminalSize()
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("mindestens %dx%d", w, h), core.ColorGray)
		return
	}

	status := g.round.Status()
	g.renderHeader(dst)

	figure := core.ColorBrightWhite
	if status == StatusLost {
		figure = core.ColorRed
	}
	DrawGallows(dst, 2, 2, PartsShown(g.round.WrongGuessCount(), g.round.Lives()), figure)

	boardX := 2 + gallowsW + 2
	next := g.renderBoard(dst, core.NewRect(boardX, 2, dst.Width()-boardX-1, dst.Height()-8), status)
	g.renderChallengeInfo(dst, boardX, next)

	g.renderKeyboard(dst, dst.Height()-5, status)
	g.renderStatus(dst, dst.Height()-1, status)
}

func (g *Game) renderHeader(dst *core.Screen) {
	dst.DrawTextCentered(0, "G A L G E N R A T E N", core.ColorCyan)

	lives := fmt.Sprintf("Leben %d / %d", g.round.LivesRemaining(), g.round.Lives())
	color := core.ColorBrightWhite
	if g.round.LivesRemaining() <= 1 {
		color = core.ColorRed
	}
	dst.DrawTextColor(2, 0, lives, color)

	zoom := fmt.Sprintf("%d%%", g.zoom)
	dst.DrawTextColor(dst.Width()-len(zoom)-2, 0, zoom, core.ColorGray)
}

// slotWidth returns the columns one letter occupies at the current zoom.
func (g *Game) slotWidth() int {
	return core.Max(1, (2*g.zoom+50)/100)
}

// renderBoard draws every target word on its own row, centered in area.
// Zoom widens the slots only as far as the word still fits the area.
// Returns the first free row below the board.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect, status Status) int {
	y := area.Y

	for _, word := range g.round.Words() {
		if y >= area.Bottom() {
			break
		}
		runes := []rune(word)
		slot := g.slotWidth()
		if len(runes)*slot > area.W {
			slot = core.Max(1, area.W/len(runes))
		}
		x := area.X + core.Max(0, (area.W-len(runes)*slot)/2)

		for i, r := range runes {
			cx := x + i*slot
			if alphabet.IsSeparator(r) {
				continue
			}
			ch, color := g.letterCell(r, status)
			dst.SetColor(cx, y, ch, color)
		}
		y += 2
	}
	return y
}

// letterCell decides how a target letter appears on the board.
func (g *Game) letterCell(r rune, status Status) (rune, core.Color) {
	guessed := g.round.Guessed(r)
	switch {
	case status == StatusWon:
		return r, core.ColorGreen
	case status == StatusLost && !guessed:
		return r, core.ColorRed
	case guessed:
		return r, core.ColorIndigo
	default:
		return '_', core.ColorGray
	}
}

func (g *Game) renderChallengeInfo(dst *core.Screen, x, y int) {
	if g.mode != ModeChallenge {
		return
	}
	if g.loading && len(g.words) == 0 {
		dst.DrawTextColor(x, y, "Lade Herausforderung ...", core.ColorYellow)
		return
	}
	if g.challenge.Category != "" {
		dst.DrawTextColor(x, y, "Kategorie: "+g.challenge.Category, core.ColorCyan)
		y++
	}
	if g.challenge.Hint != "" {
		dst.DrawTextColor(x, y, "Hinweis:   "+g.challenge.Hint, core.ColorGray)
	}
}

// renderKeyboard draws the alphabet in rows of ten starting at row y.
func (g *Game) renderKeyboard(dst *core.Screen, y int, status Status) {
	rowW := keysPerRow*keyWidth - 1
	x0 := (dst.Width() - rowW) / 2

	for i, r := range alphabet.Letters {
		x := x0 + (i%keysPerRow)*keyWidth
		row := y + i/keysPerRow
		label, color := g.keyCell(r, status)
		dst.DrawTextColor(x, row, label, color)
	}
}

// keyCell decides how a keyboard key appears. Used keys lose their brackets.
func (g *Game) keyCell(r rune, status Status) (string, core.Color) {
	letter := string(r)
	switch {
	case g.round.Guessed(r) && g.round.IsTarget(r):
		return " " + letter + " ", core.ColorGreen
	case g.round.Guessed(r):
		return " " + letter + " ", core.ColorRed
	case status != StatusPlaying:
		return "[" + letter + "]", core.ColorDim
	default:
		return "[" + letter + "]", core.ColorWhite
	}
}

func (g *Game) renderStatus(dst *core.Screen, y int, status Status) {
	switch status {
	case StatusWon:
		dst.DrawTextCentered(y, "GEWONNEN!  Enter: neues Spiel", core.ColorGreen)
	case StatusLost:
		dst.DrawTextCentered(y, "VERLOREN!  Enter: neues Spiel", core.ColorRed)
	default:
		if len(g.round.TargetLetters()) > 0 {
			dst.DrawTextCentered(y, "Buchstaben tippen zum Raten", core.ColorGray)
		}
	}
}
