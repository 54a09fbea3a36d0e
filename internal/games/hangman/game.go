package hangman

import (
	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Mode selects where target words come from.
type Mode string

const (
	ModeClassic   Mode = "classic"   // all configured words on one board
	ModeChallenge Mode = "challenge" // one fetched word with hint and category
)

// Game wraps a Round with everything the player sees around it.
type Game struct {
	mode      Mode
	round     *Round
	words     []string
	challenge words.Challenge
	loading   bool
	zoom      int

	screenW  int
	screenH  int
	reserved int // terminal rows below the board
	tooSmall bool
}

// New creates a classic game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewChallenge creates a challenge game. Its words arrive via ApplyChallenge.
func NewChallenge() *Game {
	return &Game{mode: ModeChallenge}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeChallenge), func() registry.Game {
		return NewChallenge()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeChallenge {
		return "Galgenraten (Herausforderung)"
	}
	return "Galgenraten"
}

// Reset starts a fresh game with the current settings.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := CurrentSettings()

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.zoom = s.Zoom
	g.challenge = words.Challenge{}
	g.loading = false

	if g.mode == ModeChallenge {
		g.words = nil
		g.loading = true
	} else {
		g.words = s.Words
	}
	g.round = NewRound(g.words, s.Lives)

	g.checkScreenSize()
}

// checkScreenSize checks whether the board, gallows and keyboard fit.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minBoardH
}

// SetReservedRows records the rows the host draws below the board,
// so the size notice can name the terminal minimum.
func (g *Game) SetReservedRows(n int) {
	g.reserved = core.Max(0, n)
}

// MinTerminalSize returns the smallest terminal that fits the board.
func (g *Game) MinTerminalSize() (int, int) {
	return minScreenW, minBoardH + g.reserved
}

// Resize adapts the layout without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := false

	if in.Has(core.ActionZoomIn) {
		changed = g.setZoom(g.zoom+ZoomStep) || changed
	}
	if in.Has(core.ActionZoomOut) {
		changed = g.setZoom(g.zoom-ZoomStep) || changed
	}

	if in.Has(core.ActionRestart) && len(g.words) > 0 {
		g.round.NewRound(g.words)
		changed = true
	}

	// Nothing to guess until the first challenge arrives
	if len(g.round.TargetLetters()) > 0 {
		for _, letter := range in.Letters {
			if g.round.AcceptGuess(letter) {
				changed = true
			}
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) setZoom(z int) bool {
	z = core.Clamp(z, MinZoom, MaxZoom)
	if z == g.zoom {
		return false
	}
	g.zoom = z
	return true
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	status := g.round.Status()
	return core.GameState{
		Over:      status != StatusPlaying,
		Won:       status == StatusWon,
		Wrong:     g.round.WrongGuessCount(),
		Lives:     g.round.Lives(),
		LivesLeft: g.round.LivesRemaining(),
		Loading:   g.loading,
		Words:     g.round.Words(),
	}
}

// Round exposes the underlying round.
func (g *Game) Round() *Round {
	return g.round
}

// Zoom returns the current zoom in percent.
func (g *Game) Zoom() int {
	return g.zoom
}

// WantsChallenge reports whether this game plays fetched challenges.
func (g *Game) WantsChallenge() bool {
	return g.mode == ModeChallenge
}

// SetLoading marks a challenge request as in flight.
func (g *Game) SetLoading(loading bool) {
	g.loading = loading
}

// ApplyChallenge starts a new round on the given challenge.
func (g *Game) ApplyChallenge(ch words.Challenge) {
	g.challenge = ch
	g.words = []string{ch.Word}
	g.round.NewRound(g.words)
	g.loading = false
}

// Challenge returns the challenge being played, if any.
func (g *Game) Challenge() words.Challenge {
	return g.challenge
}

var _ registry.ChallengeGame = (*Game)(nil)
