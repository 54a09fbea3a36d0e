// Package hangman implements Galgenraten: a round of letter guesses against a
// set of German target words, plus the board, gallows and keyboard views that
// project it onto a screen.
package hangman

import (
	"sync"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Zoom limits in percent. Zoom only changes letter spacing.
const (
	MinZoom     = 50
	MaxZoom     = 200
	ZoomStep    = 10
	DefaultZoom = 100
)

// Settings are applied to every game created after Configure.
type Settings struct {
	Words []string // Classic board words
	Lives int      // Life budget per round
	Zoom  int      // Initial zoom in percent
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{
		Words: words.DefaultWords,
		Lives: DefaultLives,
		Zoom:  DefaultZoom,
	}
)

// Configure replaces the settings used by new games.
// Zero fields keep their defaults.
func Configure(s Settings) {
	if len(s.Words) == 0 {
		s.Words = words.DefaultWords
	}
	if s.Lives <= 0 {
		s.Lives = DefaultLives
	}
	if s.Zoom == 0 {
		s.Zoom = DefaultZoom
	}
	s.Zoom = core.Clamp(s.Zoom, MinZoom, MaxZoom)

	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// CurrentSettings returns a copy of the active settings.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	s := settings
	s.Words = append([]string(nil), settings.Words...)
	return s
}
