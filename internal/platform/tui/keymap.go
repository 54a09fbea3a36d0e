package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/alphabet"
	"github.com/vovakirdan/tui-hangman/internal/core"
)

// KeyMap defines the in-game key bindings.
// Letter keys are never bound: they always travel as guesses.
type KeyMap struct {
	Quit         key.Binding
	Back         key.Binding
	Restart      key.Binding
	NewChallenge key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	Screenshot   key.Binding
	Help         key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "beenden"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menü"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "neue runde"),
		),
		NewChallenge: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "neues wort"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom +"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom -"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "hilfe"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.NewChallenge, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.NewChallenge},
		{k.ZoomIn, k.ZoomOut},
		{k.Screenshot, k.Help},
		{k.Back, k.Quit},
	}
}

// MapKeyToFrame adds the round actions and guess letters carried by a key
// message to frame. Session keys (quit, back, help, screenshot, new challenge)
// are left to the caller.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	switch {
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
		return
	case key.Matches(msg, k.ZoomIn):
		frame.Set(core.ActionZoomIn)
		return
	case key.Matches(msg, k.ZoomOut):
		frame.Set(core.ActionZoomOut)
		return
	}

	if msg.Type != tea.KeyRunes || msg.Alt {
		return
	}
	for _, r := range keyLetters(msg.Runes) {
		frame.AddLetter(r)
	}
}

// keyLetters normalizes the runes of one key event into guess letters.
// A multi-rune event that forms a single letter as a whole (e.g. "ss") is
// one guess; otherwise each rune is tried on its own.
func keyLetters(runes []rune) []rune {
	if len(runes) > 1 {
		if r, ok := alphabet.NormalizeKey(string(runes)); ok {
			return []rune{r}
		}
	}
	var out []rune
	for _, raw := range runes {
		if r, ok := alphabet.NormalizeKey(string(raw)); ok {
			out = append(out, r)
		}
	}
	return out
}

// MenuKeyMap defines the key bindings shared by the menu and history screens.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "hoch"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "runter"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "spielen"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "verlauf"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "zurück"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "beenden"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.History, k.Back, k.Quit},
	}
}
