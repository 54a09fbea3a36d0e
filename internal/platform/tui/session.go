package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/registry"
)

// sessionView identifies which view a session is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for both local and SSH play. Every session owns
// its games and history; nothing is shared between sessions.
type SessionModel struct {
	opts      Options
	current   sessionView
	menu      MenuModel
	gameModel GameModel
	history   HistoryModel
	quitting  bool
}

// NewSessionModel creates a new session model. If opts.Mode names a
// registered mode, the session starts in that game instead of the menu.
func NewSessionModel(opts Options) SessionModel {
	opts = opts.withDefaults()
	m := SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Config.ScreenW, opts.Config.ScreenH),
	}
	if opts.Mode != "" {
		if game, err := registry.Create(opts.Mode); err == nil {
			m.startGame(game)
		} else {
			opts.Logger.Warn("unknown mode, showing menu", "mode", opts.Mode)
		}
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.current == viewGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.current {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.history = NewHistoryModel(m.opts.History, m.opts.Config.ScreenW, m.opts.Config.ScreenH)
		m.current = viewHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.opts.Logger.Error("cannot create game", "mode", selected.GameID, "error", err)
			m.menu = NewMenuModel(m.opts.Config.ScreenW, m.opts.Config.ScreenH)
			return m, nil
		}
		m.startGame(game)
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateHistory handles updates when the history screen is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) startGame(game registry.Game) {
	m.opts.Logger.Info("game started", "mode", game.ID())
	m.gameModel = NewGameModel(game, m.opts)
	m.current = viewGame
}

func (m *SessionModel) backToMenu() {
	m.current = viewMenu
	m.menu = NewMenuModel(m.opts.Config.ScreenW, m.opts.Config.ScreenH)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case viewGame:
		return m.gameModel.View()
	case viewHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local Bubble Tea session.
func Run(opts Options) error {
	model := NewSessionModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
