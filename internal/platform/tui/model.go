package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/registry"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// requestSeq numbers challenge requests process-wide, so a result can never be
// mistaken for one of a later game model.
var requestSeq atomic.Int64

// challengeMsg delivers the result of a challenge request.
// seq identifies the request so superseded results can be dropped.
type challengeMsg struct {
	seq       int64
	challenge words.Challenge
}

// fetchCmd asks the provider for a challenge on a command goroutine.
// Provider.Next never fails, so the message always carries a usable word.
func fetchCmd(ctx context.Context, provider *words.Provider, seq int64) tea.Cmd {
	return func() tea.Msg {
		return challengeMsg{seq: seq, challenge: provider.Next(ctx)}
	}
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game      registry.Game
	challenge registry.ChallengeGame // nil unless the game plays fetched words
	screen    *core.Screen
	provider  *words.Provider
	history   *History
	logger    *log.Logger
	ctx       context.Context
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	gameState core.GameState

	fetchSeq    int64
	cancelFetch context.CancelFunc
	initCmd     tea.Cmd

	quitting   bool
	backToMenu bool
}

// NewGameModel resets the game and, for challenge games, starts the first
// challenge request. The request is issued by Init.
func NewGameModel(game registry.Game, opts Options) GameModel {
	opts = opts.withDefaults()
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:     game,
		provider: opts.Provider,
		history:  opts.History,
		logger:   opts.Logger.With("game", game.ID()),
		ctx:      opts.Context,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.help.Width = cfg.ScreenW
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	m.game.Reset(cfg)
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	m.layout()
	m.gameState = m.game.State()

	if cg, ok := game.(registry.ChallengeGame); ok && cg.WantsChallenge() {
		m.challenge = cg
		m, m.initCmd = m.requestChallenge()
	}
	return m
}

// Init issues the first challenge request, if any.
func (m GameModel) Init() tea.Cmd {
	return m.initCmd
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case challengeMsg:
		return m.handleChallenge(msg)

	case spinner.TickMsg:
		if !m.gameState.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopFetch()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.stopFetch()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.NewChallenge):
		// One request at a time; the current round stays playable meanwhile
		if m.challenge == nil || m.gameState.Loading {
			return m, nil
		}
		return m.requestChallenge()
	}

	frame := core.NewInputFrame()
	m.keys.MapKeyToFrame(msg, &frame)
	if frame.Empty() {
		return m, nil
	}

	wasOver := m.gameState.Over
	result := m.game.Step(frame)
	m.gameState = result.State

	if result.Changed && m.gameState.Over && !wasOver {
		m.recordRound()
	}
	return m, nil
}

// handleResize adapts the layout to the new window size without resetting the round.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout gives the board everything above the footer.
func (m *GameModel) layout() {
	if fg, ok := m.game.(registry.FramedGame); ok {
		fg.SetReservedRows(lipgloss.Height(m.footer()))
	}
	m.screen.Resize(m.config.ScreenW, m.boardHeight())
	m.game.Resize(m.config.ScreenW, m.boardHeight())
}

// boardHeight returns the rows left for the game once the footer is drawn.
func (m GameModel) boardHeight() int {
	return max(0, m.config.ScreenH-lipgloss.Height(m.footer()))
}

// requestChallenge supersedes any request in flight and starts a new one.
func (m GameModel) requestChallenge() (GameModel, tea.Cmd) {
	m.stopFetch()
	m.fetchSeq = requestSeq.Add(1)

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelFetch = cancel
	m.challenge.SetLoading(true)
	m.gameState = m.game.State()
	m.layout()
	m.logger.Debug("requesting challenge", "seq", m.fetchSeq)

	return m, tea.Batch(fetchCmd(ctx, m.provider, m.fetchSeq), m.spinner.Tick)
}

// handleChallenge applies the newest challenge and drops superseded ones.
func (m GameModel) handleChallenge(msg challengeMsg) (tea.Model, tea.Cmd) {
	if m.challenge == nil || msg.seq != m.fetchSeq || m.backToMenu || m.quitting {
		m.logger.Debug("dropping stale challenge", "seq", msg.seq, "current", m.fetchSeq)
		return m, nil
	}

	m.stopFetch()
	m.challenge.ApplyChallenge(msg.challenge)
	m.gameState = m.game.State()
	m.layout()
	m.logger.Info("new round", "category", msg.challenge.Category, "letters", len([]rune(msg.challenge.Word)))
	return m, nil
}

// stopFetch cancels the request in flight, if any.
func (m *GameModel) stopFetch() {
	if m.cancelFetch != nil {
		m.cancelFetch()
		m.cancelFetch = nil
	}
}

// recordRound appends the finished round to the session history.
func (m *GameModel) recordRound() {
	rec := RoundRecord{
		Mode:       m.game.ID(),
		Words:      m.gameState.Words,
		Won:        m.gameState.Won,
		Wrong:      m.gameState.Wrong,
		Lives:      m.gameState.Lives,
		FinishedAt: time.Now(),
	}
	if m.history != nil {
		m.history.Add(rec)
	}
	m.logger.Info("round finished", "won", rec.Won, "wrong", rec.Wrong, "lives", rec.Lives)
}

// saveScreenshot saves the current board to ~/.hangman/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".hangman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// footer renders the help line, prefixed by the spinner while loading.
func (m GameModel) footer() string {
	helpView := m.help.View(m.keys)
	if !m.gameState.Loading {
		return helpView
	}
	return m.spinner.View() + " Lade neues Wort ...  " + helpView
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.footer()))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Options carries the collaborators shared by every screen of a session.
type Options struct {
	// Config holds the initial screen size and seed.
	Config core.RuntimeConfig

	// Provider supplies challenge words. Nil means the built-in fallback table.
	Provider *words.Provider

	// History receives finished rounds. Nil means a fresh history.
	History *History

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Context bounds challenge requests. Nil means context.Background().
	Context context.Context

	// Mode starts the session directly in this game mode, skipping the menu.
	Mode string
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Provider == nil {
		o.Provider = words.NewProvider(words.ProviderConfig{Seed: o.Config.Seed, Logger: o.Logger})
	}
	if o.History == nil {
		o.History = &History{}
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
	return o
}
