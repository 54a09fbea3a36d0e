package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RoundRecord is one finished round.
type RoundRecord struct {
	Mode       string
	Words      []string
	Won        bool
	Wrong      int
	Lives      int
	FinishedAt time.Time
}

// History collects the rounds finished during one session.
// It is kept in memory only and dropped with the session.
type History struct {
	records []RoundRecord
}

// Add appends a finished round.
func (h *History) Add(r RoundRecord) {
	h.records = append(h.records, r)
}

// Records returns the rounds newest first.
func (h *History) Records() []RoundRecord {
	out := make([]RoundRecord, len(h.records))
	for i, r := range h.records {
		out[len(h.records)-1-i] = r
	}
	return out
}

// Stats returns the number of rounds played and won.
func (h *History) Stats() (played, won int) {
	for _, r := range h.records {
		if r.Won {
			won++
		}
	}
	return len(h.records), won
}

// HistoryModel is the Bubble Tea model for the round history screen.
type HistoryModel struct {
	history   *History
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(history *History, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		history: history,
		keys:    DefaultMenuKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Modus", Width: 10},
		{Title: "Wort", Width: 20},
		{Title: "Ergebnis", Width: 10},
		{Title: "Fehler", Width: 7},
		{Title: "Zeit", Width: 6},
	}

	// Give the word column whatever space is left
	fixed := 4 + 10 + 10 + 7 + 6 + 6*2 + 4
	if w := m.width - fixed; w > columns[2].Width {
		columns[2].Width = min(w, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the history.
func (m *HistoryModel) updateTableRows() {
	records := m.history.Records()
	rows := make([]table.Row, len(records))
	for i, r := range records {
		result := "verloren"
		if r.Won {
			result = "gewonnen"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(records)-i),
			r.Mode,
			strings.Join(r.Words, ", "),
			result,
			fmt.Sprintf("%d/%d", r.Wrong, r.Lives),
			r.FinishedAt.Format("15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	played, won := m.history.Stats()
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("V E R L A U F"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%d gespielt, %d gewonnen", played, won), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if played == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(emptyStyle.Render("Noch keine Runde beendet."))))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(historyKeys{m.keys})))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// historyKeys narrows the menu bindings to the ones the history screen uses.
type historyKeys struct{ k MenuKeyMap }

func (h historyKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Back, h.k.Quit}
}

func (h historyKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
