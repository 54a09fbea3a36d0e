package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Options{Config: core.DefaultConfig()})
	if m.current != viewMenu {
		t.Fatalf("session should start in the menu, got %v", m.current)
	}
	if !strings.Contains(m.View(), "Galgenraten") {
		t.Errorf("menu should list the modes:\n%s", m.View())
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != viewGame {
		t.Fatalf("enter should start a game, got %v", m.current)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != viewMenu {
		t.Fatalf("esc should return to the menu, got %v", m.current)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionStartsInMode(t *testing.T) {
	m := NewSessionModel(Options{Config: core.DefaultConfig(), Mode: "classic"})
	if m.current != viewGame || m.gameModel.game.ID() != "classic" {
		t.Fatalf("session should start in the classic game")
	}

	unknown := NewSessionModel(Options{Config: core.DefaultConfig(), Mode: "tetris"})
	if unknown.current != viewMenu {
		t.Error("unknown mode should fall back to the menu")
	}
}

func TestSessionHistory(t *testing.T) {
	history := &History{}
	m := NewSessionModel(Options{Config: core.DefaultConfig(), History: history})

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.current != viewHistory {
		t.Fatalf("tab should open the history, got %v", m.current)
	}
	if !strings.Contains(m.View(), "Noch keine Runde") {
		t.Errorf("empty history view:\n%s", m.View())
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != viewMenu {
		t.Fatalf("esc should close the history, got %v", m.current)
	}

	history.Add(RoundRecord{Mode: "classic", Words: []string{"RUHE"}, Won: true, Wrong: 2, Lives: 6, FinishedAt: time.Now()})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()
	if !strings.Contains(view, "1 gespielt, 1 gewonnen") || !strings.Contains(view, "RUHE") {
		t.Errorf("history view:\n%s", view)
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(Options{Config: core.DefaultConfig(), Mode: "classic"})
	m = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.gameModel.screen.Width() != 120 {
		t.Errorf("game screen width = %d, want 120", m.gameModel.screen.Width())
	}
	if m.opts.Config.ScreenW != 120 || m.opts.Config.ScreenH != 40 {
		t.Errorf("session config = %+v", m.opts.Config)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Options{Config: core.DefaultConfig()})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || m.View() != "" {
		t.Error("ctrl+c in the menu should quit")
	}
}

func TestHistoryRecordsNewestFirst(t *testing.T) {
	h := &History{}
	h.Add(RoundRecord{Words: []string{"A"}, Won: true})
	h.Add(RoundRecord{Words: []string{"B"}})

	recs := h.Records()
	if recs[0].Words[0] != "B" || recs[1].Words[0] != "A" {
		t.Errorf("Records() = %+v, want newest first", recs)
	}
	if played, won := h.Stats(); played != 2 || won != 1 {
		t.Errorf("Stats() = %d, %d; want 2, 1", played, won)
	}
}
