package hangman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

func TestPartsShown(t *testing.T) {
	tests := []struct {
		wrong, lives, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{5, 6, 5},
		{6, 6, 6},
		{9, 6, 6},
		{1, 8, 1},
		{7, 8, 5},
		{8, 8, 6},
		{1, 4, 2},
		{3, 4, 5},
		{4, 4, 6},
		{1, 0, 0},
	}

	for _, tt := range tests {
		if got := PartsShown(tt.wrong, tt.lives); got != tt.want {
			t.Errorf("PartsShown(%d, %d) = %d, want %d", tt.wrong, tt.lives, got, tt.want)
		}
	}
}

func TestDrawGallows(t *testing.T) {
	parts := []struct {
		x, y int
		r    rune
	}{
		{7, 2, 'O'},
		{7, 3, '|'},
		{6, 3, '/'},
		{8, 3, '\\'},
		{6, 5, '/'},
		{8, 5, '\\'},
	}

	for n := 0; n <= BodyParts; n++ {
		s := core.NewScreen(gallowsW, gallowsH)
		DrawGallows(s, 0, 0, n, core.ColorRed)

		if s.Get(0, 0) != '┌' || s.Get(0, gallowsH-1) != '┴' || s.Get(7, 1) != '│' {
			t.Fatalf("parts=%d: frame incomplete\n%s", n, s.String())
		}
		for i, p := range parts {
			drawn := s.Get(p.x, p.y) == p.r
			if drawn != (i < n) {
				t.Errorf("parts=%d: part %d drawn=%v\n%s", n, i, drawn, s.String())
			}
		}
	}
}

func TestRenderClassic(t *testing.T) {
	g := newClassic(t, "RUHE")
	s := core.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "G A L G E N R A T E N") {
		t.Errorf("header missing: %q", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Leben 6 / 6") {
		t.Errorf("lives missing: %q", s.Row(0))
	}
	if strings.Count(s.Row(2), "_") != 4 {
		t.Errorf("board row = %q, want four blanks", s.Row(2))
	}
	if !strings.Contains(s.Row(19), "[A]") {
		t.Errorf("keyboard row = %q", s.Row(19))
	}
	if !strings.Contains(s.Row(23), "Buchstaben tippen") {
		t.Errorf("status row = %q", s.Row(23))
	}

	g.Step(letters("RA"))
	g.Render(s)

	if !strings.Contains(s.Row(2), "R") || strings.Count(s.Row(2), "_") != 3 {
		t.Errorf("board row after R = %q", s.Row(2))
	}
	if strings.Contains(s.Row(19), "[A]") {
		t.Errorf("guessed key should lose its brackets: %q", s.Row(19))
	}
	x := strings.IndexRune(s.Row(19), 'A')
	if c := s.GetCell(x, 19); c.Color != core.ColorRed {
		t.Errorf("missed key color = %v, want red", c.Color)
	}
}

func TestRenderLostRevealsWord(t *testing.T) {
	g := newClassic(t, "RUHE")
	g.Step(letters("XYZQWK"))
	s := core.NewScreen(80, 24)
	g.Render(s)

	row := s.Row(2)
	for _, c := range "RUHE" {
		if !strings.ContainsRune(row, c) {
			t.Errorf("lost board should reveal %q: %q", c, row)
		}
	}
	if !strings.Contains(s.Row(23), "VERLOREN!") {
		t.Errorf("status row = %q", s.Row(23))
	}
}

func TestRenderZoomSpacing(t *testing.T) {
	g := newClassic(t, "RUHE")
	s := core.NewScreen(80, 24)

	width := func() int {
		g.Render(s)
		row := s.Row(2)
		return strings.LastIndex(row, "_") - strings.Index(row, "_")
	}

	normal := width()
	for i := 0; i < 10; i++ {
		g.Step(action(core.ActionZoomIn))
	}
	if zoomed := width(); zoomed <= normal {
		t.Errorf("zoomed board width %d should exceed %d", zoomed, normal)
	}
}

func TestRenderZoomFitsBoard(t *testing.T) {
	g := newClassic(t, "VERURTEILT NICHT")
	g.Resize(60, 24)
	for i := 0; i < 10; i++ {
		g.Step(action(core.ActionZoomIn))
	}
	if g.Zoom() != MaxZoom {
		t.Fatalf("Zoom() = %d, want %d", g.Zoom(), MaxZoom)
	}

	s := core.NewScreen(60, 24)
	g.Render(s)
	if n := strings.Count(s.Row(2), "_"); n != 15 {
		t.Errorf("board row = %q, want all 15 blanks visible, got %d", s.Row(2), n)
	}
}

func TestRenderTooSmallNamesTerminalMinimum(t *testing.T) {
	g := newClassic(t, "RUHE")
	g.SetReservedRows(1)

	tests := []struct {
		name     string
		h        int
		tooSmall bool
	}{
		{"board fits above footer", 19, false},
		{"one row short", 18, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.Resize(60, tt.h)
			s := core.NewScreen(60, tt.h)
			g.Render(s)

			out := s.String()
			if got := strings.Contains(out, "Fenster zu klein"); got != tt.tooSmall {
				t.Errorf("notice shown = %v, want %v\n%s", got, tt.tooSmall, out)
			}
			if tt.tooSmall && !strings.Contains(out, "mindestens 60x20") {
				t.Errorf("notice should name the terminal minimum:\n%s", out)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newClassic(t, "RUHE")
	g.Resize(40, 10)
	s := core.NewScreen(40, 10)
	g.Render(s)

	if !strings.Contains(s.Row(5), "Fenster zu klein") {
		t.Errorf("row 5 = %q", s.Row(5))
	}
}

func TestRenderChallengeInfo(t *testing.T) {
	configure(t, Settings{Lives: 6})
	g := NewChallenge()
	g.Reset(core.DefaultConfig())
	s := core.NewScreen(80, 24)

	g.Render(s)
	if !strings.Contains(s.String(), "Lade Herausforderung") {
		t.Error("loading notice missing")
	}

	g.ApplyChallenge(words.Challenge{Word: "RUHE", Hint: "Stille", Category: "Tugend"})
	g.Render(s)
	out := s.String()
	if !strings.Contains(out, "Kategorie: Tugend") || !strings.Contains(out, "Hinweis:   Stille") {
		t.Errorf("challenge info missing:\n%s", out)
	}
}
