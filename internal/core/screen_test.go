package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'ẞ', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'ẞ' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'ẞ'", c)
	}

	// Out of bounds should be silent
	s.SetColor(-1, 0, 'A', ColorDefault)
	s.SetColor(100, 0, 'A', ColorDefault)
	s.SetColor(0, -1, 'A', ColorDefault)
	s.SetColor(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		s.DrawHLine(0, y, 10, 'X', ColorGreen)
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "GROẞZÜGIG", ColorDefault)

	for i, ch := range []rune("GROẞZÜGIG") {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawTextColor: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawTextColor(18, 0, "ÄÖÜ", ColorDefault)
	if s.Get(18, 0) != 'Ä' || s.Get(19, 0) != 'Ö' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "RUHE", ColorCyan)

	x := (20 - 4) / 2
	if s.Row(2)[x:x+4] != "RUHE" {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
	if s.GetCell(x, 2).Color != ColorCyan {
		t.Error("DrawTextCentered should apply color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawHLine(0, 9, 10, '=', ColorWhite)
	s.DrawVLine(2, 0, 9, '|', ColorWhite)

	if s.Row(9) != strings.Repeat("=", 10) {
		t.Errorf("DrawHLine row = %q", s.Row(9))
	}
	for y := 0; y < 9; y++ {
		if s.Get(2, y) != '|' {
			t.Errorf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(5, 5, 'X', ColorDefault)
	s.SetColor(9, 9, 'Y', ColorDefault)

	s.Resize(20, 20)
	if s.Width() != 20 || s.Height() != 20 {
		t.Fatalf("Resize failed: %dx%d", s.Width(), s.Height())
	}
	if s.Get(5, 5) != 'X' {
		t.Error("Resize should preserve content")
	}

	s.Resize(8, 8)
	if s.Get(5, 5) != 'X' {
		t.Error("Resize should preserve content in the kept region")
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Content outside new bounds should be gone")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColor(0, 0, "ABC", ColorDefault)
	s.DrawTextColor(0, 1, "ÄÖÜ", ColorDefault)

	if got := s.String(); got != "ABC\nÄÖÜ" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row out of range = %q", got)
	}
}
