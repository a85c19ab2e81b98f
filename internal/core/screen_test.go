package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(1, 1, 'O', ColorCyan)
	if c := s.GetCell(1, 1); c.Rune != 'O' || c.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan 'O'", c)
	}

	// Out of bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('#')
	s.SetColored(0, 0, '@', ColorRed)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("after Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "ring", ColorYellow)

	if got := s.Row(1); !strings.HasPrefix(got, "  ring") {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorYellow {
		t.Errorf("text colour = %v, expected yellow", c.Color)
	}

	// Clipped at the right edge without panicking.
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("Get(19, 0) = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "★★", ColorDefault)

	if s.Get(4, 0) != '★' || s.Get(5, 0) != '★' {
		t.Errorf("Row = %q, expected stars centered at columns 4-5", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y)[:len(want)]; got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'A', ColorGreen)
	s.Set(4, 4, 'Z')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'A' || c.Color != ColorGreen {
		t.Errorf("preserved cell = %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content outside the shrunk area should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(out of range) = %q", got)
	}
}
