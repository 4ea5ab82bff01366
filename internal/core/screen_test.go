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
			if c := s.GetCell(x, y); c != blank {
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

	s.SetColored(2, 3, '@', ColorBrightYellow)
	if c := s.GetCell(2, 3); c.Rune != '@' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(2, 3) = %+v, expected yellow '@'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(0, 100) != blank {
		t.Error("Out of bounds GetCell should return blank")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorGray)
	s.Clear()

	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("after Clear cell = %+v, expected blank", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	s.DrawTextColored(0, 2, "héllo", ColorGreen)
	if s.Get(1, 2) != 'é' || s.Get(2, 2) != 'l' {
		t.Errorf("multi-byte runes should occupy one cell each, got %q", s.Row(2))
	}
	if s.GetCell(4, 2).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}

	// Clipping
	s.DrawText(17, 3, "Clipped")
	if got := s.Row(3); !strings.HasSuffix(got, "Cli") {
		t.Errorf("Row(3) = %q, expected clipped suffix", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(1, 1, 'X', ColorRed)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("content inside new bounds should survive, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content cut by shrink should not reappear")
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != -1 {
		t.Error("default color should map to -1")
	}
	if ColorOrange.ANSI() != 208 {
		t.Errorf("ColorOrange.ANSI() = %d, expected 208", ColorOrange.ANSI())
	}
}
