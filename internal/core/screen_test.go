package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@', ColorBrightYellow)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(3,2) = %+v, want '@' bright yellow", cell)
	}

	// Out of bounds is a silent no-op / blank read.
	s.Set(-1, 0, 'x', ColorRed)
	s.Set(10, 0, 'x', ColorRed)
	s.Set(0, 5, 'x', ColorRed)
	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Errorf("GetCell out of bounds = %+v, want blank", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, '#', ColorGray)
	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, want blank default", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "maze", ColorGreen)
	if got := s.Row(1); got != "  maze    " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "long", ColorGreen)
	if got := s.Row(0); got != "        lo" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '>', ColorCyan)

	s.Resize(8, 6)
	if c := s.GetCell(2, 2); c.Rune != '>' {
		t.Errorf("cell lost on grow: %+v", c)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != '>' {
		t.Errorf("cell lost on shrink within bounds: %+v", c)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, '#', ColorGray)
	s.Set(2, 1, '@', ColorWhite)

	got := s.String()
	want := "#  \n  @"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should contain exactly one newline for two rows")
	}
}
