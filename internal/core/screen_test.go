package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3, 2) = %q, expected '#'", got)
	}

	// Out of bounds is ignored on write, space on read
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, '@', ColorOrange)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("cell rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorOrange {
		t.Errorf("cell color = %d, expected ColorOrange", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 2, '#')
	if c := s.GetCell(2, 2).Color; c != ColorDefault {
		t.Errorf("Set should use default color, got %d", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'x', ColorRed)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear() left cell %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if row := s.Row(1); row != "  hello   " {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if got := s.Get(9, 0); got != 'b' {
		t.Errorf("clipped text: Get(9, 0) = %q, expected 'b'", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, '#')

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize: got %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != '#' {
		t.Errorf("Resize should preserve content, Get(1, 1) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}
