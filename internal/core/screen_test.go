package core

import (
	"strings"
	"testing"
)

// runeAt returns the rune of the cell at (x, y).
func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("rune at (5, 5) = %q, expected 'X'", runeAt(s, 5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds reads return a blank cell
	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Fg != ColorWhite {
			t.Errorf("expected white %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawTextColored(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		text   string
		startX int
	}{
		{"even", 20, "Hi", 9},
		{"odd text", 20, "GOAL!", 7},
		{"multibyte runes", 10, "▀▀", 4},
		{"wider than screen", 4, "PAUSED", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.width, 3)
			s.DrawTextCentered(1, tc.text, ColorYellow)

			for i, ch := range []rune(tc.text) {
				x := tc.startX + i
				if x < 0 || x >= tc.width {
					continue
				}
				c := s.GetCell(x, 1)
				if c.Rune != ch || c.Fg != ColorYellow {
					t.Errorf("expected yellow %q at x=%d, got %+v", ch, x, c)
				}
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if runeAt(s, 1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", runeAt(s, 1, 1))
	}
	if runeAt(s, 5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", runeAt(s, 5, 1))
	}
	if runeAt(s, 1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", runeAt(s, 1, 4))
	}
	if runeAt(s, 5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", runeAt(s, 5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, runeAt(s, x, 1))
		}
		if runeAt(s, x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, runeAt(s, x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, runeAt(s, 1, y))
		}
		if runeAt(s, 5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, runeAt(s, 5, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColored(0, 1, "BBBBB", ColorDefault)
	s.DrawTextColored(0, 2, "CCCCC", ColorDefault)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)
	s.DrawTextColored(0, 5, "World", ColorDefault)

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Content should be preserved, got %q", s.String())
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Content should be preserved after enlarging, got %q", s.String())
	}
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, Cell{Rune: '▀', Fg: ColorYellow, Bg: ColorWhite})

	c := s.GetCell(1, 1)
	if c.Rune != '▀' || c.Fg != ColorYellow || c.Bg != ColorWhite {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow on white half block", c)
	}

	// Text keeps the background already painted
	s.DrawTextColored(1, 1, "A", ColorBlack)
	c = s.GetCell(1, 1)
	if c.Rune != 'A' || c.Fg != ColorBlack || c.Bg != ColorWhite {
		t.Errorf("DrawTextColored should keep background, got %+v", c)
	}

	// Set changes only the rune
	s.Set(1, 1, 'B')
	c = s.GetCell(1, 1)
	if c.Rune != 'B' || c.Fg != ColorBlack || c.Bg != ColorWhite {
		t.Errorf("Set should keep colors, got %+v", c)
	}

	s.Clear()
	if s.GetCell(1, 1) != (Cell{Rune: ' '}) {
		t.Errorf("Clear should reset colors, got %+v", s.GetCell(1, 1))
	}
}
