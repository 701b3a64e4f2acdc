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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
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

	s.SetWithColor(2, 3, '■', ColorRed)
	if c := s.GetCell(2, 3); c.Rune != '■' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetWithColor(1, 1, 'X', ColorBlue)
	s.Highlight(0, 2, 4)

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear(), cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenHighlight(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "abcdef", ColorGreen)
	s.Highlight(2, 0, 10)

	for x := 0; x < 6; x++ {
		c := s.GetCell(x, 0)
		if c.Reverse != (x >= 2) {
			t.Errorf("cell %d Reverse = %v", x, c.Reverse)
		}
		if c.Color != ColorGreen {
			t.Errorf("Highlight must keep the color, cell %d = %+v", x, c)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(5, 2, "Hello")
	if got := s.Row(2)[5:10]; got != "Hello" {
		t.Errorf("DrawText() wrote %q", got)
	}

	// Multi-byte runes occupy one cell each
	s.DrawTextWithColor(0, 0, "■■x", ColorRed)
	if s.Get(2, 0) != 'x' {
		t.Errorf("expected 'x' at column 2, got %q", s.Get(2, 0))
	}

	// Text clipped at the edge
	s.DrawText(18, 4, "Hello")
	if s.Get(19, 4) != 'e' {
		t.Errorf("clipped text: got %q at 19", s.Get(19, 4))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Test", ColorDefault)

	// "Test" is 4 chars, screen is 20 wide, so x = (20-4)/2 = 8
	if got := s.Row(2)[8:12]; got != "Test" {
		t.Errorf("DrawTextCentered() at x=8: %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	expected := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
		{3, 1}: '─',
		{1, 2}: '│',
	}
	for pos, r := range expected {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != r || c.Color != ColorGray {
			t.Errorf("cell %v = %+v, expected %q in gray", pos, c, r)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Error("box interior should stay empty")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	expected := "A  \n  B"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetWithColor(5, 5, 'X', ColorRed)
	s.Set(8, 8, 'Y')

	s.Resize(7, 7)
	if s.Width() != 7 || s.Height() != 7 {
		t.Errorf("Resize() dimensions = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("Resize() should preserve content, got %+v", c)
	}

	s.Resize(12, 12)
	if s.Get(8, 8) != ' ' {
		t.Error("content outside the shrunk area is lost")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "ABCDE")

	if s.Row(1) != "ABCDE" {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(-1) != strings.Repeat(" ", 5) {
		t.Error("Out of bounds Row should return spaces")
	}
}
