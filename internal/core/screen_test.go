package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q, expected blank rows", got)
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 0, Cell{Rune: '#', Color: ColorBrown})
	s.SetColored(2, 1, '"', ColorGreen)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"set cell", 1, 0, Cell{Rune: '#', Color: ColorBrown}},
		{"set colored", 2, 1, Cell{Rune: '"', Color: ColorGreen}},
		{"untouched", 0, 0, blankCell},
		{"left of screen", -1, 0, blankCell},
		{"below screen", 0, 2, blankCell},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	// Writes outside the buffer are dropped.
	s.SetCell(4, 0, Cell{Rune: 'x'})
	s.SetCell(0, -1, Cell{Rune: 'x'})
	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("out-of-bounds write landed: %q", s.String())
	}

	s.Clear()
	if s.GetCell(1, 0) != blankCell {
		t.Errorf("Clear kept %+v", s.GetCell(1, 0))
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"at origin", func(s *Screen) { s.DrawText(0, 0, "HP") }, "HP      "},
		{"clipped", func(s *Screen) { s.DrawText(6, 0, "tick") }, "      ti"},
		{"negative start", func(s *Screen) { s.DrawText(-2, 0, "PAUSED") }, "USED    "},
		{"multibyte", func(s *Screen) { s.DrawText(1, 0, "░▒x") }, " ░▒x    "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "DEAD") }, "  DEAD  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.want {
				t.Errorf("Row(0) = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextColored(2, 0, "HP", ColorRed)

	for x := 2; x < 4; x++ {
		if c := s.GetCell(x, 0); c.Color != ColorRed {
			t.Errorf("cell %d color = %v, expected red", x, c.Color)
		}
	}
	if c := s.GetCell(4, 0); c.Color != ColorDefault {
		t.Errorf("color leaked past the text: %v", c.Color)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "tiles")
	s.DrawText(0, 3, "bottom")

	s.Resize(3, 2)
	if got := s.String(); got != "til\n   " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(6, 3)
	if got := s.Row(0); got != "til   " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(-1); got != "      " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
}
