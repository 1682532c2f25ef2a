package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 30)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 30 {
		t.Errorf("Height() = %d, expected 30", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColoredGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '▲', ColorRed)
	got := s.GetCell(3, 4)
	if got.Rune != '▲' || got.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected ▲ in red", got)
	}
	if s.Get(3, 4) != '▲' {
		t.Errorf("Get(3, 4) = %q, expected '▲'", s.Get(3, 4))
	}

	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the color to default")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 5, 'A', ColorRed)

	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 5}} {
		if c := s.GetCell(p[0], p[1]); c != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds writes must not land on the screen")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(2, 0, "SCORE", ColorYellow)

	if got := s.Row(0); got != "  SCOR" {
		t.Errorf("Row(0) = %q, expected %q", got, "  SCOR")
	}
	if s.GetCell(5, 0).Color != ColorYellow {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 2)
	s.DrawTextCentered(NewRect(0, 0, 11, 2), 0, "OVER", ColorDefault)
	s.DrawTextCentered(NewRect(5, 0, 6, 2), 1, "ab", ColorDefault)

	if got := s.Row(0); got != "   OVER    " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "       ab  " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawRect(NewRect(0, 0, 3, 3), '█', ColorWhite)
	s.Clear()

	if got := s.String(); got != "   \n   \n   " {
		t.Errorf("after Clear, String() = %q", got)
	}
}
