package canvas

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rectkit/internal/geom"
)

func TestNewCanvas(t *testing.T) {
	c := New(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}
	if c.Bounds() != geom.R(0, 0, 80, 24) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y).Rune != ' ' {
				t.Fatalf("new canvas should be blank, got %q at (%d, %d)", c.Get(x, y).Rune, x, y)
			}
		}
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := New(10, 10)

	c.Set(5, 5, 'X', ColorRed)
	if got := c.Get(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("Get(5, 5) = %+v, expected red 'X'", got)
	}

	c.Set(-1, 0, 'A', ColorDefault)  // Should not panic
	c.Set(100, 0, 'A', ColorDefault) // Should not panic
	c.Set(0, -1, 'A', ColorDefault)  // Should not panic
	c.Set(0, 100, 'A', ColorDefault) // Should not panic

	if c.Get(-1, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := New(6, 4)
	c.DrawRect(geom.R(1, 1, 4, 3), '#', ColorGreen)

	expected := strings.Join([]string{
		"      ",
		" ###  ",
		" ###  ",
		"      ",
	}, "\n")
	if c.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", c.String(), expected)
	}
}

func TestCanvasDrawRectClipped(t *testing.T) {
	tests := []struct {
		name  string
		r     geom.RectI
		count int
	}{
		{"partly left", geom.R(-3, 0, 2, 2), 4},
		{"partly right", geom.R(4, 2, 9, 9), 4},
		{"fully outside", geom.R(-10, -10, -5, -5), 0},
		{"beyond far corner", geom.R(10, 10, 20, 20), 0},
		{"inverted", geom.R(2, 2, 0, 0), 4},
		{"zero width", geom.R(3, 0, 3, 4), 0},
		{"covers canvas", geom.R(-100, -100, 100, 100), 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(6, 4)
			c.DrawRect(tc.r, '#', ColorDefault)
			if got := strings.Count(c.String(), "#"); got != tc.count {
				t.Errorf("filled %d cells, expected %d", got, tc.count)
			}
		})
	}
}

func TestCanvasDrawBox(t *testing.T) {
	c := New(5, 4)
	c.DrawBox(geom.R(0, 0, 5, 4), ColorDefault)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if c.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", c.String(), expected)
	}

	c.Clear()
	c.DrawBox(geom.R(2, 2, 2, 3), ColorDefault)
	if strings.TrimSpace(c.String()) != "" {
		t.Error("zero-width box should draw nothing")
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := New(5, 1)
	c.DrawText(2, 0, "héllo", ColorCyan)
	if c.Row(0) != "  hél" {
		t.Errorf("Row(0) = %q, expected %q", c.Row(0), "  hél")
	}
	if c.Row(7) != "     " {
		t.Errorf("Row(7) = %q, expected blank row", c.Row(7))
	}
}

func TestCanvasRenderKeepsText(t *testing.T) {
	c := New(4, 2)
	c.DrawRect(geom.R(0, 0, 2, 1), '#', ColorRed)
	c.DrawText(0, 1, "ab", ColorDefault)

	out := c.Render()
	if !strings.Contains(out, "##") || !strings.Contains(out, "ab") {
		t.Errorf("Render() lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Render() should produce 2 lines, got %q", out)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{" Cyan ", ColorCyan, true},
		{"", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.expected, tc.ok)
		}
	}
}
