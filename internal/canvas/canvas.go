// Package canvas provides a 2D character buffer that rectangles can be
// rasterized into for previewing scenes in the terminal.
package canvas

import (
	"strings"

	"github.com/vovakirdan/rectkit/internal/geom"
)

// Cell is a single character position on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a fixed-size grid of cells. A rectangle covers the columns
// UpperLeft.X through LowerRight.X-1 and likewise for rows, so a
// zero-width or zero-height rectangle draws nothing.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a canvas with the given dimensions, filled with spaces.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the rectangle covering every cell.
func (c *Canvas) Bounds() geom.RectI {
	return geom.R(0, 0, c.width, c.height)
}

// Clear fills the entire canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position.
// Returns an uncolored space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters beyond the canvas edge are dropped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawRect fills r with the given rune. r is repaired and clipped to the
// canvas first.
func (c *Canvas) DrawRect(r geom.RectI, fill rune, color Color) {
	r.Repair()
	r.ClipAgainst(c.Bounds())
	for y := r.UpperLeft.Y; y < r.LowerRight.Y; y++ {
		for x := r.UpperLeft.X; x < r.LowerRight.X; x++ {
			c.cells[y][x] = Cell{Rune: fill, Color: color}
		}
	}
}

// DrawBox draws the outline of r using box-drawing characters. Parts of the
// outline outside the canvas are dropped.
func (c *Canvas) DrawBox(r geom.RectI, color Color) {
	r.Repair()
	if r.Width() == 0 || r.Height() == 0 {
		return
	}
	left, top := r.UpperLeft.X, r.UpperLeft.Y
	right, bottom := r.LowerRight.X-1, r.LowerRight.Y-1

	for x := left + 1; x < right; x++ {
		c.Set(x, top, '─', color)
		c.Set(x, bottom, '─', color)
	}
	for y := top + 1; y < bottom; y++ {
		c.Set(left, y, '│', color)
		c.Set(right, y, '│', color)
	}

	c.Set(left, top, '┌', color)
	c.Set(right, top, '┐', color)
	c.Set(left, bottom, '└', color)
	c.Set(right, bottom, '┘', color)
}

// String converts the canvas to plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}
