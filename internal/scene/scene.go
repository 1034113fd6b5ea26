// Package scene holds a viewport and a set of named rectangles and answers
// hit-test, collision, clipping, constraint and bounds queries against
// them. A Scene is generic over its coordinate type; Queryer is the
// coordinate-independent view used by the command line.
package scene

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rectkit/internal/canvas"
	"github.com/vovakirdan/rectkit/internal/config"
	"github.com/vovakirdan/rectkit/internal/geom"
)

// Item is a named rectangle in a scene.
type Item[T geom.Scalar] struct {
	Name  string
	Rect  geom.Rect[T]
	Color canvas.Color
	Fill  rune
}

// Pair names two colliding items, in declaration order.
type Pair struct {
	A, B string
}

// Outcome records the effect of a mutating operation on one item.
type Outcome struct {
	Name   string
	Before fmt.Stringer
	After  fmt.Stringer
	OK     bool // false if the operation was refused and the item left as is
}

// Changed reports whether the item's rectangle was modified.
func (o Outcome) Changed() bool {
	return o.Before.String() != o.After.String()
}

// Summary describes one item for listing.
type Summary struct {
	Name  string
	Rect  fmt.Stringer
	Area  float64
	Valid bool
}

// Scene is a viewport plus an ordered list of items. Later items are
// considered on top of earlier ones. A Scene is not safe for concurrent
// mutation.
type Scene[T geom.Scalar] struct {
	name     string
	mode     config.Mode
	viewport geom.Rect[T]
	items    []Item[T]
	extra    []geom.Point[T]
	logger   *log.Logger
}

// New creates an empty scene. A nil logger uses the package default.
func New[T geom.Scalar](name string, viewport geom.Rect[T], logger *log.Logger) *Scene[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Scene[T]{
		name:     name,
		viewport: viewport,
		logger:   logger.WithPrefix("scene"),
	}
}

// Add appends an item on top of the scene. Names must be unique.
func (s *Scene[T]) Add(item Item[T]) error {
	if s.index(item.Name) >= 0 {
		return fmt.Errorf("scene: duplicate item %q", item.Name)
	}
	if item.Fill == 0 {
		item.Fill = '#'
	}
	if !item.Rect.IsValid() {
		s.logger.Debug("added inverted item", "item", item.Name, "rect", item.Rect)
	}
	s.items = append(s.items, item)
	return nil
}

// AddPoint records an extra point that Bounds must cover.
func (s *Scene[T]) AddPoint(p geom.Point[T]) {
	s.extra = append(s.extra, p)
}

func (s *Scene[T]) index(name string) int {
	return slices.IndexFunc(s.items, func(it Item[T]) bool { return it.Name == name })
}

// Name returns the scene name.
func (s *Scene[T]) Name() string {
	return s.name
}

// Viewport returns the viewport rectangle.
func (s *Scene[T]) Viewport() geom.Rect[T] {
	return s.viewport
}

// Items returns a copy of the items in declaration order.
func (s *Scene[T]) Items() []Item[T] {
	return slices.Clone(s.items)
}

// Item returns the named item.
func (s *Scene[T]) Item(name string) (Item[T], bool) {
	i := s.index(name)
	if i < 0 {
		return Item[T]{}, false
	}
	return s.items[i], true
}

// HitTest returns the names of the items containing p, topmost first.
// Edges count as inside.
func (s *Scene[T]) HitTest(p geom.Point[T]) []string {
	var hits []string
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Rect.ContainsPoint(p) {
			hits = append(hits, s.items[i].Name)
		}
	}
	return hits
}

// Collisions returns every pair of items whose interiors overlap. Items
// that only touch are not reported.
func (s *Scene[T]) Collisions() []Pair {
	var pairs []Pair
	for i := range s.items {
		for j := i + 1; j < len(s.items); j++ {
			if s.items[i].Rect.CollidesWith(s.items[j].Rect) {
				pairs = append(pairs, Pair{A: s.items[i].Name, B: s.items[j].Name})
			}
		}
	}
	return pairs
}

// ClipToViewport clips every item to the viewport in place. Items entirely
// outside collapse to a zero-area rectangle.
func (s *Scene[T]) ClipToViewport() []Outcome {
	out := make([]Outcome, 0, len(s.items))
	for i := range s.items {
		it := &s.items[i]
		before := it.Rect
		it.Rect.ClipAgainst(s.viewport)
		if it.Rect.Area() == 0 && before.Area() != 0 {
			s.logger.Debug("item collapsed by clip", "item", it.Name, "before", before, "after", it.Rect)
		}
		out = append(out, Outcome{Name: it.Name, Before: before, After: it.Rect, OK: true})
	}
	return out
}

// ConstrainToViewport moves every item inside the viewport without
// resizing it. Items larger than the viewport are left where they are and
// reported with OK false.
func (s *Scene[T]) ConstrainToViewport() []Outcome {
	out := make([]Outcome, 0, len(s.items))
	for i := range s.items {
		it := &s.items[i]
		before := it.Rect
		ok := it.Rect.ConstrainTo(s.viewport)
		if !ok {
			s.logger.Debug("item does not fit viewport", "item", it.Name, "size", before.Size(), "viewport", s.viewport.Size())
		}
		out = append(out, Outcome{Name: it.Name, Before: before, After: it.Rect, OK: ok})
	}
	return out
}

// Repair swaps the corners of inverted items and returns one outcome per
// repaired item.
func (s *Scene[T]) Repair() []Outcome {
	var out []Outcome
	for i := range s.items {
		it := &s.items[i]
		if it.Rect.IsValid() {
			continue
		}
		before := it.Rect
		it.Rect.Repair()
		out = append(out, Outcome{Name: it.Name, Before: before, After: it.Rect, OK: true})
	}
	return out
}

// Bounds returns the smallest rectangle containing every item corner and
// every extra point. An empty scene has the zero rectangle as bounds.
func (s *Scene[T]) Bounds() geom.Rect[T] {
	points := make([]geom.Point[T], 0, 2*len(s.items)+len(s.extra))
	for _, it := range s.items {
		points = append(points, it.Rect.UpperLeft, it.Rect.LowerRight)
	}
	points = append(points, s.extra...)
	return geom.BoundsOf(points...)
}

// Sorted returns item names ordered by area, smallest first. Ties keep
// declaration order. Inverted items have negative area and sort first.
func (s *Scene[T]) Sorted() []string {
	items := slices.Clone(s.items)
	slices.SortStableFunc(items, func(a, b Item[T]) int {
		switch {
		case a.Rect.Less(b.Rect):
			return -1
		case b.Rect.Less(a.Rect):
			return 1
		}
		return 0
	})
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

// Draw rasterizes the scene onto c with the viewport's upper-left corner at
// the canvas origin. Items are drawn in declaration order so later items
// cover earlier ones.
func (s *Scene[T]) Draw(c *canvas.Canvas) {
	origin := s.viewport.UpperLeft
	c.DrawBox(geom.Convert[int](s.viewport.Sub(origin)), canvas.ColorGray)

	for _, it := range s.items {
		r := geom.Convert[int](it.Rect.Sub(origin))
		c.DrawRect(r, it.Fill, it.Color)

		label := r
		label.Repair()
		if label.Width() > 0 && label.Height() > 0 {
			name := []rune(it.Name)
			name = name[:min(len(name), label.Width())]
			c.DrawText(label.UpperLeft.X, label.UpperLeft.Y, string(name), it.Color)
		}
	}
}
