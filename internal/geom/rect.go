package geom

import "fmt"

// Rect is an axis-aligned rectangle described by its upper-left and
// lower-right corners.
//
// A Rect is valid if LowerRight is component-wise >= UpperLeft. Validity is
// not enforced: constructors store exactly what they are given and most
// operations will happily produce or consume an inverted rectangle. Use
// IsValid to check and Repair to fix.
//
// The zero value is the degenerate rectangle at the origin.
type Rect[T Scalar] struct {
	UpperLeft  Point[T]
	LowerRight Point[T]
}

// RectF and RectI are the two instantiations used by the platform.
type (
	RectF = Rect[float64]
	RectI = Rect[int]
)

// R returns the rectangle with corners (x1, y1) and (x2, y2). The corners
// are not normalized.
func R[T Scalar](x1, y1, x2, y2 T) Rect[T] {
	return Rect[T]{
		UpperLeft:  Point[T]{X: x1, Y: y1},
		LowerRight: Point[T]{X: x2, Y: y2},
	}
}

// FromCorners returns the rectangle spanning ul to lr. The corners are not
// normalized.
func FromCorners[T Scalar](ul, lr Point[T]) Rect[T] {
	return Rect[T]{UpperLeft: ul, LowerRight: lr}
}

// FromPosSize returns the rectangle at pos with the given size. The size may
// use a different numeric type than the rectangle; its components are
// converted to T.
func FromPosSize[T, U Scalar](pos Point[T], size Size[U]) Rect[T] {
	return Rect[T]{
		UpperLeft:  pos,
		LowerRight: Point[T]{X: pos.X + T(size.W), Y: pos.Y + T(size.H)},
	}
}

// Convert converts a Rect[In] to a Rect[Out] with possible loss of
// precision.
func Convert[Out, In Scalar](r Rect[In]) Rect[Out] {
	return Rect[Out]{
		UpperLeft:  ConvertPoint[Out](r.UpperLeft),
		LowerRight: ConvertPoint[Out](r.LowerRight),
	}
}

// BoundsOf returns the smallest rectangle containing every point. It
// returns the zero Rect when called with no points.
func BoundsOf[T Scalar](points ...Point[T]) Rect[T] {
	if len(points) == 0 {
		return Rect[T]{}
	}
	r := Rect[T]{UpperLeft: points[0], LowerRight: points[0]}
	for _, p := range points[1:] {
		r.AddInternalPoint(p)
	}
	return r
}

// TranslatedBy returns a copy of r moved by p.
func (r Rect[T]) TranslatedBy(p Point[T]) Rect[T] {
	return Rect[T]{
		UpperLeft:  r.UpperLeft.Add(p),
		LowerRight: r.LowerRight.Add(p),
	}
}

// Add is the same as TranslatedBy.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return r.TranslatedBy(p)
}

// Sub returns a copy of r moved by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{
		UpperLeft:  r.UpperLeft.Sub(p),
		LowerRight: r.LowerRight.Sub(p),
	}
}

// TranslateBy moves r by p in place and returns r for chaining.
func (r *Rect[T]) TranslateBy(p Point[T]) *Rect[T] {
	r.UpperLeft = r.UpperLeft.Add(p)
	r.LowerRight = r.LowerRight.Add(p)
	return r
}

// TranslateByNeg moves r by -p in place and returns r for chaining.
func (r *Rect[T]) TranslateByNeg(p Point[T]) *Rect[T] {
	r.UpperLeft = r.UpperLeft.Sub(p)
	r.LowerRight = r.LowerRight.Sub(p)
	return r
}

// Eq reports whether both corners match exactly. There is no tolerance for
// floating-point rectangles.
func (r Rect[T]) Eq(other Rect[T]) bool {
	return r == other
}

// Less orders rectangles by area. Inverted rectangles can have a negative
// area, so the ordering is only meaningful between valid rectangles.
func (r Rect[T]) Less(other Rect[T]) bool {
	return r.Area() < other.Area()
}

// Width returns the horizontal extent. Negative for an inverted rectangle.
func (r Rect[T]) Width() T {
	return r.LowerRight.X - r.UpperLeft.X
}

// Height returns the vertical extent. Negative for an inverted rectangle.
func (r Rect[T]) Height() T {
	return r.LowerRight.Y - r.UpperLeft.Y
}

// Area returns Width times Height. Negative when exactly one axis is inverted.
func (r Rect[T]) Area() T {
	return r.Width() * r.Height()
}

// Center returns the midpoint of r. Integer rectangles truncate.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{
		X: (r.UpperLeft.X + r.LowerRight.X) / 2,
		Y: (r.UpperLeft.Y + r.LowerRight.Y) / 2,
	}
}

// Size returns the width and height as a Size.
func (r Rect[T]) Size() Size[T] {
	return Size[T]{W: r.Width(), H: r.Height()}
}

// Corners returns the upper-left and lower-right corners.
func (r Rect[T]) Corners() (Point[T], Point[T]) {
	return r.UpperLeft, r.LowerRight
}

// ContainsPoint reports whether p lies inside r. All four edges are
// inclusive. The result is meaningless for an inverted rectangle.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return r.UpperLeft.X <= p.X &&
		r.UpperLeft.Y <= p.Y &&
		r.LowerRight.X >= p.X &&
		r.LowerRight.Y >= p.Y
}

// CollidesWith reports whether the open interiors of r and other overlap.
// Rectangles that only share an edge or a corner do not collide, unlike
// ContainsPoint which is inclusive.
func (r Rect[T]) CollidesWith(other Rect[T]) bool {
	return r.LowerRight.Y > other.UpperLeft.Y &&
		r.UpperLeft.Y < other.LowerRight.Y &&
		r.LowerRight.X > other.UpperLeft.X &&
		r.UpperLeft.X < other.LowerRight.X
}

// ClipAgainst shrinks r to its intersection with other. If the two do not
// overlap, r collapses onto its clipped lower-right corner and is left
// zero-sized rather than inverted.
func (r *Rect[T]) ClipAgainst(other Rect[T]) {
	if other.LowerRight.X < r.LowerRight.X {
		r.LowerRight.X = other.LowerRight.X
	}
	if other.LowerRight.Y < r.LowerRight.Y {
		r.LowerRight.Y = other.LowerRight.Y
	}

	if other.UpperLeft.X > r.UpperLeft.X {
		r.UpperLeft.X = other.UpperLeft.X
	}
	if other.UpperLeft.Y > r.UpperLeft.Y {
		r.UpperLeft.Y = other.UpperLeft.Y
	}

	if r.UpperLeft.Y > r.LowerRight.Y {
		r.UpperLeft.Y = r.LowerRight.Y
	}
	if r.UpperLeft.X > r.LowerRight.X {
		r.UpperLeft.X = r.LowerRight.X
	}
}

// ClippedAgainst returns a copy of r clipped against other.
func (r Rect[T]) ClippedAgainst(other Rect[T]) Rect[T] {
	r.ClipAgainst(other)
	return r
}

// ConstrainTo moves r, without resizing it, so that it lies inside other.
// It returns false and leaves r untouched if other is narrower or shorter
// than r.
func (r *Rect[T]) ConstrainTo(other Rect[T]) bool {
	if other.Width() < r.Width() || other.Height() < r.Height() {
		return false
	}

	// Far edge first, then near edge, so the near edge wins. Compare before
	// subtracting so unsigned coordinates never wrap.
	if r.LowerRight.X > other.LowerRight.X {
		d := r.LowerRight.X - other.LowerRight.X
		r.UpperLeft.X -= d
		r.LowerRight.X -= d
	}
	if r.LowerRight.Y > other.LowerRight.Y {
		d := r.LowerRight.Y - other.LowerRight.Y
		r.UpperLeft.Y -= d
		r.LowerRight.Y -= d
	}
	if other.UpperLeft.X > r.UpperLeft.X {
		d := other.UpperLeft.X - r.UpperLeft.X
		r.UpperLeft.X += d
		r.LowerRight.X += d
	}
	if other.UpperLeft.Y > r.UpperLeft.Y {
		d := other.UpperLeft.Y - r.UpperLeft.Y
		r.UpperLeft.Y += d
		r.LowerRight.Y += d
	}
	return true
}

// Repair swaps inverted components so r becomes valid. Each axis is
// handled on its own.
func (r *Rect[T]) Repair() {
	if r.LowerRight.X < r.UpperLeft.X {
		r.LowerRight.X, r.UpperLeft.X = r.UpperLeft.X, r.LowerRight.X
	}
	if r.LowerRight.Y < r.UpperLeft.Y {
		r.LowerRight.Y, r.UpperLeft.Y = r.UpperLeft.Y, r.LowerRight.Y
	}
}

// IsValid reports whether LowerRight is component-wise >= UpperLeft.
// Zero-width and zero-height rectangles are valid.
func (r Rect[T]) IsValid() bool {
	return r.LowerRight.X >= r.UpperLeft.X && r.LowerRight.Y >= r.UpperLeft.Y
}

// AddInternalPoint grows r just enough to contain p. It never shrinks r.
func (r *Rect[T]) AddInternalPoint(p Point[T]) {
	r.AddInternalXY(p.X, p.Y)
}

// AddInternalXY is AddInternalPoint for a bare coordinate pair.
func (r *Rect[T]) AddInternalXY(x, y T) {
	if x > r.LowerRight.X {
		r.LowerRight.X = x
	}
	if y > r.LowerRight.Y {
		r.LowerRight.Y = y
	}
	if x < r.UpperLeft.X {
		r.UpperLeft.X = x
	}
	if y < r.UpperLeft.Y {
		r.UpperLeft.Y = y
	}
}

// String renders r as Rect(ul=(x,y), lr=(x,y)).
func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(ul=%v, lr=%v)", r.UpperLeft, r.LowerRight)
}
