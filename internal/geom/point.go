// Package geom provides the axis-aligned rectangle used for hit-testing,
// clipping, collision queries and bounds tracking, together with the small
// point and size value types it is built from.
//
// Coordinates are in screen space: X grows to the right and Y grows
// downward. The package has no external state and performs no I/O.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of coordinate types a Point, Size or Rect can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a two-component coordinate.
type Point[T Scalar] struct {
	X, Y T
}

// PointF and PointI are the float and integer points used throughout the
// platform.
type (
	PointF = Point[float64]
	PointI = Point[int]
)

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Eq reports whether both components match exactly.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// String renders p as (x,y).
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// ConvertPoint converts a Point[In] to a Point[Out]. Conversion to an
// integer type truncates toward zero.
func ConvertPoint[Out, In Scalar](p Point[In]) Point[Out] {
	return Point[Out]{X: Out(p.X), Y: Out(p.Y)}
}
