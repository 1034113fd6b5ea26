package geom

import "fmt"

// Size is a width/height pair.
type Size[T Scalar] struct {
	W, H T
}

type (
	SizeF = Size[float64]
	SizeI = Size[int]
)

// Sz is shorthand for Size[T]{w, h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{W: w, H: h}
}

// String renders s as WxH.
func (s Size[T]) String() string {
	return fmt.Sprintf("%vx%v", s.W, s.H)
}
