package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(-1, 2)

	if got := p.Add(q); got != Pt(2, 6) {
		t.Errorf("Add() = %v, expected (2,6)", got)
	}
	if got := p.Sub(q); got != Pt(4, 2) {
		t.Errorf("Sub() = %v, expected (4,2)", got)
	}
	if got := p.Neg(); got != Pt(-3, -4) {
		t.Errorf("Neg() = %v, expected (-3,-4)", got)
	}
	if !p.Eq(Pt(3, 4)) || p.Eq(q) {
		t.Error("Eq() should compare components exactly")
	}
}

func TestConvertPoint(t *testing.T) {
	if got := ConvertPoint[int](Pt(2.7, -2.7)); got != Pt(2, -2) {
		t.Errorf("ConvertPoint[int]() = %v, expected (2,-2)", got)
	}
}

func TestSizeString(t *testing.T) {
	if s := Sz(3, 4).String(); s != "3x4" {
		t.Errorf("String() = %q, expected \"3x4\"", s)
	}
}
