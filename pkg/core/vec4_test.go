package core

import (
	"math"
	"testing"
)

func TestVec4_PointsAndVectors(t *testing.T) {
	p := NewPoint(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("NewPoint should produce w=1, got w=%v", p.W)
	}

	v := NewVector(4.3, -4.2, 3.1)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("NewVector should produce w=0, got w=%v", v.W)
	}

	if p.Equals(v) {
		t.Error("a point and a vector with equal xyz must not be equal")
	}
}

func TestVec4_Arithmetic(t *testing.T) {
	a := NewVec4(3, -2, 5, 1)
	b := NewVec4(-2, 3, 1, 0)
	if got := a.Add(b); !got.Equals(NewVec4(1, 1, 6, 1)) {
		t.Errorf("Add = %v", got)
	}

	// point - point is a vector
	if got := NewPoint(3, 2, 1).Sub(NewPoint(5, 6, 7)); !got.Equals(NewVector(-2, -4, -6)) {
		t.Errorf("point-point = %v", got)
	}
	// point - vector is a point
	if got := NewPoint(3, 2, 1).Sub(NewVector(5, 6, 7)); !got.Equals(NewPoint(-2, -4, -6)) {
		t.Errorf("point-vector = %v", got)
	}

	if got := NewVec4(1, -2, 3, -4).Negate(); !got.Equals(NewVec4(-1, 2, -3, 4)) {
		t.Errorf("Negate = %v", got)
	}
	if got := NewVec4(1, -2, 3, -4).Scale(3.5); !got.Equals(NewVec4(3.5, -7, 10.5, -14)) {
		t.Errorf("Scale = %v", got)
	}
	if got := NewVec4(2, -4, 6, -8).Div(2); !got.Equals(NewVec4(1, -2, 3, -4)) {
		t.Errorf("Div = %v", got)
	}
}

func TestVec4_Magnitude(t *testing.T) {
	tests := []struct {
		v    Vec4
		want float64
	}{
		{NewVector(1, 0, 0), 1},
		{NewVector(0, 1, 0), 1},
		{NewVector(0, 0, 1), 1},
		{NewVector(1, 2, 3), math.Sqrt(14)},
		{NewVector(-1, -2, -3), math.Sqrt(14)},
	}
	for _, tt := range tests {
		if got := tt.v.Magnitude(); math.Abs(got-tt.want) > Epsilon {
			t.Errorf("Magnitude(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec4_Normalize(t *testing.T) {
	v := NewVector(4, 0, 0)
	if got := v.Normalize(); !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Normalize = %v", got)
	}

	v = NewVector(1, 2, 3)
	n := v.Normalize()
	if math.Abs(n.Magnitude()-1) > Epsilon {
		t.Errorf("normalized magnitude = %v, want 1", n.Magnitude())
	}
}

func TestVec4_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot = %v, want 20", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("a x b = %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("b x a = %v", got)
	}
}

func TestVec4_Cross_PanicsOnPoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when crossing a point")
		}
	}()
	NewPoint(1, 2, 3).Cross(NewVector(2, 3, 4))
}

func TestVec4_Reflect(t *testing.T) {
	// reflecting at 45 degrees
	v := NewVector(1, -1, 0)
	n := NewVector(0, 1, 0)
	if got := v.Reflect(n); !got.Equals(NewVector(1, 1, 0)) {
		t.Errorf("Reflect = %v", got)
	}

	// reflecting off a slanted surface
	v = NewVector(0, -1, 0)
	n = NewVector(math.Sqrt2/2, math.Sqrt2/2, 0)
	if got := v.Reflect(n); !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Reflect = %v", got)
	}
}

func TestVec4_Reflect_Involution(t *testing.T) {
	// reflecting twice about the same normal restores the vector
	v := NewVector(0, -1, 0)
	n := NewVector(0, 1, 0)
	once := v.Reflect(n)
	if !once.Equals(NewVector(0, 1, 0)) {
		t.Errorf("first reflection = %v", once)
	}
	if got := once.Reflect(n); !got.Equals(v) {
		t.Errorf("second reflection = %v, want %v", got, v)
	}
}
