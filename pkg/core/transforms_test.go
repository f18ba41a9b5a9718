package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslation(t *testing.T) {
	m := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)
	if got := m.MulVec(p); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("translate point = %v", got)
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := inv.MulVec(p); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("inverse translate point = %v", got)
	}

	// translation leaves vectors alone
	v := NewVector(-3, 4, 5)
	if got := m.MulVec(v); !got.Equals(v) {
		t.Errorf("translate vector = %v, want unchanged", got)
	}
}

func TestScaling(t *testing.T) {
	m := Scaling(2, 3, 4)
	if got := m.MulVec(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("scale point = %v", got)
	}
	if got := m.MulVec(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("scale vector = %v", got)
	}

	// reflection is scaling by a negative value
	if got := Scaling(-1, 1, 1).MulVec(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("reflect point = %v", got)
	}
}

func TestRotations(t *testing.T) {
	halfQuarter := RotationX(math.Pi / 4)
	fullQuarter := RotationX(math.Pi / 2)
	p := NewPoint(0, 1, 0)
	if got := halfQuarter.MulVec(p); !got.Equals(NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("rotateX half quarter = %v", got)
	}
	if got := fullQuarter.MulVec(p); !got.Equals(NewPoint(0, 0, 1)) {
		t.Errorf("rotateX full quarter = %v", got)
	}

	p = NewPoint(0, 0, 1)
	if got := RotationY(math.Pi / 4).MulVec(p); !got.Equals(NewPoint(math.Sqrt2/2, 0, math.Sqrt2/2)) {
		t.Errorf("rotateY half quarter = %v", got)
	}

	p = NewPoint(0, 1, 0)
	if got := RotationZ(math.Pi / 4).MulVec(p); !got.Equals(NewPoint(-math.Sqrt2/2, math.Sqrt2/2, 0)) {
		t.Errorf("rotateZ half quarter = %v", got)
	}
}

func TestShearing(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want Vec4
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}
	p := NewPoint(2, 3, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec(p); !got.Equals(tt.want) {
				t.Errorf("shear = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransforms_Chaining(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// applied in sequence
	p2 := a.MulVec(p)
	p3 := b.MulVec(p2)
	p4 := c.MulVec(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("sequential transforms = %v", p4)
	}

	// chained in reverse order
	if got := c.Mul(b).Mul(a).MulVec(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("chained transforms = %v", got)
	}
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation", func(t *testing.T) {
		m := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, -1), NewVector(0, 1, 0))
		if !m.Equals(Identity()) {
			t.Errorf("default view = %v, want identity", m)
		}
	})

	t.Run("looking in positive z", func(t *testing.T) {
		m := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, 1), NewVector(0, 1, 0))
		if !m.Equals(Scaling(-1, 1, -1)) {
			t.Errorf("view = %v, want scaling(-1,1,-1)", m)
		}
	})

	t.Run("the world moves, not the eye", func(t *testing.T) {
		m := ViewTransform(NewPoint(0, 0, 8), NewPoint(0, 0, 0), NewVector(0, 1, 0))
		if !m.Equals(Translation(0, 0, -8)) {
			t.Errorf("view = %v, want translation(0,0,-8)", m)
		}
	})

	t.Run("arbitrary view", func(t *testing.T) {
		m := ViewTransform(NewPoint(1, 3, 2), NewPoint(4, -2, 8), NewVector(1, 1, 0))
		want := Mat4{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0.00000},
			{0.00000, 0.00000, 0.00000, 1.00000},
		}
		if diff := cmp.Diff(want, m, approx); diff != "" {
			t.Errorf("view transform mismatch (-want +got):\n%s", diff)
		}
	})
}
