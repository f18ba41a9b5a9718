package geometry

import (
	"math"
	"testing"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

func TestSphere_LocalIntersect(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name   string
		origin core.Vec4
		wantT  []float64
	}{
		{"through the center", core.NewPoint(0, 0, -5), []float64{4, 6}},
		{"tangent", core.NewPoint(0, 1, -5), []float64{5, 5}},
		{"miss", core.NewPoint(0, 2, -5), nil},
		{"from inside", core.NewPoint(0, 0, 0), []float64{-1, 1}},
		{"sphere behind ray", core.NewPoint(0, 0, 5), []float64{-6, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVector(0, 0, 1))
			xs := s.LocalIntersect(ray)
			if len(xs) != len(tt.wantT) {
				t.Fatalf("got %d intersections, want %d", len(xs), len(tt.wantT))
			}
			for i, want := range tt.wantT {
				if math.Abs(xs[i].T-want) > core.Epsilon {
					t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, want)
				}
				if xs[i].Object != Shape(s) {
					t.Errorf("xs[%d].Object is not the sphere", i)
				}
			}
		})
	}
}

func TestSphere_Intersect_Transformed(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	scaled := NewSphere()
	if err := scaled.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	xs := Intersect(scaled, ray)
	if len(xs) != 2 {
		t.Fatalf("got %d intersections, want 2", len(xs))
	}
	if xs[0].T != 3 || xs[1].T != 7 {
		t.Errorf("scaled sphere hits at %v, %v, want 3, 7", xs[0].T, xs[1].T)
	}

	translated := NewSphere()
	if err := translated.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if xs := Intersect(translated, ray); len(xs) != 0 {
		t.Errorf("translated sphere should be missed, got %d hits", len(xs))
	}
}

func TestSphere_LocalNormalAt(t *testing.T) {
	s := NewSphere()
	tests := []struct {
		name  string
		point core.Vec4
		want  core.Vec4
	}{
		{"on x axis", core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{"on y axis", core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0)},
		{"on z axis", core.NewPoint(0, 0, 1), core.NewVector(0, 0, 1)},
		{"nonaxial", core.NewPoint(math.Sqrt(3)/3, math.Sqrt(3)/3, math.Sqrt(3)/3),
			core.NewVector(math.Sqrt(3)/3, math.Sqrt(3)/3, math.Sqrt(3)/3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.LocalNormalAt(tt.point)
			if !got.Equals(tt.want) {
				t.Errorf("LocalNormalAt = %v, want %v", got, tt.want)
			}
			// the normal of the unit sphere is parallel to the point and
			// already unit length
			if !got.Equals(got.Normalize()) {
				t.Errorf("normal %v is not normalized", got)
			}
		})
	}
}

func TestSphere_NormalAt_Transformed(t *testing.T) {
	translated := NewSphere()
	if err := translated.SetTransform(core.Translation(0, 1, 0)); err != nil {
		t.Fatal(err)
	}
	got := NormalAt(translated, core.NewPoint(0, 1.70711, -0.70711))
	if !got.Equals(core.NewVector(0, 0.70711, -0.70711)) {
		t.Errorf("translated normal = %v", got)
	}

	squashed := NewSphere()
	m := core.Scaling(1, 0.5, 1).Mul(core.RotationZ(math.Pi / 5))
	if err := squashed.SetTransform(m); err != nil {
		t.Fatal(err)
	}
	got = NormalAt(squashed, core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
	if !got.Equals(core.NewVector(0, 0.97014, -0.24254)) {
		t.Errorf("squashed normal = %v", got)
	}
}

func TestSphere_GlassFixture(t *testing.T) {
	s := NewGlassSphere()
	if s.Material().Transparency != 1.0 {
		t.Errorf("glass transparency = %v, want 1", s.Material().Transparency)
	}
	if s.Material().RefractiveIndex != 1.5 {
		t.Errorf("glass refractive index = %v, want 1.5", s.Material().RefractiveIndex)
	}
}
