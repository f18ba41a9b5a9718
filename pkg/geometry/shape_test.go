package geometry

import (
	"errors"
	"testing"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/material"
)

func TestShape_DefaultState(t *testing.T) {
	s := NewSphere()
	if !s.Transform().Equals(core.Identity()) {
		t.Errorf("default transform = %v, want identity", s.Transform())
	}
	if got := *s.Material(); got.Ambient != 0.1 || got.Diffuse != 0.9 {
		t.Errorf("default material = %+v", got)
	}
}

func TestShape_SetTransform(t *testing.T) {
	s := NewSphere()
	m := core.Translation(2, 3, 4)
	if err := s.SetTransform(m); err != nil {
		t.Fatalf("SetTransform returned error: %v", err)
	}
	if !s.Transform().Equals(m) {
		t.Errorf("transform = %v, want %v", s.Transform(), m)
	}

	inv, _ := m.Inverse()
	if !s.InverseTransform().Equals(inv) {
		t.Error("cached inverse was not recomputed")
	}
}

func TestShape_SetTransform_RejectsSingular(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Scaling(1, 0, 1)); !errors.Is(err, core.ErrNotInvertible) {
		t.Fatalf("expected ErrNotInvertible, got %v", err)
	}
	// a rejected transform leaves the shape untouched
	if !s.Transform().Equals(core.Identity()) {
		t.Error("failed SetTransform must not modify the shape")
	}
}

func TestShape_SetMaterial(t *testing.T) {
	s := NewSphere()
	m := material.NewMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	if s.Material().Ambient != 1 {
		t.Errorf("material ambient = %v, want 1", s.Material().Ambient)
	}
}

func TestShape_WorldToObject(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Translation(5, 0, 0)); err != nil {
		t.Fatal(err)
	}
	got := s.WorldToObject(core.NewPoint(6, 0, 0))
	if !got.Equals(core.NewPoint(1, 0, 0)) {
		t.Errorf("WorldToObject = %v, want (1,0,0)", got)
	}
}

func TestNormalAt_IsNormalized(t *testing.T) {
	s := NewSphere()
	if err := s.SetTransform(core.Scaling(1, 0.5, 1)); err != nil {
		t.Fatal(err)
	}
	n := NormalAt(s, core.NewPoint(0, 0.5, 0))
	if !n.Equals(n.Normalize()) {
		t.Errorf("normal %v is not unit length", n)
	}
	if n.W != 0 {
		t.Errorf("normal w = %v, want 0", n.W)
	}
}
