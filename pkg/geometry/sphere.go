package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin. Position and size come
// from the shape transform.
type Sphere struct {
	baseShape
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{baseShape: newBaseShape()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass
// material, a common fixture for refraction scenes and tests
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlassMaterial())
	return s
}

// LocalIntersect solves |O + tD|^2 = 1 for t. Both roots are returned even
// when negative or coincident; callers filter through Hit.
func (s *Sphere) LocalIntersect(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Sub(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormalAt returns the normal of the unit sphere, the vector from the
// origin to the surface point
func (s *Sphere) LocalNormalAt(p core.Vec4) core.Vec4 {
	return core.NewVector(p.X, p.Y, p.Z)
}
