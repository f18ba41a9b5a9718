package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1,1] on every axis
type Cube struct {
	baseShape
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{baseShape: newBaseShape()}
}

// LocalIntersect runs the slab test: the ray's overlap with the [-1,1]
// interval is computed per axis and the three intervals intersected. A
// direction component near zero yields infinite bounds rather than an
// error.
func (c *Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormalAt picks the face whose coordinate has the largest absolute
// value. Corner points resolve to the x face first.
func (c *Cube) LocalNormalAt(p core.Vec4) core.Vec4 {
	maxC := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))
	switch maxC {
	case math.Abs(p.X):
		return core.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return core.NewVector(0, p.Y, 0)
	default:
		return core.NewVector(0, 0, p.Z)
	}
}

// checkAxis returns the t interval in which the ray is inside the slab
// [-1,1] along one axis
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}
