package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz-plane through the origin
type Plane struct {
	baseShape
}

// NewPlane creates an xz-plane with the default material
func NewPlane() *Plane {
	return &Plane{baseShape: newBaseShape()}
}

// LocalIntersect returns the single crossing of the xz-plane, or nothing
// when the ray is parallel to it (including coplanar rays)
func (p *Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormalAt returns the constant +y normal
func (p *Plane) LocalNormalAt(core.Vec4) core.Vec4 {
	return core.NewVector(0, 1, 0)
}
