package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Cylinder is the infinite cylinder of radius 1 around the y axis, can be
// truncated by Minimum/Maximum (exclusive bounds) and capped with Closed
type Cylinder struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect computes the lateral quadratic, keeps roots within the y
// truncation bounds and adds cap hits for closed cylinders
func (cyl *Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if cyl.Minimum < y0 && y0 < cyl.Maximum {
			xs = append(xs, NewIntersection(t0, cyl))
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if cyl.Minimum < y1 && y1 < cyl.Maximum {
			xs = append(xs, NewIntersection(t1, cyl))
		}
	}

	return cyl.intersectCaps(ray, xs)
}

// LocalNormalAt distinguishes the caps from the lateral wall by the square
// of the radial distance at the point
func (cyl *Cylinder) LocalNormalAt(p core.Vec4) core.Vec4 {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < 1 && p.Y >= cyl.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= cyl.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(p.X, 0, p.Z)
	}
}

// intersectCaps appends hits on the two end caps, tested only for closed
// cylinders and rays not parallel to the caps
func (cyl *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cyl.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cyl.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, cyl))
	}
	t = (cyl.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, cyl))
	}
	return xs
}

// checkCap reports whether the intersection at t lies within the cap disk
// of the given radius
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}
