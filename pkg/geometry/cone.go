package geometry

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Cone is the double-napped cone y^2 = x^2 + z^2 around the y axis, with
// the same truncation and cap controls as the cylinder. The cap radius at
// height y is |y|.
type Cone struct {
	baseShape
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the default material
func NewCone() *Cone {
	return &Cone{
		baseShape: newBaseShape(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// LocalIntersect solves the lateral quadratic. When the leading
// coefficient vanishes the ray is parallel to one nappe and the equation
// degenerates to a linear one with a single root.
func (cone *Cone) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// ray misses both nappes
	case math.Abs(a) < core.Epsilon:
		t := -c / (2 * b)
		y := o.Y + t*d.Y
		if cone.Minimum < y && y < cone.Maximum {
			xs = append(xs, NewIntersection(t, cone))
		}
	default:
		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			break
		}
		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		y0 := o.Y + t0*d.Y
		if cone.Minimum < y0 && y0 < cone.Maximum {
			xs = append(xs, NewIntersection(t0, cone))
		}
		y1 := o.Y + t1*d.Y
		if cone.Minimum < y1 && y1 < cone.Maximum {
			xs = append(xs, NewIntersection(t1, cone))
		}
	}

	return cone.intersectCaps(ray, xs)
}

// LocalNormalAt returns the cap normal on the end disks, otherwise the
// lateral normal with the y component flipped above the apex
func (cone *Cone) LocalNormalAt(p core.Vec4) core.Vec4 {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < cone.Maximum*cone.Maximum && p.Y >= cone.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < cone.Minimum*cone.Minimum && p.Y <= cone.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if p.Y > 0 {
			y = -y
		}
		return core.NewVector(p.X, y, p.Z)
	}
}

// intersectCaps appends cap-disk hits; the cap radius equals the absolute
// height of the cap
func (cone *Cone) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !cone.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (cone.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(cone.Minimum)) {
		xs = append(xs, NewIntersection(t, cone))
	}
	t = (cone.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(cone.Maximum)) {
		xs = append(xs, NewIntersection(t, cone))
	}
	return xs
}
