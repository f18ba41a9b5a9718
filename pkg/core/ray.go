package core

// Ray represents a ray with an origin point and direction vector. Rays are
// immutable once built; Transform yields a new ray in another space.
type Ray struct {
	Origin    Vec4
	Direction Vec4
}

// NewRay creates a new ray
func NewRay(origin, direction Vec4) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Vec4 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray mapped through the given matrix. The direction
// is not renormalized so that t keeps its world-space meaning.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    m.MulVec(r.Origin),
		Direction: m.MulVec(r.Direction),
	}
}
