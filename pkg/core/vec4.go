package core

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout
// the tracer. Surface offsets (over/under points) use the same value.
const Epsilon = 1e-5

// Vec4 is a homogeneous 4-component tuple. W=1 marks a point, W=0 a
// direction vector; the distinction controls how translations apply.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (W=1)
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a direction vector (W=0)
func NewVector(x, y, z float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (v Vec4) IsPoint() bool {
	return v.W == 1
}

// IsVector reports whether the tuple is a direction vector
func (v Vec4) IsVector() bool {
	return v.W == 0
}

// Add returns the component-wise sum of two tuples
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns the component-wise difference of two tuples
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Negate returns the tuple scaled by -1
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns the tuple scaled by a scalar
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns the tuple divided by a scalar
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Abs returns the component-wise absolute value
func (v Vec4) Abs() Vec4 {
	return Vec4{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)}
}

// Magnitude returns the length of the tuple
func (v Vec4) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Normalize returns a unit tuple in the same direction. The caller must not
// pass a zero-length tuple; ray directions are non-zero by construction.
func (v Vec4) Normalize() Vec4 {
	return v.Div(v.Magnitude())
}

// Dot returns the dot product of two tuples
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Cross returns the cross product of two vectors. Both operands must have
// W=0; crossing points is a programmer error.
func (v Vec4) Cross(other Vec4) Vec4 {
	if v.W != 0 || other.W != 0 {
		panic("core: cross product requires vectors (w=0)")
	}
	return Vec4{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
		W: 0,
	}
}

// Reflect returns v reflected about the surface normal n
func (v Vec4) Reflect(n Vec4) Vec4 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Equals compares two tuples component-wise within Epsilon
func (v Vec4) Equals(other Vec4) bool {
	d := v.Sub(other).Abs()
	return d.X < Epsilon && d.Y < Epsilon && d.Z < Epsilon && d.W < Epsilon
}
