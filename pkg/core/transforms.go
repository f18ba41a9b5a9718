package core

import "math"

// Translation returns a matrix that moves points by (x, y, z). Vectors
// (W=0) are unaffected.
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales each axis independently
func Scaling(x, y, z float64) Mat4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a matrix rotating r radians about the x axis
func RotationX(r float64) Mat4 {
	m := Identity()
	sin, cos := math.Sin(r), math.Cos(r)
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a matrix rotating r radians about the y axis
func RotationY(r float64) Mat4 {
	m := Identity()
	sin, cos := math.Sin(r), math.Cos(r)
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a matrix rotating r radians about the z axis
func RotationZ(r float64) Mat4 {
	m := Identity()
	sin, cos := math.Sin(r), math.Cos(r)
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a matrix where each coordinate is sheared in proportion
// to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the world-to-camera matrix for an eye at from,
// looking toward to, with the given approximate up vector
func ViewTransform(from, to, up Vec4) Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Mat4{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
