package core

import (
	"errors"
	"math"
)

// ErrNotInvertible is returned when a singular matrix is inverted. A scene
// transform that cannot be inverted is a fatal configuration error.
var ErrNotInvertible = errors.New("core: matrix is not invertible")

// Mat4 is a 4x4 row-major matrix of float64
type Mat4 [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var ret Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			ret[r][c] = m[r][0]*other[0][c] +
				m[r][1]*other[1][c] +
				m[r][2]*other[2][c] +
				m[r][3]*other[3][c]
		}
	}
	return ret
}

// MulVec returns the matrix applied to a tuple
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Mat4) Transpose() Mat4 {
	var ret Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			ret[c][r] = m[r][c]
		}
	}
	return ret
}

// Submatrix returns the 3x3 matrix left after removing row r and column c
func (m Mat4) Submatrix(r, c int) [3][3]float64 {
	var ret [3][3]float64
	for row := 0; row < 3; row++ {
		sr := row
		if row >= r {
			sr = row + 1
		}
		for col := 0; col < 3; col++ {
			sc := col
			if col >= c {
				sc = col + 1
			}
			ret[row][col] = m[sr][sc]
		}
	}
	return ret
}

// Minor returns the determinant of the submatrix at (r, c)
func (m Mat4) Minor(r, c int) float64 {
	return det3(m.Submatrix(r, c))
}

// Cofactor returns the minor at (r, c) with the checkerboard sign applied
func (m Mat4) Cofactor(r, c int) float64 {
	minor := m.Minor(r, c)
	if (r+c)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion of row 0
func (m Mat4) Determinant() float64 {
	d := 0.0
	for c := 0; c < 4; c++ {
		d += m[0][c] * m.Cofactor(0, c)
	}
	return d
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible when the
// determinant is zero
func (m Mat4) Inverse() (Mat4, error) {
	d := m.Determinant()
	if d == 0 {
		return Mat4{}, ErrNotInvertible
	}
	var ret Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// transposed on purpose: cofactor of (r, c) lands at (c, r)
			ret[c][r] = m.Cofactor(r, c) / d
		}
	}
	return ret, nil
}

// Equals compares two matrices element-wise within Epsilon
func (m Mat4) Equals(other Mat4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(m[r][c]-other[r][c]) >= Epsilon {
				return false
			}
		}
	}
	return true
}

func det3(m [3][3]float64) float64 {
	d := 0.0
	for c := 0; c < 3; c++ {
		d += m[0][c] * cofactor3(m, 0, c)
	}
	return d
}

func cofactor3(m [3][3]float64, r, c int) float64 {
	minor := det2(submatrix3(m, r, c))
	if (r+c)%2 == 1 {
		return -minor
	}
	return minor
}

func submatrix3(m [3][3]float64, r, c int) [2][2]float64 {
	var ret [2][2]float64
	for row := 0; row < 2; row++ {
		sr := row
		if row >= r {
			sr = row + 1
		}
		for col := 0; col < 2; col++ {
			sc := col
			if col >= c {
				sc = col + 1
			}
			ret[row][col] = m[sr][sc]
		}
	}
	return ret
}

func det2(m [2][2]float64) float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
