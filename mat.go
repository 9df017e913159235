package manif

// Mat2 is a 2×2 matrix in row-major order. m[2*r+c] is the element in row r
// and column c.
type Mat2[T Scalar] [4]T

// Identity2 returns the 2×2 identity matrix.
func Identity2[T Scalar]() Mat2[T] {
	return Mat2[T]{1, 0, 0, 1}
}

// At returns the element in row r and column c.
func (m Mat2[T]) At(r, c int) T {
	return m[2*r+c]
}

// Col returns column c.
func (m Mat2[T]) Col(c int) Vec2[T] {
	return Vec2[T]{m[c], m[2+c]}
}

func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
	}
}

// MulVec computes m·v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}

func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m[0], m[2], m[1], m[3]}
}

// Determinant computes the determinant.
func (m Mat2[T]) Determinant() T {
	return m[0]*m[3] - m[1]*m[2]
}

// Mat3 is a 3×3 matrix in row-major order. m[3*r+c] is the element in row r
// and column c.
type Mat3[T Scalar] [9]T

// Identity3 returns the 3×3 identity matrix.
func Identity3[T Scalar]() Mat3[T] {
	return Mat3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the element in row r and column c.
func (m Mat3[T]) At(r, c int) T {
	return m[3*r+c]
}

// Row returns row r.
func (m Mat3[T]) Row(r int) Vec3[T] {
	return Vec3[T]{m[3*r], m[3*r+1], m[3*r+2]}
}

// Col returns column c.
func (m Mat3[T]) Col(c int) Vec3[T] {
	return Vec3[T]{m[c], m[3+c], m[6+c]}
}

func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for r := range 3 {
		for c := range 3 {
			out[3*r+c] = m[3*r]*o[c] + m[3*r+1]*o[3+c] + m[3*r+2]*o[6+c]
		}
	}
	return out
}

// MulVec computes m·v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant computes the determinant.
func (m Mat3[T]) Determinant() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}
