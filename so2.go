package manif

import (
	"math/rand/v2"
)

// SO2 is a rotation in the plane, stored as the unit complex number
// w + xi = cos θ + i sin θ.
//
// The zero value is not a valid rotation; use [IdentitySO2] instead. Values
// are immutable. Every method returns a new rotation.
type SO2[T Scalar] struct {
	w, x T
}

// IdentitySO2 returns the rotation by zero radians.
func IdentitySO2[T Scalar]() SO2[T] {
	return SO2[T]{w: 1, x: 0}
}

// SO2FromAngle returns the rotation by th radians. A positive angle rotates
// the positive x axis towards the positive y axis.
func SO2FromAngle[T Scalar](th T) SO2[T] {
	s, c := sincos(th)
	return SO2[T]{w: c, x: s}
}

// SO2FromComplex returns the rotation described by the complex number w + xi
// after normalizing it. It returns [ErrDegenerate] if both w and x are zero.
func SO2FromComplex[T Scalar](w, x T) (SO2[T], error) {
	v, err := V2(w, x).Normalize()
	if err != nil {
		return SO2[T]{}, opError("SO2FromComplex", ErrDegenerate)
	}
	return SO2[T]{w: v.X, x: v.Y}, nil
}

// SO2FromRotationMatrix returns the rotation described by m, which must be a
// rotation matrix. Only the first column of m is read. It returns
// [ErrDegenerate] if that column is zero.
func SO2FromRotationMatrix[T Scalar](m Mat2[T]) (SO2[T], error) {
	q, err := SO2FromComplex(m.At(0, 0), m.At(1, 0))
	if err != nil {
		return SO2[T]{}, opError("SO2FromRotationMatrix", ErrDegenerate)
	}
	return q, nil
}

// RandomSO2 returns a rotation drawn uniformly from SO(2), using src as the
// source of randomness. A nil src uses the global generator.
func RandomSO2[T Scalar](src rand.Source) SO2[T] {
	var arr [2]T
	randomUnit(src, arr[:])
	return SO2[T]{w: arr[0], x: arr[1]}
}

// W returns the real part, cos θ.
func (q SO2[T]) W() T { return q.w }

// X returns the imaginary part, sin θ.
func (q SO2[T]) X() T { return q.x }

// Array returns w and x.
func (q SO2[T]) Array() [2]T {
	return [2]T{q.w, q.x}
}

// Norm returns the magnitude of the stored complex number. It is one up to
// rounding error.
func (q SO2[T]) Norm() T {
	return hypot(q.w, q.x)
}

// Angle returns the rotation angle in radians, in the range [-π, π].
func (q SO2[T]) Angle() T {
	return atan2(q.x, q.w)
}

// Inverse returns the rotation by the negated angle.
func (q SO2[T]) Inverse() SO2[T] {
	return SO2[T]{w: q.w, x: -q.x}
}

// Compose returns the rotation that applies o first, then q.
func (q SO2[T]) Compose(o SO2[T]) SO2[T] {
	return SO2[T]{
		w: q.w*o.w - q.x*o.x,
		x: q.w*o.x + q.x*o.w,
	}.normalized()
}

// Rotate applies the rotation to v.
func (q SO2[T]) Rotate(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: q.w*v.X - q.x*v.Y,
		Y: q.x*v.X + q.w*v.Y,
	}
}

// Matrix returns the rotation matrix
//
//	| w -x |
//	| x  w |
func (q SO2[T]) Matrix() Mat2[T] {
	return Mat2[T]{
		q.w, -q.x,
		q.x, q.w,
	}
}

// normalized rescales q to unit length. It must only be used on values that
// are already close to unit length.
func (q SO2[T]) normalized() SO2[T] {
	arr := q.Array()
	if !normalize(arr[:]) {
		return q
	}
	return SO2[T]{w: arr[0], x: arr[1]}
}
