package manif

import (
	"math/rand/v2"
)

// SE2 is a rigid transformation in the plane: a rotation followed by a
// translation.
//
// Transforming a vector v computes R·v + t. The homogeneous matrix of the
// transformation is
//
//	| R t |
//	| 0 1 |
//
// and composition follows matrix multiplication, (A ∘ B)·v == A·(B·v).
type SE2[T Scalar] struct {
	t Vec2[T]
	q SO2[T]
}

// IdentitySE2 returns the transformation that leaves every vector
// unchanged.
func IdentitySE2[T Scalar]() SE2[T] {
	return SE2[T]{q: IdentitySO2[T]()}
}

// NewSE2 returns the transformation that rotates by q, then translates by t.
func NewSE2[T Scalar](t Vec2[T], q SO2[T]) SE2[T] {
	return SE2[T]{t: t, q: q}
}

// SE2FromXYTheta returns the transformation that rotates by th radians, then
// translates by ⟨x, y⟩.
func SE2FromXYTheta[T Scalar](x, y, th T) SE2[T] {
	return SE2[T]{t: V2(x, y), q: SO2FromAngle(th)}
}

// RandomSE2 returns a transformation with a uniformly drawn rotation and a
// translation with standard normal components.
func RandomSE2[T Scalar](src rand.Source) SE2[T] {
	return SE2[T]{t: RandomVec2[T](src), q: RandomSO2[T](src)}
}

// Translation returns the translation component.
func (g SE2[T]) Translation() Vec2[T] { return g.t }

// Rotation returns the rotation component.
func (g SE2[T]) Rotation() SO2[T] { return g.q }

// Compose returns the transformation that applies o first, then g.
func (g SE2[T]) Compose(o SE2[T]) SE2[T] {
	return SE2[T]{
		t: g.t.Add(g.q.Rotate(o.t)),
		q: g.q.Compose(o.q),
	}
}

// Transform applies the transformation to v.
func (g SE2[T]) Transform(v Vec2[T]) Vec2[T] {
	return g.q.Rotate(v).Add(g.t)
}

// Inverse returns the transformation that undoes g.
func (g SE2[T]) Inverse() SE2[T] {
	qInv := g.q.Inverse()
	return SE2[T]{
		t: qInv.Rotate(g.t).Negate(),
		q: qInv,
	}
}

// Matrix returns the homogeneous matrix of the transformation.
func (g SE2[T]) Matrix() Mat3[T] {
	r := g.q.Matrix()
	return Mat3[T]{
		r[0], r[1], g.t.X,
		r[2], r[3], g.t.Y,
		0, 0, 1,
	}
}
