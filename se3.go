package manif

import (
	"math/rand/v2"
)

// SE3 is a rigid transformation in 3D space: a rotation followed by a
// translation. Composition has the same convention as [SE2].
type SE3[T Scalar] struct {
	t Vec3[T]
	q SO3[T]
}

// IdentitySE3 returns the transformation that leaves every vector
// unchanged.
func IdentitySE3[T Scalar]() SE3[T] {
	return SE3[T]{q: IdentitySO3[T]()}
}

// NewSE3 returns the transformation that rotates by q, then translates by t.
func NewSE3[T Scalar](t Vec3[T], q SO3[T]) SE3[T] {
	return SE3[T]{t: t, q: q}
}

// RandomSE3 returns a transformation with a uniformly drawn rotation and a
// translation with standard normal components.
func RandomSE3[T Scalar](src rand.Source) SE3[T] {
	return SE3[T]{t: RandomVec3[T](src), q: RandomSO3[T](src)}
}

func (g SE3[T]) Translation() Vec3[T] { return g.t }
func (g SE3[T]) Rotation() SO3[T]     { return g.q }

// Compose returns the transformation that applies o first, then g.
func (g SE3[T]) Compose(o SE3[T]) SE3[T] {
	return SE3[T]{
		t: g.t.Add(g.q.Rotate(o.t)),
		q: g.q.Compose(o.q),
	}
}

// Transform applies the transformation to v.
func (g SE3[T]) Transform(v Vec3[T]) Vec3[T] {
	return g.q.Rotate(v).Add(g.t)
}

// Inverse returns the transformation that undoes g.
func (g SE3[T]) Inverse() SE3[T] {
	qInv := g.q.Inverse()
	return SE3[T]{
		t: qInv.Rotate(g.t).Negate(),
		q: qInv,
	}
}
