package manif

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// normal returns a standard normal distribution drawing from src. A nil src
// uses the global generator.
func normal(src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
}

// randomUnit fills dst with a point drawn uniformly from the unit sphere in
// len(dst) dimensions. Normalizing i.i.d. Gaussian components gives a
// rotation invariant distribution; the (improbable) zero draw is rejected.
func randomUnit[T Scalar](src rand.Source, dst []T) {
	dist := normal(src)
	for {
		for i := range dst {
			dst[i] = T(dist.Rand())
		}
		if normalize(dst) {
			return
		}
	}
}

// RandomVec2 returns a vector whose components are drawn from the standard
// normal distribution.
func RandomVec2[T Scalar](src rand.Source) Vec2[T] {
	dist := normal(src)
	return Vec2[T]{T(dist.Rand()), T(dist.Rand())}
}

// RandomVec3 returns a vector whose components are drawn from the standard
// normal distribution.
func RandomVec3[T Scalar](src rand.Source) Vec3[T] {
	dist := normal(src)
	return Vec3[T]{T(dist.Rand()), T(dist.Rand()), T(dist.Rand())}
}
