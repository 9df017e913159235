package manif

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of real types the groups in this package are generic
// over.
type Scalar interface {
	constraints.Float
}

var (
	// ErrDegenerate is returned when a vector that has to be normalized has
	// zero or non-finite length.
	ErrDegenerate = errors.New("degenerate vector")
	// ErrShape is returned when a matrix has the wrong dimensions.
	ErrShape = errors.New("matrix has wrong shape")
)

func opError(op string, err error) error {
	return fmt.Errorf("manif: %s: %w", op, err)
}

// Must returns v if err is nil and panics otherwise. It is meant for
// constructing values from literals that are known to be valid.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}

// Trigonometry is computed in float64 regardless of T.

func asin[T Scalar](x T) T     { return T(math.Asin(float64(x))) }
func atan2[T Scalar](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
func sqrt[T Scalar](x T) T     { return T(math.Sqrt(float64(x))) }
func abs[T Scalar](x T) T      { return T(math.Abs(float64(x))) }

func copysign[T Scalar](f, sign T) T {
	return T(math.Copysign(float64(f), float64(sign)))
}

func sincos[T Scalar](x T) (T, T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// maxAbs returns the largest magnitude in xs, or NaN if any element is NaN.
func maxAbs[T Scalar](xs []T) float64 {
	var m float64
	for _, x := range xs {
		m = max(m, math.Abs(float64(x)))
	}
	return m
}

// hypot returns the Euclidean norm of xs. Components are divided by the
// largest magnitude before squaring, so tiny and huge vectors keep their
// precision.
func hypot[T Scalar](xs ...T) T {
	m := maxAbs(xs)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return T(m)
	}
	var s float64
	for _, x := range xs {
		y := float64(x) / m
		s += y * y
	}
	return T(m * math.Sqrt(s))
}

// normalize scales xs in place to unit length. It reports false and leaves
// xs unchanged if xs is zero or has a NaN or infinite component.
func normalize[T Scalar](xs []T) bool {
	m := maxAbs(xs)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return false
	}
	var s float64
	for _, x := range xs {
		y := float64(x) / m
		s += y * y
	}
	n := math.Sqrt(s)
	for i, x := range xs {
		xs[i] = T(float64(x) / m / n)
	}
	return true
}
