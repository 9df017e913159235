package manif

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions to and from gonum types, for pipelines that do their linear
// algebra in float64 with gonum.

// R2 converts v to a gonum vector.
func (v Vec2[T]) R2() r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// Vec2FromR2 converts a gonum vector.
func Vec2FromR2[T Scalar](v r2.Vec) Vec2[T] {
	return Vec2[T]{X: T(v.X), Y: T(v.Y)}
}

// R3 converts v to a gonum vector.
func (v Vec3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Vec3FromR3 converts a gonum vector.
func Vec3FromR3[T Scalar](v r3.Vec) Vec3[T] {
	return Vec3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// Dense returns m as a newly allocated gonum matrix.
func (m Mat2[T]) Dense() *mat.Dense {
	data := make([]float64, len(m))
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(2, 2, data)
}

// Dense returns m as a newly allocated gonum matrix.
func (m Mat3[T]) Dense() *mat.Dense {
	data := make([]float64, len(m))
	for i, v := range m {
		data[i] = float64(v)
	}
	return mat.NewDense(3, 3, data)
}

// Mat2FromMatrix copies a 2×2 gonum matrix. It returns [ErrShape] for any
// other size.
func Mat2FromMatrix[T Scalar](a mat.Matrix) (Mat2[T], error) {
	var m Mat2[T]
	if err := fromMatrix("Mat2FromMatrix", a, 2, m[:]); err != nil {
		return m, err
	}
	return m, nil
}

// Mat3FromMatrix copies a 3×3 gonum matrix. It returns [ErrShape] for any
// other size.
func Mat3FromMatrix[T Scalar](a mat.Matrix) (Mat3[T], error) {
	var m Mat3[T]
	if err := fromMatrix("Mat3FromMatrix", a, 3, m[:]); err != nil {
		return m, err
	}
	return m, nil
}

func fromMatrix[T Scalar](op string, a mat.Matrix, n int, dst []T) error {
	if r, c := a.Dims(); r != n || c != n {
		return opError(op, fmt.Errorf("want %d×%d, got %d×%d: %w", n, n, r, c, ErrShape))
	}
	for r := range n {
		for c := range n {
			dst[n*r+c] = T(a.At(r, c))
		}
	}
	return nil
}

// Quat returns q as a gonum quaternion.
func (q SO3[T]) Quat() quat.Number {
	return quat.Number{
		Real: float64(q.w),
		Imag: float64(q.x),
		Jmag: float64(q.y),
		Kmag: float64(q.z),
	}
}

// SO3FromQuat returns the rotation described by n after normalizing it. It
// returns [ErrDegenerate] if n is zero.
func SO3FromQuat[T Scalar](n quat.Number) (SO3[T], error) {
	return SO3FromQuaternion(T(n.Real), T(n.Imag), T(n.Jmag), T(n.Kmag))
}
