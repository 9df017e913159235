package manif

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGonumVectors(t *testing.T) {
	diff(t, V3(1.0, 2.0, 3.0).R3(), r3.Vec{X: 1, Y: 2, Z: 3})
	diff(t, Vec3FromR3[float32](r3.Vec{X: 1, Y: 2, Z: 3}), V3[float32](1, 2, 3))
	diff(t, Vec2FromR2[float64](V2(4.0, 5.0).R2()), V2(4.0, 5.0))
}

func TestGonumMatrices(t *testing.T) {
	m := Mat3[float64]{1, 2, 3, 4, 5, 6, 7, 8, 9}
	d := m.Dense()
	if v := d.At(1, 2); v != 6 {
		t.Errorf("got element %v, want 6", v)
	}
	got, err := Mat3FromMatrix[float64](d)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, m)

	// Transposed views are read through the mat.Matrix interface.
	gotT, err := Mat3FromMatrix[float64](d.T())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, gotT, m.Transpose())

	n := Mat2[float32]{1, 2, 3, 4}
	got2, err := Mat2FromMatrix[float32](n.Dense())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got2, n)

	_, err = Mat3FromMatrix[float64](mat.NewDense(2, 3, nil))
	if !errors.Is(err, ErrShape) {
		t.Errorf("got error %v, want ErrShape", err)
	}
	if got, want := err.Error(), "manif: Mat3FromMatrix: want 3×3, got 2×3: matrix has wrong shape"; got != want {
		t.Errorf("got error %q, want %q", got, want)
	}
	if _, err := Mat2FromMatrix[float64](d); !errors.Is(err, ErrShape) {
		t.Errorf("got error %v, want ErrShape", err)
	}
}

func TestGonumQuat(t *testing.T) {
	src := newSource(1)
	for range 100 {
		q := RandomSO3[float64](src)
		p, err := SO3FromQuat[float64](q.Quat())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, p.Array(), q.Array(), approx)

		// Rotation by conjugation, q v q*.
		v := RandomVec3[float64](src)
		rv := quat.Mul(quat.Mul(q.Quat(), quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q.Quat()))
		assertVec3Near(t, q.Rotate(v), V3(rv.Imag, rv.Jmag, rv.Kmag), epsilon)
	}

	if _, err := SO3FromQuat[float64](quat.Number{}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
}
