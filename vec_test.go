package manif

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestVecArithmetic(t *testing.T) {
	diff(t, V2(1.0, 2.0).Add(V2(3.0, -4.0)), V2(4.0, -2.0))
	diff(t, V3(1.0, 2.0, 3.0).Sub(V3(1.0, 1.0, 1.0)), V3(0.0, 1.0, 2.0))
	diff(t, V3(1.0, 0.0, 0.0).Cross(V3(0.0, 1.0, 0.0)), UnitZ[float64]())
	diff(t, V3(1.0, -2.0, 3.0).Negate(), V3(-1.0, 2.0, -3.0))

	if d := V2(3.0, 4.0).Norm(); d != 5 {
		t.Errorf("got norm %v, want 5", d)
	}
	assertNear(t, V3(2.0, 3.0, 6.0).Norm(), 7, 1e-12)
	if c := V2(1.0, 0.0).Cross(V2(0.0, 1.0)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
}

func TestVecNormalize(t *testing.T) {
	v, err := V3(0.0, 3.0, 4.0).Normalize()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, v, V3(0.0, 0.6, 0.8), approx)

	if _, err := (Vec3[float64]{}).Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
	if _, err := (Vec2[float32]{}).Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
	if _, err := V2(math.Inf(1), 0).Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
	if _, err := V3(math.NaN(), 0, 1).Normalize(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got error %v, want ErrDegenerate", err)
	}
}

func TestVecIsNaN(t *testing.T) {
	if V3(0.0, 1.0, 2.0).IsNaN() {
		t.Error("vector is NaN but shouldn't be")
	}
	if !V3(0, math.NaN(), 2).IsNaN() {
		t.Error("vector isn't NaN but should be")
	}
	if !V2(math.Inf(-1), 0).IsInf() {
		t.Error("vector is finite but shouldn't be")
	}
}

func TestMat(t *testing.T) {
	m := Mat3[float64]{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	diff(t, m.Mul(Identity3[float64]()), m)
	diff(t, Identity3[float64]().Mul(m), m)
	diff(t, m.MulVec(V3(1.0, 0.0, 0.0)), m.Col(0))
	diff(t, m.Transpose().Row(2), m.Col(2))
	if d := m.Determinant(); d != -3 {
		t.Errorf("got determinant %v, want -3", d)
	}
	if v := m.At(2, 1); v != 8 {
		t.Errorf("got element %v, want 8", v)
	}

	n := Mat2[float64]{1, 2, 3, 4}
	diff(t, n.Mul(Identity2[float64]()), n)
	diff(t, n.MulVec(V2(0.0, 1.0)), n.Col(1))
	diff(t, n.Transpose(), Mat2[float64]{1, 3, 2, 4})
	if d := n.Determinant(); d != -2 {
		t.Errorf("got determinant %v, want -2", d)
	}
}

func TestVecExtremeMagnitudes(t *testing.T) {
	for _, scale := range []float64{1e-300, 1e-200, 1e-170, 1e200, 1e300} {
		v, err := V3(0, 3*scale, 4*scale).Normalize()
		if err != nil {
			t.Fatalf("scale %g: %v", scale, err)
		}
		diff(t, v, V3(0.0, 0.6, 0.8), approx)
		assertNear(t, V3(0, 3*scale, 4*scale).Norm()/scale, 5, 1e-12)

		w, err := V2(scale, scale).Normalize()
		if err != nil {
			t.Fatalf("scale %g: %v", scale, err)
		}
		diff(t, w, V2(math.Sqrt2/2, math.Sqrt2/2), approx)
		assertNear(t, V2(3*scale, 4*scale).Norm()/scale, 5, 1e-12)
	}

	for _, scale := range []float32{1e-38, 1e-23, 1e-20, 1e20, 1e30} {
		v, err := V3(0, 3*scale, 4*scale).Normalize()
		if err != nil {
			t.Fatalf("scale %g: %v", scale, err)
		}
		diff(t, v, V3[float32](0, 0.6, 0.8), cmpopts.EquateApprox(0, 1e-6))
		if n := V3(0, 3*scale, 4*scale).Norm() / scale; math.Abs(float64(n)-5) > 1e-5 {
			t.Errorf("scale %g: got norm %v, want 5", scale, n)
		}

		if _, err := V2(scale, 0).Normalize(); err != nil {
			t.Fatalf("scale %g: %v", scale, err)
		}
	}
}
