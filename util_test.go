package manif

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

const epsilon = 1e-6

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats within epsilon, for use with diff.
var approx = cmpopts.EquateApprox(0, epsilon)

func newSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, 0x9e3779b97f4a7c15)
}

func assertNear(t *testing.T, got, want float64, eps float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got, want, eps) {
		t.Fatalf("got %g, expected %g", got, want)
	}
}

func assertVec3Near(t *testing.T, got, want Vec3[float64], eps float64) {
	t.Helper()
	if d := got.Sub(want).Norm(); d > eps {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertVec2Near(t *testing.T, got, want Vec2[float64], eps float64) {
	t.Helper()
	if d := got.Sub(want).Norm(); d > eps {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

// sameRotation reports whether p and q describe the same rotation, allowing
// for the sign ambiguity of quaternions.
func sameRotation(p, q SO3[float64], eps float64) bool {
	pa, qa := p.Array(), q.Array()
	var dPlus, dMinus float64
	for i := range pa {
		dPlus = max(dPlus, abs(pa[i]-qa[i]))
		dMinus = max(dMinus, abs(pa[i]+qa[i]))
	}
	return min(dPlus, dMinus) <= eps
}
