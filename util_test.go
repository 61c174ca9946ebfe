package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx treats floats, including the components of vectors, as equal if
// they differ by at most tol.
func approx(tol float64) cmp.Option {
	return cmp.Options{
		cmpopts.EquateApprox(0, tol),
		cmp.Comparer(func(a, b Vec1) bool { return math.Abs(float64(a-b)) <= tol }),
	}
}

// checkDerivative compares df against a central finite difference of f at
// several parameters in [t0, t1].
func checkDerivative[V Vector[V]](t *testing.T, name string, f, df func(float64) V, t0, t1 float64) {
	t.Helper()
	const n = 10
	const h = 1e-6
	for i := range n + 1 {
		ts := t0 + (t1-t0)*float64(i)/float64(n)
		dApprox := f(ts + h).Sub(f(ts - h)).Mul(1 / (2 * h))
		d := df(ts)
		if l := math.Sqrt(DistanceSquared(d, dApprox)); l > 1e-4*(1+Length(d)) {
			t.Errorf("%s: derivative at %g is %v, finite difference gives %v", name, ts, d, dApprox)
		}
	}
}

// recoverIndexError runs f and returns the *IndexError it panicked with.
func recoverIndexError(t *testing.T, f func()) (ierr *IndexError) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		var ok bool
		ierr, ok = r.(*IndexError)
		if !ok {
			t.Fatalf("panicked with %T, want *IndexError", r)
		}
	}()
	f()
	return nil
}
