package spline

import (
	"math"
	"testing"
)

func checkRoots(t *testing.T, roots, want []float64) {
	t.Helper()
	diff(t, want, roots, approx(1e-9))
}

// shift returns p - v.
func shift(p Polynomial[Vec1], v Vec1) Polynomial[Vec1] {
	c := make([]Vec1, p.Degree()+1)
	for i := range c {
		c[i] = p.Coefficient(i)
	}
	c[0] -= v
	return NewPolynomial(c...)
}

func TestRootsCubicSegment(t *testing.T) {
	// x = 3t + 3t² - 2t³, y = 9t - 9t²
	b := NewBezierCubic(Vec(0, 0), Vec(1, 3), Vec(3, 3), Vec(4, 0))
	x := b.Curve().Component(0)
	y := b.Curve().Component(1)

	roots, n := Roots(shift(x, 2))
	checkRoots(t, roots[:n], []float64{-1, 0.5, 2})

	// The cubic term vanishes.
	roots, n = Roots(y)
	checkRoots(t, roots[:n], []float64{0, 1})

	roots, n = Roots(y.Differentiate())
	checkRoots(t, roots[:n], []float64{0.5})

	// One real root.
	roots, n = Roots(NewPolynomial[Vec1](-5, 0, 0, 1))
	checkRoots(t, roots[:n], []float64{math.Cbrt(5)})
}

func TestRootsQuadraticSegment(t *testing.T) {
	// y = 4t - 4t²
	y := NewBezierQuad(Vec(0, 0), Vec(1, 2), Vec(2, 0)).Curve().Component(1)
	diff(t, 2, y.Degree())

	roots, n := Roots(y)
	checkRoots(t, roots[:n], []float64{0, 1})

	// Touches y = 1 at the apex.
	roots, n = Roots(shift(y, 1))
	checkRoots(t, roots[:n], []float64{0.5})

	roots, n = Roots(shift(y, 2))
	checkRoots(t, roots[:n], []float64{})

	// b² overflows.
	roots, n = Roots(NewPolynomial[Vec1](1, 1e300, 1))
	diff(t, 2, n)
	diff(t, -1e300, roots[0])
	diff(t, -1e-300, roots[1], approx(1e-310))
}

func TestRootsDegenerate(t *testing.T) {
	// Every point has x = 1.
	b := NewBezierCubic(Vec(1, 0), Vec(1, 1), Vec(1, 2), Vec(1, 3))
	roots, n := Roots(shift(b.Curve().Component(0), 1))
	checkRoots(t, roots[:n], []float64{0})

	roots, n = Roots(shift(b.Curve().Component(0), 2))
	checkRoots(t, roots[:n], []float64{})

	// y = 3t
	roots, n = Roots(shift(b.Curve().Component(1), 1.5))
	checkRoots(t, roots[:n], []float64{0.5})

	roots, n = Roots(NewPolynomial[Vec1](3))
	diff(t, 0, n)
}

func TestSolveITP(t *testing.T) {
	x := NewBezierCubic(Vec(0, 0), Vec(1, 3), Vec(3, 3), Vec(4, 0)).Curve().Component(0)
	for _, target := range []float64{0.5, 2, 3.9} {
		f := func(u float64) float64 { return float64(x.Eval(u)) - target }
		got := solveITP(f, 0, 1, f(0), f(1), 1e-12)

		roots, n := Roots(shift(x, Vec1(target)))
		var want float64
		for _, r := range roots[:n] {
			if r >= 0 && r <= 1 {
				want = r
			}
		}
		diff(t, want, got, approx(1e-11))
	}
}

func TestGaussLegendre(t *testing.T) {
	for _, rule := range [][][2]float64{gaussLegendre16, gaussLegendre24} {
		n := 2 * len(rule)
		var sum, moment float64
		for _, wx := range rule {
			w, x := wx[0], wx[1]
			sum += w
			// An n-point rule is exact up to degree 2n-1.
			moment += w * math.Pow(x, float64(2*n-2))
			if p, _ := legendre(n, x); math.Abs(p) > 1e-12 {
				t.Errorf("P%d(%v) = %v, want 0", n, x, p)
			}
		}
		diff(t, 1.0, sum, approx(1e-14))
		diff(t, 1/float64(2*n-1), moment, approx(1e-14))
	}

	// The smallest node of the 16-point rule.
	diff(t, [2]float64{0.1894506104550685, 0.0950125098376374}, gaussLegendre16[7], approx(1e-14))
}
