package spline

import (
	"math"
	"slices"
)

// Roots returns the real values of t for which the scalar polynomial is
// zero, in increasing order. The second return value is the number of roots
// found.
//
// Leading coefficients that vanish, or are too small relative to the others
// to be represented, lower the degree that is solved for. A polynomial that
// is zero everywhere reports the single root 0.
func Roots(p Polynomial[Vec1]) ([3]float64, int) {
	c := func(i int) float64 { return float64(p.c[i]) }
	switch p.degree {
	case 0:
		return linearRoots(c(0), 0)
	case 1:
		return linearRoots(c(0), c(1))
	case 2:
		return quadraticRoots(c(0), c(1), c(2))
	default:
		return cubicRoots(c(0), c(1), c(2), c(3))
	}
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// linearRoots solves c0 + c1 t = 0.
func linearRoots(c0, c1 float64) ([3]float64, int) {
	t := -c0 / c1
	switch {
	case finite(t):
		return [3]float64{t}, 1
	case c0 == 0:
		return [3]float64{}, 1
	default:
		return [3]float64{}, 0
	}
}

// quadraticRoots solves c0 + c1 t + c2 t² = 0.
//
// The larger root is computed without cancellation and the smaller one
// from the product of the roots.
func quadraticRoots(c0, c1, c2 float64) ([3]float64, int) {
	// t² + b t + c
	b, c := c1/c2, c0/c2
	if !finite(b) || !finite(c) {
		return linearRoots(c0, c1)
	}
	var r1 float64
	switch disc := b*b - 4*c; {
	case math.IsInf(disc, 0):
		// b² overflowed; b t + t² = 0 gives the large root.
		r1 = -b
	case disc < 0:
		return [3]float64{}, 0
	case disc == 0:
		return [3]float64{-0.5 * b}, 1
	default:
		r1 = -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	}
	r2 := c / r1
	if !finite(r2) {
		return [3]float64{r1}, 1
	}
	return [3]float64{min(r1, r2), max(r1, r2)}, 2
}

// cubicRoots solves c0 + c1 t + c2 t² + c3 t³ = 0, following Blinn's
// approach as presented by Peters.
func cubicRoots(c0, c1, c2, c3 float64) ([3]float64, int) {
	// t³ + 3a t² + 3b t + c
	inv := 1 / c3
	a := c2 * inv / 3
	b := c1 * inv / 3
	c := c0 * inv
	if !finite(a) || !finite(b) || !finite(c) {
		return quadraticRoots(c0, c1, c2)
	}

	// Coefficients of the Hessian.
	h0 := math.FMA(-a, a, b)
	h1 := math.FMA(-b, a, c)
	h2 := a*c - b*b
	disc := 4*h0*h2 - h1*h1
	// Constant term of the depressed cubic.
	q := math.FMA(-2*a, h0, h1)

	var roots [3]float64
	var n int
	switch {
	case disc < 0:
		s := math.Sqrt(-0.25 * disc)
		r := -0.5 * q
		roots[0] = math.Cbrt(r+s) + math.Cbrt(r-s) - a
		n = 1
	case disc == 0:
		s := math.Copysign(math.Sqrt(-h0), q)
		roots[0], roots[1] = s-a, -2*s-a
		n = 2
	default:
		sin, cos := math.Sincos(math.Atan2(math.Sqrt(disc), -q) / 3)
		s := 2 * math.Sqrt(-h0)
		sin3 := math.Sqrt(3) * sin
		roots = [3]float64{
			math.FMA(s, cos, -a),
			math.FMA(s, 0.5*(sin3-cos), -a),
			math.FMA(s, -0.5*(sin3+cos), -a),
		}
		n = 3
	}
	slices.Sort(roots[:n])
	return roots, n
}

// Parameters of the ITP method. k₂ is fixed at 2.
const (
	itpK1 = 0.2
	itpN0 = 1
)

// solveITP returns the zero crossing of f in [a, b] using the ITP method.
// It requires ya = f(a) < 0 and yb = f(b) > 0. For monotonic f the result is
// within epsilon of the crossing.
func solveITP(f func(float64) float64, a, b, ya, yb, epsilon float64) float64 {
	steps := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	radius := math.Ldexp(epsilon, steps+itpN0)
	for b-a > 2*epsilon {
		width := b - a
		mid := 0.5 * (a + b)

		// Interpolate, truncate towards the midpoint, then project into
		// the minmax interval.
		xf := (yb*a - ya*b) / (yb - ya)
		side := math.Copysign(1, mid-xf)
		x := mid
		if delta := itpK1 * width * width; delta <= math.Abs(mid-xf) {
			x = xf + side*delta
		}
		if r := max(radius-0.5*width, 0); math.Abs(x-mid) > r {
			x = mid - side*r
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
		radius *= 0.5
	}
	return 0.5 * (a + b)
}

// Nonnegative nodes of the Gauss-Legendre rules used for arc length, as
// {weight, node} pairs.
var (
	gaussLegendre16 = gaussLegendre(16)
	gaussLegendre24 = gaussLegendre(24)
)

// gaussLegendre computes the nonnegative half of the n-point Gauss-Legendre
// rule on [-1, 1], for even n, by Newton iteration on the roots of Pₙ.
func gaussLegendre(n int) [][2]float64 {
	rule := make([][2]float64, n/2)
	for i := range rule {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for range 100 {
			p, dp := legendre(n, x)
			dx := p / dp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		_, dp := legendre(n, x)
		rule[i] = [2]float64{2 / ((1 - x*x) * dp * dp), x}
	}
	return rule
}

// legendre evaluates the Legendre polynomial Pₙ and its derivative at x,
// for n ≥ 1 and |x| < 1.
func legendre(n int, x float64) (p, dp float64) {
	prev, cur := 1.0, x
	for j := 2; j <= n; j++ {
		fj := float64(j)
		prev, cur = cur, ((2*fj-1)*x*cur-(fj-1)*prev)/fj
	}
	return cur, float64(n) * (x*cur - prev) / (x*x - 1)
}
