package spline

import "math"

// MaxDegree is the highest degree a [Polynomial] can have.
const MaxDegree = 3

// Polynomial is a polynomial of degree 0 to 3 with vector-valued
// coefficients. It evaluates to c₀ + c₁t + c₂t² + c₃t³.
//
// The degree is fixed when the polynomial is constructed and coefficients
// past the degree are zero. Polynomials are immutable values; segments
// derive them from their control points and replace them whenever the
// control points change.
type Polynomial[V Vector[V]] struct {
	c      [MaxDegree + 1]V
	degree int
}

// NewPolynomial returns the polynomial with the given coefficients, in
// increasing order of power. It panics if there are no coefficients or more
// than MaxDegree+1 of them.
func NewPolynomial[V Vector[V]](coeffs ...V) Polynomial[V] {
	if len(coeffs) == 0 || len(coeffs) > MaxDegree+1 {
		panic(&IndexError{What: "polynomial degree", Index: len(coeffs) - 1, Len: MaxDegree + 1})
	}
	var p Polynomial[V]
	copy(p.c[:], coeffs)
	p.degree = len(coeffs) - 1
	return p
}

func (p Polynomial[V]) Degree() int {
	return p.degree
}

// Coefficient returns the coefficient of tⁱ. It returns the zero vector for
// powers past the polynomial's degree.
func (p Polynomial[V]) Coefficient(i int) V {
	if i < 0 || i > MaxDegree {
		panic(&IndexError{What: "coefficient", Index: i, Len: MaxDegree + 1})
	}
	return p.c[i]
}

// Eval evaluates the polynomial at t, using Horner's method.
func (p Polynomial[V]) Eval(t float64) V {
	r := p.c[p.degree]
	for i := p.degree - 1; i >= 0; i-- {
		r = p.c[i].Add(r.Mul(t))
	}
	return r
}

// Derivative evaluates the first derivative at t.
func (p Polynomial[V]) Derivative(t float64) V {
	switch p.degree {
	case 0:
		return *new(V)
	case 1:
		return p.c[1]
	case 2:
		return p.c[1].Add(p.c[2].Mul(2 * t))
	default:
		return p.c[1].Add(p.c[2].Mul(2 * t)).Add(p.c[3].Mul(3 * t * t))
	}
}

// SecondDerivative evaluates the second derivative at t.
func (p Polynomial[V]) SecondDerivative(t float64) V {
	switch p.degree {
	case 0, 1:
		return *new(V)
	case 2:
		return p.c[2].Mul(2)
	default:
		return p.c[2].Mul(2).Add(p.c[3].Mul(6 * t))
	}
}

// ThirdDerivative evaluates the third derivative, which is constant.
func (p Polynomial[V]) ThirdDerivative(t float64) V {
	if p.degree < 3 {
		return *new(V)
	}
	return p.c[3].Mul(6)
}

// Differentiate returns the derivative as a polynomial of one degree lower.
// The derivative of a constant is the zero polynomial of degree 0.
func (p Polynomial[V]) Differentiate() Polynomial[V] {
	var d Polynomial[V]
	d.degree = max(p.degree-1, 0)
	for i := 1; i <= p.degree; i++ {
		d.c[i-1] = p.c[i].Mul(float64(i))
	}
	return d
}

// Component returns the polynomial of a single coordinate axis.
func (p Polynomial[V]) Component(axis int) Polynomial[Vec1] {
	var c Polynomial[Vec1]
	c.degree = p.degree
	for i := range p.degree + 1 {
		c.c[i] = Vec1(p.c[i].Coord(axis))
	}
	return c
}

// Bounds returns the smallest axis-aligned box enclosing the polynomial's
// trace over [t0, t1]. Extrema are found per axis from the roots of the
// derivative.
func (p Polynomial[V]) Bounds(t0, t1 float64) Box[V] {
	b := NewBox(p.Eval(t0), p.Eval(t1))
	if p.degree < 2 {
		return b
	}
	for axis := range p.c[0].Dims() {
		roots, n := Roots(p.Component(axis).Differentiate())
		for _, t := range roots[:n] {
			if t > t0 && t < t1 {
				b = b.Union(p.Eval(t))
			}
		}
	}
	return b
}

// Arclen returns the length of the polynomial's trace over [t0, t1].
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (p Polynomial[V]) Arclen(t0, t1, accuracy float64) float64 {
	if t1 < t0 {
		return -p.Arclen(t1, t0, accuracy)
	}
	return arclen(p.Differentiate(), t0, t1, accuracy, 0)
}

func arclen[V Vector[V]](d Polynomial[V], t0, t1, accuracy float64, depth int) float64 {
	est16 := arclenQuadrature(d, t0, t1, gaussLegendre16)
	est24 := arclenQuadrature(d, t0, t1, gaussLegendre24)
	if math.Abs(est24-est16) < accuracy || depth >= 16 {
		return est24
	}
	tm := 0.5 * (t0 + t1)
	return arclen(d, t0, tm, accuracy*0.5, depth+1) + arclen(d, tm, t1, accuracy*0.5, depth+1)
}

func arclenQuadrature[V Vector[V]](d Polynomial[V], t0, t1 float64, coeffs [][2]float64) float64 {
	half := 0.5 * (t1 - t0)
	mid := 0.5 * (t0 + t1)
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (Length(d.Eval(mid+half*xi)) + Length(d.Eval(mid-half*xi)))
	}
	return sum * half
}

// SolveForArclen solves for the parameter t ∈ [0, 1] at which the trace,
// measured from t = 0, has the given arc length.
//
// The search uses the ITP method and measures increasingly smaller pieces
// of the curve rather than repeatedly measuring from t = 0.
func (p Polynomial[V]) SolveForArclen(length, accuracy float64) float64 {
	if length <= 0.0 {
		return 0.0
	}
	total := p.Arclen(0, 1, accuracy)
	if length >= total {
		return 1.0
	}
	tLast := 0.0
	lengthLast := 0.0
	epsilon := accuracy / total
	n := 1.0 - min(math.Ceil(math.Log2(epsilon)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		lengthLast += p.Arclen(tLast, t, innerAccuracy)
		tLast = t
		return lengthLast - length
	}
	return solveITP(f, 0, 1, -length, total-length, epsilon)
}

// Box is an axis-aligned bounding box.
type Box[V Vector[V]] struct {
	Min V
	Max V
}

// NewBox returns the smallest box containing both points.
func NewBox[V Vector[V]](a, b V) Box[V] {
	return Box[V]{Min: a.Min(b), Max: a.Max(b)}
}

// Union returns the smallest box containing b and v.
func (b Box[V]) Union(v V) Box[V] {
	return Box[V]{Min: b.Min.Min(v), Max: b.Max.Max(v)}
}

// Size returns the extent of the box along each axis.
func (b Box[V]) Size() V {
	return b.Max.Sub(b.Min)
}

// Contains reports whether v lies inside the box, borders included.
func (b Box[V]) Contains(v V) bool {
	for i := range v.Dims() {
		x := v.Coord(i)
		if x < b.Min.Coord(i) || x > b.Max.Coord(i) {
			return false
		}
	}
	return true
}
