package spline

import "fmt"

// MaxNURBSDegree is the highest degree accepted by the NURBS constructors.
// The basis functions are evaluated recursively, so their cost grows
// exponentially with the degree.
const MaxNURBSDegree = 10

// NURBS is a non-uniform rational B-spline curve. It is immutable once
// constructed and safe for concurrent use.
//
// A curve of degree p over n control points has p+n+1 knots. Its domain is
// [knots[p], knots[n]]; Eval maps t ∈ [0, 1] onto that domain.
type NURBS[V Vector[V]] struct {
	points  []V
	knots   []float64
	weights []float64
	degree  int
	// lastSpan is the index of the last non-empty knot span inside the
	// domain. Unlike all other spans, it includes its end.
	lastSpan int
}

// NewNURBS returns a non-rational B-spline curve.
func NewNURBS[V Vector[V]](points []V, knots []float64, degree int) (*NURBS[V], error) {
	return newNURBS("NewNURBS", points, nil, knots, degree)
}

// NewRationalNURBS returns a rational B-spline curve with one positive
// weight per control point.
func NewRationalNURBS[V Vector[V]](points []V, weights, knots []float64, degree int) (*NURBS[V], error) {
	const fn = "NewRationalNURBS"
	if weights == nil {
		return nil, &ConstructionError{Func: fn, Constraint: "weights != nil"}
	}
	return newNURBS(fn, points, weights, knots, degree)
}

// NewUniformNURBS returns a non-rational B-spline curve with knots generated
// by [UniformKnots].
func NewUniformNURBS[V Vector[V]](points []V, degree int, open bool) (*NURBS[V], error) {
	if degree < 1 || degree > MaxNURBSDegree || len(points) < degree+1 {
		// Let the full validation produce the error.
		return newNURBS("NewUniformNURBS", points, nil, nil, degree)
	}
	return newNURBS("NewUniformNURBS", points, nil, UniformKnots(degree, len(points), open), degree)
}

// UniformKnots returns a uniform knot vector for a curve of the given degree
// over n control points.
//
// Open knot vectors repeat their first and last value degree+1 times, which
// makes the curve start at its first and end at its last control point.
// Closed knot vectors are 0, 1, 2, … throughout.
func UniformKnots(degree, n int, open bool) []float64 {
	knots := make([]float64, degree+n+1)
	if !open {
		for i := range knots {
			knots[i] = float64(i)
		}
		return knots
	}
	end := float64(n - degree)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= n:
			knots[i] = end
		default:
			knots[i] = float64(i - degree)
		}
	}
	return knots
}

func newNURBS[V Vector[V]](fn string, points []V, weights, knots []float64, degree int) (*NURBS[V], error) {
	if degree < 1 || degree > MaxNURBSDegree {
		return nil, &ConstructionError{Func: fn, Constraint: fmt.Sprintf("1 <= degree <= %d", MaxNURBSDegree), Got: degree}
	}
	if len(points) < degree+1 {
		return nil, &ConstructionError{Func: fn, Constraint: "len(points) >= degree+1", Want: degree + 1, Got: len(points)}
	}
	if len(knots) != degree+len(points)+1 {
		return nil, &ConstructionError{Func: fn, Constraint: "len(knots) == degree+len(points)+1", Want: degree + len(points) + 1, Got: len(knots)}
	}
	if weights != nil {
		if len(weights) != len(points) {
			return nil, &ConstructionError{Func: fn, Constraint: "len(weights) == len(points)", Want: len(points), Got: len(weights)}
		}
		for i, w := range weights {
			if !(w > 0) {
				return nil, &ConstructionError{Func: fn, Constraint: fmt.Sprintf("weights[%d] > 0", i)}
			}
		}
	}
	if err := validateKnots(fn, knots); err != nil {
		return nil, err
	}
	end := len(knots) - degree - 1
	if !(knots[degree] < knots[end]) {
		return nil, &ConstructionError{Func: fn, Constraint: "knots[degree] < knots[len(knots)-degree-1]"}
	}

	n := &NURBS[V]{
		points: append([]V(nil), points...),
		knots:  append([]float64(nil), knots...),
		degree: degree,
	}
	if weights != nil {
		n.weights = append([]float64(nil), weights...)
	}
	for i := end - 1; i >= degree; i-- {
		if knots[i] < knots[i+1] {
			n.lastSpan = i
			break
		}
	}
	return n, nil
}

func (n *NURBS[V]) Degree() int { return n.degree }

// Rational reports whether the curve has weights.
func (n *NURBS[V]) Rational() bool { return n.weights != nil }

// Points returns a copy of the control points.
func (n *NURBS[V]) Points() []V { return append([]V(nil), n.points...) }

// Knots returns a copy of the knots.
func (n *NURBS[V]) Knots() []float64 { return append([]float64(nil), n.knots...) }

// Weights returns a copy of the weights, or nil for non-rational curves.
func (n *NURBS[V]) Weights() []float64 {
	if n.weights == nil {
		return nil
	}
	return append([]float64(nil), n.weights...)
}

// SegmentCount returns the number of knot spans inside the domain, counting
// empty ones.
func (n *NURBS[V]) SegmentCount() int {
	return len(n.knots) - 2*n.degree - 1
}

// Domain returns the range of knot values over which the curve is defined.
func (n *NURBS[V]) Domain() (start, end float64) {
	return n.knots[n.degree], n.knots[len(n.knots)-n.degree-1]
}

// w is the ratio by which the Cox-de Boor recursion blends two basis
// functions of the previous degree. It is 0 for empty knot intervals.
func (n *NURBS[V]) w(i, k int, t float64) float64 {
	den := n.knots[i+k] - n.knots[i]
	if Approximately(den, 0) {
		return 0
	}
	return (t - n.knots[i]) / den
}

// Basis returns the value of the i-th B-spline basis function of degree k
// at the knot value t.
//
// Degree-0 basis functions are 1 on the half-open span [knots[i],
// knots[i+1]) and 0 elsewhere. The end of the domain belongs to the last
// non-empty span of the domain only.
//
// There are len(knots)-k-1 basis functions of degree k. Basis panics with an
// *IndexError if k or i is outside of that range.
func (n *NURBS[V]) Basis(i, k int, t float64) float64 {
	if k < 0 || k >= len(n.knots)-1 {
		panic(&IndexError{What: "basis degree", Index: k, Len: len(n.knots) - 1})
	}
	if count := len(n.knots) - k - 1; i < 0 || i >= count {
		panic(&IndexError{What: "basis function", Index: i, Len: count})
	}
	return n.basis(i, k, t)
}

func (n *NURBS[V]) basis(i, k int, t float64) float64 {
	if k == 0 {
		if t == n.knots[n.lastSpan+1] {
			if i == n.lastSpan {
				return 1
			}
			return 0
		}
		if t >= n.knots[i] && t < n.knots[i+1] {
			return 1
		}
		return 0
	}
	var b float64
	if a := n.w(i, k, t); a != 0 {
		b += a * n.basis(i, k-1, t)
	}
	if a := 1 - n.w(i+1, k, t); a != 0 {
		b += a * n.basis(i+1, k-1, t)
	}
	return b
}

// basisDerivative returns the derivative of Basis(i, k, t) with respect to
// t.
func (n *NURBS[V]) basisDerivative(i, k int, t float64) float64 {
	var d float64
	if den := n.knots[i+k] - n.knots[i]; !Approximately(den, 0) {
		d += float64(k) / den * n.basis(i, k-1, t)
	}
	if den := n.knots[i+k+1] - n.knots[i+1]; !Approximately(den, 0) {
		d -= float64(k) / den * n.basis(i+1, k-1, t)
	}
	return d
}

// EvalKnot evaluates the curve at the knot value t.
//
// Rational curves divide the weighted sum of the control points by the sum
// of the weighted basis functions. Non-rational curves return the plain sum.
func (n *NURBS[V]) EvalKnot(t float64) V {
	var sum V
	var wsum float64
	for i, p := range n.points {
		b := n.basis(i, n.degree, t)
		if b == 0 {
			continue
		}
		if n.weights != nil {
			b *= n.weights[i]
		}
		sum = sum.Add(p.Mul(b))
		wsum += b
	}
	if n.weights != nil {
		return sum.Mul(1 / wsum)
	}
	return sum
}

// DerivativeKnot evaluates the derivative of the curve with respect to the
// knot value t.
func (n *NURBS[V]) DerivativeKnot(t float64) V {
	var sum, dsum V
	var wsum, dwsum float64
	for i, p := range n.points {
		b := n.basis(i, n.degree, t)
		db := n.basisDerivative(i, n.degree, t)
		if n.weights != nil {
			b *= n.weights[i]
			db *= n.weights[i]
		}
		sum = sum.Add(p.Mul(b))
		dsum = dsum.Add(p.Mul(db))
		wsum += b
		dwsum += db
	}
	if n.weights == nil {
		return dsum
	}
	// Quotient rule on sum / wsum.
	return dsum.Mul(wsum).Sub(sum.Mul(dwsum)).Mul(1 / (wsum * wsum))
}

// knotValue maps t ∈ [0, 1] onto the domain.
func (n *NURBS[V]) knotValue(t float64) float64 {
	start, end := n.Domain()
	return start + (end-start)*t
}

// Eval evaluates the curve at t ∈ [0, 1], which is mapped linearly onto
// the domain.
func (n *NURBS[V]) Eval(t float64) V {
	return n.EvalKnot(n.knotValue(t))
}

// Derivative evaluates the derivative of the curve with respect to
// t ∈ [0, 1].
func (n *NURBS[V]) Derivative(t float64) V {
	start, end := n.Domain()
	return n.DerivativeKnot(n.knotValue(t)).Mul(end - start)
}

// Map returns a curve with the same knots and weights whose control points
// are f applied to the control points of n. For an affine f, the result is
// n transformed by f.
func (n *NURBS[V]) Map(f func(V) V) *NURBS[V] {
	out := *n
	out.points = make([]V, len(n.points))
	for i, p := range n.points {
		out.points[i] = f(p)
	}
	return &out
}
