package spline

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

var nurbsPoints = []Vec2{
	Vec(0, 0),
	Vec(1, 2),
	Vec(3, 2.5),
	Vec(3.5, 0),
	Vec(6, -1),
	Vec(7, 1),
}

func mustNURBS(t *testing.T) func(*NURBS[Vec2], error) *NURBS[Vec2] {
	return func(n *NURBS[Vec2], err error) *NURBS[Vec2] {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
}

func TestUniformKnots(t *testing.T) {
	tests := []struct {
		degree, n int
		open      bool
		want      []float64
	}{
		{2, 4, true, []float64{0, 0, 0, 1, 2, 2, 2}},
		{3, 4, true, []float64{0, 0, 0, 0, 1, 1, 1, 1}},
		{1, 3, true, []float64{0, 0, 1, 2, 2}},
		{2, 4, false, []float64{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		got := UniformKnots(tt.degree, tt.n, tt.open)
		diff(t, tt.want, got)
	}
}

func TestNURBSPartitionOfUnity(t *testing.T) {
	for _, degree := range []int{1, 2, 3, 5} {
		for _, open := range []bool{true, false} {
			t.Run(fmt.Sprintf("%d/%t", degree, open), func(t *testing.T) {
				n := mustNURBS(t)(NewUniformNURBS(nurbsPoints, degree, open))
				start, end := n.Domain()
				for i := range 21 {
					u := start + (end-start)*float64(i)/20
					var sum float64
					for j := range nurbsPoints {
						b := n.Basis(j, degree, u)
						if b < -1e-12 {
							t.Errorf("basis %d at %g is negative: %g", j, u, b)
						}
						sum += b
					}
					diff(t, 1.0, sum, approx(1e-12))
				}
			})
		}
	}
}

func TestNURBSBasisRange(t *testing.T) {
	// Knots 0 0 0 0 1 2 3 3 3 3.
	n := mustNURBS(t)(NewUniformNURBS(nurbsPoints, 3, true))
	diff(t, 1.0, n.Basis(6, 0, 3))
	diff(t, 0.0, n.Basis(8, 0, 3))

	diff(t, &IndexError{What: "basis function", Index: 6, Len: 6}, recoverIndexError(t, func() { n.Basis(6, 3, 1) }))
	diff(t, &IndexError{What: "basis function", Index: -1, Len: 6}, recoverIndexError(t, func() { n.Basis(-1, 3, 1) }))
	diff(t, &IndexError{What: "basis function", Index: 9, Len: 9}, recoverIndexError(t, func() { n.Basis(9, 0, 1) }))
	diff(t, &IndexError{What: "basis degree", Index: 9, Len: 9}, recoverIndexError(t, func() { n.Basis(0, 9, 1) }))
	diff(t, &IndexError{What: "basis degree", Index: -1, Len: 9}, recoverIndexError(t, func() { n.Basis(0, -1, 1) }))
}

func TestNURBSInterpolatesEnds(t *testing.T) {
	for _, degree := range []int{1, 2, 3, 5} {
		n := mustNURBS(t)(NewUniformNURBS(nurbsPoints, degree, true))
		diff(t, nurbsPoints[0], n.Eval(0), approx(1e-12))
		diff(t, nurbsPoints[len(nurbsPoints)-1], n.Eval(1), approx(1e-12))
	}

	// Degree 1 passes through every point.
	n := mustNURBS(t)(NewUniformNURBS(nurbsPoints, 1, true))
	for i, p := range nurbsPoints {
		diff(t, p, n.EvalKnot(float64(i)), approx(1e-12))
	}
}

func TestNURBSMatchesBezier(t *testing.T) {
	m := PointMatrix4[Vec2]{Vec(0, 0), Vec(1, 3), Vec(3, 3), Vec(4, 0)}
	b := BezierCubicFromMatrix(m)
	n := mustNURBS(t)(NewUniformNURBS([]Vec2{m.M0, m.M1, m.M2, m.M3}, 3, true))
	diff(t, 1, n.SegmentCount())
	for i := range 11 {
		s := float64(i) / 10
		diff(t, b.Eval(s), n.Eval(s), approx(1e-12))
		diff(t, b.Derivative(s), n.Derivative(s), approx(1e-9))
	}
}

func TestNURBSMatchesUBS(t *testing.T) {
	m := PointMatrix4[Vec2]{Vec(0, 0), Vec(1, 3), Vec(3, 3), Vec(4, 0)}
	u := UBSCubicFromMatrix(m)
	n := mustNURBS(t)(NewUniformNURBS([]Vec2{m.M0, m.M1, m.M2, m.M3}, 3, false))
	start, end := n.Domain()
	diff(t, 3.0, start)
	diff(t, 4.0, end)
	for i := range 11 {
		s := float64(i) / 10
		diff(t, u.Eval(s), n.Eval(s), approx(1e-12))
	}

	q := NewUBSQuad(Vec(0, 0), Vec(1, 2), Vec(3, -1))
	nq := mustNURBS(t)(NewUniformNURBS([]Vec2{q.P0(), q.P1(), q.P2()}, 2, false))
	diff(t, q.Start(), nq.Eval(0), approx(1e-12))
	diff(t, q.Eval(0.5), nq.Eval(0.5), approx(1e-12))
	diff(t, q.End(), nq.Eval(1), approx(1e-12))
}

func TestNURBSUnitWeights(t *testing.T) {
	knots := UniformKnots(3, len(nurbsPoints), true)
	weights := make([]float64, len(nurbsPoints))
	for i := range weights {
		weights[i] = 1
	}
	plain := mustNURBS(t)(NewNURBS(nurbsPoints, knots, 3))
	rational := mustNURBS(t)(NewRationalNURBS(nurbsPoints, weights, knots, 3))
	if plain.Rational() || !rational.Rational() {
		t.Errorf("Rational() = %t, %t, want false, true", plain.Rational(), rational.Rational())
	}
	for i := range 21 {
		s := float64(i) / 20
		diff(t, plain.Eval(s), rational.Eval(s), approx(1e-12))
		diff(t, plain.Derivative(s), rational.Derivative(s), approx(1e-9))
	}
}

func TestNURBSQuarterCircle(t *testing.T) {
	n := mustNURBS(t)(NewRationalNURBS(
		[]Vec2{Vec(1, 0), Vec(1, 1), Vec(0, 1)},
		[]float64{1, math.Sqrt2 / 2, 1},
		[]float64{0, 0, 0, 1, 1, 1},
		2,
	))
	for i := range 21 {
		s := float64(i) / 20
		p := n.Eval(s)
		diff(t, 1.0, Length(p), approx(1e-12))
		// The tangent of a circle is perpendicular to the radius.
		diff(t, 0.0, p.Dot(n.Derivative(s)), approx(1e-9))
	}
	diff(t, Vec(1, 0), n.Eval(0), approx(1e-12))
	diff(t, Vec(0, 1), n.Eval(1), approx(1e-12))
	diff(t, Vec(math.Sqrt2/2, math.Sqrt2/2), n.Eval(0.5), approx(1e-12))
	checkDerivative(t, "quarter circle", n.Eval, n.Derivative, 0.01, 0.99)
}

func TestNURBSDerivative(t *testing.T) {
	for _, degree := range []int{2, 3, 4} {
		n := mustNURBS(t)(NewUniformNURBS(nurbsPoints, degree, true))
		checkDerivative(t, fmt.Sprintf("degree %d", degree), n.Eval, n.Derivative, 0.01, 0.99)
	}

	weights := []float64{1, 2, 0.5, 1, 3, 1}
	r := mustNURBS(t)(NewRationalNURBS(nurbsPoints, weights, UniformKnots(3, len(nurbsPoints), true), 3))
	checkDerivative(t, "rational", r.Eval, r.Derivative, 0.01, 0.99)
}

func TestNURBSRepeatedKnots(t *testing.T) {
	// A knot of multiplicity degree makes the curve pass through a control
	// point.
	knots := []float64{0, 0, 0, 1, 1, 2, 2, 2}
	n := mustNURBS(t)(NewNURBS(nurbsPoints[:5], knots, 2))
	diff(t, nurbsPoints[2], n.EvalKnot(1), approx(1e-12))
	diff(t, 3, n.SegmentCount())
	diff(t, nurbsPoints[4], n.Eval(1), approx(1e-12))
}

func TestNURBSConstruction(t *testing.T) {
	knots := UniformKnots(2, 4, true)
	tests := []struct {
		name string
		err  error
		want *ConstructionError
	}{
		{
			"degree 0",
			func() error { _, err := NewNURBS(nurbsPoints[:4], knots, 0); return err }(),
			&ConstructionError{Func: "NewNURBS", Constraint: "1 <= degree <= 10", Got: 0},
		},
		{
			"degree 11",
			func() error { _, err := NewUniformNURBS(nurbsPoints, 11, true); return err }(),
			&ConstructionError{Func: "NewUniformNURBS", Constraint: "1 <= degree <= 10", Got: 11},
		},
		{
			"too few points",
			func() error { _, err := NewUniformNURBS(nurbsPoints[:3], 3, true); return err }(),
			&ConstructionError{Func: "NewUniformNURBS", Constraint: "len(points) >= degree+1", Want: 4, Got: 3},
		},
		{
			"knot count",
			func() error { _, err := NewNURBS(nurbsPoints[:4], knots[:6], 2); return err }(),
			&ConstructionError{Func: "NewNURBS", Constraint: "len(knots) == degree+len(points)+1", Want: 7, Got: 6},
		},
		{
			"nil weights",
			func() error { _, err := NewRationalNURBS(nurbsPoints[:4], nil, knots, 2); return err }(),
			&ConstructionError{Func: "NewRationalNURBS", Constraint: "weights != nil"},
		},
		{
			"weight count",
			func() error { _, err := NewRationalNURBS(nurbsPoints[:4], []float64{1, 1}, knots, 2); return err }(),
			&ConstructionError{Func: "NewRationalNURBS", Constraint: "len(weights) == len(points)", Want: 4, Got: 2},
		},
		{
			"zero weight",
			func() error {
				_, err := NewRationalNURBS(nurbsPoints[:4], []float64{1, 0, 1, 1}, knots, 2)
				return err
			}(),
			&ConstructionError{Func: "NewRationalNURBS", Constraint: "weights[1] > 0"},
		},
		{
			"decreasing knots",
			func() error {
				_, err := NewNURBS(nurbsPoints[:4], []float64{0, 0, 0, 2, 1, 2, 2}, 2)
				return err
			}(),
			&ConstructionError{Func: "NewNURBS", Constraint: "knots[4] >= knots[3]"},
		},
		{
			"empty domain",
			func() error {
				_, err := NewNURBS(nurbsPoints[:3], []float64{0, 0, 0, 0, 1, 1}, 2)
				return err
			}(),
			&ConstructionError{Func: "NewNURBS", Constraint: "knots[degree] < knots[len(knots)-degree-1]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cerr *ConstructionError
			if !errors.As(tt.err, &cerr) {
				t.Fatalf("got error %v, want *ConstructionError", tt.err)
			}
			if !errors.Is(tt.err, ErrInvalidConstruction) {
				t.Errorf("%v doesn't wrap ErrInvalidConstruction", tt.err)
			}
			diff(t, tt.want, cerr)
		})
	}
}

func TestNURBSAccessorsCopy(t *testing.T) {
	weights := []float64{1, 2, 1, 1}
	knots := UniformKnots(2, 4, true)
	points := append([]Vec2(nil), nurbsPoints[:4]...)
	n := mustNURBS(t)(NewRationalNURBS(points, weights, knots, 2))
	before := n.Eval(0.3)

	points[1] = Vec(100, 100)
	weights[1] = 50
	knots[3] = 1.5
	n.Points()[0] = Vec(-100, 0)
	n.Weights()[0] = 10
	n.Knots()[4] = 0

	diff(t, before, n.Eval(0.3))
	diff(t, 2, n.Degree())
	diff(t, []float64{1, 2, 1, 1}, n.Weights())
	diff(t, UniformKnots(2, 4, true), n.Knots())
	diff(t, nurbsPoints[:4], n.Points())

	plain := mustNURBS(t)(NewNURBS(nurbsPoints[:4], knots, 2))
	if w := plain.Weights(); w != nil {
		t.Errorf("non-rational curve has weights %v", w)
	}
}

func TestNURBS3D(t *testing.T) {
	points := []Vec3{Vec3Of(0, 0, 0), Vec3Of(1, 0, 1), Vec3Of(1, 1, 2), Vec3Of(0, 1, 3), Vec3Of(-1, 0, 4)}
	n, err := NewUniformNURBS(points, 3, true)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, points[0], n.Eval(0), approx(1e-12))
	diff(t, points[4], n.Eval(1), approx(1e-12))
	checkDerivative(t, "3d", n.Eval, n.Derivative, 0.01, 0.99)
}

func BenchmarkNURBSEval(b *testing.B) {
	n, err := NewUniformNURBS(nurbsPoints, 3, true)
	if err != nil {
		b.Fatal(err)
	}
	var sink Vec2
	for i := range b.N {
		sink = sink.Add(n.Eval(float64(i%100) / 100))
	}
	_ = sink
}
