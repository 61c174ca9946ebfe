package spline

import (
	"fmt"
	"iter"
	"math"
	"sort"
	"strconv"
)

// EndpointMode controls how a [CatRomSpline] treats its first and last
// control points.
type EndpointMode int

const (
	// EndpointNone excludes the first and last control points from the
	// curve. They only shape the tangents of the outermost curves.
	EndpointNone EndpointMode = iota
	// EndpointExtrapolate makes the first and last control points the
	// endpoints of the spline, mirroring their neighbors to obtain the
	// missing outer points.
	EndpointExtrapolate
	// EndpointCollapse makes the first and last control points the
	// endpoints of the spline, repeating them as the missing outer points.
	EndpointCollapse
)

func (m EndpointMode) String() string {
	switch m {
	case EndpointNone:
		return "none"
	case EndpointExtrapolate:
		return "extrapolate"
	case EndpointCollapse:
		return "collapse"
	default:
		return "EndpointMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Node is a control point of a [CatRomSpline] together with its knot and
// the curve starting at it. Curve is parameterized by u - Knot.
type Node[V Vector[V]] struct {
	Position V
	Knot     float64
	Curve    Polynomial[V]
}

// CatRomSpline is a piecewise Catmull-Rom spline through a sequence of
// control points. Each pair of consecutive control points is joined by a
// non-uniform Catmull-Rom curve, and the whole spline is parameterized by a
// global parameter u running from KnotStart to KnotEnd.
//
// Knots and curves are recomputed lazily after any change. A CatRomSpline
// must not be mutated and evaluated concurrently; concurrent evaluation is
// safe only after a call to Ready.
type CatRomSpline[V Vector[V]] struct {
	nodes     []Node[V]
	mode      EndpointMode
	alpha     float64
	autoKnots bool
	valid     bool
}

// NewCatRomSpline returns a spline whose knots are derived from the spacing
// of the points, using alpha as the exponent of the chord length.
//
// At least two points are required, or four with EndpointNone.
func NewCatRomSpline[V Vector[V]](points []V, mode EndpointMode, alpha float64) (*CatRomSpline[V], error) {
	if err := validateCatRom("NewCatRomSpline", len(points), mode); err != nil {
		return nil, err
	}
	s := &CatRomSpline[V]{
		nodes:     make([]Node[V], len(points)),
		mode:      mode,
		alpha:     alpha,
		autoKnots: true,
	}
	for i, p := range points {
		s.nodes[i].Position = p
	}
	return s, nil
}

// NewCatRomSplineWithKnots returns a spline with one knot per point. The
// knots must be non-decreasing.
func NewCatRomSplineWithKnots[V Vector[V]](points []V, knots []float64, mode EndpointMode) (*CatRomSpline[V], error) {
	const fn = "NewCatRomSplineWithKnots"
	if err := validateCatRom(fn, len(points), mode); err != nil {
		return nil, err
	}
	if len(knots) != len(points) {
		return nil, &ConstructionError{Func: fn, Constraint: "len(knots) == len(points)", Want: len(points), Got: len(knots)}
	}
	if err := validateKnots(fn, knots); err != nil {
		return nil, err
	}
	s := &CatRomSpline[V]{
		nodes: make([]Node[V], len(points)),
		mode:  mode,
	}
	for i, p := range points {
		s.nodes[i].Position = p
		s.nodes[i].Knot = knots[i]
	}
	return s, nil
}

func validateCatRom(fn string, n int, mode EndpointMode) error {
	switch mode {
	case EndpointNone:
		if n < 4 {
			return &ConstructionError{Func: fn, Constraint: "len(points) >= 4 with EndpointNone", Want: 4, Got: n}
		}
	case EndpointExtrapolate, EndpointCollapse:
		if n < 2 {
			return &ConstructionError{Func: fn, Constraint: "len(points) >= 2", Want: 2, Got: n}
		}
	default:
		return &ConstructionError{Func: fn, Constraint: fmt.Sprintf("unknown endpoint mode %d", mode)}
	}
	return nil
}

func validateKnots(fn string, knots []float64) error {
	for i := 1; i < len(knots); i++ {
		if !(knots[i] >= knots[i-1]) {
			return &ConstructionError{Func: fn, Constraint: fmt.Sprintf("knots[%d] >= knots[%d]", i, i-1)}
		}
	}
	return nil
}

// ControlPointCount returns the number of control points.
func (s *CatRomSpline[V]) ControlPointCount() int { return len(s.nodes) }

// CurveCount returns the number of curves making up the spline.
func (s *CatRomSpline[V]) CurveCount() int {
	if s.mode == EndpointNone {
		return len(s.nodes) - 3
	}
	return len(s.nodes) - 1
}

// firstNode returns the index of the node at which the spline starts.
func (s *CatRomSpline[V]) firstNode() int {
	if s.mode == EndpointNone {
		return 1
	}
	return 0
}

// lastNode returns the index of the node starting the last curve.
func (s *CatRomSpline[V]) lastNode() int {
	return s.firstNode() + s.CurveCount() - 1
}

func (s *CatRomSpline[V]) EndpointMode() EndpointMode { return s.mode }

// SetEndpointMode changes the endpoint mode. It fails if the spline has too
// few control points for the new mode.
func (s *CatRomSpline[V]) SetEndpointMode(mode EndpointMode) error {
	if err := validateCatRom("SetEndpointMode", len(s.nodes), mode); err != nil {
		return err
	}
	s.mode = mode
	s.valid = false
	return nil
}

func (s *CatRomSpline[V]) Alpha() float64 { return s.alpha }

// SetAlpha sets the exponent used to derive knots from the chord lengths.
func (s *CatRomSpline[V]) SetAlpha(alpha float64) {
	s.alpha = alpha
	s.valid = false
}

func (s *CatRomSpline[V]) AutoKnots() bool { return s.autoKnots }

// SetAutoKnots enables or disables deriving the knots from the control
// points. Disabling it keeps the current knots.
func (s *CatRomSpline[V]) SetAutoKnots(auto bool) {
	if !auto {
		s.Ready()
	}
	s.autoKnots = auto
	s.valid = false
}

// Position returns the i-th control point. It panics if i is out of range.
func (s *CatRomSpline[V]) Position(i int) V {
	s.checkNode(i)
	return s.nodes[i].Position
}

// SetPosition replaces the i-th control point. It panics if i is out of
// range.
func (s *CatRomSpline[V]) SetPosition(i int, p V) {
	s.checkNode(i)
	s.nodes[i].Position = p
	s.valid = false
}

// Knot returns the knot of the i-th control point. It panics if i is out of
// range.
func (s *CatRomSpline[V]) Knot(i int) float64 {
	s.checkNode(i)
	s.Ready()
	return s.nodes[i].Knot
}

// SetKnot sets the knot of the i-th control point and disables automatic
// knots. It fails if the knots would no longer be non-decreasing.
func (s *CatRomSpline[V]) SetKnot(i int, k float64) error {
	if i < 0 || i >= len(s.nodes) {
		return &IndexError{What: "node", Index: i, Len: len(s.nodes)}
	}
	s.Ready()
	if (i > 0 && !(k >= s.nodes[i-1].Knot)) || (i < len(s.nodes)-1 && !(k <= s.nodes[i+1].Knot)) {
		return &ConstructionError{Func: "SetKnot", Constraint: fmt.Sprintf("knots[%d] between its neighbors", i)}
	}
	s.nodes[i].Knot = k
	s.autoKnots = false
	s.valid = false
	return nil
}

// SetKnots replaces all knots and disables automatic knots.
func (s *CatRomSpline[V]) SetKnots(knots []float64) error {
	const fn = "SetKnots"
	if len(knots) != len(s.nodes) {
		return &ConstructionError{Func: fn, Constraint: "len(knots) == len(points)", Want: len(s.nodes), Got: len(knots)}
	}
	if err := validateKnots(fn, knots); err != nil {
		return err
	}
	for i, k := range knots {
		s.nodes[i].Knot = k
	}
	s.autoKnots = false
	s.valid = false
	return nil
}

// Append adds a control point at the end of the spline. With manual knots,
// the new knot continues the spacing of the last two.
func (s *CatRomSpline[V]) Append(p V) {
	s.Ready()
	n := len(s.nodes)
	k := s.nodes[n-1].Knot + (s.nodes[n-1].Knot - s.nodes[n-2].Knot)
	s.nodes = append(s.nodes, Node[V]{Position: p, Knot: k})
	s.valid = false
}

// Nodes returns a copy of the nodes, with knots and curves up to date.
func (s *CatRomSpline[V]) Nodes() []Node[V] {
	s.Ready()
	out := make([]Node[V], len(s.nodes))
	copy(out, s.nodes)
	return out
}

func (s *CatRomSpline[V]) checkNode(i int) {
	if i < 0 || i >= len(s.nodes) {
		panic(&IndexError{What: "node", Index: i, Len: len(s.nodes)})
	}
}

// point returns the control point at index i, synthesizing the virtual
// points at -1 and len(nodes) according to the endpoint mode.
func (s *CatRomSpline[V]) point(i int) V {
	n := len(s.nodes)
	switch {
	case i < 0:
		if s.mode == EndpointExtrapolate {
			return Lerp(s.nodes[1].Position, s.nodes[0].Position, 2)
		}
		return s.nodes[0].Position
	case i >= n:
		if s.mode == EndpointExtrapolate {
			return Lerp(s.nodes[n-2].Position, s.nodes[n-1].Position, 2)
		}
		return s.nodes[n-1].Position
	default:
		return s.nodes[i].Position
	}
}

// knot returns the knot at index i. Knots outside of the nodes continue the
// spacing of the outermost interval in every endpoint mode.
func (s *CatRomSpline[V]) knot(i int) float64 {
	n := len(s.nodes)
	switch {
	case i < 0:
		return 2*s.nodes[0].Knot - s.nodes[1].Knot
	case i >= n:
		return 2*s.nodes[n-1].Knot - s.nodes[n-2].Knot
	default:
		return s.nodes[i].Knot
	}
}

// Ready recomputes knots and curves if anything changed since the last
// call. All evaluating methods call it implicitly.
func (s *CatRomSpline[V]) Ready() {
	if s.valid {
		return
	}
	if s.autoKnots {
		s.nodes[0].Knot = 0
		for i := 1; i < len(s.nodes); i++ {
			if s.alpha == 0 {
				s.nodes[i].Knot = float64(i)
			} else {
				s.nodes[i].Knot = s.nodes[i-1].Knot + knotStep(s.nodes[i-1].Position, s.nodes[i].Position, s.alpha)
			}
		}
	}
	for i := 0; i < len(s.nodes)-1; i++ {
		k := s.nodes[i].Knot
		points := PointMatrix4[V]{
			M0: s.point(i - 1),
			M1: s.point(i),
			M2: s.point(i + 1),
			M3: s.point(i + 2),
		}
		knots := [4]float64{
			s.knot(i-1) - k,
			0,
			s.knot(i+1) - k,
			s.knot(i+2) - k,
		}
		s.nodes[i].Curve = nuCatRomCoefficients(points, knots)
	}
	s.valid = true
}

// KnotStart returns the parameter at which the spline starts.
func (s *CatRomSpline[V]) KnotStart() float64 {
	s.Ready()
	return s.nodes[s.firstNode()].Knot
}

// KnotEnd returns the parameter at which the spline ends.
func (s *CatRomSpline[V]) KnotEnd() float64 {
	s.Ready()
	return s.nodes[s.lastNode()+1].Knot
}

// StartPoint returns the first point on the spline.
func (s *CatRomSpline[V]) StartPoint() V {
	return s.nodes[s.firstNode()].Position
}

// EndPoint returns the last point on the spline.
func (s *CatRomSpline[V]) EndPoint() V {
	return s.nodes[s.lastNode()+1].Position
}

// IntervalIndex returns the index of the node whose curve contains u. Values
// of u outside of [KnotStart, KnotEnd] map to the first or last curve.
func (s *CatRomSpline[V]) IntervalIndex(u float64) int {
	s.Ready()
	if math.IsNaN(u) {
		panic("spline: no interval contains NaN")
	}
	first, last := s.firstNode(), s.lastNode()
	if u <= s.nodes[first].Knot {
		return first
	}
	if u >= s.nodes[last].Knot {
		return last
	}
	// The first node whose successor's knot lies beyond u. Nodes with empty
	// intervals are skipped.
	n := sort.Search(last-first, func(j int) bool {
		return u < s.nodes[first+1+j].Knot
	})
	if n == last-first {
		panic(fmt.Sprintf("spline: no interval contains %g", u))
	}
	return first + n
}

func (s *CatRomSpline[V]) clamp(u float64) float64 {
	return min(max(u, s.KnotStart()), s.KnotEnd())
}

// Eval evaluates the spline at the global parameter u. u is clamped to
// [KnotStart, KnotEnd].
func (s *CatRomSpline[V]) Eval(u float64) V {
	u = s.clamp(u)
	nd := &s.nodes[s.IntervalIndex(u)]
	return nd.Curve.Eval(u - nd.Knot)
}

// Derivative evaluates the derivative with respect to u.
func (s *CatRomSpline[V]) Derivative(u float64) V {
	u = s.clamp(u)
	nd := &s.nodes[s.IntervalIndex(u)]
	return nd.Curve.Derivative(u - nd.Knot)
}

func (s *CatRomSpline[V]) SecondDerivative(u float64) V {
	u = s.clamp(u)
	nd := &s.nodes[s.IntervalIndex(u)]
	return nd.Curve.SecondDerivative(u - nd.Knot)
}

func (s *CatRomSpline[V]) ThirdDerivative(u float64) V {
	u = s.clamp(u)
	nd := &s.nodes[s.IntervalIndex(u)]
	return nd.Curve.ThirdDerivative(u - nd.Knot)
}

// curveNode maps a curve index to the node that starts the curve.
func (s *CatRomSpline[V]) curveNode(i int) (*Node[V], float64, error) {
	if i < 0 || i >= s.CurveCount() {
		return nil, 0, &IndexError{What: "curve", Index: i, Len: s.CurveCount()}
	}
	s.Ready()
	j := s.firstNode() + i
	return &s.nodes[j], s.nodes[j+1].Knot - s.nodes[j].Knot, nil
}

// Curve returns the polynomial of the i-th curve, parameterized by the
// global parameter minus the knot the curve starts at.
func (s *CatRomSpline[V]) Curve(i int) (Polynomial[V], error) {
	nd, _, err := s.curveNode(i)
	if err != nil {
		return Polynomial[V]{}, err
	}
	return nd.Curve, nil
}

// CurvePoint evaluates the i-th curve at the local parameter t ∈ [0, 1].
func (s *CatRomSpline[V]) CurvePoint(i int, t float64) (V, error) {
	nd, span, err := s.curveNode(i)
	if err != nil {
		return *new(V), err
	}
	return nd.Curve.Eval(t * span), nil
}

// CurveDerivative evaluates the derivative of the i-th curve at the local
// parameter t ∈ [0, 1]. The derivative is with respect to the global
// parameter, as returned by Derivative.
func (s *CatRomSpline[V]) CurveDerivative(i int, t float64) (V, error) {
	nd, span, err := s.curveNode(i)
	if err != nil {
		return *new(V), err
	}
	return nd.Curve.Derivative(t * span), nil
}

// Samples returns an iterator over n+1 evenly spaced parameters from
// KnotStart to KnotEnd and the points of the spline at them.
func (s *CatRomSpline[V]) Samples(n int) iter.Seq2[float64, V] {
	return func(yield func(float64, V) bool) {
		n := max(n, 1)
		u0, u1 := s.KnotStart(), s.KnotEnd()
		for i := range n + 1 {
			u := u0 + (u1-u0)*float64(i)/float64(n)
			if !yield(u, s.Eval(u)) {
				return
			}
		}
	}
}
