package spline

// cubicBasis selects the characteristic matrix of a cubic segment type.
type cubicBasis interface {
	char() *charMatrix4
}

type quadBasis interface {
	char() *charMatrix3
}

type (
	bezierBasis  struct{}
	hermiteBasis struct{}
	catRomBasis  struct{}
	ubsBasis     struct{}
)

func (bezierBasis) char() *charMatrix4  { return &bezierCubicChar }
func (hermiteBasis) char() *charMatrix4 { return &hermiteCubicChar }
func (catRomBasis) char() *charMatrix4  { return &catRomCubicChar }
func (ubsBasis) char() *charMatrix4     { return &ubsCubicChar }

type (
	bezierQuadBasis struct{}
	ubsQuadBasis    struct{}
)

func (bezierQuadBasis) char() *charMatrix3 { return &bezierQuadChar }
func (ubsQuadBasis) char() *charMatrix3    { return &ubsQuadChar }

// cubic is the state shared by all uniform cubic segments: four control
// points and the polynomial derived from them. The polynomial is computed on
// first use after the points change.
type cubic[V Vector[V], B cubicBasis] struct {
	points PointMatrix4[V]
	curve  Polynomial[V]
	valid  bool
}

func (s *cubic[V, B]) ready() {
	if s.valid {
		return
	}
	var b B
	s.curve = coefficients4(b.char(), s.points)
	s.valid = true
}

func (s *cubic[V, B]) set(i int, v V) {
	s.points.Set(i, v)
	s.valid = false
}

// Point returns the i-th control point. It panics if i isn't in [0, 4).
func (s *cubic[V, B]) Point(i int) V { return s.points.At(i) }

// SetPoint replaces the i-th control point. It panics if i isn't in [0, 4).
func (s *cubic[V, B]) SetPoint(i int, v V) { s.set(i, v) }

// Points returns a copy of the control points.
func (s *cubic[V, B]) Points() PointMatrix4[V] { return s.points }

// SetPoints replaces all control points.
func (s *cubic[V, B]) SetPoints(m PointMatrix4[V]) {
	s.points = m
	s.valid = false
}

// Curve returns the polynomial of the segment, over t ∈ [0, 1].
func (s *cubic[V, B]) Curve() Polynomial[V] {
	s.ready()
	return s.curve
}

// Eval evaluates the segment at t.
func (s *cubic[V, B]) Eval(t float64) V {
	s.ready()
	return s.curve.Eval(t)
}

func (s *cubic[V, B]) Derivative(t float64) V {
	s.ready()
	return s.curve.Derivative(t)
}

func (s *cubic[V, B]) SecondDerivative(t float64) V {
	s.ready()
	return s.curve.SecondDerivative(t)
}

func (s *cubic[V, B]) ThirdDerivative(t float64) V {
	s.ready()
	return s.curve.ThirdDerivative(t)
}

// Bounds returns the bounding box of the segment over t ∈ [0, 1].
func (s *cubic[V, B]) Bounds() Box[V] {
	s.ready()
	return s.curve.Bounds(0, 1)
}

// Arclen returns the arc length of the segment over t ∈ [0, 1].
func (s *cubic[V, B]) Arclen(accuracy float64) float64 {
	s.ready()
	return s.curve.Arclen(0, 1, accuracy)
}

// quadratic is the quadratic counterpart of cubic.
type quadratic[V Vector[V], B quadBasis] struct {
	points PointMatrix3[V]
	curve  Polynomial[V]
	valid  bool
}

func (s *quadratic[V, B]) ready() {
	if s.valid {
		return
	}
	var b B
	s.curve = coefficients3(b.char(), s.points)
	s.valid = true
}

func (s *quadratic[V, B]) set(i int, v V) {
	s.points.Set(i, v)
	s.valid = false
}

// Point returns the i-th control point. It panics if i isn't in [0, 3).
func (s *quadratic[V, B]) Point(i int) V { return s.points.At(i) }

// SetPoint replaces the i-th control point. It panics if i isn't in [0, 3).
func (s *quadratic[V, B]) SetPoint(i int, v V) { s.set(i, v) }

// Points returns a copy of the control points.
func (s *quadratic[V, B]) Points() PointMatrix3[V] { return s.points }

// SetPoints replaces all control points.
func (s *quadratic[V, B]) SetPoints(m PointMatrix3[V]) {
	s.points = m
	s.valid = false
}

// Curve returns the polynomial of the segment, over t ∈ [0, 1].
func (s *quadratic[V, B]) Curve() Polynomial[V] {
	s.ready()
	return s.curve
}

// Eval evaluates the segment at t.
func (s *quadratic[V, B]) Eval(t float64) V {
	s.ready()
	return s.curve.Eval(t)
}

func (s *quadratic[V, B]) Derivative(t float64) V {
	s.ready()
	return s.curve.Derivative(t)
}

func (s *quadratic[V, B]) SecondDerivative(t float64) V {
	s.ready()
	return s.curve.SecondDerivative(t)
}

// ThirdDerivative always returns the zero vector.
func (s *quadratic[V, B]) ThirdDerivative(t float64) V {
	s.ready()
	return s.curve.ThirdDerivative(t)
}

func (s *quadratic[V, B]) Bounds() Box[V] {
	s.ready()
	return s.curve.Bounds(0, 1)
}

func (s *quadratic[V, B]) Arclen(accuracy float64) float64 {
	s.ready()
	return s.curve.Arclen(0, 1, accuracy)
}
