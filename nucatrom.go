package spline

// NUCatRomCubic is a non-uniform Catmull-Rom segment. It runs from P1 at
// u = K1 to P2 at u = K2, with tangents scaled by the knot spacing.
//
// Unless the knot mode is KnotsManual, the knots are derived from the
// control points and alpha whenever the segment is evaluated after a
// change. Setting a knot explicitly switches the segment to KnotsManual.
type NUCatRomCubic[V Vector[V]] struct {
	points PointMatrix4[V]
	knots  [4]float64
	alpha  float64
	mode   KnotCalcMode
	curve  Polynomial[V]
	valid  bool
}

// NewNUCatRomCubic returns a segment whose knots are derived from the
// spacing of the points. The first knot is 0, so the curve spans
// u ∈ [K1, K2] with K1 > 0 and passes through P1 at u = K1, not at u = 0.
// If unitInterval is set, the knots are rescaled so that the curve spans
// u ∈ [0, 1].
func NewNUCatRomCubic[V Vector[V]](m PointMatrix4[V], alpha float64, unitInterval bool) *NUCatRomCubic[V] {
	mode := KnotsAuto
	if unitInterval {
		mode = KnotsAutoUnitInterval
	}
	return &NUCatRomCubic[V]{points: m, alpha: alpha, mode: mode}
}

// NewNUCatRomCubicWithKnots returns a segment with fixed knots. The knots
// must be strictly increasing.
func NewNUCatRomCubicWithKnots[V Vector[V]](m PointMatrix4[V], k0, k1, k2, k3 float64) *NUCatRomCubic[V] {
	return &NUCatRomCubic[V]{
		points: m,
		knots:  [4]float64{k0, k1, k2, k3},
		mode:   KnotsManual,
	}
}

func (c *NUCatRomCubic[V]) ready() {
	if c.valid {
		return
	}
	if c.mode != KnotsManual {
		c.knots = autoKnots(c.points, c.alpha, c.mode == KnotsAutoUnitInterval)
	}
	c.curve = nuCatRomCoefficients(c.points, c.knots)
	c.valid = true
}

func (c *NUCatRomCubic[V]) Point(i int) V { return c.points.At(i) }

func (c *NUCatRomCubic[V]) SetPoint(i int, v V) {
	c.points.Set(i, v)
	c.valid = false
}

func (c *NUCatRomCubic[V]) Points() PointMatrix4[V] { return c.points }

func (c *NUCatRomCubic[V]) SetPoints(m PointMatrix4[V]) {
	c.points = m
	c.valid = false
}

func (c *NUCatRomCubic[V]) P0() V { return c.points.M0 }
func (c *NUCatRomCubic[V]) P1() V { return c.points.M1 }
func (c *NUCatRomCubic[V]) P2() V { return c.points.M2 }
func (c *NUCatRomCubic[V]) P3() V { return c.points.M3 }

func (c *NUCatRomCubic[V]) SetP0(v V) { c.SetPoint(0, v) }
func (c *NUCatRomCubic[V]) SetP1(v V) { c.SetPoint(1, v) }
func (c *NUCatRomCubic[V]) SetP2(v V) { c.SetPoint(2, v) }
func (c *NUCatRomCubic[V]) SetP3(v V) { c.SetPoint(3, v) }

// Knots returns the current knots, deriving them first if necessary.
func (c *NUCatRomCubic[V]) Knots() [4]float64 {
	c.ready()
	return c.knots
}

// Knot returns the i-th knot. It panics if i isn't in [0, 4).
func (c *NUCatRomCubic[V]) Knot(i int) float64 {
	if i < 0 || i >= 4 {
		panic(&IndexError{What: "knot", Index: i, Len: 4})
	}
	c.ready()
	return c.knots[i]
}

// SetKnot sets the i-th knot and switches the segment to KnotsManual. The
// other knots keep their current values. It panics if i isn't in [0, 4).
func (c *NUCatRomCubic[V]) SetKnot(i int, k float64) {
	if i < 0 || i >= 4 {
		panic(&IndexError{What: "knot", Index: i, Len: 4})
	}
	c.ready()
	c.knots[i] = k
	c.mode = KnotsManual
	c.valid = false
}

func (c *NUCatRomCubic[V]) Alpha() float64 { return c.alpha }

// SetAlpha sets the knot spacing exponent. It only has an effect on
// segments with derived knots.
func (c *NUCatRomCubic[V]) SetAlpha(alpha float64) {
	c.alpha = alpha
	c.valid = false
}

func (c *NUCatRomCubic[V]) Mode() KnotCalcMode { return c.mode }

func (c *NUCatRomCubic[V]) SetMode(m KnotCalcMode) {
	c.mode = m
	c.valid = false
}

// Curve returns the polynomial of the segment. It is parameterized by
// u - K1.
func (c *NUCatRomCubic[V]) Curve() Polynomial[V] {
	c.ready()
	return c.curve
}

// Eval evaluates the segment at u ∈ [K1, K2].
func (c *NUCatRomCubic[V]) Eval(u float64) V {
	c.ready()
	return c.curve.Eval(u - c.knots[1])
}

func (c *NUCatRomCubic[V]) Derivative(u float64) V {
	c.ready()
	return c.curve.Derivative(u - c.knots[1])
}

func (c *NUCatRomCubic[V]) SecondDerivative(u float64) V {
	c.ready()
	return c.curve.SecondDerivative(u - c.knots[1])
}

func (c *NUCatRomCubic[V]) ThirdDerivative(u float64) V {
	c.ready()
	return c.curve.ThirdDerivative(u - c.knots[1])
}

func (c *NUCatRomCubic[V]) Start() V { return c.points.M1 }
func (c *NUCatRomCubic[V]) End() V   { return c.points.M2 }

// Weight returns the blending weight of the i-th control point at u. The
// four weights sum to 1 for any u, and the sum of the control points
// multiplied by their weights equals Eval(u).
//
// It panics if i isn't in [0, 4).
func (c *NUCatRomCubic[V]) Weight(i int, u float64) float64 {
	c.ready()
	k := &c.knots
	a01 := (u - k[0]) / (k[1] - k[0])
	a12 := (u - k[1]) / (k[2] - k[1])
	a23 := (u - k[2]) / (k[3] - k[2])
	a02 := (u - k[0]) / (k[2] - k[0])
	a13 := (u - k[1]) / (k[3] - k[1])
	switch i {
	case 0:
		return (1 - a12) * (1 - a02) * (1 - a01)
	case 1:
		return (1-a12)*((1-a02)*a01+a02*(1-a12)) + a12*(1-a13)*(1-a12)
	case 2:
		return (1-a12)*a02*a12 + a12*((1-a13)*a12+a13*(1-a23))
	case 3:
		return a12 * a13 * a23
	default:
		panic(&IndexError{What: "point", Index: i, Len: 4})
	}
}

// Hermite returns the non-uniform Hermite segment tracing the same curve
// over the same knot interval.
func (c *NUCatRomCubic[V]) Hermite() *NUHermiteCubic[V] {
	c.ready()
	m1, m2 := nuCatRomTangents(c.points, c.knots)
	return NewNUHermiteCubic(c.points.M1, m1, c.points.M2, m2, c.knots[1], c.knots[2])
}

// nuCatRomTangents returns the tangents at k1 and k2, with respect to the
// knot parameter. Next to an empty knot interval the tangent falls back to
// the secant of the segment.
func nuCatRomTangents[V Vector[V]](p PointMatrix4[V], k [4]float64) (V, V) {
	chord := secant(p.M1, p.M2, k[2]-k[1])
	m1, m2 := chord, chord
	if !Approximately(k[1]-k[0], 0) {
		m1 = secant(p.M0, p.M1, k[1]-k[0]).
			Sub(secant(p.M0, p.M2, k[2]-k[0])).
			Add(chord)
	}
	if !Approximately(k[3]-k[2], 0) {
		m2 = chord.
			Sub(secant(p.M1, p.M3, k[3]-k[1])).
			Add(secant(p.M2, p.M3, k[3]-k[2]))
	}
	return m1, m2
}

// secant returns (b - a) / dk, or the zero vector if dk vanishes.
func secant[V Vector[V]](a, b V, dk float64) V {
	if Approximately(dk, 0) {
		return *new(V)
	}
	return b.Sub(a).Mul(1 / dk)
}

// nuCatRomCoefficients derives the polynomial of a non-uniform Catmull-Rom
// segment, parameterized by u - k1.
func nuCatRomCoefficients[V Vector[V]](p PointMatrix4[V], k [4]float64) Polynomial[V] {
	m1, m2 := nuCatRomTangents(p, k)
	return nuHermiteCoefficients(p.M1, m1, p.M2, m2, k[2]-k[1])
}
