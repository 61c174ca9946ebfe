package spline

// NUHermiteCubic is a Hermite segment over the knot interval [K0, K1]. The
// velocities V0 and V1 are derivatives with respect to the knot parameter u.
type NUHermiteCubic[V Vector[V]] struct {
	points PointMatrix4[V]
	k0, k1 float64
	curve  Polynomial[V]
	valid  bool
}

func NewNUHermiteCubic[V Vector[V]](p0, v0, p1, v1 V, k0, k1 float64) *NUHermiteCubic[V] {
	return &NUHermiteCubic[V]{
		points: PointMatrix4[V]{M0: p0, M1: v0, M2: p1, M3: v1},
		k0:     k0,
		k1:     k1,
	}
}

func (h *NUHermiteCubic[V]) ready() {
	if h.valid {
		return
	}
	p := h.points
	h.curve = nuHermiteCoefficients(p.M0, p.M1, p.M2, p.M3, h.k1-h.k0)
	h.valid = true
}

func (h *NUHermiteCubic[V]) P0() V { return h.points.M0 }
func (h *NUHermiteCubic[V]) V0() V { return h.points.M1 }
func (h *NUHermiteCubic[V]) P1() V { return h.points.M2 }
func (h *NUHermiteCubic[V]) V1() V { return h.points.M3 }

func (h *NUHermiteCubic[V]) SetP0(v V) { h.setPoint(0, v) }
func (h *NUHermiteCubic[V]) SetV0(v V) { h.setPoint(1, v) }
func (h *NUHermiteCubic[V]) SetP1(v V) { h.setPoint(2, v) }
func (h *NUHermiteCubic[V]) SetV1(v V) { h.setPoint(3, v) }

func (h *NUHermiteCubic[V]) setPoint(i int, v V) {
	h.points.Set(i, v)
	h.valid = false
}

func (h *NUHermiteCubic[V]) K0() float64 { return h.k0 }
func (h *NUHermiteCubic[V]) K1() float64 { return h.k1 }

func (h *NUHermiteCubic[V]) SetK0(k float64) {
	h.k0 = k
	h.valid = false
}

func (h *NUHermiteCubic[V]) SetK1(k float64) {
	h.k1 = k
	h.valid = false
}

// Curve returns the polynomial of the segment, parameterized by u - K0.
func (h *NUHermiteCubic[V]) Curve() Polynomial[V] {
	h.ready()
	return h.curve
}

// Eval evaluates the segment at u ∈ [K0, K1].
func (h *NUHermiteCubic[V]) Eval(u float64) V {
	h.ready()
	return h.curve.Eval(u - h.k0)
}

func (h *NUHermiteCubic[V]) Derivative(u float64) V {
	h.ready()
	return h.curve.Derivative(u - h.k0)
}

func (h *NUHermiteCubic[V]) SecondDerivative(u float64) V {
	h.ready()
	return h.curve.SecondDerivative(u - h.k0)
}

func (h *NUHermiteCubic[V]) ThirdDerivative(u float64) V {
	h.ready()
	return h.curve.ThirdDerivative(u - h.k0)
}

func (h *NUHermiteCubic[V]) Start() V { return h.points.M0 }
func (h *NUHermiteCubic[V]) End() V   { return h.points.M2 }

// Uniform returns the uniform Hermite segment tracing the same curve with
// t ∈ [0, 1]. Velocities are scaled by the length of the knot interval.
func (h *NUHermiteCubic[V]) Uniform() *HermiteCubic[V] {
	d := h.k1 - h.k0
	p := h.points
	return NewHermiteCubic(p.M0, p.M1.Mul(d), p.M2, p.M3.Mul(d))
}

// Bezier returns the uniform Bézier segment tracing the same curve with
// t ∈ [0, 1].
func (h *NUHermiteCubic[V]) Bezier() *BezierCubic[V] {
	d := (h.k1 - h.k0) / 3
	p := h.points
	return NewBezierCubic(p.M0, p.M0.Add(p.M1.Mul(d)), p.M2.Sub(p.M3.Mul(d)), p.M2)
}

// nuHermiteCoefficients derives the polynomial of a Hermite segment whose
// parameter runs over [0, d]. A segment with d = 0 is the constant p0.
func nuHermiteCoefficients[V Vector[V]](p0, v0, p1, v1 V, d float64) Polynomial[V] {
	if Approximately(d, 0) {
		var zero V
		return NewPolynomial(p0, zero, zero, zero)
	}
	delta := p1.Sub(p0).Mul(1 / d)
	c2 := delta.Mul(3).Sub(v0.Mul(2)).Sub(v1).Mul(1 / d)
	c3 := v0.Add(v1).Sub(delta.Mul(2)).Mul(1 / (d * d))
	return NewPolynomial(p0, v0, c2, c3)
}
