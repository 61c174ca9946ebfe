package spline

// BezierCubic is a cubic Bézier segment. It passes through P0 at t = 0 and
// P3 at t = 1; P1 and P2 shape the tangents.
//
// The zero value is a degenerate segment at the origin. Segments cache their
// polynomial and must not be mutated and evaluated concurrently.
type BezierCubic[V Vector[V]] struct {
	cubic[V, bezierBasis]
}

func NewBezierCubic[V Vector[V]](p0, p1, p2, p3 V) *BezierCubic[V] {
	return BezierCubicFromMatrix(PointMatrix4[V]{M0: p0, M1: p1, M2: p2, M3: p3})
}

func BezierCubicFromMatrix[V Vector[V]](m PointMatrix4[V]) *BezierCubic[V] {
	b := &BezierCubic[V]{}
	b.points = m
	return b
}

func (b *BezierCubic[V]) P0() V { return b.points.M0 }
func (b *BezierCubic[V]) P1() V { return b.points.M1 }
func (b *BezierCubic[V]) P2() V { return b.points.M2 }
func (b *BezierCubic[V]) P3() V { return b.points.M3 }

func (b *BezierCubic[V]) SetP0(v V) { b.set(0, v) }
func (b *BezierCubic[V]) SetP1(v V) { b.set(1, v) }
func (b *BezierCubic[V]) SetP2(v V) { b.set(2, v) }
func (b *BezierCubic[V]) SetP3(v V) { b.set(3, v) }

func (b *BezierCubic[V]) Start() V { return b.points.M0 }
func (b *BezierCubic[V]) End() V   { return b.points.M3 }

// Lerp interpolates the control points of b towards those of o.
func (b *BezierCubic[V]) Lerp(o *BezierCubic[V], t float64) *BezierCubic[V] {
	return BezierCubicFromMatrix(b.points.Lerp(o.points, t))
}

// Split splits the segment at t, using de Casteljau. The first segment
// covers [0, t] of the original and the second covers [t, 1].
func (b *BezierCubic[V]) Split(t float64) (*BezierCubic[V], *BezierCubic[V]) {
	p := b.points
	a := Lerp(p.M0, p.M1, t)
	m := Lerp(p.M1, p.M2, t)
	c := Lerp(p.M2, p.M3, t)
	d := Lerp(a, m, t)
	e := Lerp(m, c, t)
	mid := Lerp(d, e, t)
	return NewBezierCubic(p.M0, a, d, mid), NewBezierCubic(mid, e, c, p.M3)
}

// Subdivide subdivides the segment into halves, using de Casteljau.
func (b *BezierCubic[V]) Subdivide() (*BezierCubic[V], *BezierCubic[V]) {
	return b.Split(0.5)
}

// Subsegment returns the part of the segment between t0 and t1,
// reparameterized to [0, 1].
func (b *BezierCubic[V]) Subsegment(t0, t1 float64) *BezierCubic[V] {
	p0 := b.Eval(t0)
	p3 := b.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(b.Derivative(t0).Mul(scale))
	p2 := p3.Sub(b.Derivative(t1).Mul(scale))
	return NewBezierCubic(p0, p1, p2, p3)
}

// BezierQuad is a quadratic Bézier segment through P0 and P2.
type BezierQuad[V Vector[V]] struct {
	quadratic[V, bezierQuadBasis]
}

func NewBezierQuad[V Vector[V]](p0, p1, p2 V) *BezierQuad[V] {
	return BezierQuadFromMatrix(PointMatrix3[V]{M0: p0, M1: p1, M2: p2})
}

func BezierQuadFromMatrix[V Vector[V]](m PointMatrix3[V]) *BezierQuad[V] {
	q := &BezierQuad[V]{}
	q.points = m
	return q
}

func (q *BezierQuad[V]) P0() V { return q.points.M0 }
func (q *BezierQuad[V]) P1() V { return q.points.M1 }
func (q *BezierQuad[V]) P2() V { return q.points.M2 }

func (q *BezierQuad[V]) SetP0(v V) { q.set(0, v) }
func (q *BezierQuad[V]) SetP1(v V) { q.set(1, v) }
func (q *BezierQuad[V]) SetP2(v V) { q.set(2, v) }

func (q *BezierQuad[V]) Start() V { return q.points.M0 }
func (q *BezierQuad[V]) End() V   { return q.points.M2 }

func (q *BezierQuad[V]) Lerp(o *BezierQuad[V], t float64) *BezierQuad[V] {
	return BezierQuadFromMatrix(q.points.Lerp(o.points, t))
}

// Split splits the segment at t, using de Casteljau.
func (q *BezierQuad[V]) Split(t float64) (*BezierQuad[V], *BezierQuad[V]) {
	p := q.points
	a := Lerp(p.M0, p.M1, t)
	c := Lerp(p.M1, p.M2, t)
	mid := Lerp(a, c, t)
	return NewBezierQuad(p.M0, a, mid), NewBezierQuad(mid, c, p.M2)
}

// Subdivide subdivides the segment into halves.
func (q *BezierQuad[V]) Subdivide() (*BezierQuad[V], *BezierQuad[V]) {
	return q.Split(0.5)
}

// Raise returns the cubic Bézier segment describing the same curve.
func (q *BezierQuad[V]) Raise() *BezierCubic[V] {
	p := q.points
	return NewBezierCubic(
		p.M0,
		p.M0.Add(p.M1.Sub(p.M0).Mul(2.0/3.0)),
		p.M2.Add(p.M1.Sub(p.M2).Mul(2.0/3.0)),
		p.M2,
	)
}
