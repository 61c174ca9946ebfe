package spline

// UBSCubic is a uniform cubic B-spline segment. It generally passes through
// none of its control points; consecutive segments sharing three points
// join with C2 continuity.
type UBSCubic[V Vector[V]] struct {
	cubic[V, ubsBasis]
}

func NewUBSCubic[V Vector[V]](p0, p1, p2, p3 V) *UBSCubic[V] {
	return UBSCubicFromMatrix(PointMatrix4[V]{M0: p0, M1: p1, M2: p2, M3: p3})
}

func UBSCubicFromMatrix[V Vector[V]](m PointMatrix4[V]) *UBSCubic[V] {
	u := &UBSCubic[V]{}
	u.points = m
	return u
}

func (u *UBSCubic[V]) P0() V { return u.points.M0 }
func (u *UBSCubic[V]) P1() V { return u.points.M1 }
func (u *UBSCubic[V]) P2() V { return u.points.M2 }
func (u *UBSCubic[V]) P3() V { return u.points.M3 }

func (u *UBSCubic[V]) SetP0(v V) { u.set(0, v) }
func (u *UBSCubic[V]) SetP1(v V) { u.set(1, v) }
func (u *UBSCubic[V]) SetP2(v V) { u.set(2, v) }
func (u *UBSCubic[V]) SetP3(v V) { u.set(3, v) }

// Start returns the point at t = 0, (P0 + 4P1 + P2) / 6.
func (u *UBSCubic[V]) Start() V { return u.Eval(0) }

// End returns the point at t = 1, (P1 + 4P2 + P3) / 6.
func (u *UBSCubic[V]) End() V { return u.Eval(1) }

func (u *UBSCubic[V]) Lerp(o *UBSCubic[V], t float64) *UBSCubic[V] {
	return UBSCubicFromMatrix(u.points.Lerp(o.points, t))
}

// UBSQuad is a uniform quadratic B-spline segment. It runs between the
// midpoints of its two control polygon edges.
type UBSQuad[V Vector[V]] struct {
	quadratic[V, ubsQuadBasis]
}

func NewUBSQuad[V Vector[V]](p0, p1, p2 V) *UBSQuad[V] {
	return UBSQuadFromMatrix(PointMatrix3[V]{M0: p0, M1: p1, M2: p2})
}

func UBSQuadFromMatrix[V Vector[V]](m PointMatrix3[V]) *UBSQuad[V] {
	u := &UBSQuad[V]{}
	u.points = m
	return u
}

func (u *UBSQuad[V]) P0() V { return u.points.M0 }
func (u *UBSQuad[V]) P1() V { return u.points.M1 }
func (u *UBSQuad[V]) P2() V { return u.points.M2 }

func (u *UBSQuad[V]) SetP0(v V) { u.set(0, v) }
func (u *UBSQuad[V]) SetP1(v V) { u.set(1, v) }
func (u *UBSQuad[V]) SetP2(v V) { u.set(2, v) }

func (u *UBSQuad[V]) Start() V { return Lerp(u.points.M0, u.points.M1, 0.5) }
func (u *UBSQuad[V]) End() V   { return Lerp(u.points.M1, u.points.M2, 0.5) }

func (u *UBSQuad[V]) Lerp(o *UBSQuad[V], t float64) *UBSQuad[V] {
	return UBSQuadFromMatrix(u.points.Lerp(o.points, t))
}
