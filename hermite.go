package spline

// HermiteCubic is a cubic Hermite segment: it passes through P0 with
// velocity V0 at t = 0 and through P1 with velocity V1 at t = 1.
type HermiteCubic[V Vector[V]] struct {
	cubic[V, hermiteBasis]
}

func NewHermiteCubic[V Vector[V]](p0, v0, p1, v1 V) *HermiteCubic[V] {
	return HermiteCubicFromMatrix(PointMatrix4[V]{M0: p0, M1: v0, M2: p1, M3: v1})
}

// HermiteCubicFromMatrix returns the segment with the points and
// velocities P0, V0, P1, V1 stored in M0..M3.
func HermiteCubicFromMatrix[V Vector[V]](m PointMatrix4[V]) *HermiteCubic[V] {
	h := &HermiteCubic[V]{}
	h.points = m
	return h
}

func (h *HermiteCubic[V]) P0() V { return h.points.M0 }
func (h *HermiteCubic[V]) V0() V { return h.points.M1 }
func (h *HermiteCubic[V]) P1() V { return h.points.M2 }
func (h *HermiteCubic[V]) V1() V { return h.points.M3 }

func (h *HermiteCubic[V]) SetP0(v V) { h.set(0, v) }
func (h *HermiteCubic[V]) SetV0(v V) { h.set(1, v) }
func (h *HermiteCubic[V]) SetP1(v V) { h.set(2, v) }
func (h *HermiteCubic[V]) SetV1(v V) { h.set(3, v) }

func (h *HermiteCubic[V]) Start() V { return h.points.M0 }
func (h *HermiteCubic[V]) End() V   { return h.points.M2 }

func (h *HermiteCubic[V]) Lerp(o *HermiteCubic[V], t float64) *HermiteCubic[V] {
	return HermiteCubicFromMatrix(h.points.Lerp(o.points, t))
}
