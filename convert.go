package spline

// Conversions between bases at the same degree. Each returns a new segment
// tracing the same curve over t ∈ [0, 1]; the source is left untouched.

func (b *BezierCubic[V]) Hermite() *HermiteCubic[V] {
	return HermiteCubicFromMatrix(apply4(&bezierToHermite, b.points))
}

func (b *BezierCubic[V]) CatRom() *CatRomCubic[V] {
	return CatRomCubicFromMatrix(apply4(&bezierToCatRom, b.points))
}

func (b *BezierCubic[V]) UBS() *UBSCubic[V] {
	return UBSCubicFromMatrix(apply4(&bezierToUBS, b.points))
}

func (h *HermiteCubic[V]) Bezier() *BezierCubic[V] {
	return BezierCubicFromMatrix(apply4(&hermiteToBezier, h.points))
}

func (h *HermiteCubic[V]) CatRom() *CatRomCubic[V] {
	return CatRomCubicFromMatrix(apply4(&hermiteToCatRom, h.points))
}

func (h *HermiteCubic[V]) UBS() *UBSCubic[V] {
	return UBSCubicFromMatrix(apply4(&hermiteToUBS, h.points))
}

func (c *CatRomCubic[V]) Bezier() *BezierCubic[V] {
	return BezierCubicFromMatrix(apply4(&catRomToBezier, c.points))
}

func (c *CatRomCubic[V]) Hermite() *HermiteCubic[V] {
	return HermiteCubicFromMatrix(apply4(&catRomToHermite, c.points))
}

func (c *CatRomCubic[V]) UBS() *UBSCubic[V] {
	return UBSCubicFromMatrix(apply4(&catRomToUBS, c.points))
}

func (u *UBSCubic[V]) Bezier() *BezierCubic[V] {
	return BezierCubicFromMatrix(apply4(&ubsToBezier, u.points))
}

func (u *UBSCubic[V]) Hermite() *HermiteCubic[V] {
	return HermiteCubicFromMatrix(apply4(&ubsToHermite, u.points))
}

func (u *UBSCubic[V]) CatRom() *CatRomCubic[V] {
	return CatRomCubicFromMatrix(apply4(&ubsToCatRom, u.points))
}

func (q *BezierQuad[V]) UBS() *UBSQuad[V] {
	return UBSQuadFromMatrix(apply3(&bezierQuadToUBS, q.points))
}

func (u *UBSQuad[V]) Bezier() *BezierQuad[V] {
	return BezierQuadFromMatrix(apply3(&ubsQuadToBezier, u.points))
}
