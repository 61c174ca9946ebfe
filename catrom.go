package spline

// CatRomCubic is a uniform Catmull-Rom segment. The curve runs from P1 at
// t = 0 to P2 at t = 1; P0 and P3 only shape the tangents.
type CatRomCubic[V Vector[V]] struct {
	cubic[V, catRomBasis]
}

func NewCatRomCubic[V Vector[V]](p0, p1, p2, p3 V) *CatRomCubic[V] {
	return CatRomCubicFromMatrix(PointMatrix4[V]{M0: p0, M1: p1, M2: p2, M3: p3})
}

func CatRomCubicFromMatrix[V Vector[V]](m PointMatrix4[V]) *CatRomCubic[V] {
	c := &CatRomCubic[V]{}
	c.points = m
	return c
}

func (c *CatRomCubic[V]) P0() V { return c.points.M0 }
func (c *CatRomCubic[V]) P1() V { return c.points.M1 }
func (c *CatRomCubic[V]) P2() V { return c.points.M2 }
func (c *CatRomCubic[V]) P3() V { return c.points.M3 }

func (c *CatRomCubic[V]) SetP0(v V) { c.set(0, v) }
func (c *CatRomCubic[V]) SetP1(v V) { c.set(1, v) }
func (c *CatRomCubic[V]) SetP2(v V) { c.set(2, v) }
func (c *CatRomCubic[V]) SetP3(v V) { c.set(3, v) }

func (c *CatRomCubic[V]) Start() V { return c.points.M1 }
func (c *CatRomCubic[V]) End() V   { return c.points.M2 }

func (c *CatRomCubic[V]) Lerp(o *CatRomCubic[V], t float64) *CatRomCubic[V] {
	return CatRomCubicFromMatrix(c.points.Lerp(o.points, t))
}
