package spline

// PointMatrix3 holds the three control points of a quadratic segment.
// Two matrices are equal when all of their points are equal.
type PointMatrix3[V Vector[V]] struct {
	M0 V
	M1 V
	M2 V
}

// At returns the i-th point. It panics if i isn't in [0, 3).
func (m PointMatrix3[V]) At(i int) V {
	switch i {
	case 0:
		return m.M0
	case 1:
		return m.M1
	case 2:
		return m.M2
	default:
		panic(&IndexError{What: "point", Index: i, Len: 3})
	}
}

// Set replaces the i-th point. It panics if i isn't in [0, 3).
func (m *PointMatrix3[V]) Set(i int, v V) {
	switch i {
	case 0:
		m.M0 = v
	case 1:
		m.M1 = v
	case 2:
		m.M2 = v
	default:
		panic(&IndexError{What: "point", Index: i, Len: 3})
	}
}

// Lerp interpolates each point of m towards the corresponding point of o.
func (m PointMatrix3[V]) Lerp(o PointMatrix3[V], t float64) PointMatrix3[V] {
	return PointMatrix3[V]{
		M0: Lerp(m.M0, o.M0, t),
		M1: Lerp(m.M1, o.M1, t),
		M2: Lerp(m.M2, o.M2, t),
	}
}

// ApproxEqual reports whether every point of m lies within distance tol of
// the corresponding point of o.
func (m PointMatrix3[V]) ApproxEqual(o PointMatrix3[V], tol float64) bool {
	tol2 := tol * tol
	return DistanceSquared(m.M0, o.M0) <= tol2 &&
		DistanceSquared(m.M1, o.M1) <= tol2 &&
		DistanceSquared(m.M2, o.M2) <= tol2
}

// PointMatrix4 holds the four control points of a cubic segment.
// Two matrices are equal when all of their points are equal.
type PointMatrix4[V Vector[V]] struct {
	M0 V
	M1 V
	M2 V
	M3 V
}

// At returns the i-th point. It panics if i isn't in [0, 4).
func (m PointMatrix4[V]) At(i int) V {
	switch i {
	case 0:
		return m.M0
	case 1:
		return m.M1
	case 2:
		return m.M2
	case 3:
		return m.M3
	default:
		panic(&IndexError{What: "point", Index: i, Len: 4})
	}
}

// Set replaces the i-th point. It panics if i isn't in [0, 4).
func (m *PointMatrix4[V]) Set(i int, v V) {
	switch i {
	case 0:
		m.M0 = v
	case 1:
		m.M1 = v
	case 2:
		m.M2 = v
	case 3:
		m.M3 = v
	default:
		panic(&IndexError{What: "point", Index: i, Len: 4})
	}
}

// Lerp interpolates each point of m towards the corresponding point of o.
func (m PointMatrix4[V]) Lerp(o PointMatrix4[V], t float64) PointMatrix4[V] {
	return PointMatrix4[V]{
		M0: Lerp(m.M0, o.M0, t),
		M1: Lerp(m.M1, o.M1, t),
		M2: Lerp(m.M2, o.M2, t),
		M3: Lerp(m.M3, o.M3, t),
	}
}

// ApproxEqual reports whether every point of m lies within distance tol of
// the corresponding point of o.
func (m PointMatrix4[V]) ApproxEqual(o PointMatrix4[V], tol float64) bool {
	tol2 := tol * tol
	return DistanceSquared(m.M0, o.M0) <= tol2 &&
		DistanceSquared(m.M1, o.M1) <= tol2 &&
		DistanceSquared(m.M2, o.M2) <= tol2 &&
		DistanceSquared(m.M3, o.M3) <= tol2
}

// charMatrix4 is a 4×4 linear map over control points. Row i holds the
// factors of M0..M3 that make up the i-th output.
type charMatrix4 [4][4]float64

// charMatrix3 is the quadratic counterpart of charMatrix4.
type charMatrix3 [3][3]float64

func combine4[V Vector[V]](row *[4]float64, m PointMatrix4[V]) V {
	return m.M0.Mul(row[0]).
		Add(m.M1.Mul(row[1])).
		Add(m.M2.Mul(row[2])).
		Add(m.M3.Mul(row[3]))
}

func combine3[V Vector[V]](row *[3]float64, m PointMatrix3[V]) V {
	return m.M0.Mul(row[0]).
		Add(m.M1.Mul(row[1])).
		Add(m.M2.Mul(row[2]))
}

// apply4 maps control points from one basis to another.
func apply4[V Vector[V]](c *charMatrix4, m PointMatrix4[V]) PointMatrix4[V] {
	return PointMatrix4[V]{
		M0: combine4(&c[0], m),
		M1: combine4(&c[1], m),
		M2: combine4(&c[2], m),
		M3: combine4(&c[3], m),
	}
}

func apply3[V Vector[V]](c *charMatrix3, m PointMatrix3[V]) PointMatrix3[V] {
	return PointMatrix3[V]{
		M0: combine3(&c[0], m),
		M1: combine3(&c[1], m),
		M2: combine3(&c[2], m),
	}
}

// coefficients4 derives the monomial coefficients of a cubic from its
// control points, given the characteristic matrix of the basis.
func coefficients4[V Vector[V]](c *charMatrix4, m PointMatrix4[V]) Polynomial[V] {
	return NewPolynomial(
		combine4(&c[0], m),
		combine4(&c[1], m),
		combine4(&c[2], m),
		combine4(&c[3], m),
	)
}

func coefficients3[V Vector[V]](c *charMatrix3, m PointMatrix3[V]) Polynomial[V] {
	return NewPolynomial(
		combine3(&c[0], m),
		combine3(&c[1], m),
		combine3(&c[2], m),
	)
}

// Characteristic matrices. Row i yields the coefficient of tⁱ.
var (
	bezierCubicChar = charMatrix4{
		{1, 0, 0, 0},
		{-3, 3, 0, 0},
		{3, -6, 3, 0},
		{-1, 3, -3, 1},
	}
	// P0, V0, P1, V1
	hermiteCubicChar = charMatrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{-3, -2, 3, -1},
		{2, 1, -2, 1},
	}
	catRomCubicChar = charMatrix4{
		{0, 1, 0, 0},
		{-0.5, 0, 0.5, 0},
		{1, -2.5, 2, -0.5},
		{-0.5, 1.5, -1.5, 0.5},
	}
	ubsCubicChar = charMatrix4{
		{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
		{-0.5, 0, 0.5, 0},
		{0.5, -1, 0.5, 0},
		{-1.0 / 6, 0.5, -0.5, 1.0 / 6},
	}

	bezierQuadChar = charMatrix3{
		{1, 0, 0},
		{-2, 2, 0},
		{1, -2, 1},
	}
	ubsQuadChar = charMatrix3{
		{0.5, 0.5, 0},
		{-1, 1, 0},
		{0.5, -1, 0.5},
	}
)

// Basis conversions. Each is the inverse of the target's characteristic
// matrix multiplied by the source's, so both describe the same polynomial.
var (
	bezierToHermite = charMatrix4{
		{1, 0, 0, 0},
		{-3, 3, 0, 0},
		{0, 0, 0, 1},
		{0, 0, -3, 3},
	}
	bezierToCatRom = charMatrix4{
		{6, -6, 0, 1},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{1, 0, -6, 6},
	}
	bezierToUBS = charMatrix4{
		{6, -7, 2, 0},
		{0, 2, -1, 0},
		{0, -1, 2, 0},
		{0, 2, -7, 6},
	}

	hermiteToBezier = charMatrix4{
		{1, 0, 0, 0},
		{1, 1.0 / 3, 0, 0},
		{0, 0, 1, -1.0 / 3},
		{0, 0, 1, 0},
	}
	hermiteToCatRom = charMatrix4{
		{0, -2, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 2},
	}
	hermiteToUBS = charMatrix4{
		{-1, -7.0 / 3, 2, -2.0 / 3},
		{2, 2.0 / 3, -1, 1.0 / 3},
		{-1, -1.0 / 3, 2, -2.0 / 3},
		{2, 2.0 / 3, -1, 7.0 / 3},
	}

	catRomToBezier = charMatrix4{
		{0, 1, 0, 0},
		{-1.0 / 6, 1, 1.0 / 6, 0},
		{0, 1.0 / 6, 1, -1.0 / 6},
		{0, 0, 1, 0},
	}
	catRomToHermite = charMatrix4{
		{0, 1, 0, 0},
		{-0.5, 0, 0.5, 0},
		{0, 0, 1, 0},
		{0, -0.5, 0, 0.5},
	}
	catRomToUBS = charMatrix4{
		{7.0 / 6, -2.0 / 3, 5.0 / 6, -1.0 / 3},
		{-1.0 / 3, 11.0 / 6, -2.0 / 3, 1.0 / 6},
		{1.0 / 6, -2.0 / 3, 11.0 / 6, -1.0 / 3},
		{-1.0 / 3, 5.0 / 6, -2.0 / 3, 7.0 / 6},
	}

	ubsToBezier = charMatrix4{
		{1.0 / 6, 2.0 / 3, 1.0 / 6, 0},
		{0, 2.0 / 3, 1.0 / 3, 0},
		{0, 1.0 / 3, 2.0 / 3, 0},
		{0, 1.0 / 6, 2.0 / 3, 1.0 / 6},
	}
	ubsToHermite = charMatrix4{
		{1.0 / 6, 2.0 / 3, 1.0 / 6, 0},
		{-0.5, 0, 0.5, 0},
		{0, 1.0 / 6, 2.0 / 3, 1.0 / 6},
		{0, -0.5, 0, 0.5},
	}
	ubsToCatRom = charMatrix4{
		{1, 1.0 / 6, -1.0 / 3, 1.0 / 6},
		{1.0 / 6, 2.0 / 3, 1.0 / 6, 0},
		{0, 1.0 / 6, 2.0 / 3, 1.0 / 6},
		{1.0 / 6, -1.0 / 3, 1.0 / 6, 1},
	}

	bezierQuadToUBS = charMatrix3{
		{2, -1, 0},
		{0, 1, 0},
		{0, -1, 2},
	}
	ubsQuadToBezier = charMatrix3{
		{0.5, 0.5, 0},
		{0, 1, 0},
		{0, 0.5, 0.5},
	}
)

// Map returns the matrix with f applied to every point.
func (m PointMatrix3[V]) Map(f func(V) V) PointMatrix3[V] {
	return PointMatrix3[V]{f(m.M0), f(m.M1), f(m.M2)}
}

// Map returns the matrix with f applied to every point.
func (m PointMatrix4[V]) Map(f func(V) V) PointMatrix4[V] {
	return PointMatrix4[V]{f(m.M0), f(m.M1), f(m.M2), f(m.M3)}
}
