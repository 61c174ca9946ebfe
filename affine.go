package spline

import "math"

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// representing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// so that (A * B) * v == A * (B * v).
//
// Bézier, B-spline and uniform Catmull-Rom curves are affine invariant:
// transforming the control points transforms the curve. Hermite velocities
// are directions and must only be transformed by the linear part; see
// [Affine.ApplyLinear] and [TransformHermite].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate returns a rotation by th radians, turning the positive X axis into
// the positive Y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout returns a rotation by th radians about center.
func RotateAbout(th float64, center Vec2) Affine {
	return Translate(center).Mul(Rotate(th)).Mul(Translate(center.Negate()))
}

// Reflect returns the reflection about the line through pt with the given
// direction.
func Reflect(pt, direction Vec2) Affine {
	n := direction.Perp().Normalize()
	// Householder reflection, conjugated by the translation to pt.
	x2, xy, y2 := n.X*n.X, n.X*n.Y, n.Y*n.Y
	aff := Affine{1 - 2*x2, -2 * xy, -2 * xy, 1 - 2*y2, 0, 0}
	return Translate(pt).Mul(aff).Mul(Translate(pt.Negate()))
}

// Mul returns the transform applying o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform applying aff first and o second.
func (aff Affine) Then(o Affine) Affine { return o.Mul(aff) }

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. It produces NaN values when the
// determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Apply transforms the point v.
func (aff Affine) Apply(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}

// ApplyLinear transforms the direction v, ignoring the translation.
func (aff Affine) ApplyLinear(v Vec2) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y,
		Y: aff.N1*v.X + aff.N3*v.Y,
	}
}

// TransformHermite returns a copy of h transformed by aff. Positions are
// transformed as points and velocities as directions.
func TransformHermite(h *HermiteCubic[Vec2], aff Affine) *HermiteCubic[Vec2] {
	return NewHermiteCubic(aff.Apply(h.P0()), aff.ApplyLinear(h.V0()), aff.Apply(h.P1()), aff.ApplyLinear(h.V1()))
}
