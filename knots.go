package spline

import (
	"math"
	"strconv"
)

// Common values of alpha for Catmull-Rom knot spacing.
const (
	AlphaUniform     = 0.0
	AlphaCentripetal = 0.5
	AlphaChordal     = 1.0
)

// KnotCalcMode controls how a non-uniform Catmull-Rom segment obtains its
// knots.
type KnotCalcMode int

const (
	// KnotsManual uses the knots set by the caller.
	KnotsManual KnotCalcMode = iota
	// KnotsAuto derives the knots from the spacing of the control points.
	// K0 is 0, which puts the start of the curve at K1.
	KnotsAuto
	// KnotsAutoUnitInterval derives the knots like KnotsAuto and then
	// rescales them so that the curve spans u ∈ [0, 1].
	KnotsAutoUnitInterval
)

func (m KnotCalcMode) String() string {
	switch m {
	case KnotsManual:
		return "manual"
	case KnotsAuto:
		return "auto"
	case KnotsAutoUnitInterval:
		return "auto-unit-interval"
	default:
		return "KnotCalcMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// knotStep returns the knot distance between two consecutive control
// points: the chord length raised to the power of alpha.
func knotStep[V Vector[V]](a, b V, alpha float64) float64 {
	return math.Pow(DistanceSquared(a, b), alpha*0.5)
}

// autoKnots computes the four knots of a segment from the spacing of its
// control points. The first knot is 0. If unit is set, the knots are then
// rescaled so that k1 = 0 and k2 = 1.
func autoKnots[V Vector[V]](p PointMatrix4[V], alpha float64, unit bool) [4]float64 {
	var k [4]float64
	k[1] = k[0] + knotStep(p.M0, p.M1, alpha)
	k[2] = k[1] + knotStep(p.M1, p.M2, alpha)
	k[3] = k[2] + knotStep(p.M2, p.M3, alpha)
	if unit {
		k0, span := k[1], k[2]-k[1]
		for i := range k {
			k[i] = (k[i] - k0) / span
		}
	}
	return k
}
