package spline

import (
	"fmt"
	"math"
)

// Vector describes the fixed-size vector types that can be used as control
// points of segments, splines and NURBS curves. The package provides [Vec1],
// [Vec2], [Vec3] and [Vec4].
//
// All operations are expected to be pure and to operate component-wise.
type Vector[V any] interface {
	comparable
	Add(o V) V
	Sub(o V) V
	Mul(f float64) V
	Dot(o V) float64
	// Min returns the component-wise minimum of the two vectors.
	Min(o V) V
	// Max returns the component-wise maximum of the two vectors.
	Max(o V) V
	// Dims returns the number of components.
	Dims() int
	// Coord returns the i-th component.
	Coord(i int) float64
}

// Lerp linearly interpolates between two vectors. t isn't clamped, values
// outside [0, 1] extrapolate.
func Lerp[V Vector[V]](a, b V, t float64) V {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

// DistanceSquared returns the squared euclidean distance between two vectors.
func DistanceSquared[V Vector[V]](a, b V) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Length returns the magnitude of the vector.
func Length[V Vector[V]](v V) float64 {
	return math.Sqrt(v.Dot(v))
}

// Approximately reports whether a and b are equal within a small tolerance.
//
// The tolerance is relative for large magnitudes (1e-6 of the larger
// magnitude) with an absolute floor of 1e-12 around zero.
func Approximately(a, b float64) bool {
	return math.Abs(b-a) < max(1e-6*max(math.Abs(a), math.Abs(b)), 1e-12)
}

// Vec1 is a one-dimensional vector. It lets scalar-valued curves, such as
// easing or animation curves, share the implementation of all other curves.
type Vec1 float64

func (v Vec1) String() string {
	return fmt.Sprintf("⟨%g⟩", float64(v))
}

func (v Vec1) Add(o Vec1) Vec1    { return v + o }
func (v Vec1) Sub(o Vec1) Vec1    { return v - o }
func (v Vec1) Mul(f float64) Vec1 { return v * Vec1(f) }
func (v Vec1) Dot(o Vec1) float64 { return float64(v * o) }
func (v Vec1) Min(o Vec1) Vec1    { return min(v, o) }
func (v Vec1) Max(o Vec1) Vec1    { return max(v, o) }
func (v Vec1) Dims() int          { return 1 }
func (v Vec1) IsNaN() bool        { return math.IsNaN(float64(v)) }
func (v Vec1) IsInf() bool        { return math.IsInf(float64(v), 0) }
func (v Vec1) Coord(i int) float64 {
	if i != 0 {
		panic(&IndexError{What: "Vec1 coordinate", Index: i, Len: 1})
	}
	return float64(v)
}
