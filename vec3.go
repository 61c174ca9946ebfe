package spline

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

var _ = Lerp[Vec3] // compile-time check that Vec3 satisfies Vector

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3Of returns the vector ⟨x, y, z⟩.
func Vec3Of(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec3) t() vec3.T {
	return vec3.T{v.X, v.Y, v.Z}
}

func fromT3(t vec3.T) Vec3 {
	return Vec3{X: t[0], Y: t[1], Z: t[2]}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	a, b := v.t(), o.t()
	return vec3.Dot(&a, &b)
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	a, b := v.t(), o.t()
	return fromT3(vec3.Cross(&a, &b))
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	a := v.t()
	return a.Length()
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
func (v Vec3) Normalize() Vec3 {
	a := v.t()
	return fromT3(a.Normalized())
}

// DistanceSquared returns the squared euclidean distance between v and o.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	a, b := v.t(), o.t()
	return vec3.SquareDistance(&a, &b)
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{
		X: min(v.X, o.X),
		Y: min(v.Y, o.Y),
		Z: min(v.Z, o.Z),
	}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{
		X: max(v.X, o.X),
		Y: max(v.Y, o.Y),
		Z: max(v.Z, o.Z),
	}
}

func (v Vec3) Dims() int { return 3 }

func (v Vec3) Coord(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(&IndexError{What: "Vec3 coordinate", Index: i, Len: 3})
	}
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
