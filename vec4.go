package spline

import (
	"fmt"
	"math"
)

var _ = Lerp[Vec4] // compile-time check that Vec4 satisfies Vector

// Vec4 is a four-dimensional vector. Unlike homogeneous coordinates, W is an
// ordinary component and takes part in all arithmetic.
type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// Vec4Of returns the vector ⟨x, y, z, w⟩.
func Vec4Of(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
		W: v.W + o.W,
	}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
		W: v.W - o.W,
	}
}

func (v Vec4) Mul(f float64) Vec4 {
	return Vec4{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
		W: v.W * f,
	}
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) Min(o Vec4) Vec4 {
	return Vec4{
		X: min(v.X, o.X),
		Y: min(v.Y, o.Y),
		Z: min(v.Z, o.Z),
		W: min(v.W, o.W),
	}
}

func (v Vec4) Max(o Vec4) Vec4 {
	return Vec4{
		X: max(v.X, o.X),
		Y: max(v.Y, o.Y),
		Z: max(v.Z, o.Z),
		W: max(v.W, o.W),
	}
}

func (v Vec4) Dims() int { return 4 }

func (v Vec4) Coord(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(&IndexError{What: "Vec4 coordinate", Index: i, Len: 4})
	}
}

// IsNaN reports whether at least one component is NaN.
func (v Vec4) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) || math.IsNaN(v.W)
}
