package spline

import (
	"math"
	"testing"
)

func TestVectorCoords(t *testing.T) {
	check := func(name string, dims int, coord func(int) float64, want []float64) {
		t.Helper()
		if dims != len(want) {
			t.Errorf("%s: got %d dimensions, want %d", name, dims, len(want))
		}
		for i, w := range want {
			if got := coord(i); got != w {
				t.Errorf("%s: coordinate %d is %g, want %g", name, i, got, w)
			}
		}
		recoverIndexError(t, func() { coord(len(want)) })
	}
	v1 := Vec1(7)
	v2 := Vec(1, 2)
	v3 := Vec3Of(1, 2, 3)
	v4 := Vec4Of(1, 2, 3, 4)
	check("Vec1", v1.Dims(), v1.Coord, []float64{7})
	check("Vec2", v2.Dims(), v2.Coord, []float64{1, 2})
	check("Vec3", v3.Dims(), v3.Coord, []float64{1, 2, 3})
	check("Vec4", v4.Dims(), v4.Coord, []float64{1, 2, 3, 4})
}

func TestVectorArithmetic(t *testing.T) {
	a, b := Vec4Of(1, -2, 3, 0.5), Vec4Of(2, 2, -1, 1)
	diff(t, Vec4Of(3, 0, 2, 1.5), a.Add(b))
	diff(t, Vec4Of(-1, -4, 4, -0.5), a.Sub(b))
	diff(t, Vec4Of(2, -4, 6, 1), a.Mul(2))
	diff(t, 2-4-3+0.5, a.Dot(b))
	diff(t, Vec4Of(1, -2, -1, 0.5), a.Min(b))
	diff(t, Vec4Of(2, 2, 3, 1), a.Max(b))

	diff(t, Vec(2, 3), Lerp(Vec(0, 1), Vec(4, 5), 0.5))
	diff(t, Vec1(-2), Lerp[Vec1](0, 2, -1))
	diff(t, 25.0, DistanceSquared(Vec(0, 0), Vec(3, 4)))
	diff(t, 5.0, Length(Vec(3, 4)))
}

func TestVec3(t *testing.T) {
	x, y := Vec3Of(1, 0, 0), Vec3Of(0, 1, 0)
	diff(t, Vec3Of(0, 0, 1), x.Cross(y))
	diff(t, 0.0, x.Dot(y))
	diff(t, 5.0, Vec3Of(0, 3, 4).Hypot())
	diff(t, Vec3Of(0, 0.6, 0.8), Vec3Of(0, 3, 4).Normalize(), approx(1e-15))
	diff(t, 3.0, x.DistanceSquared(Vec3Of(0, 1, 1)))
	if !Vec3Of(math.NaN(), 0, 0).IsNaN() {
		t.Error("IsNaN is false for a NaN component")
	}
}

func TestApproximately(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{0, 1e-13, true},
		{0, 1e-11, false},
		{1e6, 1e6 + 0.5, true},
		{1e6, 1e6 + 2, false},
		{1, 1.0000001, true},
		{1, 1.001, false},
	}
	for _, tt := range tests {
		if got := Approximately(tt.a, tt.b); got != tt.want {
			t.Errorf("Approximately(%g, %g) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}
