package spline

import (
	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
	"github.com/ungerik/go3d/float64/vec4"
	"seehuhn.de/go/geom/vec"
)

// Go3D converts v to the go3d representation.
func (v Vec2) Go3D() vec2.T { return vec2.T{v.X, v.Y} }

// Go3D converts v to the go3d representation.
func (v Vec3) Go3D() vec3.T { return v.t() }

// Go3D converts v to the go3d representation. go3d treats the fourth
// component as a homogeneous coordinate; no division by W takes place here.
func (v Vec4) Go3D() vec4.T { return vec4.T{v.X, v.Y, v.Z, v.W} }

func Vec2FromGo3D(t vec2.T) Vec2 { return Vec2{X: t[0], Y: t[1]} }

func Vec3FromGo3D(t vec3.T) Vec3 { return fromT3(t) }

func Vec4FromGo3D(t vec4.T) Vec4 { return Vec4{X: t[0], Y: t[1], Z: t[2], W: t[3]} }

// Geom converts v to a seehuhn.de/go/geom vector.
func (v Vec2) Geom() vec.Vec2 { return vec.Vec2{X: v.X, Y: v.Y} }

// Vec2FromGeom converts a seehuhn.de/go/geom vector.
func Vec2FromGeom(g vec.Vec2) Vec2 { return Vec2{X: g.X, Y: g.Y} }

// Polyline2D samples c at n+1 evenly spaced parameters in [t0, t1] and
// returns the resulting polyline, suitable for consumers of
// seehuhn.de/go/geom such as path builders and rasterizers.
func Polyline2D(c interface{ Eval(t float64) Vec2 }, t0, t1 float64, n int) []vec.Vec2 {
	n = max(n, 1)
	out := make([]vec.Vec2, 0, n+1)
	for i := range n + 1 {
		t := t0 + (t1-t0)*float64(i)/float64(n)
		out = append(out, c.Eval(t).Geom())
	}
	return out
}
