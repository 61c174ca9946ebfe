// Package spline provides polynomial spline segments and multi-segment
// splines over vectors of one to four dimensions.
//
// # Segments
//
// A segment is a single cubic or quadratic curve described by a handful of
// control points in one of several bases:
//   - [BezierCubic] and [BezierQuad]
//   - [HermiteCubic], described by two points and their velocities
//   - [CatRomCubic], a uniform Catmull-Rom segment
//   - [UBSCubic] and [UBSQuad], uniform B-spline segments
//
// All segments evaluate at t ∈ [0, 1]. Internally, each segment derives a
// [Polynomial] from its control points using the characteristic matrix of its
// basis. The polynomial is computed on first use and recomputed only after a
// control point changed. Segments of the same degree can be converted into
// one another without changing the curve they describe, for example with
// [BezierCubic.CatRom] or [UBSCubic.Bezier].
//
// The non-uniform segments [NUCatRomCubic] and [NUHermiteCubic] are
// parameterized by knot values instead of t ∈ [0, 1]. The knots of a
// non-uniform Catmull-Rom segment can be derived from the spacing of its
// control points; alpha selects uniform (0), centripetal (0.5) or chordal (1)
// spacing.
//
// # Splines
//
// [CatRomSpline] stitches non-uniform Catmull-Rom curves together into a
// spline through an arbitrary number of control points, evaluated at a global
// parameter u. [NURBS] evaluates non-uniform rational B-splines of degree 1
// to [MaxNURBSDegree].
//
// # Vectors
//
// All types are generic over [Vector], which is implemented by [Vec1],
// [Vec2], [Vec3] and [Vec4]. Aliases such as [BezierCubic2D] name the common
// instantiations. [Vec2] and [Vec3] convert to and from the vector types of
// github.com/ungerik/go3d and seehuhn.de/go/geom. [Affine] transforms 2D
// control points.
//
// # Concurrency
//
// Segments and [CatRomSpline] cache derived state inside methods that look
// like reads. They must not be used from multiple goroutines at once unless
// all goroutines only evaluate and the cache was readied beforehand.
// [Polynomial] and [NURBS] are immutable and safe for concurrent use.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [On the Parameterization of Catmull-Rom Curves] by Yuksel, Schaefer and Keyser
//   - [The NURBS Book] by Piegl and Tiller
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [On the Parameterization of Catmull-Rom Curves]: https://www.cemyuksel.com/research/catmullrom_param/
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package spline
