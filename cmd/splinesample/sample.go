package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/spline"
	"honnef.co/go/spline/internal/config"
)

// sampler evaluates a spline of any dimension over [u0, u1].
type sampler struct {
	dims     int
	segments int
	u0, u1   float64
	// eval writes the coordinates of the point at u to dst.
	eval func(u float64, dst []float64)
}

func build(cfg config.SplineConfig) (*sampler, error) {
	dims, err := cfg.Dimensions()
	if err != nil {
		return nil, err
	}
	switch dims {
	case 2:
		points := make([]spline.Vec2, len(cfg.Points))
		for i, p := range cfg.Points {
			points[i] = spline.Vec(p[0], p[1])
		}
		return buildFor(cfg, points)
	case 3:
		points := make([]spline.Vec3, len(cfg.Points))
		for i, p := range cfg.Points {
			points[i] = spline.Vec3Of(p[0], p[1], p[2])
		}
		return buildFor(cfg, points)
	default:
		return nil, fmt.Errorf("unsupported dimension %d", dims)
	}
}

func buildFor[V spline.Vector[V]](cfg config.SplineConfig, points []V) (*sampler, error) {
	var (
		eval     func(float64) V
		u0, u1   float64
		segments int
	)
	switch cfg.Kind {
	case "catrom":
		mode, err := parseEndpointMode(cfg.Endpoints)
		if err != nil {
			return nil, err
		}
		var s *spline.CatRomSpline[V]
		if cfg.Knots != nil {
			s, err = spline.NewCatRomSplineWithKnots(points, cfg.Knots, mode)
		} else {
			s, err = spline.NewCatRomSpline(points, mode, cfg.Alpha)
		}
		if err != nil {
			return nil, err
		}
		s.Ready()
		eval, u0, u1, segments = s.Eval, s.KnotStart(), s.KnotEnd(), s.CurveCount()

	case "nurbs":
		knots := cfg.Knots
		if knots == nil && cfg.Degree >= 1 && cfg.Degree <= spline.MaxNURBSDegree {
			knots = spline.UniformKnots(cfg.Degree, len(points), !cfg.Closed)
		}
		var n *spline.NURBS[V]
		var err error
		if cfg.Weights != nil {
			n, err = spline.NewRationalNURBS(points, cfg.Weights, knots, cfg.Degree)
		} else {
			n, err = spline.NewNURBS(points, knots, cfg.Degree)
		}
		if err != nil {
			return nil, err
		}
		eval, u0, u1, segments = n.Eval, 0, 1, n.SegmentCount()

	case "bezier":
		pieces, err := bezierPieces(points)
		if err != nil {
			return nil, err
		}
		eval = func(u float64) V {
			i := min(max(int(u), 0), len(pieces)-1)
			return pieces[i].Eval(u - float64(i))
		}
		u0, u1, segments = 0, float64(len(pieces)), len(pieces)

	default:
		return nil, fmt.Errorf("unknown spline kind %q", cfg.Kind)
	}

	var zero V
	return &sampler{
		dims:     zero.Dims(),
		segments: segments,
		u0:       u0,
		u1:       u1,
		eval: func(u float64, dst []float64) {
			p := eval(u)
			for i := range dst {
				dst[i] = p.Coord(i)
			}
		},
	}, nil
}

// bezierPieces splits 3k+1 points into k cubic Bézier curves sharing their
// endpoints.
func bezierPieces[V spline.Vector[V]](points []V) ([]*spline.BezierCubic[V], error) {
	if len(points) < 4 || (len(points)-1)%3 != 0 {
		return nil, fmt.Errorf("piecewise Bézier needs 3k+1 points, got %d", len(points))
	}
	pieces := make([]*spline.BezierCubic[V], 0, (len(points)-1)/3)
	for i := 0; i+3 < len(points); i += 3 {
		pieces = append(pieces, spline.NewBezierCubic(points[i], points[i+1], points[i+2], points[i+3]))
	}
	return pieces, nil
}

func parseEndpointMode(s string) (spline.EndpointMode, error) {
	for _, m := range []spline.EndpointMode{spline.EndpointNone, spline.EndpointExtrapolate, spline.EndpointCollapse} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint mode %q", s)
}

var axisNames = [...]string{"x", "y", "z", "w"}

// writeCSV writes n+1 rows of u and the point coordinates, preceded by a
// header.
func (s *sampler) writeCSV(w io.Writer, n int) error {
	n = max(n, 1)
	cw := csv.NewWriter(w)
	header := append([]string{"u"}, axisNames[:s.dims]...)
	if err := cw.Write(header); err != nil {
		return err
	}
	coords := make([]float64, s.dims)
	row := make([]string, s.dims+1)
	for i := range n + 1 {
		u := s.u0 + (s.u1-s.u0)*float64(i)/float64(n)
		s.eval(u, coords)
		row[0] = strconv.FormatFloat(u, 'g', -1, 64)
		for j, c := range coords {
			row[j+1] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
