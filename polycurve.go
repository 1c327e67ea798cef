package planar

import (
	"math"
	"strings"
)

// CurveSegment is one segment of a polycurve contour: PointSegment, LineCurve, QuadCurve, CubeCurve, ArcCurve or CardinalCurve. The set is closed.
type CurveSegment interface {
	Start() Point
	End() Point
	isCurveSegment()
}

// PointSegment is a degenerate segment consisting of a single point.
type PointSegment struct {
	P Point
}

// LineCurve is a straight segment from P0 to P1.
type LineCurve struct {
	P0, P1 Point
}

// QuadCurve is a quadratic Bézier from P0 to P2 with control point P1.
type QuadCurve struct {
	P0, P1, P2 Point
}

// CubeCurve is a cubic Bézier from P0 to P3 with control points P1 and P2.
type CubeCurve struct {
	P0, P1, P2, P3 Point
}

// ArcCurve is an elliptical arc from P0 to P1 in the SVG endpoint parametrization: radii RX and RY, rotation Angle in radians, and the large-arc and sweep flags. Sweep is true for CCW arcs.
type ArcCurve struct {
	P0, P1       Point
	RX, RY       float64
	Angle        float64
	Large, Sweep bool
}

// CardinalCurve is a cardinal spline starting at P0 and running through Points, with a tension of 0.5 approximating a Catmull-Rom spline.
type CardinalCurve struct {
	P0      Point
	Points  []Point
	Tension float64
}

func (PointSegment) isCurveSegment()  {}
func (LineCurve) isCurveSegment()     {}
func (QuadCurve) isCurveSegment()     {}
func (CubeCurve) isCurveSegment()     {}
func (ArcCurve) isCurveSegment()      {}
func (CardinalCurve) isCurveSegment() {}

func (s PointSegment) Start() Point  { return s.P }
func (s PointSegment) End() Point    { return s.P }
func (s LineCurve) Start() Point     { return s.P0 }
func (s LineCurve) End() Point       { return s.P1 }
func (s QuadCurve) Start() Point     { return s.P0 }
func (s QuadCurve) End() Point       { return s.P2 }
func (s CubeCurve) Start() Point     { return s.P0 }
func (s CubeCurve) End() Point       { return s.P3 }
func (s ArcCurve) Start() Point      { return s.P0 }
func (s ArcCurve) End() Point        { return s.P1 }
func (s CardinalCurve) Start() Point { return s.P0 }

func (s CardinalCurve) End() Point {
	if len(s.Points) == 0 {
		return s.P0
	}
	return s.Points[len(s.Points)-1]
}

// Center returns the arc in center parametrization: the center, the radii (enlarged if they cannot span the end points), the start angle and the sweep.
func (s ArcCurve) Center() (Point, float64, float64, float64, float64) {
	cx, cy, rx, ry, theta, sweep := ellipseToCenter(s.P0.X, s.P0.Y, s.RX, s.RY, s.Angle, s.Large, s.Sweep, s.P1.X, s.P1.Y)
	return Point{cx, cy}, rx, ry, theta, sweep
}

// EllipticalArc returns the arc in center parametrization.
func (s ArcCurve) EllipticalArc() EllipticalArc {
	c, rx, ry, theta, sweep := s.Center()
	return EllipticalArc{c, rx, ry, s.Angle, theta, sweep}
}

// Beziers returns the cubic Béziers that make up the spline.
func (s CardinalCurve) Beziers() []CubicBezier {
	return cardinalToCubicBeziers(s.P0, s.Points, s.Tension)
}

////////////////////////////////////////////////////////////////

// PolycurveContour is a sequence of connected segments that is implicitly closed by a straight line from the end of the last segment to the start of the first.
type PolycurveContour []CurveSegment

// Start returns the contour's first point.
func (c PolycurveContour) Start() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[0].Start()
}

// End returns the contour's last point before closing.
func (c PolycurveContour) End() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[len(c)-1].End()
}

// segments returns the segments including the implicit closing line, if the contour doesn't end where it starts.
func (c PolycurveContour) segments() []CurveSegment {
	if len(c) == 0 {
		return nil
	}
	start, end := c.Start(), c.End()
	if start == end {
		return c
	}
	segs := make([]CurveSegment, len(c), len(c)+1)
	copy(segs, c)
	return append(segs, LineCurve{end, start})
}

// Bounds returns a bounding box of the contour, which may be larger than the tight bounds for curves.
func (c PolycurveContour) Bounds() Rectangle {
	if len(c) == 0 {
		return Rectangle{}
	}
	min, max := c.Start(), c.Start()
	extend := func(ps ...Point) {
		for _, p := range ps {
			min = MinPoint(min, p)
			max = MaxPoint(max, p)
		}
	}
	for _, seg := range c {
		switch s := seg.(type) {
		case PointSegment:
			extend(s.P)
		case LineCurve:
			extend(s.P0, s.P1)
		case QuadCurve:
			extend(s.P0, s.P1, s.P2)
		case CubeCurve:
			extend(s.P0, s.P1, s.P2, s.P3)
		case ArcCurve:
			arc := s.EllipticalArc()
			sinphi, cosphi := arc.Sincos()
			w, h := ellipseHalfExtents(arc.RX, arc.RY, sinphi, cosphi)
			extend(s.P0, s.P1, Point{arc.Center.X - w, arc.Center.Y - h}, Point{arc.Center.X + w, arc.Center.Y + h})
		case CardinalCurve:
			for _, b := range s.Beziers() {
				extend(b.P0, b.P1, b.P2, b.P3)
			}
		}
	}
	return rectangleFromCorners(min, max)
}

// Contains returns whether p is outside, on the boundary or inside the contour.
func (c PolycurveContour) Contains(p Point) Inclusion {
	return PolycurveContourContainsPoint(c, p, Epsilon)
}

func (c PolycurveContour) String() string {
	if len(c) == 0 {
		return ""
	}
	sb := strings.Builder{}
	writePoint := func(p Point) {
		sb.WriteString(ftos(p.X))
		sb.WriteString(" ")
		sb.WriteString(ftos(p.Y))
	}
	sb.WriteString("M")
	writePoint(c.Start())
	for _, seg := range c {
		switch s := seg.(type) {
		case PointSegment:
			// only moves
		case LineCurve:
			sb.WriteString("L")
			writePoint(s.P1)
		case QuadCurve:
			sb.WriteString("Q")
			writePoint(s.P1)
			sb.WriteString(" ")
			writePoint(s.P2)
		case CubeCurve:
			sb.WriteString("C")
			writePoint(s.P1)
			sb.WriteString(" ")
			writePoint(s.P2)
			sb.WriteString(" ")
			writePoint(s.P3)
		case ArcCurve:
			large, sweep := "0", "0"
			if s.Large {
				large = "1"
			}
			if s.Sweep {
				sweep = "1"
			}
			sb.WriteString("A")
			sb.WriteString(ftos(s.RX) + " " + ftos(s.RY) + " " + ftos(s.Angle*180.0/math.Pi) + " " + large + " " + sweep + " ")
			writePoint(s.P1)
		case CardinalCurve:
			for _, b := range s.Beziers() {
				sb.WriteString("C")
				writePoint(b.P1)
				sb.WriteString(" ")
				writePoint(b.P2)
				sb.WriteString(" ")
				writePoint(b.P3)
			}
		}
	}
	sb.WriteString("z")
	return sb.String()
}

// Polycurve is a list of contours that together form a shape with the even-odd rule.
type Polycurve []PolycurveContour

// pos returns the current drawing position.
func (p *Polycurve) pos() Point {
	if len(*p) == 0 {
		return Point{}
	}
	return (*p)[len(*p)-1].End()
}

func (p *Polycurve) add(seg CurveSegment) {
	if len(*p) == 0 {
		*p = append(*p, PolycurveContour{})
	}
	c := &(*p)[len(*p)-1]
	if len(*c) == 1 {
		if _, ok := (*c)[0].(PointSegment); ok {
			// replace the initial move
			(*c)[0] = seg
			return
		}
	}
	if 0 < len(*c) && c.Start() == c.End() {
		// the contour is closed, drawing on opens a new contour at its start
		*p = append(*p, PolycurveContour{seg})
		return
	}
	*c = append(*c, seg)
}

// MoveTo starts a new contour at (x,y).
func (p *Polycurve) MoveTo(x, y float64) {
	*p = append(*p, PolycurveContour{PointSegment{Point{x, y}}})
}

// LineTo adds a straight line to (x,y).
func (p *Polycurve) LineTo(x, y float64) {
	p.add(LineCurve{p.pos(), Point{x, y}})
}

// QuadTo adds a quadratic Bézier with control point (cpx,cpy) ending at (x,y).
func (p *Polycurve) QuadTo(cpx, cpy, x, y float64) {
	p.add(QuadCurve{p.pos(), Point{cpx, cpy}, Point{x, y}})
}

// CubeTo adds a cubic Bézier with control points (cpx1,cpy1) and (cpx2,cpy2) ending at (x,y).
func (p *Polycurve) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.add(CubeCurve{p.pos(), Point{cpx1, cpy1}, Point{cpx2, cpy2}, Point{x, y}})
}

// ArcTo adds an elliptical arc with radii rx and ry, rotated by rot degrees CCW, ending at (x,y). The large and sweep flags follow the SVG definition, sweep being CCW.
func (p *Polycurve) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	p.add(ArcCurve{p.pos(), Point{x, y}, rx, ry, rot * math.Pi / 180.0, large, sweep})
}

// CardinalTo adds a cardinal spline through the given points with the given tension.
func (p *Polycurve) CardinalTo(tension float64, pts ...Point) {
	if len(pts) == 0 {
		return
	}
	p.add(CardinalCurve{p.pos(), append([]Point{}, pts...), tension})
}

// Close closes the current contour with a straight line back to its start, if needed. Drawing after Close starts a new contour at that start point.
func (p *Polycurve) Close() {
	if len(*p) == 0 {
		return
	}
	c := (*p)[len(*p)-1]
	if start, end := c.Start(), c.End(); start != end {
		p.add(LineCurve{end, start})
	}
}

// Bounds returns a bounding box of the polycurve.
func (p Polycurve) Bounds() Rectangle {
	var r Rectangle
	first := true
	for _, c := range p {
		if len(c) == 0 {
			continue
		} else if first {
			r = c.Bounds()
			first = false
		} else {
			r = r.Add(c.Bounds())
		}
	}
	return r
}

// Contains returns whether q is outside, on the boundary or inside the polycurve.
func (p Polycurve) Contains(q Point) Inclusion {
	return PolycurveContainsPoint(p, q, Epsilon)
}

func (p Polycurve) String() string {
	sb := strings.Builder{}
	for _, c := range p {
		sb.WriteString(c.String())
	}
	return sb.String()
}
