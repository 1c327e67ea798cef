package planar

import (
	"fmt"
	"math"
)

// Inclusion is the classification of a point with respect to a shape. Outside and Inside can be combined with XOR to implement holes, while Boundary takes precedence over both.
type Inclusion int

// see Inclusion
const (
	Outside Inclusion = iota
	Inside
	Boundary
)

func (i Inclusion) String() string {
	switch i {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	case Boundary:
		return "Boundary"
	}
	return fmt.Sprintf("Inclusion(%d)", int(i))
}

// PointContainsPoint returns Boundary if p equals q and Outside otherwise.
func PointContainsPoint(q, p Point, epsilon float64) Inclusion {
	if PointPointIntersects(p, q, epsilon) {
		return Boundary
	}
	return Outside
}

// LineSegmentContainsPoint returns Boundary if p lies on the segment AB and Outside otherwise.
func LineSegmentContainsPoint(a, b, p Point, epsilon float64) Inclusion {
	if PointLineSegmentIntersects(p, a, b, epsilon) {
		return Boundary
	}
	return Outside
}

// RectangleContainsPoint classifies p against the rectangle at (x,y) with size (w,h).
func RectangleContainsPoint(x, y, w, h float64, p Point, epsilon float64) Inclusion {
	r := Rectangle{x, y, w, h}
	min, max := r.Min(), r.Max()
	if !Interval(p.X, min.X, max.X, epsilon) || !Interval(p.Y, min.Y, max.Y, epsilon) {
		return Outside
	} else if Equal(p.X, min.X, epsilon) || Equal(p.X, max.X, epsilon) || Equal(p.Y, min.Y, epsilon) || Equal(p.Y, max.Y, epsilon) {
		return Boundary
	}
	return Inside
}

// CircleContainsPoint classifies p against the circle. A circle of zero radius only has a boundary.
func CircleContainsPoint(center Point, radius float64, p Point, epsilon float64) Inclusion {
	d := p.Sub(center).Length()
	if Equal(d, math.Abs(radius), epsilon) {
		return Boundary
	} else if d < math.Abs(radius) {
		return Inside
	}
	return Outside
}

// EllipseContainsPoint classifies p against the ellipse with radii rx and ry, rotated by the angle with sine sinphi and cosine cosphi. The boundary band is epsilon around a normalized radius of one.
func EllipseContainsPoint(center Point, rx, ry, sinphi, cosphi float64, p Point, epsilon float64) Inclusion {
	if rx == 0.0 || ry == 0.0 {
		a := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, 0.0)
		if rx == 0.0 {
			a = ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, math.Pi/2.0)
		}
		return LineSegmentContainsPoint(a, center.Mul(2.0).Sub(a), p, epsilon)
	}

	r := ellipseNormalizedRadius(rx, ry, sinphi, cosphi, center.X, center.Y, p)
	if Equal(r, 1.0, epsilon) {
		return Boundary
	} else if r < 1.0 {
		return Inside
	}
	return Outside
}

// CircularArcContainsPoint classifies p against the region enclosed by the circular arc and the chord between its end points.
func CircularArcContainsPoint(center Point, radius, start, sweep float64, p Point, epsilon float64) Inclusion {
	return EllipticalArcContainsPoint(center, radius, radius, 0.0, 1.0, start, sweep, p, epsilon)
}

// EllipticalArcContainsPoint classifies p against the region enclosed by the elliptical arc and the chord between its end points. Points inside the ellipse are inside the region when they lie on the arc's side of the chord, ie. when the sign of the chord's determinant disagrees with the sign of the sweep.
func EllipticalArcContainsPoint(center Point, rx, ry, sinphi, cosphi, start, sweep float64, p Point, epsilon float64) Inclusion {
	if 2.0*math.Pi-epsilon <= math.Abs(sweep) {
		return EllipseContainsPoint(center, rx, ry, sinphi, cosphi, p, epsilon)
	}
	s := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, start)
	e := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, start+sweep)
	if sweep == 0.0 || rx == 0.0 || ry == 0.0 {
		// no interior
		return LineSegmentContainsPoint(s, e, p, epsilon)
	}

	chord := e.Sub(s)
	det := chord.PerpDot(p.Sub(s))
	onChord := math.Abs(det) <= epsilon*chord.Length()
	arcSide := (det < 0.0) == (0.0 < sweep)

	r := ellipseNormalizedRadius(rx, ry, sinphi, cosphi, center.X, center.Y, p)
	if Equal(r, 1.0, epsilon) && (arcSide || onChord) {
		return Boundary
	} else if onChord && r <= 1.0+epsilon {
		return Boundary
	} else if r < 1.0 && arcSide {
		return Inside
	}
	return Outside
}

// TriangleContainsPoint classifies p against the triangle ABC of either winding.
func TriangleContainsPoint(a, b, c, p Point, epsilon float64) Inclusion {
	if PointLineSegmentIntersects(p, a, b, epsilon) || PointLineSegmentIntersects(p, b, c, epsilon) || PointLineSegmentIntersects(p, c, a, epsilon) {
		return Boundary
	}
	d0 := crossProduct(a, b, p)
	d1 := crossProduct(b, c, p)
	d2 := crossProduct(c, a, p)
	if 0.0 < d0 && 0.0 < d1 && 0.0 < d2 || d0 < 0.0 && d1 < 0.0 && d2 < 0.0 {
		return Inside
	}
	return Outside
}

// PolygonContourContainsPoint classifies p against the implicitly closed contour using the crossing-number rule. Contours of fewer than three points have no interior.
func PolygonContourContainsPoint(contour PolygonContour, p Point, epsilon float64) Inclusion {
	switch len(contour) {
	case 0:
		return Outside
	case 1:
		return PointContainsPoint(contour[0], p, epsilon)
	case 2:
		return LineSegmentContainsPoint(contour[0], contour[1], p, epsilon)
	}

	inside := false
	for i := range contour {
		a, b := contour[i], contour[(i+1)%len(contour)]
		if PointLineSegmentIntersects(p, a, b, epsilon) {
			return Boundary
		} else if (b.Y < p.Y) == (a.Y < p.Y) {
			continue
		}

		// the crossing lies at x = p.X + cross/dy
		dy := b.Y - a.Y
		cross := crossProduct(p, a, b)
		if math.Abs(cross) <= epsilon*math.Abs(dy) {
			return Boundary
		} else if (0.0 < cross) == (0.0 < dy) {
			inside = !inside
		}
	}
	if inside {
		return Inside
	}
	return Outside
}

// PolygonContainsPoint classifies p against a polygon of multiple contours, where contours inside other contours form holes.
func PolygonContainsPoint(polygon Polygon, p Point, epsilon float64) Inclusion {
	inclusion := Outside
	for _, contour := range polygon {
		i := PolygonContourContainsPoint(contour, p, epsilon)
		if i == Boundary {
			return Boundary
		}
		inclusion ^= i
	}
	return inclusion
}

// PolycurveContourContainsPoint classifies p against the implicitly closed contour by counting the crossings of its segments to the right of p.
func PolycurveContourContainsPoint(contour PolycurveContour, p Point, epsilon float64) Inclusion {
	segs := contour.segments()
	for _, seg := range segs {
		if curveSegmentContainsPoint(seg, p, epsilon) {
			return Boundary
		}
	}

	n := 0
	for _, seg := range segs {
		for _, x := range scanbeamCurveSegment(nil, p.Y, seg, epsilon) {
			if Equal(x, p.X, epsilon) {
				return Boundary
			} else if p.X < x {
				n++
			}
		}
	}
	if n%2 == 1 {
		return Inside
	}
	return Outside
}

// PolycurveContainsPoint classifies p against a polycurve of multiple contours, where contours inside other contours form holes.
func PolycurveContainsPoint(polycurve Polycurve, p Point, epsilon float64) Inclusion {
	inclusion := Outside
	for _, contour := range polycurve {
		i := PolycurveContourContainsPoint(contour, p, epsilon)
		if i == Boundary {
			return Boundary
		}
		inclusion ^= i
	}
	return inclusion
}

// QuadraticBezierContainsPoint classifies p against the region enclosed by the quadratic Bézier and the chord between its end points.
func QuadraticBezierContainsPoint(p0, p1, p2, p Point, epsilon float64) Inclusion {
	return PolycurveContourContainsPoint(PolycurveContour{QuadCurve{p0, p1, p2}}, p, epsilon)
}

// CubicBezierContainsPoint classifies p against the region enclosed by the cubic Bézier and the chord between its end points.
func CubicBezierContainsPoint(p0, p1, p2, p3, p Point, epsilon float64) Inclusion {
	return PolycurveContourContainsPoint(PolycurveContour{CubeCurve{p0, p1, p2, p3}}, p, epsilon)
}

// curveSegmentContainsPoint returns true if p lies on the segment.
func curveSegmentContainsPoint(seg CurveSegment, p Point, epsilon float64) bool {
	switch s := seg.(type) {
	case PointSegment:
		return PointPointIntersects(p, s.P, epsilon)
	case LineCurve:
		return PointLineSegmentIntersects(p, s.P0, s.P1, epsilon)
	case QuadCurve:
		px := QuadraticBezierCoefficients(s.P0.X, s.P1.X, s.P2.X)
		py := QuadraticBezierCoefficients(s.P0.Y, s.P1.Y, s.P2.Y)
		return bezierContainsPoint(px, py, s.P0, s.P2, p, epsilon)
	case CubeCurve:
		px := CubicBezierCoefficients(s.P0.X, s.P1.X, s.P2.X, s.P3.X)
		py := CubicBezierCoefficients(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y)
		return bezierContainsPoint(px, py, s.P0, s.P3, p, epsilon)
	case ArcCurve:
		return arcContainsPoint(s, p, epsilon)
	case CardinalCurve:
		for _, b := range s.Beziers() {
			if curveSegmentContainsPoint(CubeCurve(b), p, epsilon) {
				return true
			}
		}
	}
	return false
}

func bezierContainsPoint(px, py Polynomial, start, end, p Point, epsilon float64) bool {
	if len(py.SubConst(p.Y).Trim(epsilon)) == 0 {
		// horizontal curve on the beam, p must be within its x-extent
		xmin, xmax := math.Inf(1), math.Inf(-1)
		for _, t := range monotoneSplits(px, epsilon) {
			x := px.Eval(t)
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
		}
		return Interval(p.X, xmin, xmax, epsilon)
	}

	for _, x := range scanbeamBezier(nil, p.Y, px, py, start, end, epsilon) {
		if Equal(x, p.X, epsilon) {
			return true
		}
	}

	// the root solver may miss the touching point at an extremum
	for _, t := range monotoneSplits(py, epsilon) {
		if (Point{px.Eval(t), py.Eval(t)}).EqualsEps(p, epsilon) {
			return true
		}
	}
	return start.EqualsEps(p, epsilon) || end.EqualsEps(p, epsilon)
}

func arcContainsPoint(s ArcCurve, p Point, epsilon float64) bool {
	if s.P0.EqualsEps(p, epsilon) || s.P1.EqualsEps(p, epsilon) {
		return true
	}
	c, rx, ry, theta0, sweep := s.Center()
	if rx == 0.0 || ry == 0.0 || sweep == 0.0 {
		return PointLineSegmentIntersects(p, s.P0, s.P1, epsilon)
	}
	sinphi, cosphi := math.Sincos(s.Angle)
	if !Equal(ellipseNormalizedRadius(rx, ry, sinphi, cosphi, c.X, c.Y, p), 1.0, epsilon) {
		return false
	}
	a, b := ellipseLocal(sinphi, cosphi, c.X, c.Y, p)
	return angleInSweep(math.Atan2(b/ry, a/rx), theta0, sweep, epsilon)
}

////////////////////////////////////////////////////////////////

// Contains classifies p against any shape. Open shapes such as lines and curves only have a boundary, while Béziers and arcs are closed by the chord between their end points.
func Contains(s Shape, p Point, epsilon float64) (Inclusion, error) {
	switch s := s.(type) {
	case Point:
		return PointContainsPoint(s, p, epsilon), nil
	case LineSegment:
		return LineSegmentContainsPoint(s.A, s.B, p, epsilon), nil
	case Ray:
		if PointRayIntersects(p, s.Origin, s.Direction, epsilon) {
			return Boundary, nil
		}
		return Outside, nil
	case Line:
		if PointLineIntersects(p, s.Origin, s.Direction, epsilon) {
			return Boundary, nil
		}
		return Outside, nil
	case Rectangle:
		return RectangleContainsPoint(s.X, s.Y, s.W, s.H, p, epsilon), nil
	case Circle:
		return CircleContainsPoint(s.Center, s.Radius, p, epsilon), nil
	case Ellipse:
		sinphi, cosphi := s.Sincos()
		return EllipseContainsPoint(s.Center, s.RX, s.RY, sinphi, cosphi, p, epsilon), nil
	case CircularArc:
		return CircularArcContainsPoint(s.Center, s.Radius, s.Start, s.Sweep, p, epsilon), nil
	case EllipticalArc:
		sinphi, cosphi := s.Sincos()
		return EllipticalArcContainsPoint(s.Center, s.RX, s.RY, sinphi, cosphi, s.Start, s.Sweep, p, epsilon), nil
	case Triangle:
		return TriangleContainsPoint(s.A, s.B, s.C, p, epsilon), nil
	case QuadraticBezier:
		return QuadraticBezierContainsPoint(s.P0, s.P1, s.P2, p, epsilon), nil
	case CubicBezier:
		return CubicBezierContainsPoint(s.P0, s.P1, s.P2, s.P3, p, epsilon), nil
	case PolygonContour:
		return PolygonContourContainsPoint(s, p, epsilon), nil
	case Polygon:
		return PolygonContainsPoint(s, p, epsilon), nil
	case PolycurveContour:
		return PolycurveContourContainsPoint(s, p, epsilon), nil
	case Polycurve:
		return PolycurveContainsPoint(s, p, epsilon), nil
	}
	return Outside, fmt.Errorf("contains for %s: %w", shapeName(s), ErrUnsupported)
}
