package planar

import (
	"math"
	"sort"
)

// The scan-beam functions append the x-coordinates at which the horizontal line at height y crosses a shape's boundary to xs and return the extended slice. They never read xs, so it may be reused between calls by the same caller.
//
// Open primitives (points, lines, rays, segments, Béziers, arcs) report every point where they meet the beam, including the end points. Closed contours (rectangles, triangles, polygons and polycurves) instead count a y-monotone piece from y0 to y1 iff (y0 < y) != (y1 < y), so that vertices and tangencies touching the beam are counted consistently and the parity of the crossings to either side of a point equals its inclusion.

// beamCrossing intersects the line origin+t*dir with the horizontal line at height y, returning the determinant of the system, the parameter t and the crossing's x-coordinate.
func beamCrossing(y float64, origin, dir Point) (float64, float64, float64) {
	// the beam is (0,y) + x*(1,0)
	return solveLinear(dir, Point{1.0, 0.0}, Point{-origin.X, y - origin.Y})
}

// ScanbeamPoint appends the x-coordinate of p if it lies on the beam.
func ScanbeamPoint(xs []float64, y float64, p Point, epsilon float64) []float64 {
	if Equal(p.Y, y, epsilon) {
		xs = append(xs, p.X)
	}
	return xs
}

// ScanbeamLine appends the crossing of the infinite line through origin along dir. A horizontal line has no isolated crossing, even when it lies on the beam.
func ScanbeamLine(xs []float64, y float64, origin, dir Point, epsilon float64) []float64 {
	det, _, x := beamCrossing(y, origin, dir)
	if math.Abs(det) <= epsilon {
		return xs
	}
	return append(xs, x)
}

// ScanbeamRay appends the crossing of the ray from origin along dir. A horizontal ray on the beam adds its origin.
func ScanbeamRay(xs []float64, y float64, origin, dir Point, epsilon float64) []float64 {
	det, t, _ := beamCrossing(y, origin, dir)
	if math.Abs(det) <= epsilon {
		return ScanbeamPoint(xs, y, origin, epsilon)
	} else if t < -epsilon {
		return xs
	}
	return append(xs, origin.X+math.Max(t, 0.0)*dir.X)
}

// ScanbeamLineSegment appends the crossing of the line segment AB. A horizontal segment on the beam adds both end points.
func ScanbeamLineSegment(xs []float64, y float64, a, b Point, epsilon float64) []float64 {
	det, t, _ := beamCrossing(y, a, b.Sub(a))
	if math.Abs(det) <= epsilon {
		if Equal(a.Y, y, epsilon) && Equal(b.Y, y, epsilon) {
			xs = append(xs, a.X, b.X)
		}
		return xs
	} else if !Interval(t, 0.0, 1.0, epsilon) {
		return xs
	}
	t = math.Max(0.0, math.Min(1.0, t))
	return append(xs, a.X+t*(b.X-a.X))
}

// ScanbeamQuadraticBezier appends the crossings of the quadratic Bézier P0-P1-P2.
func ScanbeamQuadraticBezier(xs []float64, y float64, p0, p1, p2 Point, epsilon float64) []float64 {
	px := QuadraticBezierCoefficients(p0.X, p1.X, p2.X)
	py := QuadraticBezierCoefficients(p0.Y, p1.Y, p2.Y)
	return scanbeamBezier(xs, y, px, py, p0, p2, epsilon)
}

// ScanbeamCubicBezier appends the crossings of the cubic Bézier P0-P1-P2-P3.
func ScanbeamCubicBezier(xs []float64, y float64, p0, p1, p2, p3 Point, epsilon float64) []float64 {
	px := CubicBezierCoefficients(p0.X, p1.X, p2.X, p3.X)
	py := CubicBezierCoefficients(p0.Y, p1.Y, p2.Y, p3.Y)
	return scanbeamBezier(xs, y, px, py, p0, p3, epsilon)
}

func scanbeamBezier(xs []float64, y float64, px, py Polynomial, start, end Point, epsilon float64) []float64 {
	q := py.SubConst(y).Trim(epsilon)
	if len(q) == 0 {
		// horizontal curve on the beam
		return append(xs, start.X, end.X)
	}
	for _, t := range bezierRootsInUnit(q, epsilon) {
		if t == 1.0 {
			xs = append(xs, end.X)
		} else {
			xs = append(xs, px.Eval(t))
		}
	}
	return xs
}

// ScanbeamCircle appends the crossings of the circle. A tangent beam adds the point of contact twice.
func ScanbeamCircle(xs []float64, y float64, center Point, radius, epsilon float64) []float64 {
	dy := y - center.Y
	return scanbeamConic(xs, center.X, radius*radius-dy*dy, epsilon)
}

// scanbeamConic appends xc-sqrt(w2) and xc+sqrt(w2), where w2 is the squared half-width of a conic at the beam.
func scanbeamConic(xs []float64, xc, w2, epsilon float64) []float64 {
	if w2 < -epsilon {
		return xs
	} else if w2 <= epsilon {
		return append(xs, xc, xc)
	}
	w := math.Sqrt(w2)
	return append(xs, xc-w, xc+w)
}

// ScanbeamEllipse appends the crossings of the ellipse with radii rx and ry, rotated by the angle with sine sinphi and cosine cosphi. A tangent beam adds the point of contact twice.
func ScanbeamEllipse(xs []float64, y float64, center Point, rx, ry, sinphi, cosphi, epsilon float64) []float64 {
	if rx == 0.0 || ry == 0.0 {
		// degenerates into a line segment along the remaining axis
		a := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, 0.0)
		if rx == 0.0 {
			a = ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, math.Pi/2.0)
		}
		return ScanbeamLineSegment(xs, y, a, center.Mul(2.0).Sub(a), epsilon)
	}

	// A*x^2 + B*x*y + C*y^2 = 1 at y = y-cy is a quadratic in x
	A, B, C := ellipseConic(rx, ry, sinphi, cosphi)
	dy := y - center.Y
	b := B * dy
	c := C*dy*dy - 1.0
	return scanbeamConic(xs, center.X-b/(2.0*A), (b*b-4.0*A*c)/(4.0*A*A), epsilon)
}

// ScanbeamCircularArc appends the crossings of the circular arc starting at angle start and sweeping over sweep radians.
func ScanbeamCircularArc(xs []float64, y float64, center Point, radius, start, sweep, epsilon float64) []float64 {
	return ScanbeamEllipticalArc(xs, y, center, radius, radius, 0.0, 1.0, start, sweep, epsilon)
}

// ScanbeamEllipticalArc appends the crossings of the elliptical arc starting at parametric angle start and sweeping over sweep radians. Crossings of the full ellipse are kept when they lie on the arc's side of the chord between the arc's end points.
func ScanbeamEllipticalArc(xs []float64, y float64, center Point, rx, ry, sinphi, cosphi, start, sweep, epsilon float64) []float64 {
	s := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, start)
	if sweep == 0.0 {
		return ScanbeamPoint(xs, y, s, epsilon)
	}

	n := len(xs)
	xs = ScanbeamEllipse(xs, y, center, rx, ry, sinphi, cosphi, epsilon)
	if 2.0*math.Pi-epsilon <= math.Abs(sweep) {
		return xs
	}

	e := ellipsePos(rx, ry, sinphi, cosphi, center.X, center.Y, start+sweep)
	chord := e.Sub(s)
	tolerance := epsilon * chord.Length()
	k := n
	for _, x := range xs[n:] {
		det := chord.PerpDot(Point{x, y}.Sub(s))
		if math.Abs(det) <= tolerance || (det < 0.0) == (0.0 < sweep) {
			xs[k] = x
			k++
		}
	}
	return xs[:k]
}

// ScanbeamRectangle appends the crossings of the rectangle's boundary using the half-open rule for closed contours.
func ScanbeamRectangle(xs []float64, y, x0, y0, w, h, epsilon float64) []float64 {
	c := Rectangle{x0, y0, w, h}.Corners()
	return ScanbeamPolygonContour(xs, y, c[:], epsilon)
}

// ScanbeamTriangle appends the crossings of the triangle's boundary using the half-open rule for closed contours.
func ScanbeamTriangle(xs []float64, y float64, a, b, c Point, epsilon float64) []float64 {
	return ScanbeamPolygonContour(xs, y, PolygonContour{a, b, c}, epsilon)
}

// ScanbeamPolygonContour appends the crossings of the contour's edges, including the closing edge, using the half-open rule for closed contours.
func ScanbeamPolygonContour(xs []float64, y float64, contour PolygonContour, epsilon float64) []float64 {
	for i := range contour {
		xs = scanbeamEdge(xs, y, contour[i], contour[(i+1)%len(contour)])
	}
	return xs
}

// ScanbeamPolygon appends the crossings of all of the polygon's contours.
func ScanbeamPolygon(xs []float64, y float64, polygon Polygon, epsilon float64) []float64 {
	for _, contour := range polygon {
		xs = ScanbeamPolygonContour(xs, y, contour, epsilon)
	}
	return xs
}

// ScanbeamPolycurveContour appends the crossings of the contour's segments, including the closing line, using the half-open rule for closed contours.
func ScanbeamPolycurveContour(xs []float64, y float64, contour PolycurveContour, epsilon float64) []float64 {
	for _, seg := range contour.segments() {
		xs = scanbeamCurveSegment(xs, y, seg, epsilon)
	}
	return xs
}

// ScanbeamPolycurve appends the crossings of all of the polycurve's contours.
func ScanbeamPolycurve(xs []float64, y float64, polycurve Polycurve, epsilon float64) []float64 {
	for _, contour := range polycurve {
		xs = ScanbeamPolycurveContour(xs, y, contour, epsilon)
	}
	return xs
}

////////////////////////////////////////////////////////////////

// scanbeamEdge appends the crossing of the edge AB using the half-open rule.
func scanbeamEdge(xs []float64, y float64, a, b Point) []float64 {
	if (a.Y < y) == (b.Y < y) {
		return xs
	}
	_, _, x := beamCrossing(y, a, b.Sub(a))
	return append(xs, x)
}

// scanbeamCurveSegment appends the crossings of one contour segment using the half-open rule.
func scanbeamCurveSegment(xs []float64, y float64, seg CurveSegment, epsilon float64) []float64 {
	switch s := seg.(type) {
	case PointSegment:
		// a point never crosses
	case LineCurve:
		xs = scanbeamEdge(xs, y, s.P0, s.P1)
	case QuadCurve:
		px := QuadraticBezierCoefficients(s.P0.X, s.P1.X, s.P2.X)
		py := QuadraticBezierCoefficients(s.P0.Y, s.P1.Y, s.P2.Y)
		xs = scanbeamMonotoneBezier(xs, y, px, py, s.P0, s.P2, epsilon)
	case CubeCurve:
		px := CubicBezierCoefficients(s.P0.X, s.P1.X, s.P2.X, s.P3.X)
		py := CubicBezierCoefficients(s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y)
		xs = scanbeamMonotoneBezier(xs, y, px, py, s.P0, s.P3, epsilon)
	case ArcCurve:
		xs = scanbeamMonotoneArc(xs, y, s)
	case CardinalCurve:
		for _, b := range s.Beziers() {
			xs = scanbeamCurveSegment(xs, y, CubeCurve(b), epsilon)
		}
	}
	return xs
}

// scanbeamMonotoneBezier splits the Bézier into y-monotone pieces and appends the crossing of each piece that satisfies the half-open rule. The end points use the exact control points so that consecutive segments agree on their shared vertex.
func scanbeamMonotoneBezier(xs []float64, y float64, px, py Polynomial, start, end Point, epsilon float64) []float64 {
	ts := monotoneSplits(py, epsilon)
	for i := 0; i+1 < len(ts); i++ {
		t0, t1 := ts[i], ts[i+1]
		y0, y1 := py.Eval(t0), py.Eval(t1)
		if i == 0 {
			y0 = start.Y
		}
		if i+2 == len(ts) {
			y1 = end.Y
		}
		if (y0 < y) == (y1 < y) {
			continue
		}
		xs = append(xs, px.Eval(monotoneRoot(py, y, t0, t1, epsilon)))
	}
	return xs
}

// monotoneRoot returns t in [t0,t1] for which p(t) = y, where p is monotone over the interval.
func monotoneRoot(p Polynomial, y, t0, t1, epsilon float64) float64 {
	for _, t := range p.SubConst(y).Roots(epsilon) {
		if t0 <= t && t <= t1 {
			return t
		}
	}
	return bisectionMethod(p.Eval, y, t0, t1, epsilon)
}

// scanbeamMonotoneArc splits the arc at its lowest and highest points and appends the crossing of each piece that satisfies the half-open rule.
func scanbeamMonotoneArc(xs []float64, y float64, s ArcCurve) []float64 {
	c, rx, ry, theta0, sweep := s.Center()
	if rx == 0.0 || ry == 0.0 || sweep == 0.0 {
		return scanbeamEdge(xs, y, s.P0, s.P1)
	}
	sinphi, cosphi := math.Sincos(s.Angle)
	R, delta := ellipseYForm(rx, ry, sinphi, cosphi)

	// angle offsets from theta0 of the piece boundaries
	ds := []float64{0.0, sweep}
	for _, extreme := range []float64{math.Pi/2.0 - delta, -math.Pi/2.0 - delta} {
		d := angleNorm(extreme - theta0)
		if sweep < 0.0 {
			d = -angleNorm(theta0 - extreme)
		}
		if 0.0 < math.Abs(d) && math.Abs(d) < math.Abs(sweep) {
			ds = append(ds, d)
		}
	}
	sort.Slice(ds, func(i, j int) bool { return math.Abs(ds[i]) < math.Abs(ds[j]) })

	for i := 0; i+1 < len(ds); i++ {
		a0, a1 := theta0+ds[i], theta0+ds[i+1]
		y0, y1 := c.Y+R*math.Sin(a0+delta), c.Y+R*math.Sin(a1+delta)
		if i == 0 {
			y0 = s.P0.Y
		}
		if i+2 == len(ds) {
			y1 = s.P1.Y
		}
		if (y0 < y) == (y1 < y) {
			continue
		}

		// sin(theta+delta) = v has two solutions mirrored around the extreme, the one in the piece lies closest to its middle
		v := math.Max(-1.0, math.Min(1.0, (y-c.Y)/R))
		mid := (a0 + a1) / 2.0
		theta := math.Asin(v) - delta
		if mirror := math.Pi - math.Asin(v) - delta; angleDistance(mirror, mid) < angleDistance(theta, mid) {
			theta = mirror
		}
		xs = append(xs, ellipsePos(rx, ry, sinphi, cosphi, c.X, c.Y, theta).X)
	}
	return xs
}

// angleDistance returns the absolute angular distance between a and b in [0,PI].
func angleDistance(a, b float64) float64 {
	d := angleNorm(a - b)
	return math.Min(d, 2.0*math.Pi-d)
}

////////////////////////////////////////////////////////////////

// Scanbeam appends the crossings of the horizontal line at height y with the boundary of any shape.
func Scanbeam(xs []float64, s Shape, y, epsilon float64) []float64 {
	switch s := s.(type) {
	case Point:
		return ScanbeamPoint(xs, y, s, epsilon)
	case LineSegment:
		return ScanbeamLineSegment(xs, y, s.A, s.B, epsilon)
	case Ray:
		return ScanbeamRay(xs, y, s.Origin, s.Direction, epsilon)
	case Line:
		return ScanbeamLine(xs, y, s.Origin, s.Direction, epsilon)
	case Rectangle:
		return ScanbeamRectangle(xs, y, s.X, s.Y, s.W, s.H, epsilon)
	case Circle:
		return ScanbeamCircle(xs, y, s.Center, s.Radius, epsilon)
	case Ellipse:
		sinphi, cosphi := s.Sincos()
		return ScanbeamEllipse(xs, y, s.Center, s.RX, s.RY, sinphi, cosphi, epsilon)
	case CircularArc:
		return ScanbeamCircularArc(xs, y, s.Center, s.Radius, s.Start, s.Sweep, epsilon)
	case EllipticalArc:
		sinphi, cosphi := s.Sincos()
		return ScanbeamEllipticalArc(xs, y, s.Center, s.RX, s.RY, sinphi, cosphi, s.Start, s.Sweep, epsilon)
	case Triangle:
		return ScanbeamTriangle(xs, y, s.A, s.B, s.C, epsilon)
	case QuadraticBezier:
		return ScanbeamQuadraticBezier(xs, y, s.P0, s.P1, s.P2, epsilon)
	case CubicBezier:
		return ScanbeamCubicBezier(xs, y, s.P0, s.P1, s.P2, s.P3, epsilon)
	case PolygonContour:
		return ScanbeamPolygonContour(xs, y, s, epsilon)
	case Polygon:
		return ScanbeamPolygon(xs, y, s, epsilon)
	case PolycurveContour:
		return ScanbeamPolycurveContour(xs, y, s, epsilon)
	case Polycurve:
		return ScanbeamPolycurve(xs, y, s, epsilon)
	}
	return xs
}

type beamSide int

const (
	leftOfPoint beamSide = iota
	rightOfPoint
)

// scanbeamCount counts the crossings strictly to one side of x on the beam through (x,y).
func scanbeamCount(s Shape, x, y float64, side beamSide, epsilon float64) int {
	n := 0
	for _, xc := range Scanbeam(nil, s, y, epsilon) {
		if side == leftOfPoint && xc < x || side == rightOfPoint && x < xc {
			n++
		}
	}
	return n
}

// ScanbeamPointsToLeft returns the number of crossings of the beam through (x,y) with the shape's boundary strictly left of x.
func ScanbeamPointsToLeft(s Shape, x, y, epsilon float64) int {
	return scanbeamCount(s, x, y, leftOfPoint, epsilon)
}

// ScanbeamPointsToRight returns the number of crossings of the beam through (x,y) with the shape's boundary strictly right of x.
func ScanbeamPointsToRight(s Shape, x, y, epsilon float64) int {
	return scanbeamCount(s, x, y, rightOfPoint, epsilon)
}
