package planar

import (
	"math"
	"strings"
)

// Shape is any of the geometric primitives handled by the engines: Point, LineSegment, Ray, Line, Rectangle, Circle, Ellipse, CircularArc, EllipticalArc, Triangle, QuadraticBezier, CubicBezier, PolygonContour, Polygon, PolycurveContour and Polycurve. The set is closed.
type Shape interface {
	String() string
	isShape()
}

func (Point) isShape()            {}
func (LineSegment) isShape()      {}
func (Ray) isShape()              {}
func (Line) isShape()             {}
func (Rectangle) isShape()        {}
func (Circle) isShape()           {}
func (Ellipse) isShape()          {}
func (CircularArc) isShape()      {}
func (EllipticalArc) isShape()    {}
func (Triangle) isShape()         {}
func (QuadraticBezier) isShape()  {}
func (CubicBezier) isShape()      {}
func (PolygonContour) isShape()   {}
func (Polygon) isShape()          {}
func (PolycurveContour) isShape() {}
func (Polycurve) isShape()        {}

// shapeName returns the kind of shape for messages.
func shapeName(s Shape) string {
	switch s.(type) {
	case Point:
		return "point"
	case LineSegment:
		return "line segment"
	case Ray:
		return "ray"
	case Line:
		return "line"
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case CircularArc:
		return "circular arc"
	case EllipticalArc:
		return "elliptical arc"
	case Triangle:
		return "triangle"
	case QuadraticBezier:
		return "quadratic Bézier"
	case CubicBezier:
		return "cubic Bézier"
	case PolygonContour:
		return "polygon contour"
	case Polygon:
		return "polygon"
	case PolycurveContour:
		return "polycurve contour"
	case Polycurve:
		return "polycurve"
	}
	return "unknown shape"
}

////////////////////////////////////////////////////////////////

// LineSegment is the finite line between A and B, parametrized as A + t*(B-A) with t in [0,1].
type LineSegment struct {
	A, B Point
}

// Direction returns B-A.
func (l LineSegment) Direction() Point {
	return l.B.Sub(l.A)
}

// Pos returns the position at t.
func (l LineSegment) Pos(t float64) Point {
	return l.A.Interpolate(l.B, t)
}

// Bounds returns the bounding box.
func (l LineSegment) Bounds() Rectangle {
	return rectangleFromCorners(MinPoint(l.A, l.B), MaxPoint(l.A, l.B))
}

// Contains returns Boundary if p lies on the segment and Outside otherwise.
func (l LineSegment) Contains(p Point) Inclusion {
	return LineSegmentContainsPoint(l.A, l.B, p, Epsilon)
}

func (l LineSegment) String() string {
	return "M" + ftos(l.A.X) + " " + ftos(l.A.Y) + "L" + ftos(l.B.X) + " " + ftos(l.B.Y)
}

// Ray is the half-infinite line starting at Origin going along Direction, parametrized as Origin + t*Direction with t >= 0.
type Ray struct {
	Origin, Direction Point
}

// Pos returns the position at t.
func (r Ray) Pos(t float64) Point {
	return r.Origin.Add(r.Direction.Mul(t))
}

func (r Ray) String() string {
	return "Ray" + r.Origin.String() + "->" + r.Direction.String()
}

// Line is the infinite line through Origin along Direction, parametrized as Origin + t*Direction for any t.
type Line struct {
	Origin, Direction Point
}

// Pos returns the position at t.
func (l Line) Pos(t float64) Point {
	return l.Origin.Add(l.Direction.Mul(t))
}

func (l Line) String() string {
	return "Line" + l.Origin.String() + "->" + l.Direction.String()
}

////////////////////////////////////////////////////////////////

// Rectangle is an axis-aligned rectangle with its corner at (X,Y) and size (W,H). Negative sizes extend to the left or bottom.
type Rectangle struct {
	X, Y, W, H float64
}

func rectangleFromCorners(min, max Point) Rectangle {
	return Rectangle{min.X, min.Y, max.X - min.X, max.Y - min.Y}
}

// Min returns the corner with the lowest coordinates.
func (r Rectangle) Min() Point {
	return Point{math.Min(r.X, r.X+r.W), math.Min(r.Y, r.Y+r.H)}
}

// Max returns the corner with the highest coordinates.
func (r Rectangle) Max() Point {
	return Point{math.Max(r.X, r.X+r.W), math.Max(r.Y, r.Y+r.H)}
}

// Corners returns the four corners in counter clockwise order starting at the lowest coordinates.
func (r Rectangle) Corners() [4]Point {
	min, max := r.Min(), r.Max()
	return [4]Point{min, {max.X, min.Y}, max, {min.X, max.Y}}
}

// Diagonals returns the two diagonals between opposite corners.
func (r Rectangle) Diagonals() (LineSegment, LineSegment) {
	c := r.Corners()
	return LineSegment{c[0], c[2]}, LineSegment{c[3], c[1]}
}

// Add returns the rectangle that covers both r and q.
func (r Rectangle) Add(q Rectangle) Rectangle {
	return rectangleFromCorners(MinPoint(r.Min(), q.Min()), MaxPoint(r.Max(), q.Max()))
}

// Contains returns whether p is outside, on the boundary or inside the rectangle.
func (r Rectangle) Contains(p Point) Inclusion {
	return RectangleContainsPoint(r.X, r.Y, r.W, r.H, p, Epsilon)
}

func (r Rectangle) String() string {
	min, max := r.Min(), r.Max()
	return min.String() + "-" + max.String()
}

////////////////////////////////////////////////////////////////

// Circle is a circle around Center.
type Circle struct {
	Center Point
	Radius float64
}

// Bounds returns the bounding box.
func (c Circle) Bounds() Rectangle {
	r := math.Abs(c.Radius)
	return Rectangle{c.Center.X - r, c.Center.Y - r, 2.0 * r, 2.0 * r}
}

// Contains returns whether p is outside, on the boundary or inside the circle.
func (c Circle) Contains(p Point) Inclusion {
	return CircleContainsPoint(c.Center, c.Radius, p, Epsilon)
}

func (c Circle) String() string {
	return "Circle" + c.Center.String() + "r" + ftos(c.Radius)
}

// Ellipse is an ellipse around Center with radii RX and RY, rotated by Angle radians CCW.
type Ellipse struct {
	Center Point
	RX, RY float64
	Angle  float64
}

// Sincos returns the sine and cosine of the ellipse's rotation.
func (e Ellipse) Sincos() (float64, float64) {
	return math.Sincos(e.Angle)
}

// Pos returns the position at parametric angle theta.
func (e Ellipse) Pos(theta float64) Point {
	sinphi, cosphi := e.Sincos()
	return ellipsePos(e.RX, e.RY, sinphi, cosphi, e.Center.X, e.Center.Y, theta)
}

// Bounds returns the bounding box.
func (e Ellipse) Bounds() Rectangle {
	sinphi, cosphi := e.Sincos()
	w, h := ellipseHalfExtents(e.RX, e.RY, sinphi, cosphi)
	return Rectangle{e.Center.X - w, e.Center.Y - h, 2.0 * w, 2.0 * h}
}

// Contains returns whether p is outside, on the boundary or inside the ellipse.
func (e Ellipse) Contains(p Point) Inclusion {
	sinphi, cosphi := e.Sincos()
	return EllipseContainsPoint(e.Center, e.RX, e.RY, sinphi, cosphi, p, Epsilon)
}

func (e Ellipse) String() string {
	return "Ellipse" + e.Center.String() + "r(" + ftos(e.RX) + "," + ftos(e.RY) + ")rot" + ftos(e.Angle*180.0/math.Pi)
}

// CircularArc is the part of a circle starting at angle Start that sweeps over Sweep radians, positive being CCW.
type CircularArc struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Pos returns the position at angle theta.
func (a CircularArc) Pos(theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	return Point{a.Center.X + a.Radius*costheta, a.Center.Y + a.Radius*sintheta}
}

// StartPoint returns the start of the arc.
func (a CircularArc) StartPoint() Point {
	return a.Pos(a.Start)
}

// EndPoint returns the end of the arc.
func (a CircularArc) EndPoint() Point {
	return a.Pos(a.Start + a.Sweep)
}

// Contains returns whether p is outside, on the boundary or inside the region enclosed by the arc and its chord.
func (a CircularArc) Contains(p Point) Inclusion {
	return CircularArcContainsPoint(a.Center, a.Radius, a.Start, a.Sweep, p, Epsilon)
}

func (a CircularArc) String() string {
	return "Arc" + a.Center.String() + "r" + ftos(a.Radius) + "[" + ftos(a.Start*180.0/math.Pi) + "+" + ftos(a.Sweep*180.0/math.Pi) + "]"
}

// EllipticalArc is the part of an ellipse starting at parametric angle Start that sweeps over Sweep radians, positive being CCW.
type EllipticalArc struct {
	Center Point
	RX, RY float64
	Angle  float64
	Start  float64
	Sweep  float64
}

// Sincos returns the sine and cosine of the ellipse's rotation.
func (a EllipticalArc) Sincos() (float64, float64) {
	return math.Sincos(a.Angle)
}

// Pos returns the position at parametric angle theta.
func (a EllipticalArc) Pos(theta float64) Point {
	sinphi, cosphi := a.Sincos()
	return ellipsePos(a.RX, a.RY, sinphi, cosphi, a.Center.X, a.Center.Y, theta)
}

// StartPoint returns the start of the arc.
func (a EllipticalArc) StartPoint() Point {
	return a.Pos(a.Start)
}

// EndPoint returns the end of the arc.
func (a EllipticalArc) EndPoint() Point {
	return a.Pos(a.Start + a.Sweep)
}

// Contains returns whether p is outside, on the boundary or inside the region enclosed by the arc and its chord.
func (a EllipticalArc) Contains(p Point) Inclusion {
	sinphi, cosphi := a.Sincos()
	return EllipticalArcContainsPoint(a.Center, a.RX, a.RY, sinphi, cosphi, a.Start, a.Sweep, p, Epsilon)
}

func (a EllipticalArc) String() string {
	return "Arc" + a.Center.String() + "r(" + ftos(a.RX) + "," + ftos(a.RY) + ")rot" + ftos(a.Angle*180.0/math.Pi) + "[" + ftos(a.Start*180.0/math.Pi) + "+" + ftos(a.Sweep*180.0/math.Pi) + "]"
}

////////////////////////////////////////////////////////////////

// Triangle is the triangle ABC.
type Triangle struct {
	A, B, C Point
}

// Contains returns whether p is outside, on the boundary or inside the triangle.
func (t Triangle) Contains(p Point) Inclusion {
	return TriangleContainsPoint(t.A, t.B, t.C, p, Epsilon)
}

func (t Triangle) String() string {
	return PolygonContour{t.A, t.B, t.C}.String()
}

// QuadraticBezier is a quadratic Bézier curve from P0 to P2 with control point P1.
type QuadraticBezier struct {
	P0, P1, P2 Point
}

// Pos returns the position at t.
func (q QuadraticBezier) Pos(t float64) Point {
	return quadraticBezierPos(q.P0, q.P1, q.P2, t)
}

// Polynomials returns the power-basis polynomials of the x and y coordinates.
func (q QuadraticBezier) Polynomials() (Polynomial, Polynomial) {
	return QuadraticBezierCoefficients(q.P0.X, q.P1.X, q.P2.X), QuadraticBezierCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
}

// Bounds returns the bounding box of the control points, which contains the curve.
func (q QuadraticBezier) Bounds() Rectangle {
	return rectangleFromCorners(MinPoint(q.P0, MinPoint(q.P1, q.P2)), MaxPoint(q.P0, MaxPoint(q.P1, q.P2)))
}

func (q QuadraticBezier) String() string {
	return "M" + ftos(q.P0.X) + " " + ftos(q.P0.Y) + "Q" + ftos(q.P1.X) + " " + ftos(q.P1.Y) + " " + ftos(q.P2.X) + " " + ftos(q.P2.Y)
}

// CubicBezier is a cubic Bézier curve from P0 to P3 with control points P1 and P2.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// Pos returns the position at t.
func (c CubicBezier) Pos(t float64) Point {
	return cubicBezierPos(c.P0, c.P1, c.P2, c.P3, t)
}

// Polynomials returns the power-basis polynomials of the x and y coordinates.
func (c CubicBezier) Polynomials() (Polynomial, Polynomial) {
	return CubicBezierCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X), CubicBezierCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
}

// Bounds returns the bounding box of the control points, which contains the curve.
func (c CubicBezier) Bounds() Rectangle {
	min := MinPoint(MinPoint(c.P0, c.P1), MinPoint(c.P2, c.P3))
	max := MaxPoint(MaxPoint(c.P0, c.P1), MaxPoint(c.P2, c.P3))
	return rectangleFromCorners(min, max)
}

// SelfIntersection returns the two parameters at which the curve crosses itself, or an empty slice.
func (c CubicBezier) SelfIntersection() []float64 {
	return CubicBezierSelfIntersectionIndexes(c.P0, c.P1, c.P2, c.P3, Epsilon)
}

func (c CubicBezier) String() string {
	return "M" + ftos(c.P0.X) + " " + ftos(c.P0.Y) + "C" + ftos(c.P1.X) + " " + ftos(c.P1.Y) + " " + ftos(c.P2.X) + " " + ftos(c.P2.Y) + " " + ftos(c.P3.X) + " " + ftos(c.P3.Y)
}

////////////////////////////////////////////////////////////////

// PolygonContour is a list of points that is implicitly closed, ie. the last point connects back to the first.
type PolygonContour []Point

// Bounds returns the bounding box.
func (p PolygonContour) Bounds() Rectangle {
	if len(p) == 0 {
		return Rectangle{}
	}
	min, max := p[0], p[0]
	for _, q := range p[1:] {
		min = MinPoint(min, q)
		max = MaxPoint(max, q)
	}
	return rectangleFromCorners(min, max)
}

// Edges returns the edges including the closing edge from the last to the first point.
func (p PolygonContour) Edges() []LineSegment {
	if len(p) < 2 {
		return nil
	}
	edges := make([]LineSegment, len(p))
	for i := range p {
		edges[i] = LineSegment{p[i], p[(i+1)%len(p)]}
	}
	return edges
}

// Area returns the signed area, positive for CCW contours.
func (p PolygonContour) Area() float64 {
	a := 0.0
	for i := range p {
		a += p[i].PerpDot(p[(i+1)%len(p)])
	}
	return a / 2.0
}

// Contains returns whether q is outside, on the boundary or inside the contour.
func (p PolygonContour) Contains(q Point) Inclusion {
	return PolygonContourContainsPoint(p, q, Epsilon)
}

func (p PolygonContour) String() string {
	sb := strings.Builder{}
	for i, q := range p {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(ftos(q.X))
		sb.WriteString(" ")
		sb.WriteString(ftos(q.Y))
	}
	if 0 < len(p) {
		sb.WriteString("z")
	}
	return sb.String()
}

// Polygon is a list of contours that together form a shape with the even-odd rule, eg. an outer contour with holes.
type Polygon []PolygonContour

// Bounds returns the bounding box.
func (p Polygon) Bounds() Rectangle {
	var r Rectangle
	first := true
	for _, contour := range p {
		if len(contour) == 0 {
			continue
		} else if first {
			r = contour.Bounds()
			first = false
		} else {
			r = r.Add(contour.Bounds())
		}
	}
	return r
}

// Contains returns whether q is outside, on the boundary or inside the polygon.
func (p Polygon) Contains(q Point) Inclusion {
	return PolygonContainsPoint(p, q, Epsilon)
}

func (p Polygon) String() string {
	sb := strings.Builder{}
	for _, contour := range p {
		sb.WriteString(contour.String())
	}
	return sb.String()
}
