package planar

import (
	"math"
)

// PointPointIntersects returns true if p and q are equal.
func PointPointIntersects(p, q Point, epsilon float64) bool {
	return p.EqualsEps(q, epsilon)
}

// PointLineSegmentIntersects returns true if p lies on the line segment AB.
func PointLineSegmentIntersects(p, a, b Point, epsilon float64) bool {
	if !Interval(p.X, a.X, b.X, epsilon) || !Interval(p.Y, a.Y, b.Y, epsilon) {
		return false
	}
	// the perpendicular distance to AB is cross/|AB|
	return math.Abs(crossProduct(a, b, p)) <= epsilon*b.Sub(a).Length()
}

// PointRayIntersects returns true if p lies on the ray from origin along dir.
func PointRayIntersects(p, origin, dir Point, epsilon float64) bool {
	length := dir.Length()
	if length == 0.0 {
		return p.EqualsEps(origin, epsilon)
	}
	d := p.Sub(origin)
	return math.Abs(dir.PerpDot(d)) <= epsilon*length && -epsilon*length <= dir.Dot(d)
}

// PointLineIntersects returns true if p lies on the line through origin along dir.
func PointLineIntersects(p, origin, dir Point, epsilon float64) bool {
	length := dir.Length()
	if length == 0.0 {
		return p.EqualsEps(origin, epsilon)
	}
	return math.Abs(dir.PerpDot(p.Sub(origin))) <= epsilon*length
}

// PointRectangleIntersects returns true if p lies inside or on the boundary of the rectangle at (x,y) with size (w,h).
func PointRectangleIntersects(p Point, x, y, w, h, epsilon float64) bool {
	return RectangleContainsPoint(x, y, w, h, p, epsilon) != Outside
}

// LineSegmentLineSegmentIntersects returns true if the line segments A0A1 and B0B1 touch or cross. Parallel segments intersect when one has an end point on the other.
func LineSegmentLineSegmentIntersects(a0, a1, b0, b1 Point, epsilon float64) bool {
	det, s, t := solveLinear(a1.Sub(a0), b1.Sub(b0), b0.Sub(a0))
	if math.Abs(det) <= epsilon {
		return PointLineSegmentIntersects(a0, b0, b1, epsilon) || PointLineSegmentIntersects(a1, b0, b1, epsilon) ||
			PointLineSegmentIntersects(b0, a0, a1, epsilon) || PointLineSegmentIntersects(b1, a0, a1, epsilon)
	}
	return Interval(s, 0.0, 1.0, epsilon) && Interval(t, 0.0, 1.0, epsilon)
}

// LineSegmentRectangleIntersects returns true if the line segment AB touches or lies within the rectangle at (x,y) with size (w,h).
func LineSegmentRectangleIntersects(a, b Point, x, y, w, h, epsilon float64) bool {
	if PointRectangleIntersects(a, x, y, w, h, epsilon) || PointRectangleIntersects(b, x, y, w, h, epsilon) {
		return true
	}
	return rectangleDiagonalsIntersect(linear{segmentKind, a, b.Sub(a)}, Rectangle{x, y, w, h}, epsilon)
}

// RayRectangleIntersects returns true if the ray from origin along dir touches or starts within the rectangle at (x,y) with size (w,h).
func RayRectangleIntersects(origin, dir Point, x, y, w, h, epsilon float64) bool {
	if PointRectangleIntersects(origin, x, y, w, h, epsilon) {
		return true
	}
	return rectangleDiagonalsIntersect(linear{rayKind, origin, dir}, Rectangle{x, y, w, h}, epsilon)
}

// LineRectangleIntersects returns true if the line through origin along dir touches the rectangle at (x,y) with size (w,h).
func LineRectangleIntersects(origin, dir Point, x, y, w, h, epsilon float64) bool {
	return rectangleDiagonalsIntersect(linear{lineKind, origin, dir}, Rectangle{x, y, w, h}, epsilon)
}

// rectangleDiagonalsIntersect returns true if l crosses either of the rectangle's diagonals. A line that cuts through a rectangle always separates two opposite corners, so checking the diagonals suffices for lines, and for rays and segments that do not start inside the rectangle.
func rectangleDiagonalsIntersect(l linear, r Rectangle, epsilon float64) bool {
	d0, d1 := r.Diagonals()
	for _, d := range []LineSegment{d0, d1} {
		if ta, _, _ := intersectLinear(l, linear{segmentKind, d.A, d.Direction()}, epsilon); 0 < len(ta) {
			return true
		}
	}
	return false
}

// RectangleRectangleIntersects returns true if the two rectangles overlap or touch.
func RectangleRectangleIntersects(x0, y0, w0, h0, x1, y1, w1, h1, epsilon float64) bool {
	r0, r1 := Rectangle{x0, y0, w0, h0}, Rectangle{x1, y1, w1, h1}
	min0, max0 := r0.Min(), r0.Max()
	min1, max1 := r1.Min(), r1.Max()
	return min0.X <= max1.X+epsilon && min1.X <= max0.X+epsilon && min0.Y <= max1.Y+epsilon && min1.Y <= max0.Y+epsilon
}

// CircleCircleIntersects returns true if the circles' boundaries touch or cross, including when they coincide. Circles of zero radius never intersect.
func CircleCircleIntersects(c0 Point, r0 float64, c1 Point, r1 float64, epsilon float64) bool {
	r0, r1 = math.Abs(r0), math.Abs(r1)
	if r0 == 0.0 || r1 == 0.0 {
		return false
	}
	d := c1.Sub(c0).Length()
	return Interval(d, math.Abs(r0-r1), r0+r1, epsilon)
}

// RectangleQuadraticBezierIntersects returns true if the quadratic Bézier P0-P1-P2 touches or lies within the rectangle at (x,y) with size (w,h).
func RectangleQuadraticBezierIntersects(x, y, w, h float64, p0, p1, p2 Point, epsilon float64) bool {
	px := QuadraticBezierCoefficients(p0.X, p1.X, p2.X)
	py := QuadraticBezierCoefficients(p0.Y, p1.Y, p2.Y)
	return rectangleBezierIntersects(Rectangle{x, y, w, h}, px, py, p0, p2, epsilon)
}

// RectangleCubicBezierIntersects returns true if the cubic Bézier P0-P1-P2-P3 touches or lies within the rectangle at (x,y) with size (w,h).
func RectangleCubicBezierIntersects(x, y, w, h float64, p0, p1, p2, p3 Point, epsilon float64) bool {
	px := CubicBezierCoefficients(p0.X, p1.X, p2.X, p3.X)
	py := CubicBezierCoefficients(p0.Y, p1.Y, p2.Y, p3.Y)
	return rectangleBezierIntersects(Rectangle{x, y, w, h}, px, py, p0, p3, epsilon)
}

// rectangleBezierIntersects checks whether the curve starts or ends inside the rectangle, and otherwise whether it crosses one of the axis-aligned edges, which is a root finding problem in one coordinate.
func rectangleBezierIntersects(r Rectangle, px, py Polynomial, start, end Point, epsilon float64) bool {
	if PointRectangleIntersects(start, r.X, r.Y, r.W, r.H, epsilon) || PointRectangleIntersects(end, r.X, r.Y, r.W, r.H, epsilon) {
		return true
	}
	min, max := r.Min(), r.Max()
	for _, x := range []float64{min.X, max.X} {
		for _, t := range bezierRootsInUnit(px.SubConst(x), epsilon) {
			if Interval(py.Eval(t), min.Y, max.Y, epsilon) {
				return true
			}
		}
	}
	for _, y := range []float64{min.Y, max.Y} {
		for _, t := range bezierRootsInUnit(py.SubConst(y), epsilon) {
			if Interval(px.Eval(t), min.X, max.X, epsilon) {
				return true
			}
		}
	}
	return false
}

// PolygonContourRectangleIntersects returns true if the area enclosed by the contour and the rectangle at (x,y) with size (w,h) overlap or touch.
func PolygonContourRectangleIntersects(contour PolygonContour, x, y, w, h, epsilon float64) bool {
	return PolygonRectangleIntersects(Polygon{contour}, x, y, w, h, epsilon)
}

// PolygonRectangleIntersects returns true if the area enclosed by the polygon and the rectangle at (x,y) with size (w,h) overlap or touch. A rectangle that lies within a hole does not intersect.
func PolygonRectangleIntersects(polygon Polygon, x, y, w, h, epsilon float64) bool {
	for _, contour := range polygon {
		for i, p := range contour {
			if PointRectangleIntersects(p, x, y, w, h, epsilon) {
				return true
			} else if 1 < len(contour) && LineSegmentRectangleIntersects(p, contour[(i+1)%len(contour)], x, y, w, h, epsilon) {
				return true
			}
		}
	}

	// the rectangle may lie entirely inside the polygon
	for _, c := range (Rectangle{x, y, w, h}).Corners() {
		if PolygonContainsPoint(polygon, c, epsilon) != Outside {
			return true
		}
	}
	return false
}

////////////////////////////////////////////////////////////////

// Intersects returns true if the two shapes touch or cross. It returns an error wrapping ErrUnsupported for combinations that have no implementation, which must not be mistaken for a negative result.
func Intersects(a, b Shape, epsilon float64) (bool, error) {
	if intersectsOrder(b) < intersectsOrder(a) {
		a, b = b, a
	}

	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Point:
			return PointPointIntersects(a, b, epsilon), nil
		case LineSegment:
			return PointLineSegmentIntersects(a, b.A, b.B, epsilon), nil
		case Ray:
			return PointRayIntersects(a, b.Origin, b.Direction, epsilon), nil
		case Line:
			return PointLineIntersects(a, b.Origin, b.Direction, epsilon), nil
		case Rectangle:
			return PointRectangleIntersects(a, b.X, b.Y, b.W, b.H, epsilon), nil
		}
	case LineSegment:
		switch b := b.(type) {
		case LineSegment:
			return LineSegmentLineSegmentIntersects(a.A, a.B, b.A, b.B, epsilon), nil
		case Rectangle:
			return LineSegmentRectangleIntersects(a.A, a.B, b.X, b.Y, b.W, b.H, epsilon), nil
		}
	case Ray:
		if b, ok := b.(Rectangle); ok {
			return RayRectangleIntersects(a.Origin, a.Direction, b.X, b.Y, b.W, b.H, epsilon), nil
		}
	case Line:
		if b, ok := b.(Rectangle); ok {
			return LineRectangleIntersects(a.Origin, a.Direction, b.X, b.Y, b.W, b.H, epsilon), nil
		}
	case Rectangle:
		switch b := b.(type) {
		case Rectangle:
			return RectangleRectangleIntersects(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H, epsilon), nil
		case QuadraticBezier:
			return RectangleQuadraticBezierIntersects(a.X, a.Y, a.W, a.H, b.P0, b.P1, b.P2, epsilon), nil
		case CubicBezier:
			return RectangleCubicBezierIntersects(a.X, a.Y, a.W, a.H, b.P0, b.P1, b.P2, b.P3, epsilon), nil
		case PolygonContour:
			return PolygonContourRectangleIntersects(b, a.X, a.Y, a.W, a.H, epsilon), nil
		case Polygon:
			return PolygonRectangleIntersects(b, a.X, a.Y, a.W, a.H, epsilon), nil
		}
	case Circle:
		if b, ok := b.(Circle); ok {
			return CircleCircleIntersects(a.Center, a.Radius, b.Center, b.Radius, epsilon), nil
		}
	}

	// remaining pairs of lines, rays and segments are answered by the parametrized engine
	if la, ok := toLinear(a); ok {
		if lb, ok := toLinear(b); ok {
			ta, _, _ := intersectLinear(la, lb, epsilon)
			return 0 < len(ta), nil
		}
	}
	return false, unsupported("intersects", a, b)
}

// intersectsOrder sorts the shapes of a pair so that each combination is handled once.
func intersectsOrder(s Shape) int {
	switch s.(type) {
	case Point:
		return 0
	case LineSegment:
		return 1
	case Ray:
		return 2
	case Line:
		return 3
	case Rectangle:
		return 4
	case Circle:
		return 5
	case QuadraticBezier:
		return 6
	case CubicBezier:
		return 7
	case PolygonContour:
		return 8
	case Polygon:
		return 9
	}
	return 10
}
