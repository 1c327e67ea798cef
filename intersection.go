package planar

import (
	"fmt"
	"math"
	"strings"
)

// IntersectionState describes how two shapes meet.
type IntersectionState int

// see IntersectionState
const (
	NoIntersection IntersectionState = iota
	Crossing   // the shapes cross in one or more points
	Tangent    // the shapes touch without crossing, eg. at the end point of a segment
	Parallel   // the shapes are parallel and do not meet
	Coincident // the shapes overlap along a stretch, the points delimit the overlap
)

func (state IntersectionState) String() string {
	switch state {
	case NoIntersection:
		return "NoIntersection"
	case Crossing:
		return "Crossing"
	case Tangent:
		return "Tangent"
	case Parallel:
		return "Parallel"
	case Coincident:
		return "Coincident"
	}
	return fmt.Sprintf("IntersectionState(%d)", int(state))
}

// Intersection is the result of intersecting two shapes. Points is empty iff State is NoIntersection or Parallel.
type Intersection struct {
	State  IntersectionState
	Points []Point
}

// Equals returns true if both the states and the ordered points are equal, with points compared with tolerance Epsilon.
func (z Intersection) Equals(q Intersection) bool {
	if z.State != q.State || len(z.Points) != len(q.Points) {
		return false
	}
	for i := range z.Points {
		if !z.Points[i].Equals(q.Points[i]) {
			return false
		}
	}
	return true
}

func (z Intersection) String() string {
	sb := strings.Builder{}
	sb.WriteString(z.State.String())
	for _, p := range z.Points {
		sb.WriteString(" ")
		sb.WriteString(p.String())
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

type linearKind int

const (
	lineKind linearKind = iota
	rayKind
	segmentKind
)

// linear is a line, ray or segment parametrized as origin + t*dir, where segments have t in [0,1] and rays have t >= 0.
type linear struct {
	kind   linearKind
	origin Point
	dir    Point
}

func toLinear(s Shape) (linear, bool) {
	switch s := s.(type) {
	case Line:
		return linear{lineKind, s.Origin, s.Direction}, true
	case Ray:
		return linear{rayKind, s.Origin, s.Direction}, true
	case LineSegment:
		return linear{segmentKind, s.A, s.Direction()}, true
	}
	return linear{}, false
}

func (l linear) pos(t float64) Point {
	return l.origin.Add(l.dir.Mul(t))
}

// bounds returns the parameter range, which may be infinite.
func (l linear) bounds() (float64, float64) {
	switch l.kind {
	case rayKind:
		return 0.0, math.Inf(1)
	case segmentKind:
		return 0.0, 1.0
	}
	return math.Inf(-1), math.Inf(1)
}

func (l linear) inRange(t, epsilon float64) bool {
	lo, hi := l.bounds()
	return lo-epsilon <= t && t <= hi+epsilon
}

func (l linear) clamp(t float64) float64 {
	lo, hi := l.bounds()
	return math.Max(lo, math.Min(hi, t))
}

// atEnd returns true if t is at one of the end points.
func (l linear) atEnd(t, epsilon float64) bool {
	lo, hi := l.bounds()
	return Equal(t, lo, epsilon) || Equal(t, hi, epsilon)
}

func (l linear) contains(p Point, epsilon float64) bool {
	switch l.kind {
	case rayKind:
		return PointRayIntersects(p, l.origin, l.dir, epsilon)
	case segmentKind:
		return PointLineSegmentIntersects(p, l.origin, l.origin.Add(l.dir), epsilon)
	}
	return PointLineIntersects(p, l.origin, l.dir, epsilon)
}

// project returns the parameter of the point on the carrier line closest to p.
func (l linear) project(p Point) float64 {
	d2 := l.dir.Dot(l.dir)
	if d2 == 0.0 {
		return 0.0
	}
	return p.Sub(l.origin).Dot(l.dir) / d2
}

// intersectLinear returns the parameters along a and b where they meet. Parallel primitives are either disjoint or overlap, in which case the overlap's finite end points are returned.
func intersectLinear(a, b linear, epsilon float64) ([]float64, []float64, IntersectionState) {
	det, s, t := solveLinear(a.dir, b.dir, b.origin.Sub(a.origin))
	if math.Abs(det) <= epsilon {
		return coincidentLinear(a, b, epsilon)
	} else if !a.inRange(s, epsilon) || !b.inRange(t, epsilon) {
		return []float64{}, []float64{}, NoIntersection
	}

	s, t = a.clamp(s), b.clamp(t)
	state := Crossing
	if a.atEnd(s, epsilon) || b.atEnd(t, epsilon) {
		state = Tangent
	}
	return []float64{s}, []float64{t}, state
}

// coincidentLinear handles parallel primitives. The overlap is computed in a's parametrization by mapping b's range onto it.
func coincidentLinear(a, b linear, epsilon float64) ([]float64, []float64, IntersectionState) {
	if a.dir.IsZero() || b.dir.IsZero() {
		// at least one is a point
		if a.dir.IsZero() {
			if !b.contains(a.origin, epsilon) {
				return []float64{}, []float64{}, NoIntersection
			}
			return []float64{0.0}, []float64{b.clamp(b.project(a.origin))}, Crossing
		} else if !a.contains(b.origin, epsilon) {
			return []float64{}, []float64{}, NoIntersection
		}
		return []float64{a.clamp(a.project(b.origin))}, []float64{0.0}, Crossing
	} else if !PointLineIntersects(b.origin, a.origin, a.dir, epsilon) {
		return []float64{}, []float64{}, Parallel
	}

	// b(t) lies at a's parameter u0 + k*t
	u0 := a.project(b.origin)
	k := b.dir.Dot(a.dir) / a.dir.Dot(a.dir)
	tlo, thi := b.bounds()
	ulo, uhi := u0+k*tlo, u0+k*thi
	if k < 0.0 {
		ulo, uhi = uhi, ulo
	}
	alo, ahi := a.bounds()
	lo, hi := math.Max(alo, ulo), math.Min(ahi, uhi)
	tolerance := epsilon / a.dir.Length()
	if hi < lo-tolerance {
		return []float64{}, []float64{}, Parallel
	} else if math.IsInf(lo, 0) && math.IsInf(hi, 0) {
		// two coinciding lines, report the origin of a
		return []float64{0.0}, []float64{b.project(a.origin)}, Coincident
	}

	state := Coincident
	us := []float64{}
	if !math.IsInf(lo, 0) {
		us = append(us, lo)
	}
	if !math.IsInf(hi, 0) && (len(us) == 0 || tolerance < hi-lo) {
		us = append(us, hi)
	}
	if len(us) == 1 && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
		// touching at the end points
		state = Tangent
	}

	ta := make([]float64, 0, len(us))
	tb := make([]float64, 0, len(us))
	for _, u := range us {
		ta = append(ta, u)
		tb = append(tb, b.clamp((u-u0)/k))
	}
	return ta, tb, state
}

func pointLinearIndexes(p Point, l linear, epsilon float64) ([]float64, []float64) {
	if !l.contains(p, epsilon) {
		return []float64{}, []float64{}
	}
	return []float64{0.0}, []float64{l.clamp(l.project(p))}
}

// PointLineIntersectionIndexes returns ta = {0} and the parameter along the line through origin along dir where p lies, or empty slices.
func PointLineIntersectionIndexes(p, origin, dir Point, epsilon float64) ([]float64, []float64) {
	return pointLinearIndexes(p, linear{lineKind, origin, dir}, epsilon)
}

// PointRayIntersectionIndexes returns ta = {0} and the parameter along the ray from origin along dir where p lies, or empty slices.
func PointRayIntersectionIndexes(p, origin, dir Point, epsilon float64) ([]float64, []float64) {
	return pointLinearIndexes(p, linear{rayKind, origin, dir}, epsilon)
}

// PointLineSegmentIntersectionIndexes returns ta = {0} and the parameter along the segment AB where p lies, or empty slices.
func PointLineSegmentIntersectionIndexes(p, a, b Point, epsilon float64) ([]float64, []float64) {
	return pointLinearIndexes(p, linear{segmentKind, a, b.Sub(a)}, epsilon)
}

// LineLineIntersectionIndexes returns the parameters along both lines where they cross. Coinciding lines return the origin of the first line.
func LineLineIntersectionIndexes(origin0, dir0, origin1, dir1 Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{lineKind, origin0, dir0}, linear{lineKind, origin1, dir1}, epsilon)
	return ta, tb
}

// LineRayIntersectionIndexes returns the parameters along the line and the ray where they cross.
func LineRayIntersectionIndexes(origin0, dir0, origin1, dir1 Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{lineKind, origin0, dir0}, linear{rayKind, origin1, dir1}, epsilon)
	return ta, tb
}

// LineLineSegmentIntersectionIndexes returns the parameters along the line and the segment AB where they cross.
func LineLineSegmentIntersectionIndexes(origin, dir, a, b Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{lineKind, origin, dir}, linear{segmentKind, a, b.Sub(a)}, epsilon)
	return ta, tb
}

// RayRayIntersectionIndexes returns the parameters along both rays where they cross.
func RayRayIntersectionIndexes(origin0, dir0, origin1, dir1 Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{rayKind, origin0, dir0}, linear{rayKind, origin1, dir1}, epsilon)
	return ta, tb
}

// RayLineSegmentIntersectionIndexes returns the parameters along the ray and the segment AB where they cross.
func RayLineSegmentIntersectionIndexes(origin, dir, a, b Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{rayKind, origin, dir}, linear{segmentKind, a, b.Sub(a)}, epsilon)
	return ta, tb
}

// LineSegmentLineSegmentIntersectionIndexes returns the parameters along the segments A0A1 and B0B1 where they cross. Overlapping segments return the end points of the overlap.
func LineSegmentLineSegmentIntersectionIndexes(a0, a1, b0, b1 Point, epsilon float64) ([]float64, []float64) {
	ta, tb, _ := intersectLinear(linear{segmentKind, a0, a1.Sub(a0)}, linear{segmentKind, b0, b1.Sub(b0)}, epsilon)
	return ta, tb
}

// CubicBezierSelfIntersectionIndexes returns the two parameters in [0,1] at which the cubic Bézier P0-P1-P2-P3 crosses itself, in increasing order, or an empty slice if it doesn't.
func CubicBezierSelfIntersectionIndexes(p0, p1, p2, p3 Point, epsilon float64) []float64 {
	// X(t) = a*t^3 + b*t^2 + c*t + d and Y(t) = p*t^3 + q*t^2 + r*t + s
	px := CubicBezierCoefficients(p0.X, p1.X, p2.X, p3.X)
	py := CubicBezierCoefficients(p0.Y, p1.Y, p2.Y, p3.Y)
	a, b, c := px[3], px[2], px[1]
	p, q, r := py[3], py[2], py[1]

	// for a crossing at t1 != t2, dividing X(t1)-X(t2) = 0 by t1-t2 gives a*(u^2-v) + b*u + c = 0 with u = t1+t2 and v = t1*t2, and likewise for Y
	den := p*b - a*q
	if math.Abs(den) <= epsilon {
		return []float64{}
	}
	u := (a*r - p*c) / den
	var v float64
	if math.Abs(p) <= math.Abs(a) {
		v = u*u + (b*u+c)/a
	} else {
		v = u*u + (q*u+r)/p
	}

	// the resolvent (z-u/2)*(z^2-u*z+v) has roots t1, t2 and their midpoint
	h := u / 2.0
	roots := Polynomial{-h * v, v + h*u, -(u + h), 1.0}.Roots(epsilon)
	if len(roots) != 3 || roots[2]-roots[0] <= epsilon {
		return []float64{}
	}
	t1, t2 := roots[0], roots[2]
	if !Interval(t1, 0.0, 1.0, epsilon) || !Interval(t2, 0.0, 1.0, epsilon) {
		return []float64{}
	}
	return []float64{math.Max(0.0, t1), math.Min(1.0, t2)}
}

////////////////////////////////////////////////////////////////

// IntersectionIndexes returns the parameters along a and b at which they intersect, for points, lines, rays and line segments. Other combinations, such as a cubic Bézier with another cubic Bézier or a quadratic Bézier with a line, return an error wrapping ErrUnsupported.
func IntersectionIndexes(a, b Shape, epsilon float64) ([]float64, []float64, error) {
	ta, tb, _, err := intersectionIndexes(a, b, epsilon)
	return ta, tb, err
}

func intersectionIndexes(a, b Shape, epsilon float64) ([]float64, []float64, IntersectionState, error) {
	pa, aIsPoint := a.(Point)
	pb, bIsPoint := b.(Point)
	la, aIsLinear := toLinear(a)
	lb, bIsLinear := toLinear(b)
	switch {
	case aIsPoint && bIsPoint:
		if !PointPointIntersects(pa, pb, epsilon) {
			return []float64{}, []float64{}, NoIntersection, nil
		}
		return []float64{0.0}, []float64{0.0}, Crossing, nil
	case aIsPoint && bIsLinear:
		ta, tb := pointLinearIndexes(pa, lb, epsilon)
		return ta, tb, pointState(ta), nil
	case aIsLinear && bIsPoint:
		tb, ta := pointLinearIndexes(pb, la, epsilon)
		return ta, tb, pointState(ta), nil
	case aIsLinear && bIsLinear:
		ta, tb, state := intersectLinear(la, lb, epsilon)
		return ta, tb, state, nil
	}
	return nil, nil, NoIntersection, unsupported("intersection indexes", a, b)
}

func pointState(ts []float64) IntersectionState {
	if len(ts) == 0 {
		return NoIntersection
	}
	return Crossing
}

// Intersect intersects two shapes and returns the state and the points of intersection, ordered along a.
func Intersect(a, b Shape, epsilon float64) (Intersection, error) {
	ta, _, state, err := intersectionIndexes(a, b, epsilon)
	if err != nil {
		return Intersection{}, err
	}
	points := make([]Point, 0, len(ta))
	for _, t := range ta {
		if p, ok := a.(Point); ok {
			points = append(points, p)
		} else if l, ok := toLinear(a); ok {
			points = append(points, l.pos(t))
		}
	}
	return Intersection{state, points}, nil
}
