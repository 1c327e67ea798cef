package planar

import "math"

// QuadraticBezierCoefficients returns the power-basis polynomial of one coordinate of a quadratic Bézier with control values p0, p1 and p2.
func QuadraticBezierCoefficients(p0, p1, p2 float64) Polynomial {
	return Polynomial{
		p0,
		2.0 * (p1 - p0),
		p0 - 2.0*p1 + p2,
	}
}

// CubicBezierCoefficients returns the power-basis polynomial of one coordinate of a cubic Bézier with control values p0, p1, p2 and p3.
func CubicBezierCoefficients(p0, p1, p2, p3 float64) Polynomial {
	return Polynomial{
		p0,
		3.0 * (p1 - p0),
		3.0 * (p0 - 2.0*p1 + p2),
		p3 - 3.0*p2 + 3.0*p1 - p0,
	}
}

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 2.0*t + t*t)
	p1 = p1.Mul(2.0*t - 2.0*t*t)
	p2 = p2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// monotoneSplits returns the parameters in (0,1) at which the polynomial's derivative changes sign, ie. where a Bézier coordinate has its extrema. The result is sorted and bounded by 0 and 1.
func monotoneSplits(p Polynomial, epsilon float64) []float64 {
	ts := []float64{0.0}
	for _, t := range p.Deriv().Roots(epsilon) {
		if 0.0 < t && t < 1.0 {
			ts = append(ts, t)
		}
	}
	return append(ts, 1.0)
}

// cardinalToCubicBeziers converts a cardinal spline that starts at start and runs through pts into cubic Béziers. The tension is the GDI+ convention where 0.5 approximates a Catmull-Rom spline and 0 gives straight lines. The end tangents reuse the end points.
func cardinalToCubicBeziers(start Point, pts []Point, tension float64) []CubicBezier {
	if len(pts) == 0 {
		return nil
	}
	knots := make([]Point, 0, len(pts)+1)
	knots = append(knots, start)
	knots = append(knots, pts...)

	f := tension / 3.0
	beziers := make([]CubicBezier, 0, len(knots)-1)
	for i := 0; i+1 < len(knots); i++ {
		prev := knots[max(i-1, 0)]
		next := knots[min(i+2, len(knots)-1)]
		p0, p3 := knots[i], knots[i+1]
		p1 := p0.Add(p3.Sub(prev).Mul(f))
		p2 := p3.Sub(next.Sub(p0).Mul(f))
		beziers = append(beziers, CubicBezier{p0, p1, p2, p3})
	}
	return beziers
}

// bezierRootsInUnit returns the roots of p(t) = 0 for t in [0,1] with tolerance epsilon, snapped to 0 and 1 near the ends.
func bezierRootsInUnit(p Polynomial, epsilon float64) []float64 {
	roots := p.Roots(epsilon)
	ts := roots[:0]
	for _, t := range roots {
		if Interval(t, 0.0, 1.0, epsilon) {
			ts = append(ts, math.Max(0.0, math.Min(1.0, t)))
		}
	}
	return ts
}
