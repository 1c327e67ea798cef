package planar

import (
	"math"
	"strconv"
)

// Epsilon is the default tolerance used by the convenience methods on shapes. All engine functions take the tolerance explicitly.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance epsilon.
func Equal(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Interval returns true if f is in the closed interval [lower-epsilon,upper+epsilon] where lower and upper may be given in any order.
func Interval(f, lower, upper, epsilon float64) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	return lower-epsilon <= f && f <= upper+epsilon
}

// IntervalExclusive returns true if f is in the open interval (lower+epsilon,upper-epsilon) where lower and upper may be given in any order.
func IntervalExclusive(f, lower, upper, epsilon float64) bool {
	if upper < lower {
		lower, upper = upper, lower
	}
	return lower+epsilon < f && f < upper-epsilon
}

// sign returns -1, 0 or 1 for negative, zero (within epsilon) or positive values respectively.
func sign(f, epsilon float64) int {
	if f < -epsilon {
		return -1
	} else if epsilon < f {
		return 1
	}
	return 0
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// angleInSweep is true when theta lies on the arc starting at start that sweeps over sweep radians (positive is CCW), including the end points.
func angleInSweep(theta, start, sweep, epsilon float64) bool {
	if 2.0*math.Pi-epsilon <= math.Abs(sweep) {
		return true
	}
	d := angleNorm(theta - start)
	if sweep < 0.0 {
		d = angleNorm(start - theta)
	}
	return d <= math.Abs(sweep)+epsilon || 2.0*math.Pi-epsilon <= d
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', 5, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Origin is the coordinate system's origin.
var Origin = Point{0.0, 0.0}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return p.EqualsEps(q, Epsilon)
}

// EqualsEps returns true if P and Q are equal with tolerance epsilon.
func (p Point) EqualsEps(q Point, epsilon float64) bool {
	return Equal(p.X, q.X, epsilon) && Equal(p.Y, q.Y, epsilon)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Div divides x and y by f.
func (p Point) Div(f float64) Point {
	return Point{p.X / f, p.Y / f}
}

// Rot rotates the line OP by phi radians CCW around p0.
func (p Point) Rot(phi float64, p0 Point) Point {
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		p0.X + cosphi*(p.X-p0.X) - sinphi*(p.Y-p0.Y),
		p0.Y + sinphi*(p.X-p0.X) + cosphi*(p.Y-p0.Y),
	}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular. It is the determinant of the 2x2 matrix [OP OQ].
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return "(" + ftos(p.X) + "," + ftos(p.Y) + ")"
}

// MinPoint returns the component-wise minimum of P and Q, ie. the lower-left corner of the box they span.
func MinPoint(p, q Point) Point {
	return Point{math.Min(p.X, q.X), math.Min(p.Y, q.Y)}
}

// MaxPoint returns the component-wise maximum of P and Q, ie. the upper-right corner of the box they span.
func MaxPoint(p, q Point) Point {
	return Point{math.Max(p.X, q.X), math.Max(p.Y, q.Y)}
}

// crossProduct returns the cross product (a-o)x(b-o), positive when o, a, b turn CCW.
func crossProduct(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

////////////////////////////////////////////////////////////////

// solveLinear solves the 2x2 system s*da - t*db = d, ie. it finds where the lines a0+s*da and b0+t*db meet with d = b0-a0. It returns the determinant of [da db], and s and t are only valid when the determinant is not (nearly) zero.
func solveLinear(da, db, d Point) (float64, float64, float64) {
	det := da.PerpDot(db)
	if det == 0.0 {
		return 0.0, math.NaN(), math.NaN()
	}
	s := d.PerpDot(db) / det
	t := d.PerpDot(da) / det
	return det, s, t
}
