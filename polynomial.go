package planar

import (
	"math"
	"sort"
	"strings"
)

// Polynomial is a polynomial in t where p[i] is the coefficient of t^i.
type Polynomial []float64

// Degree returns the polynomial's degree, ie. the index of the highest non-zero coefficient. The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; 0 <= i; i-- {
		if p[i] != 0.0 {
			return i
		}
	}
	return -1
}

// Coeff returns the coefficient of t^i, which is zero beyond the polynomial's length.
func (p Polynomial) Coeff(i int) float64 {
	if i < 0 || len(p) <= i {
		return 0.0
	}
	return p[i]
}

// SubConst returns a new polynomial p(t)-c.
func (p Polynomial) SubConst(c float64) Polynomial {
	q := make(Polynomial, len(p))
	copy(q, p)
	if len(q) == 0 {
		q = Polynomial{0.0}
	}
	q[0] -= c
	return q
}

// Trim returns the polynomial without its negligible high-order terms, ie. leading coefficients whose magnitude is at most epsilon times the magnitude of the largest coefficient.
func (p Polynomial) Trim(epsilon float64) Polynomial {
	max := 0.0
	for _, c := range p {
		max = math.Max(max, math.Abs(c))
	}
	n := len(p)
	for 0 < n && math.Abs(p[n-1]) <= epsilon*max {
		n--
	}
	return p[:n]
}

// Eval evaluates the polynomial at t using Horner's method.
func (p Polynomial) Eval(t float64) float64 {
	f := 0.0
	for i := len(p) - 1; 0 <= i; i-- {
		f = f*t + p[i]
	}
	return f
}

// Deriv returns the derivative dp/dt.
func (p Polynomial) Deriv() Polynomial {
	if len(p) < 2 {
		return Polynomial{}
	}
	q := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		q[i-1] = float64(i) * p[i]
	}
	return q
}

// Roots returns the real roots in ascending order, for polynomials up to degree three after trimming negligible leading terms relative to epsilon. Roots of multiplicity larger than one are returned once. The zero polynomial returns no roots.
func (p Polynomial) Roots(epsilon float64) []float64 {
	q := p.Trim(epsilon)
	var r0, r1, r2 float64
	switch len(q) {
	case 0, 1:
		return []float64{}
	case 2:
		r0, r1, r2 = -q[0]/q[1], math.NaN(), math.NaN()
	case 3:
		r0, r1 = solveQuadraticFormula(q[2], q[1], q[0])
		r2 = math.NaN()
	case 4:
		r0, r1, r2 = solveCubicFormula(q[3], q[2], q[1], q[0])
	default:
		panic("polynomial roots only implemented up to degree three")
	}

	roots := make([]float64, 0, 3)
	for _, r := range []float64{r0, r1, r2} {
		if !math.IsNaN(r) && !math.IsInf(r, 0) {
			roots = append(roots, r)
		}
	}
	sort.Float64s(roots)
	for i := 1; i < len(roots); i++ {
		if roots[i] == roots[i-1] {
			roots = append(roots[:i], roots[i+1:]...)
			i--
		}
	}
	return roots
}

func (p Polynomial) String() string {
	sb := strings.Builder{}
	for i := len(p) - 1; 0 <= i; i-- {
		if p[i] == 0.0 && 0 < sb.Len() {
			continue
		}
		if 0 < sb.Len() {
			if p[i] < 0.0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			sb.WriteString(ftos(math.Abs(p[i])))
		} else {
			sb.WriteString(ftos(p[i]))
		}
		if i == 1 {
			sb.WriteString("t")
		} else if 1 < i {
			sb.WriteString("t^")
			sb.WriteByte(byte('0' + i%10))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// solveQuadraticFormula returns the real roots of a*x^2 + b*x + c = 0 in ascending order, NaN marks a missing root.
// When every coefficient is zero it returns 0 as a representative root.
// See https://math.stackexchange.com/a/2007723 for the cancellation-free form.
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	switch {
	case a == 0.0 && b == 0.0 && c == 0.0:
		return 0.0, math.NaN()
	case a == 0.0 && b == 0.0:
		return math.NaN(), math.NaN()
	case a == 0.0:
		return -c / b, math.NaN()
	case b == 0.0 && c == 0.0:
		return 0.0, math.NaN()
	case c == 0.0:
		// x*(a*x + b) = 0
		return sortedRoots(0.0, -b/a)
	}

	d := b*b - 4.0*a*c
	if d < 0.0 {
		return math.NaN(), math.NaN()
	} else if d == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// take the root where -b and the square root share a sign, the other follows from x1*x2 = c/a
	q := -0.5 * (b + math.Copysign(math.Sqrt(d), b))
	return sortedRoots(q/a, c/q)
}

func sortedRoots(x1, x2 float64) (float64, float64) {
	if x2 < x1 {
		return x2, x1
	}
	return x1, x2
}

// solveCubicFormula returns the real roots of a*x^3 + b*x^2 + c*x + d = 0, lowest root first and NaN for missing roots.
// see https://www.trans4mind.com/personal_development/mathematics/polynomials/cubicAlgebra.htm
func solveCubicFormula(a, b, c, d float64) (float64, float64, float64) {
	if a == 0.0 {
		x1, x2 := solveQuadraticFormula(b, c, d)
		return x1, x2, math.NaN()
	}

	// normalize and substitute x = t - b/3 to obtain the depressed cubic t^3 + p*t + q = 0
	b /= a
	c /= a
	d /= a
	shift := b / 3.0
	p := c - b*b/3.0
	q := 2.0*b*b*b/27.0 - b*c/3.0 + d

	var x1, x2, x3 float64
	if p == 0.0 {
		// t^3 = -q
		x1, x2, x3 = math.Cbrt(-q)-shift, math.NaN(), math.NaN()
	} else if q == 0.0 {
		// t*(t^2 + p) = 0
		x1, x2, x3 = -shift, math.NaN(), math.NaN()
		if p < 0.0 {
			r := math.Sqrt(-p)
			x2, x3 = r-shift, -r-shift
		}
	} else {
		discriminant := q*q/4.0 + p*p*p/27.0
		if discriminant < 0.0 {
			// three distinct real roots, use the trigonometric method
			r := 2.0 * math.Sqrt(-p/3.0)
			arg := 3.0 * q / (p * r)
			phi := math.Acos(math.Max(-1.0, math.Min(1.0, arg))) / 3.0
			x1 = r*math.Cos(phi) - shift
			x2 = r*math.Cos(phi-2.0*math.Pi/3.0) - shift
			x3 = r*math.Cos(phi-4.0*math.Pi/3.0) - shift
		} else if discriminant == 0.0 {
			// a double root and a single root
			u := math.Cbrt(-q / 2.0)
			x1, x2, x3 = 2.0*u-shift, -u-shift, math.NaN()
		} else {
			// one real root, Cardano's formula
			sd := math.Sqrt(discriminant)
			x1, x2, x3 = math.Cbrt(-q/2.0+sd)+math.Cbrt(-q/2.0-sd)-shift, math.NaN(), math.NaN()
		}
	}

	// sort, with NaNs last
	if math.IsNaN(x1) || !math.IsNaN(x2) && x2 < x1 {
		x1, x2 = x2, x1
	}
	if math.IsNaN(x2) || !math.IsNaN(x3) && x3 < x2 {
		x2, x3 = x3, x2
	}
	if math.IsNaN(x1) || !math.IsNaN(x2) && x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2, x3
}

// find value x for which f(x) = y in the interval x in [xmin, xmax] using the bisection method, f must be monotonic in the interval
func bisectionMethod(f func(float64) float64, y, xmin, xmax, tolerance float64) float64 {
	const MaxIterations = 100

	increasing := f(xmin) <= f(xmax)
	var x float64
	for n := 0; n < MaxIterations; n++ {
		x = (xmin + xmax) / 2.0
		dy := f(x) - y
		if math.Abs(xmax-xmin)/2.0 < tolerance || dy == 0.0 {
			return x
		} else if (0.0 < dy) == increasing {
			xmax = x
		} else {
			xmin = x
		}
	}
	return x // MaxIterations reached
}
