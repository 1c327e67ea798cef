package planar

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPolynomial(t *testing.T) {
	p := Polynomial{1.0, -3.0, 2.0}
	test.T(t, p.Degree(), 2)
	test.T(t, Polynomial{1.0, 0.0, 0.0}.Degree(), 0)
	test.T(t, Polynomial{}.Degree(), -1)
	test.Float(t, p.Coeff(1), -3.0)
	test.Float(t, p.Coeff(5), 0.0)
	test.Float(t, p.Eval(2.0), 3.0)
	test.T(t, p.Deriv(), Polynomial{-3.0, 4.0})
	test.T(t, p.SubConst(1.0), Polynomial{0.0, -3.0, 2.0})
	test.T(t, p, Polynomial{1.0, -3.0, 2.0}) // unchanged
	test.T(t, Polynomial{1.0, 2.0, 1e-14}.Trim(Epsilon), Polynomial{1.0, 2.0})
	test.T(t, Polynomial{0.0, 0.0}.Trim(Epsilon), Polynomial{})
	test.String(t, p.String(), "2t^2 - 3t + 1")
	test.String(t, Polynomial{}.String(), "0")
}

func TestPolynomialRoots(t *testing.T) {
	var tests = []struct {
		p     Polynomial
		roots []float64
	}{
		{Polynomial{}, []float64{}},
		{Polynomial{1.0}, []float64{}},
		{Polynomial{-2.0, 1.0}, []float64{2.0}},
		{Polynomial{2.0, -3.0, 1.0}, []float64{1.0, 2.0}},
		{Polynomial{1.0, -2.0, 1.0}, []float64{1.0}},
		{Polynomial{1.0, 0.0, 1.0}, []float64{}},
		{Polynomial{-6.0, 11.0, -6.0, 1.0}, []float64{1.0, 2.0, 3.0}},
		{Polynomial{0.0, -1.0, 0.0, 1.0}, []float64{-1.0, 0.0, 1.0}},
		{Polynomial{-8.0, 0.0, 0.0, 1.0}, []float64{2.0}},
		{Polynomial{-2.0, 1.0, 0.0, 1e-20}, []float64{2.0}}, // negligible cubic term
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Floats(t, tt.p.Roots(Epsilon), tt.roots)
		})
	}
}

func TestSolveQuadraticFormula(t *testing.T) {
	var tts = []struct {
		a, b, c float64
		x1, x2  float64
	}{
		{0.0, 0.0, 0.0, 0.0, math.NaN()},
		{0.0, 0.0, 1.0, math.NaN(), math.NaN()},
		{0.0, 1.0, 1.0, -1.0, math.NaN()},
		{1.0, 0.0, 0.0, 0.0, math.NaN()},
		{1.0, 1.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 0.0, 1.0},
		{1.0, 1.0, 1.0, math.NaN(), math.NaN()},
		{1.0, 1.0, 0.25, -0.5, math.NaN()},
		{2.0, -5.0, 2.0, 0.5, 2.0},
		{1.0, 0.0, -4.0, -2.0, 2.0},
		{-1.0, 0.0, 4.0, -2.0, 2.0},
		{1.0, 1e8, 1.0, -1e8, -1e-8}, // small root without cancellation
		{1.0, -1e8, 1.0, 1e-8, 1e8},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			x1, x2 := solveQuadraticFormula(tt.a, tt.b, tt.c)
			test.Float(t, x1, tt.x1)
			test.Float(t, x2, tt.x2)
		})
	}
}

func TestSolveCubicFormula(t *testing.T) {
	x1, x2, x3 := solveCubicFormula(1.0, -6.0, 11.0, -6.0)
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)
	test.Float(t, x3, 3.0)

	x1, x2, x3 = solveCubicFormula(1.0, 0.0, 0.0, -8.0)
	test.Float(t, x1, 2.0)
	test.Float(t, x2, math.NaN())
	test.Float(t, x3, math.NaN())

	x1, x2, x3 = solveCubicFormula(1.0, -3.0, 0.0, 4.0) // double root at 2
	test.Float(t, x1, -1.0)
	test.Float(t, x2, 2.0)
	test.Float(t, x3, math.NaN())

	x1, x2, x3 = solveCubicFormula(0.0, 1.0, -3.0, 2.0)
	test.Float(t, x1, 1.0)
	test.Float(t, x2, 2.0)
	test.Float(t, x3, math.NaN())
}

func TestBisectionMethod(t *testing.T) {
	test.Float(t, bisectionMethod(func(x float64) float64 { return x * x }, 2.0, 0.0, 2.0, 1e-12), math.Sqrt2)
	test.Float(t, bisectionMethod(func(x float64) float64 { return -x }, -0.25, 0.0, 1.0, 1e-12), 0.25)
}
