package planar

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestScanbeam(t *testing.T) {
	var tests = []struct {
		s  Shape
		y  float64
		xs []float64
	}{
		{Point{3, 5}, 5, []float64{3}},
		{Point{3, 5}, 6, []float64{}},
		{Line{Point{0, 0}, Point{1, 1}}, 2, []float64{2}},
		{Line{Point{0, 0}, Point{1, 0}}, 0, []float64{}},
		{Ray{Point{0, 0}, Point{1, 1}}, 2, []float64{2}},
		{Ray{Point{0, 0}, Point{1, 1}}, -1, []float64{}},
		{Ray{Point{1, 0}, Point{1, 0}}, 0, []float64{1}},
		{LineSegment{Point{0, 0}, Point{2, 4}}, 2, []float64{1}},
		{LineSegment{Point{0, 0}, Point{2, 4}}, 4, []float64{2}},
		{LineSegment{Point{0, 0}, Point{2, 4}}, 5, []float64{}},
		{LineSegment{Point{0, 1}, Point{3, 1}}, 1, []float64{0, 3}},
		{QuadraticBezier{Point{0, 0}, Point{1, 2}, Point{2, 0}}, 0.75, []float64{0.5, 1.5}},
		{QuadraticBezier{Point{0, 0}, Point{1, 2}, Point{2, 0}}, 1, []float64{1}},
		{QuadraticBezier{Point{0, 0}, Point{1, 2}, Point{2, 0}}, 0, []float64{0, 2}},
		{QuadraticBezier{Point{0, 0}, Point{1, 2}, Point{2, 0}}, 2, []float64{}},
		{CubicBezier{Point{0, 0}, Point{0, 4}, Point{4, 4}, Point{4, 0}}, 3, []float64{2}},
		{CubicBezier{Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}}, 1.5, []float64{1.5}},
		{CubicBezier{Point{0, 1}, Point{1, 1}, Point{2, 1}, Point{3, 1}}, 1, []float64{0, 3}},
		{Circle{Point{0, 0}, 5}, 3, []float64{-4, 4}},
		{Circle{Point{0, 0}, 5}, 5, []float64{0, 0}},
		{Circle{Point{0, 0}, 5}, 6, []float64{}},
		{Ellipse{Point{0, 0}, 2, 1, 0.0}, 0, []float64{-2, 2}},
		{Ellipse{Point{0, 0}, 2, 1, math.Pi / 2.0}, 0, []float64{-1, 1}},
		{Ellipse{Point{1, 0}, 2, 1, 0.0}, -1, []float64{1, 1}},
		{CircularArc{Point{0, 0}, 1, 0.0, math.Pi}, 0.5, []float64{-math.Sqrt(0.75), math.Sqrt(0.75)}},
		{CircularArc{Point{0, 0}, 1, 0.0, math.Pi}, -0.5, []float64{}},
		{CircularArc{Point{0, 0}, 1, 0.0, math.Pi / 2.0}, 0.5, []float64{math.Sqrt(0.75)}},
		{CircularArc{Point{0, 0}, 1, 0.0, -math.Pi}, -0.5, []float64{-math.Sqrt(0.75), math.Sqrt(0.75)}},
		{EllipticalArc{Point{0, 0}, 2, 1, 0.0, 0.0, 2.0 * math.Pi}, 0, []float64{-2, 2}},
		{Rectangle{0, 0, 10, 10}, 5, []float64{0, 10}},
		{Rectangle{0, 0, 10, 10}, 10, []float64{0, 10}},
		{Rectangle{0, 0, 10, 10}, 0, []float64{}},
		{Rectangle{0, 0, 10, 10}, 11, []float64{}},
		{Triangle{Point{0, 0}, Point{4, 0}, Point{0, 4}}, 2, []float64{0, 2}},
		{PolygonContour{{0, 0}, {4, 4}, {8, 0}, {8, 8}, {0, 8}}, 4, []float64{0, 4, 4, 8}}, // peak on the beam
		{PolygonContour{{0, 0}, {4, 4}, {8, 0}, {8, 8}, {0, 8}}, 2, []float64{0, 2, 6, 8}},
		{Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, {{3, 3}, {7, 3}, {7, 7}, {3, 7}}}, 5, []float64{0, 3, 7, 10}},
		{MustParseSVGPath("M0 0L10 0L10 10L0 10z"), 5, []float64{0, 10}},
		{MustParseSVGPath("M0 0Q5 10 10 0z"), 5, []float64{5, 5}},
		{MustParseSVGPath("M0 0Q5 10 10 0z"), 2.5, []float64{5 - 5*math.Sqrt(0.5), 5 + 5*math.Sqrt(0.5)}},
		{MustParseSVGPath("M-5 0A5 5 0 0 1 5 0A5 5 0 0 1 -5 0z"), 3, []float64{-4, 4}},
		{MustParseSVGPath("M-5 0A5 5 0 0 1 5 0A5 5 0 0 1 -5 0z"), -4, []float64{-3, 3}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			xs := Scanbeam(nil, tt.s, tt.y, Epsilon)
			sort.Float64s(xs)
			test.Floats(t, xs, tt.xs)
		})
	}
}

func TestScanbeamAppend(t *testing.T) {
	xs := []float64{-1.0}
	xs = ScanbeamCircle(xs, 0.0, Point{0, 0}, 1.0, Epsilon)
	xs = ScanbeamLineSegment(xs, 0.0, Point{3, -1}, Point{3, 1}, Epsilon)
	test.Floats(t, xs, []float64{-1.0, -1.0, 1.0, 3.0})

	// arc crossings are filtered in place after the existing values
	xs = ScanbeamCircularArc(xs[:1], 0.5, Point{0, 0}, 1.0, 0.0, math.Pi/2.0, Epsilon)
	test.Floats(t, xs, []float64{-1.0, math.Sqrt(0.75)})
}

func TestScanbeamPointsToSides(t *testing.T) {
	square := PolygonContour{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	test.T(t, ScanbeamPointsToLeft(square, 5, 5, Epsilon), 1)
	test.T(t, ScanbeamPointsToRight(square, 5, 5, Epsilon), 1)
	test.T(t, ScanbeamPointsToLeft(square, 15, 5, Epsilon), 2)
	test.T(t, ScanbeamPointsToRight(square, 15, 5, Epsilon), 0)
	test.T(t, ScanbeamPointsToLeft(square, 10, 5, Epsilon), 1) // crossings at x are on neither side
	test.T(t, ScanbeamPointsToRight(square, 10, 5, Epsilon), 0)

	circle := Circle{Point{0, 0}, 5}
	test.T(t, ScanbeamPointsToLeft(circle, 0, 0, Epsilon), 1)
	test.T(t, ScanbeamPointsToRight(circle, 0, 0, Epsilon), 1)
	test.T(t, ScanbeamPointsToLeft(circle, 1, 5, Epsilon), 2) // tangent
	test.T(t, ScanbeamPointsToRight(circle, -1, 5, Epsilon), 2)
}

func TestScanbeamParity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 50; i++ {
		contour := randomPolygonContour(rnd, 3+rnd.IntN(10))
		for j := 0; j < 50; j++ {
			p := Point{2.0 * rnd.NormFloat64(), 2.0 * rnd.NormFloat64()}
			inclusion := PolygonContourContainsPoint(contour, p, Epsilon)
			if inclusion == Boundary {
				continue
			}
			left := ScanbeamPointsToLeft(contour, p.X, p.Y, Epsilon)
			right := ScanbeamPointsToRight(contour, p.X, p.Y, Epsilon)
			test.T(t, (left+right)%2, 0, fmt.Sprint(contour, p))
			test.T(t, left%2 == 1, inclusion == Inside, fmt.Sprint(contour, p))
			test.T(t, right%2 == 1, inclusion == Inside, fmt.Sprint(contour, p))
		}
	}
}

func TestScanbeamPolycurveParity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 50; i++ {
		pc := randomPolycurve(rnd, 2+rnd.IntN(6))
		for j := 0; j < 20; j++ {
			p := randomPoint(rnd)
			if PolycurveContainsPoint(pc, p, Epsilon) == Boundary {
				continue
			}
			left := ScanbeamPointsToLeft(pc, p.X, p.Y, Epsilon)
			right := ScanbeamPointsToRight(pc, p.X, p.Y, Epsilon)
			test.T(t, (left+right)%2, 0, fmt.Sprint(pc, p))
		}
	}
}
