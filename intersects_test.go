package planar

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointIntersects(t *testing.T) {
	test.T(t, PointPointIntersects(Point{1, 2}, Point{1, 2 + 1e-11}, Epsilon), true)
	test.T(t, PointPointIntersects(Point{1, 2}, Point{1, 2.1}, Epsilon), false)

	test.T(t, PointLineSegmentIntersects(Point{0, 0}, Point{0, 0}, Point{2, 2}, Epsilon), true)
	test.T(t, PointLineSegmentIntersects(Point{1, 1}, Point{0, 0}, Point{2, 2}, Epsilon), true)
	test.T(t, PointLineSegmentIntersects(Point{3, 3}, Point{0, 0}, Point{2, 2}, Epsilon), false)
	test.T(t, PointLineSegmentIntersects(Point{1, 1.1}, Point{0, 0}, Point{2, 2}, Epsilon), false)
	test.T(t, PointLineSegmentIntersects(Point{1, 1}, Point{1, 1}, Point{1, 1}, Epsilon), true)

	test.T(t, PointRayIntersects(Point{5, 0}, Point{0, 0}, Point{1, 0}, Epsilon), true)
	test.T(t, PointRayIntersects(Point{-5, 0}, Point{0, 0}, Point{1, 0}, Epsilon), false)
	test.T(t, PointLineIntersects(Point{-5, 0}, Point{0, 0}, Point{1, 0}, Epsilon), true)
	test.T(t, PointLineIntersects(Point{-5, 1}, Point{0, 0}, Point{1, 0}, Epsilon), false)

	test.T(t, PointRectangleIntersects(Point{5, 5}, 0, 0, 10, 10, Epsilon), true)
	test.T(t, PointRectangleIntersects(Point{10, 5}, 0, 0, 10, 10, Epsilon), true)
	test.T(t, PointRectangleIntersects(Point{11, 5}, 0, 0, 10, 10, Epsilon), false)
}

func TestLineSegmentLineSegmentIntersects(t *testing.T) {
	var tests = []struct {
		a0, a1, b0, b1 Point
		intersects     bool
	}{
		{Point{0, 0}, Point{2, 2}, Point{0, 2}, Point{2, 0}, true},
		{Point{0, 0}, Point{2, 2}, Point{2, 2}, Point{4, 0}, true},  // shared end point
		{Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{1, 5}, true},  // T-junction
		{Point{0, 0}, Point{2, 0}, Point{1, 1}, Point{1, 5}, false}, // beyond the end
		{Point{0, 0}, Point{2, 0}, Point{0, 1}, Point{2, 1}, false}, // parallel
		{Point{0, 0}, Point{2, 0}, Point{1, 0}, Point{3, 0}, true},  // overlapping
		{Point{0, 0}, Point{2, 0}, Point{2, 0}, Point{3, 0}, true},  // collinear touching
		{Point{0, 0}, Point{2, 0}, Point{3, 0}, Point{4, 0}, false}, // collinear disjoint
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, LineSegmentLineSegmentIntersects(tt.a0, tt.a1, tt.b0, tt.b1, Epsilon), tt.intersects)
			test.T(t, LineSegmentLineSegmentIntersects(tt.b0, tt.b1, tt.a0, tt.a1, Epsilon), tt.intersects)
			test.T(t, LineSegmentLineSegmentIntersects(tt.a1, tt.a0, tt.b1, tt.b0, Epsilon), tt.intersects)
		})
	}
}

func TestLineSegmentIntersectsAgreement(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	randPoint := func() Point {
		return Point{rnd.NormFloat64(), rnd.NormFloat64()}
	}
	for i := 0; i < 1000; i++ {
		a0, a1, b0, b1 := randPoint(), randPoint(), randPoint(), randPoint()
		ta, tb := LineSegmentLineSegmentIntersectionIndexes(a0, a1, b0, b1, Epsilon)
		ok := LineSegmentLineSegmentIntersects(a0, a1, b0, b1, Epsilon)
		test.T(t, 0 < len(ta), ok, fmt.Sprint(a0, a1, b0, b1))
		for j := range ta {
			p := LineSegment{a0, a1}.Pos(ta[j])
			q := LineSegment{b0, b1}.Pos(tb[j])
			test.That(t, p.EqualsEps(q, 1e-9), fmt.Sprint(p, "!=", q))
		}
	}
}

func TestRectangleIntersects(t *testing.T) {
	var tests = []struct {
		a, b       Shape
		intersects bool
	}{
		{LineSegment{Point{-5, 5}, Point{15, 5}}, Rectangle{0, 0, 10, 10}, true},
		{LineSegment{Point{2, 2}, Point{3, 3}}, Rectangle{0, 0, 10, 10}, true}, // inside
		{LineSegment{Point{-5, 5}, Point{-1, 5}}, Rectangle{0, 0, 10, 10}, false},
		{LineSegment{Point{-5, 0}, Point{5, -10}}, Rectangle{0, 0, 10, 10}, false},
		{LineSegment{Point{-5, 5}, Point{5, -5}}, Rectangle{0, 0, 10, 10}, true}, // corner
		{Ray{Point{-5, 5}, Point{1, 0}}, Rectangle{0, 0, 10, 10}, true},
		{Ray{Point{-5, 5}, Point{-1, 0}}, Rectangle{0, 0, 10, 10}, false},
		{Ray{Point{5, 5}, Point{-1, 0}}, Rectangle{0, 0, 10, 10}, true},
		{Line{Point{-5, 5}, Point{-1, 0}}, Rectangle{0, 0, 10, 10}, true},
		{Line{Point{-5, 20}, Point{1, 0}}, Rectangle{0, 0, 10, 10}, false},
		{Line{Point{0, 10}, Point{1, 0}}, Rectangle{0, 0, 10, 10}, true}, // along an edge
		{Rectangle{5, 5, 10, 10}, Rectangle{0, 0, 10, 10}, true},
		{Rectangle{10, 0, 10, 10}, Rectangle{0, 0, 10, 10}, true},
		{Rectangle{11, 0, 10, 10}, Rectangle{0, 0, 10, 10}, false},
		{Rectangle{10, 10, -5, -5}, Rectangle{0, 0, 2, 2}, false},
		{QuadraticBezier{Point{-5, 0}, Point{5, 20}, Point{15, 0}}, Rectangle{0, 0, 10, 8}, true},
		{QuadraticBezier{Point{-5, 0}, Point{5, 20}, Point{15, 0}}, Rectangle{0, 0, 10, 5}, false}, // above
		{QuadraticBezier{Point{-5, 0}, Point{5, 20}, Point{15, 0}}, Rectangle{4, 0, 2, 2}, false}, // under the arch
		{CubicBezier{Point{-5, 0}, Point{0, 10}, Point{10, 10}, Point{15, 0}}, Rectangle{4, 5, 2, 10}, true},
		{CubicBezier{Point{-5, 0}, Point{0, 10}, Point{10, 10}, Point{15, 0}}, Rectangle{4, 8, 2, 2}, false},
		{PolygonContour{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Rectangle{2, 2, 1, 1}, true}, // rectangle inside
		{PolygonContour{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Rectangle{-5, -5, 20, 20}, true},
		{PolygonContour{{0, 0}, {10, 0}, {0, 10}}, Rectangle{8, 8, 2, 2}, false},
		{Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, {{2, 2}, {8, 2}, {8, 8}, {2, 8}}}, Rectangle{4, 4, 2, 2}, false}, // in the hole
		{Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, {{2, 2}, {8, 2}, {8, 8}, {2, 8}}}, Rectangle{1, 4, 2, 2}, true},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			ok, err := Intersects(tt.a, tt.b, Epsilon)
			test.Error(t, err)
			test.T(t, ok, tt.intersects)

			ok, err = Intersects(tt.b, tt.a, Epsilon)
			test.Error(t, err)
			test.T(t, ok, tt.intersects)
		})
	}
}

func TestCircleCircleIntersects(t *testing.T) {
	var tests = []struct {
		c0         Point
		r0         float64
		c1         Point
		r1         float64
		intersects bool
	}{
		{Point{0, 0}, 5, Point{8, 0}, 5, true},
		{Point{0, 0}, 5, Point{10, 0}, 5, true}, // touching outside
		{Point{0, 0}, 5, Point{11, 0}, 5, false},
		{Point{0, 0}, 5, Point{1, 0}, 2, false}, // nested
		{Point{0, 0}, 5, Point{3, 0}, 2, true},  // touching inside
		{Point{0, 0}, 5, Point{0, 0}, 5, true},  // coinciding
		{Point{0, 0}, 5, Point{0, 0}, 4, false}, // concentric
		{Point{0, 0}, 0, Point{0, 0}, 0, false},
		{Point{0, 0}, 5, Point{5, 0}, 0, false},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, CircleCircleIntersects(tt.c0, tt.r0, tt.c1, tt.r1, Epsilon), tt.intersects)
			test.T(t, CircleCircleIntersects(tt.c1, tt.r1, tt.c0, tt.r0, Epsilon), tt.intersects)
		})
	}
}

func TestIntersectsLinear(t *testing.T) {
	var tests = []struct {
		a, b       Shape
		intersects bool
	}{
		{Point{1, 1}, Point{1, 1}, true},
		{Point{1, 1}, LineSegment{Point{0, 0}, Point{2, 2}}, true},
		{Point{3, 3}, Ray{Point{0, 0}, Point{1, 1}}, true},
		{Point{-3, -3}, Ray{Point{0, 0}, Point{1, 1}}, false},
		{Point{-3, -3}, Line{Point{0, 0}, Point{1, 1}}, true},
		{Line{Point{0, 0}, Point{1, 0}}, Line{Point{0, 1}, Point{1, 0}}, false},
		{Line{Point{0, 0}, Point{1, 0}}, Line{Point{0, 1}, Point{1, 1}}, true},
		{Ray{Point{0, 0}, Point{1, 0}}, LineSegment{Point{-1, -1}, Point{-1, 1}}, false},
		{Ray{Point{0, 0}, Point{1, 0}}, LineSegment{Point{1, -1}, Point{1, 1}}, true},
		{Ray{Point{0, 0}, Point{1, 0}}, Ray{Point{-1, 0}, Point{-1, 0}}, false},
		{Ray{Point{0, 0}, Point{1, 0}}, Ray{Point{0, 0}, Point{-1, 0}}, true},
		{Line{Point{0, 0}, Point{0, 1}}, LineSegment{Point{1, 0}, Point{2, 0}}, false},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			ok, err := Intersects(tt.a, tt.b, Epsilon)
			test.Error(t, err)
			test.T(t, ok, tt.intersects)

			ok, err = Intersects(tt.b, tt.a, Epsilon)
			test.Error(t, err)
			test.T(t, ok, tt.intersects)
		})
	}
}

func TestIntersectsUnsupported(t *testing.T) {
	var tests = []struct {
		a, b Shape
	}{
		{MustParseSVGPath("M0 0L10 0L10 10z"), Rectangle{0, 0, 10, 10}},
		{CubicBezier{}, CubicBezier{}},
		{Circle{Point{0, 0}, 1}, Point{1, 0}},
		{Ellipse{}, Triangle{}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := Intersects(tt.a, tt.b, Epsilon)
			test.T(t, errors.Is(err, ErrUnsupported), true)
			test.T(t, errors.Is(err, errors.ErrUnsupported), true)
		})
	}
}
