package planar

import (
	"fmt"

	"github.com/paulmach/orb"
)

// PointFromOrb converts an orb point.
func PointFromOrb(p orb.Point) Point {
	return Point{p.X(), p.Y()}
}

// PolygonContourFromOrbRing converts an orb ring. The closing point that repeats the first point is dropped since contours close implicitly.
func PolygonContourFromOrbRing(r orb.Ring) PolygonContour {
	if r.Closed() && 1 < len(r) {
		r = r[:len(r)-1]
	}
	contour := make(PolygonContour, 0, len(r))
	for _, p := range r {
		contour = append(contour, PointFromOrb(p))
	}
	return contour
}

// PolygonFromOrb converts an orb polygon of an outer ring and holes.
func PolygonFromOrb(p orb.Polygon) Polygon {
	polygon := make(Polygon, 0, len(p))
	for _, r := range p {
		polygon = append(polygon, PolygonContourFromOrbRing(r))
	}
	return polygon
}

// RectangleFromOrbBound converts an orb bound.
func RectangleFromOrbBound(b orb.Bound) Rectangle {
	return rectangleFromCorners(PointFromOrb(b.Min), PointFromOrb(b.Max))
}

// ShapesFromOrb converts an orb geometry into shapes. Line strings become line segments, and multi geometries and collections are flattened.
func ShapesFromOrb(g orb.Geometry) ([]Shape, error) {
	switch g := g.(type) {
	case orb.Point:
		return []Shape{PointFromOrb(g)}, nil
	case orb.MultiPoint:
		shapes := make([]Shape, 0, len(g))
		for _, p := range g {
			shapes = append(shapes, PointFromOrb(p))
		}
		return shapes, nil
	case orb.LineString:
		return lineStringShapes(nil, g), nil
	case orb.MultiLineString:
		var shapes []Shape
		for _, ls := range g {
			shapes = lineStringShapes(shapes, ls)
		}
		return shapes, nil
	case orb.Ring:
		return []Shape{PolygonContourFromOrbRing(g)}, nil
	case orb.Polygon:
		return []Shape{PolygonFromOrb(g)}, nil
	case orb.MultiPolygon:
		shapes := make([]Shape, 0, len(g))
		for _, p := range g {
			shapes = append(shapes, PolygonFromOrb(p))
		}
		return shapes, nil
	case orb.Bound:
		return []Shape{RectangleFromOrbBound(g)}, nil
	case orb.Collection:
		var shapes []Shape
		for _, item := range g {
			s, err := ShapesFromOrb(item)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, s...)
		}
		return shapes, nil
	}
	return nil, fmt.Errorf("orb geometry %T: %w", g, ErrUnsupported)
}

func lineStringShapes(shapes []Shape, ls orb.LineString) []Shape {
	if len(ls) == 1 {
		return append(shapes, PointFromOrb(ls[0]))
	}
	for i := 1; i < len(ls); i++ {
		shapes = append(shapes, LineSegment{PointFromOrb(ls[i-1]), PointFromOrb(ls[i])})
	}
	return shapes
}
