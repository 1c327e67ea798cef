package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/planar"
)

// parseNumbers parses a comma or space separated list of n numbers, or of any even length if n is negative.
func parseNumbers(s string, n int) ([]float64, error) {
	b := []byte(s)
	vals := []float64{}
	for i := 0; i < len(b); {
		if b[i] == ',' || b[i] == ' ' {
			i++
			continue
		}
		f, m := strconv.ParseFloat(b[i:])
		if m == 0 {
			return nil, fmt.Errorf("bad number at position %d: %s", i, s)
		}
		vals = append(vals, f)
		i += m
	}
	if 0 <= n && len(vals) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d: %s", n, len(vals), s)
	} else if n < 0 && len(vals)%2 != 0 {
		return nil, fmt.Errorf("expected an even amount of numbers, got %d: %s", len(vals), s)
	}
	return vals, nil
}

// ParsePoint parses a point as x,y.
func ParsePoint(s string) (planar.Point, error) {
	vals, err := parseNumbers(s, 2)
	if err != nil {
		return planar.Point{}, err
	}
	return planar.Point{X: vals[0], Y: vals[1]}, nil
}

// ParseShape parses a shape as kind:numbers, eg. circle:cx,cy,r, or as SVG path data otherwise. Angles are in degrees.
func ParseShape(s string) (planar.Shape, error) {
	kind, args, ok := strings.Cut(s, ":")
	if !ok {
		return planar.ParseSVGPath(s)
	}

	counts := map[string]int{
		"point":    2,
		"segment":  4,
		"ray":      4,
		"line":     4,
		"rect":     4,
		"circle":   3,
		"ellipse":  5,
		"arc":      5,
		"triangle": 6,
		"quad":     6,
		"cubic":    8,
		"polygon":  -1,
	}
	n, ok := counts[kind]
	if !ok {
		return nil, fmt.Errorf("unknown shape kind: %s", kind)
	}
	v, err := parseNumbers(args, n)
	if err != nil {
		return nil, err
	}

	pt := func(i int) planar.Point {
		return planar.Point{X: v[i], Y: v[i+1]}
	}
	switch kind {
	case "point":
		return pt(0), nil
	case "segment":
		return planar.LineSegment{A: pt(0), B: pt(2)}, nil
	case "ray":
		return planar.Ray{Origin: pt(0), Direction: pt(2)}, nil
	case "line":
		return planar.Line{Origin: pt(0), Direction: pt(2)}, nil
	case "rect":
		return planar.Rectangle{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
	case "circle":
		return planar.Circle{Center: pt(0), Radius: v[2]}, nil
	case "ellipse":
		return planar.Ellipse{Center: pt(0), RX: v[2], RY: v[3], Angle: v[4] * math.Pi / 180.0}, nil
	case "arc":
		return planar.CircularArc{Center: pt(0), Radius: v[2], Start: v[3] * math.Pi / 180.0, Sweep: v[4] * math.Pi / 180.0}, nil
	case "triangle":
		return planar.Triangle{A: pt(0), B: pt(2), C: pt(4)}, nil
	case "quad":
		return planar.QuadraticBezier{P0: pt(0), P1: pt(2), P2: pt(4)}, nil
	case "cubic":
		return planar.CubicBezier{P0: pt(0), P1: pt(2), P2: pt(4), P3: pt(6)}, nil
	}
	contour := planar.PolygonContour{}
	for i := 0; i < len(v); i += 2 {
		contour = append(contour, pt(i))
	}
	return contour, nil
}
