package main

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("1.5,-2")
	test.Error(t, err)
	test.T(t, p, planar.Point{X: 1.5, Y: -2.0})

	p, err = ParsePoint("3 4")
	test.Error(t, err)
	test.T(t, p, planar.Point{X: 3.0, Y: 4.0})

	_, err = ParsePoint("1")
	test.That(t, err != nil)
	_, err = ParsePoint("1,x")
	test.That(t, err != nil)
}

func TestParseShape(t *testing.T) {
	rad := func(deg float64) float64 {
		return deg * math.Pi / 180.0
	}
	var tts = []struct {
		s        string
		expected planar.Shape
	}{
		{"point:1,2", planar.Point{X: 1.0, Y: 2.0}},
		{"segment:0,0,1,1", planar.LineSegment{A: planar.Point{X: 0.0, Y: 0.0}, B: planar.Point{X: 1.0, Y: 1.0}}},
		{"ray:0,0,1,0", planar.Ray{Origin: planar.Point{X: 0.0, Y: 0.0}, Direction: planar.Point{X: 1.0, Y: 0.0}}},
		{"line:0,1,1,0", planar.Line{Origin: planar.Point{X: 0.0, Y: 1.0}, Direction: planar.Point{X: 1.0, Y: 0.0}}},
		{"rect:0,0,10,5", planar.Rectangle{X: 0.0, Y: 0.0, W: 10.0, H: 5.0}},
		{"circle:1,2,3", planar.Circle{Center: planar.Point{X: 1.0, Y: 2.0}, Radius: 3.0}},
		{"ellipse:0,0,2,1,180", planar.Ellipse{Center: planar.Point{}, RX: 2.0, RY: 1.0, Angle: rad(180.0)}},
		{"arc:0,0,1,0,90", planar.CircularArc{Center: planar.Point{}, Radius: 1.0, Start: rad(0.0), Sweep: rad(90.0)}},
		{"triangle:0,0,4,0,0,3", planar.Triangle{A: planar.Point{}, B: planar.Point{X: 4.0}, C: planar.Point{Y: 3.0}}},
		{"quad:0,0,1,2,2,0", planar.QuadraticBezier{P0: planar.Point{}, P1: planar.Point{X: 1.0, Y: 2.0}, P2: planar.Point{X: 2.0}}},
		{"cubic:0 0 0 1 1 1 1 0", planar.CubicBezier{P0: planar.Point{}, P1: planar.Point{Y: 1.0}, P2: planar.Point{X: 1.0, Y: 1.0}, P3: planar.Point{X: 1.0}}},
		{"polygon:0,0,1,0,0,1", planar.PolygonContour{{}, {X: 1.0}, {Y: 1.0}}},
		{"M0 0L1 0L0 1z", planar.MustParseSVGPath("M0 0L1 0L0 1z")},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			s, err := ParseShape(tt.s)
			test.Error(t, err)
			test.T(t, s, tt.expected)
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	var tts = []string{
		"blob:1,2",
		"circle:1,2",
		"polygon:0,0,1",
		"point:a,b",
		"M0 0X",
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseShape(tt)
			test.That(t, err != nil, "expected error for", tt)
		})
	}
}
