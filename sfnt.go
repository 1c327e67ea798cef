package planar

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func fixedPoint(p fixed.Point26_6) Point {
	return Point{float64(p.X) / 64.0, float64(p.Y) / 64.0}
}

// PolycurveFromSegments converts glyph outline segments as loaded by golang.org/x/image/font/sfnt. The coordinates are in pixels with the y-axis pointing down, as produced by sfnt.
func PolycurveFromSegments(segments sfnt.Segments) Polycurve {
	pc := Polycurve{}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p := fixedPoint(seg.Args[0])
			pc.MoveTo(p.X, p.Y)
		case sfnt.SegmentOpLineTo:
			p := fixedPoint(seg.Args[0])
			pc.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			cp, p := fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1])
			pc.QuadTo(cp.X, cp.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			cp1, cp2, p := fixedPoint(seg.Args[0]), fixedPoint(seg.Args[1]), fixedPoint(seg.Args[2])
			pc.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
		}
	}
	return pc
}
