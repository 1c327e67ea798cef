package planar

import (
	"math"
	"math/rand/v2"
)

func randomPoint(rnd *rand.Rand) Point {
	return Point{rnd.NormFloat64(), rnd.NormFloat64()}
}

// randomPolygonContour returns a star-shaped contour around the origin, which does not intersect itself.
func randomPolygonContour(rnd *rand.Rand, n int) PolygonContour {
	contour := make(PolygonContour, 0, n)
	for i := 0; i < n; i++ {
		theta := (float64(i) + 0.8*rnd.Float64()) / float64(n) * 2.0 * math.Pi
		r := 0.5 + rnd.Float64()
		contour = append(contour, Point{r, 0.0}.Rot(theta, Origin))
	}
	return contour
}

func randomPolycurve(rnd *rand.Rand, n int) Polycurve {
	pc := Polycurve{}
	p := randomPoint(rnd)
	pc.MoveTo(p.X, p.Y)
	for i := 1; i < n; i++ {
		switch rnd.IntN(5) {
		case 0:
			pc.LineTo(rnd.NormFloat64(), rnd.NormFloat64())
		case 1:
			pc.QuadTo(rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64())
		case 2:
			pc.CubeTo(rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64(), rnd.NormFloat64())
		case 3:
			large, sweep := rnd.IntN(2) == 0, rnd.IntN(2) == 0
			pc.ArcTo(0.5+rnd.Float64(), 0.5+rnd.Float64(), 360.0*rnd.Float64(), large, sweep, rnd.NormFloat64(), rnd.NormFloat64())
		case 4:
			pc.CardinalTo(0.5, randomPoint(rnd), randomPoint(rnd))
		}
	}
	pc.Close()
	return pc
}
