package planar

import "math"

// ellipsePos returns the position on the ellipse at parametric angle theta, where sinphi and cosphi are the sine and cosine of the ellipse's rotation.
func ellipsePos(rx, ry, sinphi, cosphi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	return Point{
		cx + rx*costheta*cosphi - ry*sintheta*sinphi,
		cy + rx*costheta*sinphi + ry*sintheta*cosphi,
	}
}

// ellipseLocal transforms p into the ellipse's frame, ie. translated by the center and counter rotated by phi.
func ellipseLocal(sinphi, cosphi, cx, cy float64, p Point) (float64, float64) {
	dx, dy := p.X-cx, p.Y-cy
	return cosphi*dx + sinphi*dy, -sinphi*dx + cosphi*dy
}

// ellipseNormalizedRadius returns a²/rx² + b²/ry² for p in the ellipse's frame (a,b), which is 1 on the ellipse, smaller inside and larger outside.
func ellipseNormalizedRadius(rx, ry, sinphi, cosphi, cx, cy float64, p Point) float64 {
	a, b := ellipseLocal(sinphi, cosphi, cx, cy, p)
	return a*a/(rx*rx) + b*b/(ry*ry)
}

// ellipseConic returns the coefficients A, B, C of the centered conic A*x² + B*x*y + C*y² = 1 of a rotated ellipse.
func ellipseConic(rx, ry, sinphi, cosphi float64) (float64, float64, float64) {
	irx2 := 1.0 / (rx * rx)
	iry2 := 1.0 / (ry * ry)
	A := cosphi*cosphi*irx2 + sinphi*sinphi*iry2
	B := 2.0 * sinphi * cosphi * (irx2 - iry2)
	C := sinphi*sinphi*irx2 + cosphi*cosphi*iry2
	return A, B, C
}

// ellipseYForm returns R and delta such that the y-coordinate of the ellipse at parametric angle theta equals cy + R*sin(theta+delta). The lowest and highest points are at theta = -PI/2-delta and PI/2-delta respectively.
func ellipseYForm(rx, ry, sinphi, cosphi float64) (float64, float64) {
	// y(theta) = cy + rx*sin(phi)*cos(theta) + ry*cos(phi)*sin(theta)
	return math.Hypot(rx*sinphi, ry*cosphi), math.Atan2(rx*sinphi, ry*cosphi)
}

// ellipseHalfExtents returns the half width and half height of the bounding box of a rotated ellipse.
func ellipseHalfExtents(rx, ry, sinphi, cosphi float64) (float64, float64) {
	w := math.Sqrt(rx*rx*cosphi*cosphi + ry*ry*sinphi*sinphi)
	h := math.Sqrt(rx*rx*sinphi*sinphi + ry*ry*cosphi*cosphi)
	return w, h
}

// ellipseToCenter converts the SVG arc format (endpoints, radii, rotation, flags) to the center and angles format. It returns the center, the possibly enlarged radii, the start angle and the sweep.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func ellipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if x1 == x2 && y1 == y2 || rx == 0.0 || ry == 0.0 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale up radii when too small to reach the end point
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < radiiCheck {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Atan2(uy, ux)
	delta := angleNorm(math.Atan2(vy, vx) - theta)
	if !sweep {
		delta -= 2.0 * math.Pi
		if delta == -2.0*math.Pi {
			delta = 0.0
		}
	}
	return cx, cy, rx, ry, theta, delta
}
