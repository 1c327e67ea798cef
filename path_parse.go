package planar

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

type pathParser struct {
	path []byte
	i    int
	err  error
}

func (p *pathParser) errorf(msg string, a ...interface{}) {
	if p.err == nil {
		p.err = parse.NewError(bytes.NewReader(p.path), p.i, msg, a...)
	}
}

func (p *pathParser) num() float64 {
	if p.err != nil {
		return 0.0
	}
	p.i += skipCommaWhitespace(p.path[p.i:])
	f, n := strconv.ParseFloat(p.path[p.i:])
	if n == 0 {
		p.errorf("bad number")
		return 0.0
	}
	p.i += n
	return f
}

// flag parses an arc flag, which may be written without separator, eg. "a1 1 0 01 2 2".
func (p *pathParser) flag() bool {
	if p.err != nil {
		return false
	}
	p.i += skipCommaWhitespace(p.path[p.i:])
	if p.i < len(p.path) && (p.path[p.i] == '0' || p.path[p.i] == '1') {
		p.i++
		return p.path[p.i-1] == '1'
	}
	p.errorf("bad arc flag")
	return false
}

// ParseSVGPath parses SVG path data (see https://www.w3.org/TR/SVG2/paths.html#PathData) into a polycurve. Errors are of type *parse.Error and report the position in the input.
func ParseSVGPath(s string) (Polycurve, error) {
	p := &pathParser{path: []byte(s)}
	pc := Polycurve{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control points
	startX, startY := 0.0, 0.0
	closed := false
	for p.err == nil {
		p.i += skipCommaWhitespace(p.path[p.i:])
		if len(p.path) <= p.i {
			break
		}

		cmd := prevCmd
		if c := p.path[p.i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd = c
			p.i++
		} else if prevCmd == 0 {
			p.errorf("path data must start with a command")
			break
		} else if prevCmd == 'M' {
			cmd = 'L' // subsequent coordinates of a move are lines
		} else if prevCmd == 'm' {
			cmd = 'l'
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			p.errorf("unexpected number after close command")
			break
		}

		if closed && cmd != 'M' && cmd != 'm' && cmd != 'Z' && cmd != 'z' {
			// drawing after a close starts a new contour at the start of the previous one
			pc.MoveTo(startX, startY)
			closed = false
		}

		x, y := pc.pos().X, pc.pos().Y
		switch cmd {
		case 'M', 'm':
			a, b := p.num(), p.num()
			if cmd == 'm' {
				a += x
				b += y
			}
			pc.MoveTo(a, b)
			startX, startY = a, b
			closed = false
		case 'Z', 'z':
			pc.Close()
			closed = true
		case 'L', 'l':
			a, b := p.num(), p.num()
			if cmd == 'l' {
				a += x
				b += y
			}
			pc.LineTo(a, b)
		case 'H', 'h':
			a := p.num()
			if cmd == 'h' {
				a += x
			}
			pc.LineTo(a, y)
		case 'V', 'v':
			b := p.num()
			if cmd == 'v' {
				b += y
			}
			pc.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := p.num(), p.num(), p.num(), p.num(), p.num(), p.num()
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			pc.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := p.num(), p.num(), p.num(), p.num()
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			pc.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := p.num(), p.num(), p.num(), p.num()
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			pc.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := p.num(), p.num()
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			pc.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			rx, ry, rot := p.num(), p.num(), p.num()
			large, sweep := p.flag(), p.flag()
			f, g := p.num(), p.num()
			if cmd == 'a' {
				f += x
				g += y
			}
			pc.ArcTo(rx, ry, rot, large, sweep, f, g)
		default:
			p.i--
			p.errorf("unknown command '%c'", cmd)
		}
		prevCmd = cmd
	}
	if p.err != nil {
		return nil, p.err
	}
	return pc, nil
}

// MustParseSVGPath parses SVG path data and panics on error.
func MustParseSVGPath(s string) Polycurve {
	pc, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return pc
}
