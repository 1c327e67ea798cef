package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/font"
	"github.com/tdewolff/planar"
)

type Planar struct{}

type Contains struct {
	Epsilon float64 `short:"e" default:"1e-10" desc:"Tolerance"`
	Shape   string  `index:"0" desc:"Shape"`
	Point   string  `index:"1" desc:"Point as x,y"`
}

type Intersects struct {
	Epsilon      float64 `short:"e" default:"1e-10" desc:"Tolerance"`
	Parametrized bool    `short:"p" desc:"Print the intersection points and parameters"`
	A            string  `index:"0" desc:"First shape"`
	B            string  `index:"1" desc:"Second shape"`
}

type Scanbeam struct {
	Epsilon float64 `short:"e" default:"1e-10" desc:"Tolerance"`
	X       float64 `short:"x" desc:"Count crossings to the left and right of this x-coordinate"`
	Shape   string  `index:"0" desc:"Shape"`
	Y       float64 `index:"1" desc:"Height of the horizontal beam"`
}

type SelfIntersect struct {
	Epsilon float64 `short:"e" default:"1e-10" desc:"Tolerance"`
	Curve   string  `index:"0" desc:"Cubic Bézier as x0,y0,x1,y1,x2,y2,x3,y3"`
}

type Glyph struct {
	Epsilon float64 `short:"e" default:"1e-10" desc:"Tolerance"`
	Index   int     `short:"i" desc:"Font index for font collections"`
	Font    string  `index:"0" desc:"Font file"`
	Char    string  `index:"1" desc:"Unicode character"`
	Point   string  `index:"2" desc:"Point as x,y in font units"`
}

func main() {
	root := argp.NewCmd(&Planar{}, "Point inclusion and intersection tests for 2D shapes")
	root.AddCmd(&Contains{}, "contains", "Classify a point as outside, on the boundary or inside a shape")
	root.AddCmd(&Intersects{}, "intersects", "Test whether two shapes intersect")
	root.AddCmd(&Scanbeam{}, "scanbeam", "List the crossings of a horizontal line with a shape")
	root.AddCmd(&SelfIntersect{}, "selfintersect", "Find where a cubic Bézier crosses itself")
	root.AddCmd(&Glyph{}, "glyph", "Classify a point against a glyph outline of a font")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Planar) Run() error {
	return argp.ShowUsage
}

func (cmd *Contains) Run() error {
	if cmd.Shape == "" || cmd.Point == "" {
		return argp.ShowUsage
	}
	s, err := ParseShape(cmd.Shape)
	if err != nil {
		return err
	}
	p, err := ParsePoint(cmd.Point)
	if err != nil {
		return err
	}
	inclusion, err := planar.Contains(s, p, cmd.Epsilon)
	if err != nil {
		return err
	}
	fmt.Println(inclusion)
	return nil
}

func (cmd *Intersects) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	a, err := ParseShape(cmd.A)
	if err != nil {
		return err
	}
	b, err := ParseShape(cmd.B)
	if err != nil {
		return err
	}

	if cmd.Parametrized {
		z, err := planar.Intersect(a, b, cmd.Epsilon)
		if err != nil {
			return err
		}
		ta, tb, err := planar.IntersectionIndexes(a, b, cmd.Epsilon)
		if err != nil {
			return err
		}
		fmt.Println(z)
		fmt.Println("ta:", ta)
		fmt.Println("tb:", tb)
		return nil
	}

	ok, err := planar.Intersects(a, b, cmd.Epsilon)
	if err != nil {
		return err
	}
	fmt.Println(ok)
	return nil
}

func (cmd *Scanbeam) Run() error {
	if cmd.Shape == "" {
		return argp.ShowUsage
	}
	s, err := ParseShape(cmd.Shape)
	if err != nil {
		return err
	}
	xs := planar.Scanbeam(nil, s, cmd.Y, cmd.Epsilon)
	sort.Float64s(xs)
	fmt.Println("crossings:", xs)
	fmt.Println("left:", planar.ScanbeamPointsToLeft(s, cmd.X, cmd.Y, cmd.Epsilon))
	fmt.Println("right:", planar.ScanbeamPointsToRight(s, cmd.X, cmd.Y, cmd.Epsilon))
	return nil
}

func (cmd *SelfIntersect) Run() error {
	if cmd.Curve == "" {
		return argp.ShowUsage
	}
	vals, err := parseNumbers(cmd.Curve, 8)
	if err != nil {
		return err
	}
	c := planar.CubicBezier{
		P0: planar.Point{X: vals[0], Y: vals[1]},
		P1: planar.Point{X: vals[2], Y: vals[3]},
		P2: planar.Point{X: vals[4], Y: vals[5]},
		P3: planar.Point{X: vals[6], Y: vals[7]},
	}
	ts := planar.CubicBezierSelfIntersectionIndexes(c.P0, c.P1, c.P2, c.P3, cmd.Epsilon)
	if len(ts) == 0 {
		fmt.Println("no self-intersection")
		return nil
	}
	fmt.Println("t:", ts, "at", c.Pos(ts[0]))
	return nil
}

func (cmd *Glyph) Run() error {
	if cmd.Font == "" || cmd.Char == "" || cmd.Point == "" {
		return argp.ShowUsage
	}
	rs := []rune(cmd.Char)
	if len(rs) != 1 {
		return fmt.Errorf("char must be one Unicode character")
	}
	p, err := ParsePoint(cmd.Point)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(cmd.Font)
	if err != nil {
		return err
	}
	sfnt, err := font.ParseSFNT(b, cmd.Index)
	if err != nil {
		return err
	}
	pc, err := planar.GlyphPolycurve(sfnt, rs[0], 1.0)
	if err != nil {
		return err
	}
	fmt.Println(planar.PolycurveContainsPoint(pc, p, cmd.Epsilon))
	return nil
}
