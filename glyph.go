package planar

import (
	"fmt"

	"github.com/tdewolff/font"
)

// GlyphPolycurve returns the outline of the glyph for rune r as a polycurve in font units multiplied by scale, with the y-axis pointing up and the origin on the baseline.
func GlyphPolycurve(sfnt *font.SFNT, r rune, scale float64) (Polycurve, error) {
	glyphID := sfnt.GlyphIndex(r)
	if glyphID == 0 {
		return nil, fmt.Errorf("glyph for %q not found", r)
	}
	pc := Polycurve{}
	if err := sfnt.GlyphPath(&pc, glyphID, 0, 0, 0, scale, font.NoHinting); err != nil {
		return nil, err
	}
	return pc, nil
}
