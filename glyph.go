package strokeconv

import "math"

// Normalize left-aligns the polylines of a glyph to x=0 and returns the
// resulting glyph. Hershey fonts carry their own per-glyph spacing in the
// left/right extents, but FontoBene applies a global letter spacing, so the
// extents are ignored for geometry glyphs and every polyline is translated by
// the negated minimum x-coordinate instead. Without polylines the glyph is a
// pure whitespace glyph whose advance width derives from the extents, clamped
// at zero.
func Normalize(codepoint rune, polylines []Polyline, left, right float64) Glyph {
	if len(polylines) == 0 {
		return Glyph{Codepoint: codepoint, Advance: math.Max(right-left-SpacingConstant, 0.0)}
	}

	xmin := math.Inf(1)
	for _, p := range polylines {
		for _, v := range p {
			if v.X < xmin {
				xmin = v.X
			}
		}
	}

	q := make([]Polyline, len(polylines))
	for i, p := range polylines {
		q[i] = make(Polyline, len(p))
		for j, v := range p {
			q[i][j] = Vertex{Point{v.X - xmin, v.Y}, v.Angle}
		}
	}
	return Glyph{Codepoint: codepoint, Polylines: q}
}
