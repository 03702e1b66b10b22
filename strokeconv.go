// Package strokeconv converts legacy stroke-font glyphs into FontoBene vector
// glyphs. A stroke-font glyph is a set of polylines, one per pen stroke; this
// package finds maximal runs of consecutive points that lie approximately on a
// common circle and replaces each run by a compact two-point arc, leaving
// non-circular runs as literal vertices.
package strokeconv

import "math"

// Scale converts Hershey stroke units into FontoBene units.
const Scale = 9.0 / 21.0

// Tolerance is the maximum fit residual per point for which a candidate run of
// points is accepted as a circular arc.
const Tolerance = 0.01

// SpacingConstant reconciles the per-glyph spacing of Hershey fonts with the
// global letter spacing of FontoBene. It is subtracted from the advance width
// of whitespace glyphs.
const SpacingConstant = 3.26

// AnglePerRadian converts an angle in radians into FontoBene angle units,
// where 9 units correspond to a 180 degree turn.
const AnglePerRadian = 9.0 / math.Pi

// Vertex is a point of a polyline. A non-zero Angle means the segment towards
// the next vertex is a circular arc with the given signed sweep in FontoBene
// angle units, otherwise the segment is a straight line.
type Vertex struct {
	Point
	Angle float64
}

// Polyline is an ordered sequence of vertices describing one continuous pen
// stroke. Order is significant, a polyline is never mutated in place.
type Polyline []Vertex

// Points returns the coordinates of the polyline without annotations.
func (p Polyline) Points() []Point {
	points := make([]Point, len(p))
	for i, v := range p {
		points[i] = v.Point
	}
	return points
}

// Glyph is a converted glyph. The geometry form has one or more polylines,
// while the whitespace form has none and carries an advance width instead.
// The two forms are mutually exclusive.
type Glyph struct {
	Codepoint rune
	Polylines []Polyline
	Advance   float64
}

// Whitespace returns true for glyphs without geometry.
func (g Glyph) Whitespace() bool {
	return len(g.Polylines) == 0
}
