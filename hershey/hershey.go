// Package hershey decodes the packed glyph encoding of the NewStroke/Hershey
// stroke fonts. Every glyph is a string of printable-ASCII symbol pairs: the
// first pair holds the left/right advance extents, the remaining pairs are
// coordinates relative to the baseline symbol 'R', with the pair " R" acting
// as a pen-lift marker between polylines.
package hershey

import (
	"errors"
	"fmt"

	"github.com/fontobene/strokeconv"
)

// The symbol alphabet is printable ASCII; values are offsets from the
// baseline symbol.
const (
	alphabetMin = ' '
	alphabetMax = '~'
	baseline    = 'R'
)

// yBaseline is the vertical offset in stroke units between the Hershey and
// the FontoBene baseline. The y-axis is inverted between the two.
const yBaseline = 9

// ReplacementGlyph is the stroke buffer NewStroke repeats for every codepoint
// it has no drawing for. It is skipped during a table sweep and re-synthesized
// once at U+FFFD.
const ReplacementGlyph = `F^K[KFYFY[K[`

// ErrMalformedGlyph is returned for stroke buffers that do not follow the
// packed encoding.
var ErrMalformedGlyph = errors.New("hershey: malformed glyph data")

// decodeX converts a symbol to an x-coordinate in FontoBene units.
func decodeX(c byte) float64 {
	return float64(int(c)-baseline) * strokeconv.Scale
}

// decodeY converts a symbol to a y-coordinate in FontoBene units.
func decodeY(c byte) float64 {
	return float64(yBaseline-(int(c)-baseline)) * strokeconv.Scale
}

// Decode splits a raw stroke buffer into its polylines and returns them
// together with the left and right advance extents. Decoded vertices carry
// zero arc angles. Empty polyline segments between consecutive pen-lift
// markers are dropped.
//
// Stroke tables are known to contain minor irregularities; Decode rejects the
// glyph whole with ErrMalformedGlyph on any symbol outside the alphabet, a
// buffer too short for the extent pair, or an odd symbol count, since a
// shifted symbol stream would garble every following coordinate silently.
// Callers are expected to skip the glyph and continue the batch.
func Decode(buffer string) ([]strokeconv.Polyline, float64, float64, error) {
	if len(buffer) < 2 {
		return nil, 0.0, 0.0, fmt.Errorf("%w: missing extent symbols", ErrMalformedGlyph)
	} else if len(buffer)%2 != 0 {
		return nil, 0.0, 0.0, fmt.Errorf("%w: odd symbol count %d", ErrMalformedGlyph, len(buffer))
	}
	for i := 0; i < len(buffer); i++ {
		if buffer[i] < alphabetMin || alphabetMax < buffer[i] {
			return nil, 0.0, 0.0, fmt.Errorf("%w: symbol 0x%02X at offset %d outside alphabet", ErrMalformedGlyph, buffer[i], i)
		}
	}
	left, right := decodeX(buffer[0]), decodeX(buffer[1])

	var polylines []strokeconv.Polyline
	var cur strokeconv.Polyline
	body := buffer[2:]
	for i := 0; i < len(body); i += 2 {
		if body[i] == ' ' && body[i+1] == 'R' {
			// pen lift
			if 0 < len(cur) {
				polylines = append(polylines, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, strokeconv.Vertex{Point: strokeconv.Point{X: decodeX(body[i]), Y: decodeY(body[i+1])}})
	}
	if 0 < len(cur) {
		polylines = append(polylines, cur)
	}
	return polylines, left, right, nil
}
