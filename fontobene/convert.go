package fontobene

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/fontobene/strokeconv"
	"github.com/fontobene/strokeconv/hershey"
)

// ReplacementCodepoint is where the replacement glyph is re-synthesized after
// the main sweep; NewStroke has no entry for U+FFFD itself.
const ReplacementCodepoint = '\uFFFD'

// ConvertGlyph decodes a stroke buffer, detects arcs in every polyline and
// left-aligns the result to a glyph ready for serialization.
func ConvertGlyph(codepoint rune, buffer string) (strokeconv.Glyph, error) {
	polylines, left, right, err := hershey.Decode(buffer)
	if err != nil {
		return strokeconv.Glyph{}, fmt.Errorf("U+%04X: %w", codepoint, err)
	}
	for i, p := range polylines {
		polylines[i] = p.Segment()
	}
	return strokeconv.Normalize(codepoint, polylines, left, right), nil
}

// Convert writes the FontoBene conversion of a whole glyph table to w, in
// ascending codepoint order. Buffers holding the replacement glyph are
// skipped during the sweep and the replacement glyph is appended once at
// U+FFFD. A malformed glyph is dropped from the output but never aborts the
// batch; all per-glyph errors are joined into the returned error. With
// opts.Workers > 1 the glyphs are converted concurrently and merged back in
// codepoint order.
func Convert(glyphs map[rune]string, w io.Writer, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	codepoints := make([]rune, 0, len(glyphs)+1)
	for codepoint, buffer := range glyphs {
		if buffer == hershey.ReplacementGlyph {
			continue
		}
		codepoints = append(codepoints, codepoint)
	}
	sort.Slice(codepoints, func(i, j int) bool { return codepoints[i] < codepoints[j] })
	codepoints = append(codepoints, ReplacementCodepoint)

	blocks := make([]string, len(codepoints))
	errs := make([]error, len(codepoints))
	convert := func(i int) {
		codepoint := codepoints[i]
		buffer := hershey.ReplacementGlyph
		if codepoint != ReplacementCodepoint {
			buffer = glyphs[codepoint]
		}
		g, err := ConvertGlyph(codepoint, buffer)
		if err != nil {
			errs[i] = err
			return
		}
		blocks[i] = FormatGlyph(g)
	}

	if 1 < opts.Workers {
		var group errgroup.Group
		group.SetLimit(opts.Workers)
		for i := range codepoints {
			i := i
			group.Go(func() error {
				convert(i)
				return nil
			})
		}
		group.Wait()
	} else {
		for i := range codepoints {
			convert(i)
		}
	}

	fw := New(w, opts)
	for i := range codepoints {
		if errs[i] != nil {
			continue
		}
		fw.write(blocks[i])
		fw.write("\n")
	}
	if fw.err != nil {
		return fw.err
	}
	return errors.Join(errs...)
}
