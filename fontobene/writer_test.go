package fontobene

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"github.com/fontobene/strokeconv"
)

var testOptions = Options{
	Name:          "Test",
	ID:            "test",
	Version:       "0.1",
	Authors:       []string{"Someone"},
	License:       "MIT",
	LetterSpacing: 1.8,
	LineSpacing:   16,
}

const testHeader = `[format]
format = FontoBene
format_version = 1.0

[font]
name = Test
id = test
version = 0.1
author = Someone
license = MIT
letter_spacing = 1.8
line_spacing = 16

---

`

func TestFormatGlyph(t *testing.T) {
	g := strokeconv.Glyph{Codepoint: 'A', Polylines: []strokeconv.Polyline{
		{
			{Point: strokeconv.Point{X: 0.0, Y: 0.0}, Angle: 6.75},
			{Point: strokeconv.Point{X: 0.5, Y: 1.0}},
		},
		{
			{Point: strokeconv.Point{X: 1.29, Y: -0.004}},
		},
	}}
	test.T(t, FormatGlyph(g), "[0041] A\n0,0,6.75;.5,1\n1.29,0\n")
}

func TestFormatGlyphWhitespace(t *testing.T) {
	g := strokeconv.Glyph{Codepoint: ' ', Advance: 3.6}
	test.T(t, FormatGlyph(g), "[0020]  \n~3.6\n")
}

func TestWriterHeader(t *testing.T) {
	var sb strings.Builder
	opts := testOptions
	fw := New(&sb, &opts)
	test.Error(t, fw.Err())
	test.T(t, sb.String(), testHeader)
}

func TestWriterDefaultHeader(t *testing.T) {
	var sb strings.Builder
	fw := New(&sb, nil)
	test.Error(t, fw.Err())
	test.That(t, strings.HasPrefix(sb.String(), "# This font was automatically converted"))
	test.That(t, strings.Contains(sb.String(), "\nid = fontostroke\n"))
}

func TestWriterGlyphs(t *testing.T) {
	var sb strings.Builder
	opts := testOptions
	fw := New(&sb, &opts)
	test.Error(t, fw.WriteGlyph(strokeconv.Glyph{Codepoint: ' ', Advance: 3.6}))
	test.T(t, sb.String(), testHeader+"[0020]  \n~3.6\n\n")
}
