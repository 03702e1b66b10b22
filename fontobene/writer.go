// Package fontobene serializes converted glyphs into the FontoBene text
// format and drives the batch conversion of a whole stroke-font table.
package fontobene

import (
	"fmt"
	"io"
	"strings"

	"github.com/fontobene/strokeconv"
)

// FormatVersion is the FontoBene format version emitted into the header.
const FormatVersion = "1.0"

// Options hold the font metadata of the emitted file and the batch settings
// of Convert.
type Options struct {
	Name          string
	ID            string
	Version       string
	Authors       []string
	License       string
	LetterSpacing float64
	LineSpacing   float64
	Comment       []string

	// Workers is the number of concurrent glyph conversions of Convert;
	// values below 2 convert sequentially.
	Workers int
}

// DefaultOptions are the FontoStroke metadata of the NewStroke conversion.
var DefaultOptions = Options{
	Name:          "FontoStroke",
	ID:            "fontostroke",
	Version:       "1.0",
	Authors:       []string{"StrokeFont Developers", "FontoBene Developers"},
	License:       "CC0-1.0",
	LetterSpacing: 1.8,
	LineSpacing:   16,
	Comment: []string{
		"This font was automatically converted from StrokeFont to FontoBene.",
		"- StrokeFont project:        http://vovanium.ru/sledy/newstroke/en",
		"- FontoBene specifications:  https://github.com/fontobene/fontobene",
		"- Converter script:          https://github.com/fontobene/fontobene-converters",
		"",
		"As the StrokeFont is released under the CC0-1.0 license, the converted",
		"FontoBene font is released under the same license. CC0 licence text:",
		"http://creativecommons.org/publicdomain/zero/1.0/",
	},
}

// Writer emits a FontoBene font file: the header once on creation, then one
// block per glyph.
type Writer struct {
	w    io.Writer
	opts *Options
	err  error
}

// New returns a FontoBene font writer and writes the file header.
func New(w io.Writer, opts *Options) *Writer {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	fw := &Writer{w: w, opts: opts}
	fw.writeHeader()
	return fw
}

// WriteGlyph appends one glyph block followed by a blank line.
func (fw *Writer) WriteGlyph(g strokeconv.Glyph) error {
	fw.write(FormatGlyph(g))
	fw.write("\n")
	return fw.err
}

// Err returns the first write error.
func (fw *Writer) Err() error {
	return fw.err
}

func (fw *Writer) write(s string) {
	if fw.err == nil {
		_, fw.err = io.WriteString(fw.w, s)
	}
}

func (fw *Writer) writeHeader() {
	var sb strings.Builder
	for _, line := range fw.opts.Comment {
		if line == "" {
			sb.WriteString("#\n")
		} else {
			fmt.Fprintf(&sb, "# %s\n", line)
		}
	}
	if 0 < len(fw.opts.Comment) {
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "[format]\nformat = FontoBene\nformat_version = %s\n\n", FormatVersion)
	sb.WriteString("[font]\n")
	fmt.Fprintf(&sb, "name = %s\n", fw.opts.Name)
	fmt.Fprintf(&sb, "id = %s\n", fw.opts.ID)
	fmt.Fprintf(&sb, "version = %s\n", fw.opts.Version)
	for _, author := range fw.opts.Authors {
		fmt.Fprintf(&sb, "author = %s\n", author)
	}
	fmt.Fprintf(&sb, "license = %s\n", fw.opts.License)
	fmt.Fprintf(&sb, "letter_spacing = %s\n", Number(fw.opts.LetterSpacing))
	fmt.Fprintf(&sb, "line_spacing = %s\n", Number(fw.opts.LineSpacing))
	sb.WriteString("\n---\n\n")
	fw.write(sb.String())
}

// FormatGlyph renders one glyph block: the codepoint header line followed by
// one line per polyline of ;-separated x,y[,angle] vertices, or a single
// ~advance line for whitespace glyphs. Zero angles are omitted.
func FormatGlyph(g strokeconv.Glyph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%04X] %s\n", g.Codepoint, string(g.Codepoint))
	if g.Whitespace() {
		fmt.Fprintf(&sb, "~%s\n", Number(g.Advance))
		return sb.String()
	}
	for _, p := range g.Polylines {
		for j, v := range p {
			if 0 < j {
				sb.WriteByte(';')
			}
			sb.WriteString(Number(v.X))
			sb.WriteByte(',')
			sb.WriteString(Number(v.Y))
			if v.Angle != 0.0 {
				sb.WriteByte(',')
				sb.WriteString(Number(v.Angle))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
