// Package lff converts LibreCAD LFF fonts to FontoBene. Unlike the stroke
// font conversion this is pure line-oriented text rewriting: LFF is already a
// vector format with arcs, only the arc measure, references, codepoint labels
// and header metadata differ.
package lff

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FormatVersion is written into the synthesized header of converted fonts.
const FormatVersion = "0.0.0"

var (
	arcRe       = regexp.MustCompile(`A-?[0-9\.]+`)
	refRe       = regexp.MustCompile(`C([0-9a-fA-F]{4,6})`)
	metadataRe  = regexp.MustCompile(`^#\s*([a-zA-Z0-9]*):\s+(.+)`)
	codepointRe = regexp.MustCompile(`^(\[[0-9a-zA-Z]{4,6}\])(.*)`)
	nonIDRe     = regexp.MustCompile(`[^a-zA-Z\-]`)
)

// convertArc rewrites an LFF arc bulge value into a FontoBene angle.
func convertArc(match string) string {
	val, err := strconv.ParseFloat(match[1:], 64)
	if err != nil {
		return match
	}
	deg := math.Atan(val) * 4.0 / math.Pi
	s := strconv.FormatFloat(deg*9.0, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		// integral values keep their decimal point, like Python's str(float)
		s += ".0"
	}
	return s
}

// convertLine applies the per-line substitutions: arc values, glyph
// references and codepoint labels.
func convertLine(line string) string {
	line = arcRe.ReplaceAllStringFunc(line, convertArc)
	line = refRe.ReplaceAllStringFunc(line, func(m string) string {
		return "@" + strings.ToUpper(m[1:])
	})
	if m := codepointRe.FindStringSubmatch(line); m != nil {
		line = strings.ToUpper(m[1]) + m[2]
	}
	return line
}

// Convert rewrites the LFF font read from r into a FontoBene font on w. The
// leading comment block is kept; its "# key: value" entries are harvested and
// a [format]/[font] header is synthesized in place of the first non-comment
// line.
func Convert(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	metadata := map[string]string{}
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if m := metadataRe.FindStringSubmatch(line); m != nil {
			metadata[strings.ToLower(m[1])] = m[2]
		}
		lines = append(lines, convertLine(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	header := true
	for _, line := range lines {
		if header && !strings.HasPrefix(line, "#") {
			header = false
			writeHeader(bw, metadata)
			// the delimiting line is consumed by the header
			continue
		}
		fmt.Fprintln(bw, line)
	}
	return bw.Flush()
}

func writeHeader(w io.Writer, metadata map[string]string) {
	name, ok := metadata["name"]
	if !ok {
		name = "converted"
	}
	id := strings.Trim(strings.ToLower(nonIDRe.ReplaceAllString(name, "")), "-")
	version, ok := metadata["version"]
	if !ok {
		version = "0.0.0"
	}
	author, ok := metadata["author"]
	if !ok {
		if author, ok = metadata["creator"]; !ok {
			author = "converted"
		}
	}
	license, ok := metadata["license"]
	if !ok {
		license = "unknown"
	}

	fmt.Fprintf(w, "\n[format]\nformat = FontoBene\nformat_version = %s\n\n", FormatVersion)
	fmt.Fprintf(w, "[font]\nname = %s\nid = %s\nversion = %s\nauthor = %s\nlicense = %s\n\n",
		name, id, version, author, license)
}
