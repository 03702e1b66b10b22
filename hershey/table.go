package hershey

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// FirstCodepoint is the codepoint of the first glyph table entry.
const FirstCodepoint = 0x20

// Codepoint returns the codepoint encoded at table index i.
func Codepoint(i int) rune {
	return rune(FirstCodepoint + i)
}

// ParseTable extracts the glyph stroke buffers from the newstroke_font C
// array source in table order. It collects the double-quoted string literals,
// concatenates adjacent literals as C does, resolves the escape sequences the
// alphabet needs, and ignores line and block comments. Everything else in the
// source is skipped.
func ParseTable(r io.Reader) ([]string, error) {
	z := parse.NewInput(r)
	var glyphs []string
	for {
		switch c := z.Peek(0); {
		case c == 0:
			if err := z.Err(); err == io.EOF {
				return glyphs, nil
			} else if err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("hershey: unexpected NUL in table source")
		case c == '"':
			var sb strings.Builder
			for z.Peek(0) == '"' {
				if err := parseString(z, &sb); err != nil {
					return nil, err
				}
				for isSpace(z.Peek(0)) {
					z.Move(1)
				}
			}
			glyphs = append(glyphs, sb.String())
		case c == '/' && z.Peek(1) == '/':
			for c := z.Peek(0); c != 0 && c != '\n'; c = z.Peek(0) {
				z.Move(1)
			}
		case c == '/' && z.Peek(1) == '*':
			z.Move(2)
			for z.Peek(0) != 0 && !(z.Peek(0) == '*' && z.Peek(1) == '/') {
				z.Move(1)
			}
			if z.Peek(0) != 0 {
				z.Move(2)
			}
		default:
			z.Move(1)
			z.Skip()
		}
	}
}

// parseString consumes one string literal, including its quotes, and appends
// the unescaped content to sb.
func parseString(z *parse.Input, sb *strings.Builder) error {
	z.Move(1) // opening quote
	for {
		switch c := z.Peek(0); c {
		case 0:
			return fmt.Errorf("hershey: unterminated string literal")
		case '"':
			z.Move(1)
			z.Skip()
			return nil
		case '\\':
			z.Move(1)
			switch e := z.Peek(0); e {
			case '\\', '"', '\'', '?':
				sb.WriteByte(e)
			default:
				return fmt.Errorf("hershey: unsupported escape \\%c in string literal", e)
			}
			z.Move(1)
		default:
			sb.WriteByte(c)
			z.Move(1)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
