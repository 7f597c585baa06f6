// Package textnorm turns raw fragments of the tunnel's wire format into
// displayable text.
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

var (
	quoteEscapes   = strings.NewReplacer(`\n`, "\n", `\"`, `"`, `\'`, `'`)
	controlEscapes = strings.NewReplacer(`\t`, "\t", `\r`, "\r", `\b`, "\b", `\f`, "\f", `\v`, "\v")
	backslashes    = strings.NewReplacer(`\\`, `\`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normalize converts a complete response into display text. It unescapes the
// payload, drops the framing residue of a truncated envelope (one trailing
// `"}` and one leading `"`), collapses runs of three or more newlines to two
// and trims surrounding whitespace.
func Normalize(raw string) string {
	s := NormalizeChunk(raw)
	s = strings.TrimSuffix(s, `"}`)
	s = strings.TrimPrefix(s, `"`)
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// NormalizeChunk only unescapes. It is safe on incomplete mid-stream
// fragments because it never trims or restructures the text.
//
// The order matters: `\\` is folded last so that the earlier passes still see
// the backslash-letter pairs they are looking for.
func NormalizeChunk(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	s := quoteEscapes.Replace(raw)
	s = decodeUnicode(s)
	s = controlEscapes.Replace(s)
	return backslashes.Replace(s)
}

// decodeUnicode replaces \uXXXX sequences with their code points. Surrogate
// pairs are combined; lone surrogates and sequences that are not four hex
// digits are left as they are.
func decodeUnicode(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for {
		idx := strings.Index(s, `\u`)
		if idx < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:idx])
		s = s[idx:]

		r, ok := parseHex4(s[2:])
		if !ok {
			b.WriteString(`\u`)
			s = s[2:]
			continue
		}

		if !utf16.IsSurrogate(r) {
			b.WriteRune(r)
			s = s[6:]
			continue
		}

		if strings.HasPrefix(s[6:], `\u`) {
			if lo, ok := parseHex4(s[8:]); ok {
				if pair := utf16.DecodeRune(r, lo); pair != unicode.ReplacementChar {
					b.WriteRune(pair)
					s = s[12:]
					continue
				}
			}
		}
		b.WriteString(s[:6])
		s = s[6:]
	}
}

func parseHex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
