package redaction

import (
	"strconv"
	"strings"
)

// unescapeLegacyValue resolves backslash-escape sequences in a legacy rule
// value. The escape table is fixed and independent of host encoding defaults:
// the simple escapes (\\ \' \" \a \b \f \n \r \t \v), up to three octal
// digits, \xhh, \uXXXX, and \UXXXXXXXX. A backslash introducing anything else
// passes through literally, as does a malformed numeric escape.
func unescapeLegacyValue(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			out.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '\\':
			out.WriteByte('\\')
		case '\'':
			out.WriteByte('\'')
		case '"':
			out.WriteByte('"')
		case 'a':
			out.WriteByte('\a')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'v':
			out.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			n, _ := strconv.ParseUint(s[i:j], 8, 32)
			out.WriteRune(rune(n))
			i = j - 1
		case 'x':
			if r, width, ok := parseHexEscape(s[i+1:], 2); ok {
				out.WriteRune(r)
				i += width
			} else {
				out.WriteString(`\x`)
			}
		case 'u':
			if r, width, ok := parseHexEscape(s[i+1:], 4); ok {
				out.WriteRune(r)
				i += width
			} else {
				out.WriteString(`\u`)
			}
		case 'U':
			if r, width, ok := parseHexEscape(s[i+1:], 8); ok {
				out.WriteRune(r)
				i += width
			} else {
				out.WriteString(`\U`)
			}
		default:
			// Unknown escape: keep the backslash and the character.
			out.WriteByte('\\')
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

// parseHexEscape reads exactly digits hex digits from the front of s and
// returns the decoded rune and the number of bytes consumed.
func parseHexEscape(s string, digits int) (rune, int, bool) {
	if len(s) < digits {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(s[:digits], 16, 32)
	if err != nil || n > 0x10FFFF {
		return 0, 0, false
	}
	return rune(n), digits, true
}
