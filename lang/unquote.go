package lang

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// unquote decodes a PHP single- or double-quoted string literal, including
// an optional binary "b" prefix. It reports false when s is not a quoted
// literal.
func unquote(s string) (string, bool) {
	if len(s) > 0 && (s[0] == 'b' || s[0] == 'B') {
		s = s[1:]
	}

	if len(s) < 2 || s[0] != s[len(s)-1] {
		return "", false
	}

	switch body := s[1 : len(s)-1]; s[0] {
	case '\'':
		return unquoteSingle(body), true

	case '"':
		return unquoteDouble(body), true

	default:
		return "", false
	}
}

// unquoteSingle handles the two escapes of single-quoted strings: \\ and \'.
// Any other backslash is literal.
func unquoteSingle(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == '\'') {
			i++
		}

		sb.WriteByte(s[i])
	}

	return sb.String()
}

// simpleEscapes maps the single-character escapes of double-quoted strings.
var simpleEscapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'v':  '\v',
	'e':  0x1b,
	'f':  '\f',
	'\\': '\\',
	'$':  '$',
	'"':  '"',
}

// unquoteDouble decodes double-quoted escapes. Unknown escapes keep their
// backslash.
func unquoteDouble(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)

			continue
		}

		next := s[i+1]

		if b, ok := simpleEscapes[next]; ok {
			sb.WriteByte(b)
			i++

			continue
		}

		switch {
		case isOctal(next):
			j := i + 1
			for j < len(s) && j < i+4 && isOctal(s[j]) {
				j++
			}

			n, _ := strconv.ParseUint(s[i+1:j], 8, 16)
			sb.WriteByte(byte(n))
			i = j - 1

		case next == 'x' && i+2 < len(s) && isHex(s[i+2]):
			j := i + 2
			for j < len(s) && j < i+4 && isHex(s[j]) {
				j++
			}

			n, _ := strconv.ParseUint(s[i+2:j], 16, 8)
			sb.WriteByte(byte(n))
			i = j - 1

		case next == 'u' && i+2 < len(s) && s[i+2] == '{':
			end := strings.IndexByte(s[i+3:], '}')
			if end < 0 {
				sb.WriteByte(c)

				continue
			}

			n, err := strconv.ParseUint(s[i+3:i+3+end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(n)) {
				sb.WriteByte(c)

				continue
			}

			sb.WriteRune(rune(n))
			i += 3 + end

		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// Quote returns s as a PHP single-quoted string literal.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(s) + "'"
}
