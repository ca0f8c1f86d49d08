package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// scanString finds the end of the string literal that starts at data[0],
// which must be a quote. It returns the length of the literal, quotes
// included. A literal that is cut short by a newline or the end of input
// is returned with ok set to false; its length then stops before the
// newline.
func scanString(data []byte) (n int, ok bool) {
	quote := data[0]
	for i := 1; i < len(data); i++ {
		switch data[i] {
		case quote:
			return i + 1, true
		case '\n':
			return i, false
		case '\\':
			if i+1 < len(data) && data[i+1] != '\n' {
				i++
			}
		}
	}
	return len(data), false
}

// unquote decodes the body of a string literal, the text between its
// quotes, applying all of the escapes protobuf allows.
func unquote(body string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(body))
	for len(body) > 0 {
		c, sz := utf8.DecodeRuneInString(body)
		body = body[sz:]
		if c == 0 {
			return "", errors.New("null character ('\\0') not allowed in string literal")
		}
		if c != '\\' {
			buf.WriteRune(c)
			continue
		}
		if len(body) == 0 {
			return "", errors.New("invalid escape sequence: \"\\\" at end of string")
		}
		c, sz = utf8.DecodeRuneInString(body)
		body = body[sz:]
		switch {
		case c == 'x' || c == 'X':
			// hex escape, one or two digits
			n := prefixLen(body, 2, isHex)
			if n == 0 {
				return "", fmt.Errorf("invalid hex escape: \\%c%q", c, firstRune(body))
			}
			i, _ := strconv.ParseUint(body[:n], 16, 8)
			buf.WriteByte(byte(i))
			body = body[n:]

		case c >= '0' && c <= '7':
			// octal escape, one to three digits
			n := prefixLen(body, 2, isOctal)
			octal := string(c) + body[:n]
			body = body[n:]
			i, _ := strconv.ParseUint(octal, 8, 16)
			if i > 0xff {
				return "", fmt.Errorf("octal escape is out range, must be between 0 and 377: \\%s", octal)
			}
			buf.WriteByte(byte(i))

		case c == 'u' || c == 'U':
			// unicode escape, four or eight digits
			size := 4
			if c == 'U' {
				size = 8
			}
			if prefixLen(body, size, isHex) != size {
				return "", fmt.Errorf("invalid unicode escape: \\%c%s", c, body[:min(len(body), size)])
			}
			i, _ := strconv.ParseUint(body[:size], 16, 32)
			if i > utf8.MaxRune {
				return "", fmt.Errorf("unicode escape is out of range, must be between 0 and 0x10ffff: \\%c%s", c, body[:size])
			}
			buf.WriteRune(rune(i))
			body = body[size:]

		default:
			b, ok := simpleEscapes[c]
			if !ok {
				return "", fmt.Errorf("invalid escape sequence: %q", "\\"+string(c))
			}
			buf.WriteByte(b)
		}
	}
	return buf.String(), nil
}

var simpleEscapes = map[rune]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'?':  '?',
}

func prefixLen(s string, limit int, pred func(byte) bool) int {
	n := 0
	for n < limit && n < len(s) && pred(s[n]) {
		n++
	}
	return n
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(s)
	return s[:sz]
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}
