package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bsEscQuoted scans a double-quoted string with backslash escapes at the
// start of d and returns the number of bytes scanned, quotes included.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	i := 1
	n := len(d)
	for i < n {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case utf8.RuneError:
			return 0, ErrBadUTF8
		case '"':
			if !escaped {
				return i, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if i+4 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i : i+4]) {
					return i, ErrBadUnicode
				}
			}
			escaped = false
		case '/', 'b', 'f', 'n', 'r', 't':
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			if unicode.IsControl(r) {
				return i, ErrUnicodeControl
			}
			if escaped {
				return i, ErrBadEscape
			}
		}
	}
	return 0, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// QuotedToString decodes a scanned string lexeme, quotes included, into
// its value.  The lexeme must have been validated by bsEscQuoted.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	i := 1
	esc := false
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		i += sz
		switch r {
		case '\\':
			if esc {
				b.WriteByte('\\')
			}
			esc = !esc
		case '"':
			if !esc {
				return b.String()
			}
			b.WriteByte('"')
			esc = false
		default:
			if !esc {
				b.WriteRune(r)
				continue
			}
			esc = false
			switch r {
			case 't':
				b.WriteByte('\t')
			case 'n':
				b.WriteByte('\n')
			case 'f':
				b.WriteByte('\f')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case '/':
				b.WriteByte('/')
			case 'u':
				if len(d[i:]) < 4 {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				dst := []byte{0, 0}
				if _, err := hex.Decode(dst, d[i:i+4]); err != nil {
					b.WriteRune(utf8.RuneError)
					return b.String()
				}
				b.WriteRune(rune(dst[0])<<8 | rune(dst[1]))
				i += 4
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
