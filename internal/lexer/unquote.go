package lexer

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote returns the cooked value of a quoted string literal. Lone
// surrogates from \u escapes are kept as U+FFFD.
func Unquote(raw string) (string, bool) {
	if len(raw) < 2 || (raw[0] != '"' && raw[0] != '\'') || raw[len(raw)-1] != raw[0] {
		return "", false
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body, true
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		c = body[i]
		i++
		switch c {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			if i < len(body) && isDec(body[i]) {
				return "", false // legacy octal
			}
			sb.WriteByte(0)
		case '\n':
			// продолжение строки
		case 'x':
			if i+2 > len(body) || !isHex(body[i]) || !isHex(body[i+1]) {
				return "", false
			}
			sb.WriteRune(rune(hexVal(body[i])<<4 | hexVal(body[i+1])))
			i += 2
		case 'u':
			r, n, ok := unicodeEscape(body[i:])
			if !ok {
				return "", false
			}
			i += n
			// суррогатная пара 😀
			if utf16.IsSurrogate(r) && i+1 < len(body) && body[i] == '\\' && body[i+1] == 'u' {
				if r2, n2, ok2 := unicodeEscape(body[i+2:]); ok2 {
					if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
						r = pair
						i += 2 + n2
					}
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			sb.WriteRune(r)
		default:
			if isDec(c) {
				return "", false
			}
			sb.WriteByte(c)
		}
	}
	return sb.String(), true
}

func unicodeEscape(s string) (r rune, n int, ok bool) {
	if s != "" && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 2 || end > 7 {
			return 0, 0, false
		}
		var v rune
		for i := 1; i < end; i++ {
			if !isHex(s[i]) {
				return 0, 0, false
			}
			v = v<<4 | hexVal(s[i])
		}
		if v > utf8.MaxRune {
			return 0, 0, false
		}
		return v, end + 1, true
	}
	if len(s) < 4 {
		return 0, 0, false
	}
	var v rune
	for i := 0; i < 4; i++ {
		if !isHex(s[i]) {
			return 0, 0, false
		}
		v = v<<4 | hexVal(s[i])
	}
	return v, 4, true
}

func hexVal(b byte) rune {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0')
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10
	default:
		return rune(b-'A') + 10
	}
}
