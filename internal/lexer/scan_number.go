package lexer

import (
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1_000.
// Значение вычисляет ast.ParseNumber; здесь только границы токена.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x', 'X':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := lx.eatDigits(digit)
			return lx.finishNumber(start, n == 0)
		}
	}

	bad := false
	if lx.cursor.Peek() != '.' {
		lx.eatDigits(isDec)
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.eatDigits(isDec) == 0 {
			bad = true
		}
	}
	return lx.finishNumber(start, bad)
}

func (lx *Lexer) eatDigits(digit func(byte) bool) int {
	n := 0
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			n++
			lx.cursor.Bump()
			continue
		}
		if b == '_' && n > 0 && digit(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		return n
	}
}

func (lx *Lexer) finishNumber(start Mark, bad bool) token.Token {
	// идентификатор сразу после числа ("3in"): ошибка
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		bad = true
	}
	sp := lx.cursor.SpanFrom(start)
	if bad {
		lx.errLex(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
