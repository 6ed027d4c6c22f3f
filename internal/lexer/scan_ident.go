package lexer

import (
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	first := true
	escaped := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' {
			// \uXXXX внутри идентификатора: не поддерживаем, но съедаем целиком
			escaped = true
			lx.cursor.Bump()
			if lx.cursor.Eat('u') {
				for i := 0; i < 4 && isHex(lx.cursor.Peek()); i++ {
					lx.cursor.Bump()
				}
			}
			first = false
			continue
		}
		if b < utf8RuneSelf {
			if (first && !isIdentStartByte(b)) || (!first && !isIdentContinueByte(b)) {
				break
			}
			lx.cursor.Bump()
			first = false
			continue
		}
		r, _ := lx.peekRune()
		if (first && !isIdentStartRune(r)) || (!first && !isIdentContinueRune(r)) {
			break
		}
		lx.bumpRune()
		first = false
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		// одиночный не-идентификаторный символ Unicode
		lx.bumpRune()
		sp = lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	text := lx.text(sp)
	if escaped {
		lx.errLex(diag.LexBadEscape, sp, "unicode escapes in identifiers are not supported")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
