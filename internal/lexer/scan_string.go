package lexer

import (
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

// scanString сканирует '...' или "...". Escape-последовательности проверяются
// только на границы; значение строит Unquote.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			if _, ok := Unquote(text); !ok {
				lx.errLex(diag.LexBadEscape, sp, "invalid escape sequence in string literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: text}
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: text}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump() // line continuation "\\\n" тоже допустима
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanTemplate consumes a template literal and reports it as unsupported.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '`' {
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnsupportedTemplate, sp, "template literals are not supported")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
