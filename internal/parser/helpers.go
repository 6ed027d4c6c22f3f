package parser

import (
	"jsmin/internal/diag"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan: на EOF указываем в конец последнего токена
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect ожидает конкретный токен; иначе репортит и возвращает (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// consumeSemicolon реализует автоматическую вставку ';':
// разрешено перед '}', на EOF и после перевода строки.
func (p *Parser) consumeSemicolon() bool {
	if p.eat(token.Semicolon) {
		return true
	}
	if p.atOr(token.RBrace, token.EOF) || p.peek().NewlineBefore() {
		return true
	}
	p.err(diag.SynExpectSemicolon, "expected ';'")
	return false
}

// canInsertSemicolon: для restricted productions (return, break, ...).
func (p *Parser) canInsertSemicolon() bool {
	return p.atOr(token.Semicolon, token.RBrace, token.EOF) || p.peek().NewlineBefore()
}

// resyncStatement прокручивает до ';' (съедая его), '}' или начала следующей строки.
func (p *Parser) resyncStatement(start int) {
	if p.pos == start && !p.at(token.EOF) {
		p.advance()
	}
	for !p.atOr(token.EOF, token.RBrace) {
		if p.eat(token.Semicolon) {
			return
		}
		if p.peek().NewlineBefore() {
			return
		}
		p.advance()
	}
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}
