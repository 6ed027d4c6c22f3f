package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

// parseStatementList читает операторы до end. prologue включает распознавание
// директив ("use strict") в начале файла или тела функции.
func (p *Parser) parseStatementList(end token.Kind, prologue bool) []ast.StmtID {
	var out []ast.StmtID
	for !p.at(end) && !p.at(token.EOF) {
		start := p.pos
		if prologue {
			if id, ok := p.parseDirective(); ok {
				out = append(out, id)
				continue
			}
			prologue = false
		}
		id, ok := p.parseStatement()
		if !ok {
			p.resyncStatement(start)
			continue
		}
		out = append(out, id)
	}
	return out
}

// parseDirective распознаёт строковый оператор-выражение пролога.
func (p *Parser) parseDirective() (ast.StmtID, bool) {
	tok := p.peek()
	if tok.Kind != token.StringLit {
		return ast.NoStmtID, false
	}
	next := p.peekN(1)
	if next.Kind != token.Semicolon && next.Kind != token.RBrace && next.Kind != token.EOF && !next.NewlineBefore() {
		return ast.NoStmtID, false
	}
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewExpr(p.spanFrom(tok.Span), expr, true), true
}

func (p *Parser) parseStatement() (ast.StmtID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return p.arenas.Stmts.NewEmpty(tok.Span), true
	case token.KwVar, token.KwLet, token.KwConst:
		id, ok := p.parseVarDecl(true)
		if !ok {
			return ast.NoStmtID, false
		}
		p.consumeSemicolon()
		p.extendStmtSpan(id)
		return id, true
	case token.KwFunction:
		return p.parseFnDecl()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwThrow:
		return p.parseThrow()
	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()
	case token.KwTry:
		return p.parseTry()
	case token.KwWith:
		return p.parseWith()
	case token.Ident:
		if p.peekN(1).Kind == token.Colon {
			return p.parseLabeled()
		}
	}
	return p.parseExprStmt()
}

func (p *Parser) extendStmtSpan(id ast.StmtID) {
	st := p.arenas.Stmts.Get(id)
	st.Span = st.Span.Cover(p.lastSpan)
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.peek().Span
	expr, ok := p.parseExpression()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewExpr(p.spanFrom(start), expr, false), true
}

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}
	stmts := p.parseStatementList(token.RBrace, false)
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'")
	return p.arenas.Stmts.NewBlock(p.spanFrom(open.Span), stmts), true
}

// parseVarDecl разбирает var/let/const без завершающей ';'.
// requireInit=false используется в заголовке for-in/of.
func (p *Parser) parseVarDecl(requireInit bool) (ast.StmtID, bool) {
	kw := p.advance()
	kind := ast.VarVar
	switch kw.Kind {
	case token.KwLet:
		kind = ast.VarLet
	case token.KwConst:
		kind = ast.VarConst
	}
	var decls []ast.VarDeclarator
	for {
		name, ok := p.parseBindingTarget()
		if !ok {
			return ast.NoStmtID, false
		}
		decl := ast.VarDeclarator{Name: name}
		if p.eat(token.Assign) {
			init, ok := p.parseAssign()
			if !ok {
				return ast.NoStmtID, false
			}
			decl.Init = init
		} else if requireInit {
			if kind == ast.VarConst {
				p.report(diag.SynConstWithoutInit, diag.SevError, p.arenas.Pats.Get(name).Span, "missing initializer in const declaration")
			} else if _, isIdent := p.arenas.Pats.Ident(name); !isIdent {
				p.report(diag.SynBadPattern, diag.SevError, p.arenas.Pats.Get(name).Span, "destructuring declaration requires an initializer")
			}
		}
		decls = append(decls, decl)
		if !p.eat(token.Comma) {
			break
		}
	}
	return p.arenas.Stmts.NewVar(p.spanFrom(kw.Span), kind, decls), true
}

func (p *Parser) parseLabeled() (ast.StmtID, bool) {
	label := p.advance()
	p.advance() // ':'
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	name := p.arenas.Strings.Intern(label.Text)
	return p.arenas.Stmts.NewLabeled(p.spanFrom(label.Span), name, body), true
}
