package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return ast.NoExprID, false
	}
	saved := p.noIn
	p.noIn = false
	expr, ok := p.parseExpression()
	p.noIn = saved
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
		return ast.NoExprID, false
	}
	return expr, true
}

func (p *Parser) parseIf() (ast.StmtID, bool) {
	kw := p.advance()
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	cons, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	alt := ast.NoStmtID
	if p.eat(token.KwElse) {
		if alt, ok = p.parseStatement(); !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewIf(p.spanFrom(kw.Span), test, cons, alt), true
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kw := p.advance()
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLoop(ast.StmtWhile, p.spanFrom(kw.Span), ast.StmtLoopData{Test: test, Body: body}), true
}

func (p *Parser) parseDoWhile() (ast.StmtID, bool) {
	kw := p.advance()
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while'"); !ok {
		return ast.NoStmtID, false
	}
	test, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	// после do-while ';' вставляется всегда
	p.eat(token.Semicolon)
	return p.arenas.Stmts.NewLoop(ast.StmtDoWhile, p.spanFrom(kw.Span), ast.StmtLoopData{Test: test, Body: body}), true
}

// parseFor различает for(;;), for-in и for-of по первому элементу заголовка.
func (p *Parser) parseFor() (ast.StmtID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); !ok {
		return ast.NoStmtID, false
	}

	var loop ast.StmtLoopData
	switch {
	case p.at(token.Semicolon):
	case p.atOr(token.KwVar, token.KwLet, token.KwConst):
		p.noIn = true
		decl, ok := p.parseVarDecl(false)
		p.noIn = false
		if !ok {
			return ast.NoStmtID, false
		}
		if p.at(token.KwIn) || p.atContextual("of") {
			v, _ := p.arenas.Stmts.Var(decl)
			if len(v.Decls) != 1 || v.Decls[0].Init.IsValid() {
				p.report(diag.SynForBadHeader, diag.SevError, p.arenas.Stmts.Get(decl).Span, "for-in/of declaration must have exactly one binding without initializer")
			}
			return p.parseForInOfRest(kw.Span, decl, ast.NoPatID)
		}
		p.checkDeclInits(decl)
		loop.InitDecl = decl
	default:
		p.noIn = true
		init, ok := p.parseExpression()
		p.noIn = false
		if !ok {
			return ast.NoStmtID, false
		}
		if p.at(token.KwIn) || p.atContextual("of") {
			target, ok := p.exprToPat(init, true)
			if !ok {
				return ast.NoStmtID, false
			}
			return p.parseForInOfRest(kw.Span, ast.NoStmtID, target)
		}
		loop.InitExpr = init
	}

	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' in for header"); !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.Semicolon) {
		test, ok := p.parseExpression()
		if !ok {
			return ast.NoStmtID, false
		}
		loop.Test = test
	}
	if _, ok := p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' in for header"); !ok {
		return ast.NoStmtID, false
	}
	if !p.at(token.RParen) {
		update, ok := p.parseExpression()
		if !ok {
			return ast.NoStmtID, false
		}
		loop.Update = update
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	loop.Body = body
	return p.arenas.Stmts.NewLoop(ast.StmtFor, p.spanFrom(kw.Span), loop), true
}

// checkDeclInits: const и деструктуризация в for(;;) требуют инициализатор.
func (p *Parser) checkDeclInits(decl ast.StmtID) {
	v, _ := p.arenas.Stmts.Var(decl)
	for _, d := range v.Decls {
		if d.Init.IsValid() {
			continue
		}
		if v.Kind == ast.VarConst {
			p.report(diag.SynConstWithoutInit, diag.SevError, p.arenas.Pats.Get(d.Name).Span, "missing initializer in const declaration")
		}
	}
}

func (p *Parser) parseForInOfRest(start source.Span, decl ast.StmtID, target ast.PatID) (ast.StmtID, bool) {
	kind := ast.StmtForIn
	if p.atContextual("of") {
		kind = ast.StmtForOf
	}
	p.advance()
	var (
		right ast.ExprID
		ok    bool
	)
	if kind == ast.StmtForOf {
		right, ok = p.parseAssign()
	} else {
		right, ok = p.parseExpression()
	}
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewForInOf(kind, p.spanFrom(start), ast.StmtForInOfData{
		LeftDecl: decl,
		LeftPat:  target,
		Right:    right,
		Body:     body,
	}), true
}

func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	if p.inFunc == 0 {
		p.report(diag.SynUnexpectedToken, diag.SevError, kw.Span, "'return' outside of function")
	}
	arg := ast.NoExprID
	if !p.canInsertSemicolon() {
		var ok bool
		if arg, ok = p.parseExpression(); !ok {
			return ast.NoStmtID, false
		}
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewJump(ast.StmtReturn, p.spanFrom(kw.Span), arg, 0), true
}

func (p *Parser) parseThrow() (ast.StmtID, bool) {
	kw := p.advance()
	if p.peek().NewlineBefore() {
		p.err(diag.SynExpectExpression, "illegal newline after 'throw'")
		return ast.NoStmtID, false
	}
	arg, ok := p.parseExpression()
	if !ok {
		return ast.NoStmtID, false
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewJump(ast.StmtThrow, p.spanFrom(kw.Span), arg, 0), true
}

func (p *Parser) parseBreakContinue() (ast.StmtID, bool) {
	kw := p.advance()
	kind := ast.StmtBreak
	if kw.Kind == token.KwContinue {
		kind = ast.StmtContinue
	}
	var label source.StringID
	if p.at(token.Ident) && !p.peek().NewlineBefore() {
		label = p.arenas.Strings.Intern(p.advance().Text)
	}
	p.consumeSemicolon()
	return p.arenas.Stmts.NewJump(kind, p.spanFrom(kw.Span), ast.NoExprID, label), true
}

func (p *Parser) parseTry() (ast.StmtID, bool) {
	kw := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	data := ast.StmtTryData{Block: block}
	if p.eat(token.KwCatch) {
		if p.eat(token.LParen) {
			param, ok := p.parseBindingTarget()
			if !ok {
				return ast.NoStmtID, false
			}
			data.Param = param
			if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); !ok {
				return ast.NoStmtID, false
			}
		}
		if data.Handler, ok = p.parseBlock(); !ok {
			return ast.NoStmtID, false
		}
	}
	if p.eat(token.KwFinally) {
		if data.Finalizer, ok = p.parseBlock(); !ok {
			return ast.NoStmtID, false
		}
	}
	if !data.Handler.IsValid() && !data.Finalizer.IsValid() {
		p.report(diag.SynMissingCatchOrFinally, diag.SevError, kw.Span, "missing catch or finally after try")
	}
	return p.arenas.Stmts.NewTry(p.spanFrom(kw.Span), data), true
}

func (p *Parser) parseWith() (ast.StmtID, bool) {
	kw := p.advance()
	obj, ok := p.parseParenExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWith(p.spanFrom(kw.Span), obj, body), true
}
