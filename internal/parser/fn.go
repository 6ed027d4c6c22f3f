package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

func (p *Parser) parseFnDecl() (ast.StmtID, bool) {
	kw := p.advance()
	if p.at(token.Star) {
		p.err(diag.SynUnexpectedToken, "generator functions are not supported")
		return ast.NoStmtID, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoStmtID, false
	}
	fn, ok := p.parseFunctionRest(kw.Span, true, name)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewFnDecl(p.spanFrom(kw.Span), fn), true
}

func (p *Parser) parseFnExpr() (ast.ExprID, bool) {
	kw := p.advance()
	if p.at(token.Star) {
		p.err(diag.SynUnexpectedToken, "generator functions are not supported")
		return ast.NoExprID, false
	}
	var name token.Token
	hasName := p.at(token.Ident)
	if hasName {
		name = p.advance()
	}
	fn, ok := p.parseFunctionRest(kw.Span, hasName, name)
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewFn(p.spanFrom(kw.Span), fn, false), true
}

// parseFunctionRest разбирает "(params) { body }" после имени.
func (p *Parser) parseFunctionRest(start source.Span, hasName bool, name token.Token) (ast.FuncID, bool) {
	params, ok := p.parseParams()
	if !ok {
		return ast.NoFuncID, false
	}
	body, ok := p.parseFunctionBody()
	if !ok {
		return ast.NoFuncID, false
	}
	fn := ast.Func{
		HasName: hasName,
		Params:  params,
		Body:    body,
		Span:    p.spanFrom(start),
	}
	if hasName {
		fn.Name = p.arenas.Strings.Intern(name.Text)
		fn.NameSpan = name.Span
	}
	return p.arenas.Funcs.New(fn), true
}

func (p *Parser) parseParams() ([]ast.PatID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' before parameters"); !ok {
		return nil, false
	}
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	params := make([]ast.PatID, 0, 4)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			rest, ok := p.parseRestElement()
			if !ok {
				return nil, false
			}
			params = append(params, rest)
			if !p.at(token.RParen) {
				p.err(diag.SynRestNotLast, "rest parameter must be last")
				return nil, false
			}
			break
		}
		param, ok := p.parseBindingElement()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if !p.at(token.RParen) {
			if _, ok := p.expect(token.Comma, diag.SynExpectRParen, "expected ',' or ')'"); !ok {
				return nil, false
			}
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseFunctionBody() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' before function body")
	if !ok {
		return ast.NoStmtID, false
	}
	saved := p.noIn
	p.noIn = false
	p.inFunc++
	stmts := p.parseStatementList(token.RBrace, true)
	p.inFunc--
	p.noIn = saved
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after function body"); !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewBlock(p.spanFrom(open.Span), stmts), true
}

func (p *Parser) parseArrow() (ast.ExprID, bool) {
	start := p.peek().Span
	var params []ast.PatID
	if p.at(token.Ident) {
		tok := p.advance()
		params = []ast.PatID{p.arenas.Pats.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text))}
	} else {
		var ok bool
		if params, ok = p.parseParams(); !ok {
			return ast.NoExprID, false
		}
	}
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '=>'"); !ok {
		return ast.NoExprID, false
	}
	fn := ast.Func{IsArrow: true, Params: params}
	if p.at(token.LBrace) {
		body, ok := p.parseFunctionBody()
		if !ok {
			return ast.NoExprID, false
		}
		fn.Body = body
	} else {
		p.inFunc++
		body, ok := p.parseAssign()
		p.inFunc--
		if !ok {
			return ast.NoExprID, false
		}
		fn.ExprBody = body
	}
	fn.Span = p.spanFrom(start)
	id := p.arenas.Funcs.New(fn)
	return p.arenas.Exprs.NewFn(fn.Span, id, true), true
}
