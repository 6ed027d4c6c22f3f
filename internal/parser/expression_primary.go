package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/token"
)

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.peek()
	x := p.arenas.Exprs
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return x.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text)), true
	case token.KwThis:
		p.advance()
		return x.NewThis(tok.Span), true
	case token.NumberLit:
		p.advance()
		v, ok := ast.ParseNumber(tok.Text)
		if !ok {
			p.report(diag.LexBadNumber, diag.SevError, tok.Span, "malformed numeric literal")
			return ast.NoExprID, false
		}
		return x.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitNum,
			Raw:  p.arenas.Strings.Intern(tok.Text),
			Num:  v,
		}), true
	case token.StringLit:
		p.advance()
		val, _ := lexer.Unquote(tok.Text) // лексер уже проверил escape
		return x.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitStr,
			Raw:  p.arenas.Strings.Intern(tok.Text),
			Str:  p.arenas.Strings.Intern(val),
		}), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return x.NewLiteral(tok.Span, ast.ExprLiteralData{
			Kind: ast.LitBool,
			Raw:  p.arenas.Strings.Intern(tok.Text),
			Bool: tok.Kind == token.KwTrue,
		}), true
	case token.KwNull:
		p.advance()
		return x.NewLiteral(tok.Span, ast.ExprLiteralData{Kind: ast.LitNull, Raw: p.arenas.Strings.Intern("null")}), true
	case token.LParen:
		return p.parseParenExpr()
	case token.LBracket:
		return p.parseArrayLit()
	case token.LBrace:
		return p.parseObjectLit()
	case token.KwFunction:
		return p.parseFnExpr()
	case token.Invalid:
		// лексер уже отчитался
		p.advance()
		return ast.NoExprID, false
	}
	p.err(diag.SynExpectExpression, "expected expression, found '"+tok.Kind.String()+"'")
	return ast.NoExprID, false
}

func (p *Parser) parseArrayLit() (ast.ExprID, bool) {
	open := p.advance()
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	var elems []ast.ExprOrSpread
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.eat(token.Comma) {
			elems = append(elems, ast.ExprOrSpread{}) // дырка
			continue
		}
		spread := p.eat(token.DotDotDot)
		el, ok := p.parseAssign()
		if !ok {
			return ast.NoExprID, false
		}
		elems = append(elems, ast.ExprOrSpread{Spread: spread, Expr: el})
		if !p.at(token.RBracket) {
			if _, ok := p.expect(token.Comma, diag.SynExpectRBracket, "expected ',' or ']'"); !ok {
				return ast.NoExprID, false
			}
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(p.spanFrom(open.Span), elems), true
}

func (p *Parser) parseObjectLit() (ast.ExprID, bool) {
	open := p.advance()
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	var props []ast.Prop
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		prop, ok := p.parseProp()
		if !ok {
			return ast.NoExprID, false
		}
		props = append(props, prop)
		if !p.at(token.RBrace) {
			if _, ok := p.expect(token.Comma, diag.SynExpectRBrace, "expected ',' or '}'"); !ok {
				return ast.NoExprID, false
			}
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'"); !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewObject(p.spanFrom(open.Span), props), true
}

func (p *Parser) parseProp() (ast.Prop, bool) {
	if p.eat(token.DotDotDot) {
		v, ok := p.parseAssign()
		return ast.Prop{Kind: ast.PropSpread, Value: v}, ok
	}
	keyTok := p.peek()
	key, ok := p.parsePropKey()
	if !ok {
		return ast.Prop{}, false
	}
	switch {
	case p.at(token.LParen):
		fn, ok := p.parseFunctionRest(keyTok.Span, false, token.Token{})
		if !ok {
			return ast.Prop{}, false
		}
		v := p.arenas.Exprs.NewFn(p.spanFrom(keyTok.Span), fn, false)
		return ast.Prop{Kind: ast.PropMethod, Key: key, Value: v}, true
	case p.eat(token.Colon):
		v, ok := p.parseAssign()
		return ast.Prop{Kind: ast.PropInit, Key: key, Value: v}, ok
	case keyTok.Kind == token.Ident:
		if p.at(token.Assign) {
			p.err(diag.SynUnexpectedToken, "shorthand property initializers are only allowed in patterns")
			return ast.Prop{}, false
		}
		v := p.arenas.Exprs.NewIdent(keyTok.Span, key.Name)
		return ast.Prop{Kind: ast.PropShorthand, Key: key, Value: v}, true
	}
	p.err(diag.SynExpectColon, "expected ':' after property key")
	return ast.Prop{}, false
}

// parsePropKey: имя (в т.ч. ключевое слово), строка, число или [expr].
func (p *Parser) parsePropKey() (ast.PropKey, bool) {
	tok := p.peek()
	s := p.arenas.Strings
	switch {
	case tok.IsIdentName():
		p.advance()
		return ast.PropKey{Kind: ast.KeyIdent, Name: s.Intern(tok.Text)}, true
	case tok.Kind == token.StringLit:
		p.advance()
		val, _ := lexer.Unquote(tok.Text)
		return ast.PropKey{Kind: ast.KeyStr, Name: s.Intern(val), Raw: s.Intern(tok.Text)}, true
	case tok.Kind == token.NumberLit:
		p.advance()
		return ast.PropKey{Kind: ast.KeyNum, Name: s.Intern(tok.Text), Raw: s.Intern(tok.Text)}, true
	case tok.Kind == token.LBracket:
		idx, ok := p.parseComputed()
		return ast.PropKey{Kind: ast.KeyComputed, Computed: idx}, ok
	}
	p.err(diag.SynExpectIdentifier, "expected property key")
	return ast.PropKey{}, false
}
