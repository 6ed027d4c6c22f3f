package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

// parseExpression: выражение с запятой (sequence).
func (p *Parser) parseExpression() (ast.ExprID, bool) {
	first, ok := p.parseAssign()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	list := []ast.ExprID{first}
	for p.eat(token.Comma) {
		next, ok := p.parseAssign()
		if !ok {
			return ast.NoExprID, false
		}
		list = append(list, next)
	}
	sp := p.exprSpan(first).Cover(p.lastSpan)
	return p.arenas.Exprs.NewSeq(sp, list), true
}

// parseAssign разбирает AssignmentExpression, включая стрелочные функции.
func (p *Parser) parseAssign() (ast.ExprID, bool) {
	if p.isArrowAhead() {
		return p.parseArrow()
	}
	left, ok := p.parseConditional()
	if !ok {
		return ast.NoExprID, false
	}
	op, isAssign := assignOps[p.peek().Kind]
	if !isAssign {
		return left, true
	}
	opTok := p.advance()
	target, ok := p.exprToPat(left, op == ast.AssignPlain)
	if !ok {
		return ast.NoExprID, false
	}
	if op != ast.AssignPlain && p.arenas.Pats.Get(target).Kind != ast.PatIdent && p.arenas.Pats.Get(target).Kind != ast.PatExpr {
		p.report(diag.SynBadAssignTarget, diag.SevError, opTok.Span, "invalid compound assignment target")
		return ast.NoExprID, false
	}
	value, ok := p.parseAssign()
	if !ok {
		return ast.NoExprID, false
	}
	sp := p.exprSpan(left).Cover(p.exprSpan(value))
	return p.arenas.Exprs.NewAssign(sp, op, target, value), true
}

// isArrowAhead: "x =>" или "( ... ) =>" без перевода строки перед "=>".
func (p *Parser) isArrowAhead() bool {
	tok := p.peek()
	if tok.Kind == token.Ident {
		next := p.peekN(1)
		return next.Kind == token.Arrow && !next.NewlineBefore()
	}
	if tok.Kind != token.LParen {
		return false
	}
	depth := 0
	for i := 0; ; i++ {
		t := p.peekN(i)
		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth == 0 {
				next := p.peekN(i + 1)
				return t.Kind == token.RParen && next.Kind == token.Arrow && !next.NewlineBefore()
			}
		case token.EOF:
			return false
		}
	}
}

func (p *Parser) parseConditional() (ast.ExprID, bool) {
	test, ok := p.parseBinary(ast.PrecNullish)
	if !ok {
		return ast.NoExprID, false
	}
	if !p.eat(token.Question) {
		return test, true
	}
	saved := p.noIn
	p.noIn = false
	cons, ok := p.parseAssign()
	p.noIn = saved
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}
	alt, ok := p.parseAssign()
	if !ok {
		return ast.NoExprID, false
	}
	sp := p.exprSpan(test).Cover(p.exprSpan(alt))
	return p.arenas.Exprs.NewCond(sp, test, cons, alt), true
}

// parseBinary: Pratt parsing для бинарных операторов; "**" правоассоциативен.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		op, isBin := p.binaryOp(p.peek().Kind)
		if !isBin {
			break
		}
		prec := op.Precedence()
		if prec < minPrec {
			break
		}
		p.advance()
		next := prec + 1
		if op == ast.BinExp {
			next = prec
		}
		right, ok := p.parseBinary(next)
		if !ok {
			return ast.NoExprID, false
		}
		sp := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(sp, op, left, right)
	}
	return left, true
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	tok := p.peek()
	if op, ok := unaryOp(tok.Kind); ok {
		p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewUnary(tok.Span.Cover(p.exprSpan(operand)), op, operand), true
	}
	if tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus {
		p.advance()
		target, ok := p.parseUnary()
		if !ok || !p.checkUpdateTarget(target) {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewUpdate(tok.Span.Cover(p.exprSpan(target)), updateOp(tok.Kind), true, target), true
	}
	return p.parsePostfix()
}

func updateOp(k token.Kind) ast.UpdateOp {
	if k == token.PlusPlus {
		return ast.UpdateInc
	}
	return ast.UpdateDec
}

func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parseLeftHandSide()
	if !ok {
		return ast.NoExprID, false
	}
	tok := p.peek()
	if (tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus) && !tok.NewlineBefore() {
		if !p.checkUpdateTarget(expr) {
			return ast.NoExprID, false
		}
		p.advance()
		return p.arenas.Exprs.NewUpdate(p.exprSpan(expr).Cover(tok.Span), updateOp(tok.Kind), false, expr), true
	}
	return expr, true
}

func (p *Parser) checkUpdateTarget(id ast.ExprID) bool {
	switch p.arenas.Exprs.Get(id).Kind {
	case ast.ExprIdent, ast.ExprMember:
		return true
	}
	p.report(diag.SynBadAssignTarget, diag.SevError, p.exprSpan(id), "invalid update target")
	return false
}

func (p *Parser) parseLeftHandSide() (ast.ExprID, bool) {
	var (
		expr ast.ExprID
		ok   bool
	)
	if p.at(token.KwNew) {
		expr, ok = p.parseNew()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseCallTail(expr, true)
}

// parseNew: "new" MemberExpression Arguments?
func (p *Parser) parseNew() (ast.ExprID, bool) {
	kw := p.advance()
	var (
		callee ast.ExprID
		ok     bool
	)
	if p.at(token.KwNew) {
		callee, ok = p.parseNew()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return ast.NoExprID, false
	}
	if callee, ok = p.parseCallTail(callee, false); !ok {
		return ast.NoExprID, false
	}
	var args []ast.ExprOrSpread
	if p.at(token.LParen) {
		if args, ok = p.parseArgs(); !ok {
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewNew(p.spanFrom(kw.Span), callee, args), true
}

// parseCallTail разбирает цепочку .x, ?.x, [i], (args). Для new allowCall=false.
func (p *Parser) parseCallTail(expr ast.ExprID, allowCall bool) (ast.ExprID, bool) {
	for {
		start := p.exprSpan(expr)
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.parsePropertyName()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewMember(p.spanFrom(start), expr, name, ast.NoExprID, false)
		case token.QuestionDot:
			if !allowCall {
				p.err(diag.SynUnexpectedToken, "optional chain is not allowed in 'new' callee")
				return ast.NoExprID, false
			}
			p.advance()
			switch p.peek().Kind {
			case token.LParen:
				args, ok := p.parseArgs()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.arenas.Exprs.NewCall(p.spanFrom(start), expr, args, true)
			case token.LBracket:
				idx, ok := p.parseComputed()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.arenas.Exprs.NewMember(p.spanFrom(start), expr, 0, idx, true)
			default:
				name, ok := p.parsePropertyName()
				if !ok {
					return ast.NoExprID, false
				}
				expr = p.arenas.Exprs.NewMember(p.spanFrom(start), expr, name, ast.NoExprID, true)
			}
		case token.LBracket:
			idx, ok := p.parseComputed()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewMember(p.spanFrom(start), expr, 0, idx, false)
		case token.LParen:
			if !allowCall {
				return expr, true
			}
			args, ok := p.parseArgs()
			if !ok {
				return ast.NoExprID, false
			}
			expr = p.arenas.Exprs.NewCall(p.spanFrom(start), expr, args, false)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePropertyName() (source.StringID, bool) {
	tok := p.peek()
	if !tok.IsIdentName() {
		p.err(diag.SynExpectIdentifier, "expected property name")
		return 0, false
	}
	p.advance()
	return p.arenas.Strings.Intern(tok.Text), true
}

func (p *Parser) parseComputed() (ast.ExprID, bool) {
	p.advance() // '['
	saved := p.noIn
	p.noIn = false
	idx, ok := p.parseExpression()
	p.noIn = saved
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoExprID, false
	}
	return idx, true
}

func (p *Parser) parseArgs() ([]ast.ExprOrSpread, bool) {
	p.advance() // '('
	saved := p.noIn
	p.noIn = false
	defer func() { p.noIn = saved }()

	args := make([]ast.ExprOrSpread, 0, 2)
	for !p.at(token.RParen) {
		spread := p.eat(token.DotDotDot)
		arg, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		args = append(args, ast.ExprOrSpread{Spread: spread, Expr: arg})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after arguments"); !ok {
		return nil, false
	}
	return args, true
}
