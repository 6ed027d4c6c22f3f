package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

// parseBindingTarget: идентификатор, [..] или {..}.
func (p *Parser) parseBindingTarget() (ast.PatID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.arenas.Pats.NewIdent(tok.Span, p.arenas.Strings.Intern(tok.Text)), true
	case token.LBracket:
		return p.parseArrayPattern()
	case token.LBrace:
		return p.parseObjectPattern()
	}
	p.err(diag.SynExpectIdentifier, "expected binding identifier or pattern")
	return ast.NoPatID, false
}

// parseBindingElement: цель с необязательным значением по умолчанию.
func (p *Parser) parseBindingElement() (ast.PatID, bool) {
	target, ok := p.parseBindingTarget()
	if !ok {
		return ast.NoPatID, false
	}
	if !p.eat(token.Assign) {
		return target, true
	}
	def, ok := p.parseAssign()
	if !ok {
		return ast.NoPatID, false
	}
	sp := p.arenas.Pats.Get(target).Span.Cover(p.exprSpan(def))
	return p.arenas.Pats.NewAssign(sp, target, def), true
}

func (p *Parser) parseRestElement() (ast.PatID, bool) {
	dots := p.advance()
	arg, ok := p.parseBindingTarget()
	if !ok {
		return ast.NoPatID, false
	}
	return p.arenas.Pats.NewRest(p.spanFrom(dots.Span), arg), true
}

func (p *Parser) parseArrayPattern() (ast.PatID, bool) {
	open := p.advance()
	var elems []ast.PatID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.eat(token.Comma) {
			elems = append(elems, ast.NoPatID)
			continue
		}
		if p.at(token.DotDotDot) {
			rest, ok := p.parseRestElement()
			if !ok {
				return ast.NoPatID, false
			}
			elems = append(elems, rest)
			if !p.at(token.RBracket) {
				p.err(diag.SynRestNotLast, "rest element must be last")
				return ast.NoPatID, false
			}
			break
		}
		el, ok := p.parseBindingElement()
		if !ok {
			return ast.NoPatID, false
		}
		elems = append(elems, el)
		if !p.at(token.RBracket) {
			if _, ok := p.expect(token.Comma, diag.SynExpectRBracket, "expected ',' or ']'"); !ok {
				return ast.NoPatID, false
			}
		}
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'"); !ok {
		return ast.NoPatID, false
	}
	return p.arenas.Pats.NewArray(p.spanFrom(open.Span), elems), true
}

func (p *Parser) parseObjectPattern() (ast.PatID, bool) {
	open := p.advance()
	var (
		props []ast.PatProp
		rest  ast.PatID
	)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			r, ok := p.parseRestElement()
			if !ok {
				return ast.NoPatID, false
			}
			rest = r
			if !p.at(token.RBrace) {
				p.err(diag.SynRestNotLast, "rest element must be last")
				return ast.NoPatID, false
			}
			break
		}
		keyTok := p.peek()
		key, ok := p.parsePropKey()
		if !ok {
			return ast.NoPatID, false
		}
		var prop ast.PatProp
		if p.eat(token.Colon) {
			v, ok := p.parseBindingElement()
			if !ok {
				return ast.NoPatID, false
			}
			prop = ast.PatProp{Key: key, Value: v}
		} else {
			if keyTok.Kind != token.Ident {
				p.report(diag.SynBadPattern, diag.SevError, keyTok.Span, "expected ':' after non-identifier key")
				return ast.NoPatID, false
			}
			v := p.arenas.Pats.NewIdent(keyTok.Span, key.Name)
			if p.eat(token.Assign) {
				def, ok := p.parseAssign()
				if !ok {
					return ast.NoPatID, false
				}
				v = p.arenas.Pats.NewAssign(keyTok.Span.Cover(p.exprSpan(def)), v, def)
			}
			prop = ast.PatProp{Key: key, Value: v, Shorthand: true}
		}
		props = append(props, prop)
		if !p.at(token.RBrace) {
			if _, ok := p.expect(token.Comma, diag.SynExpectRBrace, "expected ',' or '}'"); !ok {
				return ast.NoPatID, false
			}
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'"); !ok {
		return ast.NoPatID, false
	}
	return p.arenas.Pats.NewObject(p.spanFrom(open.Span), props, rest), true
}

// exprToPat переписывает уже разобранное выражение в цель присваивания
// (cover grammar). destructure=false допускает только идентификатор и член.
func (p *Parser) exprToPat(id ast.ExprID, destructure bool) (ast.PatID, bool) {
	x := p.arenas.Exprs
	e := x.Get(id)
	switch e.Kind {
	case ast.ExprIdent:
		d, _ := x.Ident(id)
		return p.arenas.Pats.NewIdent(e.Span, d.Name), true
	case ast.ExprMember:
		return p.arenas.Pats.NewExpr(e.Span, id), true
	case ast.ExprArray:
		if !destructure {
			break
		}
		d, _ := x.Array(id)
		elems := make([]ast.PatID, 0, len(d.Elems))
		for i, el := range d.Elems {
			if !el.Expr.IsValid() {
				elems = append(elems, ast.NoPatID)
				continue
			}
			if el.Spread {
				if i != len(d.Elems)-1 {
					p.report(diag.SynRestNotLast, diag.SevError, x.Get(el.Expr).Span, "rest element must be last")
					return ast.NoPatID, false
				}
				arg, ok := p.exprToPat(el.Expr, true)
				if !ok {
					return ast.NoPatID, false
				}
				elems = append(elems, p.arenas.Pats.NewRest(x.Get(el.Expr).Span, arg))
				continue
			}
			pat, ok := p.exprToPatElem(el.Expr)
			if !ok {
				return ast.NoPatID, false
			}
			elems = append(elems, pat)
		}
		return p.arenas.Pats.NewArray(e.Span, elems), true
	case ast.ExprObject:
		if !destructure {
			break
		}
		d, _ := x.Object(id)
		var (
			props []ast.PatProp
			rest  ast.PatID
		)
		for i, pr := range d.Props {
			switch pr.Kind {
			case ast.PropSpread:
				if i != len(d.Props)-1 {
					p.report(diag.SynRestNotLast, diag.SevError, x.Get(pr.Value).Span, "rest element must be last")
					return ast.NoPatID, false
				}
				arg, ok := p.exprToPat(pr.Value, false)
				if !ok {
					return ast.NoPatID, false
				}
				rest = p.arenas.Pats.NewRest(x.Get(pr.Value).Span, arg)
			case ast.PropShorthand:
				v, _ := p.exprToPat(pr.Value, false)
				props = append(props, ast.PatProp{Key: pr.Key, Value: v, Shorthand: true})
			case ast.PropInit:
				v, ok := p.exprToPatElem(pr.Value)
				if !ok {
					return ast.NoPatID, false
				}
				props = append(props, ast.PatProp{Key: pr.Key, Value: v})
			default:
				p.report(diag.SynBadAssignTarget, diag.SevError, e.Span, "invalid destructuring target")
				return ast.NoPatID, false
			}
		}
		return p.arenas.Pats.NewObject(e.Span, props, rest), true
	}
	p.report(diag.SynBadAssignTarget, diag.SevError, e.Span, "invalid assignment target")
	return ast.NoPatID, false
}

// exprToPatElem: элемент деструктуризации, "a = 1" становится значением по умолчанию.
func (p *Parser) exprToPatElem(id ast.ExprID) (ast.PatID, bool) {
	if a, ok := p.arenas.Exprs.Assign(id); ok && a.Op == ast.AssignPlain {
		return p.arenas.Pats.NewAssign(p.exprSpan(id), a.Target, a.Value), true
	}
	return p.exprToPat(id, true)
}
