package format

import (
	"strings"

	"jsmin/internal/ast"
)

// exprPrec returns the precedence of the node as printed without parens.
func (p *printer) exprPrec(id ast.ExprID) int {
	e := p.builder.Exprs.Get(id)
	if e == nil {
		return ast.PrecPrimary
	}
	switch e.Kind {
	case ast.ExprSeq:
		return ast.PrecSequence
	case ast.ExprAssign, ast.ExprArrow:
		return ast.PrecAssign
	case ast.ExprCond:
		return ast.PrecConditional
	case ast.ExprBinary:
		d, _ := p.builder.Exprs.Binary(id)
		return d.Op.Precedence()
	case ast.ExprUnary:
		return ast.PrecUnary
	case ast.ExprUpdate:
		d, _ := p.builder.Exprs.Update(id)
		if d.Prefix {
			return ast.PrecUnary
		}
		return ast.PrecUpdate
	case ast.ExprCall, ast.ExprNew, ast.ExprMember:
		return ast.PrecCall
	}
	return ast.PrecPrimary
}

// expr prints id, wrapping it in parens when it binds looser than minPrec.
func (p *printer) expr(id ast.ExprID, minPrec int) {
	if !id.IsValid() {
		return
	}
	if p.exprPrec(id) < minPrec || p.noIn && p.isIn(id) {
		saved := p.noIn
		p.noIn = false
		p.writer.Token("(")
		p.exprInner(id)
		p.writer.Token(")")
		p.noIn = saved
		return
	}
	p.exprInner(id)
}

func (p *printer) isIn(id ast.ExprID) bool {
	d, ok := p.builder.Exprs.Binary(id)
	return ok && d.Op == ast.BinIn
}

func (p *printer) exprInner(id ast.ExprID) {
	x := p.builder.Exprs
	w := p.writer
	switch x.Get(id).Kind {
	case ast.ExprIdent:
		d, _ := x.Ident(id)
		w.Token(p.name(d.Name))
	case ast.ExprLit:
		d, _ := x.Literal(id)
		w.Token(p.literal(d))
	case ast.ExprThis:
		w.Token("this")
	case ast.ExprArray:
		d, _ := x.Array(id)
		w.Token("[")
		for i, el := range d.Elems {
			if i > 0 {
				p.comma()
			}
			p.exprOrSpread(el)
		}
		if n := len(d.Elems); n > 0 && !d.Elems[n-1].Expr.IsValid() {
			// висячая дырка: [a,,] должен сохранить длину
			w.Token(",")
		}
		w.Token("]")
	case ast.ExprObject:
		d, _ := x.Object(id)
		p.object(d)
	case ast.ExprFn, ast.ExprArrow:
		fn, _ := x.Fn(id)
		p.fn(fn)
	case ast.ExprUnary:
		d, _ := x.Unary(id)
		w.Token(d.Op.String())
		p.expr(d.Operand, ast.PrecUnary)
	case ast.ExprUpdate:
		d, _ := x.Update(id)
		if d.Prefix {
			w.Token(d.Op.String())
			p.expr(d.Target, ast.PrecCall)
		} else {
			p.expr(d.Target, ast.PrecCall)
			w.Token(d.Op.String())
		}
	case ast.ExprBinary:
		d, _ := x.Binary(id)
		p.binary(d)
	case ast.ExprAssign:
		d, _ := x.Assign(id)
		p.pat(d.Target)
		p.op(d.Op.String())
		p.expr(d.Value, ast.PrecAssign)
	case ast.ExprCond:
		d, _ := x.Cond(id)
		p.expr(d.Test, ast.PrecNullish)
		p.op("?")
		saved := p.noIn
		p.noIn = false
		p.expr(d.Cons, ast.PrecAssign)
		p.noIn = saved
		p.op(":")
		p.expr(d.Alt, ast.PrecAssign)
	case ast.ExprCall:
		d, _ := x.Call(id)
		p.expr(d.Callee, ast.PrecCall)
		if d.Optional {
			w.Token("?.")
		}
		p.args(d.Args)
	case ast.ExprNew:
		d, _ := x.New(id)
		w.Token("new")
		if p.hasCallOnLeft(d.Callee) {
			w.Token("(")
			p.exprInner(d.Callee)
			w.Token(")")
		} else {
			p.expr(d.Callee, ast.PrecCall)
		}
		p.args(d.Args)
	case ast.ExprMember:
		d, _ := x.Member(id)
		p.memberObject(d.Object)
		switch {
		case d.Computed.IsValid():
			if d.Optional {
				w.Token("?.")
			}
			w.Token("[")
			p.exprNoIn(d.Computed, ast.PrecLowest)
			w.Token("]")
		case d.Optional:
			w.Token("?.")
			w.Token(p.name(d.Prop))
		default:
			w.Token(".")
			w.Token(p.name(d.Prop))
		}
	case ast.ExprSeq:
		d, _ := x.Seq(id)
		for i, it := range d.Exprs {
			if i > 0 {
				p.comma()
			}
			p.expr(it, ast.PrecAssign)
		}
	}
}

// exprNoIn prints a bracketed sub-expression where 'in' is allowed again.
func (p *printer) exprNoIn(id ast.ExprID, minPrec int) {
	saved := p.noIn
	p.noIn = false
	p.expr(id, minPrec)
	p.noIn = saved
}

func (p *printer) literal(d *ast.ExprLiteralData) string {
	if raw := p.name(d.Raw); raw != "" {
		return raw
	}
	switch d.Kind {
	case ast.LitNum:
		return ast.FormatNumber(d.Num)
	case ast.LitStr:
		return quote(p.name(d.Str))
	case ast.LitBool:
		if d.Bool {
			return "true"
		}
		return "false"
	}
	return "null"
}

func (p *printer) binary(d *ast.ExprBinaryData) {
	prec := d.Op.Precedence()
	leftPrec, rightPrec := prec, prec+1
	if d.Op == ast.BinExp {
		// правоассоциативный; унарный минус слева запрещён
		leftPrec, rightPrec = ast.PrecUpdate, prec
	}
	p.binaryOperand(d.Left, d.Op, leftPrec)
	p.op(d.Op.String())
	p.binaryOperand(d.Right, d.Op, rightPrec)
}

// binaryOperand adds the parens JavaScript demands when ?? meets || or &&.
func (p *printer) binaryOperand(id ast.ExprID, parent ast.BinaryOp, minPrec int) {
	if child, ok := p.builder.Exprs.Binary(id); ok && mixesNullish(parent, child.Op) {
		minPrec = ast.PrecPrimary
	}
	p.expr(id, minPrec)
}

func mixesNullish(a, b ast.BinaryOp) bool {
	logical := func(op ast.BinaryOp) bool { return op == ast.BinLogicalAnd || op == ast.BinLogicalOr }
	return a == ast.BinNullish && logical(b) || b == ast.BinNullish && logical(a)
}

// op writes a binary-like operator, padded in pretty mode.
func (p *printer) op(s string) {
	p.writer.Space()
	p.writer.Token(s)
	p.writer.Space()
}

func (p *printer) comma() {
	p.writer.Token(",")
	p.writer.Space()
}

func (p *printer) exprOrSpread(el ast.ExprOrSpread) {
	if el.Spread {
		p.writer.Token("...")
	}
	p.exprNoIn(el.Expr, ast.PrecAssign)
}

func (p *printer) args(list []ast.ExprOrSpread) {
	p.writer.Token("(")
	for i, a := range list {
		if i > 0 {
			p.comma()
		}
		p.exprOrSpread(a)
	}
	p.writer.Token(")")
}

// memberObject wraps integer literals: 1.toString() does not lex.
func (p *printer) memberObject(id ast.ExprID) {
	if lit, ok := p.builder.Exprs.Literal(id); ok && lit.Kind == ast.LitNum {
		raw := p.literal(lit)
		if !strings.ContainsAny(raw, ".eExXoObB") {
			p.writer.Token("(")
			p.writer.Token(raw)
			p.writer.Token(")")
			return
		}
	}
	p.expr(id, ast.PrecCall)
}

// hasCallOnLeft reports a call on the member chain of a 'new' callee:
// new (f())() differs from new f()().
func (p *printer) hasCallOnLeft(id ast.ExprID) bool {
	x := p.builder.Exprs
	for id.IsValid() {
		switch x.Get(id).Kind {
		case ast.ExprCall:
			return true
		case ast.ExprMember:
			d, _ := x.Member(id)
			id = d.Object
		default:
			return false
		}
	}
	return false
}

func (p *printer) object(d *ast.ExprObjectData) {
	w := p.writer
	w.Token("{")
	for i, pr := range d.Props {
		if i > 0 {
			p.comma()
		}
		switch pr.Kind {
		case ast.PropSpread:
			w.Token("...")
			p.exprNoIn(pr.Value, ast.PrecAssign)
		case ast.PropShorthand:
			p.expr(pr.Value, ast.PrecAssign)
		case ast.PropMethod:
			p.propKey(pr.Key)
			fn, _ := p.builder.Exprs.Fn(pr.Value)
			p.fnTail(fn)
		default:
			p.propKey(pr.Key)
			w.Token(":")
			w.Space()
			p.exprNoIn(pr.Value, ast.PrecAssign)
		}
	}
	w.Token("}")
}

func (p *printer) propKey(k ast.PropKey) {
	switch k.Kind {
	case ast.KeyComputed:
		p.writer.Token("[")
		p.exprNoIn(k.Computed, ast.PrecAssign)
		p.writer.Token("]")
	case ast.KeyStr, ast.KeyNum:
		if raw := p.name(k.Raw); raw != "" {
			p.writer.Token(raw)
			return
		}
		if k.Kind == ast.KeyStr {
			p.writer.Token(quote(p.name(k.Name)))
			return
		}
		p.writer.Token(p.name(k.Name))
	default:
		p.writer.Token(p.name(k.Name))
	}
}

// startsWithBraceOrFunction reports whether printing id would begin with
// '{' or 'function', which a statement position would misread. withFn=false
// checks only for '{' (arrow bodies).
func (p *printer) startsWithBraceOrFunction(id ast.ExprID, withFn bool) bool {
	x := p.builder.Exprs
	for id.IsValid() {
		switch x.Get(id).Kind {
		case ast.ExprObject:
			return true
		case ast.ExprFn:
			return withFn
		case ast.ExprBinary:
			d, _ := x.Binary(id)
			id = d.Left
		case ast.ExprCall:
			d, _ := x.Call(id)
			id = d.Callee
		case ast.ExprMember:
			d, _ := x.Member(id)
			id = d.Object
		case ast.ExprCond:
			d, _ := x.Cond(id)
			id = d.Test
		case ast.ExprSeq:
			d, _ := x.Seq(id)
			if len(d.Exprs) == 0 {
				return false
			}
			id = d.Exprs[0]
		case ast.ExprUpdate:
			d, _ := x.Update(id)
			if d.Prefix {
				return false
			}
			id = d.Target
		case ast.ExprAssign:
			d, _ := x.Assign(id)
			switch p.builder.Pats.Get(d.Target).Kind {
			case ast.PatObject:
				return true
			case ast.PatExpr:
				id, _ = p.builder.Pats.Expr(d.Target)
			default:
				return false
			}
		default:
			return false
		}
	}
	return false
}

// quote renders a cooked string as a double-quoted JavaScript literal.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028':
			sb.WriteString(`\u2028`)
		case '\u2029':
			sb.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				sb.WriteString(`\x`)
				sb.WriteByte("0123456789abcdef"[r>>4])
				sb.WriteByte("0123456789abcdef"[r&0xf])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
