package format

import (
	"jsmin/internal/ast"
)

func (p *printer) fn(id ast.FuncID) {
	fn := p.builder.Funcs.Get(id)
	if fn == nil {
		return
	}
	if fn.IsArrow {
		p.arrow(fn)
		return
	}
	p.writer.Token("function")
	if fn.HasName {
		p.writer.Token(p.name(fn.Name))
	}
	p.fnTail(id)
}

// fnTail prints the parameter list and the body; shared with methods.
func (p *printer) fnTail(id ast.FuncID) {
	fn := p.builder.Funcs.Get(id)
	if fn == nil {
		return
	}
	saved := p.noIn
	p.noIn = false
	p.params(fn.Params)
	p.writer.Space()
	p.block(fn.Body)
	p.noIn = saved
}

func (p *printer) arrow(fn *ast.Func) {
	saved := p.noIn
	p.noIn = false
	p.params(fn.Params)
	p.op("=>")
	if fn.ExprBody.IsValid() {
		if p.startsWithBraceOrFunction(fn.ExprBody, false) {
			p.writer.Token("(")
			p.exprInner(fn.ExprBody)
			p.writer.Token(")")
		} else {
			p.expr(fn.ExprBody, ast.PrecAssign)
		}
	} else {
		p.block(fn.Body)
	}
	p.noIn = saved
}

func (p *printer) params(list []ast.PatID) {
	p.writer.Token("(")
	for i, pt := range list {
		if i > 0 {
			p.comma()
		}
		p.pat(pt)
	}
	p.writer.Token(")")
}

func (p *printer) pat(id ast.PatID) {
	if !id.IsValid() {
		return
	}
	ps := p.builder.Pats
	w := p.writer
	switch ps.Get(id).Kind {
	case ast.PatIdent:
		d, _ := ps.Ident(id)
		w.Token(p.name(d.Name))
	case ast.PatAssign:
		d, _ := ps.Assign(id)
		p.pat(d.Left)
		p.op("=")
		p.exprNoIn(d.Right, ast.PrecAssign)
	case ast.PatRest:
		d, _ := ps.Rest(id)
		w.Token("...")
		p.pat(d.Arg)
	case ast.PatArray:
		d, _ := ps.Array(id)
		w.Token("[")
		for i, el := range d.Elems {
			if i > 0 {
				p.comma()
			}
			p.pat(el)
		}
		if n := len(d.Elems); n > 0 && !d.Elems[n-1].IsValid() {
			w.Token(",")
		}
		w.Token("]")
	case ast.PatObject:
		d, _ := ps.Object(id)
		w.Token("{")
		for i, pp := range d.Props {
			if i > 0 {
				p.comma()
			}
			if !pp.Shorthand {
				p.propKey(pp.Key)
				w.Token(":")
				w.Space()
			}
			p.pat(pp.Value)
		}
		if d.Rest.IsValid() {
			if len(d.Props) > 0 {
				p.comma()
			}
			w.Token("...")
			p.pat(d.Rest)
		}
		w.Token("}")
	case ast.PatExpr:
		x, _ := ps.Expr(id)
		p.expr(x, ast.PrecCall)
	}
}
