package format

import (
	"jsmin/internal/ast"
)

func (p *printer) stmtList(list []ast.StmtID) {
	for _, s := range list {
		p.stmt(s)
		p.writer.Newline()
	}
}

// block prints a braced statement list; id must be a StmtBlock.
func (p *printer) block(id ast.StmtID) {
	w := p.writer
	w.Token("{")
	if d, ok := p.builder.Stmts.Block(id); ok && len(d.Stmts) > 0 {
		w.IndentPush()
		w.Newline()
		p.stmtList(d.Stmts)
		w.IndentPop()
	}
	w.Token("}")
}

// body prints the body of a compound statement: blocks stay on the same
// line, anything else goes indented onto its own line in pretty mode.
func (p *printer) body(id ast.StmtID) {
	if st := p.builder.Stmts.Get(id); st != nil && st.Kind == ast.StmtBlock {
		p.writer.Space()
		p.block(id)
		return
	}
	p.writer.IndentPush()
	p.writer.Newline()
	p.stmt(id)
	p.writer.IndentPop()
}

func (p *printer) semi() {
	p.writer.Token(";")
}

// paren prints (e) after a keyword.
func (p *printer) paren(id ast.ExprID) {
	p.writer.Space()
	p.writer.Token("(")
	p.exprNoIn(id, ast.PrecLowest)
	p.writer.Token(")")
}

func (p *printer) stmt(id ast.StmtID) {
	st := p.builder.Stmts
	s := st.Get(id)
	if s == nil {
		return
	}
	w := p.writer
	switch s.Kind {
	case ast.StmtExpr:
		d, _ := st.Expr(id)
		if !d.Directive && (p.startsWithBraceOrFunction(d.Expr, true) || p.isStringLit(d.Expr)) {
			// иначе строка станет директивой, а { и function другим оператором
			w.Token("(")
			p.exprInner(d.Expr)
			w.Token(")")
		} else {
			p.expr(d.Expr, ast.PrecLowest)
		}
		p.semi()
	case ast.StmtVar:
		p.varDecl(id)
		p.semi()
	case ast.StmtFnDecl:
		fn, _ := st.FnDecl(id)
		p.fn(fn)
	case ast.StmtReturn, ast.StmtThrow:
		d, _ := st.Jump(id)
		if s.Kind == ast.StmtReturn {
			w.Token("return")
		} else {
			w.Token("throw")
		}
		if d.Arg.IsValid() {
			w.Space()
			p.expr(d.Arg, ast.PrecLowest)
		}
		p.semi()
	case ast.StmtBreak, ast.StmtContinue:
		d, _ := st.Jump(id)
		if s.Kind == ast.StmtBreak {
			w.Token("break")
		} else {
			w.Token("continue")
		}
		if label := p.name(d.Label); label != "" {
			w.Token(" ")
			w.Token(label)
		}
		p.semi()
	case ast.StmtIf:
		d, _ := st.If(id)
		w.Token("if")
		p.paren(d.Test)
		if d.Alt.IsValid() && p.endsWithOpenIf(d.Cons) {
			w.Space()
			w.Token("{")
			p.stmt(d.Cons)
			w.Token("}")
		} else {
			p.body(d.Cons)
		}
		if d.Alt.IsValid() {
			if p.isBlock(d.Cons) {
				w.Space()
			} else {
				w.Newline()
			}
			w.Token("else")
			if p.isBlock(d.Alt) || p.isIf(d.Alt) {
				w.Space()
				p.stmt(d.Alt)
			} else {
				p.body(d.Alt)
			}
		}
	case ast.StmtBlock:
		p.block(id)
	case ast.StmtWhile:
		d, _ := st.Loop(id)
		w.Token("while")
		p.paren(d.Test)
		p.body(d.Body)
	case ast.StmtDoWhile:
		d, _ := st.Loop(id)
		w.Token("do")
		p.body(d.Body)
		if p.isBlock(d.Body) {
			w.Space()
		} else {
			w.Newline()
		}
		w.Token("while")
		p.paren(d.Test)
		p.semi()
	case ast.StmtFor:
		d, _ := st.Loop(id)
		w.Token("for")
		w.Space()
		w.Token("(")
		saved := p.noIn
		p.noIn = true
		if d.InitDecl.IsValid() {
			p.varDecl(d.InitDecl)
		} else {
			p.expr(d.InitExpr, ast.PrecLowest)
		}
		p.noIn = saved
		w.Token(";")
		if d.Test.IsValid() {
			w.Space()
			p.expr(d.Test, ast.PrecLowest)
		}
		w.Token(";")
		if d.Update.IsValid() {
			w.Space()
			p.expr(d.Update, ast.PrecLowest)
		}
		w.Token(")")
		p.body(d.Body)
	case ast.StmtForIn, ast.StmtForOf:
		d, _ := st.ForInOf(id)
		w.Token("for")
		w.Space()
		w.Token("(")
		if d.LeftDecl.IsValid() {
			p.varDecl(d.LeftDecl)
		} else {
			p.pat(d.LeftPat)
		}
		if s.Kind == ast.StmtForIn {
			p.op("in")
			p.expr(d.Right, ast.PrecLowest)
		} else {
			p.op("of")
			p.expr(d.Right, ast.PrecAssign)
		}
		w.Token(")")
		p.body(d.Body)
	case ast.StmtTry:
		d, _ := st.Try(id)
		w.Token("try")
		w.Space()
		p.block(d.Block)
		if d.Handler.IsValid() {
			w.Space()
			w.Token("catch")
			if d.Param.IsValid() {
				w.Space()
				w.Token("(")
				p.pat(d.Param)
				w.Token(")")
			}
			w.Space()
			p.block(d.Handler)
		}
		if d.Finalizer.IsValid() {
			w.Space()
			w.Token("finally")
			w.Space()
			p.block(d.Finalizer)
		}
	case ast.StmtWith:
		d, _ := st.With(id)
		w.Token("with")
		p.paren(d.Object)
		p.body(d.Body)
	case ast.StmtLabeled:
		d, _ := st.LabeledStmt(id)
		w.Token(p.name(d.Label))
		w.Token(":")
		w.Space()
		p.stmt(d.Body)
	case ast.StmtEmpty:
		p.semi()
	}
}

func (p *printer) varDecl(id ast.StmtID) {
	d, ok := p.builder.Stmts.Var(id)
	if !ok {
		return
	}
	p.writer.Token(d.Kind.String())
	p.writer.Token(" ")
	for i, dc := range d.Decls {
		if i > 0 {
			p.comma()
		}
		p.pat(dc.Name)
		if dc.Init.IsValid() {
			p.op("=")
			p.expr(dc.Init, ast.PrecAssign)
		}
	}
}

func (p *printer) isBlock(id ast.StmtID) bool {
	s := p.builder.Stmts.Get(id)
	return s != nil && s.Kind == ast.StmtBlock
}

func (p *printer) isIf(id ast.StmtID) bool {
	s := p.builder.Stmts.Get(id)
	return s != nil && s.Kind == ast.StmtIf
}

func (p *printer) isStringLit(id ast.ExprID) bool {
	d, ok := p.builder.Exprs.Literal(id)
	return ok && d.Kind == ast.LitStr
}

// endsWithOpenIf reports whether an 'else' printed after id would attach to
// an inner if.
func (p *printer) endsWithOpenIf(id ast.StmtID) bool {
	st := p.builder.Stmts
	for {
		s := st.Get(id)
		if s == nil {
			return false
		}
		switch s.Kind {
		case ast.StmtIf:
			d, _ := st.If(id)
			if !d.Alt.IsValid() {
				return true
			}
			id = d.Alt
		case ast.StmtWhile, ast.StmtFor:
			d, _ := st.Loop(id)
			id = d.Body
		case ast.StmtForIn, ast.StmtForOf:
			d, _ := st.ForInOf(id)
			id = d.Body
		case ast.StmtWith:
			d, _ := st.With(id)
			id = d.Body
		case ast.StmtLabeled:
			d, _ := st.LabeledStmt(id)
			id = d.Body
		default:
			return false
		}
	}
}
