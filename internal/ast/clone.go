package ast

import "jsmin/internal/source"

// CloneExpr deep-copies the expression id of src into dst and returns the
// new root. dst and src may be the same builder. Scope annotations are
// copied as-is; spans are kept.
func CloneExpr(dst, src *Builder, id ExprID) ExprID {
	c := cloner{dst: dst, src: src}
	return c.expr(id)
}

// ClonePat deep-copies a pattern. See CloneExpr.
func ClonePat(dst, src *Builder, id PatID) PatID {
	c := cloner{dst: dst, src: src}
	return c.pat(id)
}

type cloner struct {
	dst, src *Builder
}

func (c *cloner) str(id source.StringID) source.StringID {
	if id == source.NoStringID || c.dst.Strings == c.src.Strings {
		return id
	}
	return c.dst.Strings.Intern(c.src.Name(id))
}

func (c *cloner) args(in []ExprOrSpread) []ExprOrSpread {
	if in == nil {
		return nil
	}
	out := make([]ExprOrSpread, len(in))
	for i, a := range in {
		out[i] = ExprOrSpread{Spread: a.Spread, Expr: c.expr(a.Expr)}
	}
	return out
}

func (c *cloner) key(k PropKey) PropKey {
	return PropKey{Kind: k.Kind, Name: c.str(k.Name), Raw: c.str(k.Raw), Computed: c.expr(k.Computed)}
}

func (c *cloner) expr(id ExprID) ExprID {
	if !id.IsValid() {
		return NoExprID
	}
	se, de := c.src.Exprs, c.dst.Exprs
	e := se.Get(id)
	if e == nil {
		return NoExprID
	}
	sp := e.Span
	switch e.Kind {
	case ExprIdent:
		d, _ := se.Ident(id)
		out := de.NewIdent(sp, c.str(d.Name))
		nd, _ := de.Ident(out)
		nd.Scope = d.Scope
		return out
	case ExprLit:
		d, _ := se.Literal(id)
		lit := *d
		lit.Raw = c.str(d.Raw)
		lit.Str = c.str(d.Str)
		return de.NewLiteral(sp, lit)
	case ExprThis:
		return de.NewThis(sp)
	case ExprArray:
		d, _ := se.Array(id)
		return de.NewArray(sp, c.args(d.Elems))
	case ExprObject:
		d, _ := se.Object(id)
		props := make([]Prop, len(d.Props))
		for i, p := range d.Props {
			props[i] = Prop{Kind: p.Kind, Key: c.key(p.Key), Value: c.expr(p.Value)}
		}
		return de.NewObject(sp, props)
	case ExprFn, ExprArrow:
		fn, _ := se.Fn(id)
		return de.NewFn(sp, c.fn(fn), e.Kind == ExprArrow)
	case ExprUnary:
		d, _ := se.Unary(id)
		return de.NewUnary(sp, d.Op, c.expr(d.Operand))
	case ExprUpdate:
		d, _ := se.Update(id)
		return de.NewUpdate(sp, d.Op, d.Prefix, c.expr(d.Target))
	case ExprBinary:
		d, _ := se.Binary(id)
		return de.NewBinary(sp, d.Op, c.expr(d.Left), c.expr(d.Right))
	case ExprAssign:
		d, _ := se.Assign(id)
		return de.NewAssign(sp, d.Op, c.pat(d.Target), c.expr(d.Value))
	case ExprCond:
		d, _ := se.Cond(id)
		return de.NewCond(sp, c.expr(d.Test), c.expr(d.Cons), c.expr(d.Alt))
	case ExprCall:
		d, _ := se.Call(id)
		return de.NewCall(sp, c.expr(d.Callee), c.args(d.Args), d.Optional)
	case ExprNew:
		d, _ := se.New(id)
		return de.NewNew(sp, c.expr(d.Callee), c.args(d.Args))
	case ExprMember:
		d, _ := se.Member(id)
		return de.NewMember(sp, c.expr(d.Object), c.str(d.Prop), c.expr(d.Computed), d.Optional)
	case ExprSeq:
		d, _ := se.Seq(id)
		list := make([]ExprID, len(d.Exprs))
		for i, x := range d.Exprs {
			list[i] = c.expr(x)
		}
		return de.NewSeq(sp, list)
	}
	return NoExprID
}

func (c *cloner) pat(id PatID) PatID {
	if !id.IsValid() {
		return NoPatID
	}
	sps, dp := c.src.Pats, c.dst.Pats
	p := sps.Get(id)
	if p == nil {
		return NoPatID
	}
	switch p.Kind {
	case PatIdent:
		d, _ := sps.Ident(id)
		out := dp.NewIdent(p.Span, c.str(d.Name))
		nd, _ := dp.Ident(out)
		nd.Scope = d.Scope
		return out
	case PatAssign:
		d, _ := sps.Assign(id)
		return dp.NewAssign(p.Span, c.pat(d.Left), c.expr(d.Right))
	case PatRest:
		d, _ := sps.Rest(id)
		return dp.NewRest(p.Span, c.pat(d.Arg))
	case PatArray:
		d, _ := sps.Array(id)
		elems := make([]PatID, len(d.Elems))
		for i, el := range d.Elems {
			elems[i] = c.pat(el)
		}
		return dp.NewArray(p.Span, elems)
	case PatObject:
		d, _ := sps.Object(id)
		props := make([]PatProp, len(d.Props))
		for i, pp := range d.Props {
			props[i] = PatProp{Key: c.key(pp.Key), Value: c.pat(pp.Value), Shorthand: pp.Shorthand}
		}
		return dp.NewObject(p.Span, props, c.pat(d.Rest))
	case PatExpr:
		x, _ := sps.Expr(id)
		return dp.NewExpr(p.Span, c.expr(x))
	}
	return NoPatID
}

func (c *cloner) fn(id FuncID) FuncID {
	f := c.src.Funcs.Get(id)
	if f == nil {
		return NoFuncID
	}
	out := *f
	out.Name = c.str(f.Name)
	out.Params = make([]PatID, len(f.Params))
	for i, p := range f.Params {
		out.Params[i] = c.pat(p)
	}
	out.Body = c.stmt(f.Body)
	out.ExprBody = c.expr(f.ExprBody)
	return c.dst.Funcs.New(out)
}

func (c *cloner) stmts(in []StmtID) []StmtID {
	out := make([]StmtID, len(in))
	for i, s := range in {
		out[i] = c.stmt(s)
	}
	return out
}

func (c *cloner) stmt(id StmtID) StmtID {
	if !id.IsValid() {
		return NoStmtID
	}
	ss, ds := c.src.Stmts, c.dst.Stmts
	st := ss.Get(id)
	if st == nil {
		return NoStmtID
	}
	sp := st.Span
	switch st.Kind {
	case StmtExpr:
		d, _ := ss.Expr(id)
		return ds.NewExpr(sp, c.expr(d.Expr), d.Directive)
	case StmtVar:
		d, _ := ss.Var(id)
		decls := make([]VarDeclarator, len(d.Decls))
		for i, dc := range d.Decls {
			decls[i] = VarDeclarator{Name: c.pat(dc.Name), Init: c.expr(dc.Init)}
		}
		return ds.NewVar(sp, d.Kind, decls)
	case StmtFnDecl:
		fn, _ := ss.FnDecl(id)
		return ds.NewFnDecl(sp, c.fn(fn))
	case StmtReturn, StmtThrow, StmtBreak, StmtContinue:
		d, _ := ss.Jump(id)
		return ds.NewJump(st.Kind, sp, c.expr(d.Arg), c.str(d.Label))
	case StmtIf:
		d, _ := ss.If(id)
		return ds.NewIf(sp, c.expr(d.Test), c.stmt(d.Cons), c.stmt(d.Alt))
	case StmtBlock:
		d, _ := ss.Block(id)
		out := ds.NewBlock(sp, c.stmts(d.Stmts))
		nb, _ := ds.Block(out)
		nb.Scope = d.Scope
		return out
	case StmtWhile, StmtDoWhile, StmtFor:
		d, _ := ss.Loop(id)
		return ds.NewLoop(st.Kind, sp, StmtLoopData{
			InitDecl: c.stmt(d.InitDecl),
			InitExpr: c.expr(d.InitExpr),
			Test:     c.expr(d.Test),
			Update:   c.expr(d.Update),
			Body:     c.stmt(d.Body),
			Scope:    d.Scope,
		})
	case StmtForIn, StmtForOf:
		d, _ := ss.ForInOf(id)
		return ds.NewForInOf(st.Kind, sp, StmtForInOfData{
			LeftDecl: c.stmt(d.LeftDecl),
			LeftPat:  c.pat(d.LeftPat),
			Right:    c.expr(d.Right),
			Body:     c.stmt(d.Body),
			Scope:    d.Scope,
		})
	case StmtTry:
		d, _ := ss.Try(id)
		return ds.NewTry(sp, StmtTryData{
			Block:      c.stmt(d.Block),
			Param:      c.pat(d.Param),
			Handler:    c.stmt(d.Handler),
			Finalizer:  c.stmt(d.Finalizer),
			CatchScope: d.CatchScope,
		})
	case StmtWith:
		d, _ := ss.With(id)
		return ds.NewWith(sp, c.expr(d.Object), c.stmt(d.Body))
	case StmtLabeled:
		d, _ := ss.LabeledStmt(id)
		return ds.NewLabeled(sp, c.str(d.Label), c.stmt(d.Body))
	case StmtEmpty:
		return ds.NewEmpty(sp)
	}
	return NoStmtID
}
