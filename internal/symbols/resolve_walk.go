package symbols

import (
	"jsmin/internal/ast"
)

func (r *Resolver) resolveFile(id ast.FileID) {
	f := r.b.Files.Get(id)
	if f == nil {
		return
	}
	scope := r.push(ScopeProgram, ast.NoFuncID, f.Span)
	r.table.Program = scope
	f.Scope = scope
	r.hoistVars(scope, f.Body)
	r.hoistLexical(scope, f.Body)
	for _, s := range f.Body {
		r.stmt(s)
	}
	r.pop()
}

// fn resolves a function; the name must already be resolved by the caller.
func (r *Resolver) fn(id ast.FuncID, isExpr bool) {
	fn := r.b.Funcs.Get(id)
	if fn == nil {
		return
	}
	nameScope := false
	if isExpr && fn.HasName && !fn.IsArrow {
		ns := r.push(ScopeFnName, id, fn.Span)
		r.declare(ns, fn.Name)
		fn.NameCtxt = ns
		nameScope = true
	}

	kind := ScopeFunction
	if fn.IsArrow {
		kind = ScopeArrow
	}
	scope := r.push(kind, id, fn.Span)
	fn.Scope = scope
	for _, p := range fn.Params {
		r.declarePat(scope, p)
	}
	var body []ast.StmtID
	if blk, ok := r.b.Stmts.Block(fn.Body); ok {
		blk.Scope = scope
		body = blk.Stmts
	}
	r.hoistVars(scope, body)
	r.hoistLexical(scope, body)

	for _, p := range fn.Params {
		r.pat(p)
	}
	for _, s := range body {
		r.stmt(s)
	}
	r.expr(fn.ExprBody)

	r.pop()
	if nameScope {
		r.pop()
	}
}

func (r *Resolver) block(id ast.StmtID) {
	blk, ok := r.b.Stmts.Block(id)
	if !ok {
		r.stmt(id)
		return
	}
	scope := r.push(ScopeBlock, ast.NoFuncID, r.b.Stmts.Get(id).Span)
	blk.Scope = scope
	r.hoistLexical(scope, blk.Stmts)
	for _, s := range blk.Stmts {
		r.stmt(s)
	}
	r.pop()
}

func (r *Resolver) stmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	st := r.b.Stmts
	sp := st.Get(id).Span
	switch st.Get(id).Kind {
	case ast.StmtExpr:
		d, _ := st.Expr(id)
		r.expr(d.Expr)
	case ast.StmtVar:
		d, _ := st.Var(id)
		for _, dc := range d.Decls {
			r.pat(dc.Name)
			r.expr(dc.Init)
		}
	case ast.StmtFnDecl:
		fnID, _ := st.FnDecl(id)
		fn := r.b.Funcs.Get(fnID)
		fn.NameCtxt = r.lookup(fn.Name)
		r.fn(fnID, false)
	case ast.StmtReturn, ast.StmtThrow:
		d, _ := st.Jump(id)
		r.expr(d.Arg)
	case ast.StmtIf:
		d, _ := st.If(id)
		r.expr(d.Test)
		r.block(d.Cons)
		r.block(d.Alt)
	case ast.StmtBlock:
		r.block(id)
	case ast.StmtWhile, ast.StmtDoWhile, ast.StmtFor:
		d, _ := st.Loop(id)
		scope := r.push(ScopeBlock, ast.NoFuncID, sp)
		d.Scope = scope
		if d.InitDecl.IsValid() {
			r.hoistLexical(scope, []ast.StmtID{d.InitDecl})
		}
		r.stmt(d.InitDecl)
		r.expr(d.InitExpr)
		r.expr(d.Test)
		r.expr(d.Update)
		r.block(d.Body)
		r.pop()
	case ast.StmtForIn, ast.StmtForOf:
		d, _ := st.ForInOf(id)
		scope := r.push(ScopeBlock, ast.NoFuncID, sp)
		d.Scope = scope
		if d.LeftDecl.IsValid() {
			r.hoistLexical(scope, []ast.StmtID{d.LeftDecl})
		}
		r.stmt(d.LeftDecl)
		r.pat(d.LeftPat)
		r.expr(d.Right)
		r.block(d.Body)
		r.pop()
	case ast.StmtTry:
		d, _ := st.Try(id)
		r.block(d.Block)
		if d.Handler.IsValid() {
			scope := r.push(ScopeCatch, ast.NoFuncID, st.Get(d.Handler).Span)
			d.CatchScope = scope
			r.declarePat(scope, d.Param)
			r.pat(d.Param)
			r.block(d.Handler)
			r.pop()
		}
		r.block(d.Finalizer)
	case ast.StmtWith:
		d, _ := st.With(id)
		r.expr(d.Object)
		r.block(d.Body)
	case ast.StmtLabeled:
		d, _ := st.LabeledStmt(id)
		r.stmt(d.Body)
	}
}

// pat resolves every identifier of a pattern (bindings and assignment
// targets alike) and the expressions nested in it.
func (r *Resolver) pat(id ast.PatID) {
	if !id.IsValid() {
		return
	}
	ps := r.b.Pats
	switch ps.Get(id).Kind {
	case ast.PatIdent:
		d, _ := ps.Ident(id)
		d.Scope = r.lookup(d.Name)
	case ast.PatAssign:
		d, _ := ps.Assign(id)
		r.pat(d.Left)
		r.expr(d.Right)
	case ast.PatRest:
		d, _ := ps.Rest(id)
		r.pat(d.Arg)
	case ast.PatArray:
		d, _ := ps.Array(id)
		for _, el := range d.Elems {
			r.pat(el)
		}
	case ast.PatObject:
		d, _ := ps.Object(id)
		for _, pp := range d.Props {
			if pp.Key.Kind == ast.KeyComputed {
				r.expr(pp.Key.Computed)
			}
			r.pat(pp.Value)
		}
		r.pat(d.Rest)
	case ast.PatExpr:
		x, _ := ps.Expr(id)
		r.expr(x)
	}
}

func (r *Resolver) args(list []ast.ExprOrSpread) {
	for _, a := range list {
		r.expr(a.Expr)
	}
}

func (r *Resolver) expr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	x := r.b.Exprs
	switch x.Get(id).Kind {
	case ast.ExprIdent:
		d, _ := x.Ident(id)
		d.Scope = r.lookup(d.Name)
	case ast.ExprArray:
		d, _ := x.Array(id)
		r.args(d.Elems)
	case ast.ExprObject:
		d, _ := x.Object(id)
		for _, p := range d.Props {
			if p.Key.Kind == ast.KeyComputed {
				r.expr(p.Key.Computed)
			}
			r.expr(p.Value)
		}
	case ast.ExprFn, ast.ExprArrow:
		fnID, _ := x.Fn(id)
		r.fn(fnID, true)
	case ast.ExprUnary:
		d, _ := x.Unary(id)
		r.expr(d.Operand)
	case ast.ExprUpdate:
		d, _ := x.Update(id)
		r.expr(d.Target)
	case ast.ExprBinary:
		d, _ := x.Binary(id)
		r.expr(d.Left)
		r.expr(d.Right)
	case ast.ExprAssign:
		d, _ := x.Assign(id)
		r.pat(d.Target)
		r.expr(d.Value)
	case ast.ExprCond:
		d, _ := x.Cond(id)
		r.expr(d.Test)
		r.expr(d.Cons)
		r.expr(d.Alt)
	case ast.ExprCall:
		d, _ := x.Call(id)
		r.expr(d.Callee)
		r.args(d.Args)
	case ast.ExprNew:
		d, _ := x.New(id)
		r.expr(d.Callee)
		r.args(d.Args)
	case ast.ExprMember:
		d, _ := x.Member(id)
		r.expr(d.Object)
		r.expr(d.Computed)
	case ast.ExprSeq:
		d, _ := x.Seq(id)
		for _, it := range d.Exprs {
			r.expr(it)
		}
	}
}
