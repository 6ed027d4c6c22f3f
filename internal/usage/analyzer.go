package usage

import (
	"jsmin/internal/ast"
	"jsmin/internal/symbols"
)

type declKind uint8

const (
	declVar declKind = iota
	declLexical
	declParam
	declCatch
)

type analyzer struct {
	b       *ast.Builder
	data    *ProgramData
	fnScope ast.ScopeID
	// функции, чьи списки параметров сейчас обходятся
	paramOf []ast.ScopeID
}

// Analyze walks a resolved file and returns its usage facts.
func Analyze(b *ast.Builder, file ast.FileID, table *symbols.Table) *ProgramData {
	a := &analyzer{b: b, data: NewProgramData(b, table)}
	f := b.Files.Get(file)
	if f == nil {
		return a.data
	}
	a.fnScope = f.Scope
	a.data.scopeFlags(f.Scope)
	for _, s := range f.Body {
		a.stmt(s)
	}
	return a.data
}

func (a *analyzer) fn(id ast.FuncID) {
	fn := a.b.Funcs.Get(id)
	if fn == nil {
		return
	}
	saved := a.fnScope
	a.fnScope = fn.Scope
	a.data.scopeFlags(fn.Scope)

	a.paramOf = append(a.paramOf, fn.Scope)
	for _, p := range fn.Params {
		a.bindPat(p, declParam)
	}
	a.paramOf = a.paramOf[:len(a.paramOf)-1]

	if blk, ok := a.b.Stmts.Block(fn.Body); ok {
		for _, s := range blk.Stmts {
			a.stmt(s)
		}
	}
	a.expr(fn.ExprBody)
	a.fnScope = saved
}

// markUp sets a flag on the current function scope and every enclosing one.
func (a *analyzer) markUp(set func(*ScopeFlags)) {
	t := a.data.Table
	for s := a.fnScope; s.IsValid(); {
		set(a.data.scopeFlags(s))
		sc := t.Get(s)
		if sc == nil {
			return
		}
		s = t.FunctionOf(sc.Parent)
	}
}

func (a *analyzer) declare(id ast.Id, kind declKind) {
	v := a.data.VarOrDefault(id)
	v.DeclCount++
	switch kind {
	case declVar:
		v.DeclaredAsVar = true
	case declLexical:
		v.DeclaredAsLexical = true
	case declParam:
		v.DeclaredAsParam = true
	case declCatch:
		v.DeclaredAsCatch = true
	}
}

func (a *analyzer) ref(id ast.ExprID, callee bool) {
	d, _ := a.b.Exprs.Ident(id)
	v := a.data.VarOrDefault(d.Id())
	v.RefCount++
	if callee {
		v.CalleeCount++
	}
	for _, ps := range a.paramOf {
		if d.Scope == ps {
			v.UsedInParams = true
		}
	}
	if d.Scope != ast.NoScopeID {
		return
	}
	switch a.b.Name(d.Name) {
	case "arguments":
		owner := a.data.Table.NonArrowFunctionOf(a.fnScope)
		if owner.IsValid() {
			a.data.scopeFlags(owner).UsedArguments = true
		}
	case "eval":
		a.markUp(func(f *ScopeFlags) { f.HasEvalCall = true })
	}
}

// bindPat declares the bindings of a declaration pattern and visits the
// expressions nested in it.
func (a *analyzer) bindPat(id ast.PatID, kind declKind) {
	if !id.IsValid() {
		return
	}
	ps := a.b.Pats
	switch ps.Get(id).Kind {
	case ast.PatIdent:
		d, _ := ps.Ident(id)
		a.declare(d.Id(), kind)
	case ast.PatAssign:
		d, _ := ps.Assign(id)
		a.bindPat(d.Left, kind)
		a.expr(d.Right)
	case ast.PatRest:
		d, _ := ps.Rest(id)
		a.bindPat(d.Arg, kind)
	case ast.PatArray:
		d, _ := ps.Array(id)
		for _, el := range d.Elems {
			a.bindPat(el, kind)
		}
	case ast.PatObject:
		d, _ := ps.Object(id)
		for _, pp := range d.Props {
			a.key(pp.Key)
			a.bindPat(pp.Value, kind)
		}
		a.bindPat(d.Rest, kind)
	case ast.PatExpr:
		a.assignPat(id)
	}
}

// assignPat marks every identifier of an assignment target as reassigned.
func (a *analyzer) assignPat(id ast.PatID) {
	if !id.IsValid() {
		return
	}
	ps := a.b.Pats
	switch ps.Get(id).Kind {
	case ast.PatIdent:
		d, _ := ps.Ident(id)
		a.data.VarOrDefault(d.Id()).Reassigned = true
	case ast.PatAssign:
		d, _ := ps.Assign(id)
		a.assignPat(d.Left)
		a.expr(d.Right)
	case ast.PatRest:
		d, _ := ps.Rest(id)
		a.assignPat(d.Arg)
	case ast.PatArray:
		d, _ := ps.Array(id)
		for _, el := range d.Elems {
			a.assignPat(el)
		}
	case ast.PatObject:
		d, _ := ps.Object(id)
		for _, pp := range d.Props {
			a.key(pp.Key)
			a.assignPat(pp.Value)
		}
		a.assignPat(d.Rest)
	case ast.PatExpr:
		x, _ := ps.Expr(id)
		a.expr(x)
	}
}

func (a *analyzer) key(k ast.PropKey) {
	if k.Kind == ast.KeyComputed {
		a.expr(k.Computed)
	}
}

func (a *analyzer) varDecl(id ast.StmtID) {
	d, ok := a.b.Stmts.Var(id)
	if !ok {
		return
	}
	kind := declVar
	if d.Kind != ast.VarVar {
		kind = declLexical
	}
	for _, dc := range d.Decls {
		a.bindPat(dc.Name, kind)
		a.expr(dc.Init)
	}
}

func (a *analyzer) stmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	st := a.b.Stmts
	switch st.Get(id).Kind {
	case ast.StmtExpr:
		d, _ := st.Expr(id)
		a.expr(d.Expr)
	case ast.StmtVar:
		a.varDecl(id)
	case ast.StmtFnDecl:
		fnID, _ := st.FnDecl(id)
		fn := a.b.Funcs.Get(fnID)
		v := a.data.VarOrDefault(fn.Ident())
		v.DeclaredAsFnDecl = true
		v.DeclCount++
		a.fn(fnID)
	case ast.StmtReturn, ast.StmtThrow:
		d, _ := st.Jump(id)
		a.expr(d.Arg)
	case ast.StmtIf:
		d, _ := st.If(id)
		a.expr(d.Test)
		a.stmt(d.Cons)
		a.stmt(d.Alt)
	case ast.StmtBlock:
		d, _ := st.Block(id)
		for _, s := range d.Stmts {
			a.stmt(s)
		}
	case ast.StmtWhile, ast.StmtDoWhile, ast.StmtFor:
		d, _ := st.Loop(id)
		a.varDecl(d.InitDecl)
		a.expr(d.InitExpr)
		a.expr(d.Test)
		a.expr(d.Update)
		a.stmt(d.Body)
	case ast.StmtForIn, ast.StmtForOf:
		d, _ := st.ForInOf(id)
		if d.LeftDecl.IsValid() {
			a.varDecl(d.LeftDecl)
			// каждая итерация присваивает переменной новое значение
			if v, ok := st.Var(d.LeftDecl); ok {
				for _, dc := range v.Decls {
					a.assignPat(dc.Name)
				}
			}
		}
		a.assignPat(d.LeftPat)
		a.expr(d.Right)
		a.stmt(d.Body)
	case ast.StmtTry:
		d, _ := st.Try(id)
		a.stmt(d.Block)
		a.bindPat(d.Param, declCatch)
		a.stmt(d.Handler)
		a.stmt(d.Finalizer)
	case ast.StmtWith:
		d, _ := st.With(id)
		a.markUp(func(f *ScopeFlags) { f.HasWithStmt = true })
		a.expr(d.Object)
		a.stmt(d.Body)
	case ast.StmtLabeled:
		d, _ := st.LabeledStmt(id)
		a.stmt(d.Body)
	}
}

func (a *analyzer) args(list []ast.ExprOrSpread) {
	for _, it := range list {
		a.expr(it.Expr)
	}
}

func (a *analyzer) expr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	x := a.b.Exprs
	switch x.Get(id).Kind {
	case ast.ExprIdent:
		a.ref(id, false)
	case ast.ExprArray:
		d, _ := x.Array(id)
		a.args(d.Elems)
	case ast.ExprObject:
		d, _ := x.Object(id)
		for _, p := range d.Props {
			a.key(p.Key)
			a.expr(p.Value)
		}
	case ast.ExprFn, ast.ExprArrow:
		fnID, _ := x.Fn(id)
		fn := a.b.Funcs.Get(fnID)
		if fn.HasName && !fn.IsArrow {
			v := a.data.VarOrDefault(fn.Ident())
			v.DeclaredAsFnExpr = true
			v.DeclCount++
		}
		a.fn(fnID)
	case ast.ExprUnary:
		d, _ := x.Unary(id)
		a.expr(d.Operand)
	case ast.ExprUpdate:
		d, _ := x.Update(id)
		if ident, ok := x.Ident(d.Target); ok {
			a.ref(d.Target, false)
			a.data.VarOrDefault(ident.Id()).Reassigned = true
		} else {
			a.expr(d.Target)
		}
	case ast.ExprBinary:
		d, _ := x.Binary(id)
		a.expr(d.Left)
		a.expr(d.Right)
	case ast.ExprAssign:
		d, _ := x.Assign(id)
		if d.Op != ast.AssignPlain {
			if p, ok := a.b.Pats.Ident(d.Target); ok {
				// составное присваивание ещё и читает
				v := a.data.VarOrDefault(p.Id())
				v.RefCount++
			}
		}
		a.assignPat(d.Target)
		a.expr(d.Value)
	case ast.ExprCond:
		d, _ := x.Cond(id)
		a.expr(d.Test)
		a.expr(d.Cons)
		a.expr(d.Alt)
	case ast.ExprCall:
		d, _ := x.Call(id)
		if _, ok := x.Ident(d.Callee); ok {
			a.ref(d.Callee, true)
		} else {
			a.expr(d.Callee)
		}
		a.args(d.Args)
	case ast.ExprNew:
		d, _ := x.New(id)
		a.expr(d.Callee)
		a.args(d.Args)
	case ast.ExprMember:
		d, _ := x.Member(id)
		a.expr(d.Object)
		a.expr(d.Computed)
	case ast.ExprSeq:
		d, _ := x.Seq(id)
		for _, it := range d.Exprs {
			a.expr(it)
		}
	}
}
