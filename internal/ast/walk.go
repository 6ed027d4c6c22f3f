package ast

// Visitor receives nodes in source order. Returning false from a method
// skips the children of that node.
type Visitor interface {
	Stmt(id StmtID) bool
	Expr(id ExprID) bool
	Pat(id PatID) bool
	Func(id FuncID) bool
}

// Inspector adapts plain functions to Visitor; nil hooks descend.
type Inspector struct {
	OnStmt func(StmtID) bool
	OnExpr func(ExprID) bool
	OnPat  func(PatID) bool
	OnFunc func(FuncID) bool
}

func (in Inspector) Stmt(id StmtID) bool { return in.OnStmt == nil || in.OnStmt(id) }
func (in Inspector) Expr(id ExprID) bool { return in.OnExpr == nil || in.OnExpr(id) }
func (in Inspector) Pat(id PatID) bool   { return in.OnPat == nil || in.OnPat(id) }
func (in Inspector) Func(id FuncID) bool { return in.OnFunc == nil || in.OnFunc(id) }

// WalkFile visits every top-level statement of the file.
func WalkFile(b *Builder, v Visitor, id FileID) {
	f := b.Files.Get(id)
	if f == nil {
		return
	}
	for _, s := range f.Body {
		WalkStmt(b, v, s)
	}
}

func WalkFunc(b *Builder, v Visitor, id FuncID) {
	fn := b.Funcs.Get(id)
	if fn == nil || !v.Func(id) {
		return
	}
	for _, p := range fn.Params {
		WalkPat(b, v, p)
	}
	WalkStmt(b, v, fn.Body)
	WalkExpr(b, v, fn.ExprBody)
}

func walkArgs(b *Builder, v Visitor, args []ExprOrSpread) {
	for _, a := range args {
		WalkExpr(b, v, a.Expr)
	}
}

func walkKey(b *Builder, v Visitor, k PropKey) {
	if k.Kind == KeyComputed {
		WalkExpr(b, v, k.Computed)
	}
}

func WalkExpr(b *Builder, v Visitor, id ExprID) {
	if !id.IsValid() {
		return
	}
	e := b.Exprs.Get(id)
	if e == nil || !v.Expr(id) {
		return
	}
	x := b.Exprs
	switch e.Kind {
	case ExprArray:
		d, _ := x.Array(id)
		walkArgs(b, v, d.Elems)
	case ExprObject:
		d, _ := x.Object(id)
		for _, p := range d.Props {
			walkKey(b, v, p.Key)
			WalkExpr(b, v, p.Value)
		}
	case ExprFn, ExprArrow:
		fn, _ := x.Fn(id)
		WalkFunc(b, v, fn)
	case ExprUnary:
		d, _ := x.Unary(id)
		WalkExpr(b, v, d.Operand)
	case ExprUpdate:
		d, _ := x.Update(id)
		WalkExpr(b, v, d.Target)
	case ExprBinary:
		d, _ := x.Binary(id)
		WalkExpr(b, v, d.Left)
		WalkExpr(b, v, d.Right)
	case ExprAssign:
		d, _ := x.Assign(id)
		WalkPat(b, v, d.Target)
		WalkExpr(b, v, d.Value)
	case ExprCond:
		d, _ := x.Cond(id)
		WalkExpr(b, v, d.Test)
		WalkExpr(b, v, d.Cons)
		WalkExpr(b, v, d.Alt)
	case ExprCall:
		d, _ := x.Call(id)
		WalkExpr(b, v, d.Callee)
		walkArgs(b, v, d.Args)
	case ExprNew:
		d, _ := x.New(id)
		WalkExpr(b, v, d.Callee)
		walkArgs(b, v, d.Args)
	case ExprMember:
		d, _ := x.Member(id)
		WalkExpr(b, v, d.Object)
		WalkExpr(b, v, d.Computed)
	case ExprSeq:
		d, _ := x.Seq(id)
		for _, it := range d.Exprs {
			WalkExpr(b, v, it)
		}
	}
}

func WalkPat(b *Builder, v Visitor, id PatID) {
	if !id.IsValid() {
		return
	}
	p := b.Pats.Get(id)
	if p == nil || !v.Pat(id) {
		return
	}
	switch p.Kind {
	case PatAssign:
		d, _ := b.Pats.Assign(id)
		WalkPat(b, v, d.Left)
		WalkExpr(b, v, d.Right)
	case PatRest:
		d, _ := b.Pats.Rest(id)
		WalkPat(b, v, d.Arg)
	case PatArray:
		d, _ := b.Pats.Array(id)
		for _, el := range d.Elems {
			WalkPat(b, v, el)
		}
	case PatObject:
		d, _ := b.Pats.Object(id)
		for _, pp := range d.Props {
			walkKey(b, v, pp.Key)
			WalkPat(b, v, pp.Value)
		}
		WalkPat(b, v, d.Rest)
	case PatExpr:
		x, _ := b.Pats.Expr(id)
		WalkExpr(b, v, x)
	}
}

func WalkStmt(b *Builder, v Visitor, id StmtID) {
	if !id.IsValid() {
		return
	}
	st := b.Stmts.Get(id)
	if st == nil || !v.Stmt(id) {
		return
	}
	s := b.Stmts
	switch st.Kind {
	case StmtExpr:
		d, _ := s.Expr(id)
		WalkExpr(b, v, d.Expr)
	case StmtVar:
		d, _ := s.Var(id)
		for _, dc := range d.Decls {
			WalkPat(b, v, dc.Name)
			WalkExpr(b, v, dc.Init)
		}
	case StmtFnDecl:
		fn, _ := s.FnDecl(id)
		WalkFunc(b, v, fn)
	case StmtReturn, StmtThrow, StmtBreak, StmtContinue:
		d, _ := s.Jump(id)
		WalkExpr(b, v, d.Arg)
	case StmtIf:
		d, _ := s.If(id)
		WalkExpr(b, v, d.Test)
		WalkStmt(b, v, d.Cons)
		WalkStmt(b, v, d.Alt)
	case StmtBlock:
		d, _ := s.Block(id)
		for _, it := range d.Stmts {
			WalkStmt(b, v, it)
		}
	case StmtWhile, StmtFor:
		d, _ := s.Loop(id)
		WalkStmt(b, v, d.InitDecl)
		WalkExpr(b, v, d.InitExpr)
		WalkExpr(b, v, d.Test)
		WalkExpr(b, v, d.Update)
		WalkStmt(b, v, d.Body)
	case StmtDoWhile:
		d, _ := s.Loop(id)
		WalkStmt(b, v, d.Body)
		WalkExpr(b, v, d.Test)
	case StmtForIn, StmtForOf:
		d, _ := s.ForInOf(id)
		WalkStmt(b, v, d.LeftDecl)
		WalkPat(b, v, d.LeftPat)
		WalkExpr(b, v, d.Right)
		WalkStmt(b, v, d.Body)
	case StmtTry:
		d, _ := s.Try(id)
		WalkStmt(b, v, d.Block)
		WalkPat(b, v, d.Param)
		WalkStmt(b, v, d.Handler)
		WalkStmt(b, v, d.Finalizer)
	case StmtWith:
		d, _ := s.With(id)
		WalkExpr(b, v, d.Object)
		WalkStmt(b, v, d.Body)
	case StmtLabeled:
		d, _ := s.LabeledStmt(id)
		WalkStmt(b, v, d.Body)
	}
}
