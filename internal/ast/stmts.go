package ast

import "jsmin/internal/source"

type Stmts struct {
	Arena    *Arena[Stmt]
	Exprs    *Arena[StmtExprData]
	Vars     *Arena[StmtVarData]
	FnDecls  *Arena[StmtFnDeclData]
	Jumps    *Arena[StmtJumpData]
	Ifs      *Arena[StmtIfData]
	Blocks   *Arena[StmtBlockData]
	Loops    *Arena[StmtLoopData]
	ForInOfs *Arena[StmtForInOfData]
	Tries    *Arena[StmtTryData]
	Withs    *Arena[StmtWithData]
	Labeled  *Arena[StmtLabeledData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		Exprs:    NewArena[StmtExprData](capHint),
		Vars:     NewArena[StmtVarData](small),
		FnDecls:  NewArena[StmtFnDeclData](small),
		Jumps:    NewArena[StmtJumpData](small),
		Ifs:      NewArena[StmtIfData](small),
		Blocks:   NewArena[StmtBlockData](capHint),
		Loops:    NewArena[StmtLoopData](small),
		ForInOfs: NewArena[StmtForInOfData](small),
		Tries:    NewArena[StmtTryData](small),
		Withs:    NewArena[StmtWithData](small),
		Labeled:  NewArena[StmtLabeledData](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kinds ...StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil {
		return 0, false
	}
	for _, k := range kinds {
		if st.Kind == k {
			return uint32(st.Payload), true
		}
	}
	return 0, false
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID, directive bool) StmtID {
	return s.new(StmtExpr, span, s.Exprs.Allocate(StmtExprData{Expr: expr, Directive: directive}))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.Exprs.Get(p), true
}

func (s *Stmts) NewVar(span source.Span, kind VarKind, decls []VarDeclarator) StmtID {
	return s.new(StmtVar, span, s.Vars.Allocate(StmtVarData{Kind: kind, Decls: decls}))
}

func (s *Stmts) Var(id StmtID) (*StmtVarData, bool) {
	p, ok := s.payload(id, StmtVar)
	if !ok {
		return nil, false
	}
	return s.Vars.Get(p), true
}

func (s *Stmts) NewFnDecl(span source.Span, fn FuncID) StmtID {
	return s.new(StmtFnDecl, span, s.FnDecls.Allocate(StmtFnDeclData{Func: fn}))
}

func (s *Stmts) FnDecl(id StmtID) (FuncID, bool) {
	p, ok := s.payload(id, StmtFnDecl)
	if !ok {
		return NoFuncID, false
	}
	return s.FnDecls.Get(p).Func, true
}

// NewJump creates return, throw, break or continue.
func (s *Stmts) NewJump(kind StmtKind, span source.Span, arg ExprID, label source.StringID) StmtID {
	return s.new(kind, span, s.Jumps.Allocate(StmtJumpData{Arg: arg, Label: label}))
}

func (s *Stmts) Jump(id StmtID) (*StmtJumpData, bool) {
	p, ok := s.payload(id, StmtReturn, StmtThrow, StmtBreak, StmtContinue)
	if !ok {
		return nil, false
	}
	return s.Jumps.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, test ExprID, cons, alt StmtID) StmtID {
	return s.new(StmtIf, span, s.Ifs.Allocate(StmtIfData{Test: test, Cons: cons, Alt: alt}))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, s.Blocks.Allocate(StmtBlockData{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}

// NewLoop creates while, do-while or for.
func (s *Stmts) NewLoop(kind StmtKind, span source.Span, data StmtLoopData) StmtID {
	return s.new(kind, span, s.Loops.Allocate(data))
}

func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	p, ok := s.payload(id, StmtWhile, StmtDoWhile, StmtFor)
	if !ok {
		return nil, false
	}
	return s.Loops.Get(p), true
}

func (s *Stmts) NewForInOf(kind StmtKind, span source.Span, data StmtForInOfData) StmtID {
	return s.new(kind, span, s.ForInOfs.Allocate(data))
}

func (s *Stmts) ForInOf(id StmtID) (*StmtForInOfData, bool) {
	p, ok := s.payload(id, StmtForIn, StmtForOf)
	if !ok {
		return nil, false
	}
	return s.ForInOfs.Get(p), true
}

func (s *Stmts) NewTry(span source.Span, data StmtTryData) StmtID {
	return s.new(StmtTry, span, s.Tries.Allocate(data))
}

func (s *Stmts) Try(id StmtID) (*StmtTryData, bool) {
	p, ok := s.payload(id, StmtTry)
	if !ok {
		return nil, false
	}
	return s.Tries.Get(p), true
}

func (s *Stmts) NewWith(span source.Span, object ExprID, body StmtID) StmtID {
	return s.new(StmtWith, span, s.Withs.Allocate(StmtWithData{Object: object, Body: body}))
}

func (s *Stmts) With(id StmtID) (*StmtWithData, bool) {
	p, ok := s.payload(id, StmtWith)
	if !ok {
		return nil, false
	}
	return s.Withs.Get(p), true
}

func (s *Stmts) NewLabeled(span source.Span, label source.StringID, body StmtID) StmtID {
	return s.new(StmtLabeled, span, s.Labeled.Allocate(StmtLabeledData{Label: label, Body: body}))
}

func (s *Stmts) LabeledStmt(id StmtID) (*StmtLabeledData, bool) {
	p, ok := s.payload(id, StmtLabeled)
	if !ok {
		return nil, false
	}
	return s.Labeled.Get(p), true
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, 0)
}
