package ast

import (
	"jsmin/internal/source"
)

type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtVar
	StmtFnDecl
	StmtReturn
	StmtIf
	StmtBlock
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtForIn
	StmtForOf
	StmtBreak
	StmtContinue
	StmtThrow
	StmtTry
	StmtWith
	StmtLabeled
	StmtEmpty
)

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData: Directive marks a string statement of a directive prologue
// ("use strict").
type StmtExprData struct {
	Expr      ExprID
	Directive bool
}

type VarDeclarator struct {
	Name PatID
	Init ExprID
}

type StmtVarData struct {
	Kind  VarKind
	Decls []VarDeclarator
}

type StmtFnDeclData struct {
	Func FuncID
}

// StmtJumpData serves return and throw (Arg) and break and continue
// (Label).
type StmtJumpData struct {
	Arg   ExprID
	Label source.StringID
}

type StmtIfData struct {
	Test ExprID
	Cons StmtID
	Alt  StmtID
}

type StmtBlockData struct {
	Stmts []StmtID
	Scope ScopeID
}

// StmtLoopData serves while, do-while and the C-style for. For a for loop
// the initializer is either InitDecl (a StmtVar) or InitExpr.
type StmtLoopData struct {
	InitDecl StmtID
	InitExpr ExprID
	Test     ExprID
	Update   ExprID
	Body     StmtID
	Scope    ScopeID
}

// StmtForInOfData: the left side is a declaration (LeftDecl, a StmtVar
// with one declarator and no initializer) or an assignment target
// (LeftPat).
type StmtForInOfData struct {
	LeftDecl StmtID
	LeftPat  PatID
	Right    ExprID
	Body     StmtID
	Scope    ScopeID
}

type StmtTryData struct {
	Block      StmtID
	Param      PatID
	Handler    StmtID
	Finalizer  StmtID
	CatchScope ScopeID
}

type StmtWithData struct {
	Object ExprID
	Body   StmtID
}

type StmtLabeledData struct {
	Label source.StringID
	Body  StmtID
}
