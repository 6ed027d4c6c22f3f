package ast

import "jsmin/internal/source"

// Func is shared by function declarations, function expressions and
// arrows. Exactly one of Body and ExprBody is set.
type Func struct {
	HasName  bool
	Name     source.StringID
	NameSpan source.Span
	// NameCtxt is the declaration context of the name: the enclosing
	// function scope for declarations, a dedicated scope for named
	// function expressions.
	NameCtxt ScopeID
	Params   []PatID
	Body     StmtID // StmtBlock
	ExprBody ExprID
	IsArrow  bool
	Scope    ScopeID
	Span     source.Span
}

// Ident returns the resolved identifier of the function's name.
func (f *Func) Ident() Id {
	if !f.HasName {
		return NoId
	}
	return Id{Name: f.Name, Ctxt: f.NameCtxt}
}

type Funcs struct {
	Arena *Arena[Func]
}

func NewFuncs(capHint uint) *Funcs {
	return &Funcs{Arena: NewArena[Func](capHint)}
}

func (f *Funcs) New(fn Func) FuncID {
	return FuncID(f.Arena.Allocate(fn))
}

func (f *Funcs) Get(id FuncID) *Func {
	return f.Arena.Get(uint32(id))
}
