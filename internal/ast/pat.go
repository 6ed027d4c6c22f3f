package ast

import "jsmin/internal/source"

type PatKind uint8

const (
	PatIdent PatKind = iota
	PatAssign
	PatRest
	PatArray
	PatObject
	// PatExpr wraps a member expression used as an assignment target.
	PatExpr
)

type Pat struct {
	Kind    PatKind
	Span    source.Span
	Payload PayloadID
}

type PatIdentData struct {
	Name  source.StringID
	Scope ScopeID
}

func (d *PatIdentData) Id() Id { return Id{Name: d.Name, Ctxt: d.Scope} }

// PatAssignData is a pattern with a default value.
type PatAssignData struct {
	Left  PatID
	Right ExprID
}

type PatRestData struct {
	Arg PatID
}

type PatArrayData struct {
	Elems []PatID // NoPatID for holes
}

// PatProp: Shorthand props ({a} or {a = 1}) have Key.Name equal to the
// binding name inside Value.
type PatProp struct {
	Key       PropKey
	Value     PatID
	Shorthand bool
}

type PatObjectData struct {
	Props []PatProp
	Rest  PatID
}

type PatExprData struct {
	Expr ExprID
}

type Pats struct {
	Arena   *Arena[Pat]
	Idents  *Arena[PatIdentData]
	Assigns *Arena[PatAssignData]
	Rests   *Arena[PatRestData]
	Arrays  *Arena[PatArrayData]
	Objects *Arena[PatObjectData]
	Exprs   *Arena[PatExprData]
}

func NewPats(capHint uint) *Pats {
	if capHint == 0 {
		capHint = 1 << 6
	}
	small := capHint/4 + 1
	return &Pats{
		Arena:   NewArena[Pat](capHint),
		Idents:  NewArena[PatIdentData](capHint),
		Assigns: NewArena[PatAssignData](small),
		Rests:   NewArena[PatRestData](small),
		Arrays:  NewArena[PatArrayData](small),
		Objects: NewArena[PatObjectData](small),
		Exprs:   NewArena[PatExprData](small),
	}
}

func (p *Pats) new(kind PatKind, span source.Span, payload uint32) PatID {
	return PatID(p.Arena.Allocate(Pat{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}

func (p *Pats) payload(id PatID, kind PatKind) (uint32, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != kind {
		return 0, false
	}
	return uint32(pat.Payload), true
}

func (p *Pats) NewIdent(span source.Span, name source.StringID) PatID {
	return p.new(PatIdent, span, p.Idents.Allocate(PatIdentData{Name: name}))
}

func (p *Pats) Ident(id PatID) (*PatIdentData, bool) {
	pl, ok := p.payload(id, PatIdent)
	if !ok {
		return nil, false
	}
	return p.Idents.Get(pl), true
}

func (p *Pats) NewAssign(span source.Span, left PatID, right ExprID) PatID {
	return p.new(PatAssign, span, p.Assigns.Allocate(PatAssignData{Left: left, Right: right}))
}

func (p *Pats) Assign(id PatID) (*PatAssignData, bool) {
	pl, ok := p.payload(id, PatAssign)
	if !ok {
		return nil, false
	}
	return p.Assigns.Get(pl), true
}

func (p *Pats) NewRest(span source.Span, arg PatID) PatID {
	return p.new(PatRest, span, p.Rests.Allocate(PatRestData{Arg: arg}))
}

func (p *Pats) Rest(id PatID) (*PatRestData, bool) {
	pl, ok := p.payload(id, PatRest)
	if !ok {
		return nil, false
	}
	return p.Rests.Get(pl), true
}

func (p *Pats) NewArray(span source.Span, elems []PatID) PatID {
	return p.new(PatArray, span, p.Arrays.Allocate(PatArrayData{Elems: elems}))
}

func (p *Pats) Array(id PatID) (*PatArrayData, bool) {
	pl, ok := p.payload(id, PatArray)
	if !ok {
		return nil, false
	}
	return p.Arrays.Get(pl), true
}

func (p *Pats) NewObject(span source.Span, props []PatProp, rest PatID) PatID {
	return p.new(PatObject, span, p.Objects.Allocate(PatObjectData{Props: props, Rest: rest}))
}

func (p *Pats) Object(id PatID) (*PatObjectData, bool) {
	pl, ok := p.payload(id, PatObject)
	if !ok {
		return nil, false
	}
	return p.Objects.Get(pl), true
}

func (p *Pats) NewExpr(span source.Span, expr ExprID) PatID {
	return p.new(PatExpr, span, p.Exprs.Allocate(PatExprData{Expr: expr}))
}

func (p *Pats) Expr(id PatID) (ExprID, bool) {
	pl, ok := p.payload(id, PatExpr)
	if !ok {
		return NoExprID, false
	}
	return p.Exprs.Get(pl).Expr, true
}
