package ast

import (
	"jsmin/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Arrays   *Arena[ExprArrayData]
	Objects  *Arena[ExprObjectData]
	Fns      *Arena[ExprFnData]
	Unaries  *Arena[ExprUnaryData]
	Updates  *Arena[ExprUpdateData]
	Binaries *Arena[ExprBinaryData]
	Assigns  *Arena[ExprAssignData]
	Conds    *Arena[ExprCondData]
	Calls    *Arena[ExprCallData]
	News     *Arena[ExprNewData]
	Members  *Arena[ExprMemberData]
	Seqs     *Arena[ExprSeqData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Arrays:   NewArena[ExprArrayData](small),
		Objects:  NewArena[ExprObjectData](small),
		Fns:      NewArena[ExprFnData](small),
		Unaries:  NewArena[ExprUnaryData](small),
		Updates:  NewArena[ExprUpdateData](small),
		Binaries: NewArena[ExprBinaryData](capHint),
		Assigns:  NewArena[ExprAssignData](small),
		Conds:    NewArena[ExprCondData](small),
		Calls:    NewArena[ExprCallData](capHint),
		News:     NewArena[ExprNewData](small),
		Members:  NewArena[ExprMemberData](capHint),
		Seqs:     NewArena[ExprSeqData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, lit ExprLiteralData) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(lit))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	p, ok := e.payload(id, ExprLit)
	if !ok {
		return nil, false
	}
	return e.Literals.Get(p), true
}

func (e *Exprs) NewThis(span source.Span) ExprID {
	return e.new(ExprThis, span, 0)
}

func (e *Exprs) NewArray(span source.Span, elems []ExprOrSpread) ExprID {
	return e.new(ExprArray, span, e.Arrays.Allocate(ExprArrayData{Elems: elems}))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	p, ok := e.payload(id, ExprArray)
	if !ok {
		return nil, false
	}
	return e.Arrays.Get(p), true
}

func (e *Exprs) NewObject(span source.Span, props []Prop) ExprID {
	return e.new(ExprObject, span, e.Objects.Allocate(ExprObjectData{Props: props}))
}

func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	p, ok := e.payload(id, ExprObject)
	if !ok {
		return nil, false
	}
	return e.Objects.Get(p), true
}

// NewFn creates a function or arrow expression around fn.
func (e *Exprs) NewFn(span source.Span, fn FuncID, arrow bool) ExprID {
	kind := ExprFn
	if arrow {
		kind = ExprArrow
	}
	return e.new(kind, span, e.Fns.Allocate(ExprFnData{Func: fn}))
}

// Fn returns the function of a function or arrow expression.
func (e *Exprs) Fn(id ExprID) (FuncID, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprFn && expr.Kind != ExprArrow) {
		return NoFuncID, false
	}
	return e.Fns.Get(uint32(expr.Payload)).Func, true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewUpdate(span source.Span, op UpdateOp, prefix bool, target ExprID) ExprID {
	return e.new(ExprUpdate, span, e.Updates.Allocate(ExprUpdateData{Op: op, Prefix: prefix, Target: target}))
}

func (e *Exprs) Update(id ExprID) (*ExprUpdateData, bool) {
	p, ok := e.payload(id, ExprUpdate)
	if !ok {
		return nil, false
	}
	return e.Updates.Get(p), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, op AssignOp, target PatID, value ExprID) ExprID {
	return e.new(ExprAssign, span, e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value}))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

func (e *Exprs) NewCond(span source.Span, test, cons, alt ExprID) ExprID {
	return e.new(ExprCond, span, e.Conds.Allocate(ExprCondData{Test: test, Cons: cons, Alt: alt}))
}

func (e *Exprs) Cond(id ExprID) (*ExprCondData, bool) {
	p, ok := e.payload(id, ExprCond)
	if !ok {
		return nil, false
	}
	return e.Conds.Get(p), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprOrSpread, optional bool) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args, Optional: optional}))
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewNew(span source.Span, callee ExprID, args []ExprOrSpread) ExprID {
	return e.new(ExprNew, span, e.News.Allocate(ExprNewData{Callee: callee, Args: args}))
}

func (e *Exprs) New(id ExprID) (*ExprNewData, bool) {
	p, ok := e.payload(id, ExprNew)
	if !ok {
		return nil, false
	}
	return e.News.Get(p), true
}

// NewMember creates a member expression; pass NoExprID as computed for dot
// access.
func (e *Exprs) NewMember(span source.Span, object ExprID, prop source.StringID, computed ExprID, optional bool) ExprID {
	return e.new(ExprMember, span, e.Members.Allocate(ExprMemberData{
		Object:   object,
		Prop:     prop,
		Computed: computed,
		Optional: optional,
	}))
}

// Member returns the member data for the given expression ID.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

func (e *Exprs) NewSeq(span source.Span, exprs []ExprID) ExprID {
	return e.new(ExprSeq, span, e.Seqs.Allocate(ExprSeqData{Exprs: exprs}))
}

func (e *Exprs) Seq(id ExprID) (*ExprSeqData, bool) {
	p, ok := e.payload(id, ExprSeq)
	if !ok {
		return nil, false
	}
	return e.Seqs.Get(p), true
}
