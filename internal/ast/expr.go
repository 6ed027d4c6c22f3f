package ast

import (
	"jsmin/internal/source"
)

type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprThis
	ExprArray
	ExprObject
	ExprFn
	ExprArrow
	ExprUnary
	ExprUpdate
	ExprBinary
	ExprAssign
	ExprCond
	ExprCall
	ExprNew
	ExprMember
	ExprSeq
)

var exprKindNames = [...]string{
	ExprIdent:  "Ident",
	ExprLit:    "Lit",
	ExprThis:   "This",
	ExprArray:  "Array",
	ExprObject: "Object",
	ExprFn:     "Fn",
	ExprArrow:  "Arrow",
	ExprUnary:  "Unary",
	ExprUpdate: "Update",
	ExprBinary: "Binary",
	ExprAssign: "Assign",
	ExprCond:   "Cond",
	ExprCall:   "Call",
	ExprNew:    "New",
	ExprMember: "Member",
	ExprSeq:    "Seq",
}

func (k ExprKind) String() string { return exprKindNames[k] }

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type LitKind uint8

const (
	LitNum LitKind = iota
	LitStr
	LitBool
	LitNull
)

type ExprIdentData struct {
	Name  source.StringID
	Scope ScopeID
}

// Id returns the resolved identifier.
func (d *ExprIdentData) Id() Id { return Id{Name: d.Name, Ctxt: d.Scope} }

// ExprLiteralData keeps the raw source text for printing and the value for
// comparison: Num for numbers, Str (cooked) for strings, Bool for booleans.
type ExprLiteralData struct {
	Kind LitKind
	Raw  source.StringID
	Num  float64
	Str  source.StringID
	Bool bool
}

// ExprOrSpread is a call argument or array element. A hole in an array
// literal has no Expr.
type ExprOrSpread struct {
	Spread bool
	Expr   ExprID
}

type ExprArrayData struct {
	Elems []ExprOrSpread
}

type PropKind uint8

const (
	PropInit PropKind = iota
	PropShorthand
	PropMethod
	PropSpread
)

type PropKeyKind uint8

const (
	KeyIdent PropKeyKind = iota
	KeyStr
	KeyNum
	KeyComputed
)

// PropKey names an object property. Name holds identifier text, cooked
// string value or numeric raw text; Computed holds [expr] keys.
type PropKey struct {
	Kind     PropKeyKind
	Name     source.StringID
	Raw      source.StringID
	Computed ExprID
}

// Prop is one entry of an object literal. Shorthand props keep the
// referenced identifier in Value; spreads keep only Value.
type Prop struct {
	Kind  PropKind
	Key   PropKey
	Value ExprID
}

type ExprObjectData struct {
	Props []Prop
}

type ExprFnData struct {
	Func FuncID
}

type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

type ExprUpdateData struct {
	Op     UpdateOp
	Prefix bool
	Target ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprAssignData: Target is a pattern. Compound operators only allow
// PatIdent and PatExpr targets.
type ExprAssignData struct {
	Op     AssignOp
	Target PatID
	Value  ExprID
}

type ExprCondData struct {
	Test ExprID
	Cons ExprID
	Alt  ExprID
}

type ExprCallData struct {
	Callee   ExprID
	Args     []ExprOrSpread
	Optional bool
}

type ExprNewData struct {
	Callee ExprID
	Args   []ExprOrSpread
}

// ExprMemberData: dot access keeps the name in Prop; computed access keeps
// the index in Computed.
type ExprMemberData struct {
	Object   ExprID
	Prop     source.StringID
	Computed ExprID
	Optional bool
}

type ExprSeqData struct {
	Exprs []ExprID
}
