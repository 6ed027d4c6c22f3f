package ast

type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPlus
	UnaryNot
	UnaryBitNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

var unaryNames = [...]string{
	UnaryNeg:    "-",
	UnaryPlus:   "+",
	UnaryNot:    "!",
	UnaryBitNot: "~",
	UnaryTypeof: "typeof",
	UnaryVoid:   "void",
	UnaryDelete: "delete",
}

func (op UnaryOp) String() string { return unaryNames[op] }

// IsWord reports whether the operator is a keyword and needs a separating
// space before an identifier operand.
func (op UnaryOp) IsWord() bool { return op >= UnaryTypeof }

type UpdateOp uint8

const (
	UpdateInc UpdateOp = iota
	UpdateDec
)

func (op UpdateOp) String() string {
	if op == UpdateInc {
		return "++"
	}
	return "--"
}

type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinExp
	BinShl
	BinShr
	BinUShr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinEq
	BinNotEq
	BinStrictEq
	BinStrictNotEq
	BinLt
	BinLtEq
	BinGt
	BinGtEq
	BinIn
	BinInstanceof
	BinLogicalAnd
	BinLogicalOr
	BinNullish
)

var binaryNames = [...]string{
	BinAdd:         "+",
	BinSub:         "-",
	BinMul:         "*",
	BinDiv:         "/",
	BinMod:         "%",
	BinExp:         "**",
	BinShl:         "<<",
	BinShr:         ">>",
	BinUShr:        ">>>",
	BinBitAnd:      "&",
	BinBitOr:       "|",
	BinBitXor:      "^",
	BinEq:          "==",
	BinNotEq:       "!=",
	BinStrictEq:    "===",
	BinStrictNotEq: "!==",
	BinLt:          "<",
	BinLtEq:        "<=",
	BinGt:          ">",
	BinGtEq:        ">=",
	BinIn:          "in",
	BinInstanceof:  "instanceof",
	BinLogicalAnd:  "&&",
	BinLogicalOr:   "||",
	BinNullish:     "??",
}

func (op BinaryOp) String() string { return binaryNames[op] }

// Precedence returns the binding power of the operator; higher binds
// tighter.
func (op BinaryOp) Precedence() int {
	switch op {
	case BinNullish:
		return PrecNullish
	case BinLogicalOr:
		return PrecLogicalOr
	case BinLogicalAnd:
		return PrecLogicalAnd
	case BinBitOr:
		return PrecBitOr
	case BinBitXor:
		return PrecBitXor
	case BinBitAnd:
		return PrecBitAnd
	case BinEq, BinNotEq, BinStrictEq, BinStrictNotEq:
		return PrecEquality
	case BinLt, BinLtEq, BinGt, BinGtEq, BinIn, BinInstanceof:
		return PrecRelational
	case BinShl, BinShr, BinUShr:
		return PrecShift
	case BinAdd, BinSub:
		return PrecAdditive
	case BinMul, BinDiv, BinMod:
		return PrecMultiplicative
	case BinExp:
		return PrecExponent
	}
	return PrecLowest
}

// Уровни приоритета выражений, от слабого к сильному.
const (
	PrecLowest = iota
	PrecSequence
	PrecAssign // также yield, arrow, conditional как правый операнд
	PrecConditional
	PrecNullish
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecExponent
	PrecUnary
	PrecUpdate
	PrecCall // call, member, new with args
	PrecPrimary
)

type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignShl
	AssignShr
	AssignUShr
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignAnd
	AssignOr
	AssignNullish
)

var assignNames = [...]string{
	AssignPlain:   "=",
	AssignAdd:     "+=",
	AssignSub:     "-=",
	AssignMul:     "*=",
	AssignDiv:     "/=",
	AssignMod:     "%=",
	AssignExp:     "**=",
	AssignShl:     "<<=",
	AssignShr:     ">>=",
	AssignUShr:    ">>>=",
	AssignBitAnd:  "&=",
	AssignBitOr:   "|=",
	AssignBitXor:  "^=",
	AssignAnd:     "&&=",
	AssignOr:      "||=",
	AssignNullish: "??=",
}

func (op AssignOp) String() string { return assignNames[op] }

type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}
