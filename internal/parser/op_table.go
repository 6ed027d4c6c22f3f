package parser

import (
	"jsmin/internal/ast"
	"jsmin/internal/token"
)

// binaryOp возвращает оператор и его приоритет; ok=false: не бинарный.
func (p *Parser) binaryOp(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.Plus:
		return ast.BinAdd, true
	case token.Minus:
		return ast.BinSub, true
	case token.Star:
		return ast.BinMul, true
	case token.Slash:
		return ast.BinDiv, true
	case token.Percent:
		return ast.BinMod, true
	case token.StarStar:
		return ast.BinExp, true
	case token.Shl:
		return ast.BinShl, true
	case token.Shr:
		return ast.BinShr, true
	case token.UShr:
		return ast.BinUShr, true
	case token.Amp:
		return ast.BinBitAnd, true
	case token.Pipe:
		return ast.BinBitOr, true
	case token.Caret:
		return ast.BinBitXor, true
	case token.EqEq:
		return ast.BinEq, true
	case token.BangEq:
		return ast.BinNotEq, true
	case token.EqEqEq:
		return ast.BinStrictEq, true
	case token.BangEqEq:
		return ast.BinStrictNotEq, true
	case token.Lt:
		return ast.BinLt, true
	case token.LtEq:
		return ast.BinLtEq, true
	case token.Gt:
		return ast.BinGt, true
	case token.GtEq:
		return ast.BinGtEq, true
	case token.KwIn:
		if p.noIn {
			return 0, false
		}
		return ast.BinIn, true
	case token.KwInstanceof:
		return ast.BinInstanceof, true
	case token.AndAnd:
		return ast.BinLogicalAnd, true
	case token.OrOr:
		return ast.BinLogicalOr, true
	case token.QuestionQuestion:
		return ast.BinNullish, true
	}
	return 0, false
}

func unaryOp(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Plus:
		return ast.UnaryPlus, true
	case token.Bang:
		return ast.UnaryNot, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	case token.KwTypeof:
		return ast.UnaryTypeof, true
	case token.KwVoid:
		return ast.UnaryVoid, true
	case token.KwDelete:
		return ast.UnaryDelete, true
	}
	return 0, false
}

var assignOps = map[token.Kind]ast.AssignOp{
	token.Assign:                 ast.AssignPlain,
	token.PlusAssign:             ast.AssignAdd,
	token.MinusAssign:            ast.AssignSub,
	token.StarAssign:             ast.AssignMul,
	token.SlashAssign:            ast.AssignDiv,
	token.PercentAssign:          ast.AssignMod,
	token.StarStarAssign:         ast.AssignExp,
	token.ShlAssign:              ast.AssignShl,
	token.ShrAssign:              ast.AssignShr,
	token.UShrAssign:             ast.AssignUShr,
	token.AmpAssign:              ast.AssignBitAnd,
	token.PipeAssign:             ast.AssignBitOr,
	token.CaretAssign:            ast.AssignBitXor,
	token.AndAndAssign:           ast.AssignAnd,
	token.OrOrAssign:             ast.AssignOr,
	token.QuestionQuestionAssign: ast.AssignNullish,
}
