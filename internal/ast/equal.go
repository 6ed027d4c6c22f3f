package ast

import (
	"math"

	"jsmin/internal/source"
)

// EqualExpr compares two expressions structurally, ignoring spans. The
// expressions may live in different builders. Numbers compare by value
// (so 1 and 1.0 are equal, 0 and -0 are not), strings by cooked value.
// Function and arrow expressions are never equal.
func EqualExpr(a *Builder, x ExprID, b *Builder, y ExprID) bool {
	eq := equaler{a: a, b: b}
	return eq.expr(x, y)
}

type equaler struct {
	a, b *Builder
}

func (q *equaler) sameStr(x, y uint32) bool {
	if q.a.Strings == q.b.Strings {
		return x == y
	}
	return q.a.Name(source.StringID(x)) == q.b.Name(source.StringID(y))
}

func (q *equaler) args(x, y []ExprOrSpread) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i].Spread != y[i].Spread || !q.expr(x[i].Expr, y[i].Expr) {
			return false
		}
	}
	return true
}

func (q *equaler) key(x, y PropKey) bool {
	return x.Kind == y.Kind &&
		q.sameStr(uint32(x.Name), uint32(y.Name)) &&
		q.expr(x.Computed, y.Computed)
}

func (q *equaler) expr(x, y ExprID) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	ea, eb := q.a.Exprs.Get(x), q.b.Exprs.Get(y)
	if ea == nil || eb == nil || ea.Kind != eb.Kind {
		return false
	}
	A, B := q.a.Exprs, q.b.Exprs
	switch ea.Kind {
	case ExprIdent:
		da, _ := A.Ident(x)
		db, _ := B.Ident(y)
		return da.Scope == db.Scope && q.sameStr(uint32(da.Name), uint32(db.Name))
	case ExprLit:
		da, _ := A.Literal(x)
		db, _ := B.Literal(y)
		if da.Kind != db.Kind {
			return false
		}
		switch da.Kind {
		case LitNum:
			return da.Num == db.Num && math.Signbit(da.Num) == math.Signbit(db.Num)
		case LitStr:
			return q.sameStr(uint32(da.Str), uint32(db.Str))
		case LitBool:
			return da.Bool == db.Bool
		default:
			return true
		}
	case ExprThis:
		return true
	case ExprArray:
		da, _ := A.Array(x)
		db, _ := B.Array(y)
		return q.args(da.Elems, db.Elems)
	case ExprObject:
		da, _ := A.Object(x)
		db, _ := B.Object(y)
		if len(da.Props) != len(db.Props) {
			return false
		}
		for i := range da.Props {
			pa, pb := da.Props[i], db.Props[i]
			if pa.Kind != pb.Kind || !q.key(pa.Key, pb.Key) || !q.expr(pa.Value, pb.Value) {
				return false
			}
		}
		return true
	case ExprFn, ExprArrow:
		return false
	case ExprUnary:
		da, _ := A.Unary(x)
		db, _ := B.Unary(y)
		return da.Op == db.Op && q.expr(da.Operand, db.Operand)
	case ExprUpdate:
		da, _ := A.Update(x)
		db, _ := B.Update(y)
		return da.Op == db.Op && da.Prefix == db.Prefix && q.expr(da.Target, db.Target)
	case ExprBinary:
		da, _ := A.Binary(x)
		db, _ := B.Binary(y)
		return da.Op == db.Op && q.expr(da.Left, db.Left) && q.expr(da.Right, db.Right)
	case ExprAssign:
		// присваивания с паттернами не сравниваем
		return false
	case ExprCond:
		da, _ := A.Cond(x)
		db, _ := B.Cond(y)
		return q.expr(da.Test, db.Test) && q.expr(da.Cons, db.Cons) && q.expr(da.Alt, db.Alt)
	case ExprCall:
		da, _ := A.Call(x)
		db, _ := B.Call(y)
		return da.Optional == db.Optional && q.expr(da.Callee, db.Callee) && q.args(da.Args, db.Args)
	case ExprNew:
		da, _ := A.New(x)
		db, _ := B.New(y)
		return q.expr(da.Callee, db.Callee) && q.args(da.Args, db.Args)
	case ExprMember:
		da, _ := A.Member(x)
		db, _ := B.Member(y)
		return da.Optional == db.Optional &&
			q.sameStr(uint32(da.Prop), uint32(db.Prop)) &&
			q.expr(da.Object, db.Object) &&
			q.expr(da.Computed, db.Computed)
	case ExprSeq:
		da, _ := A.Seq(x)
		db, _ := B.Seq(y)
		if len(da.Exprs) != len(db.Exprs) {
			return false
		}
		for i := range da.Exprs {
			if !q.expr(da.Exprs[i], db.Exprs[i]) {
				return false
			}
		}
		return true
	}
	return false
}
