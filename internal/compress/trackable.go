package compress

import (
	"unicode/utf16"

	"jsmin/internal/ast"
)

// MaxTrackableStringLen bounds inlined strings, in UTF-16 code units.
const MaxTrackableStringLen = 32

// IsTrackable reports whether id is a side-effect-free constant small
// enough to copy into a function body: a number, boolean or null literal, a
// short string, the global undefined or its spelling void <number>,
// !literal or -number. The same predicate guards logging and inlining.
func IsTrackable(b *ast.Builder, id ast.ExprID) bool {
	x := b.Exprs
	e := x.Get(id)
	if e == nil {
		return false
	}
	switch e.Kind {
	case ast.ExprLit:
		lit, _ := x.Literal(id)
		if lit.Kind == ast.LitStr {
			return utf16Len(b.Name(lit.Str)) <= MaxTrackableStringLen
		}
		return true
	case ast.ExprIdent:
		d, _ := x.Ident(id)
		// локальная переменная с именем undefined не константа
		return d.Scope == ast.NoScopeID && b.Name(d.Name) == "undefined"
	case ast.ExprUnary:
		d, _ := x.Unary(id)
		arg, ok := x.Literal(d.Operand)
		if !ok {
			return false
		}
		switch d.Op {
		case ast.UnaryNot:
			return true
		case ast.UnaryNeg, ast.UnaryVoid:
			return arg.Kind == ast.LitNum
		}
	}
	return false
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
