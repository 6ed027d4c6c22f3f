package ast

import (
	"jsmin/internal/source"
)

type Hints struct{ Files, Stmts, Exprs, Pats, Funcs uint }

// Builder owns every arena of one tree. Strings may be shared between
// builders; CloneExpr re-interns when they are not.
type Builder struct {
	Files   *Files
	Stmts   *Stmts
	Exprs   *Exprs
	Pats    *Pats
	Funcs   *Funcs
	Strings *source.Interner
}

func NewBuilder(hints Hints, strings *source.Interner) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Pats == 0 {
		hints.Pats = 1 << 6
	}
	if hints.Funcs == 0 {
		hints.Funcs = 1 << 5
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Builder{
		Files:   NewFiles(hints.Files),
		Stmts:   NewStmts(hints.Stmts),
		Exprs:   NewExprs(hints.Exprs),
		Pats:    NewPats(hints.Pats),
		Funcs:   NewFuncs(hints.Funcs),
		Strings: strings,
	}
}

// Name returns the text of an interned string.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Strings.Lookup(id)
	return s
}

// IdName returns the text of the identifier's name.
func (b *Builder) IdName(id Id) string {
	return b.Name(id.Name)
}
