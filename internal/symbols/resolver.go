package symbols

import (
	"jsmin/internal/ast"
	"jsmin/internal/source"
)

// Resolver assigns declaration contexts to every identifier of one file.
// It rewrites the Scope fields of the tree in place, so it may run again
// after the tree has been transformed.
type Resolver struct {
	b     *ast.Builder
	table *Table
	stack []ast.ScopeID
}

// Resolve runs scope resolution over file and returns the scope table.
func Resolve(b *ast.Builder, file ast.FileID) *Table {
	r := &Resolver{b: b, table: NewTable(), stack: make([]ast.ScopeID, 0, 16)}
	r.resolveFile(file)
	return r.table
}

func (r *Resolver) current() ast.ScopeID {
	if len(r.stack) == 0 {
		return ast.NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

func (r *Resolver) push(kind ScopeKind, fn ast.FuncID, sp source.Span) ast.ScopeID {
	id := r.table.New(kind, r.current(), fn, sp)
	r.stack = append(r.stack, id)
	return id
}

func (r *Resolver) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Resolver) declare(scope ast.ScopeID, name source.StringID) {
	if s := r.table.Get(scope); s != nil {
		s.Names[name] = struct{}{}
	}
}

// functionScope: ближайшая область, куда всплывает var.
func (r *Resolver) functionScope() ast.ScopeID {
	return r.table.FunctionOf(r.current())
}

func (r *Resolver) lookup(name source.StringID) ast.ScopeID {
	return r.table.Lookup(r.current(), name)
}

// declarePat records every binding name of a pattern in scope.
func (r *Resolver) declarePat(scope ast.ScopeID, id ast.PatID) {
	ast.WalkPat(r.b, ast.Inspector{
		OnPat: func(p ast.PatID) bool {
			if d, ok := r.b.Pats.Ident(p); ok {
				r.declare(scope, d.Name)
			}
			return true
		},
		// значения по умолчанию не объявляют имён
		OnExpr: func(ast.ExprID) bool { return false },
	}, id)
}
