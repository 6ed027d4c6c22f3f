package symbols

import (
	"jsmin/internal/ast"
	"jsmin/internal/source"
)

// Table holds every scope produced by one resolution run. ScopeID values
// index it 1-based.
type Table struct {
	scopes  []Scope
	Program ast.ScopeID
}

func NewTable() *Table {
	return &Table{scopes: make([]Scope, 0, 32)}
}

func (t *Table) New(kind ScopeKind, parent ast.ScopeID, fn ast.FuncID, sp source.Span) ast.ScopeID {
	t.scopes = append(t.scopes, Scope{
		Kind:   kind,
		Parent: parent,
		Func:   fn,
		Span:   sp,
		Names:  make(map[source.StringID]struct{}),
	})
	return ast.ScopeID(len(t.scopes)) //nolint:gosec // scope count is bounded by node count
}

// Get returns the scope for id or nil.
func (t *Table) Get(id ast.ScopeID) *Scope {
	if id == ast.NoScopeID || int(id) > len(t.scopes) {
		return nil
	}
	return &t.scopes[id-1]
}

func (t *Table) Len() int { return len(t.scopes) }

// FunctionOf returns the nearest enclosing function, arrow or program scope
// of id (id itself included).
func (t *Table) FunctionOf(id ast.ScopeID) ast.ScopeID {
	for s := t.Get(id); s != nil; s = t.Get(id) {
		if s.Kind.IsFunction() {
			return id
		}
		id = s.Parent
	}
	return ast.NoScopeID
}

// NonArrowFunctionOf skips arrow scopes: it returns the scope that owns
// 'this' and 'arguments' for code in id.
func (t *Table) NonArrowFunctionOf(id ast.ScopeID) ast.ScopeID {
	for s := t.Get(id); s != nil; s = t.Get(id) {
		if s.Kind == ScopeFunction || s.Kind == ScopeProgram {
			return id
		}
		id = s.Parent
	}
	return ast.NoScopeID
}

// Lookup walks the parent chain from id and returns the scope declaring
// name, or NoScopeID for globals.
func (t *Table) Lookup(id ast.ScopeID, name source.StringID) ast.ScopeID {
	for s := t.Get(id); s != nil; s = t.Get(id) {
		if s.Declares(name) {
			return id
		}
		id = s.Parent
	}
	return ast.NoScopeID
}
