package symbols

import (
	"jsmin/internal/ast"
	"jsmin/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeProgram            // top level of a script
	ScopeFunction           // function body (params included)
	ScopeArrow              // arrow function body; no own 'arguments'
	ScopeBlock              // block, loop header, switch
	ScopeCatch              // catch parameter
	ScopeFnName             // name of a named function expression
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeProgram:
		return "program"
	case ScopeFunction:
		return "function"
	case ScopeArrow:
		return "arrow"
	case ScopeBlock:
		return "block"
	case ScopeCatch:
		return "catch"
	case ScopeFnName:
		return "fn-name"
	default:
		return "invalid"
	}
}

// IsFunction reports whether declarations hoist to this scope with var.
func (k ScopeKind) IsFunction() bool {
	return k == ScopeProgram || k == ScopeFunction || k == ScopeArrow
}

// Scope models a lexical scope with a parent-child hierarchy.
type Scope struct {
	Kind   ScopeKind
	Parent ast.ScopeID
	Func   ast.FuncID // для ScopeFunction/ScopeArrow/ScopeFnName
	Span   source.Span
	Names  map[source.StringID]struct{}
}

// Declares reports whether name is bound directly in this scope.
func (s *Scope) Declares(name source.StringID) bool {
	_, ok := s.Names[name]
	return ok
}
