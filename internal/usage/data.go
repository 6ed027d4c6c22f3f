package usage

import (
	"jsmin/internal/ast"
	"jsmin/internal/symbols"
)

// ParamValues is the verdict for one parameter: whether every known call
// supplied the same value. Value lives in ProgramData.Scratch and is set
// only when Consistent.
type ParamValues struct {
	Value         ast.ExprID
	CallsiteCount int
	Consistent    bool
}

// VarInfo describes one binding.
type VarInfo struct {
	DeclaredAsFnDecl  bool
	DeclaredAsFnExpr  bool
	DeclaredAsParam   bool
	DeclaredAsCatch   bool
	DeclaredAsVar     bool
	DeclaredAsLexical bool

	DeclCount   int
	RefCount    int
	CalleeCount int

	// Reassigned is set by assignments, updates and for-in/of targets.
	Reassigned bool
	// UsedInParams marks a parameter read from a default value of the
	// same parameter list.
	UsedInParams bool

	Params *ParamValues
}

// Redeclared reports more than one declaration of the same binding.
func (v *VarInfo) Redeclared() bool { return v.DeclCount > 1 }

// Escapes reports a reference that is not a direct call.
func (v *VarInfo) Escapes() bool { return v.RefCount > v.CalleeCount }

// ScopeFlags are facts about one function (or the program).
type ScopeFlags struct {
	HasEvalCall   bool
	HasWithStmt   bool
	UsedArguments bool
}

// ProgramData is the analysis context shared by the optimizer phases of one
// iteration.
type ProgramData struct {
	Vars    map[ast.Id]*VarInfo
	Scopes  map[ast.ScopeID]*ScopeFlags
	Table   *symbols.Table
	Scratch *ast.Builder
}

// NewProgramData returns an empty context whose scratch arena shares
// strings with b.
func NewProgramData(b *ast.Builder, table *symbols.Table) *ProgramData {
	return &ProgramData{
		Vars:    make(map[ast.Id]*VarInfo),
		Scopes:  make(map[ast.ScopeID]*ScopeFlags),
		Table:   table,
		Scratch: ast.NewBuilder(ast.Hints{Files: 1, Stmts: 1, Exprs: 32, Pats: 1, Funcs: 1}, b.Strings),
	}
}

// Var returns the record for id, or nil when the binding is unknown.
func (d *ProgramData) Var(id ast.Id) *VarInfo {
	return d.Vars[id]
}

// VarOrDefault returns the record for id, creating it when needed.
func (d *ProgramData) VarOrDefault(id ast.Id) *VarInfo {
	v, ok := d.Vars[id]
	if !ok {
		v = &VarInfo{}
		d.Vars[id] = v
	}
	return v
}

// Scope returns the flags of a function scope; unknown scopes report no
// flags.
func (d *ProgramData) Scope(id ast.ScopeID) ScopeFlags {
	if f, ok := d.Scopes[id]; ok {
		return *f
	}
	return ScopeFlags{}
}

func (d *ProgramData) scopeFlags(id ast.ScopeID) *ScopeFlags {
	f, ok := d.Scopes[id]
	if !ok {
		f = &ScopeFlags{}
		d.Scopes[id] = f
	}
	return f
}
