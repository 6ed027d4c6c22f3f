package symbols

import (
	"testing"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/parser"
	"jsmin/internal/source"
)

func parse(t *testing.T, input string) (*ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(input))
	bag := diag.NewBag(50)
	rep := &diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors in %q: %v", input, bag.Items())
	}
	return b, res.File
}

// identScopes собирает контексты всех ссылок на name в порядке обхода.
func identScopes(b *ast.Builder, file ast.FileID, name string) []ast.ScopeID {
	var out []ast.ScopeID
	ast.WalkFile(b, ast.Inspector{
		OnExpr: func(id ast.ExprID) bool {
			if d, ok := b.Exprs.Ident(id); ok && b.Name(d.Name) == name {
				out = append(out, d.Scope)
			}
			return true
		},
		OnPat: func(id ast.PatID) bool {
			if d, ok := b.Pats.Ident(id); ok && b.Name(d.Name) == name {
				out = append(out, d.Scope)
			}
			return true
		},
	}, file)
	return out
}

func TestResolve_ParamsAndGlobals(t *testing.T) {
	b, file := parse(t, "function f(a) { return a + g; }")
	tbl := Resolve(b, file)
	a := identScopes(b, file, "a")
	if len(a) != 2 || a[0] != a[1] || !a[0].IsValid() {
		t.Fatalf("param and its use must share a scope: %v", a)
	}
	if tbl.Get(a[0]).Kind != ScopeFunction {
		t.Errorf("param scope kind = %v", tbl.Get(a[0]).Kind)
	}
	g := identScopes(b, file, "g")
	if len(g) != 1 || g[0] != ast.NoScopeID {
		t.Errorf("unresolved global must have NoScopeID, got %v", g)
	}
}

func TestResolve_Shadowing(t *testing.T) {
	b, file := parse(t, "function f(a) { { let a = 1; a; } return a; }")
	Resolve(b, file)
	a := identScopes(b, file, "a")
	// param, let a, inner a, return a
	if len(a) != 4 {
		t.Fatalf("got %d idents", len(a))
	}
	if a[0] != a[3] {
		t.Errorf("return must see the param")
	}
	if a[1] != a[2] || a[1] == a[0] {
		t.Errorf("inner block must shadow: %v", a)
	}
}

func TestResolve_VarHoisting(t *testing.T) {
	b, file := parse(t, "function f() { x = 1; if (c) { var x; } return x; }")
	Resolve(b, file)
	x := identScopes(b, file, "x")
	for _, s := range x[1:] {
		if s != x[0] {
			t.Fatalf("var must hoist to function scope: %v", x)
		}
	}
	if !x[0].IsValid() {
		t.Errorf("hoisted var must not be global")
	}
}

func TestResolve_FunctionDeclForwardRef(t *testing.T) {
	b, file := parse(t, "g(); function g() {}")
	tbl := Resolve(b, file)
	refs := identScopes(b, file, "g")
	f := b.Files.Get(file)
	fnID, _ := b.Stmts.FnDecl(f.Body[1])
	fn := b.Funcs.Get(fnID)
	if len(refs) != 1 || refs[0] != fn.NameCtxt || fn.NameCtxt != tbl.Program {
		t.Errorf("forward call must resolve to the declaration: refs=%v decl=%v program=%v", refs, fn.NameCtxt, tbl.Program)
	}
}

func TestResolve_NamedFnExpr(t *testing.T) {
	b, file := parse(t, "var h = function fact(n) { return fact(n - 1); }; fact;")
	tbl := Resolve(b, file)
	refs := identScopes(b, file, "fact")
	if len(refs) != 2 {
		t.Fatalf("got %d refs", len(refs))
	}
	if tbl.Get(refs[0]) == nil || tbl.Get(refs[0]).Kind != ScopeFnName {
		t.Errorf("inner reference must bind to the fn-name scope")
	}
	if refs[1] != ast.NoScopeID {
		t.Errorf("outer reference must stay global")
	}
}

func TestResolve_CatchParam(t *testing.T) {
	b, file := parse(t, "try {} catch (e) { e; } e;")
	tbl := Resolve(b, file)
	refs := identScopes(b, file, "e")
	if len(refs) != 3 || refs[0] != refs[1] || tbl.Get(refs[0]).Kind != ScopeCatch || refs[2] != ast.NoScopeID {
		t.Errorf("catch scoping wrong: %v", refs)
	}
}

func TestResolve_ArrowScope(t *testing.T) {
	b, file := parse(t, "function f() { return () => arguments; }")
	tbl := Resolve(b, file)
	f := b.Files.Get(file)
	fnID, _ := b.Stmts.FnDecl(f.Body[0])
	outer := b.Funcs.Get(fnID).Scope

	var arrow ast.ScopeID
	ast.WalkFile(b, ast.Inspector{OnFunc: func(id ast.FuncID) bool {
		if fn := b.Funcs.Get(id); fn.IsArrow {
			arrow = fn.Scope
		}
		return true
	}}, file)
	if tbl.Get(arrow).Kind != ScopeArrow {
		t.Fatalf("arrow scope kind = %v", tbl.Get(arrow).Kind)
	}
	if got := tbl.NonArrowFunctionOf(arrow); got != outer {
		t.Errorf("NonArrowFunctionOf(arrow) = %v, want %v", got, outer)
	}
}

func TestResolve_Rerun(t *testing.T) {
	b, file := parse(t, "function f(a) { return a; }")
	Resolve(b, file)
	first := identScopes(b, file, "a")
	Resolve(b, file)
	second := identScopes(b, file, "a")
	if first[0] != second[0] {
		t.Errorf("re-resolution must be deterministic: %v vs %v", first, second)
	}
}
