package parser

import (
	"fmt"
	"strings"
	"testing"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := ParseFile(fs, lx, b, Options{Reporter: rep, MaxErrors: 100})
	return b, res.File, bag
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.File) {
	t.Helper()
	b, id, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return b, b.Files.Get(id)
}

// onlyExpr возвращает выражение единственного оператора файла.
func onlyExpr(t *testing.T, b *ast.Builder, f *ast.File) ast.ExprID {
	t.Helper()
	if len(f.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(f.Body))
	}
	st, ok := b.Stmts.Expr(f.Body[0])
	if !ok {
		t.Fatalf("statement is %v, not an expression", b.Stmts.Get(f.Body[0]).Kind)
	}
	return st.Expr
}
