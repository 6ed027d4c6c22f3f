package compress

import (
	"context"
	"testing"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/format"
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

func print(t *testing.T, b *ast.Builder, file ast.FileID) string {
	t.Helper()
	out, err := format.FormatFile(b, file, format.Options{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	return string(out)
}

// minify parses, optimizes and prints input.
func minify(t *testing.T, input string, opts Options) (string, Report) {
	t.Helper()
	b, file := parse(t, input)
	rep := Optimize(context.Background(), b, file, opts)
	return print(t, b, file), rep
}

// verdicts runs the analysis phases and returns the report of every
// parameter keyed by "fn.param".
func verdicts(t *testing.T, input string) map[string]ParamReport {
	t.Helper()
	b, file := parse(t, input)
	out := make(map[string]ParamReport)
	for _, r := range Explain(b, file, DefaultOptions()) {
		out[r.Func+"."+r.Param] = r
	}
	return out
}
