package format

import (
	"fmt"
	"testing"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/parser"
	"jsmin/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Builder, ast.FileID) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fmt.js", []byte(src))
	bag := diag.NewBag(128)
	rep := &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := parser.ParseFile(fs, lexer.New(fs.Get(fileID), lexer.Options{Reporter: rep}), builder, parser.Options{
		Reporter:  rep,
		MaxErrors: 128,
	})
	if bag.HasErrors() {
		issues := make([]string, 0, bag.Len())
		for _, d := range bag.Items() {
			issues = append(issues, fmt.Sprintf("%s: %s", d.Code.ID(), d.Message))
		}
		t.Fatalf("parse of %q failed: %v", src, issues)
	}
	return builder, result.File
}

func formatString(t *testing.T, src string, opt Options) string {
	t.Helper()
	b, fid := parseSource(t, src)
	out, err := FormatFile(b, fid, opt)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	return string(out)
}

func TestFormatFile_Compact(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var a = 1, b;", "var a=1,b;"},
		{"function f(a, b) { return a + b; }", "function f(a,b){return a+b;}"},
		{"x = (a, b);", "x=(a,b);"},
		{"(a + b) * c;", "(a+b)*c;"},
		{"a + (b + c);", "a+(b+c);"},
		{"a - -b;", "a- -b;"},
		{"-(-x);", "- -x;"},
		{"(-x) ** 2;", "(-x)**2;"},
		{"a ?? (b || c);", "a??(b||c);"},
		{"(function () {})();", "(function(){}());"},
		{"({ a: 1 });", "({a:1});"},
		{"x = { a: 1, [k]: 2, ...r };", "x={a:1,[k]:2,...r};"},
		{"new (f())();", "new (f())();"},
		{"(1).toString();", "(1).toString();"},
		{"a = b ? c : d;", "a=b?c:d;"},
		{"typeof a === 'b';", "typeof a==='b';"},
		{"a in b;", "a in b;"},
		{"'use strict'; x;", "'use strict';x;"},
		{"(x) => ({});", "(x)=>({});"},
		{"if (a) { b(); } else c();", "if(a){b();}else c();"},
		{"if (a) if (b) c(); else d();", "if(a)if(b)c();else d();"},
		{"for (var i = 0; i < n; i++) {}", "for(var i=0;i<n;i++){}"},
		{"for (var i = (a in b); ;) {}", "for(var i=(a in b);;){}"},
		{"for (var k in o) x();", "for(var k in o)x();"},
		{"for (const v of list) {}", "for(const v of list){}"},
		{"try { a(); } catch (e) { b(); } finally { c(); }", "try{a();}catch(e){b();}finally{c();}"},
		{"function f({ a, b: [c] = [] }, ...r) {}", "function f({a,b:[c]=[]},...r){}"},
		{"l: for (;;) break l;", "l:for(;;)break l;"},
		{"do x(); while (y);", "do x();while(y);"},
		{"a?.b?.[c]?.(d);", "a?.b?.[c]?.(d);"},
		{"x = [1, , 2, ,];", "x=[1,,2,,];"},
	}
	for _, tt := range tests {
		if got := formatString(t, tt.src, Options{}); got != tt.want {
			t.Errorf("format(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestFormatFile_Pretty(t *testing.T) {
	src := "function f(a){if(a){return 1}return 2}"
	want := "function f(a) {\n  if (a) {\n    return 1;\n  }\n  return 2;\n}\n"
	if got := formatString(t, src, Options{Pretty: true}); got != want {
		t.Errorf("pretty output:\n%s\nwant:\n%s", got, want)
	}
}

func TestExpr(t *testing.T) {
	b, fid := parseSource(t, "f(!0, -1, 'abc', undefined);")
	st, _ := b.Stmts.Expr(b.Files.Get(fid).Body[0])
	call, _ := b.Exprs.Call(st.Expr)
	want := []string{"!0", "-1", "'abc'", "undefined"}
	for i, a := range call.Args {
		if got := Expr(b, a.Expr); got != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestCheckRoundTrip(t *testing.T) {
	srcs := []string{
		"function f(a, b = 1) { var c = a ? b : -a; return c ** 2; }",
		"x = a ?? (b && c); y = (a, b) => a + b;",
		"label: while (true) { if (x) continue label; else break; }",
	}
	for _, src := range srcs {
		for _, pretty := range []bool{false, true} {
			ok, msg := CheckRoundTrip("rt.js", []byte(src), Options{Pretty: pretty}, 50)
			if !ok {
				t.Errorf("%q (pretty=%v): %s", src, pretty, msg)
			}
		}
	}
}
