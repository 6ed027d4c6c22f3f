package compress

import (
	"context"
	"strings"
	"testing"
)

func TestInlineParams_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{
			name: "same literal everywhere",
			src:  "function f(a){return a+1} f(1); f(1); f(1);",
			opts: DefaultOptions(),
			want: "function f(){const a=1;return a+1;}f(1);f(1);f(1);",
		},
		{
			name: "different values",
			src:  "function f(a){return a} f(1); f(2);",
			opts: DefaultOptions(),
			want: "function f(a){return a;}f(1);f(2);",
		},
		{
			name: "reassigned parameter",
			src:  "function f(a){a=2; return a} f(1); f(1);",
			opts: DefaultOptions(),
			want: "function f(a){a=2;return a;}f(1);f(1);",
		},
		{
			name: "eval in body",
			src:  "function f(a){eval(\"a\"); return a} f(1); f(1);",
			opts: DefaultOptions(),
			want: "function f(a){eval(\"a\");return a;}f(1);f(1);",
		},
		{
			name: "omitted slot shifts the rest",
			src:  "function f(a,b){return a+b} f(1); f(1,2);",
			opts: DefaultOptions(),
			want: "function f(b){const a=1;return a+b;}f(1);f(1,2);",
		},
		{
			name: "second pass leaves a shrunk signature alone",
			src:  "function f(a,b,c){return a+b+c} f(1); f(1,5,5);",
			opts: Options{Unused: true, Passes: 4},
			want: "function f(b,c){const a=1;return a+b+c;}f(1);f(1,5,5);",
		},
		{
			name: "preserved positions keep a slot before a live one",
			src:  "function f(a,b){return a+b} f(1); f(1,2);",
			opts: Options{Unused: true, Passes: 2, PreserveArgPositions: true},
			want: "function f(a,b){return a+b;}f(1);f(1,2);",
		},
		{
			name: "preserved positions still drop a trailing run",
			src:  "function f(a,b){return a+b} f(a, 2); f(b, 2);",
			opts: Options{Unused: true, Passes: 2, PreserveArgPositions: true},
			want: "function f(a){const b=2;return a+b;}f(a,2);f(b,2);",
		},
		{
			name: "several parameters become one declaration",
			src:  "function g(x,y){return x*y} g(2,3); g(2,3);",
			opts: DefaultOptions(),
			want: "function g(){const x=2,y=3;return x*y;}g(2,3);g(2,3);",
		},
		{
			name: "directive prologue stays first",
			src:  "function h(a){'use strict'; return a} h(1);",
			opts: DefaultOptions(),
			want: "function h(){'use strict';const a=1;return a;}h(1);",
		},
		{
			name: "omitted everywhere is undefined",
			src:  "function f(a){return a} f(); f();",
			opts: DefaultOptions(),
			want: "function f(){const a=void 0;return a;}f();f();",
		},
		{
			name: "negative and negated literals",
			src:  "function f(a,b){return a||b} f(-1,!0); f(-1,!0);",
			opts: DefaultOptions(),
			want: "function f(){const a=-1,b=!0;return a||b;}f(-1,!0);f(-1,!0);",
		},
		{
			name: "forward reference",
			src:  "f(7); f(7); function f(a){return a}",
			opts: DefaultOptions(),
			want: "f(7);f(7);function f(){const a=7;return a;}",
		},
		{
			name: "string at the size limit",
			src:  "function f(a){return a} f('" + long32 + "'); f(\"" + long32 + "\");",
			opts: DefaultOptions(),
			want: "function f(){const a='" + long32 + "';return a;}f('" + long32 + "');f(\"" + long32 + "\");",
		},
		{
			name: "disabled",
			src:  "function f(a){return a+1} f(1);",
			opts: Options{Unused: false, Passes: 2},
			want: "function f(a){return a+1;}f(1);",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := minify(t, tt.src, tt.opts)
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestInlineParams_LeftAlone(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"arguments", "function f(a){return arguments.length} f(1); f(1);"},
		{"arguments in arrow", "function f(a){var g=()=>arguments[0]; return g()} f(1);"},
		{"with", "function f(a){with(o){return a}} f(1);"},
		{"eval in nested function", "function f(a){function g(){eval('a')} return a} f(1);"},
		{"function escapes", "function f(a){return a} f(1); g(f);"},
		{"function reassigned", "function f(a){return a} f(1); f = null;"},
		{"function redeclared", "function f(a){return a} f(1); var f;"},
		{"method call", "function f(a){return a} f(1); f.call(null, 2);"},
		{"untracked argument", "function f(a){return a} f(1); f(x);"},
		{"long string", "function f(a){return a} f('" + long33 + "');"},
		{"object literal", "function f(a){return a} f({});"},
		{"shadowed undefined", "function f(a){return a} function g(undefined){f(undefined); f(undefined)}"},
		{"read by a default", "function f(a, b = a){return b} f(1); f(1);"},
		{"pattern parameter", "function f({a}){return a} f(1);"},
		{"redeclared parameter", "function f(a){var a; return a} f(1);"},
		{"named function expression", "var h = function n(k){return k ? n(0) : 0}; h(5);"},
		{"arrow", "var f = (a) => a; f(1);"},
		{"eval in the declaring function", "function outer(){ function f(a){return a} f(1); return eval('f(2)') }"},
		{"with in the declaring function", "function outer(o){ function f(a){return a} f(1); with(o){ f(1) } }"},
		{"eval at top level", "function f(a){return a} f(1); eval('f(2)');"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, file := parse(t, tt.src)
			before := print(t, b, file)
			rep := Optimize(context.Background(), b, file, DefaultOptions())
			if after := print(t, b, file); after != before || rep.Changed {
				t.Errorf("expected no change:\nbefore %s\nafter  %s", before, after)
			}
			if rep.Passes != 1 {
				t.Errorf("passes = %d, want 1", rep.Passes)
			}
		})
	}
}

const (
	long32 = "abcdefghijklmnopqrstuvwxyz012345"
	long33 = long32 + "6"
)

func TestInlineParams_Report(t *testing.T) {
	_, rep := minify(t, "function f(a,b){return a+b} f(1,'x'); f(1,'x');", DefaultOptions())
	if !rep.Changed || rep.Passes != 2 {
		t.Fatalf("report = %+v", rep)
	}
	if len(rep.Inlined) != 2 {
		t.Fatalf("inlined = %+v", rep.Inlined)
	}
	want := []InlinedParam{
		{Func: "f", Param: "a", Value: "1", Pass: 1},
		{Func: "f", Param: "b", Value: "'x'", Pass: 1},
	}
	for i, w := range want {
		if rep.Inlined[i] != w {
			t.Errorf("inlined[%d] = %+v, want %+v", i, rep.Inlined[i], w)
		}
	}
}

func TestInlineParams_ResultReparses(t *testing.T) {
	src := "function f(a,b){'use strict'; return a+b} f(1,2); f(1,2);"
	out, _ := minify(t, src, DefaultOptions())
	b, file := parse(t, out)
	if again := print(t, b, file); again != out {
		t.Errorf("printed output is not stable:\n%s\n%s", out, again)
	}
}

func TestInlineParams_UndefinedIsVoidZero(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "local var named undefined in the caller",
			src:  "function outer(){var undefined=5; function f(a){return a} return [f(), f()]}",
			want: "function f(){const a=void 0;return a;}",
		},
		{
			name: "let undefined in the body",
			src:  "function f(a){let undefined=1; return a} f(); f();",
			want: "function f(){const a=void 0;let undefined=1;return a;}",
		},
		{
			name: "function named undefined in the body",
			src:  "function f(a){function undefined(){} return a} f(); f();",
			want: "const a=void 0;",
		},
		{
			name: "explicit global undefined",
			src:  "function f(a){var undefined=2; return a} f(undefined); f();",
			want: "function f(){const a=void 0;var undefined=2;return a;}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rep := minify(t, tt.src, DefaultOptions())
			if !rep.Changed {
				t.Fatalf("expected a rewrite: %s", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("got  %s\nwant it to contain %s", got, tt.want)
			}
			if strings.Contains(got, "=undefined") {
				t.Errorf("undefined injected by name: %s", got)
			}
		})
	}
}

// More passes must not change the result: a rewritten function is never
// analyzed again against its old call sites.
func TestInlineParams_PassesAgree(t *testing.T) {
	sources := []string{
		"function f(a){return a+1} f(1); f(1); f(1);",
		"function f(a){return a} f(1); f(2);",
		"function f(a){a=2; return a} f(1); f(1);",
		"function f(a){eval(\"a\"); return a} f(1); f(1);",
		"function f(a,b){return a+b} f(1); f(1,2);",
		"function f(a,b,c){return a+b+c} f(1); f(1,5,5);",
		"function f(a,b,c){return [a,b,c]} f(1,2); f(1,2,3);",
		"function g(x,y){return x*y} g(2,3); g(2,3);",
		"function f(a){return a} function g(b){return f(b)} g(1); g(1);",
	}
	for _, src := range sources {
		one, _ := minify(t, src, Options{Unused: true, Passes: 1})
		def, _ := minify(t, src, DefaultOptions())
		many, _ := minify(t, src, Options{Unused: true, Passes: 5})
		if def != one || many != one {
			t.Errorf("%s\n1 pass:  %s\ndefault: %s\n5 passes: %s", src, one, def, many)
		}
	}
}
