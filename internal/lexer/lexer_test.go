package lexer_test

import (
	"testing"

	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func lexAll(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(input))
	rep := &testReporter{}
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	return lx.All(), rep
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"decl", "function f(a, b) { return a; }", []token.Kind{
			token.KwFunction, token.Ident, token.LParen, token.Ident, token.Comma, token.Ident, token.RParen,
			token.LBrace, token.KwReturn, token.Ident, token.Semicolon, token.RBrace, token.EOF,
		}},
		{"greedy ops", "a >>>= b ?? c?.d", []token.Kind{
			token.Ident, token.UShrAssign, token.Ident, token.QuestionQuestion, token.Ident, token.QuestionDot, token.Ident, token.EOF,
		}},
		{"ternary with fraction", "a?.5:1", []token.Kind{
			token.Ident, token.Question, token.NumberLit, token.Colon, token.NumberLit, token.EOF,
		}},
		{"spread and arrow", "(...xs) => xs", []token.Kind{
			token.LParen, token.DotDotDot, token.Ident, token.RParen, token.Arrow, token.Ident, token.EOF,
		}},
		{"dollar ident", "$_x1", []token.Kind{token.Ident, token.EOF}},
		{"literals", "1 .5 0x1F 0b101 1e-3 1_000 'a' \"b\" true null", []token.Kind{
			token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit,
			token.StringLit, token.StringLit, token.KwTrue, token.KwNull, token.EOF,
		}},
		{"comments are trivia", "a /* x */ // y\n b", []token.Kind{token.Ident, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, rep := lexAll(t, tt.input)
			if len(rep.diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
			}
			got := kinds(toks)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_NewlineBefore(t *testing.T) {
	toks, _ := lexAll(t, "a\nb c /*\n*/ d")
	want := []bool{false, true, false, true}
	for i, w := range want {
		if toks[i].NewlineBefore() != w {
			t.Errorf("token %d (%q): NewlineBefore = %v, want %v", i, toks[i].Text, !w, w)
		}
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated string", "'abc", diag.LexUnterminatedString},
		{"newline in string", "'ab\nc'", diag.LexUnterminatedString},
		{"template", "`x${y}`", diag.LexUnsupportedTemplate},
		{"block comment", "/* never", diag.LexUnterminatedBlockComment},
		{"bad number", "3in", diag.LexBadNumber},
		{"bad exponent", "1e", diag.LexBadNumber},
		{"unknown char", "#", diag.LexUnknownChar},
		{"bad escape", `"\x4"`, diag.LexBadEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rep := lexAll(t, tt.input)
			if len(rep.diagnostics) == 0 {
				t.Fatalf("expected diagnostic %s", tt.code.ID())
			}
			if rep.diagnostics[0].Code != tt.code {
				t.Errorf("got %s, want %s", rep.diagnostics[0].Code.ID(), tt.code.ID())
			}
		})
	}
}

func TestLexer_SpanText(t *testing.T) {
	toks, _ := lexAll(t, "  foo  'bar'")
	if toks[0].Text != "foo" || toks[0].Span.Start != 2 || toks[0].Span.End != 5 {
		t.Errorf("foo: got %q %v", toks[0].Text, toks[0].Span)
	}
	if toks[1].Text != "'bar'" {
		t.Errorf("bar: got %q", toks[1].Text)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{`"plain"`, "plain", true},
		{`'it\'s'`, "it's", true},
		{`"a\nb"`, "a\nb", true},
		{`"\x41B\u{43}"`, "ABC", true},
		{`"😀"`, "\U0001F600", true},
		{`"\q"`, "q", true},
		{`"\08"`, "", false},
		{`"\u12"`, "", false},
		{`'mismatch"`, "", false},
	}
	for _, tt := range tests {
		got, ok := lexer.Unquote(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Unquote(%s) = %q,%v; want %q,%v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
