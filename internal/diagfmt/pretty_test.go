package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
)

func unterminated(t *testing.T) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.Add("/home/user/project/src/app.js", []byte("var a = 1;\nvar x = \"oops\nvar b = 2;\n"), 0)
	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: id, Start: 19, End: 24}, "unterminated string literal").
		WithNote(source.Span{File: id, Start: 11, End: 14}, "declaration starts here")
	bag.Add(d)
	return fs, bag
}

func TestPrettyPathModes(t *testing.T) {
	fs, bag := unterminated(t)
	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/app.js:2:9:"},
		{"relative", PathModeRelative, "src/app.js:2:9:"},
		{"basename", PathModeBasename, "app.js:2:9:"},
		{"auto", PathModeAuto, "src/app.js:2:9:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			if !strings.HasPrefix(out, tt.want) && !strings.Contains(out, "\n"+tt.want) {
				t.Errorf("want %q in:\n%s", tt.want, out)
			}
			if !strings.Contains(out, "ERROR LEX1002: unterminated string literal") {
				t.Errorf("missing header in:\n%s", out)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs, bag := unterminated(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, ShowNotes: true})
	out := buf.String()

	want := []string{
		"1 | var a = 1;",
		"2 | var x = \"oops",
		"  |         ^~~~~",
		"3 | var b = 2;",
		"note: src/app.js:2:1: declaration starts here",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("missing %q in:\n%s", w, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color disabled but escapes present:\n%q", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := unterminated(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes:\n%q", buf.String())
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	src := "var s = \"日本\" @;\n"
	id := fs.AddVirtual("wide.js", []byte(src))
	at := strings.IndexByte(src, '@')
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: uint32(at), End: uint32(at + 1)}, "unknown character"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output:\n%s", buf.String())
	}
	// "日本" is two runes of width 2 each
	caret := strings.Index(lines[2], "^")
	gutter := strings.Index(lines[2], "|") + 2
	if caret-gutter != 15 {
		t.Errorf("caret column = %d, want 15:\n%s", caret-gutter, buf.String())
	}
}

func TestJSON(t *testing.T) {
	fs, bag := unterminated(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1002" || d.Severity != "ERROR" || d.Location.File != "app.js" || d.Location.StartLine != 2 || d.Location.StartCol != 9 {
		t.Errorf("unexpected %+v", d)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.js", []byte("f(1)\n// c\nx")))
	toks := lexer.New(f, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "leading: newline, line_comment, newline") {
		t.Errorf("pretty tokens:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || !out[len(out)-2].Newline {
		t.Errorf("json tokens: %+v", out)
	}
}
