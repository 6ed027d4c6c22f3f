package fuzztests

import (
	"context"
	"testing"
	"time"

	"jsmin/internal/ast"
	"jsmin/internal/compress"
	"jsmin/internal/diag"
	"jsmin/internal/format"
	"jsmin/internal/lexer"
	"jsmin/internal/parser"
	"jsmin/internal/source"
	"jsmin/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input.
// Longer runs point at an infinite loop in error recovery.
const parseTimeout = 5 * time.Second

type parsed struct {
	b    *ast.Builder
	file ast.FileID
	src  *source.File
	bag  *diag.Bag
}

func parseBytes(input []byte) parsed {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.js", input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter, MaxErrors: 128})
	return parsed{b: builder, file: res.File, src: file, bag: bag}
}

// FuzzParserNoHang checks the parser terminates on any input and keeps
// statement spans sane for inputs it accepts.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("function f( { { {"))
	f.Add([]byte("if (a) else b"))
	f.Add([]byte("var = ;"))
	f.Add([]byte("`tpl`"))
	f.Add([]byte("/re/g.test(s)"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan parsed, 1)
		go func() {
			done <- parseBytes(input)
		}()

		select {
		case p := <-done:
			if p.bag.HasErrors() {
				return
			}
			if err := testkit.CheckSpanInvariants(p.b, p.file, p.src); err != nil {
				t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
			}
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzOptimizeReparses optimizes every accepted input and requires the
// printed result to parse again.
func FuzzOptimizeReparses(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		p := parseBytes(input)
		if p.bag.HasErrors() {
			return
		}

		ctx := context.Background()
		compress.Optimize(ctx, p.b, p.file, compress.DefaultOptions())
		out, err := format.FormatFile(p.b, p.file, format.Options{})
		if err != nil {
			t.Fatalf("format: %v\ninput: %q", err, truncateForLog(input, 200))
		}

		again := parseBytes(out)
		if again.bag.HasErrors() {
			t.Fatalf("optimized output does not parse\ninput:  %q\noutput: %q", truncateForLog(input, 200), truncateForLog(out, 200))
		}
	})
}
