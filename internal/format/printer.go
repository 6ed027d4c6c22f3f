package format

import (
	"errors"
	"fmt"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/parser"
	"jsmin/internal/source"
)

type Options struct {
	// Pretty prints one statement per line with spaces around operators;
	// otherwise output is minified.
	Pretty      bool
	IndentWidth int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

type printer struct {
	builder *ast.Builder
	writer  *Writer
	opt     Options
	// noIn is set while printing a for-loop initializer: a bare 'in' there
	// would read as for-in.
	noIn bool
}

func newPrinter(b *ast.Builder, opt Options) *printer {
	opt = opt.withDefaults()
	return &printer{builder: b, writer: NewWriter(opt), opt: opt}
}

// FormatFile prints a whole file.
func FormatFile(b *ast.Builder, fid ast.FileID, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("format: nil builder")
	}
	if !fid.IsValid() {
		return nil, errors.New("format: invalid file id")
	}
	file := b.Files.Get(fid)
	if file == nil {
		return nil, errors.New("format: missing ast file")
	}
	p := newPrinter(b, opt)
	p.stmtList(file.Body)
	p.writer.Newline()
	return p.writer.Bytes(), nil
}

// Expr prints a single expression in compact form.
func Expr(b *ast.Builder, id ast.ExprID) string {
	p := newPrinter(b, Options{})
	p.expr(id, ast.PrecLowest)
	return p.writer.String()
}

func (p *printer) name(id source.StringID) string {
	return p.builder.Name(id)
}

// CheckRoundTrip prints src, parses the output and prints it again; both
// printed forms must match and the reparse must be clean.
func CheckRoundTrip(path string, src []byte, opt Options, maxDiag int) (ok bool, msg string) {
	first, err := formatSource(path, src, opt, maxDiag)
	if err != nil {
		return false, "round-trip: initial parse failed: " + err.Error()
	}
	second, err := formatSource(path, first, opt, maxDiag)
	if err != nil {
		return false, "round-trip: reparse failed: " + err.Error()
	}
	if string(first) != string(second) {
		return false, "round-trip: output differs after reparse"
	}
	return true, "round-trip: OK"
}

func formatSource(path string, src []byte, opt Options, maxDiag int) ([]byte, error) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual(path, src))
	bag := diag.NewBag(maxDiag)
	rep := &diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lexer.New(sf, lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep, MaxErrors: uint(maxDiag)})
	if bag.HasErrors() {
		if items := bag.Items(); len(items) > 0 {
			return nil, fmt.Errorf("%s: %s", items[0].Code.ID(), items[0].Message)
		}
		return nil, errors.New("syntax errors")
	}
	return FormatFile(b, res.File, opt)
}
