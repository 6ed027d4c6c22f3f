package driver

import (
	"fmt"

	"fortio.org/safecast"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/parser"
	"jsmin/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse loads and parses one file.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, id, maxDiagnostics)
}

// parseLoaded only reads fs, so workers may share one FileSet once every
// file is loaded.
func parseLoaded(fs *source.FileSet, id source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(id)
	if file == nil {
		return nil, fmt.Errorf("file %d not loaded", id)
	}
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	rep := &diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
	})
	bag.Sort()
	bag.Dedup()
	return &ParseResult{FileSet: fs, File: file, Builder: b, FileID: res.File, Bag: bag}, nil
}
