package driver

import (
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}}).All()
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}
