package fuzztests

import (
	"testing"

	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.js", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
		// каждый токен потребляет хотя бы один байт, иначе лексер зациклится
		for i := 0; i <= len(file.Content)+1; i++ {
			if lx.Next().Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF on %q", truncateForLog(input, 200))
	})
}
