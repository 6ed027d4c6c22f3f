package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsmin/internal/ast"
	"jsmin/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// the file span lies within the content, and every top-level statement span
// is non-empty, inside the file span and after the previous statement.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End < f.Span.Start || f.Span.End > lenContent {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, lenContent)
	}

	var prevEnd uint32
	for i, id := range f.Body {
		st := b.Stmts.Get(id)
		if st == nil {
			return fmt.Errorf("nil statement for id=%d", id)
		}
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if !f.Span.Contains(sp) {
			return fmt.Errorf("statement span %v is outside file span %v", sp, f.Span)
		}
		// операторы верхнего уровня не пересекаются
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("statement %d starts at %d before previous end %d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}
