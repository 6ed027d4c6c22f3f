package lexer

import (
	"testing"

	"jsmin/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	return fs.Get(id)
}

func TestCursor_MarkReset(t *testing.T) {
	c := NewCursor(createFile("abc"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v, want 0..2", sp)
	}
	c.Reset(m)
	if c.Peek() != 'a' {
		t.Errorf("after Reset Peek = %c, want a", c.Peek())
	}
	if c.PeekAt(2) != 'c' || c.PeekAt(3) != 0 {
		t.Errorf("PeekAt out of expectations")
	}
	if !c.Eat('a') || c.Eat('x') {
		t.Errorf("Eat mismatch")
	}
}

func TestCursor_EOF(t *testing.T) {
	c := NewCursor(createFile(""))
	if !c.EOF() || c.Bump() != 0 || c.Peek() != 0 {
		t.Errorf("empty file must be EOF")
	}
}
