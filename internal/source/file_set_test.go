package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSet_ResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.js", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.js", []byte("first\nsecond\n")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: ""}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestFileSet_LoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.js")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a;\r\nb;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a;\nb;\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if latest, ok := fs.GetLatest(path); !ok || latest != id {
		t.Errorf("GetLatest() = %d,%v; want %d,true", latest, ok, id)
	}
}

func TestInterner_Dedup(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("foo")
	c := in.Intern("bar")
	if a != b {
		t.Errorf("same string interned twice: %d vs %d", a, b)
	}
	if a == c {
		t.Errorf("distinct strings share id %d", a)
	}
	if s := in.MustLookup(c); s != "bar" {
		t.Errorf("MustLookup = %q", s)
	}
	if in.Intern("") != NoStringID {
		t.Errorf("empty string must map to NoStringID")
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Errorf("unknown id must not resolve")
	}
}
