package compress

import (
	"testing"
)

func TestIsTrackable(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"1", true},
		{"0x1f", true},
		{"true", true},
		{"null", true},
		{"'short'", true},
		{"'" + long32 + "'", true},
		{"'" + long33 + "'", false},
		{"'😀😀😀😀😀😀😀😀😀😀😀😀😀😀😀😀'", true}, // 16 символов = 32 UTF-16
		{"'😀😀😀😀😀😀😀😀😀😀😀😀😀😀😀😀x'", false},
		{"undefined", true},
		{"!0", true},
		{"!'s'", true},
		{"!null", true},
		{"-1", true},
		{"-'1'", false},
		{"-true", false},
		{"+1", false},
		{"~1", false},
		{"!x", false},
		{"- -1", false},
		{"x", false},
		{"void 0", true},
		{"void 'x'", false},
		{"void x", false},
		{"[]", false},
		{"({})", false},
		{"1 + 1", false},
		{"f()", false},
		{"this", false},
	}
	for _, tt := range tests {
		b, file := parse(t, "("+tt.src+");")
		st, _ := b.Stmts.Expr(b.Files.Get(file).Body[0])
		if got := IsTrackable(b, st.Expr); got != tt.want {
			t.Errorf("IsTrackable(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestIsTrackable_ShadowedUndefined(t *testing.T) {
	b, file := parse(t, "function g(undefined){ return undefined; }")
	NewOptimizer(b, file, DefaultOptions()).Analyze()
	fnID, _ := b.Stmts.FnDecl(b.Files.Get(file).Body[0])
	blk, _ := b.Stmts.Block(b.Funcs.Get(fnID).Body)
	ret, _ := b.Stmts.Jump(blk.Stmts[0])
	if IsTrackable(b, ret.Arg) {
		t.Errorf("a local binding named undefined is not a constant")
	}
}
