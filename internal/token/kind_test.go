package token

import "testing"

func TestKind_StringCoversAll(t *testing.T) {
	for k := Invalid; k <= GtEq; k++ {
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		ok   bool
	}{
		{"function", KwFunction, true},
		{"with", KwWith, true},
		{"undefined", Invalid, false},
		{"Function", Invalid, false},
		{"arguments", Invalid, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.text)
		if ok != tt.ok || (ok && k != tt.kind) {
			t.Errorf("LookupKeyword(%q) = %v,%v; want %v,%v", tt.text, k, ok, tt.kind, tt.ok)
		}
	}
}

func TestToken_NewlineBefore(t *testing.T) {
	tok := Token{Kind: Ident, Leading: []Trivia{{Kind: TriviaSpace, Text: " "}}}
	if tok.NewlineBefore() {
		t.Errorf("space must not count as newline")
	}
	tok.Leading = append(tok.Leading, Trivia{Kind: TriviaBlockComment, Text: "/* a\n b */"})
	if !tok.NewlineBefore() {
		t.Errorf("multi-line block comment must count as newline")
	}
}

func TestKind_IsAssignOp(t *testing.T) {
	for _, k := range []Kind{Assign, PlusAssign, QuestionQuestionAssign, UShrAssign} {
		if !k.IsAssignOp() {
			t.Errorf("%s should be an assignment operator", k)
		}
	}
	for _, k := range []Kind{EqEq, Plus, Arrow} {
		if k.IsAssignOp() {
			t.Errorf("%s should not be an assignment operator", k)
		}
	}
}
