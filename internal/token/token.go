package token

import "jsmin/internal/source"

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// NewlineBefore reports whether a line terminator separates the token from
// the previous one. Automatic semicolon insertion depends on it.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.HasNewline() {
			return true
		}
	}
	return false
}

// IsLiteral reports whether the token is a primitive literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwVar && t.Kind <= KwNull
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsIdentName reports whether the token may be used as a property name after
// a dot; reserved words are allowed there.
func (t Token) IsIdentName() bool {
	return t.Kind == Ident || t.IsKeyword()
}
