package token

import "jsmin/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether the trivia contains a line terminator.
func (t Trivia) HasNewline() bool {
	switch t.Kind {
	case TriviaNewline:
		return true
	case TriviaBlockComment:
		for i := 0; i < len(t.Text); i++ {
			if t.Text[i] == '\n' {
				return true
			}
		}
	}
	return false
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line_comment"
	case TriviaBlockComment:
		return "block_comment"
	}
	return "unknown"
}
