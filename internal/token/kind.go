package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	NumberLit
	StringLit

	// ключевые слова
	KwVar
	KwLet
	KwConst
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwIn
	KwOf // contextual; the lexer emits Ident and the parser checks the text
	KwBreak
	KwContinue
	KwThrow
	KwTry
	KwCatch
	KwFinally
	KwWith
	KwNew
	KwThis
	KwTypeof
	KwVoid
	KwDelete
	KwInstanceof
	KwTrue
	KwFalse
	KwNull

	// пунктуация
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	DotDotDot
	Question
	QuestionDot
	QuestionQuestion
	Colon
	Arrow // =>

	// операторы
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	StarStarAssign
	AmpAssign
	PipeAssign
	CaretAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AndAndAssign
	OrOrAssign
	QuestionQuestionAssign
	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	PlusPlus
	MinusMinus
	Bang
	Tilde
	Amp
	Pipe
	Caret
	AndAnd
	OrOr
	Shl
	Shr
	UShr
	EqEq
	EqEqEq
	BangEq
	BangEqEq
	Lt
	LtEq
	Gt
	GtEq
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Ident:                  "Ident",
	NumberLit:              "NumberLit",
	StringLit:              "StringLit",
	KwVar:                  "var",
	KwLet:                  "let",
	KwConst:                "const",
	KwFunction:             "function",
	KwReturn:               "return",
	KwIf:                   "if",
	KwElse:                 "else",
	KwWhile:                "while",
	KwDo:                   "do",
	KwFor:                  "for",
	KwIn:                   "in",
	KwOf:                   "of",
	KwBreak:                "break",
	KwContinue:             "continue",
	KwThrow:                "throw",
	KwTry:                  "try",
	KwCatch:                "catch",
	KwFinally:              "finally",
	KwWith:                 "with",
	KwNew:                  "new",
	KwThis:                 "this",
	KwTypeof:               "typeof",
	KwVoid:                 "void",
	KwDelete:               "delete",
	KwInstanceof:           "instanceof",
	KwTrue:                 "true",
	KwFalse:                "false",
	KwNull:                 "null",
	LParen:                 "(",
	RParen:                 ")",
	LBrace:                 "{",
	RBrace:                 "}",
	LBracket:               "[",
	RBracket:               "]",
	Semicolon:              ";",
	Comma:                  ",",
	Dot:                    ".",
	DotDotDot:              "...",
	Question:               "?",
	QuestionDot:            "?.",
	QuestionQuestion:       "??",
	Colon:                  ":",
	Arrow:                  "=>",
	Assign:                 "=",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	StarAssign:             "*=",
	SlashAssign:            "/=",
	PercentAssign:          "%=",
	StarStarAssign:         "**=",
	AmpAssign:              "&=",
	PipeAssign:             "|=",
	CaretAssign:            "^=",
	ShlAssign:              "<<=",
	ShrAssign:              ">>=",
	UShrAssign:             ">>>=",
	AndAndAssign:           "&&=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	StarStar:               "**",
	Slash:                  "/",
	Percent:                "%",
	PlusPlus:               "++",
	MinusMinus:             "--",
	Bang:                   "!",
	Tilde:                  "~",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	AndAnd:                 "&&",
	OrOr:                   "||",
	Shl:                    "<<",
	Shr:                    ">>",
	UShr:                   ">>>",
	EqEq:                   "==",
	EqEqEq:                 "===",
	BangEq:                 "!=",
	BangEqEq:               "!==",
	Lt:                     "<",
	LtEq:                   "<=",
	Gt:                     ">",
	GtEq:                   ">=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsAssignOp reports whether k is "=" or a compound assignment operator.
func (k Kind) IsAssignOp() bool {
	return k >= Assign && k <= QuestionQuestionAssign
}
