package lexer

import (
	"jsmin/internal/diag"
	"jsmin/internal/token"
)

// операторы отсортированы по длине: жадное сопоставление
var punct4 = map[string]token.Kind{
	">>>=": token.UShrAssign,
}

var punct3 = map[string]token.Kind{
	"...": token.DotDotDot,
	"===": token.EqEqEq,
	"!==": token.BangEqEq,
	"**=": token.StarStarAssign,
	"<<=": token.ShlAssign,
	">>=": token.ShrAssign,
	">>>": token.UShr,
	"&&=": token.AndAndAssign,
	"||=": token.OrOrAssign,
	"??=": token.QuestionQuestionAssign,
}

var punct2 = map[string]token.Kind{
	"=>": token.Arrow,
	"==": token.EqEq,
	"!=": token.BangEq,
	"<=": token.LtEq,
	">=": token.GtEq,
	"&&": token.AndAnd,
	"||": token.OrOr,
	"??": token.QuestionQuestion,
	"?.": token.QuestionDot,
	"++": token.PlusPlus,
	"--": token.MinusMinus,
	"+=": token.PlusAssign,
	"-=": token.MinusAssign,
	"*=": token.StarAssign,
	"/=": token.SlashAssign,
	"%=": token.PercentAssign,
	"&=": token.AmpAssign,
	"|=": token.PipeAssign,
	"^=": token.CaretAssign,
	"**": token.StarStar,
	"<<": token.Shl,
	">>": token.Shr,
}

var punct1 = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'?': token.Question,
	':': token.Colon,
	'=': token.Assign,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'!': token.Bang,
	'~': token.Tilde,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'<': token.Lt,
	'>': token.Gt,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:lx.cursor.Limit]

	for _, tbl := range []struct {
		n int
		m map[string]token.Kind
	}{{4, punct4}, {3, punct3}, {2, punct2}} {
		if len(rest) < tbl.n {
			continue
		}
		k, ok := tbl.m[string(rest[:tbl.n])]
		if !ok {
			continue
		}
		// "?.5": это тернарник с числом, а не optional chaining
		if k == token.QuestionDot && len(rest) > 2 && isDec(rest[2]) {
			continue
		}
		for i := 0; i < tbl.n; i++ {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	if k, ok := punct1[b]; ok {
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}
	lx.errLex(diag.LexUnknownChar, sp, "unexpected character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
