package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"in":         KwIn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"with":       KwWith,
	"new":        KwNew,
	"this":       KwThis,
	"typeof":     KwTypeof,
	"void":       KwVoid,
	"delete":     KwDelete,
	"instanceof": KwInstanceof,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword возвращает Kind ключевого слова.
// "let" и "of" остаются ключевыми только там, где их ждёт парсер.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
