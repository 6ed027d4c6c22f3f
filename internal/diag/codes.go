package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005
	LexUnsupportedTemplate      Code = 1006

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynExpectSemicolon       Code = 2002
	SynExpectIdentifier      Code = 2003
	SynExpectExpression      Code = 2004
	SynExpectRParen          Code = 2005
	SynExpectRBrace          Code = 2006
	SynExpectRBracket        Code = 2007
	SynExpectColon           Code = 2008
	SynExpectLBrace          Code = 2009
	SynBadAssignTarget       Code = 2010
	SynBadPattern            Code = 2011
	SynRestNotLast           Code = 2012
	SynConstWithoutInit      Code = 2013
	SynMissingCatchOrFinally Code = 2014
	SynForBadHeader          Code = 2015

	IOLoadFileError Code = 4001

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	LexBadEscape:                "Bad escape sequence",
	LexUnsupportedTemplate:      "Template literals are not supported",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expected semicolon",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectRParen:             "Expected ')'",
	SynExpectRBrace:             "Expected '}'",
	SynExpectRBracket:           "Expected ']'",
	SynExpectColon:              "Expected ':'",
	SynExpectLBrace:             "Expected '{'",
	SynBadAssignTarget:          "Invalid assignment target",
	SynBadPattern:               "Invalid binding pattern",
	SynRestNotLast:              "Rest element must be last",
	SynConstWithoutInit:         "Missing initializer in const declaration",
	SynMissingCatchOrFinally:    "Missing catch or finally after try",
	SynForBadHeader:             "Malformed for statement header",
	IOLoadFileError:             "I/O load file error",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
