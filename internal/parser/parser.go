package parser

import (
	"slices"

	"jsmin/internal/ast"
	"jsmin/internal/diag"
	"jsmin/internal/lexer"
	"jsmin/internal/source"
	"jsmin/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser: состояние парсера на один файл.
// Токены читаются заранее целиком: стрелочным функциям нужен
// произвольный lookahead до парной скобки.
type Parser struct {
	toks     []token.Token
	pos      int
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet // нужен только для путей при надобности
	opts     Options
	lastSpan source.Span
	noIn     bool // заголовок for(...;...;...): 'in' не бинарный оператор
	inFunc   int
}

// ParseFile: входная точка для разбора одного файла.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		toks:   lx.All(),
		arenas: arenas,
		fs:     fs,
		opts:   opts,
	}
	first := p.peek().Span
	p.lastSpan = source.Span{File: first.File}

	body := p.parseStatementList(token.EOF, true)
	sp := first.Cover(p.peek().Span)
	sp.Start = 0
	p.file = arenas.Files.New(sp, body)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN смотрит на n токенов вперёд; за концом всегда EOF.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// atContextual проверяет идентификатор с заданным текстом ("of").
func (p *Parser) atContextual(text string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == text
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
