package parser

import (
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/errors"
	"github.com/pontaoski/lumen/types"
)

type parseFunc func() (ast.Node, error)

// fatal carries a failure out of a production that has already committed
// to its alternative. Parse recovers it and nothing else.
type fatal struct {
	err error
}

type Parser struct {
	tokens []types.Token
	index  int
}

func NewParser(tokens []types.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) atEOF() bool {
	return p.index >= len(p.tokens)
}

func (p *Parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Pos.Line
}

// peekValue reports whether the next token is the punctuation, operator or
// word v. String literals never match, so `"}"` cannot close a block.
func (p *Parser) peekValue(v string) bool {
	if p.atEOF() {
		return false
	}
	tok := p.tokens[p.index]
	return tok.Kind != types.STRING && tok.Value == v
}

// accept consumes the next token if it is v.
func (p *Parser) accept(v string) bool {
	if !p.peekValue(v) {
		return false
	}
	p.index++
	return true
}

// token consumes the next token if it has value v.
func (p *Parser) token(v string) (types.Token, error) {
	if p.atEOF() {
		return types.Token{}, errors.UnexpectedEOF{Expected: v, Line: p.lastLine()}
	}
	if !p.peekValue(v) {
		return types.Token{}, errors.ExpectedValue{Expected: v, Got: p.tokens[p.index]}
	}
	tok := p.tokens[p.index]
	p.index++
	return tok, nil
}

// value matches a single token by its text.
func (p *Parser) value(v string, fmap func(types.Token) ast.Node) parseFunc {
	return func() (ast.Node, error) {
		tok, err := p.token(v)
		if err != nil {
			return nil, err
		}
		if fmap == nil {
			return ast.Unit{}, nil
		}
		return fmap(tok), nil
	}
}

// kind matches a single token by its kind.
func (p *Parser) kind(k types.TokenKind, fmap func(types.Token) ast.Node) parseFunc {
	return func() (ast.Node, error) {
		if p.atEOF() {
			return nil, errors.UnexpectedEOF{Expected: k.String(), Line: p.lastLine()}
		}
		tok := p.tokens[p.index]
		if tok.Kind != k {
			return nil, errors.ExpectedKind{Expected: k, Got: tok}
		}
		p.index++
		if fmap == nil {
			return ast.Unit{}, nil
		}
		return fmap(tok), nil
	}
}

// firstOf tries each alternative from the same position and returns the
// first success. If every alternative fails, the last failure is returned.
func (p *Parser) firstOf(alternatives ...parseFunc) (ast.Node, error) {
	var err error
	for _, alt := range alternatives {
		node, aerr := p.try(alt)
		if aerr == nil {
			return node, nil
		}
		err = aerr
	}
	return nil, err
}

// commit runs fn and aborts the whole parse if it fails.
func (p *Parser) commit(fn parseFunc) ast.Node {
	node, err := fn()
	if err != nil {
		panic(fatal{err})
	}
	return node
}

// try runs fn and rewinds the cursor if it fails.
func (p *Parser) try(fn parseFunc) (ast.Node, error) {
	start := p.index
	node, err := fn()
	if err != nil {
		p.index = start
		return nil, err
	}
	return node, nil
}

// sepBy parses zero or more fn separated by sep. Once a separator has been
// read the next element is required.
func (p *Parser) sepBy(sep string, fn parseFunc) []ast.Node {
	var list []ast.Node

	first, err := p.try(fn)
	if err != nil {
		return list
	}
	list = append(list, first)

	for p.accept(sep) {
		list = append(list, p.commit(fn))
	}

	return list
}
