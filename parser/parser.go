package parser

import (
	"strconv"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/errors"
	"github.com/pontaoski/lumen/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lumen", "parser")

// Parse parses a whole program. The returned error is the first diagnostic
// encountered; no partial tree is returned with it.
func Parse(tokens []types.Token) (ast.Body, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() (program ast.Body, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fatal)
			if !ok {
				panic(r)
			}
			program, err = nil, f.err
		}
	}()

	program = ast.Body{}
	for !p.atEOF() {
		program = append(program, p.commit(p.statement))
	}

	plog.Debugf("parsed %d top-level statements", len(program))
	return program, nil
}

func (p *Parser) statement() (ast.Node, error) {
	return p.firstOf(p.parseIf, p.parseWhile, p.parseFor, p.parseAssign, p.expr)
}

// block parses `{ statement* }`.
func (p *Parser) block() (ast.Node, error) {
	if _, err := p.token("{"); err != nil {
		return nil, err
	}

	body := ast.Body{}
	for !p.peekValue("}") {
		body = append(body, p.commit(p.statement))
	}
	p.commit(p.value("}", nil))

	return body, nil
}

func (p *Parser) parseIf() (ast.Node, error) {
	if _, err := p.try(p.value("if", nil)); err != nil {
		return nil, err
	}

	cond := p.commit(p.expr)
	then := p.commit(p.block)

	var elseBranch ast.Node = ast.Unit{}
	if p.accept("else") {
		elseBranch = p.commit(func() (ast.Node, error) {
			return p.firstOf(p.parseIf, p.block)
		})
	}

	return ast.IfNode{Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	if _, err := p.try(p.value("while", nil)); err != nil {
		return nil, err
	}

	cond := p.commit(p.expr)
	body := p.commit(p.block)

	return ast.WhileNode{Cond: cond, Body: body.(ast.Body)}, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	if _, err := p.try(p.value("for", nil)); err != nil {
		return nil, err
	}

	id := p.commit(p.identifier)
	p.commit(p.value("in", nil))
	iter := p.commit(p.expr)
	body := p.commit(p.block)

	return ast.ForNode{Var: string(id.(ast.Ident)), Iter: iter, Body: body.(ast.Body)}, nil
}

// parseAssign only succeeds when an identifier is directly followed by `=`.
func (p *Parser) parseAssign() (ast.Node, error) {
	id, err := p.try(p.identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.token("="); err != nil {
		return nil, err
	}

	return ast.Assign{ID: string(id.(ast.Ident)), Expr: p.commit(p.expr)}, nil
}

func (p *Parser) identifier() (ast.Node, error) {
	return p.kind(types.IDENT, func(tok types.Token) ast.Node {
		return ast.Ident(tok.Value)
	})()
}

func (p *Parser) number() (ast.Node, error) {
	return p.kind(types.NUMBER, func(tok types.Token) ast.Node {
		// Out of range literals become ±Inf.
		n, err := strconv.ParseFloat(tok.Value, 64)
		if nerr, ok := err.(*strconv.NumError); ok && nerr.Err == strconv.ErrRange {
			err = nil
		}
		if err != nil {
			panic(fatal{errors.InvalidNumber{Got: tok}})
		}
		return ast.Number(n)
	})()
}

func (p *Parser) str() (ast.Node, error) {
	return p.kind(types.STRING, func(tok types.Token) ast.Node {
		return ast.Str(tok.Value)
	})()
}

func (p *Parser) boolean(word string, b bool) parseFunc {
	return p.value(word, func(types.Token) ast.Node {
		return ast.Bool(b)
	})
}

func (p *Parser) primary() (ast.Node, error) {
	return p.firstOf(
		p.number,
		p.str,
		p.boolean("true", true),
		p.boolean("false", false),
		p.function,
		p.identifier,
		p.list,
		p.paren,
	)
}

// function parses `fun (params) { body }`.
func (p *Parser) function() (ast.Node, error) {
	if _, err := p.try(p.value("fun", nil)); err != nil {
		return nil, err
	}

	p.commit(p.value("(", nil))
	var params []string
	for _, id := range p.sepBy(",", p.identifier) {
		params = append(params, string(id.(ast.Ident)))
	}
	p.commit(p.value(")", nil))
	body := p.commit(p.block)

	return ast.FunNode{Params: params, Body: body.(ast.Body)}, nil
}

func (p *Parser) list() (ast.Node, error) {
	if _, err := p.try(p.value("[", nil)); err != nil {
		return nil, err
	}

	elems := p.sepBy(",", p.expr)
	p.commit(p.value("]", nil))

	return ast.ListNode(elems), nil
}

func (p *Parser) paren() (ast.Node, error) {
	if _, err := p.try(p.value("(", nil)); err != nil {
		return nil, err
	}

	expr := p.commit(p.expr)
	p.commit(p.value(")", nil))

	return expr, nil
}

// call parses a primary followed by any number of argument lists, so
// f(a)(b) applies the result of f(a) to b.
func (p *Parser) call() (ast.Node, error) {
	callee, err := p.try(p.primary)
	if err != nil {
		return nil, err
	}

	for p.accept("(") {
		args := p.sepBy(",", p.expr)
		p.commit(p.value(")", nil))
		callee = ast.Apply{Callee: callee, Args: args}
	}

	return callee, nil
}

// binOp parses a left-associative chain of op over operands parsed by sub.
func (p *Parser) binOp(op string, sub parseFunc) parseFunc {
	return func() (ast.Node, error) {
		left, err := p.try(sub)
		if err != nil {
			return nil, err
		}

		for p.accept(op) {
			right := p.commit(sub)
			left = ast.BinOp{Op: op, Left: left, Right: right}
		}

		return left, nil
	}
}

func (p *Parser) div() (ast.Node, error)     { return p.binOp("/", p.call)() }
func (p *Parser) mul() (ast.Node, error)     { return p.binOp("*", p.div)() }
func (p *Parser) add() (ast.Node, error)     { return p.binOp("+", p.mul)() }
func (p *Parser) sub() (ast.Node, error)     { return p.binOp("-", p.add)() }
func (p *Parser) eq() (ast.Node, error)      { return p.binOp("==", p.sub)() }
func (p *Parser) geq() (ast.Node, error)     { return p.binOp(">=", p.eq)() }
func (p *Parser) leq() (ast.Node, error)     { return p.binOp("<=", p.geq)() }
func (p *Parser) less() (ast.Node, error)    { return p.binOp("<", p.leq)() }
func (p *Parser) greater() (ast.Node, error) { return p.binOp(">", p.less)() }
func (p *Parser) and() (ast.Node, error)     { return p.binOp("and", p.greater)() }

// or reads the ">" token, not an "or" keyword. Every ">" has already been
// consumed by greater, so this level never adds a node.
func (p *Parser) or() (ast.Node, error) { return p.binOp(">", p.and)() }

func (p *Parser) expr() (ast.Node, error) { return p.or() }
