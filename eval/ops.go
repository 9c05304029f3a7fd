package eval

import (
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/env"
)

type operator func(left, right ast.Node) (ast.Node, bool)

var operators = map[string]operator{
	"+":   add,
	"-":   numeric(func(a, b float64) ast.Node { return ast.Number(a - b) }),
	"*":   mul,
	"/":   numeric(func(a, b float64) ast.Node { return ast.Number(a / b) }),
	"==":  equal,
	">=":  numeric(func(a, b float64) ast.Node { return ast.Bool(a >= b) }),
	"<=":  numeric(func(a, b float64) ast.Node { return ast.Bool(a <= b) }),
	"<":   numeric(func(a, b float64) ast.Node { return ast.Bool(a < b) }),
	">":   numeric(func(a, b float64) ast.Node { return ast.Bool(a > b) }),
	"and": logical(func(a, b bool) bool { return a && b }),
	"or":  logical(func(a, b bool) bool { return a || b }),
}

func evalBinOp(n ast.BinOp, e *env.Env) ast.Node {
	left := Eval(n.Left, e)
	right := Eval(n.Right, e)

	op, ok := operators[n.Op]
	if !ok {
		fail(InvalidOperator{Op: n.Op})
	}

	result, ok := op(left, right)
	if !ok {
		fail(TypeMismatch{Op: n.Op, Left: left, Right: right})
	}
	return result
}

func numeric(f func(a, b float64) ast.Node) operator {
	return func(left, right ast.Node) (ast.Node, bool) {
		l, lok := left.(ast.Number)
		r, rok := right.(ast.Number)
		if !lok || !rok {
			return nil, false
		}
		return f(float64(l), float64(r)), true
	}
}

func logical(f func(a, b bool) bool) operator {
	return func(left, right ast.Node) (ast.Node, bool) {
		l, lok := left.(ast.Bool)
		r, rok := right.(ast.Bool)
		if !lok || !rok {
			return nil, false
		}
		return ast.Bool(f(bool(l), bool(r))), true
	}
}

func add(left, right ast.Node) (ast.Node, bool) {
	switch l := left.(type) {
	case ast.Number:
		if r, ok := right.(ast.Number); ok {
			return l + r, true
		}
	case ast.Str:
		if r, ok := right.(ast.Str); ok {
			return l + r, true
		}
	}
	return nil, false
}

// mul concatenates two strings, the same as add. It does not repeat.
func mul(left, right ast.Node) (ast.Node, bool) {
	switch l := left.(type) {
	case ast.Number:
		if r, ok := right.(ast.Number); ok {
			return l * r, true
		}
	case ast.Str:
		if r, ok := right.(ast.Str); ok {
			return l + r, true
		}
	}
	return nil, false
}

func equal(left, right ast.Node) (ast.Node, bool) {
	switch l := left.(type) {
	case ast.Number:
		if r, ok := right.(ast.Number); ok {
			return ast.Bool(l == r), true
		}
	case ast.Str:
		if r, ok := right.(ast.Str); ok {
			return ast.Bool(l == r), true
		}
	}
	return nil, false
}
