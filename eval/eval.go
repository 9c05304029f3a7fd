package eval

import (
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/env"
)

// Eval computes the value of an expression in e.
func Eval(node ast.Node, e *env.Env) ast.Node {
	switch n := node.(type) {
	case ast.Number, ast.Str, ast.Bool, ast.ListNode, ast.FunNode, ast.NativeFun, ast.Unit:
		return node
	case ast.Ident:
		return evalIdent(n, e)
	case ast.Apply:
		v, _ := apply(n, e)
		return v
	case ast.BinOp:
		return evalBinOp(n, e)
	}
	fail(InvalidExpression{Got: node})
	return nil
}

// evalIdent evaluates whatever the name is bound to, so an unevaluated list
// element bound by a for loop is computed at each use.
func evalIdent(id ast.Ident, e *env.Env) ast.Node {
	v, ok := e.Lookup(string(id))
	if !ok {
		fail(UndefinedVariable{Name: string(id)})
	}
	return Eval(v, e)
}

func evalArgs(args []ast.Node, e *env.Env) []ast.Node {
	values := make([]ast.Node, 0, len(args))
	for _, arg := range args {
		values = append(values, Eval(arg, e))
	}
	return values
}

// apply calls a function. A function sees the caller's whole environment
// with its parameters bound on top; it captures nothing where it was
// defined. apply also returns that call environment, without anything the
// body assigned, and a chained call f(a)(b) runs the second function on top
// of it so it can see the parameters of the first.
func apply(n ast.Apply, e *env.Env) (ast.Node, *env.Env) {
	var callee ast.Node
	scope := e
	if inner, ok := n.Callee.(ast.Apply); ok {
		callee, scope = apply(inner, e)
	} else {
		callee = Eval(n.Callee, e)
	}

	switch f := callee.(type) {
	case ast.FunNode:
		args := evalArgs(n.Args, e)
		plog.Debugf("calling %s with %d argument(s)", ast.Display(f), len(args))
		call := scope.Extend(f.Params, args)
		return Exec(f.Body, State{Env: call}).Value(), call
	case ast.NativeFun:
		args := evalArgs(n.Args, e)
		plog.Debugf("calling native %s with %d argument(s)", f.Name, len(args))
		return f.Impl(args, callScope{e}), e
	}

	fail(NotFunction{Got: callee})
	return nil, nil
}

// callScope is what a native function sees of its call site.
type callScope struct {
	*env.Env
}

func (s callScope) Eval(node ast.Node) ast.Node {
	return Eval(node, s.Env)
}
