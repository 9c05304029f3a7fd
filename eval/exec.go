package eval

import (
	"fmt"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/env"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lumen", "eval")

// State is what executing a statement leaves behind. Last holds the value of
// the most recent expression statement and is nil until one has run; blocks
// and function bodies return it.
type State struct {
	Env  *env.Env
	Last ast.Node
}

// Value is Last, or unit when nothing set it.
func (s State) Value() ast.Node {
	if s.Last == nil {
		return ast.Unit{}
	}
	return s.Last
}

// Run executes a program on top of e.
func Run(program ast.Body, e *env.Env) State {
	return Exec(program, State{Env: e})
}

// IsExpression reports whether executing node sets the last value.
func IsExpression(node ast.Node) bool {
	switch node.(type) {
	case ast.Number, ast.Str, ast.Bool, ast.ListNode, ast.FunNode, ast.NativeFun, ast.Ident, ast.Apply, ast.BinOp:
		return true
	}
	return false
}

// Exec runs one statement and returns the state after it. st is not
// modified.
func Exec(node ast.Node, st State) State {
	switch n := node.(type) {
	case ast.Body:
		return execBody(n, st)
	case ast.Assign:
		return State{Env: st.Env.Bind(n.ID, Eval(n.Expr, st.Env)), Last: st.Last}
	case ast.IfNode:
		return execIf(n, st)
	case ast.WhileNode:
		return execWhile(n, st)
	case ast.ForNode:
		return execFor(n, st)
	case ast.Number, ast.Str, ast.Bool, ast.ListNode, ast.FunNode, ast.NativeFun, ast.Ident, ast.Apply, ast.BinOp:
		return State{Env: st.Env, Last: Eval(n, st.Env)}
	case ast.Unit:
		return st
	}
	panic(fmt.Sprintf("unhandled statement %T", node))
}

func execBody(body ast.Body, st State) State {
	for _, stmt := range body {
		st = Exec(stmt, st)
	}
	return st
}

func isTrue(node ast.Node) bool {
	b, ok := node.(ast.Bool)
	return ok && bool(b)
}

// Branches run in the enclosing scope, so their bindings outlive the if.
func execIf(n ast.IfNode, st State) State {
	if isTrue(Eval(n.Cond, st.Env)) {
		return Exec(n.Then, st)
	}
	return Exec(n.Else, st)
}

func execWhile(n ast.WhileNode, st State) State {
	for isTrue(Eval(n.Cond, st.Env)) {
		st = Exec(n.Body, st)
	}
	return st
}

// each calls f for every element of a list, or every character of a string.
func each(iterable ast.Node, f func(elem ast.Node)) {
	switch v := iterable.(type) {
	case ast.ListNode:
		for _, elem := range v {
			f(elem)
		}
	case ast.Str:
		for _, r := range string(v) {
			f(ast.Str(string(r)))
		}
	default:
		fail(NotIterable{Got: iterable})
	}
}

// execFor threads bindings through the iterations like while does, but
// afterwards only the names bound before the loop survive, with their final
// values. The loop variable and anything the body introduced are dropped.
func execFor(n ast.ForNode, st State) State {
	iterable := Eval(n.Iter, st.Env)

	inner := st
	each(iterable, func(elem ast.Node) {
		plog.Tracef("for %s = %s", n.Var, ast.Display(elem))
		inner = Exec(n.Body, State{Env: inner.Env.Bind(n.Var, elem), Last: inner.Last})
	})

	out := State{Env: inner.Env.Restrict(st.Env)}
	if st.Last != nil {
		out.Last = inner.Last
	}
	return out
}
