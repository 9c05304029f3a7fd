package eval

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/env"
)

// Builtins returns the environment every program starts in. println
// writes to out.
func Builtins(out io.Writer) *env.Env {
	e := env.New()

	funcs := []func(io.Writer) (string, ast.NativeImpl){
		addPrintln,
		addLength,
	}
	for _, fn := range funcs {
		name, impl := fn(out)
		e = e.Bind(name, ast.NativeFun{Name: name, Impl: impl})
	}

	return e
}

func addPrintln(out io.Writer) (string, ast.NativeImpl) {
	return "println", func(args []ast.Node, scope ast.Scope) ast.Node {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, ast.Display(force(arg, scope)))
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return ast.Unit{}
	}
}

// force evaluates list elements, nested lists included, so they display as
// values rather than as source.
func force(n ast.Node, scope ast.Scope) ast.Node {
	list, ok := n.(ast.ListNode)
	if !ok {
		return n
	}
	values := make(ast.ListNode, 0, len(list))
	for _, elem := range list {
		values = append(values, force(scope.Eval(elem), scope))
	}
	return values
}

func addLength(io.Writer) (string, ast.NativeImpl) {
	return "length", func(args []ast.Node, _ ast.Scope) ast.Node {
		if len(args) > 0 {
			switch v := args[0].(type) {
			case ast.Str:
				return ast.Number(utf8.RuneCountInString(string(v)))
			case ast.ListNode:
				return ast.Number(len(v))
			}
		}
		fail(BadArgument{Func: "length", Args: args})
		return nil
	}
}
