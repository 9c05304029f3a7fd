package eval

import (
	"fmt"

	"github.com/pontaoski/lumen/ast"
	"github.com/ztrue/tracerr"
)

// Runtime errors are never returned. fail panics with the error wrapped in
// a stack trace and nothing in this package recovers it.
func fail(err error) {
	panic(tracerr.Wrap(err))
}

type UndefinedVariable struct {
	Name string
}

func (e UndefinedVariable) Error() string {
	return fmt.Sprintf("variable %s is not defined", e.Name)
}

type NotIterable struct {
	Got ast.Node
}

func (e NotIterable) Error() string {
	return fmt.Sprintf("expression is not iterable: %s", ast.KindOf(e.Got))
}

type NotFunction struct {
	Got ast.Node
}

func (e NotFunction) Error() string {
	return fmt.Sprintf("not function: %s", ast.KindOf(e.Got))
}

type TypeMismatch struct {
	Op    string
	Left  ast.Node
	Right ast.Node
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("bad operands for %s: %s and %s", e.Op, ast.KindOf(e.Left), ast.KindOf(e.Right))
}

type InvalidOperator struct {
	Op string
}

func (e InvalidOperator) Error() string {
	return fmt.Sprintf("invalid op %s", e.Op)
}

type BadArgument struct {
	Func string
	Args []ast.Node
}

func (e BadArgument) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("bad argument to %s: none given", e.Func)
	}
	return fmt.Sprintf("bad argument to %s: %s", e.Func, ast.KindOf(e.Args[0]))
}

type InvalidExpression struct {
	Got ast.Node
}

func (e InvalidExpression) Error() string {
	return fmt.Sprintf("invalid node for expression: %s", ast.KindOf(e.Got))
}
