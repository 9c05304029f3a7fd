package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// KindOf names the kind of a node for error messages.
func KindOf(n Node) string {
	switch n.(type) {
	case Number:
		return "number"
	case Str:
		return "string"
	case Bool:
		return "bool"
	case ListNode:
		return "list"
	case FunNode:
		return "function"
	case NativeFun:
		return "native function"
	case Unit, nil:
		return "unit"
	case Ident:
		return "identifier"
	case Body:
		return "block"
	case Assign:
		return "assignment"
	case BinOp:
		return "binary operation"
	case Apply:
		return "application"
	case IfNode:
		return "if"
	case WhileNode:
		return "while"
	case ForNode:
		return "for"
	}
	return fmt.Sprintf("%T", n)
}

// Display renders a node the way println shows it.
func Display(n Node) string {
	switch v := n.(type) {
	case Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case Str:
		return string(v)
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case ListNode:
		var b strings.Builder
		for _, elem := range v {
			b.WriteString(Display(elem))
		}
		return b.String()
	case Ident:
		return string(v)
	case BinOp:
		return fmt.Sprintf("(%s %s %s)", Display(v.Left), v.Op, Display(v.Right))
	case Apply:
		return fmt.Sprintf("%s(%s)", Display(v.Callee), displayList(v.Args))
	case FunNode:
		return fmt.Sprintf("fun(%s) {...}", strings.Join(v.Params, ", "))
	case NativeFun:
		return fmt.Sprintf("<native %s>", v.Name)
	case Unit, nil:
		return "unit"
	}
	return fmt.Sprintf("<%s>", KindOf(n))
}

func displayList(nodes []Node) string {
	var parts []string
	for _, n := range nodes {
		parts = append(parts, Display(n))
	}
	return strings.Join(parts, ", ")
}
