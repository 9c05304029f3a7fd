package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/lumen/ast"
	"github.com/pontaoski/lumen/errors"
	"github.com/pontaoski/lumen/lexer"
)

func parse(t *testing.T, src string) ast.Body {
	t.Helper()
	tokens, err := lexer.Tokenize(src, "test")
	if err != nil {
		t.Fatalf("tokenize %q: %s", src, err)
	}
	program, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse %q: %s", src, err)
	}
	return program
}

func parseError(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(src, "test")
	if err != nil {
		t.Fatalf("tokenize %q: %s", src, err)
	}
	program, err := Parse(tokens)
	if err == nil {
		t.Fatalf("parse %q: expected an error, got %s", src, repr.String(program))
	}
	if program != nil {
		t.Fatalf("parse %q: got a partial tree %s", src, repr.String(program))
	}
	return err
}

func assertParses(t *testing.T, src string, want ...ast.Node) {
	t.Helper()
	got := parse(t, src)
	wantBody := append(ast.Body{}, want...)
	if repr.String(got) != repr.String(wantBody) {
		t.Fatalf("parse %q:\ngot  %s\nwant %s", src, repr.String(got), repr.String(wantBody))
	}
}

func TestParseLiterals(t *testing.T) {
	assertParses(t, `1 "two" true false x`,
		ast.Number(1), ast.Str("two"), ast.Bool(true), ast.Bool(false), ast.Ident("x"))
	assertParses(t, `[1, "a", [b]]`,
		ast.ListNode{ast.Number(1), ast.Str("a"), ast.ListNode{ast.Ident("b")}})
	assertParses(t, `[]`, ast.ListNode(nil))
	assertParses(t, `-2.5`, ast.Number(-2.5))
}

func TestParseHugeNumberIsInfinite(t *testing.T) {
	program := parse(t, "1"+strings.Repeat("0", 400))
	if len(program) != 1 {
		t.Fatalf("got %s, want one number", repr.String(program))
	}
	n, ok := program[0].(ast.Number)
	if !ok || !math.IsInf(float64(n), 1) {
		t.Fatalf("got %s, want +Inf", repr.String(program[0]))
	}
}

func TestParseEmptyProgram(t *testing.T) {
	assertParses(t, "")
	assertParses(t, "  \n\n ")
}

func TestParsePrecedence(t *testing.T) {
	assertParses(t, `1 + 2 * 3`,
		ast.BinOp{Op: "+", Left: ast.Number(1), Right: ast.BinOp{Op: "*", Left: ast.Number(2), Right: ast.Number(3)}})

	// "/" binds tighter than "*", and "+" tighter than "-".
	assertParses(t, `a * b / c`,
		ast.BinOp{Op: "*", Left: ast.Ident("a"), Right: ast.BinOp{Op: "/", Left: ast.Ident("b"), Right: ast.Ident("c")}})
	assertParses(t, `a - b + c`,
		ast.BinOp{Op: "-", Left: ast.Ident("a"), Right: ast.BinOp{Op: "+", Left: ast.Ident("b"), Right: ast.Ident("c")}})

	assertParses(t, `a - b - c`,
		ast.BinOp{Op: "-", Left: ast.BinOp{Op: "-", Left: ast.Ident("a"), Right: ast.Ident("b")}, Right: ast.Ident("c")})

	assertParses(t, `(a - b) * c`,
		ast.BinOp{Op: "*", Left: ast.BinOp{Op: "-", Left: ast.Ident("a"), Right: ast.Ident("b")}, Right: ast.Ident("c")})

	assertParses(t, `a < b and c == d`,
		ast.BinOp{
			Op:    "and",
			Left:  ast.BinOp{Op: "<", Left: ast.Ident("a"), Right: ast.Ident("b")},
			Right: ast.BinOp{Op: "==", Left: ast.Ident("c"), Right: ast.Ident("d")},
		})
}

func TestParseOrKeywordIsNotAnOperator(t *testing.T) {
	assertParses(t, `a or b`, ast.Ident("a"), ast.Ident("or"), ast.Ident("b"))
	assertParses(t, `a > b`, ast.BinOp{Op: ">", Left: ast.Ident("a"), Right: ast.Ident("b")})
}

func TestParseCalls(t *testing.T) {
	assertParses(t, `f()`, ast.Apply{Callee: ast.Ident("f")})
	assertParses(t, `f(1, g(2))`,
		ast.Apply{Callee: ast.Ident("f"), Args: []ast.Node{ast.Number(1), ast.Apply{Callee: ast.Ident("g"), Args: []ast.Node{ast.Number(2)}}}})
	assertParses(t, `f(a)(b)`,
		ast.Apply{
			Callee: ast.Apply{Callee: ast.Ident("f"), Args: []ast.Node{ast.Ident("a")}},
			Args:   []ast.Node{ast.Ident("b")},
		})
}

func TestParseFunction(t *testing.T) {
	assertParses(t, `add = fun(a, b) { a + b }`,
		ast.Assign{ID: "add", Expr: ast.FunNode{
			Params: []string{"a", "b"},
			Body:   ast.Body{ast.BinOp{Op: "+", Left: ast.Ident("a"), Right: ast.Ident("b")}},
		}})
	assertParses(t, `fun(a){ fun(b){ a + b } }(3)(4)`,
		ast.Apply{
			Callee: ast.Apply{
				Callee: ast.FunNode{
					Params: []string{"a"},
					Body: ast.Body{ast.FunNode{
						Params: []string{"b"},
						Body:   ast.Body{ast.BinOp{Op: "+", Left: ast.Ident("a"), Right: ast.Ident("b")}},
					}},
				},
				Args: []ast.Node{ast.Number(3)},
			},
			Args: []ast.Node{ast.Number(4)},
		})
}

func TestParseAssignment(t *testing.T) {
	assertParses(t, "x = 1\ny = x", ast.Assign{ID: "x", Expr: ast.Number(1)}, ast.Assign{ID: "y", Expr: ast.Ident("x")})
	assertParses(t, `x == 1`, ast.BinOp{Op: "==", Left: ast.Ident("x"), Right: ast.Number(1)})
}

func TestParseControlFlow(t *testing.T) {
	assertParses(t, `if x { y = 1 }`,
		ast.IfNode{Cond: ast.Ident("x"), Then: ast.Body{ast.Assign{ID: "y", Expr: ast.Number(1)}}, Else: ast.Unit{}})

	assertParses(t, `if a { 1 } else if b { 2 } else { 3 }`,
		ast.IfNode{
			Cond: ast.Ident("a"),
			Then: ast.Body{ast.Number(1)},
			Else: ast.IfNode{
				Cond: ast.Ident("b"),
				Then: ast.Body{ast.Number(2)},
				Else: ast.Body{ast.Number(3)},
			},
		})

	assertParses(t, `while i < 3 { i = i + 1 }`,
		ast.WhileNode{
			Cond: ast.BinOp{Op: "<", Left: ast.Ident("i"), Right: ast.Number(3)},
			Body: ast.Body{ast.Assign{ID: "i", Expr: ast.BinOp{Op: "+", Left: ast.Ident("i"), Right: ast.Number(1)}}},
		})

	assertParses(t, `for c in "ab" { println(c) }`,
		ast.ForNode{
			Var:  "c",
			Iter: ast.Str("ab"),
			Body: ast.Body{ast.Apply{Callee: ast.Ident("println"), Args: []ast.Node{ast.Ident("c")}}},
		})

	assertParses(t, `while true {}`, ast.WhileNode{Cond: ast.Bool(true), Body: ast.Body{}})
}

func TestParseStringsNeverCloseBlocks(t *testing.T) {
	assertParses(t, `if x { y = "}" }`,
		ast.IfNode{Cond: ast.Ident("x"), Then: ast.Body{ast.Assign{ID: "y", Expr: ast.Str("}")}}, Else: ast.Unit{}})
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x = (1 + 2", "line 1: unexpected end of input. expected )"},
		{"if x {\n y = 1\n", "line 2: unexpected end of input. expected ("},
		{"while x y", "line 1: unexpected value y. expected {"},
		{"for 1 in x {}", "line 1: unexpected token number 1. expected identifier"},
		{"x = \n\n}", "line 3: unexpected value }. expected ("},
		{"f(1,)", "line 1: unexpected value ). expected ("},
		{"fun x", "line 1: unexpected value x. expected ("},
	}

	for _, c := range cases {
		err := parseError(t, c.src)
		if err.Error() != c.want {
			t.Errorf("parse %q: got %q, want %q", c.src, err.Error(), c.want)
		}
	}
}

func TestParseErrorAtEOFIsTyped(t *testing.T) {
	err := parseError(t, "x = [1, 2")
	if _, ok := err.(errors.UnexpectedEOF); !ok {
		t.Fatalf("got %#v, want errors.UnexpectedEOF", err)
	}
}
