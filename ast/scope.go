package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/ast.go ast"

// Scope is the read-only view of an environment that native functions
// receive from their call site. Eval computes a node there.
type Scope interface {
	Lookup(name string) (Node, bool)
	Eval(node Node) Node
}
