package env

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/lumen/ast"
)

func mustLookup(t *testing.T, e *Env, name string) ast.Node {
	t.Helper()
	v, ok := e.Lookup(name)
	if !ok {
		t.Fatalf("%s is not bound in %s", name, repr.String(e.Names()))
	}
	return v
}

func TestBindLeavesReceiverUntouched(t *testing.T) {
	a := New().Bind("x", ast.Number(1))
	b := a.Bind("x", ast.Number(2)).Bind("y", ast.Str("y"))

	if v := mustLookup(t, a, "x"); v != ast.Number(1) {
		t.Fatalf("a.x = %s, want 1", repr.String(v))
	}
	if _, ok := a.Lookup("y"); ok {
		t.Fatal("y leaked into a")
	}
	if v := mustLookup(t, b, "x"); v != ast.Number(2) {
		t.Fatalf("b.x = %s, want 2", repr.String(v))
	}
	if a.Len() != 1 || b.Len() != 2 {
		t.Fatalf("got sizes %d and %d", a.Len(), b.Len())
	}
}

func TestExtend(t *testing.T) {
	caller := New().Bind("a", ast.Number(1)).Bind("z", ast.Number(26))

	call := caller.Extend([]string{"a", "b", "c"}, []ast.Node{ast.Str("A"), ast.Str("B")})

	if v := mustLookup(t, call, "a"); v != ast.Str("A") {
		t.Fatalf("parameter did not shadow the caller: %s", repr.String(v))
	}
	if v := mustLookup(t, call, "b"); v != ast.Str("B") {
		t.Fatalf("b = %s", repr.String(v))
	}
	if _, ok := call.Lookup("c"); ok {
		t.Fatal("c has no argument and should stay unbound")
	}
	if v := mustLookup(t, call, "z"); v != ast.Number(26) {
		t.Fatalf("caller binding lost: %s", repr.String(v))
	}
	if v := mustLookup(t, caller, "a"); v != ast.Number(1) {
		t.Fatalf("caller modified: %s", repr.String(v))
	}
}

func TestRestrict(t *testing.T) {
	outer := New().Bind("total", ast.Number(0)).Bind("keep", ast.Bool(true))
	inner := outer.Bind("total", ast.Number(6)).Bind("i", ast.Number(3)).Bind("j", ast.Number(99))

	got := inner.Restrict(outer)

	if repr.String(got.Names()) != repr.String([]string{"keep", "total"}) {
		t.Fatalf("got names %s", repr.String(got.Names()))
	}
	if v := mustLookup(t, got, "total"); v != ast.Number(6) {
		t.Fatalf("total = %s, want 6", repr.String(v))
	}

	missing := New().Restrict(outer)
	if v := mustLookup(t, missing, "keep"); v != (ast.Unit{}) {
		t.Fatalf("keep = %s, want unit", repr.String(v))
	}
}

func TestNamesAreSorted(t *testing.T) {
	e := New().Bind("b", ast.Unit{}).Bind("c", ast.Unit{}).Bind("a", ast.Unit{})
	if repr.String(e.Names()) != repr.String([]string{"a", "b", "c"}) {
		t.Fatalf("got %s", repr.String(e.Names()))
	}
}
