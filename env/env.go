package env

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pontaoski/lumen/ast"
)

// Env maps identifiers to values. An Env is never modified after it is
// built: every update returns a new Env and leaves the receiver as it was.
type Env struct {
	vars *treemap.Map
}

func New() *Env {
	return &Env{vars: treemap.NewWithStringComparator()}
}

func (e *Env) clone() *Env {
	c := New()
	it := e.vars.Iterator()
	for it.Next() {
		c.vars.Put(it.Key(), it.Value())
	}
	return c
}

func (e *Env) Lookup(name string) (ast.Node, bool) {
	v, ok := e.vars.Get(name)
	if !ok {
		return nil, false
	}
	return v.(ast.Node), true
}

// Bind returns a copy of e with name bound to value.
func (e *Env) Bind(name string, value ast.Node) *Env {
	c := e.clone()
	c.vars.Put(name, value)
	return c
}

// Extend binds names to values pairwise. Extra names or values on either
// side are ignored.
func (e *Env) Extend(names []string, values []ast.Node) *Env {
	c := e.clone()
	for i := 0; i < len(names) && i < len(values); i++ {
		c.vars.Put(names[i], values[i])
	}
	return c
}

// Restrict keeps only the names bound in outer, taking each value from e.
// A name of outer that e does not bind maps to unit.
func (e *Env) Restrict(outer *Env) *Env {
	c := New()
	for _, name := range outer.Names() {
		if v, ok := e.Lookup(name); ok {
			c.vars.Put(name, v)
		} else {
			c.vars.Put(name, ast.Unit{})
		}
	}
	return c
}

// Names lists the bound identifiers in sorted order.
func (e *Env) Names() []string {
	names := make([]string, 0, e.vars.Size())
	for _, k := range e.vars.Keys() {
		names = append(names, k.(string))
	}
	return names
}

func (e *Env) Len() int {
	return e.vars.Size()
}
