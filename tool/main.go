// Command adtgen turns a list of sum type declarations into Go types that
// implement a marker interface.
//
//	type Name = Plain;
//	type Sum = | Case of Kind | Case { Field Kind ; Field Kind };
//
// Usage: adtgen <in.adt> <out.go> <package>
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/participle"

	"github.com/dave/jennifer/jen"
)

type Module struct {
	Declarations []*Declaration `@@*`
}

type Field struct {
	Name string `@Ident`
	Kind string `(@Ident | @String | @RawString)`
}

type Case struct {
	Name   string   `@Ident`
	Of     *string  `(  "of" (@Ident | @String | @RawString)`
	Fields []*Field ` | "{" (@@ (";" @@)*)? "}" )`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Cases []*Case  ` | ("|" @@)+ )`
	I     struct{} `";"`
}

func (m *Module) IsSumType(name string) bool {
	for _, decl := range m.Declarations {
		if decl.Name == name && decl.Cases != nil {
			return true
		}
	}
	return false
}

func (m *Module) caseType(c *Case) jen.Code {
	if c.Of == nil {
		var fields []jen.Code
		for _, field := range c.Fields {
			fields = append(fields, jen.Id(field.Name).Id(field.Kind))
		}
		return jen.Struct(fields...)
	}
	if m.IsSumType(*c.Of) {
		return jen.Struct(jen.Id(*c.Of))
	}
	return jen.Id(*c.Of)
}

func Generate(source, pkgname string, m *Module) string {
	f := jen.NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, decl := range m.Declarations {
		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
			continue
		}

		marker := "is_" + decl.Name
		f.Type().Id(decl.Name).Interface(
			jen.Id(marker).Params(),
		)

		for _, c := range decl.Cases {
			f.Type().Id(c.Name).Add(m.caseType(c))
			f.Func().Params(jen.Id("v").Id(c.Name)).Id(marker).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("usage: %s <in.adt> <out.go> <package>", filepath.Base(os.Args[0]))
	}
	in, out, pkgname := os.Args[1], os.Args[2], os.Args[3]

	parser := participle.MustBuild(&Module{})

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		log.Fatalf("reading %s: %s", in, err)
	}

	module := Module{}
	err = parser.ParseBytes(inData, &module)
	if err != nil {
		log.Fatalf("parsing %s: %s", in, err)
	}

	err = ioutil.WriteFile(out, []byte(Generate(filepath.Base(in), pkgname, &module)), 0644)
	if err != nil {
		log.Fatalf("writing %s: %s", out, err)
	}
}
