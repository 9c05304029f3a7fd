package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type TokenKind int

const (
	NUMBER TokenKind = iota
	IDENT
	STRING
	OPERATOR
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		NUMBER:   "number",
		IDENT:    "identifier",
		STRING:   "string",
		OPERATOR: "operator",
	}
	return data[t]
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

type Token struct {
	Kind  TokenKind
	Value string
	Pos   Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}
