package errors

import (
	"fmt"

	"github.com/pontaoski/lumen/types"
)

type ExpectedValue struct {
	Expected string
	Got      types.Token
}

func (e ExpectedValue) Error() string {
	return fmt.Sprintf("line %d: unexpected value %s. expected %s", e.Got.Pos.Line, e.Got.Value, e.Expected)
}

type ExpectedKind struct {
	Expected types.TokenKind
	Got      types.Token
}

func (e ExpectedKind) Error() string {
	return fmt.Sprintf("line %d: unexpected token %s %s. expected %s", e.Got.Pos.Line, e.Got.Kind, e.Got.Value, e.Expected)
}

// UnexpectedEOF is reported when the token stream ends inside a production.
// Line is the line of the last token read, or 1 for empty input.
type UnexpectedEOF struct {
	Expected string
	Line     int
}

func (e UnexpectedEOF) Error() string {
	return fmt.Sprintf("line %d: unexpected end of input. expected %s", e.Line, e.Expected)
}

type UnclosedString struct {
	Pos types.Position
}

func (e UnclosedString) Error() string {
	return fmt.Sprintf("line %d: string is unclosed", e.Pos.Line)
}

type InvalidNumber struct {
	Got types.Token
}

func (e InvalidNumber) Error() string {
	return fmt.Sprintf("line %d: invalid number %s", e.Got.Pos.Line, e.Got.Value)
}
