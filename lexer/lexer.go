package lexer

import (
	"unicode"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lumen/errors"
	"github.com/pontaoski/lumen/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lumen", "lexer")

// operators is tried in order, so a multi-character operator must come
// before any operator that is a prefix of it.
var operators = []string{
	"==", "!=", ">=", "<=", ">", "<", "=", "+", "-", "*", "/", "(", ")", "[", "]",
	"{", "}", ",",
}

type Lexer struct {
	src       []rune
	index     int
	pos       types.Position
	lineStart int
}

type matcher func() (types.Token, bool)

func NewLexer(src string, filename string) *Lexer {
	return &Lexer{
		src: []rune(src),
		pos: types.Position{Line: 1, Column: 0, Filename: filename},
	}
}

// Tokenize runs a lexer over src.
func Tokenize(src string, filename string) ([]types.Token, error) {
	return NewLexer(src, filename).Tokenize()
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.lineStart = l.index + 1
}

func (l *Lexer) here() types.Position {
	p := l.pos
	p.Column = l.index - l.lineStart + 1
	return p
}

func (l *Lexer) peek() (rune, bool) {
	if l.index >= len(l.src) {
		return 0, false
	}
	return l.src[l.index], true
}

func (l *Lexer) takeWhile(p func(r rune) bool) string {
	start := l.index
	for l.index < len(l.src) && p(l.src[l.index]) {
		l.index++
	}
	return string(l.src[start:l.index])
}

func (l *Lexer) capture(seq string) bool {
	runes := []rune(seq)
	if l.index+len(runes) > len(l.src) {
		return false
	}
	for i, r := range runes {
		if l.src[l.index+i] != r {
			return false
		}
	}
	l.index += len(runes)
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) lexNumber() (types.Token, bool) {
	from := l.here()

	minus := l.takeWhile(func(r rune) bool { return r == '-' })
	if len(minus) > 1 {
		return types.Token{}, false
	}

	digits := l.takeWhile(isDigit)
	lit := minus + digits
	if r, ok := l.peek(); ok && r == '.' {
		l.index++
		frac := l.takeWhile(isDigit)
		if digits == "" && frac == "" {
			return types.Token{}, false
		}
		lit += "." + frac
	} else if digits == "" {
		return types.Token{}, false
	}

	return types.Token{Kind: types.NUMBER, Value: lit, Pos: from}, true
}

func (l *Lexer) lexIdent() (types.Token, bool) {
	from := l.here()

	r, ok := l.peek()
	if !ok || !unicode.IsLetter(r) {
		return types.Token{}, false
	}
	lit := l.takeWhile(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })

	return types.Token{Kind: types.IDENT, Value: lit, Pos: from}, true
}

func (l *Lexer) lexString() (types.Token, bool) {
	from := l.here()

	if !l.capture(`"`) {
		return types.Token{}, false
	}

	start := l.index
	for l.index < len(l.src) && l.src[l.index] != '"' {
		if l.src[l.index] == '\n' {
			l.newline()
		}
		l.index++
	}
	lit := string(l.src[start:l.index])

	if !l.capture(`"`) {
		panic(errors.UnclosedString{Pos: from})
	}

	return types.Token{Kind: types.STRING, Value: lit, Pos: from}, true
}

func (l *Lexer) lexOperator() (types.Token, bool) {
	from := l.here()

	for _, op := range operators {
		if l.capture(op) {
			return types.Token{Kind: types.OPERATOR, Value: op, Pos: from}, true
		}
	}

	return types.Token{}, false
}

// Tokenize scans the whole source. Characters no matcher accepts, whitespace
// included, are skipped. An unterminated string is the only lexing error.
func (l *Lexer) Tokenize() (tokens []types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			uerr, ok := r.(errors.UnclosedString)
			if !ok {
				panic(r)
			}
			tokens, err = nil, uerr
		}
	}()

	matchers := []matcher{
		l.lexNumber,
		l.lexIdent,
		l.lexString,
		l.lexOperator,
	}

	for l.index < len(l.src) {
		if l.src[l.index] == '\n' {
			l.newline()
		}

		start := l.index
		matched := false
		for _, match := range matchers {
			tok, ok := match()
			if ok {
				tokens = append(tokens, tok)
				matched = true
				break
			}
			l.index = start
		}

		if !matched {
			l.index++
		}
	}

	plog.Debugf("%s: %d tokens", l.pos.Filename, len(tokens))
	return tokens, nil
}
