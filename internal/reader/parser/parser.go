// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the mal language.
package parser

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/struct/token"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/dict"
	"github.com/michaelmacinnis/mal/internal/common/type/keyword"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
)

// MaxDepth is the deepest nesting of forms the parser will accept.
const MaxDepth = 10000

//nolint:gochecknoglobals
var (
	closers = map[token.Class]token.Class{
		'(': ')',
		'[': ']',
		'{': '}',
	}

	quotes = map[token.Class]string{
		'\'':         "quote",
		'`':          "quasiquote",
		'~':          "unquote",
		'@':          "deref",
		token.Splice: "splice-unquote",
	}
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	depth int             // Nesting depth of the form being read.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
// Item should return nil when no tokens remain.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// More returns true if there is at least one more form to read.
// Comments are skipped.
func (p *T) More() bool {
	p.comments()

	return p.peek() != nil
}

// Read consumes tokens for exactly one form and returns it.
// Any error is a *UnexpectedToken, *UnexpectedEndOfInput or
// *MalformedQuoteOrMeta.
func (p *T) Read() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		f, ok := r.(failure)
		if !ok {
			panic(r)
		}

		c, err = nil, f.error
	}()

	p.depth = 0

	return p.form(), nil
}

// Skip discards the lookahead and every token item still has to offer.
// It is used to resynchronize after an error.
func (p *T) Skip() {
	p.ahead = 0
	p.token = nil

	for p.item() != nil {
	}
}

// failure wraps errors raised with panic inside the parser so that Read
// can tell them apart from runtime errors.
type failure struct {
	error
}

func (p *T) comments() {
	for p.peek().Is(token.Comment) {
		p.consume()
	}
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(err error) {
	panic(failure{err})
}

func (p *T) peek() *token.T {
	// A nil lookahead is not cached; more tokens may have arrived since.
	if p.ahead > 0 && p.token != nil {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <form> ::= <sequence> | <quoted> | <meta> | String | Atom .
func (p *T) form() cell.I {
	p.depth++
	defer func() {
		p.depth--
	}()

	p.comments()

	t := p.peek()
	if t == nil {
		p.fail(&UnexpectedEndOfInput{Expected: "form"})
	}

	if p.depth > MaxDepth {
		p.fail(&UnexpectedToken{Reason: "nested too deeply", Token: t})
	}

	p.consume()

	if closer, ok := closers[t.Class()]; ok {
		return p.sequence(t, closer)
	}

	if name, ok := quotes[t.Class()]; ok {
		return list.New(sym.New(name), p.operand(t))
	}

	switch {
	case t.Is('^'):
		// The metadata comes first in the source but second in the form.
		meta := p.operand(t)
		return list.New(sym.New("with-meta"), p.operand(t), meta)

	case t.Is(')', ']', '}'):
		p.fail(&UnexpectedToken{Token: t})

	case t.Is(token.String):
		return p.string(t)
	}

	return p.atom(t)
}

// <sequence> ::= '(' <form>* ')' | '[' <form>* ']' | '{' <form>* '}' .
func (p *T) sequence(opener *token.T, closer token.Class) cell.I {
	elements := []cell.I{}

	for {
		p.comments()

		t := p.peek()

		switch {
		case t == nil:
			p.fail(&UnexpectedEndOfInput{
				Expected: closer.String(),
				Opener:   opener,
			})

		case t.Is(closer):
			p.consume()

			switch opener.Class() {
			case '[':
				return vector.New(elements...)
			case '{':
				return dict.New(elements...)
			}

			return list.New(elements...)

		case t.Is(')', ']', '}'):
			p.fail(&UnexpectedToken{
				Reason: "expected " + closer.String(),
				Token:  t,
			})
		}

		elements = append(elements, p.form())
	}
}

// operand reads the form following the prefix token t.
func (p *T) operand(t *token.T) cell.I {
	p.comments()

	n := p.peek()
	if n == nil {
		p.fail(&MalformedQuoteOrMeta{
			Err:    &UnexpectedEndOfInput{Expected: "form"},
			Prefix: t,
		})
	}

	if n.Is(')', ']', '}') {
		p.fail(&MalformedQuoteOrMeta{
			Err:    &UnexpectedToken{Token: n},
			Prefix: t,
		})
	}

	return p.form()
}

func (p *T) atom(t *token.T) cell.I {
	v := t.Value()

	switch v {
	case "true":
		return boolean.True
	case "false":
		return boolean.False
	case "nil":
		return null.Nil
	}

	if integer(v) {
		c, err := num.Parse(v)
		if err != nil {
			p.fail(&UnexpectedToken{Reason: "integer out of range", Token: t})
		}

		return c
	}

	if len(v) > 0 && v[0] == ':' {
		return keyword.New(v[1:])
	}

	return sym.New(v)
}

func (p *T) string(t *token.T) cell.I {
	text := t.Value()[1:]
	if terminated(text) {
		text = text[:len(text)-1]
	}

	s, err := adapted.ActualBytes(text)
	if err != nil {
		p.fail(&UnexpectedToken{Reason: "invalid escape sequence", Token: t})
	}

	return str.New(s)
}

// Helper functions.

// integer returns true if s is an optional '-' followed by decimal digits.
func integer(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}

	if len(s) == 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// terminated returns true if the string literal text (without its opening
// quote) ends with an unescaped closing quote.
func terminated(text string) bool {
	n := len(text)
	if n == 0 || text[n-1] != '"' {
		return false
	}

	escapes := 0
	for i := n - 2; i >= 0 && text[i] == '\\'; i-- {
		escapes++
	}

	return escapes%2 == 0
}
