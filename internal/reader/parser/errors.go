// Released under an MIT license. See LICENSE.

package parser

import (
	"github.com/michaelmacinnis/mal/internal/common/struct/token"
)

// MalformedQuoteOrMeta reports a quote or metadata prefix that is not
// followed by a form. Err holds the underlying problem.
type MalformedQuoteOrMeta struct {
	Err    error
	Prefix *token.T
}

func (e *MalformedQuoteOrMeta) Error() string {
	return e.Prefix.Source().String() + ": '" + e.Prefix.Value() +
		"' must be followed by a form: " + e.Err.Error()
}

func (e *MalformedQuoteOrMeta) Unwrap() error {
	return e.Err
}

// UnexpectedEndOfInput reports that the tokens ran out while Expected
// was still needed. Opener, if not nil, is the token that started the
// unfinished sequence.
type UnexpectedEndOfInput struct {
	Expected string
	Opener   *token.T
}

func (e *UnexpectedEndOfInput) Error() string {
	s := "expected " + e.Expected + ", got EOF"
	if e.Opener != nil {
		s = e.Opener.Source().String() + ": " + s
	}

	return s
}

// UnexpectedToken reports a token that cannot appear where it was found.
type UnexpectedToken struct {
	Reason string
	Token  *token.T
}

func (e *UnexpectedToken) Error() string {
	s := e.Token.Source().String() + ": unexpected '" + e.Token.Value() + "'"
	if e.Reason != "" {
		s += ": " + e.Reason
	}

	return s
}
