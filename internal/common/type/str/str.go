// Released under an MIT license. See LICENSE.

// Package str provides mal's string type.
package str

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/mal/internal/common"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type. The text is stored with escapes decoded.
type T string

type str = T

const hex = "0123456789abcdef"

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the str s.
// Backslashes, double quotes and newlines are escaped, as is any byte
// that is not part of a valid UTF-8 sequence.
func (s *str) Literal() string {
	var b strings.Builder

	b.WriteByte('"')

	for v := string(*s); len(v) > 0; {
		r, w := utf8.DecodeRuneInString(v)

		switch {
		case r == utf8.RuneError && w == 1:
			b.WriteString(`\x`)
			b.WriteByte(hex[v[0]>>4])
			b.WriteByte(hex[v[0]&0xf])
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		default:
			b.WriteString(v[:w])
		}

		v = v[w:]
	}

	b.WriteByte('"')

	return b.String()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
