// Released under an MIT license. See LICENSE.

// Package reader encapsulates the mal lexer and parser.
package reader

import (
	"io"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/reader/lexer"
	"github.com/michaelmacinnis/mal/internal/reader/parser"
)

// T (reader) turns text into forms.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	s := lexer.New(name)

	return &T{
		p: parser.New(s.Token),
		s: s,
	}
}

// Discard drops any text scanned but not yet read.
func (r *reader) Discard() {
	r.p.Skip()
}

// Read returns the next form. It returns io.EOF when every form in the
// scanned text has been read. After any other error the rest of the
// scanned text is discarded.
func (r *reader) Read() (cell.I, error) {
	if !r.p.More() {
		return nil, io.EOF
	}

	c, err := r.p.Read()
	if err != nil {
		r.Discard()
	}

	return c, err
}

// Scan queues text to be read.
func (r *reader) Scan(text string) {
	r.s.Scan(text)
}
