// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the mal language.
//
// The mal lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// The lexer only finds token boundaries. Deciding whether an atom is a
// number, keyword or symbol is left to the parser.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/mal/internal/common/struct/loc"
	"github.com/michaelmacinnis/mal/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes   string     // Buffer being scanned.
	first   int        // Index of the current token's first byte.
	index   int        // Index of the current byte.
	line    int        // Line of the current byte.
	pending []*token.T // Tokens scanned but not yet consumed.
	queue   []string   // Buffers waiting to be scanned.
	runes   int        // Column of the current byte.
	saved   action     // Escaped action.
	state   action     // Current action.

	source loc.T // Location of the current token's first byte.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}
}

// Peek returns the next token without consuming it, or nil if no
// token is available.
func (l *T) Peek() *token.T {
	for len(l.pending) == 0 {
		if l.state == nil && !l.gather() {
			return nil
		}

		l.state = l.state(l)
	}

	return l.pending[0]
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
// Tokens never span buffers.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token consumes and returns the next scanned token, or nil if no token
// is available.
func (l *T) Token() *token.T {
	t := l.Peek()
	if t != nil {
		l.pending[0] = nil
		l.pending = l.pending[1:]
	}

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.pending = append(l.pending, token.New(c, l.Text(), l.source))
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) gather() bool {
	if len(l.queue) == 0 {
		return false
	}

	l.bytes = strings.Join(l.queue, "")
	l.queue = nil
	l.first = 0
	l.index = 0
	l.state = skipSeparators

	l.skip()

	return true
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil
	return resumed
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func afterTilde(l *T) action {
	r, w := l.peek()
	if r == '@' {
		l.accept(r, w)
		l.emit(token.Splice)
	} else {
		l.emit('~')
	}

	return skipSeparators
}

func escapeNextCharacter(l *T) action {
	r := l.next()

	if r == eof {
		l.emit(token.String)
		return nil
	}

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof || terminates(r) {
			l.emit(token.Atom)
			return skipSeparators
		}

		l.accept(r, w)
	}
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof, '\n':
			l.emit(token.Comment)
			return skipSeparators
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			// An unterminated string runs to the end of the buffer.
			l.emit(token.String)
			return nil
		case '"':
			l.emit(token.String)
			return skipSeparators
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func scanToken(l *T) action {
	r := l.next()

	switch r {
	case '(', ')', '[', ']', '{', '}', '\'', '`', '^', '@':
		l.emit(r)
		return skipSeparators
	case '"':
		return scanString
	case ';':
		return scanComment
	case '~':
		return afterTilde
	}

	return scanAtom
}

func skipSeparators(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case separates(r):
			l.accept(r, w)
			l.skip()
		default:
			return scanToken
		}
	}
}

// Helper functions.

func separates(r token.Class) bool {
	return r == ',' || unicode.IsSpace(rune(r))
}

func terminates(r token.Class) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', '\'', '"', '`', ';':
		return true
	}

	return separates(r)
}
