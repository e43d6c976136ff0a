package reader

import (
	"errors"
	"io"
	"testing"

	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/reader/parser"
)

func TestEveryFormOnALine(t *testing.T) {
	r := New("test")

	r.Scan("1 (2 3) [4] ; done\n")

	for _, e := range []string{"1", "(2 3)", "[4]"} {
		c, err := r.Read()
		if err != nil {
			t.Fatalf("expected %s; got %v", e, err)
		}

		if s := literal.String(c); s != e {
			t.Fatalf("expected %s; got %s", e, s)
		}
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF; got %v", err)
	}
}

func TestErrorDiscardsLine(t *testing.T) {
	r := New("test")

	r.Scan(") 1 2\n")

	var token *parser.UnexpectedToken

	_, err := r.Read()
	if !errors.As(err, &token) {
		t.Fatalf("expected an unexpected token; got %v", err)
	}

	if _, err = r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF; got %v", err)
	}

	r.Scan("(+ 1 2)\n")

	c, err := r.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s := literal.String(c); s != "(+ 1 2)" {
		t.Fatalf("expected (+ 1 2); got %s", s)
	}
}

func TestIncompleteForm(t *testing.T) {
	r := New("test")

	r.Scan("(1 2\n")

	var end *parser.UnexpectedEndOfInput

	_, err := r.Read()
	if !errors.As(err, &end) {
		t.Fatalf("expected an unexpected end of input; got %v", err)
	}

	if _, err = r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF; got %v", err)
	}
}
