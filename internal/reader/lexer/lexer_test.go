package lexer

import (
	"testing"

	"github.com/michaelmacinnis/mal/internal/common/struct/loc"
	"github.com/michaelmacinnis/mal/internal/common/struct/token"
)

func TestAtomsAbsorbMacroCharacters(t *testing.T) {
	h := setup(t, "AtomsAbsorbMacroCharacters")

	h.scan("a@b c~d e^f",
		h.atom("a@b"),
		h.space(1),
		h.atom("c~d"),
		h.space(1),
		h.atom("e^f"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("1 ; one\n2",
		h.atom("1"),
		h.space(1),
		h.other(token.Comment, "; one"),
		h.newline(),
		h.atom("2"),
		nil,
	)
}

func TestCommasSeparate(t *testing.T) {
	h := setup(t, "CommasSeparate")

	h.scan("[1,2 ,, 3]",
		h.literal("["),
		h.atom("1"),
		h.space(1),
		h.atom("2"),
		h.space(4),
		h.atom("3"),
		h.literal("]"),
		nil,
	)
}

func TestDelimiters(t *testing.T) {
	h := setup(t, "Delimiters")

	h.scan("({[a]})",
		h.literal("("),
		h.literal("{"),
		h.literal("["),
		h.atom("a"),
		h.literal("]"),
		h.literal("}"),
		h.literal(")"),
		nil,
	)
}

func TestList(t *testing.T) {
	h := setup(t, "List")

	h.scan("(+ 1 -2)",
		h.literal("("),
		h.atom("+"),
		h.space(1),
		h.atom("1"),
		h.space(1),
		h.atom("-2"),
		h.literal(")"),
		nil,
	)
}

func TestMacros(t *testing.T) {
	h := setup(t, "Macros")

	h.scan("'a `b ~c ~@d @e ^f",
		h.literal("'"),
		h.atom("a"),
		h.space(1),
		h.literal("`"),
		h.atom("b"),
		h.space(1),
		h.literal("~"),
		h.atom("c"),
		h.space(1),
		h.other(token.Splice, "~@"),
		h.atom("d"),
		h.space(1),
		h.literal("@"),
		h.atom("e"),
		h.space(1),
		h.literal("^"),
		h.atom("f"),
		nil,
	)
}

func TestMultipleBuffers(t *testing.T) {
	l := New("MultipleBuffers")

	l.Scan("(a")

	for _, v := range []string{"(", "a"} {
		if tok := l.Token(); tok == nil || tok.Value() != v {
			t.Fatalf("Expected %q; got %v", v, tok)
		}
	}

	if tok := l.Peek(); tok != nil {
		t.Fatalf("Expected no tokens; got %v", tok)
	}

	l.Scan(" b)")

	for _, v := range []string{"b", ")"} {
		if tok := l.Token(); tok == nil || tok.Value() != v {
			t.Fatalf("Expected %q; got %v", v, tok)
		}
	}

	if tok := l.Token(); tok != nil {
		t.Fatalf("Expected no tokens; got %v", tok)
	}
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`"a\"b" "" c`,
		h.other(token.String, `"a\"b"`),
		h.space(1),
		h.other(token.String, `""`),
		h.space(1),
		h.atom("c"),
		nil,
	)
}

func TestStringEndsAtom(t *testing.T) {
	h := setup(t, "StringEndsAtom")

	h.scan(`abc"d"`,
		h.atom("abc"),
		h.other(token.String, `"d"`),
		nil,
	)
}

func TestUnterminatedString(t *testing.T) {
	h := setup(t, "UnterminatedString")

	h.scan(`"abc`,
		h.other(token.String, `"abc`),
		nil,
	)

	h = setup(t, "UnterminatedEscape")

	h.scan(`"abc\`,
		h.other(token.String, `"abc\`),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) atom(s string) *token.T {
	return h.other(token.Atom, s)
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}
