package engine

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/michaelmacinnis/mal/internal/common/fault"
	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/reader"
	"github.com/michaelmacinnis/mal/internal/reader/parser"
)

func TestApplication(t *testing.T) {
	h := setup(t)

	h.expect("(+ 9 3)", "12")
	h.expect("(- 9 3)", "6")
	h.expect("(* 9 3)", "27")
	h.expect("(/ 9 3)", "3")
	h.expect("(/ (* -4 (- 3 9)) (+ 4 2))", "4")
	h.expect("(list 1 (+ 1 1) (list))", "(1 2 ())")
}

func TestArityMismatch(t *testing.T) {
	h := setup(t)

	var mismatch *fault.ArityOrTypeMismatch

	for _, s := range []string{"(+)", "(+ 1)", "(+ 1 2 3)", "(+ 1 :a)", "(count 1)"} {
		err := h.fail(s)
		if !errors.As(err, &mismatch) {
			t.Fatalf("%s: expected an arity or type mismatch; got %v", s, err)
		}
	}

	err := h.fail("(+ 1)")
	if !errors.As(err, &mismatch) || mismatch.Function != "+" || len(mismatch.Args) != 1 {
		t.Fatalf("expected the mismatch to name + and its argument; got %v", err)
	}

	if s := err.Error(); s != "+: expected 2 integers, received [1]" {
		t.Fatalf("unexpected message: %s", s)
	}
}

func TestBoot(t *testing.T) {
	h := setup(t)

	h.expect("(not nil)", "true")
	h.expect("(not 0)", "false")
	h.expect("(inc 41)", "42")
	h.expect("(dec 43)", "42")
	h.expect("(zero? 0)", "true")
	h.expect("(true? true)", "true")
	h.expect("(false? nil)", "false")
}

func TestClosures(t *testing.T) {
	h := setup(t)

	h.expect("(def! adder (fn* (n) (fn* (x) (+ x n))))", "#<function>")
	h.expect("(def! add5 (adder 5))", "#<function>")
	h.expect("(add5 10)", "15")
	h.expect("((fn* [& xs] xs) 1 2 3)", "(1 2 3)")
	h.expect("((fn* (a & more) (count more)) 1)", "0")
	h.expect("(def! fact (fn* (n) (if (< n 2) 1 (* n (fact (- n 1))))))", "#<function>")
	h.expect("(fact 10)", "3628800")

	var mismatch *fault.ArityOrTypeMismatch
	if err := h.fail("(add5)"); !errors.As(err, &mismatch) {
		t.Fatalf("expected an arity mismatch; got %v", err)
	}
}

func TestDefine(t *testing.T) {
	h := setup(t)

	h.expect("(def! a 10)", "10")
	h.expect("a", "10")
	h.expect("(let* (b 1) (def! c 2))", "2")

	var unknown *fault.UnknownSymbol
	if err := h.fail("c"); !errors.As(err, &unknown) || unknown.Name != "c" {
		t.Fatalf("expected c to be unknown; got %v", err)
	}

	h.expect("(let* (a 1) a)", "1")
	h.expect("a", "10")
}

func TestDivision(t *testing.T) {
	h := setup(t)

	h.expect("(/ 7 2)", "3")
	h.expect("(/ -7 2)", "-3")
	h.expect("(/ 7 -2)", "-3")

	if err := h.fail("(/ 1 0)"); !errors.Is(err, fault.ErrDivisionByZero) {
		t.Fatalf("expected division by zero; got %v", err)
	}
}

func TestDo(t *testing.T) {
	h := setup(t)

	h.expect("(do (prn 1) (prn 2) 3)", "3")

	if s := h.out.String(); s != "1\n2\n" {
		t.Fatalf("expected 1 then 2 to be printed; got %q", s)
	}

	h.expect("(do)", "nil")
}

func TestDepthLimit(t *testing.T) {
	h := setup(t)

	h.expect("(def! loop (fn* (n) (+ 1 (loop n))))", "#<function>")

	var exhausted *fault.ResourceExhausted
	if err := h.fail("(loop 0)"); !errors.As(err, &exhausted) {
		t.Fatalf("expected resource exhaustion; got %v", err)
	}

	h.expect("(+ 1 1)", "2")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.expect("(if true 1 2)", "1")
	h.expect("(if false 1 2)", "2")
	h.expect("(if nil 1)", "nil")
	h.expect("(if 0 1 2)", "1")
	h.expect("(if (list) 1 2)", "1")
}

func TestIntegers(t *testing.T) {
	h := setup(t)

	for _, n := range []int64{0, 1, -17, 9223372036854775807, -9223372036854775808} {
		s := strconv.FormatInt(n, 10)
		h.expect(s, s)
	}
}

func TestLet(t *testing.T) {
	h := setup(t)

	h.expect("(let* (x 2 y (+ x 1)) (+ x y))", "5")
	h.expect("(let* [] (+ 40 2))", "42")
	h.expect("(let* [z 9] z)", "9")
	h.expect("[let* (x 1) x]", "1")

	var malformed *fault.MalformedSpecialForm

	for _, s := range []string{"(let* (x) x)", "(let* (1 2) 3)", "(let* x 1)", "(let* ())"} {
		if err := h.fail(s); !errors.As(err, &malformed) {
			t.Fatalf("%s: expected a malformed special form; got %v", s, err)
		}
	}
}

func TestMalformed(t *testing.T) {
	h := setup(t)

	var malformed *fault.MalformedSpecialForm

	for _, s := range []string{
		"(def!)", "(def! 1 2)", "(def! a)",
		"(if)", "(if 1 2 3 4)",
		"(fn* x 1)", "(fn* (1) 1)", "(fn* (& a b) 1)",
		"(quote)",
	} {
		if err := h.fail(s); !errors.As(err, &malformed) {
			t.Fatalf("%s: expected a malformed special form; got %v", s, err)
		}
	}
}

func TestNotAFunction(t *testing.T) {
	h := setup(t)

	var nf *fault.NotAFunction

	for _, s := range []string{"(1 2)", "[1 2]", `("f")`} {
		if err := h.fail(s); !errors.As(err, &nf) {
			t.Fatalf("%s: expected not a function; got %v", s, err)
		}
	}
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.expect("'(a b)", "(a b)")
	h.expect("(quote x)", "x")
}

func TestRecoveryAfterError(t *testing.T) {
	h := setup(t)

	h.expect("(def! a 1)", "1")

	if err := h.fail("(def! a (+ 1 undefined))"); err == nil {
		t.Fatal("expected an error")
	}

	h.expect("a", "1")
}

func TestReadErrors(t *testing.T) {
	h := setup(t)

	var end *parser.UnexpectedEndOfInput
	if err := h.fail("(1 2"); !errors.As(err, &end) {
		t.Fatalf("expected an unexpected end of input; got %v", err)
	}

	var token *parser.UnexpectedToken
	if err := h.fail(")"); !errors.As(err, &token) {
		t.Fatalf("expected an unexpected token; got %v", err)
	}
}

func TestSelfEvaluation(t *testing.T) {
	h := setup(t)

	h.expect("()", "()")
	h.expect("[]", "[]")
	h.expect("{:a (+ 1 2)}", "{:a (+ 1 2)}")
	h.expect(`"a\nb"`, `"a\nb"`)
	h.expect(":kw", ":kw")
	h.expect("nil", "nil")
	h.expect("+", "#<function +>")
}

func TestVectorApplication(t *testing.T) {
	h := setup(t)

	h.expect("[+ 1 2]", "3")
}

type harness struct {
	engine *T
	out    *bytes.Buffer
	t      *testing.T
}

func setup(t *testing.T) *harness {
	out := &bytes.Buffer{}

	e, err := New(out)
	if err != nil {
		t.Fatalf("boot failed: %v", err)
	}

	return &harness{engine: e, out: out, t: t}
}

func (h *harness) expect(text, expected string) {
	c, err := h.run(text)
	if err != nil {
		h.t.Fatalf("%s: unexpected error: %v", text, err)
	}

	if actual := literal.String(c); actual != expected {
		h.t.Fatalf("%s: expected %s; got %s", text, expected, actual)
	}
}

func (h *harness) fail(text string) error {
	_, err := h.run(text)
	if err == nil {
		h.t.Fatalf("%s: expected an error", text)
	}

	return err
}

// run evaluates every form in text and returns the last result or the
// first error.
func (h *harness) run(text string) (last cell.I, err error) {
	r := reader.New(h.t.Name())
	r.Scan(text)

	h.engine.Each(r, func(c cell.I, problem error) bool {
		last, err = c, problem

		return problem == nil
	})

	return last, err
}
