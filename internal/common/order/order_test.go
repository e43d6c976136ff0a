package order

import (
	"testing"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/literal"
	"github.com/michaelmacinnis/mal/internal/common/type/boolean"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/common/type/keyword"
	"github.com/michaelmacinnis/mal/internal/common/type/list"
	"github.com/michaelmacinnis/mal/internal/common/type/null"
	"github.com/michaelmacinnis/mal/internal/common/type/num"
	"github.com/michaelmacinnis/mal/internal/common/type/str"
	"github.com/michaelmacinnis/mal/internal/common/type/sym"
	"github.com/michaelmacinnis/mal/internal/common/type/vector"
)

func TestCompare(t *testing.T) {
	for _, v := range []struct {
		a, b     cell.I
		expected int
	}{
		{num.New(1), num.New(2), -1},
		{num.New(-3), num.New(-3), 0},
		{boolean.False, boolean.True, -1},
		{null.Nil, null.Nil, 0},
		{sym.New("b"), sym.New("a"), 1},
		{keyword.New("a"), keyword.New("a"), 0},
		{str.New("abc"), str.New("abd"), -1},
		{list.New(num.New(1)), list.New(num.New(1), num.New(0)), -1},
		{list.New(num.New(2)), list.New(num.New(1), num.New(0)), 1},
		{vector.New(), vector.New(), 0},
		{num.New(100), boolean.False, -1},
		{list.New(), vector.New(), -1},
		{str.New("a"), sym.New("a"), 1},
	} {
		n, ok := Compare(v.a, v.b)
		if !ok || n != v.expected {
			t.Fatalf("Compare(%s, %s): expected %d; got %d (%v)",
				literal.String(v.a), literal.String(v.b), v.expected, n, ok)
		}
	}
}

func TestFunctionsAreUnordered(t *testing.T) {
	f := fn.NewNative("f", nil)
	g := fn.NewNative("g", nil)

	if n, ok := Compare(f, f); !ok || n != 0 {
		t.Fatalf("expected a function to equal itself; got %d (%v)", n, ok)
	}

	if _, ok := Compare(f, g); ok {
		t.Fatal("expected distinct functions to be unordered")
	}

	if _, ok := Compare(list.New(f), list.New(g)); ok {
		t.Fatal("expected lists of distinct functions to be unordered")
	}
}
