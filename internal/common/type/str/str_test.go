package str

import (
	"testing"
)

func TestLiteral(t *testing.T) {
	for _, v := range []struct {
		text     string
		expected string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"tab\t", "\"tab\t\""},
		{"café", "\"café\""},
		{"\xff", `"\xff"`},
		{"a\x80b", `"a\x80b"`},
		{"\xc3", `"\xc3"`},
		{"�", "\"�\""},
	} {
		if s := New(v.text).(*T).Literal(); s != v.expected {
			t.Fatalf("%q: expected %s; got %s", v.text, v.expected, s)
		}
	}
}
