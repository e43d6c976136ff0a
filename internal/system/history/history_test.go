package history

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	called := false

	err := Load(path, func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if called {
		t.Fatal("read should not be called for a missing file")
	}
}

func TestNoPath(t *testing.T) {
	fail := func() (int, error) {
		t.Fatal("history should be disabled")

		return 0, nil
	}

	if err := Load("", func(io.Reader) (int, error) { return fail() }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Save("", func(io.Writer) (int, error) { return fail() }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	for _, text := range []string{"(+ 1 2)\n(def! a 10)\n", "a\n"} {
		err := Save(path, func(w io.Writer) (int, error) {
			return io.WriteString(w, text)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var b strings.Builder

		err = Load(path, func(r io.Reader) (int, error) {
			n, err := io.Copy(&b, r)

			return int(n), err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Each save replaces the previous contents.
		if b.String() != text {
			t.Fatalf("expected %q; got %q", text, b.String())
		}
	}
}
