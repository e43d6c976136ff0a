// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed mal code.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/common/interface/scope"
	"github.com/michaelmacinnis/mal/internal/common/type/env"
	"github.com/michaelmacinnis/mal/internal/common/type/fn"
	"github.com/michaelmacinnis/mal/internal/engine/boot"
	"github.com/michaelmacinnis/mal/internal/engine/commands"
	"github.com/michaelmacinnis/mal/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating mal code.
// It owns the root scope shared by every form it evaluates.
type T struct {
	root scope.I
}

// New creates a new T. Output from printing primitives is written to out.
func New(out io.Writer) (*T, error) {
	root := env.New(nil)

	for k, v := range commands.Functions(out) {
		root.Define(k, fn.NewNative(k, v))
	}

	e := &T{root: root}

	var err error

	r := reader.New("boot")
	r.Scan(boot.Script())

	e.Each(r, func(_ cell.I, problem error) bool {
		err = problem

		return problem == nil
	})

	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}

	return e, nil
}

// Each reads every form available from r and evaluates it in the root
// scope, passing the result or the error to f. Each stops when r has no
// more forms, after a read error, or when f returns false.
func (e *T) Each(r *reader.T, f func(cell.I, error) bool) {
	for {
		c, err := r.Read()
		if errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			f(nil, err)

			return
		}

		if !f(e.Evaluate(c)) {
			r.Discard()

			return
		}
	}
}

// Evaluate evaluates the cell c in the root scope.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return Eval(c, e.root)
}

// Names returns every name defined in the root scope.
func (e *T) Names() []string {
	return e.root.Names()
}
