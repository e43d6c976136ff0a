// Released under an MIT license. See LICENSE.

/*
Mal is a small Lisp. Forms are read from a script, from the command line,
or interactively, evaluated, and their results printed:

    user> (def! a 10)
    10
    user> (let* (x 2 y (+ x 1)) (+ x y a))
    15
    user> (do (prn "one") (prn "two") 3)
    "one"
    "two"
    3

Mal is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
	"github.com/michaelmacinnis/mal/internal/engine"
	"github.com/michaelmacinnis/mal/internal/reader"
	"github.com/michaelmacinnis/mal/internal/system/options"
	"github.com/michaelmacinnis/mal/internal/ui"
)

func main() {
	options.Parse()

	e, err := engine.New(os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case options.Expression() != "":
		err = evaluate(e, "eval", options.Expression(), os.Stdout)
	case options.Script() != "":
		err = script(e, options.Script())
	case options.Interactive():
		err = ui.Run(e, options.Current())
	default:
		err = ui.Batch(e, os.Stdin, os.Stdout)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// evaluate evaluates every form in text, printing each result to out.
// It stops at the first error.
func evaluate(e *engine.T, label, text string, out io.Writer) error {
	r := reader.New(label)
	r.Scan(text)

	var err error

	show := ui.Printer(out)

	e.Each(r, func(c cell.I, problem error) bool {
		if problem != nil {
			err = problem

			return false
		}

		return show(c, nil)
	})

	return err
}

// script evaluates every form in the file at path. Results are not printed.
func script(e *engine.T, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return evaluate(e, path, string(b), io.Discard)
}
