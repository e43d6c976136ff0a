// Released under an MIT license. See LICENSE.

// Package commands provides mal's primitive functions.
package commands

import (
	"io"

	"github.com/michaelmacinnis/mal/internal/common/interface/cell"
)

// Functions returns a mapping of names to primitives. Printing
// primitives write to out.
func Functions(out io.Writer) map[string]func([]cell.I) (cell.I, error) {
	return map[string]func([]cell.I) (cell.I, error){
		"*":        arithmetic("*", mul),
		"+":        arithmetic("+", add),
		"-":        arithmetic("-", sub),
		"/":        arithmetic("/", div),
		"<":        relational("<", lt),
		"<=":       relational("<=", le),
		"=":        eq,
		">":        relational(">", gt),
		">=":       relational(">=", ge),
		"count":    count,
		"empty?":   isEmpty,
		"fn?":      isFunction,
		"keyword":  makeKeyword,
		"keyword?": isKeyword,
		"list":     makeList,
		"list?":    isList,
		"nil?":     isNil,
		"number?":  isNumber,
		"pr-str":   prStr,
		"println":  printer("println", out, false),
		"prn":      printer("prn", out, true),
		"str":      makeString,
		"string?":  isString,
		"symbol":   makeSymbol,
		"symbol?":  isSymbol,
		"vector":   makeVector,
		"vector?":  isVector,
	}
}
