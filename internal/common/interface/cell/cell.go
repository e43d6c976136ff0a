// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all mal values.
package cell

// I (cell) is the basic unit of storage in mal. Code and data are both cells.
type I interface {
	Equal(c I) bool
	Name() string
}
