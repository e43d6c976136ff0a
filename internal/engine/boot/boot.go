// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping mal.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.mal
var script string //nolint:gochecknoglobals

// Script returns the boot script for mal. It is evaluated in the root
// scope after the primitives are defined.
func Script() string {
	return script
}
