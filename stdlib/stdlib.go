// Package stdlib bundles the standard-library source loaded by default
// at startup, embedded into the binary so the CLI needs no filesystem
// lookup to find it.
package stdlib

import _ "embed"

//go:embed std.lisp
var Source string
