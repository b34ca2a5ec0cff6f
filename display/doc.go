/*
Package display renders the structure of avl trees for debugging: sideways
drawings for fixed-width consoles, and nested HTML lists.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
