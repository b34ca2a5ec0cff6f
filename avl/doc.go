/*
Package avl provides a height-balanced binary search tree, used as the ordered
index beneath the set, map and multiset types of package ordered.

Nodes are linked by owning child pointers and a non-owning parent pointer.
The parent pointer is used for successor/predecessor stepping and for walking
the rebalancing path upwards; it never implies ownership.

Every tree is configured with a single strict weak ordering (Config.Less),
fixed for the lifetime of the tree. Two keys a and b are considered equal iff
neither Less(a, b) nor Less(b, a) holds. The tree never stores two equal keys.

Handles

Clients refer to tree entries through Handles. A Handle is a small comparable
value; the End handle denotes the position one past the maximum. Handles to
live entries survive insertions and the removal of other entries. A handle to
an erased entry is stale: dereferencing it is a precondition violation, which
this package reports by panicking with an error wrapping ErrStaleHandle.
Dereferencing End panics with an error wrapping ErrKeyNotFound.

Trees are not safe for concurrent use. Callers which share a tree between
goroutines have to serialize all access themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordered'
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// violation panics with an error wrapping err. It is used for caller
// precondition violations, which must not be tolerated silently.
func violation(err error, format string, args ...interface{}) {
	e := fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	tracer().Errorf("%s", e)
	panic(e)
}
