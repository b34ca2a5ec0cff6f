/*
Package ordered offers sorted container types: Set, Map and Multiset.

All three are thin adapters over the height-balanced search tree of package
avl, which keeps entries ordered by a strict weak ordering supplied at
construction time. Insertion, lookup and removal run in logarithmic time;
iteration visits entries in ascending (or, with Backward, descending) order.

Set

A Set stores keys only. Inserting a key which is already present leaves the
set unchanged.

Map

A Map stores a payload per key. Ordering considers the key only. Ref mirrors
the familiar "m[k]" access of Go maps: a missing key is inserted with the zero
payload. At never inserts and reports ErrKeyNotFound for missing keys.

Multiset

A Multiset stores every value together with a count of its occurrences.
Iteration expands each value into as many logical elements as it has
occurrences.

None of the types is safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/ordered/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the ordered module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrKeyNotFound is flagged for lookups of missing keys which must not
// insert, e.g. Map.At. It is the same error the avl package uses for
// dereferencing End.
var ErrKeyNotFound = avl.ErrKeyNotFound
