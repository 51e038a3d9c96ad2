/*
Package omap offers an ordered map for arbitrary key types.

Maps

A Map holds key/value pairs in ascending key order. Besides lookup, insertion
and removal by key, it supports walking its entries in order and removing
entries while walking, which Go's built-in maps cannot provide.

Keys are ordered either by a comparison function given in the configuration,
or naturally: numbers, strings, and types with a method

	Compare(other K) int

(like time.Time) need no configuration.

	m, _ := omap.New[string, int](btree.Config[string]{})
	m.Put("b", 2)
	m.Put("a", 1)
	for k, v := range m.All() {
	    fmt.Println(k, v) // a 1, then b 2
	}

Internally a map is backed by an in-memory B+ tree (package btree). Lookup,
insertion and removal run in O(log n); iteration walks the leaf level of the
tree without re-descending.

	Operation     |   Map           |  Go map
	--------------+-----------------+--------
	Get/Put       |   O(log n)      |   O(1)
	Delete        |   O(log n)      |   O(1)
	Iterate       |   O(n), ordered |   O(n), random order

Maps are not safe for concurrent use. Iterators fail with btree.ErrStaleIterator
as soon as the map has been modified by anything but the iterator itself.

Maps may be persisted with WriteTo and restored with ReadFrom; package mapfile
builds on this to store maps in files.

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
package omap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'omap'
func tracer() tracing.Trace {
	return tracing.Select("omap")
}

// MapError is an error type for the omap module
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrMapCompleted signals that a map builder has already completed a map and
// it's illegal to further add entries.
const ErrMapCompleted = MapError("forbidden to add entries; map has been completed")

// ErrUnordered is flagged whenever entries are handed to a builder out of
// ascending key order.
const ErrUnordered = MapError("entries not in ascending key order")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
