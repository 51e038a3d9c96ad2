/*
Package formatter prints the structure of B+ trees on output devices with
fixed-width fonts, e.g. for debugging and in tests.

Trees are printed top-down from a btree.NodeInfo snapshot, one node per line:

	(3 5)
	├── [1 2]
	├── [3 4]
	└── [5 6 7]

Inner nodes show their separator keys in parentheses, leaves their keys in
brackets. On color terminals each tree level gets its own color. Node labels
longer than the configured line width are cut off between keys; display
widths follow UAX#11 (character width), so keys in East Asian scripts are
measured correctly.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'omap.formatter'
func tracer() tracing.Trace {
	return tracing.Select("omap.formatter")
}
