/*
Package mapfile stores ordered maps in files.

Files hold a map in the persisted form written by omap.Map.WriteTo. Saving
is atomic: a map is first written to a temporary file in the target
directory, which is then renamed to the target name. Readers never see a
partially written file.

A Store binds a file path to a key order and broadcasts an Event to all
subscribers whenever the map has been saved to or loaded from its file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package mapfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'omap.mapfile'
func tracer() tracing.Trace {
	return tracing.Select("omap.mapfile")
}
