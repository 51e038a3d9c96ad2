/*
Package btree provides an in-memory B+ tree, the ordered container behind
package omap.

Entries are held in leaves; inner nodes carry routing keys only. Leaves (and
generally all nodes of the same depth) are chained into a doubly-linked list,
which makes in-order traversal a walk along the leaf level without
re-descending the tree.

Structure:
  - nodes live in a per-tree arena and reference each other by handle
    (`nodeID`); parent and sibling links are plain handles, ownership runs
    from parent to child only,
  - inserts split overflowing nodes and promote a routing key upward,
  - deletes rebalance underflowing nodes by borrowing from a rich sibling
    of the same parent, or by merging with a sibling and pulling down the
    parent's separator,
  - an inner root left with a single child is replaced by that child; this is
    the only way the tree shrinks in height,
  - every structural change bumps a version counter. Iterators snapshot it
    and fail with ErrStaleIterator once the tree changed under them.

The tree does not deduplicate keys: every Put adds an entry. Map semantics
(overwrite on equal key) are layered on top by package omap.

A Tree is not safe for concurrent use. Callers have to serialize access.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'omap.btree'.
func tracer() tracing.Trace {
	return tracing.Select("omap.btree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
