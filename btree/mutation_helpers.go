package btree

import "slices"

// insertAt inserts values into a slice at idx, in place where capacity allows.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	return slices.Insert(src, idx, values...)
}

// removeRange removes the half-open interval [from,to) from a slice.
// Vacated slots are zeroed, so no stale keys or values stay reachable.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	return slices.Delete(src, from, to)
}

// overflows reports whether n has to be split.
func (t *Tree[K, V]) overflows(n *node[K, V]) bool {
	return len(n.entries) >= t.cfg.MaxChildren
}

// underflows reports whether a non-root node has to be rebalanced.
func (t *Tree[K, V]) underflows(n *node[K, V]) bool {
	return len(n.entries) < t.cfg.MinEntries
}

// rich reports whether n can lend an entry to a sibling.
func (t *Tree[K, V]) rich(n *node[K, V]) bool {
	return len(n.entries) > t.cfg.MinEntries
}

// richSibling returns a same-parent sibling of id able to lend an entry,
// checking the predecessor first.
func (t *Tree[K, V]) richSibling(id nodeID) nodeID {
	if prev := t.siblingPrev(id); prev != noNode && t.rich(t.arena.at(prev)) {
		return prev
	}
	if next := t.siblingNext(id); next != noNode && t.rich(t.arena.at(next)) {
		return next
	}
	return noNode
}
