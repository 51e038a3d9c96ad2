package btree

// Iterator walks the entries of a tree in ascending key order.
//
// An iterator is bound to the state of the tree at the time of its creation.
// Any change to the tree not performed through the iterator itself makes it
// stale: Next returns false and Err reports ErrStaleIterator from then on.
//
//	it := tree.Iterator()
//	for it.Next() {
//	    if it.Value() == obsolete {
//	        if err := it.Remove(); err != nil { … }
//	    }
//	}
//	if err := it.Err(); err != nil { … }
type Iterator[K, V any] struct {
	tree    *Tree[K, V]
	leaf    nodeID // position of the upcoming entry
	index   int
	version uint64
	current Entry[K, V]
	curLeaf nodeID // position of the entry last returned by Next
	curIdx  int
	hasCur  bool
	err     error
}

// Iterator returns an iterator positioned before the first entry of t.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		tree:    t,
		leaf:    t.leftmost,
		version: t.version,
	}
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator[K, V]) Next() bool {
	if !it.valid() {
		return false
	}
	it.skipExhausted()
	if it.leaf == noNode {
		it.hasCur = false
		return false
	}
	it.current = it.tree.arena.at(it.leaf).entries[it.index]
	it.curLeaf, it.curIdx, it.hasCur = it.leaf, it.index, true
	it.index++
	return true
}

// HasNext reports whether a call to Next would succeed.
func (it *Iterator[K, V]) HasNext() bool {
	if !it.valid() {
		return false
	}
	it.skipExhausted()
	return it.leaf != noNode
}

// Entry returns the entry last returned by Next.
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	return it.current
}

// Key returns the key of the entry last returned by Next.
func (it *Iterator[K, V]) Key() K {
	return it.current.Key
}

// Value returns the value of the entry last returned by Next.
func (it *Iterator[K, V]) Value() V {
	return it.current.Value
}

// Err returns the error which stopped the iteration, if any.
func (it *Iterator[K, V]) Err() error {
	return it.err
}

// Remove deletes the entry last returned by Next from the tree. The iterator
// stays valid and continues with the entry following the removed one.
// Calling Remove twice without an intermediate call to Next returns
// ErrNoCurrentEntry.
func (it *Iterator[K, V]) Remove() error {
	if !it.valid() {
		return it.err
	}
	if !it.hasCur {
		return ErrNoCurrentEntry
	}
	_, it.leaf, it.index = it.tree.deleteAt(it.curLeaf, it.curIdx)
	it.version = it.tree.version
	it.hasCur = false
	return nil
}

// valid checks the version snapshot. A stale iterator stays stale.
func (it *Iterator[K, V]) valid() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.tree.version {
		tracer().Debugf("btree: iterator is stale (version %d, tree at %d)", it.version, it.tree.version)
		it.err = ErrStaleIterator
		it.hasCur = false
		return false
	}
	return true
}

// skipExhausted moves the position past the end of a leaf to the start of
// the following leaf.
func (it *Iterator[K, V]) skipExhausted() {
	for it.leaf != noNode {
		n := it.tree.arena.at(it.leaf)
		if it.index < len(n.entries) {
			return
		}
		it.leaf, it.index = n.next, 0
	}
}
