package btree

// Get returns the value stored for key. If the tree holds more than one
// entry for key, one of them is returned.
func (t *Tree[K, V]) Get(key K) (value V, found bool, err error) {
	leaf, i, err := t.find(key)
	if err != nil || i < 0 {
		return value, false, err
	}
	return t.arena.at(leaf).entries[i].Value, true, nil
}

// Has reports whether the tree holds an entry for key.
func (t *Tree[K, V]) Has(key K) (bool, error) {
	_, i, err := t.find(key)
	return i >= 0, err
}

// Replace sets the value of an entry for key and returns the value it
// replaces. If no entry for key exists, the tree is left untouched and found
// is false. Replacing a value is not a structural change: iterators stay
// valid.
func (t *Tree[K, V]) Replace(key K, value V) (old V, found bool, err error) {
	leaf, i, err := t.find(key)
	if err != nil || i < 0 {
		return old, false, err
	}
	e := &t.arena.at(leaf).entries[i]
	old, e.Value = e.Value, value
	return old, true, nil
}

// find locates the leaf and in-leaf position of key. A negative index
// signals absence. find does not allocate on an empty tree.
func (t *Tree[K, V]) find(key K) (nodeID, int, error) {
	if isNilKey(key) {
		return noNode, -1, ErrNilKey
	}
	if t.root == noNode {
		return noNode, -1, nil
	}
	leaf, err := t.descend(key)
	if err != nil {
		return noNode, -1, err
	}
	n := t.arena.at(leaf)
	i, err := t.exactIndex(n, key)
	if err != nil || i >= 0 || n.prev == noNode {
		return leaf, i, err
	}
	// Equal keys route right. With duplicate entries, a run of equal keys
	// may end in the predecessor leaf.
	p := t.arena.at(n.prev)
	last := len(p.entries) - 1
	if c, err := t.cmp(p.entries[last].Key, key); err != nil || c != 0 {
		return leaf, -1, err
	}
	return n.prev, last, nil
}

// locateLeaf returns the leaf where key resides or would be inserted.
// On an empty tree the initial leaf is allocated first.
func (t *Tree[K, V]) locateLeaf(key K) (nodeID, error) {
	if t.root == noNode {
		t.root = t.makeLeaf()
		t.leftmost = t.root
		return t.root, nil
	}
	return t.descend(key)
}

// descend walks from the root to a leaf, following the child at the insert
// index of key in every inner node.
func (t *Tree[K, V]) descend(key K) (nodeID, error) {
	id := t.root
	for n := t.arena.at(id); !n.isLeaf(); n = t.arena.at(id) {
		i, err := t.insertIndex(n, key)
		if err != nil {
			return noNode, err
		}
		id = n.children[i]
	}
	return id, nil
}

// insertIndex counts the entries of n with a key <= key. This is the child
// to descend into as well as the position for a sorted insert (after any
// equal keys).
func (t *Tree[K, V]) insertIndex(n *node[K, V], key K) (int, error) {
	i := 0
	for ; i < len(n.entries); i++ {
		c, err := t.cmp(n.entries[i].Key, key)
		if err != nil {
			return 0, err
		}
		if c > 0 {
			break
		}
	}
	return i, nil
}

// exactIndex returns the position of the first entry of n equal to key,
// or -1. The scan stops at the first greater key.
func (t *Tree[K, V]) exactIndex(n *node[K, V], key K) (int, error) {
	for i := range n.entries {
		c, err := t.cmp(n.entries[i].Key, key)
		if err != nil {
			return -1, err
		}
		if c == 0 {
			return i, nil
		}
		if c > 0 {
			break
		}
	}
	return -1, nil
}

// Compare orders two keys the way the tree does.
func (t *Tree[K, V]) Compare(a, b K) (int, error) {
	if isNilKey(a) || isNilKey(b) {
		return 0, ErrNilKey
	}
	return t.cmp(a, b)
}
