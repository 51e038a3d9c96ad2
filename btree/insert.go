package btree

// Put inserts an entry for key.
//
// Put does not replace existing entries: inserting a key twice leaves two
// entries in the tree, the newer one placed after the older one. Every
// successful Put grows the tree by exactly one entry.
func (t *Tree[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		return ErrNilKey
	}
	leafID, err := t.locateLeaf(key)
	if err != nil {
		return err
	}
	leaf := t.arena.at(leafID)
	i, err := t.insertIndex(leaf, key)
	if err != nil {
		return err
	}
	leaf.entries = insertAt(leaf.entries, i, Entry[K, V]{Key: key, Value: value})
	if t.overflows(leaf) {
		parent := t.splitLeaf(leafID)
		for t.overflows(t.arena.at(parent)) {
			parent = t.splitInner(parent)
		}
	}
	t.size++
	t.version++
	return nil
}

// splitLeaf moves the upper half of an overflowing leaf into a new right
// sibling and inserts a copy of the sibling's lowest key into the parent.
// It returns the parent, which may overflow in turn.
func (t *Tree[K, V]) splitLeaf(id nodeID) nodeID {
	rightID := t.makeLeaf()
	leaf, right := t.arena.at(id), t.arena.at(rightID)
	mid := t.cfg.MaxChildren / 2
	right.entries = append(right.entries, leaf.entries[mid:]...)
	leaf.entries = removeRange(leaf.entries, mid, len(leaf.entries))
	t.link(id, rightID)
	t.stats.Splits++
	tracer().Debugf("btree: split leaf %d -> %d|%d entries", id, len(leaf.entries), len(right.entries))
	return t.promote(id, rightID, Entry[K, V]{Key: right.entries[0].Key})
}

// splitInner splits an overflowing inner node around its center entry.
// Entries and children right of the center move to a new sibling, the center
// entry itself moves up into the parent. It returns the parent.
func (t *Tree[K, V]) splitInner(id nodeID) nodeID {
	rightID := t.makeInner()
	inner, right := t.arena.at(id), t.arena.at(rightID)
	center := t.cfg.MaxChildren / 2
	up := inner.entries[center]
	right.entries = append(right.entries, inner.entries[center+1:]...)
	for _, child := range inner.children[center+1:] {
		t.adopt(rightID, child)
	}
	inner.entries = removeRange(inner.entries, center, len(inner.entries))
	inner.children = removeRange(inner.children, center+1, len(inner.children))
	t.link(id, rightID)
	t.stats.Splits++
	tracer().Debugf("btree: split inner %d -> %d|%d entries", id, len(inner.entries), len(right.entries))
	return t.promote(id, rightID, up)
}

// promote inserts separator up between the split halves left and right into
// their parent. A split root gets a new inner root on top.
func (t *Tree[K, V]) promote(left, right nodeID, up Entry[K, V]) nodeID {
	parentID := t.arena.at(left).parent
	if parentID == noNode {
		parentID = t.makeInner()
		p := t.arena.at(parentID)
		p.entries = append(p.entries, up)
		t.adopt(parentID, left)
		t.adopt(parentID, right)
		t.root = parentID
		tracer().Debugf("btree: new root %d, height now %d", parentID, t.Height())
		return parentID
	}
	slot := t.childSlot(parentID, left)
	p := t.arena.at(parentID)
	p.entries = insertAt(p.entries, slot, up)
	p.children = insertAt(p.children, slot+1, right)
	t.arena.at(right).parent = parentID
	return parentID
}
