package btree

// Delete removes an entry for key and returns its value. If no entry for key
// exists, the tree is left untouched and found is false.
func (t *Tree[K, V]) Delete(key K) (value V, found bool, err error) {
	leaf, i, err := t.find(key)
	if err != nil || i < 0 {
		return value, false, err
	}
	value, _, _ = t.deleteAt(leaf, i)
	return value, true, nil
}

// deleteAt removes the entry at position index of a leaf and rebalances the
// tree.
//
// Besides the removed value it returns the position the entry following the
// removed one has moved to; the position may point one past the end of a
// leaf. Iterators use it to resume after removing through the cursor.
func (t *Tree[K, V]) deleteAt(leafID nodeID, index int) (V, nodeID, int) {
	leaf := t.arena.at(leafID)
	removed := leaf.entries[index]
	leaf.entries = removeRange(leaf.entries, index, index+1)
	t.size--
	t.version++
	switch {
	case leafID == t.root:
		if len(leaf.entries) == 0 {
			t.reset()
			return removed.Value, noNode, 0
		}
	case t.underflows(leaf):
		leafID, index = t.rebalanceLeaf(leafID, index)
	}
	return removed.Value, leafID, index
}

// rebalanceLeaf repairs an underflowing leaf, borrowing from a rich sibling
// or merging with a sibling. removed is the position the deleted entry had.
// It returns where the entry following the deleted one now resides.
func (t *Tree[K, V]) rebalanceLeaf(id nodeID, removed int) (nodeID, int) {
	leaf := t.arena.at(id)
	parentID := leaf.parent
	slot := t.childSlot(parentID, id)
	parent := t.arena.at(parentID)
	if rich := t.richSibling(id); rich != noNode {
		t.stats.Borrows++
		sibling := t.arena.at(rich)
		if rich == leaf.prev {
			last := len(sibling.entries) - 1
			borrowed := sibling.entries[last]
			sibling.entries = removeRange(sibling.entries, last, last+1)
			leaf.entries = insertAt(leaf.entries, 0, borrowed)
			parent.entries[slot-1] = Entry[K, V]{Key: borrowed.Key}
			tracer().Debugf("btree: leaf %d borrowed from predecessor %d", id, rich)
			return id, removed + 1
		}
		borrowed := sibling.entries[0]
		sibling.entries = removeRange(sibling.entries, 0, 1)
		leaf.entries = append(leaf.entries, borrowed)
		parent.entries[slot] = Entry[K, V]{Key: sibling.entries[0].Key}
		if removed == 0 && slot > 0 {
			// the leaf lost its minimum: the separator to its left has to
			// follow the new lowest key
			parent.entries[slot-1] = Entry[K, V]{Key: leaf.entries[0].Key}
		}
		tracer().Debugf("btree: leaf %d borrowed from successor %d", id, rich)
		return id, removed
	}
	var resume nodeID
	if prev := t.siblingPrev(id); prev != noNode {
		offset := len(t.arena.at(prev).entries)
		t.mergeLeaves(prev, id, slot-1)
		resume, removed = prev, offset+removed
	} else {
		t.mergeLeaves(id, t.siblingNext(id), slot)
		resume = id
	}
	t.rebalanceInner(parentID)
	return resume, removed
}

// mergeLeaves folds leaf right into its left neighbor and removes the
// separator at position sep, together with the handle of right, from the
// common parent.
func (t *Tree[K, V]) mergeLeaves(left, right nodeID, sep int) {
	assert(right != noNode, "mergeLeaves: no sibling to merge with")
	l, r := t.arena.at(left), t.arena.at(right)
	l.entries = append(l.entries, r.entries...)
	p := t.arena.at(l.parent)
	p.entries = removeRange(p.entries, sep, sep+1)
	p.children = removeRange(p.children, sep+1, sep+2)
	t.unlinkNext(left)
	t.arena.release(right)
	t.stats.Merges++
	tracer().Debugf("btree: merged leaf %d into %d", right, left)
}

// rebalanceInner repairs occupancy from inner node id upward.
func (t *Tree[K, V]) rebalanceInner(id nodeID) {
	for {
		n := t.arena.at(id)
		if id == t.root {
			if len(n.entries) == 0 {
				child := n.children[0]
				t.arena.at(child).parent = noNode
				t.root = child
				t.arena.release(id)
				t.stats.Collapses++
				tracer().Debugf("btree: root collapsed, height now %d", t.Height())
			}
			return
		}
		if !t.underflows(n) {
			return
		}
		parentID := n.parent
		slot := t.childSlot(parentID, id)
		if rich := t.richSibling(id); rich != noNode {
			if rich == n.prev {
				t.rotateRight(rich, id, slot-1)
			} else {
				t.rotateLeft(id, rich, slot)
			}
			t.stats.Borrows++
			return
		}
		if prev := t.siblingPrev(id); prev != noNode {
			t.mergeInner(prev, id, slot-1)
		} else {
			t.mergeInner(id, t.siblingNext(id), slot)
		}
		id = parentID
	}
}

// rotateRight moves the last child of inner node left over to its right
// neighbor. The parent separator at position sep moves down into right, the
// last entry of left replaces it.
func (t *Tree[K, V]) rotateRight(left, right nodeID, sep int) {
	l, r := t.arena.at(left), t.arena.at(right)
	p := t.arena.at(l.parent)
	last := len(l.entries) - 1
	up, child := l.entries[last], l.children[last+1]
	l.entries = removeRange(l.entries, last, last+1)
	l.children = removeRange(l.children, last+1, last+2)
	r.entries = insertAt(r.entries, 0, p.entries[sep])
	r.children = insertAt(r.children, 0, child)
	t.arena.at(child).parent = right
	p.entries[sep] = up
	tracer().Debugf("btree: inner %d borrowed from predecessor %d", right, left)
}

// rotateLeft moves the first child of inner node right over to its left
// neighbor, the mirror image of rotateRight.
func (t *Tree[K, V]) rotateLeft(left, right nodeID, sep int) {
	l, r := t.arena.at(left), t.arena.at(right)
	p := t.arena.at(l.parent)
	up, child := r.entries[0], r.children[0]
	r.entries = removeRange(r.entries, 0, 1)
	r.children = removeRange(r.children, 0, 1)
	l.entries = append(l.entries, p.entries[sep])
	t.adopt(left, child)
	p.entries[sep] = up
	tracer().Debugf("btree: inner %d borrowed from successor %d", left, right)
}

// mergeInner concatenates inner node right onto left around the parent
// separator at position sep, which moves down.
func (t *Tree[K, V]) mergeInner(left, right nodeID, sep int) {
	assert(right != noNode, "mergeInner: no sibling to merge with")
	l, r := t.arena.at(left), t.arena.at(right)
	p := t.arena.at(l.parent)
	l.entries = append(l.entries, p.entries[sep])
	l.entries = append(l.entries, r.entries...)
	for _, child := range r.children {
		t.adopt(left, child)
	}
	p.entries = removeRange(p.entries, sep, sep+1)
	p.children = removeRange(p.children, sep+1, sep+2)
	t.unlinkNext(left)
	t.arena.release(right)
	t.stats.Merges++
	tracer().Debugf("btree: merged inner %d into %d", right, left)
}
