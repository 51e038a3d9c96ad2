package btree

// arena owns the nodes of a tree. Handles index into nodes; slot 0 is never
// used so that the zero handle can mark absent links. Released slots are
// kept on a free list and recycled by later allocations.
type arena[K, V any] struct {
	nodes    []*node[K, V]
	freelist []nodeID
}

func newArena[K, V any]() arena[K, V] {
	return arena[K, V]{nodes: make([]*node[K, V], 1, 16)}
}

// at resolves a handle. Resolving an absent or released handle is a bug.
func (a *arena[K, V]) at(id nodeID) *node[K, V] {
	assert(id > noNode && int(id) < len(a.nodes), "arena: node handle out of range")
	n := a.nodes[id]
	assert(n != nil, "arena: node handle refers to a released node")
	return n
}

func (a *arena[K, V]) alloc(n *node[K, V]) nodeID {
	if last := len(a.freelist) - 1; last >= 0 {
		id := a.freelist[last]
		a.freelist = a.freelist[:last]
		a.nodes[id] = n
		return id
	}
	a.nodes = append(a.nodes, n)
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[K, V]) release(id nodeID) {
	assert(a.nodes[id] != nil, "arena: double release of node")
	a.nodes[id] = nil
	a.freelist = append(a.freelist, id)
}

// live returns the number of allocated nodes.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - 1 - len(a.freelist)
}

// makeLeaf allocates an empty leaf. Capacity leaves room for the transient
// overflow entry before a split.
func (t *Tree[K, V]) makeLeaf() nodeID {
	return t.arena.alloc(&node[K, V]{
		entries: make([]Entry[K, V], 0, t.cfg.MaxChildren),
	})
}

// makeInner allocates an inner node without children.
func (t *Tree[K, V]) makeInner() nodeID {
	return t.arena.alloc(&node[K, V]{
		entries:  make([]Entry[K, V], 0, t.cfg.MaxChildren),
		children: make([]nodeID, 0, t.cfg.MaxChildren+1),
	})
}

// adopt appends child to the children of parent.
func (t *Tree[K, V]) adopt(parent, child nodeID) {
	p := t.arena.at(parent)
	p.children = append(p.children, child)
	t.arena.at(child).parent = parent
}

// childSlot returns the position of child within the child list of parent.
func (t *Tree[K, V]) childSlot(parent, child nodeID) int {
	for i, c := range t.arena.at(parent).children {
		if c == child {
			return i
		}
	}
	assert(false, "childSlot: node is not a child of its parent")
	return -1
}

// link splices right into the level chain directly after left.
func (t *Tree[K, V]) link(left, right nodeID) {
	l, r := t.arena.at(left), t.arena.at(right)
	r.next = l.next
	r.prev = left
	l.next = right
	if r.next != noNode {
		t.arena.at(r.next).prev = right
	}
}

// unlinkNext removes the successor of left from the level chain.
func (t *Tree[K, V]) unlinkNext(left nodeID) {
	l := t.arena.at(left)
	assert(l.next != noNode, "unlinkNext: node has no successor")
	l.next = t.arena.at(l.next).next
	if l.next != noNode {
		t.arena.at(l.next).prev = left
	}
}

// siblingPrev returns the predecessor of id if it has the same parent.
func (t *Tree[K, V]) siblingPrev(id nodeID) nodeID {
	n := t.arena.at(id)
	if n.prev != noNode && t.arena.at(n.prev).parent == n.parent {
		return n.prev
	}
	return noNode
}

// siblingNext returns the successor of id if it has the same parent.
func (t *Tree[K, V]) siblingNext(id nodeID) nodeID {
	n := t.arena.at(id)
	if n.next != noNode && t.arena.at(n.next).parent == n.parent {
		return n.next
	}
	return noNode
}
