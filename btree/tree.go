package btree

import (
	"fmt"
	"strings"
)

// Tree is an in-memory B+ tree mapping keys of type K to values of type V.
//
// The zero value is not usable, trees are created with New.
type Tree[K, V any] struct {
	cfg      Config[K]
	cmp      keyOrder[K]
	arena    arena[K, V]
	root     nodeID
	leftmost nodeID // first leaf, start of ordered traversal
	size     int
	version  uint64 // bumped once per structural change
	stats    Stats
}

// Stats counts rebalancing operations performed over the lifetime of a tree.
type Stats struct {
	Splits    int // leaf and inner node splits
	Borrows   int // entries moved from a rich sibling
	Merges    int // sibling nodes folded into one
	Collapses int // inner roots replaced by their single child
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{
		cfg:   cfg,
		cmp:   orderFor(cfg),
		arena: newArena[K, V](),
	}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// MaxChildren returns the branching factor of the tree.
func (t *Tree[K, V]) MaxChildren() int {
	return t.cfg.MaxChildren
}

// MinEntries returns the lower occupancy bound for non-root nodes.
func (t *Tree[K, V]) MinEntries() int {
	return t.cfg.MinEntries
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.size == 0
}

// Height returns the number of levels, where 0 means empty and 1 means a
// leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil || t.root == noNode {
		return 0
	}
	h := 1
	for n := t.arena.at(t.root); !n.isLeaf(); n = t.arena.at(n.children[0]) {
		h++
	}
	return h
}

// Stats returns the rebalancing counters of the tree.
func (t *Tree[K, V]) Stats() Stats {
	return t.stats
}

// Clone returns a structurally independent copy of t.
//
// The clone is built by inserting every entry of t, in order, into an empty
// tree of identical configuration. Keys and values are copied shallowly.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	clone := &Tree[K, V]{
		cfg:   t.cfg,
		cmp:   t.cmp,
		arena: newArena[K, V](),
	}
	for leaf := t.leftmost; leaf != noNode; leaf = t.arena.at(leaf).next {
		for _, e := range t.arena.at(leaf).entries {
			err := clone.Put(e.Key, e.Value)
			assert(err == nil, "Clone: re-inserting an ordered key failed")
		}
	}
	return clone
}

// reset returns the tree to its initial empty state.
func (t *Tree[K, V]) reset() {
	tracer().Debugf("btree: last entry removed, resetting to empty tree")
	t.arena = newArena[K, V]()
	t.root, t.leftmost = noNode, noNode
}

// String returns the keys of the tree level by level, e.g.
//
//	{0=[(3 5)],1=[(1 2),(3 4),(5 6 7)]}
func (t *Tree[K, V]) String() string {
	if t == nil || t.root == noNode {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	level := 0
	for first := t.root; first != noNode; level++ {
		if level > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d=[", level)
		for id := first; id != noNode; id = t.arena.at(id).next {
			if id != first {
				sb.WriteByte(',')
			}
			sb.WriteByte('(')
			for i, e := range t.arena.at(id).entries {
				if i > 0 {
					sb.WriteByte(' ')
				}
				fmt.Fprint(&sb, e.Key)
			}
			sb.WriteByte(')')
		}
		sb.WriteByte(']')
		if n := t.arena.at(first); n.isLeaf() {
			first = noNode
		} else {
			first = n.children[0]
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
