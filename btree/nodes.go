package btree

// nodeID is a handle for a node in a tree's arena. noNode marks an absent
// link.
type nodeID int32

const noNode nodeID = 0

// Entry is a key/value pair held by a tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// node is either a leaf or an inner node, depending on the presence of a
// child list.
//
// For inner nodes len(children) == len(entries)+1, and subtree children[i]
// holds keys k with entries[i-1].Key <= k < entries[i].Key. Entries of inner
// nodes carry routing keys only, their values are zero.
type node[K, V any] struct {
	entries  []Entry[K, V]
	children []nodeID // nil for leaves
	parent   nodeID   // noNode for the root
	// prev and next link nodes of equal depth, regardless of their parents.
	// On the leaf level this is the chain used for ordered traversal.
	prev, next nodeID
}

func (n *node[K, V]) isLeaf() bool { return n.children == nil }
