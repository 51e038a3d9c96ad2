package btree

import "fmt"

// Check validates structural tree invariants: occupancy bounds, parent
// links, key order and routing bounds, uniform leaf depth, the level chains,
// and the entry count.
//
// This checker is intentionally strict and meant to be used in tests.
// Errors wrap ErrCorrupted.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.root == noNode {
		if t.size != 0 || t.leftmost != noNode {
			return fmt.Errorf("%w: empty tree with size=%d", ErrCorrupted, t.size)
		}
		if live := t.arena.live(); live != 0 {
			return fmt.Errorf("%w: empty tree holds %d nodes", ErrCorrupted, live)
		}
		return nil
	}
	if p := t.arena.at(t.root).parent; p != noNode {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupted, t.root, p)
	}
	c := &checker[K, V]{tree: t, leafDepth: -1}
	count, err := c.node(t.root, noNode, nil, nil, 0)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree counts %d entries, size is %d", ErrCorrupted, count, t.size)
	}
	if c.visited != t.arena.live() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupted, c.visited, t.arena.live())
	}
	if leftmost := c.levels[len(c.levels)-1][0]; leftmost != t.leftmost {
		return fmt.Errorf("%w: leftmost leaf is %d, tree points to %d", ErrCorrupted, leftmost, t.leftmost)
	}
	return c.chains()
}

type checker[K, V any] struct {
	tree      *Tree[K, V]
	leafDepth int
	levels    [][]nodeID // nodes per depth, left to right
	visited   int
}

// node checks the subtree at id, whose keys have to be within [lo,hi].
// Nil bounds are open.
func (c *checker[K, V]) node(id, parent nodeID, lo, hi *K, depth int) (int, error) {
	t := c.tree
	n := t.arena.at(id)
	c.visited++
	if depth == len(c.levels) {
		c.levels = append(c.levels, nil)
	}
	c.levels[depth] = append(c.levels[depth], id)
	if n.parent != parent {
		return 0, fmt.Errorf("%w: node %d has parent %d, expected %d", ErrCorrupted, id, n.parent, parent)
	}
	if l := len(n.entries); l > t.cfg.MaxChildren-1 {
		return 0, fmt.Errorf("%w: node %d holds %d entries, maximum is %d",
			ErrCorrupted, id, l, t.cfg.MaxChildren-1)
	}
	if id == t.root {
		if len(n.entries) == 0 {
			return 0, fmt.Errorf("%w: root %d has no entries", ErrCorrupted, id)
		}
	} else if t.underflows(n) {
		return 0, fmt.Errorf("%w: node %d holds %d entries, minimum is %d",
			ErrCorrupted, id, len(n.entries), t.cfg.MinEntries)
	}
	prev := lo
	for i := range n.entries {
		k := &n.entries[i].Key
		if err := c.ordered(id, prev, k); err != nil {
			return 0, err
		}
		if err := c.ordered(id, k, hi); err != nil {
			return 0, err
		}
		prev = k
	}
	if n.isLeaf() {
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if depth != c.leafDepth {
			return 0, fmt.Errorf("%w: leaf %d at depth %d, other leaves at %d",
				ErrCorrupted, id, depth, c.leafDepth)
		}
		return len(n.entries), nil
	}
	if len(n.children) != len(n.entries)+1 {
		return 0, fmt.Errorf("%w: inner node %d has %d entries and %d children",
			ErrCorrupted, id, len(n.entries), len(n.children))
	}
	count := 0
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.entries[i-1].Key
		}
		if i < len(n.entries) {
			chi = &n.entries[i].Key
		}
		cnt, err := c.node(child, id, clo, chi, depth+1)
		if err != nil {
			return 0, err
		}
		count += cnt
	}
	return count, nil
}

// ordered checks a <= b, treating nil as an open bound.
func (c *checker[K, V]) ordered(id nodeID, a, b *K) error {
	if a == nil || b == nil {
		return nil
	}
	cmp, err := c.tree.cmp(*a, *b)
	if err != nil {
		return err
	}
	if cmp > 0 {
		return fmt.Errorf("%w: keys out of order in node %d: %v > %v", ErrCorrupted, id, *a, *b)
	}
	return nil
}

// chains checks that the prev/next links of every level connect exactly the
// nodes of that level, in left-to-right order.
func (c *checker[K, V]) chains() error {
	t := c.tree
	for depth, level := range c.levels {
		for i, id := range level {
			n := t.arena.at(id)
			want := noNode
			if i > 0 {
				want = level[i-1]
			}
			if n.prev != want {
				return fmt.Errorf("%w: node %d at depth %d has prev %d, expected %d",
					ErrCorrupted, id, depth, n.prev, want)
			}
			want = noNode
			if i < len(level)-1 {
				want = level[i+1]
			}
			if n.next != want {
				return fmt.Errorf("%w: node %d at depth %d has next %d, expected %d",
					ErrCorrupted, id, depth, n.next, want)
			}
		}
	}
	return nil
}
