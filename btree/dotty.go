package btree

import (
	"fmt"
	"io"
	"strings"
)

// NodeInfo is a read-only view of a tree node, as returned by Snapshot.
type NodeInfo[K any] struct {
	Depth    int            // distance from the root
	Leaf     bool           // leaf nodes carry entries, inner nodes routing keys
	Keys     []K            // keys of the node, in order
	Children []*NodeInfo[K] // empty for leaves
}

// Snapshot returns a copy of the node structure of t, or nil for an empty
// tree. The snapshot does not change with later modifications of t.
func (t *Tree[K, V]) Snapshot() *NodeInfo[K] {
	if t == nil || t.root == noNode {
		return nil
	}
	return t.snapshot(t.root, 0)
}

func (t *Tree[K, V]) snapshot(id nodeID, depth int) *NodeInfo[K] {
	n := t.arena.at(id)
	info := &NodeInfo[K]{
		Depth: depth,
		Leaf:  n.isLeaf(),
		Keys:  make([]K, len(n.entries)),
	}
	for i, e := range n.entries {
		info.Keys[i] = e.Key
	}
	for _, child := range n.children {
		info.Children = append(info.Children, t.snapshot(child, depth+1))
	}
	return info
}

// each calls fn for every node of t in depth-first pre-order.
func (t *Tree[K, V]) each(fn func(id nodeID, n *node[K, V], depth int) error) error {
	if t.root == noNode {
		return nil
	}
	var walk func(id nodeID, depth int) error
	walk = func(id nodeID, depth int) error {
		n := t.arena.at(id)
		if err := fn(id, n, depth); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := walk(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.root, 0)
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Parent-child edges are solid, the leaf chain is
// drawn with dashed edges.
func (t *Tree[K, V]) ToDot(w io.Writer) error {
	var nodelist, edgelist, chainlist strings.Builder
	err := t.each(func(id nodeID, n *node[K, V], depth int) error {
		keys := make([]string, len(n.entries))
		for i, e := range n.entries {
			keys[i] = fmt.Sprint(e.Key)
		}
		label := strings.Join(keys, " | ")
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, escapeDot(label), nodeDotStyles(n.isLeaf(), depth))
		for _, child := range n.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, child)
		}
		if n.isLeaf() && n.next != noNode {
			fmt.Fprintf(&chainlist, "\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", id, n.next)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("btree DOT: %s", err.Error())
		return err
	}
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		chainlist.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func escapeDot(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=white"
	} else {
		s += fmt.Sprintf(",shape=record,color=black,fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	}
	return s
}

var hexcolors = [...]string{"#a3d7e4", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
