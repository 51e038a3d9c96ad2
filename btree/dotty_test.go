package btree

import (
	"slices"
	"strings"
	"testing"
)

func TestSnapshot(t *testing.T) {
	tree := makeIntTree(t, 5)
	if tree.Snapshot() != nil {
		t.Fatalf("expected nil snapshot for empty tree")
	}
	putAll(t, tree, keyRange(1, 7)...)
	snap := tree.Snapshot()
	if snap.Leaf || !slices.Equal(snap.Keys, []int{3, 5}) || len(snap.Children) != 3 {
		t.Fatalf("unexpected root snapshot: %+v", snap)
	}
	last := snap.Children[2]
	if !last.Leaf || last.Depth != 1 || !slices.Equal(last.Keys, []int{5, 6, 7}) {
		t.Fatalf("unexpected leaf snapshot: %+v", last)
	}
	putAll(t, tree, 8, 9)
	if !slices.Equal(last.Keys, []int{5, 6, 7}) {
		t.Fatalf("snapshot changed with the tree")
	}
}

func TestToDot(t *testing.T) {
	tree := makeIntTree(t, 5)
	putAll(t, tree, keyRange(1, 7)...)
	var sb strings.Builder
	if err := tree.ToDot(&sb); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	dot := sb.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT digraph: %q", dot)
	}
	for _, want := range []string{`label="3 | 5"`, `label="5 | 6 | 7"`, "style=dashed"} {
		if !strings.Contains(dot, want) {
			t.Errorf("expected DOT output to contain %q", want)
		}
	}
	if n := strings.Count(dot, "style=dashed"); n != 2 {
		t.Errorf("expected 2 leaf chain edges, found %d", n)
	}
	if n := strings.Count(dot, "->"); n != 5 {
		t.Errorf("expected 3 child edges and 2 chain edges, found %d edges", n)
	}
}
