package formatter

import (
	"strings"
	"testing"

	"github.com/npillmayer/omap/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, m int, keys ...int) *btree.NodeInfo[int] {
	t.Helper()
	tree, err := btree.New[int, struct{}](btree.Config[int]{MaxChildren: m})
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, tree.Put(k, struct{}{}))
	}
	return tree.Snapshot()
}

func TestWriteTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "omap.formatter")
	defer teardown()
	//
	var sb strings.Builder
	require.NoError(t, Write(&sb, snapshot(t, 5, 1, 2, 3, 4, 5, 6, 7), nil))
	out := sb.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "(3 5)", lines[0])
	assert.Contains(t, lines[1], "[1 2]")
	assert.Contains(t, lines[2], "[3 4]")
	assert.Contains(t, lines[3], "[5 6 7]")
}

func TestWriteNestedTree(t *testing.T) {
	var sb strings.Builder
	keys := make([]int, 13)
	for i := range keys {
		keys[i] = i + 1
	}
	root := snapshot(t, 3, keys...)
	require.NoError(t, Write(&sb, root, &Config{}))
	out := sb.String()
	t.Logf("\n%s", out)
	var nodes, leaves int
	var count func(*btree.NodeInfo[int])
	count = func(n *btree.NodeInfo[int]) {
		nodes++
		if n.Leaf {
			leaves++
		}
		for _, c := range n.Children {
			count(c)
		}
	}
	count(root)
	assert.Equal(t, nodes, len(strings.Split(strings.TrimSpace(out), "\n")))
	assert.Equal(t, leaves, strings.Count(out, "["))
	assert.Contains(t, out, "[12 13]")
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write[int](&sb, nil, nil))
	assert.Equal(t, "<empty>\n", sb.String())
}

func TestLabelElision(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, snapshot(t, 5, 1, 2, 3, 4, 5, 6, 7), &Config{LineWidth: 6}))
	out := sb.String()
	assert.Contains(t, out, "(3 5)")
	assert.Contains(t, out, "[5 6 …]")
	assert.NotContains(t, out, "7")
}

func TestLabelWidthEastAsian(t *testing.T) {
	root := &btree.NodeInfo[string]{Leaf: true, Keys: []string{"日本", "中国"}}
	var sb strings.Builder
	config := &Config{LineWidth: 10, Context: uax11.LatinContext}
	require.NoError(t, Write(&sb, root, config))
	assert.Contains(t, sb.String(), "[日本 …]")
	sb.Reset()
	config.LineWidth = 11
	require.NoError(t, Write(&sb, root, config))
	assert.Contains(t, sb.String(), "[日本 中国]")
}

func TestColoredOutput(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write(&sb, snapshot(t, 5, 1, 2, 3, 4, 5, 6, 7), &Config{Colored: true}))
	out := sb.String()
	assert.Contains(t, out, "\x1b[34m(3 5)") // root level
	assert.Contains(t, out, "\x1b[32m[1 2]") // leaves
	assert.Contains(t, out, "\x1b[0m")
}

func TestConfigFromTerminal(t *testing.T) {
	config := ConfigFromTerminal()
	assert.GreaterOrEqual(t, config.LineWidth, 10)
}

func TestLabelWidthOfDigits(t *testing.T) {
	p := newPrinter[int](&Config{Context: uax11.LatinContext})
	assert.Equal(t, 1, p.width("3"))
	assert.Equal(t, 5, p.width("(3 5)"))
	assert.Equal(t, 9, p.width("日本 中国"))
	assert.Equal(t, 9, p.width("[12 日本]"))
}
