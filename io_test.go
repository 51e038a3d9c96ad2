package omap

import (
	"bytes"
	"io"
	"slices"
	"testing"

	"github.com/npillmayer/omap/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestWriteToReadFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "omap")
	defer teardown()
	//
	m, err := New[string, []int](btree.Config[string]{MaxChildren: 7})
	require.NoError(t, err)
	for _, k := range []string{"x", "a", "m", "q", "c", "z", "b", "k"} {
		_, _, err := m.Put(k, []int{len(k), int(k[0])})
		require.NoError(t, err)
	}
	var buf bytes.Buffer
	written, err := m.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), written)

	restored := NewOrdered[string, []int]()
	read, err := restored.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, written, read)
	require.Equal(t, 7, restored.Tree().MaxChildren())
	require.Equal(t, slices.Collect(m.Keys()), slices.Collect(restored.Keys()))
	v, found, err := restored.Get("q")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 'q'}, v)
}

// plainReader hides any io.ByteScanner of the wrapped reader.
type plainReader struct {
	r io.Reader
}

func (pr plainReader) Read(p []byte) (int, error) {
	return pr.r.Read(p)
}

func TestReadFromStopsAtEndOfMap(t *testing.T) {
	first, second := NewOrdered[int, string](), NewOrdered[int, string]()
	for k := 0; k < 40; k++ {
		first.Put(k, "first")
		second.Put(k*10, "second")
	}
	var stream bytes.Buffer
	n1, err := first.WriteTo(&stream)
	require.NoError(t, err)
	n2, err := second.WriteTo(&stream)
	require.NoError(t, err)
	stream.WriteString("trailer")
	data := stream.Bytes()

	for name, r := range map[string]io.Reader{
		"byte scanner": bytes.NewReader(data),
		"plain reader": plainReader{r: bytes.NewReader(data)},
	} {
		m1, m2 := NewOrdered[int, string](), NewOrdered[int, string]()
		read, err := m1.ReadFrom(r)
		require.NoError(t, err, name)
		require.Equal(t, n1, read, name)
		read, err = m2.ReadFrom(r)
		require.NoError(t, err, name)
		require.Equal(t, n2, read, name)
		require.Equal(t, slices.Collect(first.Keys()), slices.Collect(m1.Keys()), name)
		require.Equal(t, slices.Collect(second.Keys()), slices.Collect(m2.Keys()), name)
		rest, err := io.ReadAll(r)
		require.NoError(t, err, name)
		require.Equal(t, "trailer", string(rest), name)
	}
}

func TestReadFromKeepsMapOnError(t *testing.T) {
	m := NewOrdered[int, int]()
	m.Put(1, 1)
	_, err := m.ReadFrom(bytes.NewReader([]byte{0xc1}))
	require.ErrorIs(t, err, btree.ErrPersistedForm)
	require.Equal(t, 1, m.Len())
}
