package omap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/omap/btree"
	"golang.org/x/exp/constraints"
)

// Map is an ordered map from keys of type K to values of type V.
//
// Other than the underlying btree.Tree, a Map holds at most one entry per key:
// putting a key a second time replaces its value.
type Map[K, V any] struct {
	tree *btree.Tree[K, V]
}

// New creates an empty map. cfg configures the underlying B+ tree; the zero
// configuration selects default node sizes and the natural order of K.
func New[K, V any](cfg btree.Config[K]) (*Map[K, V], error) {
	tree, err := btree.New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty map with default node sizes for keys with a
// built-in order.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	m, err := New[K, V](btree.Config[K]{Compare: btree.Ordered[K]})
	assert(err == nil, "NewOrdered: default configuration rejected")
	return m
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (value V, found bool, err error) {
	return m.tree.Get(key)
}

// Has reports whether m holds an entry for key.
func (m *Map[K, V]) Has(key K) (bool, error) {
	return m.tree.Has(key)
}

// Put stores value for key. If m already holds an entry for key, its value is
// replaced and returned as old, with replaced set.
//
// Replacing a value does not invalidate iterators, adding an entry does.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool, err error) {
	old, replaced, err = m.tree.Replace(key, value)
	if err != nil || replaced {
		return old, replaced, err
	}
	return old, false, m.tree.Put(key, value)
}

// Delete removes the entry for key and returns its value.
func (m *Map[K, V]) Delete(key K) (value V, found bool, err error) {
	return m.tree.Delete(key)
}

// All returns an iterator over all entries of m in ascending key order.
// It panics if m is modified during the walk.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.tree.All()
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.tree.Keys()
}

// Values returns an iterator over the values of m in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator returns an iterator over the entries of m. Other than All, it
// allows removing entries while walking.
func (m *Map[K, V]) Iterator() *btree.Iterator[K, V] {
	return m.tree.Iterator()
}

// DeleteFunc removes all entries for which del returns true and reports the
// number of entries removed.
func (m *Map[K, V]) DeleteFunc(del func(K, V) bool) (int, error) {
	n := 0
	it := m.tree.Iterator()
	for it.Next() {
		if !del(it.Key(), it.Value()) {
			continue
		}
		if err := it.Remove(); err != nil {
			return n, err
		}
		n++
	}
	if n > 0 {
		tracer().Debugf("omap: removed %d entries, %d left", n, m.tree.Len())
	}
	return n, it.Err()
}

// Clone returns a copy of m. The copy shares no structure with m; keys and
// values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Clone()}
}

// Tree exposes the B+ tree backing m, e.g. for inspection and debugging.
// Clients must not insert duplicate keys into it.
func (m *Map[K, V]) Tree() *btree.Tree[K, V] {
	return m.tree
}

// String returns the structure of the underlying tree, level by level.
func (m *Map[K, V]) String() string {
	return m.tree.String()
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
