package btree

import "iter"

// ForEach walks the entries in ascending key order.
//
// Iteration stops early if fn returns false. If fn modifies the tree, the
// walk stops and ForEach returns ErrStaleIterator.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) error {
	if t == nil || fn == nil {
		return nil
	}
	it := t.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return nil
		}
	}
	return it.Err()
}

// All returns an iterator over all entries in ascending key order, for use
// with range-over-func. Each range statement starts a fresh walk.
//
// The tree must not be modified while ranging over it; All panics with
// ErrStaleIterator in that case. Use Iterator to remove entries during
// iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if err := t.ForEach(yield); err != nil {
			panic(err)
		}
	}
}

// Keys returns an iterator over all keys in ascending order. Like All, it
// panics if the tree is modified during the walk.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}
