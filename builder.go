package omap

import (
	"github.com/npillmayer/omap/btree"
)

// Builder is for building maps from entries arriving in ascending key order.
//
// Builder collects entries and materializes the map only when Map() is
// called. Out-of-order entries are rejected as they are appended, which makes
// the builder a natural sink for already sorted input, e.g. rows of a sorted
// file.
type Builder[K, V any] struct {
	cfg    btree.Config[K]
	m      *Map[K, V]
	staged []btree.Entry[K, V]
	done   bool
}

// NewBuilder creates a new and empty map builder. cfg is used for the maps
// built.
func NewBuilder[K, V any](cfg btree.Config[K]) (*Builder[K, V], error) {
	m, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &Builder[K, V]{cfg: cfg, m: m}, nil
}

// Append stages an entry. Its key has to be greater than the key of the entry
// appended before, otherwise ErrUnordered is returned and the entry dropped.
func (b *Builder[K, V]) Append(key K, value V) error {
	if b == nil || b.m == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrMapCompleted
	}
	if n := len(b.staged); n > 0 {
		c, err := b.m.tree.Compare(b.staged[n-1].Key, key)
		if err != nil {
			return err
		}
		if c >= 0 {
			tracer().Debugf("map builder: key %v appended after %v", key, b.staged[n-1].Key)
			return ErrUnordered
		}
	} else if _, err := b.m.tree.Compare(key, key); err != nil {
		return err
	}
	b.staged = append(b.staged, btree.Entry[K, V]{Key: key, Value: value})
	return nil
}

// Map returns the map built from all staged entries.
//
// It is illegal to continue adding entries after Map has been called, but
// Map may be called multiple times and returns the same map.
func (b *Builder[K, V]) Map() (*Map[K, V], error) {
	if b == nil || b.m == nil {
		return nil, ErrIllegalArguments
	}
	for _, e := range b.staged {
		if err := b.m.tree.Put(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	b.staged = nil
	if !b.done {
		tracer().Debugf("map builder: completed map with %d entries", b.m.Len())
	}
	b.done = true
	return b.m, nil
}

// Reset drops the staged build and prepares the builder for a fresh build.
// Maps built before are not affected.
func (b *Builder[K, V]) Reset() {
	b.staged = nil
	b.done = false
	m, err := New[K, V](b.cfg)
	assert(err == nil, "builder: configuration rejected on reset")
	b.m = m
}
