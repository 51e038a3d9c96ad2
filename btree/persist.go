package btree

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// MaxStoredChildren is the largest branching factor Decode accepts. Nodes
// are allocated with room for MaxChildren entries, so the bound keeps
// crafted input from exhausting memory.
const MaxStoredChildren = 1 << 16

// Encode writes the persisted form of t to w, encoded as MessagePack:
// the branching factor, the lower occupancy bound, the number of entries,
// followed by key and value of every entry in ascending key order.
//
// The tree structure itself is not persisted; Decode rebuilds it by
// re-inserting the entries. Keys and values have to be encodable by msgpack.
func (t *Tree[K, V]) Encode(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	for _, n := range []int{t.cfg.MaxChildren, t.cfg.MinEntries, t.size} {
		if err := enc.EncodeInt(int64(n)); err != nil {
			return err
		}
	}
	version := t.version
	for leaf := t.leftmost; leaf != noNode; leaf = t.arena.at(leaf).next {
		for _, e := range t.arena.at(leaf).entries {
			if err := enc.Encode(e.Key); err != nil {
				return fmt.Errorf("btree: encoding key %v: %w", e.Key, err)
			}
			if err := enc.Encode(e.Value); err != nil {
				return fmt.Errorf("btree: encoding value for key %v: %w", e.Key, err)
			}
		}
	}
	assert(version == t.version, "Encode: tree modified while encoding")
	return nil
}

// Decode reads a tree in persisted form from r, as written by Encode.
//
// The branching factor and occupancy bound are taken from the input and
// override the ones in cfg; cfg contributes the comparison function only.
// Malformed input is reported as ErrPersistedForm.
func Decode[K, V any](r io.Reader, cfg Config[K]) (*Tree[K, V], error) {
	dec := msgpack.NewDecoder(r)
	var header [3]int
	for i := range header {
		n, err := dec.DecodeInt()
		if err != nil {
			return nil, persistError("reading header: %v", err)
		}
		header[i] = n
	}
	cfg.MaxChildren, cfg.MinEntries = header[0], header[1]
	if header[0] == 0 || header[1] == 0 {
		return nil, persistError("stored configuration m=%d, min=%d is incomplete", header[0], header[1])
	}
	if header[0] > MaxStoredChildren {
		return nil, persistError("stored branching factor %d exceeds %d", header[0], MaxStoredChildren)
	}
	count := header[2]
	if count < 0 {
		return nil, persistError("negative entry count %d", count)
	}
	t, err := New[K, V](cfg)
	if err != nil {
		return nil, persistError("stored configuration: %v", err)
	}
	tracer().Debugf("btree: decoding %d entries, m=%d", count, cfg.MaxChildren)
	for i := 0; i < count; i++ {
		var key K
		var value V
		if err := dec.Decode(&key); err != nil {
			return nil, persistError("reading key #%d: %v", i, err)
		}
		if err := dec.Decode(&value); err != nil {
			return nil, persistError("reading value #%d: %v", i, err)
		}
		if err := t.Put(key, value); err != nil {
			return nil, persistError("inserting key #%d: %v", i, err)
		}
	}
	return t, nil
}

func persistError(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrPersistedForm}, args...)...)
	tracer().Errorf("%s", err.Error())
	return err
}
