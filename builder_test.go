package omap

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/omap/btree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "omap")
	defer teardown()
	//
	b, err := NewBuilder[string, int](btree.Config[string]{MaxChildren: 4})
	if err != nil {
		t.Fatal(err)
	}
	for i, k := range []string{"apple", "banana", "cherry", "date", "elderberry", "fig"} {
		if err := b.Append(k, i); err != nil {
			t.Fatalf("Append(%q) failed: %v", k, err)
		}
	}
	m, err := b.Map()
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("map = %v", m)
	if m.Len() != 6 || m.Tree().MaxChildren() != 4 {
		t.Errorf("unexpected map: len=%d, m=%d", m.Len(), m.Tree().MaxChildren())
	}
	if err := m.Tree().Check(); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := m.Get("date"); v != 3 {
		t.Errorf("expected date=3, have %d", v)
	}
}

func TestBuilderRejectsUnordered(t *testing.T) {
	b, err := NewBuilder[int, int](btree.Config[int]{})
	if err != nil {
		t.Fatal(err)
	}
	b.Append(1, 1)
	b.Append(5, 5)
	if err := b.Append(5, 6); !errors.Is(err, ErrUnordered) {
		t.Errorf("expected duplicate key to be rejected, have %v", err)
	}
	if err := b.Append(3, 3); !errors.Is(err, ErrUnordered) {
		t.Errorf("expected smaller key to be rejected, have %v", err)
	}
	if err := b.Append(7, 7); err != nil {
		t.Errorf("expected builder to continue after rejection, have %v", err)
	}
	m, _ := b.Map()
	if keys := slices.Collect(m.Keys()); !slices.Equal(keys, []int{1, 5, 7}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestBuilderCompleted(t *testing.T) {
	b, _ := NewBuilder[int, string](btree.Config[int]{})
	b.Append(1, "one")
	m1, _ := b.Map()
	if err := b.Append(2, "two"); !errors.Is(err, ErrMapCompleted) {
		t.Errorf("expected ErrMapCompleted, have %v", err)
	}
	m2, _ := b.Map()
	if m1 != m2 {
		t.Errorf("expected repeated Map() to return the same map")
	}
	b.Reset()
	if err := b.Append(0, "zero"); err != nil {
		t.Fatalf("expected Append to work after Reset, have %v", err)
	}
	m3, _ := b.Map()
	if m3.Len() != 1 || m1.Len() != 1 {
		t.Errorf("reset affected maps built before")
	}
	if v, _, _ := m3.Get(0); v != "zero" {
		t.Errorf("unexpected value %q", v)
	}
}

func TestBuilderIllegal(t *testing.T) {
	var b *Builder[int, int]
	if err := b.Append(1, 1); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil builder, have %v", err)
	}
	if _, err := NewBuilder[int, int](btree.Config[int]{MaxChildren: 1}); err == nil {
		t.Errorf("expected invalid config to be rejected")
	}
	type point struct{ x, y int }
	bp, err := NewBuilder[point, int](btree.Config[point]{})
	if err != nil {
		t.Fatal(err)
	}
	if err := bp.Append(point{1, 2}, 0); !errors.Is(err, btree.ErrNotComparable) {
		t.Errorf("expected ErrNotComparable, have %v", err)
	}
}
