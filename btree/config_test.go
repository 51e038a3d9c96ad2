package btree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
)

func TestConfigFromConfiguration(t *testing.T) {
	conf := testconfig.Conf{
		"omap.maxchildren": 8,
		"omap.minentries":  "2",
	}
	cfg, err := ConfigFrom[string](conf, "omap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxChildren != 8 || cfg.MinEntries != 2 {
		t.Fatalf("unexpected configuration: %+v", cfg)
	}
	tree, err := New[string, int](cfg)
	if err != nil {
		t.Fatalf("configuration read from conf rejected: %v", err)
	}
	if tree.MaxChildren() != 8 || tree.MinEntries() != 2 {
		t.Fatalf("tree does not use configured sizes: m=%d min=%d", tree.MaxChildren(), tree.MinEntries())
	}
}

func TestConfigFromDefaults(t *testing.T) {
	cfg, err := ConfigFrom[int](testconfig.Conf{"other.maxchildren": 99}, "omap")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxChildren != DefaultMaxChildren || cfg.MinEntries != 2 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	cfg, err = ConfigFrom[int](nil, "omap")
	if err != nil || cfg.MaxChildren != DefaultMaxChildren {
		t.Fatalf("expected defaults for missing configuration, got %+v, %v", cfg, err)
	}
}

func TestConfigFromRejectsInvalidSizes(t *testing.T) {
	_, err := ConfigFrom[int](testconfig.Conf{"omap.maxchildren": "2"}, "omap")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = ConfigFrom[int](testconfig.Conf{"omap.maxchildren": 6, "omap.minentries": 3}, "omap")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for minEntries=3 with m=6, got %v", err)
	}
}

func TestOrdered(t *testing.T) {
	if Ordered(1, 2) >= 0 || Ordered(2, 1) <= 0 || Ordered(3, 3) != 0 {
		t.Errorf("Ordered does not order ints")
	}
	if Ordered("b", "a") <= 0 || Ordered(1.5, 2.5) >= 0 {
		t.Errorf("Ordered does not order strings or floats")
	}
}

func TestNaturalOrder(t *testing.T) {
	type celsius float32
	type id uint16
	for _, tc := range []struct {
		a, b any
		want int
	}{
		{int8(-3), int8(4), -1},
		{uint(7), uint(7), 0},
		{celsius(21.5), celsius(-4), 1},
		{id(3), id(9), -1},
		{"omap", "btree", 1},
	} {
		got, err := naturalOrder[any](tc.a, tc.b)
		if err != nil || got != tc.want {
			t.Errorf("naturalOrder(%v, %v) = %d, %v; want %d", tc.a, tc.b, got, err, tc.want)
		}
	}
	if _, err := naturalOrder[any](true, false); !errors.Is(err, ErrNotComparable) {
		t.Errorf("expected bool to have no natural order, got %v", err)
	}
	if _, err := naturalOrder[any](int32(1), int64(1)); !errors.Is(err, ErrNotComparable) {
		t.Errorf("expected different integer types to be incomparable, got %v", err)
	}
}

func TestIsNilKey(t *testing.T) {
	var p *int
	var m map[string]int
	var s []byte
	var e error
	n := 0
	for _, tc := range []struct {
		key  any
		want bool
	}{
		{nil, true}, {p, true}, {m, true}, {s, true}, {e, true},
		{&n, false}, {0, false}, {"", false}, {[]byte{}, false},
	} {
		if got := isNilKey[any](tc.key); got != tc.want {
			t.Errorf("isNilKey(%#v) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
