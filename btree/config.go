package btree

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/schuko"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultMaxChildren is the branching factor used if none is configured.
	DefaultMaxChildren = 5
)

// Config configures a B+ tree. The configuration is fixed at construction time.
type Config[K any] struct {
	// MaxChildren is the branching factor m: inner nodes have at most m
	// children, every node holds at most m-1 entries. Zero selects
	// DefaultMaxChildren.
	MaxChildren int
	// MinEntries is the lower occupancy bound for non-root nodes. Zero
	// selects (MaxChildren-1)/2, which is the largest value split and merge
	// can honor for both odd and even branching factors.
	MinEntries int
	// Compare defines a total order on keys and returns a negative number,
	// zero or a positive number for a < b, a == b, a > b.
	// If nil, keys have to be naturally ordered (numbers, strings, or types
	// implementing `Compare(K) int`).
	Compare func(a, b K) int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.MaxChildren == 0 {
		cfg.MaxChildren = DefaultMaxChildren
	}
	if cfg.MinEntries == 0 {
		cfg.MinEntries = (cfg.MaxChildren - 1) / 2
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxChildren <= 2 {
		return fmt.Errorf("%w: maxChildren must be greater than 2, is %d",
			ErrInvalidConfig, cfg.MaxChildren)
	}
	if cfg.MinEntries <= 0 {
		return fmt.Errorf("%w: minEntries must be greater than 0, is %d",
			ErrInvalidConfig, cfg.MinEntries)
	}
	if limit := (cfg.MaxChildren - 1) / 2; cfg.MinEntries > limit {
		return fmt.Errorf("%w: minEntries must be <= %d for maxChildren=%d, is %d",
			ErrInvalidConfig, limit, cfg.MaxChildren, cfg.MinEntries)
	}
	return nil
}

// ConfigFrom reads a tree configuration from an application configuration.
// Keys are "<prefix>.maxchildren" and "<prefix>.minentries"; unset keys
// select defaults. The comparison function cannot be configured this way and
// has to be set by the caller afterwards, if needed.
func ConfigFrom[K any](conf schuko.Configuration, prefix string) (Config[K], error) {
	var cfg Config[K]
	if conf == nil {
		return cfg.normalized(), nil
	}
	if key := prefix + ".maxchildren"; conf.IsSet(key) {
		cfg.MaxChildren = conf.GetInt(key)
	}
	if key := prefix + ".minentries"; conf.IsSet(key) {
		cfg.MinEntries = conf.GetInt(key)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg.normalized(), nil
}

// Ordered compares naturally ordered keys. It may be used as Config.Compare.
func Ordered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// --- Key ordering ----------------------------------------------------------

type keyOrder[K any] func(a, b K) (int, error)

func orderFor[K any](cfg Config[K]) keyOrder[K] {
	if cfg.Compare != nil {
		cmp := cfg.Compare
		return func(a, b K) (int, error) {
			return cmp(a, b), nil
		}
	}
	return naturalOrder[K]
}

// naturalOrder compares keys without a configured comparison function.
// Comparability is checked per call: for interface key types the dynamic
// types may differ between keys.
func naturalOrder[K any](a, b K) (int, error) {
	if c, ok := any(a).(interface{ Compare(K) int }); ok {
		return c.Compare(b), nil
	}
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrNotComparable, a, b)
	}
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ordered(va.Int(), vb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ordered(va.Uint(), vb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Ordered(va.Float(), vb.Float()), nil
	case reflect.String:
		return Ordered(va.String(), vb.String()), nil
	}
	return 0, fmt.Errorf("%w: %T has no natural order", ErrNotComparable, a)
}

// isNilKey reports whether key is nil, i.e. a nil interface or a nil
// reference of pointer-like kind.
func isNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
