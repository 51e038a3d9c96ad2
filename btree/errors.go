package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration: MaxChildren
	// of 2 or less, MinEntries of 0 or less, or MinEntries above
	// (MaxChildren-1)/2. The upper bound is stricter than ⌊MaxChildren/2⌋
	// for even MaxChildren, where splitting an inner node leaves only
	// MaxChildren/2-1 entries on its right side.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrNilKey signals a nil key passed to a tree operation.
	ErrNilKey = errors.New("btree: nil key")
	// ErrNotComparable signals that keys cannot be ordered: no comparison
	// function has been configured and the key type has no natural order.
	ErrNotComparable = errors.New("btree: key type not comparable")
	// ErrStaleIterator signals that a tree has been modified after an
	// iterator over it has been created.
	ErrStaleIterator = errors.New("btree: tree modified during iteration")
	// ErrNoCurrentEntry signals an iterator removal without a preceding call
	// to Next.
	ErrNoCurrentEntry = errors.New("btree: iterator has no current entry")
	// ErrCorrupted signals a violated structural invariant.
	ErrCorrupted = errors.New("btree: invariant violated")
	// ErrPersistedForm signals malformed input to Decode.
	ErrPersistedForm = errors.New("btree: malformed persisted form")
)
