package mapfile

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/omap"
	"github.com/npillmayer/omap/btree"
)

// EventKind tells what happened to a store's file.
type EventKind int

// Kinds of events broadcast by a Store.
const (
	Saved EventKind = iota
	Loaded
	Failed
)

func (k EventKind) String() string {
	switch k {
	case Saved:
		return "saved"
	case Loaded:
		return "loaded"
	}
	return "failed"
}

// Event is broadcast to the subscribers of a store after every save or load.
type Event struct {
	Kind    EventKind
	Path    string
	Entries int   // number of map entries saved or loaded
	Bytes   int64 // size of the persisted form
	Err     error // set for Failed
}

// Store saves maps to and loads maps from a single file, and broadcasts an
// Event for every file operation.
//
// Broadcasting never blocks file operations: subscribers with full channels
// miss events.
type Store[K, V any] struct {
	path string
	cfg  btree.Config[K]
	cast *caster.Caster // broadcaster for file events
	done chan struct{}  // closed by Close
	once sync.Once
}

// NewStore creates a store for the file at path. cfg is used for maps
// loaded from the file.
func NewStore[K, V any](path string, cfg btree.Config[K]) *Store[K, V] {
	return &Store[K, V]{
		path: path,
		cfg:  cfg,
		cast: caster.New(nil),
		done: make(chan struct{}),
	}
}

// Path returns the path of the store's file.
func (s *Store[K, V]) Path() string {
	return s.path
}

// Save writes m to the store's file.
func (s *Store[K, V]) Save(m *omap.Map[K, V]) error {
	n, err := Save(s.path, m)
	if err != nil {
		s.publish(Event{Kind: Failed, Path: s.path, Bytes: n, Err: err})
		return err
	}
	s.publish(Event{Kind: Saved, Path: s.path, Entries: m.Len(), Bytes: n})
	return nil
}

// Load reads a map from the store's file.
func (s *Store[K, V]) Load() (*omap.Map[K, V], error) {
	m, err := Load[K, V](s.path, s.cfg)
	if err != nil {
		s.publish(Event{Kind: Failed, Path: s.path, Err: err})
		return nil, err
	}
	s.publish(Event{Kind: Loaded, Path: s.path, Entries: m.Len()})
	return m, nil
}

// Subscribe returns a channel receiving the events of s. The channel is
// closed when ctx is done or the store is closed. capacity is the number of
// events buffered for a slow receiver.
func (s *Store[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan Event, bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	events := make(chan Event, capacity)
	go func(ch <-chan interface{}) {
		defer close(events)
		for msg := range ch {
			e, ok := msg.(Event)
			if !ok {
				continue
			}
			select {
			case events <- e:
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}
		}
	}(ch)
	return events, true
}

// Close stops broadcasting and closes all subscriber channels, including
// those of subscribers which stopped receiving.
func (s *Store[K, V]) Close() {
	s.once.Do(func() { close(s.done) })
	s.cast.Close()
}

func (s *Store[K, V]) publish(e Event) {
	if e.Kind == Failed {
		tracer().Errorf("mapfile: %s: %v", e.Path, e.Err)
	}
	if !s.cast.TryPub(e) {
		tracer().Debugf("mapfile: store closed, event %s dropped", e.Kind)
	}
}
