// Package store is the in-memory persistence layer shared by every domain
// repository. Collections are keyed by a monotonically increasing uint id and
// are only reachable through View/Update closure transactions, so a writer
// runs start-to-finish without interleaving with any other caller. That single
// write lock is what makes multi-collection sequences such as order placement
// atomic without any further coordination.
package store

import (
	"errors"
	"sync"
)

var (
	ErrTxNotWritable = errors.New("transaction is read-only")
	ErrTxClosed      = errors.New("transaction has ended")
)

// Store holds every collection behind one RWMutex.
type Store struct {
	mu sync.RWMutex

	// bmu guards the buckets map itself. Collections are created lazily on
	// first access, which can happen under the shared read lock, so the map
	// needs its own exclusion.
	bmu     sync.Mutex
	buckets map[string]any
}

func New() *Store {
	return &Store{buckets: make(map[string]any)}
}

// Tx is a handle valid only for the duration of a View or Update closure.
type Tx struct {
	store    *Store
	writable bool
	done     bool
}

// View runs fn with shared read access. Mutating a bucket inside a View
// closure returns ErrTxNotWritable.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := &Tx{store: s, writable: false}
	defer func() { tx.done = true }()
	return fn(tx)
}

// Update runs fn with exclusive write access. The closure owns the whole
// store until it returns; no other reader or writer can observe a partial
// sequence of mutations.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{store: s, writable: true}
	defer func() { tx.done = true }()
	return fn(tx)
}
