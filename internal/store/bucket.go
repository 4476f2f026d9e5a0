package store

import "sort"

// bucket is the untyped backing container kept in Store.buckets.
type bucket[T any] struct {
	items  map[uint]T
	nextID uint
}

// Bucket returns the typed collection named name, creating it on first use.
// First use may happen inside a View, where two transactions can race to
// create the same collection, so the map itself is locked separately from the
// transaction. The returned handle must not outlive the transaction.
func Bucket[T any](tx *Tx, name string) *TypedBucket[T] {
	tx.store.bmu.Lock()
	defer tx.store.bmu.Unlock()

	b, ok := tx.store.buckets[name].(*bucket[T])
	if !ok {
		b = &bucket[T]{items: make(map[uint]T), nextID: 1}
		tx.store.buckets[name] = b
	}
	return &TypedBucket[T]{tx: tx, b: b}
}

// TypedBucket exposes CRUD over a single collection within a transaction.
type TypedBucket[T any] struct {
	tx *Tx
	b  *bucket[T]
}

func (tb *TypedBucket[T]) Get(id uint) (T, bool) {
	v, ok := tb.b.items[id]
	return v, ok
}

// Insert stores the value produced by fn under the next free id. The id is
// handed to fn so the record can carry it.
func (tb *TypedBucket[T]) Insert(fn func(id uint) T) (uint, error) {
	if err := tb.writable(); err != nil {
		return 0, err
	}
	id := tb.b.nextID
	tb.b.nextID++
	tb.b.items[id] = fn(id)
	return id, nil
}

// Put replaces the value stored under id. It does not allocate ids; callers
// use Insert for new records.
func (tb *TypedBucket[T]) Put(id uint, v T) error {
	if err := tb.writable(); err != nil {
		return err
	}
	tb.b.items[id] = v
	return nil
}

// Delete removes id. Deleting an absent id is a no-op.
func (tb *TypedBucket[T]) Delete(id uint) error {
	if err := tb.writable(); err != nil {
		return err
	}
	delete(tb.b.items, id)
	return nil
}

func (tb *TypedBucket[T]) Len() int {
	return len(tb.b.items)
}

// All returns every value ordered by ascending id, so listings are
// deterministic across runs.
func (tb *TypedBucket[T]) All() []T {
	ids := make([]uint, 0, len(tb.b.items))
	for id := range tb.b.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, tb.b.items[id])
	}
	return out
}

// Find returns, in ascending id order, every value for which pred is true.
func (tb *TypedBucket[T]) Find(pred func(v T) bool) []T {
	out := make([]T, 0)
	for _, v := range tb.All() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the lowest-id value matching pred.
func (tb *TypedBucket[T]) First(pred func(v T) bool) (T, bool) {
	for _, v := range tb.All() {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (tb *TypedBucket[T]) writable() error {
	if tb.tx.done {
		return ErrTxClosed
	}
	if !tb.tx.writable {
		return ErrTxNotWritable
	}
	return nil
}
