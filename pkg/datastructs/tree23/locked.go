package tree23

import (
	"io"
	"sync"
)

// Entry is a key/value pair copied out of a tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Locked serializes access to a Tree with a single lock. A split touches the
// node, its sibling, its parent and possibly a new root, so writers hold the
// lock for the whole Insert.
type Locked[K, V any] struct {
	mu   sync.RWMutex
	tree *Tree[K, V]
}

// NewLocked wraps t. t must not be used directly afterwards.
func NewLocked[K, V any](t *Tree[K, V]) *Locked[K, V] {
	return &Locked[K, V]{tree: t}
}

// Insert stores value under key.
func (l *Locked[K, V]) Insert(key K, value V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Insert(key, value)
}

// Get returns the value stored under key.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Get(key)
}

// Has reports whether key is stored.
func (l *Locked[K, V]) Has(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Has(key)
}

// Len returns the number of entries.
func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// IsEmpty reports whether the tree is empty.
func (l *Locked[K, V]) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.IsEmpty()
}

// Entries returns a snapshot of all entries in ascending key order.
func (l *Locked[K, V]) Entries() []Entry[K, V] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry[K, V], 0, l.tree.Len())
	for k, v := range l.tree.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// Dump writes the tree to w under the read lock.
func (l *Locked[K, V]) Dump(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Dump(w)
}

// Validate checks the tree invariants under the read lock.
func (l *Locked[K, V]) Validate() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Validate()
}

// Close tears the tree down under the write lock.
func (l *Locked[K, V]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tree.Close()
}
