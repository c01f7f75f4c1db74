// Package flatmap implements a sorted-array multimap with a two-phase
// lifecycle: an append-only Map that is consumed by Freeze into a
// query-only Frozen view. The flat layout keeps one allocation for the
// whole structure and makes range queries a binary search plus a
// contiguous scan.
package flatmap

import (
	"cmp"
	"iter"
	"slices"
)

// Entry is one key/value pair.
type Entry[K, V cmp.Ordered] struct {
	Key   K
	Value V
}

func compareEntries[K, V cmp.Ordered](a, b Entry[K, V]) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

// Map is the open, append-only phase of the multimap. Entries are kept in
// insertion order, duplicates included; queries are not possible until the
// Map is frozen.
//
// The zero value is ready to use.
type Map[K, V cmp.Ordered] struct {
	entries []Entry[K, V]
}

// New creates an empty Map.
func New[K, V cmp.Ordered]() *Map[K, V] {
	return &Map[K, V]{}
}

// Append records one key/value pair. Amortized O(1).
func (m *Map[K, V]) Append(key K, value V) {
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Grow ensures capacity for n additional entries without reallocation.
func (m *Map[K, V]) Grow(n int) {
	m.entries = slices.Grow(m.entries, n)
}

// Len returns the raw number of appended entries, duplicates included.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Empty reports whether no entries have been appended.
func (m *Map[K, V]) Empty() bool {
	return len(m.entries) == 0
}

// InvertCopy returns a new Map holding every entry with key and value
// swapped. The receiver is left untouched. O(n) plus one allocation.
func (m *Map[K, V]) InvertCopy() *Map[V, K] {
	inv := &Map[V, K]{
		entries: make([]Entry[V, K], 0, len(m.entries)),
	}
	for _, e := range m.entries {
		inv.entries = append(inv.entries, Entry[V, K]{Key: e.Value, Value: e.Key})
	}
	return inv
}

// FlipInPlace swaps key and value of every entry in place. It is only
// defined for maps whose key and value share one type, which makes the
// restriction a compile-time property rather than a runtime check. The
// result is unsorted with respect to the new key; it becomes queryable
// again only through Freeze.
func FlipInPlace[T cmp.Ordered](m *Map[T, T]) {
	for i := range m.entries {
		m.entries[i].Key, m.entries[i].Value = m.entries[i].Value, m.entries[i].Key
	}
}

// Freeze sorts all entries ascending by (key, value), drops exact duplicate
// pairs and moves the backing storage into the returned Frozen view.
// O(n log n). The Map is emptied by the move and must not be used again.
func (m *Map[K, V]) Freeze() *Frozen[K, V] {
	slices.SortFunc(m.entries, compareEntries[K, V])
	entries := slices.Compact(m.entries)
	m.entries = nil
	return &Frozen[K, V]{entries: entries}
}

// Frozen is the immutable, query-only phase of the multimap. It has no
// mutating operations, so a Frozen value is safe for concurrent readers.
type Frozen[K, V cmp.Ordered] struct {
	entries []Entry[K, V]
}

// Get returns a lazy, restartable iterator over all values paired with key,
// in ascending order. Iterating yields nothing when the key is absent.
// Locating the run is O(log n); enumerating it is O(hits).
func (f *Frozen[K, V]) Get(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		lo, _ := slices.BinarySearchFunc(f.entries, key, func(e Entry[K, V], k K) int {
			return cmp.Compare(e.Key, k)
		})
		for i := lo; i < len(f.entries) && f.entries[i].Key == key; i++ {
			if !yield(f.entries[i].Value) {
				return
			}
		}
	}
}

// All returns an iterator over every entry in (key, value) order.
func (f *Frozen[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range f.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Len returns the number of distinct entries.
func (f *Frozen[K, V]) Len() int {
	return len(f.entries)
}

// Empty reports whether the multimap holds no entries.
func (f *Frozen[K, V]) Empty() bool {
	return len(f.entries) == 0
}
