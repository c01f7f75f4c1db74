package relmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/machfe522/osmium-library/internal/flatmap"
	"github.com/machfe522/osmium-library/osm"
)

// Index answers "all IDs paired with this ID" queries against a frozen
// edge set. It cannot be created directly; build one from a Stash.
//
// An Index is immutable for its whole lifetime and therefore safe for
// concurrent readers.
type Index struct {
	m    *flatmap.Frozen[internalID, internalID]
	keys *roaring.Bitmap
}

func newIndex(m *flatmap.Frozen[internalID, internalID]) *Index {
	// The key bitmap makes absent-key lookups O(1) instead of a binary
	// search over the whole edge set.
	keys := roaring.New()
	for k := range m.All() {
		keys.Add(k)
	}
	return &Index{m: m, keys: keys}
}

// ForEach calls fn once for every ID paired with id, in ascending order.
// fn is not called at all when id is absent.
//
// Complexity: logarithmic in the number of edges to locate the run,
// linear in the number of matches to enumerate it.
func (idx *Index) ForEach(id osm.UnsignedObjectID, fn func(osm.UnsignedObjectID)) {
	if !idx.keys.Contains(narrow(id)) {
		return
	}
	for v := range idx.m.Get(narrow(id)) {
		fn(osm.UnsignedObjectID(v))
	}
}

// Lookup returns a lazy, restartable iterator over all IDs paired with id,
// in ascending order. Same semantics and complexity as ForEach.
func (idx *Index) Lookup(id osm.UnsignedObjectID) iter.Seq[osm.UnsignedObjectID] {
	return func(yield func(osm.UnsignedObjectID) bool) {
		if !idx.keys.Contains(narrow(id)) {
			return
		}
		for v := range idx.m.Get(narrow(id)) {
			if !yield(osm.UnsignedObjectID(v)) {
				return
			}
		}
	}
}

// Contains reports in O(1) whether id appears as a key in the index.
func (idx *Index) Contains(id osm.UnsignedObjectID) bool {
	return idx.keys.Contains(narrow(id))
}

// Len returns the number of distinct edges in the index.
func (idx *Index) Len() int {
	return idx.m.Len()
}

// Empty reports whether the index holds no edges.
func (idx *Index) Empty() bool {
	return idx.m.Empty()
}
