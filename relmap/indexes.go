package relmap

// IndexPair bundles both lookup directions built from one Stash: a
// forward index keyed by member ID and a reverse index keyed by parent
// ID. The two are exact inverses and hold the same number of edges.
type IndexPair struct {
	forward *Index
	reverse *Index
}

// Forward returns the member-to-parent index.
func (p *IndexPair) Forward() *Index {
	return p.forward
}

// Reverse returns the parent-to-member index.
func (p *IndexPair) Reverse() *Index {
	return p.reverse
}

// Len returns the number of distinct edges, reported from the forward
// index; the reverse index always holds the same count.
func (p *IndexPair) Len() int {
	return p.forward.Len()
}

// Empty reports whether the pair holds no edges.
func (p *IndexPair) Empty() bool {
	return p.forward.Empty()
}
