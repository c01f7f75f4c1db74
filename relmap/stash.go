package relmap

import (
	"log/slog"
	"time"

	"github.com/machfe522/osmium-library/internal/flatmap"
	"github.com/machfe522/osmium-library/osm"
)

// internalID is the storage width for object identifiers. See the package
// documentation for the truncation caveat.
type internalID = uint32

func narrow(id osm.UnsignedObjectID) internalID {
	return internalID(id)
}

// Stash accumulates member-to-parent edges before an index is built from
// them. Create it with NewStash, fill it with AddEdge or AddMembers, then
// call exactly one of the Build methods. Every Build consumes the Stash;
// using it afterwards panics.
type Stash struct {
	m        *flatmap.Map[internalID, internalID]
	logger   *slog.Logger
	consumed bool
}

// NewStash creates an empty Stash.
func NewStash(opts ...Option) *Stash {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := flatmap.New[internalID, internalID]()
	if o.capacity > 0 {
		m.Grow(o.capacity)
	}

	return &Stash{
		m:      m,
		logger: o.logger,
	}
}

func (s *Stash) assertLive(op string) {
	if s.consumed {
		panic("relmap: " + op + " called on a Stash already consumed by a build")
	}
}

func (s *Stash) consume() *flatmap.Map[internalID, internalID] {
	m := s.m
	s.m = nil
	s.consumed = true
	return m
}

// AddEdge records that the relation memberID is a member of the relation
// parentID.
func (s *Stash) AddEdge(memberID, parentID osm.UnsignedObjectID) {
	s.assertLive("AddEdge")
	s.m.Append(narrow(memberID), narrow(parentID))
}

// AddMembers records one edge per member of the given parent relation that
// is itself a relation. Node and way members are skipped; only
// relation-to-relation parentage is indexed.
func (s *Stash) AddMembers(parentID osm.UnsignedObjectID, members []osm.Member) {
	s.assertLive("AddMembers")
	for _, member := range members {
		if member.Type == osm.ItemTypeRelation {
			s.m.Append(narrow(member.PositiveRef()), narrow(parentID))
		}
	}
}

// Len returns the number of edges recorded so far, duplicates included.
func (s *Stash) Len() int {
	s.assertLive("Len")
	return s.m.Len()
}

// Empty reports whether no edges have been recorded.
func (s *Stash) Empty() bool {
	s.assertLive("Empty")
	return s.m.Empty()
}

// BuildForwardIndex freezes the stash into an index keyed by member ID,
// answering "which relations is X a member of". Consumes the Stash.
func (s *Stash) BuildForwardIndex() *Index {
	s.assertLive("BuildForwardIndex")
	start := time.Now()
	raw := s.m.Len()

	idx := newIndex(s.consume().Freeze())

	s.logger.Debug("built member-to-parent index",
		slog.Int("edges", raw),
		slog.Int("distinct", idx.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return idx
}

// BuildReverseIndex inverts the stash in place and freezes it into an
// index keyed by parent ID, answering "which relations are members of Y".
// Consumes the Stash; inversion is destructive, so it cannot be combined
// with BuildForwardIndex on the same Stash.
func (s *Stash) BuildReverseIndex() *Index {
	s.assertLive("BuildReverseIndex")
	start := time.Now()
	raw := s.m.Len()

	m := s.consume()
	flatmap.FlipInPlace(m)
	idx := newIndex(m.Freeze())

	s.logger.Debug("built parent-to-member index",
		slog.Int("edges", raw),
		slog.Int("distinct", idx.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return idx
}

// BuildIndexPair builds both lookup directions from one accumulation pass
// and returns them as an IndexPair. Costs one O(n) copy and one extra sort
// compared to a single-direction build. Consumes the Stash.
func (s *Stash) BuildIndexPair() *IndexPair {
	s.assertLive("BuildIndexPair")
	start := time.Now()
	raw := s.m.Len()

	m := s.consume()
	inv := m.InvertCopy()
	pair := &IndexPair{
		forward: newIndex(m.Freeze()),
		reverse: newIndex(inv.Freeze()),
	}

	s.logger.Debug("built index pair",
		slog.Int("edges", raw),
		slog.Int("distinct", pair.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return pair
}
