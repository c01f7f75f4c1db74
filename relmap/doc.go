// Package relmap provides an index for looking up the parent relations a
// relation is a member of, or the other way around.
//
// The index is built in two phases. During ingestion, edges are collected
// in a Stash; once the input has been fully scanned, exactly one build
// operation turns the Stash into one or two immutable Index values:
//
//	stash := relmap.NewStash()
//	for relation := range relations {
//	    stash.AddMembers(relation.ID, relation.Members)
//	}
//	index := stash.BuildForwardIndex()
//
//	index.ForEach(memberID, func(parentID osm.UnsignedObjectID) {
//	    // ...
//	})
//
// A build consumes the Stash: any later call on it panics. When both
// lookup directions are needed, BuildIndexPair produces a forward and a
// reverse index from one accumulation pass at the cost of one extra copy.
//
// # Identifier width
//
// Edges are stored as 32-bit pairs. OSM object IDs fit well below 2^32
// upstream; identifiers outside that range truncate without detection.
//
// # Thread safety
//
// A Stash must be confined to one goroutine. A built Index is immutable
// and safe for concurrent readers.
package relmap
