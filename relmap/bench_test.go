package relmap

import (
	"math/rand"
	"testing"

	"github.com/machfe522/osmium-library/osm"
)

const benchEdges = 100_000

func fillStash(rng *rand.Rand) *Stash {
	stash := NewStash(WithCapacity(benchEdges))
	for i := 0; i < benchEdges; i++ {
		stash.AddEdge(
			osm.UnsignedObjectID(rng.Intn(benchEdges/4)+1),
			osm.UnsignedObjectID(rng.Intn(benchEdges/10)+1),
		)
	}
	return stash
}

func BenchmarkBuildForwardIndex(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		stash := fillStash(rng)
		b.StartTimer()
		stash.BuildForwardIndex()
	}
}

func BenchmarkBuildIndexPair(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		stash := fillStash(rng)
		b.StartTimer()
		stash.BuildIndexPair()
	}
}

func BenchmarkForEach(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	idx := fillStash(rng).BuildForwardIndex()

	b.ReportAllocs()
	b.ResetTimer()
	var sink osm.UnsignedObjectID
	for i := 0; i < b.N; i++ {
		idx.ForEach(osm.UnsignedObjectID(i%(benchEdges/4)+1), func(v osm.UnsignedObjectID) {
			sink = v
		})
	}
	_ = sink
}
