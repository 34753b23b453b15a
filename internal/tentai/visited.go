// source: internal/tree234, adapted here as an ordered set of Zobrist
// hashes, sharded into a mutex-guarded table for the concurrent driver.

package tentai

import (
	"sync"

	"github.com/go-tentai/tentai/internal/tree234"
)

func hashCmp(a, b *uint64) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

// VisitedSet is a set of 64-bit state hashes with test-and-set insertion,
// backed by a [tree234.Tree234] rather than a map. Hash collisions are
// accepted as a performance-versus-completeness trade: a colliding state
// is treated as already seen and its branch is pruned.
type VisitedSet struct {
	tree *tree234.Tree234[uint64]
}

func NewVisitedSet() *VisitedSet {
	return &VisitedSet{tree: tree234.NewTree234(hashCmp)}
}

// Insert reports whether hash was newly added (true) or was already
// present (false).
func (s *VisitedSet) Insert(hash uint64) bool {
	h := hash
	return s.tree.Add(&h) == &h
}

func (s *VisitedSet) Len() int {
	return s.tree.Count()
}

const shardCount = 1024

// ShardedSet is the concurrency-safe visited set used by the parallel
// solver driver: one mutex-guarded VisitedSet per shard, sharded by the
// hash itself, so lock contention stays low even with many workers.
type ShardedSet struct {
	shards [shardCount]struct {
		mu sync.Mutex
		vs *VisitedSet
	}
}

func NewShardedSet() *ShardedSet {
	ss := &ShardedSet{}
	for i := range ss.shards {
		ss.shards[i].vs = NewVisitedSet()
	}
	return ss
}

// Insert is Insert, safe for concurrent use across goroutines.
func (ss *ShardedSet) Insert(hash uint64) bool {
	shard := &ss.shards[hash%shardCount]
	shard.mu.Lock()
	defer shard.mu.Unlock()
	return shard.vs.Insert(hash)
}
