// SPDX-License-Identifier: MIT
package graph

import (
	"sync"

	"github.com/katalvlaran/vamana/neighbors"
)

const shardCount = 32

// nodeMap is a striped-bucket concurrent mapping from ordinal to neighbor
// set, permitting lock-free-ish gets (each get only contends with puts in
// its own shard) and concurrent puts across shards.
type nodeMap struct {
	shards [shardCount]nodeShard
}

type nodeShard struct {
	mu   sync.RWMutex
	data map[int32]*neighbors.Set
}

func newNodeMap() *nodeMap {
	nm := &nodeMap{}
	for i := range nm.shards {
		nm.shards[i].data = make(map[int32]*neighbors.Set)
	}
	return nm
}

func (nm *nodeMap) shardFor(ord int32) *nodeShard {
	return &nm.shards[uint32(ord)%shardCount]
}

// Get returns the neighbor set for ord, or nil if absent.
func (nm *nodeMap) Get(ord int32) *neighbors.Set {
	sh := nm.shardFor(ord)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.data[ord]
}

// PutIfAbsent inserts set for ord if not already present. Returns the
// resident set (either the new one or the one already there).
func (nm *nodeMap) PutIfAbsent(ord int32, set *neighbors.Set) *neighbors.Set {
	sh := nm.shardFor(ord)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.data[ord]; ok {
		return existing
	}
	sh.data[ord] = set
	return set
}

// Has reports whether ord is present.
func (nm *nodeMap) Has(ord int32) bool {
	sh := nm.shardFor(ord)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	_, ok := sh.data[ord]
	return ok
}

// Len returns the total node count across all shards.
func (nm *nodeMap) Len() int {
	total := 0
	for i := range nm.shards {
		nm.shards[i].mu.RLock()
		total += len(nm.shards[i].data)
		nm.shards[i].mu.RUnlock()
	}
	return total
}
