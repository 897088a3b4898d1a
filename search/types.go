// SPDX-License-Identifier: MIT
package search

import (
	"math"

	"github.com/katalvlaran/vamana/bitset"
	"github.com/katalvlaran/vamana/graph"
	"github.com/katalvlaran/vamana/pqueue"
)

// ScoreFunc scores a candidate ordinal against the search's fixed query.
type ScoreFunc func(ord int32) float32

// AcceptFunc filters which ordinals may enter the result set. A nil
// AcceptFunc accepts everything.
type AcceptFunc func(ord int32) bool

// Result is the outcome of a Search or Resume call.
type Result struct {
	Nodes        []pqueue.Entry
	VisitedCount int
	Incomplete   bool
}

// State carries the mutable traversal state needed to Resume a search
// without reseeding.
type State struct {
	view   *graph.View
	scoreFn ScoreFunc
	accept AcceptFunc

	visitLimit int
	visited    *bitset.Growable

	candidates *pqueue.NodeQueue // MaxHeap, growable
	results    *pqueue.NodeQueue // MinHeap, bounded at topK

	topK         int
	visitedCount int
	minAccepted  float32
	incomplete   bool
}

const negInf = float32(math.Inf(-1))
