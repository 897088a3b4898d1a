// SPDX-License-Identifier: MIT
package graph

import (
	"sync/atomic"

	"github.com/katalvlaran/vamana/neighbors"
)

const noEntry int32 = -1

// Graph is the on-heap Vamana proximity graph: a concurrent ordinal to
// neighbor-set mapping, an atomically-set entry point, and a completion
// tracker.
type Graph struct {
	maxDegree int
	alphaMax  float32

	nodes completionAwareNodes
	entry atomic.Int32
	clock *completionTracker
}

type completionAwareNodes struct {
	*nodeMap
}

// New returns an empty Graph bounded at maxDegree neighbors per node, with
// diversity relaxation scanning up to alphaMax.
func New(maxDegree int, alphaMax float32) *Graph {
	g := &Graph{
		maxDegree: maxDegree,
		alphaMax:  alphaMax,
		nodes:     completionAwareNodes{newNodeMap()},
		clock:     newCompletionTracker(1024),
	}
	g.entry.Store(noEntry)
	return g
}

// AddNode inserts an empty neighbor set for ord. Idempotent only if ord is
// not already present; the caller is responsible for not double-adding.
func (g *Graph) AddNode(ord int32) {
	g.nodes.PutIfAbsent(ord, neighbors.NewSet(g.maxDegree, g.alphaMax))
}

// HasNode reports whether ord has been added.
func (g *Graph) HasNode(ord int32) bool {
	return g.nodes.Has(ord)
}

// NeighborSet returns ord's neighbor set, or nil if ord is absent.
func (g *Graph) NeighborSet(ord int32) *neighbors.Set {
	return g.nodes.Get(ord)
}

// Len returns the number of nodes added so far.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// MaxDegree returns the configured maximum neighbor-list length.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// AlphaMax returns the configured diversity-relaxation ceiling.
func (g *Graph) AlphaMax() float32 { return g.alphaMax }

// MarkComplete records ord's completion; if the entry point is unset, it is
// atomically set to ord.
func (g *Graph) MarkComplete(ord int32) {
	g.clock.MarkComplete(ord)
	g.entry.CompareAndSwap(noEntry, ord)
}

// Entry returns the graph's entry ordinal, or (0, false) if none has
// completed yet.
func (g *Graph) Entry() (int32, bool) {
	e := g.entry.Load()
	if e == noEntry {
		return 0, false
	}
	return e, true
}

// View returns a snapshot bound to the current logical clock: traversals
// through it only observe nodes completed strictly before the captured
// clock.
func (g *Graph) View() *View {
	return &View{g: g, clock: g.clock.Clock()}
}

// View is a point-in-time, snapshot-isolated read handle on a Graph.
type View struct {
	g     *Graph
	clock int64
}

// Entry returns the graph's current entry ordinal, exactly as Graph.Entry
// does; it is not captured at view creation. The entry point never changes
// once set, so for any view created after the first completion this is the
// entry that existed when the view was created.
func (v *View) Entry() (int32, bool) {
	return v.g.Entry()
}

// Neighbors returns n's neighbor entries visible to this view: those whose
// neighbor node completed strictly before the view's clock. n itself must be
// visible to the caller (the caller only calls Neighbors on nodes it has
// already visited via a visible path).
func (v *View) Neighbors(n int32) []neighbors.Entry {
	set := v.g.NeighborSet(n)
	if set == nil {
		return nil
	}
	snap := set.Snapshot()
	out := make([]neighbors.Entry, 0, len(snap))
	for _, e := range snap {
		if v.g.clock.CompletedAt(e.Node) < v.clock {
			out = append(out, e)
		}
	}
	return out
}

// Visible reports whether ord completed strictly before this view's clock.
func (v *View) Visible(ord int32) bool {
	return v.g.clock.CompletedAt(ord) < v.clock
}
