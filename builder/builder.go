// SPDX-License-Identifier: MIT
package builder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/vamana/graph"
	"github.com/katalvlaran/vamana/neighbors"
	"github.com/katalvlaran/vamana/pqueue"
	"github.com/katalvlaran/vamana/search"
)

// Builder constructs a graph.Graph by adding nodes concurrently.
type Builder struct {
	cfg    Config
	g      *graph.Graph
	scorer Scorer
	inProg *insertionsInProgress
	sem    *semaphore.Weighted
}

// New returns a Builder writing into g, scoring candidates via scorer.
func New(g *graph.Graph, scorer Scorer, cfg Config) *Builder {
	b := &Builder{cfg: cfg, g: g, scorer: scorer, inProg: newInsertionsInProgress()}
	if cfg.MaxInFlight > 0 {
		b.sem = semaphore.NewWeighted(int64(cfg.MaxInFlight))
	}
	return b
}

// AddGraphNode runs the full insertion sequence for ord.
func (b *Builder) AddGraphNode(ord int32) {
	b.g.AddNode(ord)
	b.inProg.Add(ord)
	defer b.inProg.Remove(ord)

	if _, hasEntry := b.g.Entry(); !hasEntry {
		b.g.MarkComplete(ord)
		return
	}

	view := b.g.View()
	scoreFn := func(other int32) float32 { return b.scorer.Score(ord, other) }
	result, _ := search.Search(view, scoreFn, b.cfg.BeamWidth, nil, int(^uint(0)>>1))

	natural := toEntries(result.Nodes)

	_, snapOrds := b.inProg.Snapshot()
	concurrent := make([]neighbors.Entry, 0, len(snapOrds))
	for _, other := range snapOrds {
		if other == ord {
			continue
		}
		concurrent = append(concurrent, neighbors.Entry{Node: other, Score: b.scorer.Score(ord, other)})
	}
	sortDescendingEntries(concurrent)

	if b.sem != nil {
		_ = b.sem.Acquire(context.Background(), 1)
		defer b.sem.Release(1)
	}

	sim := func(a, c int32) float32 { return b.scorer.Score(a, c) }
	ns := b.g.NeighborSet(ord)
	ns.InsertDiverse(natural, concurrent, sim)

	for _, e := range ns.Snapshot() {
		target := b.g.NeighborSet(e.Node)
		if target == nil {
			continue
		}
		target.Insert(ord, e.Score, b.cfg.NeighborOverflow, sim)
	}

	b.g.MarkComplete(ord)
}

// Build runs AddGraphNode for ordinals 0..n-1 concurrently, then cleans up
// every node's neighbor set to enforce the final max-degree.
func (b *Builder) Build(n int) error {
	workers := b.cfg.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for ord := int32(0); ord < int32(n); ord++ {
		ord := ord
		g.Go(func() error {
			b.AddGraphNode(ord)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sim := func(a, c int32) float32 { return b.scorer.Score(a, c) }
	for ord := int32(0); ord < int32(n); ord++ {
		if set := b.g.NeighborSet(ord); set != nil {
			set.Cleanup(sim)
		}
	}
	return nil
}

func toEntries(nodes []pqueue.Entry) []neighbors.Entry {
	out := make([]neighbors.Entry, len(nodes))
	for i, e := range nodes {
		out[i] = neighbors.Entry{Node: e.Node, Score: e.Score}
	}
	return out
}

func sortDescendingEntries(entries []neighbors.Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Score > entries[j-1].Score; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
