// SPDX-License-Identifier: MIT
package vamana

import (
	"context"

	"github.com/katalvlaran/vamana/builder"
	"github.com/katalvlaran/vamana/graph"
	"github.com/katalvlaran/vamana/search"
	"github.com/katalvlaran/vamana/similarity"
	"github.com/katalvlaran/vamana/vector"
)

// Index is a built proximity graph over a vector source, with an optional
// compressor for queries that should not touch raw vectors.
type Index struct {
	vectors    vector.RandomAccessVectors
	kind       similarity.Kind
	graph      *graph.Graph
	compressor Compressor
	codes      []any
}

// rawScorer scores ordinals by running the configured similarity kernel
// directly against the vector source; used both to build the graph and,
// when no compressor is configured, to answer queries.
type rawScorer struct {
	vectors vector.RandomAccessVectors
	kind    similarity.Kind
}

func (s rawScorer) score(a, b []float32) float32 {
	var v float32
	var err error
	switch s.kind {
	case similarity.Euclidean:
		v, err = vector.EuclideanSimilarity(a, b)
	case similarity.Cosine:
		v, err = vector.CosineSimilarity(a, b)
	default:
		v, err = vector.DotProduct(a, b)
	}
	if err != nil {
		return 0
	}
	return v
}

func (s rawScorer) Score(a, b int32) float32 {
	return s.score(s.vectors.Get(int(a)), s.vectors.Get(int(b)))
}

// Build trains an optional compressor, constructs the proximity graph over
// vectors via package builder, and returns a ready-to-query Index.
func Build(ctx context.Context, vectors vector.RandomAccessVectors, opts ...Option) (*Index, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := vectors.Size()
	if n == 0 {
		return nil, ErrEmptySource
	}

	idx := &Index{vectors: vectors, kind: cfg.Similarity, compressor: cfg.Compressor}

	if cfg.Compressor != nil {
		rows := make([][]float32, n)
		for i := 0; i < n; i++ {
			rows[i] = vectors.Get(i)
		}
		if err := cfg.Compressor.Fit(rows); err != nil {
			return nil, err
		}
		idx.codes = make([]any, n)
		for i := 0; i < n; i++ {
			code, err := cfg.Compressor.Encode(rows[i])
			if err != nil {
				return nil, err
			}
			idx.codes[i] = code
		}
	}

	g := graph.New(cfg.Builder.MaxDegree, cfg.Builder.Alpha)
	scorer := rawScorer{vectors: vectors, kind: cfg.Similarity}
	b := builder.New(g, scorer, cfg.Builder)

	if err := buildWithContext(ctx, b, n); err != nil {
		return nil, err
	}

	idx.graph = g
	return idx, nil
}

func buildWithContext(ctx context.Context, b *builder.Builder, n int) error {
	done := make(chan error, 1)
	go func() { done <- b.Build(n) }()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Search runs best-first traversal for the topK highest-scoring vectors
// against query, using the compressor's ADC/decode kernels when one is
// configured, or raw vector kernels otherwise.
func (idx *Index) Search(ctx context.Context, query []float32, topK int, opts ...SearchOption) (*search.Result, error) {
	if idx.vectors.Dimension() != 0 && len(query) != idx.vectors.Dimension() {
		return nil, ErrDimensionMismatch
	}

	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var scoreFn search.ScoreFunc
	if idx.compressor != nil {
		fn, err := idx.compressor.ScoreFunction(query, idx.kind, idx.codes)
		if err != nil {
			return nil, err
		}
		scoreFn = fn
	} else {
		s := rawScorer{vectors: idx.vectors, kind: idx.kind}
		scoreFn = func(ord int32) float32 { return s.score(query, idx.vectors.Get(int(ord))) }
	}

	view := idx.graph.View()
	result, _ := search.Search(view, scoreFn, topK, cfg.accept, cfg.visitLimit)

	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
		return result, nil
	}
}
