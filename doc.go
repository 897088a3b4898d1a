// SPDX-License-Identifier: MIT
// Package vamana glues the graph builder and searcher to a vector source
// and an optional compressor, giving callers a single entry point instead
// of wiring graph, builder, search, pq and nvq by hand.
//
// Build indexes a RandomAccessVectors source into a proximity graph, then
// Index.Search runs best-first traversal against either raw vector kernels
// or a PQ/NVQ asymmetric distance table, depending on how the index was
// configured.
//
//	idx, err := vamana.Build(ctx, source, vamana.WithSimilarity(similarity.Euclidean))
//	result, err := idx.Search(ctx, query, 10)
package vamana
