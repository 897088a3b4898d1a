// SPDX-License-Identifier: MIT
package vamana

import (
	"github.com/katalvlaran/vamana/builder"
	"github.com/katalvlaran/vamana/similarity"
)

// Config bundles the build-time knobs exposed by Build, mirroring
// builder.Config plus the facade's own similarity/compressor choices.
type Config struct {
	Builder    builder.Config
	Similarity similarity.Kind
	Compressor Compressor
}

// DefaultConfig returns builder.DefaultConfig with dot-product similarity
// and no compressor.
func DefaultConfig() Config {
	return Config{
		Builder:    builder.DefaultConfig(),
		Similarity: similarity.DotProduct,
	}
}

// Option customizes a Config passed to Build.
type Option func(*Config)

// WithBuilderConfig overrides the graph-construction parameters.
func WithBuilderConfig(cfg builder.Config) Option {
	return func(c *Config) { c.Builder = cfg }
}

// WithSimilarity selects the similarity family used both to build the graph
// and to score uncompressed queries.
func WithSimilarity(kind similarity.Kind) Option {
	return func(c *Config) { c.Similarity = kind }
}

// WithCompressor attaches a PQ/NVQ compressor; Build fits it against the
// vector source and Search uses it to score queries against stored codes.
func WithCompressor(comp Compressor) Option {
	return func(c *Config) { c.Compressor = comp }
}

// searchConfig holds the per-call knobs accepted by Index.Search.
type searchConfig struct {
	accept     func(ord int32) bool
	visitLimit int
}

func defaultSearchConfig() searchConfig {
	return searchConfig{visitLimit: int(^uint(0) >> 1)}
}

// SearchOption customizes one Index.Search call.
type SearchOption func(*searchConfig)

// WithAccept restricts results to ordinals for which fn returns true,
// implementing "accept-bits filter" scenario.
func WithAccept(fn func(ord int32) bool) SearchOption {
	return func(c *searchConfig) { c.accept = fn }
}

// WithVisitLimit caps the number of nodes visited before the search gives
// up and marks its result incomplete.
func WithVisitLimit(n int) SearchOption {
	return func(c *searchConfig) { c.visitLimit = n }
}
