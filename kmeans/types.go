// SPDX-License-Identifier: MIT
package kmeans

// Options configures Cluster.
type Options struct {
	// Seed seeds the deterministic RNG used for k-means++ initialisation
	// and empty-cluster reseeding. Zero falls back to defaultSeed.
	Seed int64
	// AnisotropicThreshold enables the anisotropic variant when not equal
	// to Unweighted. Must lie in [0, 1).
	AnisotropicThreshold float32
}

// Option is a functional option for Cluster.
type Option func(*Options)

// WithSeed sets the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAnisotropicThreshold enables anisotropic k-means with threshold t in
// [0, 1). Panics if t is out of range.
func WithAnisotropicThreshold(t float32) Option {
	if t < 0 || t >= 1 {
		panic("kmeans: WithAnisotropicThreshold requires t in [0,1)")
	}
	return func(o *Options) { o.AnisotropicThreshold = t }
}

// DefaultOptions returns Options with anisotropic weighting disabled.
func DefaultOptions() Options {
	return Options{Seed: 0, AnisotropicThreshold: Unweighted}
}

// Result holds the outcome of Cluster.
type Result struct {
	// Centroids holds K centroids, each of the input's dimensionality.
	Centroids [][]float32
	// Assignments[i] is the centroid index assigned to points[i].
	Assignments []int
	// Iterations is the number of Lloyd iterations actually executed.
	Iterations int
}
