// SPDX-License-Identifier: MIT
package pq

import "github.com/katalvlaran/vamana/kmeans"

// Codebook holds the trained state of a Product Quantizer: M independent
// per-subspace codebooks of K centroids each, plus the subspace layout and
// optional global centroid.
type Codebook struct {
	// Dimension is the original, uncompressed vector length D.
	Dimension int
	// M is the number of subspaces.
	M int
	// SubSizes[m] is the width of subspace m; sum(SubSizes) == Dimension.
	SubSizes []int
	// Offsets[m] is the starting coordinate of subspace m in the original
	// vector; Offsets[m] == sum(SubSizes[:m]).
	Offsets []int
	// K is the number of centroids per subspace.
	K int
	// Centroids[m][k] is centroid k of subspace m, length SubSizes[m].
	Centroids [][][]float32
	// GlobalCentroid is the training-set mean subtracted from every vector
	// before encoding, or nil if global centering was not used.
	GlobalCentroid []float32
	// AnisotropicThreshold is kmeans.Unweighted unless anisotropic encoding
	// was requested at training time.
	AnisotropicThreshold float32
}

// Anisotropic reports whether this codebook was trained (and should be
// encoded) using the anisotropic variant.
func (cb *Codebook) Anisotropic() bool {
	return cb.AnisotropicThreshold != kmeans.Unweighted
}

// subspaceSizes splits dim into m subspaces, distributing the remainder
// dim%m to the first dim%m subspaces.
func subspaceSizes(dim, m int) []int {
	base := dim / m
	rem := dim % m
	sizes := make([]int, m)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

func subspaceOffsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	acc := 0
	for i, s := range sizes {
		offsets[i] = acc
		acc += s
	}
	return offsets
}

// Options configures Train.
type Options struct {
	K                    int
	Iterations           int
	AnisotropicThreshold float32
	GlobalCenter         bool
	Seed                 int64
	MaxTrainingSamples   int
	MaxWorkers           int
}

// Option is a functional option for Train.
type Option func(*Options)

// WithK sets the number of centroids per subspace (default 256).
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithIterations sets the Lloyd iteration count per subspace (default 6).
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithAnisotropicThreshold enables anisotropic per-subspace k-means and
// anisotropic encoding with threshold t in [0,1).
func WithAnisotropicThreshold(t float32) Option {
	if t < 0 || t >= 1 {
		panic("pq: WithAnisotropicThreshold requires t in [0,1)")
	}
	return func(o *Options) { o.AnisotropicThreshold = t }
}

// WithGlobalCentering enables subtracting the training-set mean from every
// vector before subspace k-means and encoding.
func WithGlobalCentering() Option { return func(o *Options) { o.GlobalCenter = true } }

// WithSeed sets the deterministic RNG seed used for subsampling and
// per-subspace k-means.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithMaxTrainingSamples overrides the default 128,000-vector subsample cap.
func WithMaxTrainingSamples(n int) Option { return func(o *Options) { o.MaxTrainingSamples = n } }

// WithMaxWorkers bounds the number of subspaces trained concurrently
// (default runtime.NumCPU()).
func WithMaxWorkers(n int) Option { return func(o *Options) { o.MaxWorkers = n } }

// DefaultOptions returns the standard Product Quantization defaults: K=256,
// 6 Lloyd iterations, no anisotropic weighting, no global centering,
// 128,000 training-sample cap.
func DefaultOptions() Options {
	return Options{
		K:                    256,
		Iterations:           6,
		AnisotropicThreshold: kmeans.Unweighted,
		MaxTrainingSamples:   128000,
	}
}
