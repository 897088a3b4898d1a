// SPDX-License-Identifier: MIT
package vector

import (
	"sync"

	"github.com/katalvlaran/vamana/similarity"
)

// KernelProvider exposes the similarity kernels behind an interface so a
// process can install a vectorised implementation at startup. Only Score
// and Provider() dispatch through the installed provider; the package-level
// DotProduct, SquaredL2 and CosineSimilarity functions do not. This module
// ships only ScalarProvider.
type KernelProvider interface {
	DotProduct(a, b []float32) (float32, error)
	SquaredL2(a, b []float32) (float32, error)
	CosineSimilarity(a, b []float32) (float32, error)
	// Score returns a "higher is better" similarity under kind.
	Score(kind similarity.Kind, a, b []float32) (float32, error)
}

// ScalarProvider is the pure-Go reference KernelProvider.
type ScalarProvider struct{}

func (ScalarProvider) DotProduct(a, b []float32) (float32, error)        { return DotProduct(a, b) }
func (ScalarProvider) SquaredL2(a, b []float32) (float32, error)         { return SquaredL2(a, b) }
func (ScalarProvider) CosineSimilarity(a, b []float32) (float32, error)  { return CosineSimilarity(a, b) }
func (s ScalarProvider) Score(kind similarity.Kind, a, b []float32) (float32, error) {
	switch kind {
	case similarity.DotProduct:
		return s.DotProduct(a, b)
	case similarity.Euclidean:
		return EuclideanSimilarity(a, b)
	case similarity.Cosine:
		return s.CosineSimilarity(a, b)
	default:
		return 0, ErrLengthMismatch
	}
}

var (
	providerOnce sync.Once
	provider     KernelProvider = ScalarProvider{}
)

// SetProvider installs the process-wide KernelProvider. It must be called
// at most once, before any kernel is invoked; subsequent calls are no-ops.
func SetProvider(p KernelProvider) {
	providerOnce.Do(func() {
		provider = p
	})
}

// Provider returns the process-wide KernelProvider.
func Provider() KernelProvider {
	return provider
}

// Score is shorthand for Provider().Score(kind, a, b).
func Score(kind similarity.Kind, a, b []float32) (float32, error) {
	return provider.Score(kind, a, b)
}
