// SPDX-License-Identifier: MIT
package pq

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vamana/kmeans"
)

// Train fits a Codebook over vectors, splitting each vector into m
// subspaces and running independent k-means per subspace.
func Train(vectors [][]float32, m int, opts ...Option) (*Codebook, error) {
	if len(vectors) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	dim := len(vectors[0])
	if m <= 0 || m > dim {
		return nil, ErrTooManySubspaces
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	training := subsample(vectors, cfg.MaxTrainingSamples, rng)

	if cfg.K > len(training) {
		return nil, ErrTooFewTrainingVectors
	}

	var globalCentroid []float32
	if cfg.GlobalCenter {
		globalCentroid = meanVector(training, dim)
		centerInPlace(training, globalCentroid)
	}

	sizes := subspaceSizes(dim, m)
	offsets := subspaceOffsets(sizes)

	centroids := make([][][]float32, m)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.MaxWorkers)

	for sub := 0; sub < m; sub++ {
		sub := sub
		g.Go(func() error {
			slice := extractSubspace(training, offsets[sub], sizes[sub])

			var kOpts []kmeans.Option
			kOpts = append(kOpts, kmeans.WithSeed(cfg.Seed+int64(sub)+1))
			if cfg.AnisotropicThreshold != kmeans.Unweighted {
				kOpts = append(kOpts, kmeans.WithAnisotropicThreshold(cfg.AnisotropicThreshold))
			}

			result, err := kmeans.Cluster(slice, cfg.K, cfg.Iterations, kOpts...)
			if err != nil {
				return err
			}
			centroids[sub] = result.Centroids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Codebook{
		Dimension:            dim,
		M:                    m,
		SubSizes:             sizes,
		Offsets:              offsets,
		K:                    cfg.K,
		Centroids:            centroids,
		GlobalCentroid:       globalCentroid,
		AnisotropicThreshold: cfg.AnisotropicThreshold,
	}, nil
}

// subsample performs Bernoulli sampling with probability min(1, max/N).
// The returned vectors are independent copies so later in-place centering
// does not mutate the caller's data.
func subsample(vectors [][]float32, max int, rng *rand.Rand) [][]float32 {
	n := len(vectors)
	if max <= 0 || max >= n {
		out := make([][]float32, n)
		for i, v := range vectors {
			out[i] = cloneVec(v)
		}
		return out
	}

	p := float64(max) / float64(n)
	out := make([][]float32, 0, max)
	for _, v := range vectors {
		if rng.Float64() < p {
			out = append(out, cloneVec(v))
		}
	}
	if len(out) == 0 {
		out = append(out, cloneVec(vectors[rng.Intn(n)]))
	}
	return out
}

func cloneVec(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}

func meanVector(vectors [][]float32, dim int) []float32 {
	mean := make([]float32, dim)
	for _, v := range vectors {
		for d := 0; d < dim; d++ {
			mean[d] += v[d]
		}
	}
	inv := 1 / float32(len(vectors))
	for d := range mean {
		mean[d] *= inv
	}
	return mean
}

func centerInPlace(vectors [][]float32, mean []float32) {
	for _, v := range vectors {
		for d := range v {
			v[d] -= mean[d]
		}
	}
}

func extractSubspace(vectors [][]float32, offset, size int) [][]float32 {
	out := make([][]float32, len(vectors))
	for i, v := range vectors {
		out[i] = v[offset : offset+size]
	}
	return out
}
