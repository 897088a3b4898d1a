// SPDX-License-Identifier: MIT
package kmeans

import (
	"math/rand"

	"github.com/katalvlaran/vamana/vector"
)

// earlyStopFraction is the fraction of points below which a round's
// reassignment count triggers early termination.
const earlyStopFraction = 0.01

// Cluster runs k-means++ initialisation followed by up to iterations Lloyd
// rounds over points.
func Cluster(points [][]float32, k, iterations int, opts ...Option) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	if k <= 0 {
		return nil, ErrBadK
	}
	if k > len(points) {
		return nil, ErrTooFewPoints
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rngFromSeed(cfg.Seed)
	dim := len(points[0])

	centroids := initPlusPlus(points, k, rng)
	assignments := make([]int, len(points))

	dist := squaredL2Dist
	if cfg.AnisotropicThreshold != Unweighted {
		h := anisotropicMultiplier(dim, cfg.AnisotropicThreshold)
		dist = func(p, c []float32) float32 { return anisotropicLoss(p, c, h) }
	}

	iter := 0
	for ; iter < iterations; iter++ {
		changed := assignStep(points, centroids, assignments, dist)
		updateStep(points, centroids, assignments, rng)

		if float64(changed)/float64(len(points)) < earlyStopFraction {
			iter++
			break
		}
	}

	return &Result{Centroids: centroids, Assignments: assignments, Iterations: iter}, nil
}

// squaredL2Dist adapts vector.SquaredL2 to the distance-function shape used
// by assignStep; lengths are already validated equal by the caller.
func squaredL2Dist(p, c []float32) float32 {
	d, _ := vector.SquaredL2(p, c)
	return d
}

// initPlusPlus implements k-means++ seeding: the first centroid is chosen
// uniformly at random; each subsequent centroid is chosen with probability
// proportional to its squared distance to the nearest already-chosen
// centroid. If the cumulative-distance wheel underflows (all distances
// zero), fall back to a uniform random pick.
func initPlusPlus(points [][]float32, k int, rng *rand.Rand) [][]float32 {
	n := len(points)
	centroids := make([][]float32, 0, k)
	first := rng.Intn(n)
	centroids = append(centroids, cloneVec(points[first]))

	nearestSq := make([]float32, n)
	for i, p := range points {
		d, _ := vector.SquaredL2(p, centroids[0])
		nearestSq[i] = d
	}

	for len(centroids) < k {
		var total float64
		for _, d := range nearestSq {
			total += float64(d)
		}

		var next int
		if total <= 0 {
			next = rng.Intn(n)
		} else {
			target := rng.Float64() * total
			var cum float64
			next = n - 1
			for i, d := range nearestSq {
				cum += float64(d)
				if cum >= target {
					next = i
					break
				}
			}
		}

		centroids = append(centroids, cloneVec(points[next]))
		newCentroid := centroids[len(centroids)-1]
		for i, p := range points {
			d, _ := vector.SquaredL2(p, newCentroid)
			if d < nearestSq[i] {
				nearestSq[i] = d
			}
		}
	}

	return centroids
}

// assignStep assigns each point to its nearest centroid under dist,
// returning the number of points whose assignment changed.
func assignStep(points [][]float32, centroids [][]float32, assignments []int, dist func(p, c []float32) float32) int {
	changed := 0
	for i, p := range points {
		best := 0
		bestDist := dist(p, centroids[0])
		for c := 1; c < len(centroids); c++ {
			d := dist(p, centroids[c])
			if d < bestDist {
				bestDist = d
				best = c
			}
		}
		if assignments[i] != best {
			changed++
		}
		assignments[i] = best
	}
	return changed
}

// updateStep recomputes each centroid as the mean of its assigned points.
// An empty cluster is reinitialised to a uniformly random point.
func updateStep(points [][]float32, centroids [][]float32, assignments []int, rng *rand.Rand) {
	dim := len(centroids[0])
	sums := make([][]float32, len(centroids))
	counts := make([]int, len(centroids))
	for i := range sums {
		sums[i] = make([]float32, dim)
	}

	for i, p := range points {
		c := assignments[i]
		counts[c]++
		for d := 0; d < dim; d++ {
			sums[c][d] += p[d]
		}
	}

	for c := range centroids {
		if counts[c] == 0 {
			copy(centroids[c], points[rng.Intn(len(points))])
			continue
		}
		inv := 1 / float32(counts[c])
		for d := 0; d < dim; d++ {
			centroids[c][d] = sums[c][d] * inv
		}
	}
}

func cloneVec(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}

// anisotropicMultiplier computes h = (D-1)*T^2/(1-T^2).
func anisotropicMultiplier(dim int, threshold float32) float32 {
	t2 := threshold * threshold
	return float32(dim-1) * t2 / (1 - t2)
}

// anisotropicLoss computes h*||r_parallel||^2 + ||r_perp||^2 where r = p-c
// is decomposed relative to the (assumed unit-norm) direction of p.
func anisotropicLoss(p, c []float32, h float32) float32 {
	var rDotP, rSq float32
	for i := range p {
		r := p[i] - c[i]
		rDotP += r * p[i]
		rSq += r * r
	}
	parallelSq := rDotP * rDotP
	perpSq := rSq - parallelSq
	if perpSq < 0 {
		perpSq = 0
	}
	return h*parallelSq + perpSq
}
