// SPDX-License-Identifier: MIT
package pq

import "github.com/katalvlaran/vamana/vector"

// Code is a compressed representation of one vector: one centroid index per
// subspace.
type Code []byte

// Encode compresses vec into a Code of length cb.M. When
// cb.Anisotropic() the coordinate-descent variant is used; otherwise each
// subspace residual is assigned to its nearest centroid independently.
func (cb *Codebook) Encode(vec []float32) (Code, error) {
	if len(vec) != cb.Dimension {
		return nil, ErrDimensionMismatch
	}

	residual := vec
	if cb.GlobalCentroid != nil {
		residual = make([]float32, cb.Dimension)
		_ = vector.Sub(residual, vec, cb.GlobalCentroid)
	}

	if cb.Anisotropic() {
		return cb.encodeAnisotropic(residual)
	}
	return cb.encodeUnweighted(residual)
}

// encodeUnweighted assigns each subspace independently to its nearest
// centroid by squared-L2 distance.
func (cb *Codebook) encodeUnweighted(residual []float32) (Code, error) {
	code := make(Code, cb.M)
	for m := 0; m < cb.M; m++ {
		sub := residual[cb.Offsets[m] : cb.Offsets[m]+cb.SubSizes[m]]
		code[m] = byte(nearestCentroid(sub, cb.Centroids[m]))
	}
	return code, nil
}

func nearestCentroid(sub []float32, centroids [][]float32) int {
	best, bestDist := 0, float32(-1)
	for k, c := range centroids {
		d, _ := vector.SquaredL2(sub, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// encodeAnisotropic runs a coordinate-descent swap optimization:
// initialise from the unweighted assignment, then repeatedly
// try swapping each subspace's code to reduce the anisotropic loss
//
//	h*parallelSum^2 + sum(perpendicular subspace errors)
//
// where parallelSum is the sum, over subspaces, of the reconstruction
// error's projection onto the direction of the residual (the vector after
// global centering, when the codebook has a global centroid), and h = (D-1)*T^2/(1-T^2) inflates the parallel-error weight
// relative to the perpendicular error, matching kmeans.anisotropicLoss.
func (cb *Codebook) encodeAnisotropic(residual []float32) (Code, error) {
	norm := vector.Norm(residual)
	direction := residual
	if norm > 0 {
		direction = make([]float32, len(residual))
		_ = vector.Scale(direction, residual, 1/norm)
	}

	code := make(Code, cb.M)
	initial, err := cb.encodeUnweighted(residual)
	if err != nil {
		return nil, err
	}
	copy(code, initial)

	t := cb.AnisotropicThreshold
	h := float32(cb.Dimension-1) * t * t / (1 - t*t)

	parallel := make([]float32, cb.M)
	perp := make([]float32, cb.M)
	for m := 0; m < cb.M; m++ {
		parallel[m], perp[m] = cb.subspaceComponents(residual, direction, m, int(code[m]))
	}
	parallelSum := vector.Sum(parallel)

	const maxPasses = 10
	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for m := 0; m < cb.M; m++ {
			bestK := int(code[m])
			bestCost := h*parallelSum*parallelSum + vector.Sum(perp)
			bestParallel, bestPerp := parallel[m], perp[m]

			for k := range cb.Centroids[m] {
				if k == int(code[m]) {
					continue
				}
				p, q := cb.subspaceComponents(residual, direction, m, k)
				candidateSum := parallelSum - parallel[m] + p
				candidatePerp := vector.Sum(perp) - perp[m] + q
				cost := h*candidateSum*candidateSum + candidatePerp
				if cost < bestCost {
					bestK, bestCost = k, cost
					bestParallel, bestPerp = p, q
				}
			}

			if bestK != int(code[m]) {
				parallelSum += bestParallel - parallel[m]
				parallel[m], perp[m] = bestParallel, bestPerp
				code[m] = byte(bestK)
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return code, nil
}

// subspaceComponents returns the parallel and perpendicular components of
// the reconstruction error for subspace m under candidate centroid k:
// parallel is the error's projection onto direction's slice for this
// subspace, perp is the squared residual error orthogonal to it.
func (cb *Codebook) subspaceComponents(residual, direction []float32, m, k int) (parallel, perp float32) {
	offset, size := cb.Offsets[m], cb.SubSizes[m]
	sub := residual[offset : offset+size]
	dir := direction[offset : offset+size]
	centroid := cb.Centroids[m][k]

	var errDotDir, errSq float32
	for i := 0; i < size; i++ {
		e := sub[i] - centroid[i]
		errSq += e * e
		errDotDir += e * dir[i]
	}
	parallel = errDotDir
	perp = errSq - errDotDir*errDotDir
	if perp < 0 {
		perp = 0
	}
	return parallel, perp
}

// Decode reconstructs an approximate vector from code.
func (cb *Codebook) Decode(code Code) ([]float32, error) {
	if len(code) != cb.M {
		return nil, ErrBadCode
	}
	out := make([]float32, cb.Dimension)
	for m := 0; m < cb.M; m++ {
		k := int(code[m])
		if k < 0 || k >= cb.K {
			return nil, ErrBadCode
		}
		copy(out[cb.Offsets[m]:cb.Offsets[m]+cb.SubSizes[m]], cb.Centroids[m][k])
	}
	if cb.GlobalCentroid != nil {
		_ = vector.Add(out, out, cb.GlobalCentroid)
	}
	return out, nil
}
