// SPDX-License-Identifier: MIT
// Package nvq implements Non-uniform Vector Quantization: per-vector,
// per-subvector scalar quantization through a fitted logistic warp with a
// learned growth rate, packed into 4- or 8-bit codes.
//
// Unlike pq, which trains one shared codebook ahead of time, nvq fits its
// warp parameters independently for every encoded vector: each subvector
// carries its own {minValue, maxValue, growthRate, midpoint} alongside its
// packed bytes.
package nvq
