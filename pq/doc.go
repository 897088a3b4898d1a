// SPDX-License-Identifier: MIT
// Package pq implements Product Quantization: per-subspace k-means
// codebooks, optional global centering, anisotropic encoding, and fast
// asymmetric distance computation (ADC) against compressed codes.
//
// Training fans per-subspace k-means out over a bounded worker pool via
// golang.org/x/sync/errgroup.
package pq
