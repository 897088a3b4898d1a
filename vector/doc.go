// SPDX-License-Identifier: MIT
// Package vector provides the fixed-width floating-point kernels that every
// other package in this module builds on: dot product, squared Euclidean
// distance, cosine similarity, element-wise arithmetic, and reductions.
//
// Kernels take plain slices, so callers pass sub-vectors (PQ/NVQ subspaces)
// as re-slices without allocating; Slice validates a logical range
// (vec, offset, length) and returns it without copying. Results are
// guaranteed finite for finite inputs; cosine similarity of a zero vector
// fails with vamanaerr.InvalidArgument rather than returning NaN.
//
// Implementations here are the scalar reference kernels. A KernelProvider
// seam lets a caller install a vectorised implementation via SetProvider;
// only Score and Provider() dispatch through it, while the package-level
// kernel functions (and every other package, which calls them directly)
// always run the scalar code. This module ships only the scalar provider.
package vector
