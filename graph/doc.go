// SPDX-License-Identifier: MIT
// Package graph holds the on-heap Vamana graph index: a concurrent
// ordinal-to-neighbor-set mapping, an atomically-set entry point, and a
// completion tracker providing snapshot isolation for concurrent searches
// during construction.
package graph
