// SPDX-License-Identifier: MIT
// Package neighbors implements the concurrent, diversity-pruned neighbor
// set at the core of the graph index: a copy-on-write sorted array of
// (ordinal, score) pairs mutated atomically.
package neighbors
