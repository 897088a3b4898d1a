// SPDX-License-Identifier: MIT
// Package pqueue implements the packed 64-bit long-heap that backs the
// graph searcher's candidate/result frontiers: each entry packs (score, node) into one uint64 as
// (sortableScoreBits << 32) | uint32(node), so ordering on the 64-bit key
// orders first by score and then breaks ties by node.
//
// Two flavours share the same NodeQueue wrapper: Bounded (capped at K; a
// new insert beyond capacity either replaces the head when better, or is
// discarded) and Growable (unbounded, grows via normal Go slice append,
// doubling amortised).
package pqueue
