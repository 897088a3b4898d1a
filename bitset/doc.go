// SPDX-License-Identifier: MIT
// Package bitset provides three dense bit-set variants sharing a common read
// contract (Get, Len, Cardinality, NextSetBit, PrevSetBit): Fixed
// (single-threaded, fixed length), Growable (single-threaded, resizes on
// Set), and Atomic (concurrent-safe via lock-free CAS per word).
//
// Words are packed 64-bit, least-significant-bit-first within a word,
// matching TomTonic-multimap/bitfield.go's fixed-bitfield layout generalised
// to an arbitrary number of 64-bit words.
package bitset

// NoMore is the sentinel returned by NextSetBit/PrevSetBit when no set bit
// satisfies the query. It is distinct from any valid bit index.
const NoMore = -1
