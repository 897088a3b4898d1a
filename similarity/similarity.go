// SPDX-License-Identifier: MIT
// Package similarity defines the wire-stable similarity-family enum shared by
// the vector kernels, PQ/NVQ scoring, and the graph search contract. Every
// score in this module is "higher is better".
package similarity

import "fmt"

// Kind selects the similarity family used to score a pair of vectors.
//
// The numeric values are wire-stable and MUST NOT be reordered: any
// persisted format that records a similarity kind stores these values
// directly. (The PQ and NVQ layouts in this module do not record one.)
type Kind int32

const (
	// DotProduct scores a and b by their inner product; higher is better.
	DotProduct Kind = 0
	// Euclidean scores a and b by 1/(1+squaredL2(a,b)); higher is better.
	Euclidean Kind = 1
	// Cosine scores a and b by cosine similarity; higher is better.
	Cosine Kind = 2
)

// String renders the similarity kind for logs and error messages.
func (k Kind) String() string {
	switch k {
	case DotProduct:
		return "DotProduct"
	case Euclidean:
		return "Euclidean"
	case Cosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

// Valid reports whether k is one of the three wire-stable similarity kinds.
func (k Kind) Valid() bool {
	return k == DotProduct || k == Euclidean || k == Cosine
}
