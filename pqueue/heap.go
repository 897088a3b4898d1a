// SPDX-License-Identifier: MIT
package pqueue

import "container/heap"

// Order selects whether a NodeQueue's head is the minimum-score or
// maximum-score entry.
type Order int

const (
	// MinHeap keeps the smallest score at the head.
	MinHeap Order = iota
	// MaxHeap keeps the largest score at the head.
	MaxHeap
)

// longHeap is a container/heap.Interface over packed (score,node) keys.
type longHeap struct {
	data  []uint64
	order Order
}

func (h *longHeap) Len() int { return len(h.data) }

func (h *longHeap) Less(i, j int) bool {
	if h.order == MinHeap {
		return h.data[i] < h.data[j]
	}
	return h.data[i] > h.data[j]
}

func (h *longHeap) Swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *longHeap) Push(x any) { h.data = append(h.data, x.(uint64)) }

func (h *longHeap) Pop() any {
	old := h.data
	n := len(old)
	v := old[n-1]
	h.data = old[:n-1]
	return v
}

// better reports whether candidate key would be an improvement over the
// current head key of a heap with the given order — i.e. whether inserting
// candidate and evicting head would leave a "more extreme" retained set.
func better(order Order, candidate, head uint64) bool {
	if order == MinHeap {
		return candidate > head
	}
	return candidate < head
}
