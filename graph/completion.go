// SPDX-License-Identifier: MIT
package graph

import (
	"math"
	"sync"
)

// infiniteCompletion marks a node as not yet completed; it is larger than
// any clock value a view could ever capture, so the view-visibility check
// `completedAt(n) < viewClock` correctly excludes it.
const infiniteCompletion = int64(math.MaxInt64)

// completionTracker is a growable array of logical completion timestamps
// plus a monotonically incrementing clock. markComplete
// reads-then-increments the clock and stores the prior value at the node's
// slot; a view captures clock() at creation time. Growth uses a
// reader-writer lock: readers use the lock's read side for optimistic
// validation, writers take the write side to double the array.
type completionTracker struct {
	mu     sync.RWMutex
	stamps []int64 // infiniteCompletion means "not yet complete"
	clock  int64
}

func newCompletionTracker(initialCapacity int) *completionTracker {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	stamps := make([]int64, initialCapacity)
	for i := range stamps {
		stamps[i] = infiniteCompletion
	}
	return &completionTracker{stamps: stamps}
}

// ensure grows stamps so ord is addressable, doubling capacity as needed.
func (t *completionTracker) ensure(ord int32) {
	t.mu.RLock()
	if int(ord) < len(t.stamps) {
		t.mu.RUnlock()
		return
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if int(ord) < len(t.stamps) {
		return
	}
	newLen := len(t.stamps)
	if newLen == 0 {
		newLen = 1
	}
	for newLen <= int(ord) {
		newLen *= 2
	}
	grown := make([]int64, newLen)
	copy(grown, t.stamps)
	for i := len(t.stamps); i < newLen; i++ {
		grown[i] = infiniteCompletion
	}
	t.stamps = grown
}

// MarkComplete records ord's completion at the current clock value, then
// advances the clock. Returns the timestamp assigned.
func (t *completionTracker) MarkComplete(ord int32) int64 {
	t.ensure(ord)
	t.mu.Lock()
	defer t.mu.Unlock()
	stamp := t.clock
	t.clock++
	t.stamps[ord] = stamp
	return stamp
}

// CompletedAt returns ord's completion timestamp, or infiniteCompletion if
// it has not completed (or has never been observed).
func (t *completionTracker) CompletedAt(ord int32) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(ord) >= len(t.stamps) {
		return infiniteCompletion
	}
	return t.stamps[ord]
}

// Clock returns the current logical clock value, for binding a new view.
func (t *completionTracker) Clock() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.clock
}
