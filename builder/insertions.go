// SPDX-License-Identifier: MIT
package builder

import (
	"sync"

	set3 "github.com/TomTonic/Set3"
)

// insertionsInProgress tracks ordinals whose addGraphNode call has started
// but not yet completed. The *set3.Set3 is the actual membership store
// (Add/Remove/Contains go straight to it); order is kept alongside only
// because Set3 offers no enumeration, and concurrent-candidate scoring
// needs to walk every in-progress ordinal.
type insertionsInProgress struct {
	mu    sync.Mutex
	set   *set3.Set3[int32]
	order []int32
}

func newInsertionsInProgress() *insertionsInProgress {
	return &insertionsInProgress{set: set3.Empty[int32]()}
}

func (ip *insertionsInProgress) Add(ord int32) {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	if ip.set.Contains(ord) {
		return
	}
	ip.set.Add(ord)
	ip.order = append(ip.order, ord)
}

func (ip *insertionsInProgress) Remove(ord int32) {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	if !ip.set.Contains(ord) {
		return
	}
	ip.set.Remove(ord)
	for i, o := range ip.order {
		if o == ord {
			ip.order[i] = ip.order[len(ip.order)-1]
			ip.order = ip.order[:len(ip.order)-1]
			break
		}
	}
}

// Snapshot returns a point-in-time copy of the in-progress set, both as a
// cloned *set3.Set3 (for membership queries) and as an ordinal slice (for
// enumeration during concurrent-candidate scoring).
func (ip *insertionsInProgress) Snapshot() (*set3.Set3[int32], []int32) {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	ords := make([]int32, len(ip.order))
	copy(ords, ip.order)
	return ip.set.Clone(), ords
}
