// SPDX-License-Identifier: MIT
package neighbors

import "sync/atomic"

// Entry is one (neighbor ordinal, score) pair. Scores are "higher is
// better".
type Entry struct {
	Node  int32
	Score float32
}

// SimilarityFunc scores candidate node b as seen from node a; used by
// diversity selection and max-degree enforcement to compare two neighbors
// rather than a neighbor against the owner.
type SimilarityFunc func(a, b int32) float32

// Set is a copy-on-write neighbor list for one graph node: an immutable,
// descending-by-score array of Entry, replaced atomically on every
// mutation. maxDegree and alphaMax are fixed for the set's lifetime.
type Set struct {
	maxDegree int
	alphaMax  float32
	ptr       atomic.Pointer[[]Entry]
}

// NewSet returns an empty neighbor set bounded at maxDegree, using alphaMax
// as the upper end of the diversity relaxation scan.
func NewSet(maxDegree int, alphaMax float32) *Set {
	s := &Set{maxDegree: maxDegree, alphaMax: alphaMax}
	empty := []Entry{}
	s.ptr.Store(&empty)
	return s
}

// Snapshot returns a stable, point-in-time view of the current neighbor
// list. The caller must not mutate the returned slice.
func (s *Set) Snapshot() []Entry {
	return *s.ptr.Load()
}

// Len reports the current neighbor count.
func (s *Set) Len() int {
	return len(*s.ptr.Load())
}

// Insert performs a copy-on-write insertion of (n, score) preserving
// descending order, skipping if n is already present. If sim is non-nil and
// the resulting length exceeds overflow*maxDegree, enforceMaxDegree trims it
// using sim; with a nil sim the list is never trimmed here.
// Returns true if the set's contents changed.
func (s *Set) Insert(n int32, score float32, overflow float32, sim SimilarityFunc) bool {
	for {
		old := s.ptr.Load()
		updated, changed := sortedInsert(*old, n, score)
		if !changed {
			return false
		}

		if sim != nil && float32(len(updated)) > overflow*float32(s.maxDegree) {
			updated = enforceMaxDegree(updated, s.maxDegree, s.alphaMax, sim)
		}

		if s.ptr.CompareAndSwap(old, &updated) {
			return true
		}
	}
}

// sortedInsert returns a new slice with (n, score) inserted in descending
// score order, or the original slice unchanged (changed=false) if n is
// already present.
func sortedInsert(current []Entry, n int32, score float32) ([]Entry, bool) {
	for _, e := range current {
		if e.Node == n {
			return current, false
		}
	}

	pos := 0
	for pos < len(current) && current[pos].Score >= score {
		pos++
	}

	out := make([]Entry, 0, len(current)+1)
	out = append(out, current[:pos]...)
	out = append(out, Entry{Node: n, Score: score})
	out = append(out, current[pos:]...)
	return out, true
}

// InsertDiverse merges the current list with natural and concurrent
// candidate lists, runs α-relaxed RNG diversity selection, and installs
// the result.
func (s *Set) InsertDiverse(natural, concurrent []Entry, sim SimilarityFunc) {
	for {
		old := s.ptr.Load()
		merged := mergeDescending(*old, natural, concurrent)
		selected := diversitySelect(merged, s.maxDegree, s.alphaMax, sim)
		if s.ptr.CompareAndSwap(old, &selected) {
			return
		}
	}
}

// Backlink installs (owner, score) into every neighbor m currently in s's
// list, via lookup(m).Insert.
func (s *Set) Backlink(owner int32, lookup func(m int32) *Set, overflow float32, sim SimilarityFunc) {
	for _, e := range s.Snapshot() {
		target := lookup(e.Node)
		if target == nil {
			continue
		}
		target.Insert(owner, e.Score, overflow, sim)
	}
}

// Cleanup enforces maxDegree without further diversity pruning beyond
// "remove least diverse".
func (s *Set) Cleanup(sim SimilarityFunc) {
	for {
		old := s.ptr.Load()
		if len(*old) <= s.maxDegree {
			return
		}
		trimmed := enforceMaxDegree(*old, s.maxDegree, s.alphaMax, sim)
		if s.ptr.CompareAndSwap(old, &trimmed) {
			return
		}
	}
}

// mergeDescending merges any number of already-descending-sorted slices
// into one descending slice, deduplicating by node (the first occurrence in
// argument order wins, whatever its score).
func mergeDescending(lists ...[]Entry) []Entry {
	seen := make(map[int32]bool)
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]Entry, 0, total)
	for _, l := range lists {
		for _, e := range l {
			if seen[e.Node] {
				continue
			}
			seen[e.Node] = true
			out = append(out, e)
		}
	}
	sortDescending(out)
	return out
}

func sortDescending(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Score > entries[j-1].Score; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
