// SPDX-License-Identifier: MIT
package search

import (
	"github.com/katalvlaran/vamana/bitset"
	"github.com/katalvlaran/vamana/graph"
	"github.com/katalvlaran/vamana/pqueue"
)

// Search runs a best-first traversal of view starting from the graph's
// entry node. It returns the ranked result and a State
// handle that Resume can later continue from.
func Search(view *graph.View, scoreFn ScoreFunc, topK int, accept AcceptFunc, visitLimit int) (*Result, *State) {
	entry, ok := view.Entry()
	if !ok {
		return &Result{}, nil
	}

	st := &State{
		view:       view,
		scoreFn:    scoreFn,
		accept:     accept,
		visitLimit: visitLimit,
		visited:    bitset.NewGrowable(int(entry) + 1),
		candidates: pqueue.New(pqueue.MaxHeap),
		results:    pqueue.NewBounded(pqueue.MinHeap, topK),
		topK:       topK,
	}

	score := scoreFn(entry)
	st.visited.Set(int(entry))
	st.candidates.Push(entry, score)
	if accept == nil || accept(entry) {
		st.results.Push(entry, score)
	}
	st.refreshMinAccepted()

	st.run()
	return st.drain(), st
}

// Resume continues a prior Search/Resume from its saved State, widening the
// result budget by nAdditional and raising the visit limit to newLimit,
// without reseeding the traversal.
func Resume(st *State, nAdditional int, newLimit int) *Result {
	if st == nil {
		return &Result{}
	}

	newTopK := st.topK + nAdditional
	if newTopK > st.topK {
		carried := st.results.Entries()
		st.results = pqueue.NewBounded(pqueue.MinHeap, newTopK)
		for _, e := range carried {
			st.results.Push(e.Node, e.Score)
		}
		st.topK = newTopK
	}

	st.visitLimit = newLimit
	st.incomplete = false
	st.refreshMinAccepted()
	st.run()
	return st.drain()
}

func (st *State) refreshMinAccepted() {
	if st.results.Size() == st.topK {
		st.minAccepted = st.results.TopScore()
	} else {
		st.minAccepted = negInf
	}
}

func (st *State) run() {
	for st.candidates.Size() > 0 && !st.incomplete {
		top := st.candidates.TopScore()
		if top < st.minAccepted {
			break
		}
		current := st.candidates.Pop()

		stop := false
		for _, nb := range st.view.Neighbors(current) {
			if st.visited.Get(int(nb.Node)) {
				continue
			}
			if st.visitedCount >= st.visitLimit {
				st.incomplete = true
				stop = true
				break
			}

			score := st.scoreFn(nb.Node)
			st.visited.Set(int(nb.Node))
			st.visitedCount++

			if score >= st.minAccepted {
				st.candidates.Push(nb.Node, score)
				if st.accept == nil || st.accept(nb.Node) {
					st.results.Push(nb.Node, score)
					st.refreshMinAccepted()
				}
			}
		}
		if stop {
			break
		}
	}
}

func (st *State) drain() *Result {
	entries := st.results.Entries()
	// Entries() drains head-to-tail of repeated Pop on a MinHeap, i.e.
	// ascending score; reverse for descending-score order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	for _, e := range entries {
		st.results.Push(e.Node, e.Score)
	}

	out := &Result{
		Nodes:        entries,
		VisitedCount: st.visitedCount,
		Incomplete:   st.incomplete,
	}
	return out
}

// EmptyResult is a zero-candidate, complete result, equal in value to the
// fresh Result that Search returns when the graph has no entry point yet.
var EmptyResult = &Result{}
