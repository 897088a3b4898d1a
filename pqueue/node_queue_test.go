package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/pqueue"
)

func TestNodeQueue_MaxHeapPopOrder(t *testing.T) {
	q := pqueue.New(pqueue.MaxHeap)
	for _, s := range []float32{3, 1, 4, 1, 5, 9, 2, 6} {
		q.Push(0, s)
	}
	prev := float32(1 << 30)
	for q.Size() > 0 {
		top := q.TopScore()
		require.LessOrEqual(t, top, prev)
		prev = top
		q.Pop()
	}
}

func TestNodeQueue_MinHeapPopOrder(t *testing.T) {
	q := pqueue.New(pqueue.MinHeap)
	for _, s := range []float32{3, 1, 4, 1, 5, 9, 2, 6} {
		q.Push(0, s)
	}
	prev := float32(-(1 << 30))
	for q.Size() > 0 {
		top := q.TopScore()
		require.GreaterOrEqual(t, top, prev)
		prev = top
		q.Pop()
	}
}

func TestNodeQueue_BoundedReplacesHeadWhenBetter(t *testing.T) {
	// MinHeap bounded at 3 keeps the 3 highest scores seen.
	q := pqueue.NewBounded(pqueue.MinHeap, 3)
	for _, s := range []float32{1, 2, 3, 4, 5} {
		q.Push(int32(s), s)
	}
	require.Equal(t, 3, q.Size())
	entries := q.Entries()
	var scores []float32
	for _, e := range entries {
		scores = append(scores, e.Score)
	}
	require.ElementsMatch(t, []float32{3, 4, 5}, scores)
}

func TestNodeQueue_BoundedDiscardsWorse(t *testing.T) {
	q := pqueue.NewBounded(pqueue.MinHeap, 2)
	q.Push(0, 10)
	q.Push(1, 20)
	changed := q.Push(2, 1) // worse than current min (10)
	require.False(t, changed)
	require.Equal(t, 2, q.Size())
}

func TestNodeQueue_ClearAndIncomplete(t *testing.T) {
	q := pqueue.New(pqueue.MaxHeap)
	q.Push(0, 1)
	q.MarkIncomplete()
	require.True(t, q.Incomplete())
	q.Clear()
	require.Equal(t, 0, q.Size())
	require.False(t, q.Incomplete())
}
