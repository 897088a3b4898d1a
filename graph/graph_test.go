package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/graph"
)

func TestAddNode_MarkComplete_SetsEntryOnce(t *testing.T) {
	g := graph.New(8, 1.2)
	g.AddNode(5)
	g.AddNode(9)

	_, ok := g.Entry()
	require.False(t, ok)

	g.MarkComplete(5)
	e, ok := g.Entry()
	require.True(t, ok)
	require.Equal(t, int32(5), e)

	g.MarkComplete(9)
	e, ok = g.Entry()
	require.True(t, ok)
	require.Equal(t, int32(5), e) // entry never changes once set
}

func TestView_ExcludesIncompleteAndLaterCompletedNeighbors(t *testing.T) {
	g := graph.New(8, 1.2)
	g.AddNode(0)
	g.AddNode(1)
	g.AddNode(2)

	ns := g.NeighborSet(0)
	ns.Insert(1, 0.9, 2.0, nil)
	ns.Insert(2, 0.5, 2.0, nil)

	g.MarkComplete(1) // 1 completes at clock 0
	view := g.View()  // view clock = 1
	g.MarkComplete(2) // 2 completes at clock 1, not visible to `view`

	visible := view.Neighbors(0)
	require.Len(t, visible, 1)
	require.Equal(t, int32(1), visible[0].Node)
}

func TestView_SnapshotIsolationAcrossGoroutines(t *testing.T) {
	g := graph.New(8, 1.2)
	g.AddNode(0)
	g.AddNode(1)
	ns := g.NeighborSet(0)
	ns.Insert(1, 0.9, 2.0, nil)
	g.MarkComplete(1)

	view := g.View()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.AddNode(2)
		ns.Insert(2, 0.8, 2.0, nil)
		g.MarkComplete(2)
	}()
	wg.Wait()

	// The view was captured before node 2 completed, so it must not see it
	// even though the underlying neighbor set now includes it.
	visible := view.Neighbors(0)
	require.Len(t, visible, 1)
	require.Equal(t, int32(1), visible[0].Node)
}

func TestGraph_Len(t *testing.T) {
	g := graph.New(4, 1.2)
	for i := int32(0); i < 50; i++ {
		g.AddNode(i)
	}
	require.Equal(t, 50, g.Len())
}
