package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/graph"
	"github.com/katalvlaran/vamana/search"
)

// buildLineGraph wires nodes 0-1-2-3-4 as a simple chain, each completed in
// order, scores decreasing with distance from node 0 for a query.
func buildLineGraph(t *testing.T) (*graph.Graph, []float32) {
	t.Helper()
	g := graph.New(4, 1.2)
	n := 5
	for i := int32(0); i < int32(n); i++ {
		g.AddNode(i)
	}
	link := func(a, b int32, score float32) {
		g.NeighborSet(a).Insert(b, score, 2.0, nil)
		g.NeighborSet(b).Insert(a, score, 2.0, nil)
	}
	link(0, 1, 0.9)
	link(1, 2, 0.8)
	link(2, 3, 0.7)
	link(3, 4, 0.6)
	for i := int32(0); i < int32(n); i++ {
		g.MarkComplete(i)
	}

	scores := []float32{1.0, 0.9, 0.8, 0.7, 0.6}
	return g, scores
}

func TestSearch_EmptyGraphReturnsComplete(t *testing.T) {
	g := graph.New(4, 1.2)
	view := g.View()
	result, _ := search.Search(view, func(int32) float32 { return 0 }, 5, nil, 100)
	require.Empty(t, result.Nodes)
	require.False(t, result.Incomplete)
}

func TestSearch_FindsTopKInDescendingOrder(t *testing.T) {
	g, scores := buildLineGraph(t)
	view := g.View()
	scoreFn := func(ord int32) float32 { return scores[ord] }

	result, _ := search.Search(view, scoreFn, 3, nil, 100)
	require.Len(t, result.Nodes, 3)
	for i := 1; i < len(result.Nodes); i++ {
		require.GreaterOrEqual(t, result.Nodes[i-1].Score, result.Nodes[i].Score)
	}
	require.Equal(t, int32(0), result.Nodes[0].Node)
}

func TestSearch_VisitLimitMarksIncomplete(t *testing.T) {
	g, scores := buildLineGraph(t)
	view := g.View()
	scoreFn := func(ord int32) float32 { return scores[ord] }

	result, _ := search.Search(view, scoreFn, 5, nil, 1)
	require.True(t, result.Incomplete)
}

func TestSearch_AcceptFilterExcludesRejected(t *testing.T) {
	g, scores := buildLineGraph(t)
	view := g.View()
	scoreFn := func(ord int32) float32 { return scores[ord] }
	accept := func(ord int32) bool { return ord != 1 }

	result, _ := search.Search(view, scoreFn, 5, accept, 100)
	for _, e := range result.Nodes {
		require.NotEqual(t, int32(1), e.Node)
	}
}

func TestResume_ExpandsResultsWithoutReseeding(t *testing.T) {
	g, scores := buildLineGraph(t)
	view := g.View()
	scoreFn := func(ord int32) float32 { return scores[ord] }

	result, state := search.Search(view, scoreFn, 2, nil, 100)
	require.Len(t, result.Nodes, 2)

	expanded := search.Resume(state, 3, 100)
	require.GreaterOrEqual(t, len(expanded.Nodes), len(result.Nodes))
}
