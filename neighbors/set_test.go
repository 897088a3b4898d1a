package neighbors_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/neighbors"
)

func TestInsert_MaintainsDescendingOrderNoDuplicates(t *testing.T) {
	s := neighbors.NewSet(4, 1.2)
	s.Insert(1, 0.5, 2.0, nil)
	s.Insert(2, 0.9, 2.0, nil)
	s.Insert(3, 0.1, 2.0, nil)
	s.Insert(2, 0.99, 2.0, nil) // duplicate node, should be skipped

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	for i := 1; i < len(snap); i++ {
		require.Greater(t, snap[i-1].Score, snap[i].Score)
	}
	seen := map[int32]bool{}
	for _, e := range snap {
		require.False(t, seen[e.Node])
		seen[e.Node] = true
	}
}

func TestInsert_ConcurrentInsertsPreserveInvariants(t *testing.T) {
	s := neighbors.NewSet(50, 1.2)
	var wg sync.WaitGroup
	for i := int32(0); i < 200; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			s.Insert(n, float32(n)/200, 2.0, nil)
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	seen := map[int32]bool{}
	for i, e := range snap {
		require.False(t, seen[e.Node])
		seen[e.Node] = true
		if i > 0 {
			require.GreaterOrEqual(t, snap[i-1].Score, e.Score)
		}
	}
}

func TestInsertDiverse_PrunesCloseNeighbors(t *testing.T) {
	s := neighbors.NewSet(2, 1.0)
	// Three candidates, where 1 and 2 are mutually very similar; only the
	// higher-scored of the two should survive alongside 3.
	natural := []neighbors.Entry{{Node: 1, Score: 0.9}, {Node: 2, Score: 0.8}, {Node: 3, Score: 0.5}}
	sim := func(a, b int32) float32 {
		if (a == 1 && b == 2) || (a == 2 && b == 1) {
			return 1.0 // very similar relative to either's own score
		}
		return 0
	}
	s.InsertDiverse(natural, nil, sim)

	snap := s.Snapshot()
	nodes := map[int32]bool{}
	for _, e := range snap {
		nodes[e.Node] = true
	}
	require.True(t, nodes[1])
	require.True(t, nodes[3])
	require.False(t, nodes[2])
}

func TestCleanup_EnforcesMaxDegree(t *testing.T) {
	s := neighbors.NewSet(2, 1.2)
	sim := func(a, b int32) float32 { return 0 }
	s.Insert(1, 0.9, 10.0, nil)
	s.Insert(2, 0.8, 10.0, nil)
	s.Insert(3, 0.7, 10.0, nil)
	s.Insert(4, 0.6, 10.0, nil)

	s.Cleanup(sim)
	require.LessOrEqual(t, s.Len(), 2)
}

func TestBacklink_InsertsIntoEachNeighbor(t *testing.T) {
	owner := int32(0)
	neighborSets := map[int32]*neighbors.Set{
		1: neighbors.NewSet(4, 1.2),
		2: neighbors.NewSet(4, 1.2),
	}
	s := neighbors.NewSet(4, 1.2)
	s.Insert(1, 0.9, 2.0, nil)
	s.Insert(2, 0.8, 2.0, nil)

	lookup := func(m int32) *neighbors.Set { return neighborSets[m] }
	s.Backlink(owner, lookup, 2.0, nil)

	require.Equal(t, 1, neighborSets[1].Len())
	require.Equal(t, int32(0), neighborSets[1].Snapshot()[0].Node)
	require.Equal(t, 1, neighborSets[2].Len())
}
