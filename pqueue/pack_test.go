package pqueue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	for _, tc := range []struct {
		score float32
		node  int32
	}{
		{0, 0}, {1.5, 42}, {-3.25, 7}, {1e10, 1<<31 - 1}, {-1e-10, 0},
	} {
		key := pack(tc.score, tc.node)
		gotNode, gotScore := unpack(key)
		require.Equal(t, tc.node, gotNode)
		require.Equal(t, tc.score, gotScore)
	}
}

func TestPack_OrdersByScoreThenNode(t *testing.T) {
	low := pack(1.0, 5)
	high := pack(2.0, 0)
	require.Less(t, low, high)

	tieLowNode := pack(1.0, 1)
	tieHighNode := pack(1.0, 2)
	require.Less(t, tieLowNode, tieHighNode)
}
