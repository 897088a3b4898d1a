package pq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/pq"
)

func randomVectors(n, dim int, seed int64) [][]float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float32, n)
	for i := range out {
		v := make([]float32, dim)
		for d := range v {
			v[d] = float32(rng.NormFloat64())
		}
		out[i] = v
	}
	return out
}

func TestTrain_RejectsTooManySubspaces(t *testing.T) {
	vecs := randomVectors(10, 4, 1)
	_, err := pq.Train(vecs, 8)
	require.ErrorIs(t, err, pq.ErrTooManySubspaces)
}

func TestTrain_RejectsEmptySet(t *testing.T) {
	_, err := pq.Train(nil, 2)
	require.ErrorIs(t, err, pq.ErrEmptyTrainingSet)
}

func TestTrain_RejectsTooFewTrainingVectors(t *testing.T) {
	vecs := randomVectors(5, 8, 2)
	_, err := pq.Train(vecs, 2, pq.WithK(256))
	require.ErrorIs(t, err, pq.ErrTooFewTrainingVectors)
}

func TestTrain_ProducesUsableCodebook(t *testing.T) {
	vecs := randomVectors(600, 8, 3)
	cb, err := pq.Train(vecs, 4, pq.WithK(16), pq.WithIterations(3), pq.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, 4, cb.M)
	require.Equal(t, 16, cb.K)
	require.Len(t, cb.Centroids, 4)
	for _, sub := range cb.Centroids {
		require.Len(t, sub, 16)
	}
}

func TestTrain_GlobalCenteringSetsCentroid(t *testing.T) {
	vecs := randomVectors(300, 6, 4)
	cb, err := pq.Train(vecs, 3, pq.WithK(8), pq.WithGlobalCentering(), pq.WithSeed(1))
	require.NoError(t, err)
	require.NotNil(t, cb.GlobalCentroid)
	require.Len(t, cb.GlobalCentroid, 6)
}

func TestTrain_DeterministicForFixedSeed(t *testing.T) {
	vecs := randomVectors(400, 8, 5)
	a, err := pq.Train(vecs, 4, pq.WithK(8), pq.WithSeed(42))
	require.NoError(t, err)
	b, err := pq.Train(vecs, 4, pq.WithK(8), pq.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a.Centroids, b.Centroids)
}
