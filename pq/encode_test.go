package pq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/kmeans"
	"github.com/katalvlaran/vamana/pq"
	"github.com/katalvlaran/vamana/similarity"
	"github.com/katalvlaran/vamana/vector"
)

func TestEncode_RejectsDimensionMismatch(t *testing.T) {
	vecs := randomVectors(300, 8, 1)
	cb, err := pq.Train(vecs, 4, pq.WithK(8), pq.WithSeed(1))
	require.NoError(t, err)

	_, err = cb.Encode([]float32{1, 2, 3})
	require.ErrorIs(t, err, pq.ErrDimensionMismatch)
}

func TestEncodeDecode_PerfectReconstructionAtCentroids(t *testing.T) {
	vecs := randomVectors(500, 8, 2)
	cb, err := pq.Train(vecs, 2, pq.WithK(8), pq.WithIterations(5), pq.WithSeed(7))
	require.NoError(t, err)

	// A vector assembled exactly from one centroid per subspace must decode
	// back to itself bit-exactly.
	v := make([]float32, cb.Dimension)
	copy(v[cb.Offsets[0]:cb.Offsets[0]+cb.SubSizes[0]], cb.Centroids[0][3])
	copy(v[cb.Offsets[1]:cb.Offsets[1]+cb.SubSizes[1]], cb.Centroids[1][5])

	code, err := cb.Encode(v)
	require.NoError(t, err)
	decoded, err := cb.Decode(code)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
}

func TestDecode_RejectsBadCode(t *testing.T) {
	vecs := randomVectors(300, 8, 3)
	cb, err := pq.Train(vecs, 4, pq.WithK(8), pq.WithSeed(1))
	require.NoError(t, err)

	_, err = cb.Decode(pq.Code{1, 2, 3})
	require.ErrorIs(t, err, pq.ErrBadCode)

	_, err = cb.Decode(pq.Code{1, 2, 3, 255})
	require.ErrorIs(t, err, pq.ErrBadCode)
}

func TestADCConsistency_MatchesDirectScore(t *testing.T) {
	vecs := randomVectors(600, 8, 4)

	for _, kind := range []similarity.Kind{similarity.DotProduct, similarity.Euclidean} {
		cb, err := pq.Train(vecs, 4, pq.WithK(16), pq.WithIterations(4), pq.WithSeed(11))
		require.NoError(t, err)

		q := randomVectors(1, 8, 99)[0]
		v := randomVectors(1, 8, 100)[0]

		code, err := cb.Encode(v)
		require.NoError(t, err)
		decoded, err := cb.Decode(code)
		require.NoError(t, err)

		table, err := cb.BuildADCTable(q, kind, false)
		require.NoError(t, err)
		adcScore, err := table.Score(code)
		require.NoError(t, err)

		var directScore float32
		switch kind {
		case similarity.DotProduct:
			directScore, err = vector.DotProduct(q, decoded)
		case similarity.Euclidean:
			directScore, err = vector.EuclideanSimilarity(q, decoded)
		}
		require.NoError(t, err)
		require.InDelta(t, directScore, adcScore, 1e-3)
	}
}

func TestADCTable_QuantizedIsCloseToExact(t *testing.T) {
	vecs := randomVectors(500, 8, 5)
	cb, err := pq.Train(vecs, 4, pq.WithK(16), pq.WithSeed(2))
	require.NoError(t, err)

	q := randomVectors(1, 8, 77)[0]
	v := randomVectors(1, 8, 78)[0]
	code, err := cb.Encode(v)
	require.NoError(t, err)

	exact, err := cb.BuildADCTable(q, similarity.DotProduct, false)
	require.NoError(t, err)
	quantized, err := cb.BuildADCTable(q, similarity.DotProduct, true)
	require.NoError(t, err)

	exactScore, err := exact.Score(code)
	require.NoError(t, err)
	quantScore, err := quantized.Score(code)
	require.NoError(t, err)

	require.InDelta(t, exactScore, quantScore, 0.5)
}

func TestEncodeAnisotropic_Runs(t *testing.T) {
	vecs := randomVectors(400, 8, 6)
	for _, v := range vecs {
		n := vector.Norm(v)
		if n == 0 {
			continue
		}
		for i := range v {
			v[i] /= n
		}
	}
	cb, err := pq.Train(vecs, 4, pq.WithK(8), pq.WithAnisotropicThreshold(0.2), pq.WithSeed(3))
	require.NoError(t, err)
	require.True(t, cb.Anisotropic())
	require.NotEqual(t, kmeans.Unweighted, cb.AnisotropicThreshold)

	code, err := cb.Encode(vecs[0])
	require.NoError(t, err)
	require.Len(t, code, 4)
}
