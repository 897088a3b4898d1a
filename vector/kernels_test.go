package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/vector"
)

func TestDotProduct(t *testing.T) {
	got, err := vector.DotProduct([]float32{1, 2, 3}, []float32{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, float32(32), got)
}

func TestDotProduct_LengthMismatch(t *testing.T) {
	_, err := vector.DotProduct([]float32{1, 2}, []float32{1})
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func TestSquaredL2(t *testing.T) {
	got, err := vector.SquaredL2([]float32{0, 0}, []float32{3, 4})
	require.NoError(t, err)
	require.Equal(t, float32(25), got)
}

func TestCosineSimilarity_Identical(t *testing.T) {
	got, err := vector.CosineSimilarity([]float32{1, 0}, []float32{1, 0})
	require.NoError(t, err)
	require.InDelta(t, 1.0, got, 1e-6)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	_, err := vector.CosineSimilarity([]float32{0, 0}, []float32{1, 0})
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestEuclideanSimilarity_HigherIsBetter(t *testing.T) {
	close, err := vector.EuclideanSimilarity([]float32{0, 0}, []float32{1, 0})
	require.NoError(t, err)
	far, err := vector.EuclideanSimilarity([]float32{0, 0}, []float32{10, 0})
	require.NoError(t, err)
	require.Greater(t, close, far)
}

func TestElementwise(t *testing.T) {
	dst := make([]float32, 3)
	require.NoError(t, vector.Add(dst, []float32{1, 2, 3}, []float32{1, 1, 1}))
	require.Equal(t, []float32{2, 3, 4}, dst)

	require.NoError(t, vector.Sub(dst, []float32{2, 3, 4}, []float32{1, 1, 1}))
	require.Equal(t, []float32{1, 2, 3}, dst)

	require.NoError(t, vector.Scale(dst, []float32{1, 2, 3}, 2))
	require.Equal(t, []float32{2, 4, 6}, dst)
}

func TestSumMinMax(t *testing.T) {
	a := []float32{3, -1, 4, 1, 5}
	require.Equal(t, float32(12), vector.Sum(a))
	require.Equal(t, float32(-1), vector.Min(a))
	require.Equal(t, float32(5), vector.Max(a))
}

func TestIsFinite(t *testing.T) {
	require.True(t, vector.IsFinite([]float32{1, 2, 3}))
}

func TestSlice_OutOfBounds(t *testing.T) {
	_, err := vector.Slice([]float32{1, 2, 3}, 2, 5)
	require.ErrorIs(t, err, vector.ErrRangeOutOfBounds)
}
