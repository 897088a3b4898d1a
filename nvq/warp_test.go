package nvq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaledLogistic_EndpointsMapToZeroAndOne(t *testing.T) {
	for _, r := range []float64{0.5, 1, 5, 15} {
		require.InDelta(t, 0, scaledLogistic(0, r, 0), 1e-9)
		require.InDelta(t, 1, scaledLogistic(1, r, 0), 1e-9)
	}
}

func TestScaledLogit_InvertsScaledLogistic(t *testing.T) {
	for _, r := range []float64{0.1, 1, 8, 19} {
		for _, u := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
			p := scaledLogistic(u, r, 0)
			back := scaledLogit(p, r, 0)
			require.InDelta(t, u, back, 1e-6)
		}
	}
}

func TestFitGrowthRate_ReturnsPositiveRate(t *testing.T) {
	vals := make([]float32, 64)
	for i := range vals {
		vals[i] = float32(math.Sin(float64(i)))
	}
	rate := fitGrowthRate(vals, -1, 1, 255)
	require.Greater(t, rate, float32(0))
}
