package bitset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vamana/bitset"
)

func TestFixed_SetGetCardinality(t *testing.T) {
	b := bitset.NewFixed(130)
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(129)
	require.True(t, b.Get(0))
	require.False(t, b.Get(1))
	require.Equal(t, 4, b.Cardinality())
	b.Clear(64)
	require.Equal(t, 3, b.Cardinality())
}

func TestFixed_NextPrevSetBit(t *testing.T) {
	b := bitset.NewFixed(200)
	for _, i := range []int{5, 70, 199} {
		b.Set(i)
	}
	require.Equal(t, 5, b.NextSetBit(0))
	require.Equal(t, 70, b.NextSetBit(6))
	require.Equal(t, 199, b.NextSetBit(71))
	require.Equal(t, bitset.NoMore, b.NextSetBit(200))

	require.Equal(t, 70, b.PrevSetBit(199-1))
	require.Equal(t, 5, b.PrevSetBit(69))
	require.Equal(t, bitset.NoMore, b.PrevSetBit(4))
}

func TestFixed_CardinalityMatchesGet(t *testing.T) {
	b := bitset.NewFixed(1000)
	want := 0
	for i := 0; i < 1000; i += 7 {
		b.Set(i)
		want++
	}
	got := 0
	for i := 0; i < 1000; i++ {
		if b.Get(i) {
			got++
		}
	}
	require.Equal(t, want, got)
	require.Equal(t, want, b.Cardinality())
}

func TestGrowable_GrowsOnSet(t *testing.T) {
	b := bitset.NewGrowable(0)
	b.Set(500)
	require.True(t, b.Get(500))
	require.GreaterOrEqual(t, b.Len(), 501)
	require.Equal(t, 1, b.Cardinality())
}

func TestAtomic_ConcurrentSet(t *testing.T) {
	const n = 2000
	b := bitset.NewAtomic(n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.Set(i)
		}(i)
	}
	wg.Wait()
	require.Equal(t, n, b.Cardinality())
}

func TestAtomic_SetReturnsTransition(t *testing.T) {
	b := bitset.NewAtomic(8)
	require.True(t, b.Set(3))
	require.False(t, b.Set(3))
	require.True(t, b.Clear(3))
	require.False(t, b.Clear(3))
}

func TestNextSetBitInvariant(t *testing.T) {
	b := bitset.NewFixed(64)
	b.Set(10)
	require.GreaterOrEqual(t, b.NextSetBit(b.PrevSetBit(10)+1), 10)
}
