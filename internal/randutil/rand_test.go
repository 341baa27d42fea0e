package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestSample(t *testing.T) {
	rng := New(7)

	for trial := 0; trial < 50; trial++ {
		got := Sample(rng, 1, 100, 5)
		require.Len(t, got, 5)

		seen := make(map[int]bool)
		for _, n := range got {
			assert.GreaterOrEqual(t, n, 1)
			assert.Less(t, n, 100)
			assert.False(t, seen[n], "duplicate %d in %v", n, got)
			seen[n] = true
		}
	}
}

func TestSampleWholeRange(t *testing.T) {
	got := Sample(New(1), 3, 8, 5)
	assert.ElementsMatch(t, []int{3, 4, 5, 6, 7}, got)
}

func TestSamplePanicsWhenTooLarge(t *testing.T) {
	assert.Panics(t, func() { Sample(New(1), 1, 4, 4) })
	assert.Panics(t, func() { Sample(New(1), 1, 4, -1) })
}
