package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleIDsDrawsWithoutReplacement(t *testing.T) {
	pool := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sampled := sampleIDs(pool, 4)
	assert.Len(t, sampled, 4)

	seen := make(map[uint]bool)
	poolSet := make(map[uint]bool)
	for _, id := range pool {
		poolSet[id] = true
	}
	for _, id := range sampled {
		assert.False(t, seen[id], "id %d drawn twice", id)
		assert.True(t, poolSet[id], "id %d not in pool", id)
		seen[id] = true
	}
}

func TestSampleIDsUndersizedPoolReturnsAll(t *testing.T) {
	pool := []uint{7, 8, 9}

	sampled := sampleIDs(pool, 10)
	assert.ElementsMatch(t, pool, sampled)
}

func TestSampleIDsEmptyPool(t *testing.T) {
	assert.Empty(t, sampleIDs(nil, 5))
}

func TestSampleIDsLeavesInputUntouched(t *testing.T) {
	pool := []uint{1, 2, 3, 4, 5}

	_ = sampleIDs(pool, 3)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, pool)
}
