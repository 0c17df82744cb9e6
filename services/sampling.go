package services

import (
	"math/rand"
)

// sampleIDs draws count ids uniformly without replacement. The shuffle runs
// in-process so the behavior is identical across storage backends. The input
// slice is left untouched.
func sampleIDs(ids []uint, count int) []uint {
	if count >= len(ids) {
		count = len(ids)
	}

	shuffled := make([]uint, len(ids))
	copy(shuffled, ids)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}
