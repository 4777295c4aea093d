// SPDX-License-Identifier: MIT

package kmeans

import "math/rand"

// restartRNG returns the deterministic stream for restart r of a run seeded with seed.
// Each restart owns its *rand.Rand, so restarts can run on separate goroutines
// and still draw exactly the numbers a sequential run would draw.
//
// Complexity: O(1).
func restartRNG(seed int64, r int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(r))))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring restarts do not get correlated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
