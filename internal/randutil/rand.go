// Package randutil centralises deterministic RNG construction.
package randutil

import "math/rand"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The seed is run through a splitmix64 finaliser first, so callers
// can hand out sequential seeds (master seed plus index) and still get
// unrelated sequences.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(int64(mix(uint64(seed) + goldenRatio64))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
