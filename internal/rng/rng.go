// Package rng hands out private random streams. Every environment and
// agent owns its own *rand.Rand; streams are never shared.
package rng

import "math/rand"

const golden = 0x9e3779b97f4a7c15

// New returns a stream seeded by seed
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Derive mixes seed with a stream number so that one seed can feed several
// uncorrelated streams. The result depends only on its arguments.
func Derive(seed int64, stream uint64) int64 {
	z := uint64(seed) + (stream+1)*golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
