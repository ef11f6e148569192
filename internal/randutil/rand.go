// Package randutil derives reproducible math/rand/v2 sources for deals,
// reshuffles and computer decisions.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	return FromUint64(uint64(seed))
}

// FromUint64 returns a *rand.Rand for an unsigned seed, deriving the two
// PCG words so nearby seeds still produce unrelated streams.
func FromUint64(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed), mix(seed+goldenRatio64)))
}

// Derive returns the n-th child stream of seed. Sessions use it to reshuffle
// the discard pile without holding a mutable source.
func Derive(seed uint64, n int) *rand.Rand {
	return FromUint64(mix(seed ^ (uint64(n+1) * goldenRatio64)))
}

// SeedOrNow returns seed unchanged unless it is zero, in which case a
// time based seed is returned. The CLI treats 0 as "random".
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
