// Package sample - RNG utilities shared by the samplers and by the batch
// and eval packages.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel consumers.
package sample

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Derive creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base==nil, defaultSeed is used as the
// parent. Otherwise base.Int63() is consumed once to decorrelate
// consecutive derivations, then mixed with the stream id.
//
// Call during setup (not in hot loops) to create per-trial or per-worker
// RNGs.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche finalizer (Vigna 2014), so small
// input changes produce well-distributed output changes.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
