// RNG utilities shared by construction and perturbation.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: per-run substreams derived with a SplitMix64 mix, so
//     parallel restarts see uncorrelated yet reproducible streams.
//
// Concurrency: math/rand.Rand is not goroutine-safe; every run derives its
// own stream via runRNG and never shares it.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (Vigna 2014). Small input
// changes produce large, well-distributed output changes, which removes
// correlations between per-run streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// runRNG returns the deterministic RNG stream for restart number run.
// Policy: seed==0 ⇒ defaultRNGSeed; the stream depends only on (seed, run),
// never on scheduling, so parallel restarts stay reproducible.
//
// Complexity: O(1).
func runRNG(seed int64, run int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(run))))
}
