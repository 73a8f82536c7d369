package core

// SimpleRNG is a deterministic pseudo-random number generator (64-bit LCG).
// Used for procedural levels and cosmetic effects so runs replay exactly.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// DeriveRNG creates an RNG for a sub-stream (for example one level) of a
// run seed. Different streams of the same seed are uncorrelated.
func DeriveRNG(seed int64, stream int) *SimpleRNG {
	s := uint64(seed) ^ (uint64(stream) * 0x9E3779B97F4A7C15) //#nosec G115 -- hash mixing
	r := &SimpleRNG{state: s | 1}
	// Discard the first outputs, they correlate with the seed bits
	r.Next()
	r.Next()
	return r
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG have much longer periods than low bits
	return int((r.Next() >> 11) % uint64(n)) //#nosec G115 -- n is always positive
}

// IntRange returns a random int in [lo, hi], both inclusive.
// If hi < lo, lo is returned.
func (r *SimpleRNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// FloatRange returns a random float64 in [lo, hi).
func (r *SimpleRNG) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
