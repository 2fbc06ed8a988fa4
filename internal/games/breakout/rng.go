package breakout

// Randomizer supplies uniformly distributed values to the ball.
type Randomizer interface {
	// Range returns a value in [lo, hi).
	Range(lo, hi float64) float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
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

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// Top 53 bits keep the result strictly below 1.
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [lo, hi).
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
