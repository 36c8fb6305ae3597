package gamemath

import (
	"math"
	"math/rand/v2"
)

// maxIntegralSpan bounds the integer sampling path; wider spans fall back to floats.
const maxIntegralSpan = 1 << 53

// Random samples ranges the way lodash's _.random does: when both bounds are
// whole numbers the result is a whole number in [lo, hi], otherwise it is a
// float in [lo, hi). Reversed bounds are swapped.
type Random struct {
	rng *rand.Rand
}

// NewRandom wraps rng. A nil rng gets a randomly seeded source.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Random{rng: rng}
}

// NewSeededRandom returns a deterministic sampler, used by tests and replays.
func NewSeededRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a value in the range spanned by a and b.
func (r *Random) Between(a, b float64) float64 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if isWhole(lo) && isWhole(hi) && hi-lo < maxIntegralSpan {
		return lo + float64(r.rng.Int64N(int64(hi-lo)+1))
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// IntBetween returns a whole number in [a, b], bounds swapped if reversed.
func (r *Random) IntBetween(a, b int) int {
	if a > b {
		a, b = b, a
	}
	return a + r.rng.IntN(b-a+1)
}

func isWhole(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}
