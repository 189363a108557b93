package flippy

import "math/rand"

// RandomSource draws obstacle gap positions.
type RandomSource interface {
	// Range returns an integer in [min, max).
	Range(min, max int) int
}

// rngSource is the production RandomSource backed by math/rand.
type rngSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a uniform RandomSource seeded with seed.
func NewRandomSource(seed int64) RandomSource {
	return &rngSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *rngSource) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}
