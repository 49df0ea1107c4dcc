package dcgp

import "math/rand"

// RNG is the uniform integer RNG collaborator contract. Any source
// that can draw uniformly from a closed range and be reseeded suffices;
// the core never reaches for a global singleton.
type RNG interface {
	// IntRange draws a uniform integer in the closed range [lo, hi].
	// Callers never pass lo > hi.
	IntRange(lo, hi int) int
	// Seed reseeds the source.
	Seed(seed int64)
}

// lockedRand is the default RNG: a process-local *rand.Rand owned
// exclusively by one Expression instance.
type lockedRand struct {
	r *rand.Rand
}

// newLockedRand builds the default seeded RNG collaborator.
func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) IntRange(lo, hi int) int {
	if lo == hi {
		return lo
	}
	return lo + l.r.Intn(hi-lo+1)
}

func (l *lockedRand) Seed(seed int64) {
	l.r = rand.New(rand.NewSource(seed))
}
