package dcgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedRand_DegenerateRangeIsNoOp(t *testing.T) {
	r := newLockedRand(1)
	for i := 0; i < 20; i++ {
		assert.Equal(t, 5, r.IntRange(5, 5))
	}
}

func TestLockedRand_StaysWithinRange(t *testing.T) {
	r := newLockedRand(1)
	for i := 0; i < 200; i++ {
		v := r.IntRange(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestLockedRand_SeedIsDeterministic(t *testing.T) {
	a := newLockedRand(42)
	b := newLockedRand(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
}

func TestLockedRand_ReseedResetsSequence(t *testing.T) {
	r := newLockedRand(1)
	first := make([]int, 10)
	for i := range first {
		first[i] = r.IntRange(0, 1_000_000)
	}
	r.Seed(1)
	for i := range first {
		assert.Equal(t, first[i], r.IntRange(0, 1_000_000))
	}
}
