package mazegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplerStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := newBranchSampler(DefaultBranchWeights, rng)

	for n := 0; n <= 4; n++ {
		for i := 0; i < 1000; i++ {
			got := s.sample(n)
			assert.GreaterOrEqual(t, got, 0)
			if n < 4 {
				assert.LessOrEqual(t, got, n)
			} else {
				// Only four weights exist, so five neighbors still cap at 3.
				assert.LessOrEqual(t, got, 3)
			}
		}
	}
}

func TestSamplerFrequenciesMatchWeights(t *testing.T) {
	const trials = 100000

	rng := rand.New(rand.NewSource(7))
	s := newBranchSampler([4]float64{1, 3, 0, 0}, rng)

	var counts [2]int
	for i := 0; i < trials; i++ {
		counts[s.sample(1)]++
	}
	assert.InDelta(t, 0.25, float64(counts[0])/trials, 0.01)
	assert.InDelta(t, 0.75, float64(counts[1])/trials, 0.01)
}

func TestSamplerTruncatesWithoutRedistribution(t *testing.T) {
	const trials = 100000

	// Nearly all mass sits on the 2- and 3-branch entries. With only one
	// unvisited neighbor those entries are dropped outright, leaving the
	// first two weights at their original 50/50 ratio.
	rng := rand.New(rand.NewSource(11))
	s := newBranchSampler([4]float64{0.5, 0.5, 100, 100}, rng)

	var counts [2]int
	for i := 0; i < trials; i++ {
		got := s.sample(1)
		assert.LessOrEqual(t, got, 1)
		counts[got]++
	}
	assert.InDelta(t, 0.5, float64(counts[0])/trials, 0.01)
	assert.InDelta(t, 0.5, float64(counts[1])/trials, 0.01)
}

func TestSamplerZeroTruncatedMass(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := newBranchSampler([4]float64{0, 0, 1, 1}, rng)

	// Every weight left after truncation is zero; the largest allowed count
	// wins so a restarting iteration can still branch.
	for i := 0; i < 100; i++ {
		assert.Equal(t, 1, s.sample(1))
	}
}
