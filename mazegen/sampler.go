package mazegen

import "math/rand"

// branchSampler draws how many unvisited neighbors a cell opens into, using
// four configured relative weights for branching 0, 1, 2 or 3 ways.
type branchSampler struct {
	// cumulative sums of the weights; cumulative[i] is the total weight of
	// branch counts 0..i.
	cumulative [4]float64
	rng        *rand.Rand
}

func newBranchSampler(weights [4]float64, rng *rand.Rand) *branchSampler {
	s := &branchSampler{rng: rng}
	total := 0.0
	for i, w := range weights {
		total += w
		s.cumulative[i] = total
	}
	return s
}

// sample returns a branch count in [0, n]. The weight list is truncated to
// the first n+1 entries; the mass of the dropped entries is not
// redistributed, so fewer available neighbors shifts probability toward the
// lower counts only through truncation. If every truncated weight is zero,
// the largest allowed count is returned.
func (s *branchSampler) sample(n int) int {
	if n >= len(s.cumulative) {
		n = len(s.cumulative) - 1
	}
	if n <= 0 {
		return 0
	}
	r := s.rng.Float64() * s.cumulative[n]
	for i := 0; i < n; i++ {
		if r < s.cumulative[i] {
			return i
		}
	}
	return n
}
