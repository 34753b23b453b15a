// source: https://github.com/franciscod/puzzles/blob/master/galaxies.c
// (random_new / random_bits / random_upto / shuffle)

package tentai

// Source is a deterministic pseudo-random stream seeded from an arbitrary
// byte string. Two Sources built from the same seed produce the same
// sequence of draws within this implementation; no cross-implementation
// bit-exactness is claimed or required.
type Source struct {
	state [4]uint64
}

// NewSource seeds a Source from seed via a simple rolling multiplicative
// hash, then spreads that hash across four 64-bit state words with the
// same LCG step the reference generator uses to seed its xorshift state.
func NewSource(seed []byte) *Source {
	var hash uint64
	for _, b := range seed {
		hash = hash*31 + uint64(b)
	}

	s := &Source{}
	s.state[0] = hash
	s.state[1] = s.state[0]*1103515245 + 12345
	s.state[2] = s.state[1]*1103515245 + 12345
	s.state[3] = s.state[2]*1103515245 + 12345
	return s
}

// Bits draws the next value from the stream and masks it down to the low
// n bits (n must be in [0, 64]).
func (s *Source) Bits(n int) uint64 {
	x := s.state[0] ^ (s.state[0] << 11)
	s.state[0] = s.state[1]
	s.state[1] = s.state[2]
	s.state[2] = s.state[3]
	s.state[3] = (s.state[3] ^ (s.state[3] >> 19)) ^ (x ^ (x >> 8))

	ret := s.state[3]
	if n < 64 {
		ret &= (uint64(1) << n) - 1
	}
	return ret
}

// UpTo returns a value drawn uniformly from [0, limit) by rejection
// sampling over the smallest power-of-two cover of limit. UpTo(0) returns 0.
func (s *Source) UpTo(limit uint64) uint64 {
	if limit == 0 {
		return 0
	}

	var bits int
	for max := limit; max > 0; max >>= 1 {
		bits++
	}

	for {
		if ret := s.Bits(bits); ret < limit {
			return ret
		}
	}
}

// Shuffle performs an in-place Fisher-Yates shuffle of data using s, via
// the swap callback (so callers can shuffle any element type, including
// slices of pointers, without reflection).
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(s.UpTo(uint64(i + 1)))
		if j != i {
			swap(i, j)
		}
	}
}
