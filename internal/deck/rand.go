package deck

import rand "math/rand/v2"

// NewRNG returns a shuffle source reproducible from a single seed. rand/v2's
// PCG wants two 64-bit seeds; both are drawn from a splitmix64 stream over
// the seed so that nearby seeds still produce unrelated shuffles.
func NewRNG(seed int64) *rand.Rand {
	s := seedStream{state: uint64(seed)}
	return rand.New(rand.NewPCG(s.next(), s.next()))
}

// seedStream is the splitmix64 generator
type seedStream struct {
	state uint64
}

func (s *seedStream) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
