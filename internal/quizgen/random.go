package quizgen

import "math/rand/v2"

// Random is the randomness the synthesizer draws from. A *rand.Rand satisfies it.
// Implementations need not be safe for concurrent use; each run owns its own.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// RandomFactory returns a fresh Random for one pipeline run.
type RandomFactory func() Random

// NewRandomFactory seeds every run independently when seed is zero and
// replays the same sequence for every run otherwise.
func NewRandomFactory(seed uint64) RandomFactory {
	if seed == 0 {
		return func() Random {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	return func() Random {
		return rand.New(rand.NewPCG(seed, seed))
	}
}
