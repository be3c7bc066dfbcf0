package companion

import "math/rand/v2"

// RandomSource picks fallback candidates. Intn returns a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int {
	return rand.IntN(n)
}

// DefaultRandom draws uniformly from the runtime's shared generator.
var DefaultRandom RandomSource = globalRandom{}
