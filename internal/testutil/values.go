package testutil

import "math/rand"

// DeterministicValues returns n values uniformly drawn from
// [-amplitude, amplitude) with a fixed seed.
func DeterministicValues(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts returns n integers in [-limit, limit] with a fixed seed.
func DeterministicInts(seed int64, limit, n int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*limit+1) - limit
	}
	return out
}
