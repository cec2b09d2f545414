package engine

import "math/rand/v2"

// RandFunc returns a uniform value in [0,1).
type RandFunc func() float64

// Unseeded uses the global source.
func Unseeded() RandFunc { return rand.Float64 }

// Seeded returns a reproducible source. Not safe for concurrent use.
func Seeded(seed uint64) RandFunc {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Float64
}

// Sequence replays vals in order, cycling when exhausted. Used to force
// event branches.
func Sequence(vals ...float64) RandFunc {
	if len(vals) == 0 {
		vals = []float64{0.99}
	}
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

// NoEvent always rolls above any event probability below 1.
func NoEvent() RandFunc { return Sequence(0.999) }
