package rng

import (
	"math/rand"
	"time"
)

var _ RNG = &UniformRNG{}

// UniformRNG generates uniform random numbers on [0, 1)
type UniformRNG struct {
	r *rand.Rand
}

func (u *UniformRNG) Rand() float64 {
	return u.r.Float64()
}

func NewUniformRNG() *UniformRNG {
	return &UniformRNG{
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededUniformRNG is a UniformRNG with a fixed seed for reproducible runs
func NewSeededUniformRNG(seed int64) *UniformRNG {
	return &UniformRNG{
		r: rand.New(rand.NewSource(seed)),
	}
}
