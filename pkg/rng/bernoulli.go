// Package rng provides random number generators for Monte Carlo validation of
// sequential test designs.
package rng

import (
	"math/rand"
	"time"
)

var _ RNG = &BernoulliRNG{}

// BernoulliRNG generates ±1 random walk steps, returning +1 with probability p
type BernoulliRNG struct {
	p float64
	r *rand.Rand
}

func (b *BernoulliRNG) Rand() float64 {
	if b.r.Float64() < b.p {
		return 1.0
	}
	return -1.0
}

func NewBernoulliRNG(p float64) *BernoulliRNG {
	return &BernoulliRNG{
		p: p,
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededBernoulliRNG is a BernoulliRNG with a fixed seed for reproducible runs
func NewSeededBernoulliRNG(p float64, seed int64) *BernoulliRNG {
	return &BernoulliRNG{
		p: p,
		r: rand.New(rand.NewSource(seed)),
	}
}
