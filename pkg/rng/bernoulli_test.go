package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBernoulliRNG(t *testing.T) {
	r := NewBernoulliRNG(0.6)
	up := 0
	for i := 0; i < 100000; i++ {
		v := r.Rand()
		assert.True(t, v == 1.0 || v == -1.0)
		if v == 1.0 {
			up++
		}
	}
	assert.InDelta(t, 0.6, float64(up)/100000.0, 0.01)
}

func TestSeededBernoulliRNG(t *testing.T) {
	a := NewSeededBernoulliRNG(0.5, 42)
	b := NewSeededBernoulliRNG(0.5, 42)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Rand(), b.Rand())
	}
}
