package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(7, 1), Derive(7, 1))
	assert.NotEqual(t, Derive(7, 1), Derive(7, 2))
	assert.NotEqual(t, Derive(7, 1), Derive(8, 1))
	assert.NotEqual(t, int64(7), Derive(7, 0))
}
