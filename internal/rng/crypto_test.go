package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// every value of a 13-sided draw should appear in 2000 tries
	for i := 0; i < 2000; i++ {
		found[c.Intn(13)] = true
	}

	for i := 0; i < 13; i++ {
		a.True(found[i], "missing %d", i)
	}
	a.False(found[13])
	a.False(found[-1])
}
