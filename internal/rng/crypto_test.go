package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(5)] = true
	}

	a.Len(found, 5)
	a.False(found[5])
}

func TestCrypto_concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := Crypto{}.Intn(52)
				assert.True(t, n >= 0 && n < 52)
			}
		}()
	}

	wg.Wait()
}
