package dcgp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinLock_SerializesConcurrentIncrements(t *testing.T) {
	var lock spinLock
	var total int
	var wg sync.WaitGroup

	const goroutines = 50
	const perGoroutine = 200
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				lock.Lock()
				total++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, total)
}
