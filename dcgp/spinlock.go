package dcgp

import (
	"runtime"
	"sync/atomic"
)

// spinLock is the reducer's mutual-exclusion primitive for the parallel
// batch-loss path: each worker holds it only for the duration of
// a single floating-point addition into the shared total, so a spin loop is
// cheaper than parking on a channel or a blocking mutex. No third-party
// spinlock exists anywhere in the corpus to reach for here — sync/atomic is
// the whole of its job, so the stdlib is the right host.
type spinLock struct {
	held atomic.Bool
}

func (s *spinLock) Lock() {
	for !s.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (s *spinLock) Unlock() {
	s.held.Store(false)
}
