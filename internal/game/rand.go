package game

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness the engine draws from. Tests inject fixed
// sequences through it.
type Rand interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRand returns a Rand safe for concurrent use. A zero seed picks one from
// the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}
